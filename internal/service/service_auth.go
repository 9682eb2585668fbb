// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/crypto"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/store"
	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/models"
)

// authService is the concrete implementation of AuthService.
// Password hashing on write is done by the repository; the service only
// verifies candidates against stored hashes.
type authService struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher
	ids    IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string
	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer   string
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, hasher crypto.PasswordHasher, ids IDGenerator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		hasher:        hasher,
		ids:           ids,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// SignUp creates a new user account with the default role, avatar and
// preferences.
//
// Returns the persisted user without its password hash or:
//   - ErrEmailInUse if the email belongs to any record, soft-deleted included.
//   - A wrapped storage error if the repository call fails.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		ID:          a.ids.Generate(),
		Email:       req.Email,
		Password:    req.Password,
		Avatar:      models.DefaultAvatar,
		Role:        models.RoleUser,
		Preferences: models.DefaultPreferences(),
	}

	created, err := a.users.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.SignUp").Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	return created, nil
}

// ValidateCredentials authenticates an existing, non-deleted user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) ValidateCredentials(ctx context.Context, email, password string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindByEmail(ctx, email, models.FindOptions{WithPassword: true})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Identity{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.ValidateCredentials").Msg("user search by email failed")
		return models.Identity{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !passwordMatches(ctx, a.hasher, password, user.Password) {
		log.Info().Str("func", "authService.ValidateCredentials").Str("user_id", user.ID).Msg("wrong password")
		return models.Identity{}, ErrInvalidCredentials
	}

	return user.Identity(), nil
}

// IssueToken updates the last login time of identity and signs a token
// whose subject is the user id.
func (a *authService) IssueToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.users.UpdateLastLogin(ctx, identity.ID, a.now().UTC()); err != nil {
		log.Err(err).Str("func", "authService.IssueToken").Str("user_id", identity.ID).Msg("failed to update last login")
		return models.Token{}, mapStoreError(err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "authService.IssueToken").Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIssueFailed, err)
	}

	return token, nil
}

// ValidateToken verifies the signature, issuer and expiry of tokenString,
// then reloads the subject. Any failure, a deleted subject included, is
// normalised to ErrInvalidToken.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "authService.ValidateToken").Msg("token rejected")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := a.users.FindByID(ctx, token.UserID, models.FindOptions{})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Identity{}, ErrInvalidToken
		}
		log.Err(err).Str("func", "authService.ValidateToken").Str("user_id", token.UserID).Msg("failed to load token subject")
		return models.Identity{}, err
	}

	return user.Identity(), nil
}

// ChangePassword replaces the password of user id after checking the
// current one. The repository hashes the new value on save.
func (a *authService) ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindByID(ctx, id, models.FindOptions{WithPassword: true})
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	if !passwordMatches(ctx, a.hasher, req.CurrentPassword, user.Password) {
		return models.User{}, ErrInvalidCurrentPassword
	}

	user.Password = req.NewPassword
	saved, err := a.users.Save(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.ChangePassword").Str("user_id", id).Msg("failed to save password")
		return models.User{}, mapStoreError(err)
	}

	return saved, nil
}

// ChangeEmail moves user id from req.CurrentEmail to req.NewEmail.
//
// A request that does not change anything is rejected with ErrSameEmail.
// Otherwise the availability of the new email and the ownership of the
// current one are looked up concurrently; both lookups finish before the
// outcome is decided, and a taken email wins over a mismatched owner.
func (a *authService) ChangeEmail(ctx context.Context, id string, req models.ChangeEmailRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.CurrentEmail == req.NewEmail {
		return models.User{}, ErrSameEmail
	}

	var (
		taken      bool
		owner      models.User
		ownerFound bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := a.users.FindByEmail(gctx, req.NewEmail, models.FindOptions{WithDeleted: true})
		switch {
		case err == nil:
			taken = true
		case errors.Is(err, store.ErrUserNotFound):
		default:
			return fmt.Errorf("email availability lookup failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		user, err := a.users.FindByID(gctx, id, models.FindOptions{})
		switch {
		case err == nil:
			owner, ownerFound = user, true
		case errors.Is(err, store.ErrUserNotFound):
		default:
			return fmt.Errorf("owner lookup failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Err(err).Str("func", "authService.ChangeEmail").Str("user_id", id).Msg("email change lookups failed")
		return models.User{}, err
	}

	if taken {
		return models.User{}, ErrEmailInUse
	}
	if !ownerFound || owner.Email != req.CurrentEmail {
		return models.User{}, ErrUserNotFound
	}

	owner.Email = req.NewEmail
	saved, err := a.users.Save(ctx, owner)
	if err != nil {
		log.Err(err).Str("func", "authService.ChangeEmail").Str("user_id", id).Msg("failed to save email")
		return models.User{}, mapStoreError(err)
	}

	return saved, nil
}

// AssignRole sets the role of user id. The admin gate is enforced by the
// route.
func (a *authService) AssignRole(ctx context.Context, id string, role models.Role) (models.User, error) {
	if !role.Valid() {
		return models.User{}, ErrInvalidRole
	}

	user, err := a.users.FindByID(ctx, id, models.FindOptions{})
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	user.Role = role
	saved, err := a.users.Save(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.AssignRole").Str("user_id", id).Msg("failed to save role")
		return models.User{}, mapStoreError(err)
	}

	return saved, nil
}

// passwordMatches verifies password against hash. A malformed stored hash
// is logged and treated as a mismatch.
func passwordMatches(ctx context.Context, hasher crypto.PasswordHasher, password, hash string) bool {
	ok, err := hasher.Verify(password, hash)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "service.passwordMatches").Msg("stored password hash is unusable")
		return false
	}
	return ok
}
