package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/streama/internal/crypto"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/store"
	"github.com/MKhiriev/streama/models"
)

type userService struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher
	ids    IDGenerator

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, hasher crypto.PasswordHasher, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
		ids:    ids,
		logger: logger,
	}
}

// Create adds a user with an explicit role. Used by admins; self-service
// accounts go through AuthService.SignUp.
func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return models.User{}, ErrInvalidRole
	}

	created, err := s.users.Create(ctx, models.User{
		ID:          s.ids.Generate(),
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Avatar:      models.DefaultAvatar,
		Role:        role,
		Preferences: models.DefaultPreferences(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.Create").Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	return created, nil
}

func (s *userService) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.FindAll").Msg("failed to list users")
		return nil, err
	}
	return users, nil
}

func (s *userService) FindOne(ctx context.Context, id string, caller models.Identity) (models.User, error) {
	if err := checkOwnerOrAdmin(id, caller); err != nil {
		return models.User{}, err
	}

	user, err := s.users.FindByID(ctx, id, models.FindOptions{})
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	return user, nil
}

// Update applies patch to user id. Patch preferences are merged over the
// stored ones field by field; an empty phone clears it.
func (s *userService) Update(ctx context.Context, id string, caller models.Identity, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := checkOwnerOrAdmin(id, caller); err != nil {
		return models.User{}, err
	}

	user, err := s.users.FindByID(ctx, id, models.FindOptions{})
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	if err = applyPatch(&user, patch); err != nil {
		log.Err(err).Str("func", "userService.Update").Str("user_id", id).Msg("failed to apply patch")
		return models.User{}, err
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "userService.Update").Str("user_id", id).Msg("failed to save user")
		return models.User{}, mapStoreError(err)
	}

	return saved, nil
}

// Remove deletes user id. Admins may soft or hard delete any account, other
// callers may only soft delete their own.
func (s *userService) Remove(ctx context.Context, id string, soft bool, caller models.Identity) error {
	log := logger.FromContext(ctx)

	if !caller.IsAdmin() && !(soft && caller.Owns(id)) {
		log.Info().
			Str("func", "userService.Remove").
			Str("caller_id", caller.ID).
			Str("target_id", id).
			Bool("soft", soft).
			Msg("removal denied")
		return ErrAccessDenied
	}

	var err error
	if soft {
		err = s.users.SoftDelete(ctx, id)
	} else {
		err = s.users.HardDelete(ctx, id)
	}
	if err != nil {
		return mapStoreError(err)
	}

	log.Info().Str("func", "userService.Remove").Str("user_id", id).Bool("soft", soft).Msg("user removed")
	return nil
}

// Recover restores a soft-deleted account after checking its credentials.
func (s *userService) Recover(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindByEmail(ctx, email, models.FindOptions{WithPassword: true, WithDeleted: true})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "userService.Recover").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !passwordMatches(ctx, s.hasher, password, user.Password) {
		return models.User{}, ErrInvalidCredentials
	}

	if !user.IsDeleted() {
		return models.User{}, ErrNotDeleted
	}

	recovered, err := s.users.Recover(ctx, user.ID)
	if err != nil {
		// lost a race with a concurrent recovery
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrNotDeleted
		}
		log.Err(err).Str("func", "userService.Recover").Str("user_id", user.ID).Msg("failed to recover user")
		return models.User{}, err
	}

	return recovered, nil
}

func checkOwnerOrAdmin(id string, caller models.Identity) error {
	if caller.IsAdmin() || caller.Owns(id) {
		return nil
	}
	return ErrAccessDenied
}

func applyPatch(user *models.User, patch models.UserPatch) error {
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.FirstName != nil {
		user.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = patch.Phone
		if *patch.Phone == "" {
			user.Phone = nil
		}
	}
	if patch.Bio != nil {
		user.Bio = patch.Bio
	}
	if patch.TMDBKey != nil {
		user.TMDBKey = patch.TMDBKey
	}
	if patch.TraktKey != nil {
		user.TraktKey = patch.TraktKey
	}
	if patch.Preferences != nil {
		merged, err := models.MergePreferences(*patch.Preferences, user.Preferences)
		if err != nil {
			return err
		}
		user.Preferences = merged
	}
	return nil
}
