package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/streama/internal/crypto"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	hasher crypto.PasswordHasher
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection. hasher is applied to every password before it is
// written.
func NewUserRepository(db *DB, hasher crypto.PasswordHasher, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		hasher: hasher,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, withPassword bool) (models.User, error) {
	var user models.User
	dest := []any{
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.Bio,
		&user.Avatar,
		&user.Role,
		&user.TMDBKey,
		&user.TraktKey,
		&user.LastLoginAt,
		&user.Preferences,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	}
	if withPassword {
		dest = append(dest, &user.Password)
	}

	err := row.Scan(dest...)
	return user, err
}

// FindByEmail implements [UserRepository].
func (r *userRepository) FindByEmail(ctx context.Context, email string, opts models.FindOptions) (models.User, error) {
	return r.findOne(ctx, "email", email, opts)
}

// FindByID implements [UserRepository].
func (r *userRepository) FindByID(ctx context.Context, id string, opts models.FindOptions) (models.User, error) {
	return r.findOne(ctx, "id", id, opts)
}

func (r *userRepository) findOne(ctx context.Context, column, value string, opts models.FindOptions) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(column, value, opts)
	if err != nil {
		log.Err(err).Str("func", "userRepository.findOne").Str("by", column).Msg("failed to create query")
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...), opts.WithPassword)
	if err != nil {
		return models.User{}, r.rowError(ctx, "userRepository.findOne", err)
	}

	return user, nil
}

// FindAll implements [UserRepository].
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAllUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindAll").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindAll").Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows, false)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "userRepository.FindAll").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "userRepository.FindAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, rowsErr)
	}

	return users, nil
}

// Create implements [UserRepository]. The returned user never carries the
// password hash.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.hashPassword(&user); err != nil {
		log.Err(err).Str("func", "userRepository.Create").Msg("failed to hash password")
		return models.User{}, err
	}

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.Create").Msg("failed to create query")
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		return models.User{}, r.rowError(ctx, "userRepository.Create", err)
	}

	log.Debug().Str("func", "userRepository.Create").Str("user_id", created.ID).Msg("user created")
	return created, nil
}

// Save implements [UserRepository].
func (r *userRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.hashPassword(&user); err != nil {
		log.Err(err).Str("func", "userRepository.Save").Str("user_id", user.ID).Msg("failed to hash password")
		return models.User{}, err
	}

	query, args, err := buildSaveUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.Save").Str("user_id", user.ID).Msg("failed to create query")
		return models.User{}, err
	}

	saved, err := scanUser(r.db.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		return models.User{}, r.rowError(ctx, "userRepository.Save", err)
	}

	return saved, nil
}

// UpdateLastLogin implements [UserRepository].
func (r *userRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query, args, err := buildUpdateLastLoginQuery(id, at)
	if err != nil {
		return err
	}
	return r.execAffectingOne(ctx, "userRepository.UpdateLastLogin", id, query, args)
}

// SoftDelete implements [UserRepository]. Deleting an already deleted row
// yields ErrUserNotFound.
func (r *userRepository) SoftDelete(ctx context.Context, id string) error {
	query, args, err := buildSoftDeleteUserQuery(id)
	if err != nil {
		return err
	}
	return r.execAffectingOne(ctx, "userRepository.SoftDelete", id, query, args)
}

// Recover implements [UserRepository]. A row that is not soft-deleted
// yields ErrUserNotFound.
func (r *userRepository) Recover(ctx context.Context, id string) (models.User, error) {
	query, args, err := buildRecoverUserQuery(id)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		return models.User{}, r.rowError(ctx, "userRepository.Recover", err)
	}

	return user, nil
}

// HardDelete implements [UserRepository].
func (r *userRepository) HardDelete(ctx context.Context, id string) error {
	query, args, err := buildHardDeleteUserQuery(id)
	if err != nil {
		return err
	}
	return r.execAffectingOne(ctx, "userRepository.HardDelete", id, query, args)
}

// hashPassword replaces a plaintext password with its hash in place.
// Empty and already hashed values are left as they are.
func (r *userRepository) hashPassword(user *models.User) error {
	if user.Password == "" || r.hasher.IsHashed(user.Password) {
		return nil
	}

	hash, err := r.hasher.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	user.Password = hash
	return nil
}

func (r *userRepository) execAffectingOne(ctx context.Context, funcName, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", id).Str("pg_code", postgresError(err)).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// rowError classifies an error returned by QueryRow(...).Scan.
func (r *userRepository) rowError(ctx context.Context, funcName string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	log := logger.FromContext(ctx)
	if conflict := uniqueViolation(err); conflict != nil {
		log.Warn().Str("func", funcName).Err(conflict).Msg("unique constraint violated")
		return conflict
	}

	log.Err(err).Str("func", funcName).Str("pg_code", postgresError(err)).Msg("unexpected DB error")
	if postgresError(err) != "" {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return fmt.Errorf("%w: %w", ErrScanningRow, err)
}
