// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateUser persists a new user record and returns it with the
// store-assigned ID. CreatedAt and UpdatedAt are set to the current UTC time.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return r.insertUser(ctx, r.db.DB, user)
}

func (r *userRepository) insertUser(ctx context.Context, q queryRower, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := r.db.createUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.insertUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	err = q.QueryRowContext(ctx, query, args...).Scan(&user.ID)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Warn().Str("func", "*userRepository.insertUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.insertUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "*userRepository.insertUser").Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

// FindUserByEmail retrieves the user record registered under email.
//
// Error handling:
//   - no row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Gender,
		&user.ProfilePicture,
		&user.Status,
		&user.Role,
		&user.EmailVerification,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) CountUsersByRole(ctx context.Context, role models.Role) (int64, error) {
	return r.countUsersByRole(ctx, r.db.DB, role)
}

func (r *userRepository) countUsersByRole(ctx context.Context, q queryRower, role models.Role) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.countUsersByRoleQuery(role)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.countUsersByRole").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.countUsersByRole").Str("role", string(role)).Msg("error counting users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// CreateFirstAdmin inserts admin only if no account with the admin role
// exists yet. The check and the insert share one serializable transaction,
// so two concurrent bootstraps cannot both succeed.
//
// Error handling:
//   - an admin already exists → [ErrAdminAlreadyExists].
//   - a concurrent transaction won the race → [ErrAdminAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
func (r *userRepository) CreateFirstAdmin(ctx context.Context, admin models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.inTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, func(tx *sql.Tx) error {
		count, err := r.countUsersByRole(ctx, tx, models.RoleAdmin)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAdminAlreadyExists
		}

		created, err = r.insertUser(ctx, tx, admin)
		return err
	})

	switch {
	case err == nil:
		log.Info().Str("func", "*userRepository.CreateFirstAdmin").Int64("user_id", created.ID).Msg("first admin created")
		return created, nil
	case errors.Is(err, ErrAdminAlreadyExists), errors.Is(err, ErrEmailAlreadyExists):
		return models.User{}, err
	case r.db.classify(err) == SerializationFailure:
		log.Warn().Err(err).Str("func", "*userRepository.CreateFirstAdmin").Msg("concurrent admin bootstrap detected")
		return models.User{}, ErrAdminAlreadyExists
	default:
		log.Err(err).Str("func", "*userRepository.CreateFirstAdmin").Msg("error creating first admin")
		return models.User{}, err
	}
}
