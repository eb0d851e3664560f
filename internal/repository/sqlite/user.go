package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/citasmedicas/booking-api/internal/model"
	apperrors "github.com/citasmedicas/booking-api/pkg/errors"
)

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	defer r.rec.observe("create", "users", time.Now())

	query := `
		INSERT INTO users (id, email, name, phone, address, birth_date, password_hash, salt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Phone,
		user.Address,
		user.BirthDate,
		user.PasswordHash,
		user.Salt,
	)
	if err != nil {
		if isConstraintErr(err) {
			return apperrors.Conflict("email already registered", err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	defer r.rec.observe("get", "users", time.Now())

	query := `
		SELECT id, email, name, phone, address, birth_date, password_hash, salt
		FROM users
		WHERE id = ?
	`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("user", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	defer r.rec.observe("get_by_email", "users", time.Now())

	query := `
		SELECT id, email, name, phone, address, birth_date, password_hash, salt
		FROM users
		WHERE email = ?
	`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("user", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	defer r.rec.observe("update", "users", time.Now())

	query := `
		UPDATE users
		SET email = ?, name = ?, phone = ?, address = ?, birth_date = ?, password_hash = ?, salt = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		user.Email,
		user.Name,
		user.Phone,
		user.Address,
		user.BirthDate,
		user.PasswordHash,
		user.Salt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("user", nil)
	}
	return nil
}
