package repository

import (
	"context"
	"database/sql"
	"fmt"

	"leo-furniture-api/internal/model"
)

const userColumns = `id, name, email, password_hash, role, created_at`

// CreateUser inserts a new account. Returns ErrDuplicate if the email is
// already registered.
func (s *SQLStore) CreateUser(ctx context.Context, name, email, passwordHash, role string) (*model.User, error) {
	id, err := s.insertID(ctx,
		`INSERT INTO users (name, email, password_hash, role) VALUES (?, ?, ?, ?)`,
		name, email, passwordHash, role,
	)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return s.GetUser(ctx, id)
}

// GetUser returns the account for an ID, or nil if none exists.
func (s *SQLStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, s.db.Rebind(
		`SELECT `+userColumns+` FROM users WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail returns the account for an email, or nil if none exists.
func (s *SQLStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, s.db.Rebind(
		`SELECT `+userColumns+` FROM users WHERE email = ?`), email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return &user, nil
}

// Ensure SQLStore implements UserRepository
var _ UserRepository = (*SQLStore)(nil)
