package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/pkg/database"
	apperrors "github.com/elopinion/elopinion/pkg/errors"
)

// UserRepository implements repository.UserRepository using PostgreSQL.
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user with the optional profile relation. The profile
// row may be absent; such users are never admins.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT u.id, u.username, u.created_at, p.admin
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.id = $1`

	var (
		u     domain.User
		admin *bool
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Username,
		&u.CreatedAt,
		&admin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	if admin != nil {
		u.Profile = &domain.Profile{Admin: *admin}
	}

	return &u, nil
}
