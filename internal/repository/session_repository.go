package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avaluo/landval/internal/database"
	"github.com/avaluo/landval/internal/models"
)

// SessionRepository resolves bearer tokens to identities. It satisfies
// middleware.TokenResolver.
type SessionRepository interface {
	// ResolveToken returns nil, nil for unknown tokens or unapproved users.
	// Expired sessions are returned as-is; the caller checks ExpiresAt.
	ResolveToken(ctx context.Context, token string) (*models.Identity, error)
}

type sessionRepository struct {
	db *database.Database
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *database.Database) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) ResolveToken(ctx context.Context, token string) (*models.Identity, error) {
	query := `
		SELECT s.user_id, u.role, s.expires_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND u.approved
	`

	var identity models.Identity
	err := r.db.Pool.QueryRow(ctx, query, token).Scan(&identity.UserID, &identity.Role, &identity.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}
	return &identity, nil
}
