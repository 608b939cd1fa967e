package ports

import (
	"context"
	"time"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the presented token and, for the demo account, purges
	// its session dataset.
	Logout(ctx context.Context, token string, user *domain.User) error
}

// TokenRevoker invalidates issued tokens ahead of their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
