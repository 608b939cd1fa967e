package ports

import (
	"context"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

// BoardRepository defines persistence operations for boards.
type BoardRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Board, error)
	// FindByOwner returns the owner's boards ordered by creation time ascending.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Board, error)
	FindByNameAndOwner(ctx context.Context, name, ownerID string) (*domain.Board, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	Save(ctx context.Context, b *domain.Board) error
	// DeleteCascade removes the board and every note it owns as one
	// transactional unit; either all writes apply or none do.
	DeleteCascade(ctx context.Context, id string) error
}
