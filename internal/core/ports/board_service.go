package ports

import (
	"context"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

// BoardService defines use-case operations for boards. Every operation is
// scoped to the requesting user: an id that exists but belongs to someone
// else behaves exactly as if it did not exist.
type BoardService interface {
	List(ctx context.Context, user *domain.User) ([]*domain.Board, error)
	Get(ctx context.Context, id string, user *domain.User) (*domain.Board, error)
	Create(ctx context.Context, name string, user *domain.User) (*domain.Board, error)
	Update(ctx context.Context, id, newName string, user *domain.User) (*domain.Board, error)
	// Delete reports whether a deletion occurred. A missing or foreign board
	// yields false with no error.
	Delete(ctx context.Context, id string, user *domain.User) (bool, error)
	Count(ctx context.Context, user *domain.User) (int64, error)
}
