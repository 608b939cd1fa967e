package ports

import (
	"context"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

// NoteRepository defines persistence operations for notes.
type NoteRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error)
	FindByBoardAndOwner(ctx context.Context, boardID, ownerID string) ([]*domain.Note, error)
	// FindByTag is not owner-scoped; the service layer filters the result
	// down to the requesting user's notes.
	FindByTag(ctx context.Context, tag string) ([]*domain.Note, error)
	Save(ctx context.Context, n *domain.Note) error
	Delete(ctx context.Context, id string) error
}
