package ports

import (
	"context"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

// CreateNoteInput carries all data needed to create a new note. BoardID is
// required; optional fields fall back to domain defaults.
type CreateNoteInput struct {
	Title     string
	Content   string
	PositionX *float64
	PositionY *float64
	Width     float64
	Height    float64
	Color     string
	Tags      []string
	BoardID   string
}

// UpdateNoteInput replaces the mutable fields of a note: title, content,
// position, size, color and tags. Identity, ownership and creation time are
// never touched.
type UpdateNoteInput struct {
	Title     string
	Content   string
	PositionX float64
	PositionY float64
	Width     float64
	Height    float64
	Color     string
	Tags      []string
}

// NoteService defines use-case operations for notes, all scoped to the
// requesting user.
type NoteService interface {
	List(ctx context.Context, user *domain.User) ([]*domain.Note, error)
	// ListByBoard re-validates board ownership first; a foreign or missing
	// board yields ErrBoardNotFound, never a silently empty list.
	ListByBoard(ctx context.Context, boardID string, user *domain.User) ([]*domain.Note, error)
	Get(ctx context.Context, id string, user *domain.User) (*domain.Note, error)
	Create(ctx context.Context, input CreateNoteInput, user *domain.User) (*domain.Note, error)
	Update(ctx context.Context, id string, input UpdateNoteInput, user *domain.User) (*domain.Note, error)
	Delete(ctx context.Context, id string, user *domain.User) (bool, error)
	ListByTag(ctx context.Context, tag string, user *domain.User) ([]*domain.Note, error)
}
