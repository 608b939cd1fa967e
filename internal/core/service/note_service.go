package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
	"github.com/KarolinaSkr/NotesManagement/internal/core/ports"
)

// NoteService implements ownership-scoped note operations. Board ownership
// checks are delegated to the board service so the two layers cannot drift.
type NoteService struct {
	repo   ports.NoteRepository
	boards ports.BoardService
	logger zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, boards ports.BoardService, logger zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, boards: boards, logger: logger}
}

// List returns every note the user owns.
func (s *NoteService) List(ctx context.Context, user *domain.User) ([]*domain.Note, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByOwner(ctx, user.ID)
}

// ListByBoard returns the notes on a board after re-validating that the
// board belongs to the user. A foreign board id surfaces as
// ErrBoardNotFound rather than an empty result.
func (s *NoteService) ListByBoard(ctx context.Context, boardID string, user *domain.User) ([]*domain.Note, error) {
	board, err := s.boards.Get(ctx, boardID, user)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByBoardAndOwner(ctx, board.ID, user.ID)
}

// Get returns the note only when it exists and is owned by the user,
// collapsing ownership mismatch into not-found, same as board lookups.
func (s *NoteService) Get(ctx context.Context, id string, user *domain.User) (*domain.Note, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.BelongsTo(user.ID) {
		return nil, domain.ErrNoteNotFound
	}
	return note, nil
}

// Create persists a new note on a board the user owns. Unspecified optional
// fields fall back to domain defaults.
func (s *NoteService) Create(ctx context.Context, input ports.CreateNoteInput, user *domain.User) (*domain.Note, error) {
	board, err := s.boards.Get(ctx, input.BoardID, user)
	if err != nil {
		return nil, err
	}
	if len(input.Content) > domain.MaxNoteContentLength {
		return nil, domain.ErrNoteContentTooLong
	}

	note := &domain.Note{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Content:   input.Content,
		PositionX: domain.DefaultNotePositionX,
		PositionY: domain.DefaultNotePositionY,
		Width:     input.Width,
		Height:    input.Height,
		Color:     input.Color,
		Tags:      input.Tags,
		OwnerID:   user.ID,
		BoardID:   board.ID,
		CreatedAt: time.Now().UTC(),
	}
	if input.PositionX != nil {
		note.PositionX = *input.PositionX
	}
	if input.PositionY != nil {
		note.PositionY = *input.PositionY
	}
	if note.Color == "" {
		note.Color = domain.DefaultNoteColor
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	if err := s.repo.Save(ctx, note); err != nil {
		s.logger.Error().Err(err).Str("board_id", board.ID).Msg("failed to create note")
		return nil, err
	}

	s.logger.Info().Str("note_id", note.ID).Str("board_id", board.ID).Str("user_id", user.ID).Msg("note created")
	return note, nil
}

// Update replaces the mutable fields of a note the user owns. Identity,
// ownership, board membership and creation time stay untouched.
func (s *NoteService) Update(ctx context.Context, id string, input ports.UpdateNoteInput, user *domain.User) (*domain.Note, error) {
	note, err := s.Get(ctx, id, user)
	if err != nil {
		return nil, err
	}
	if len(input.Content) > domain.MaxNoteContentLength {
		return nil, domain.ErrNoteContentTooLong
	}

	note.Title = input.Title
	note.Content = input.Content
	note.PositionX = input.PositionX
	note.PositionY = input.PositionY
	note.Width = input.Width
	note.Height = input.Height
	note.Color = input.Color
	note.Tags = input.Tags
	if note.Tags == nil {
		note.Tags = []string{}
	}

	if err := s.repo.Save(ctx, note); err != nil {
		s.logger.Error().Err(err).Str("note_id", id).Msg("failed to update note")
		return nil, err
	}
	return note, nil
}

// Delete reports whether a deletion occurred. Missing and foreign notes both
// yield false without error.
func (s *NoteService) Delete(ctx context.Context, id string, user *domain.User) (bool, error) {
	if user == nil {
		return false, domain.ErrUnauthenticated
	}
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return false, nil
		}
		return false, err
	}
	if !note.BelongsTo(user.ID) {
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("note_id", id).Msg("failed to delete note")
		return false, err
	}
	return true, nil
}

// ListByTag returns the user's notes carrying the given tag. The tag query
// itself is not owner-scoped at the persistence layer, so the result is
// filtered here before anything reaches the caller.
func (s *NoteService) ListByTag(ctx context.Context, tag string, user *domain.User) ([]*domain.Note, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	notes, err := s.repo.FindByTag(ctx, tag)
	if err != nil {
		return nil, err
	}

	owned := make([]*domain.Note, 0, len(notes))
	for _, n := range notes {
		if n.BelongsTo(user.ID) {
			owned = append(owned, n)
		}
	}
	return owned, nil
}
