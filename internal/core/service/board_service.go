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

// BoardService implements ownership-scoped board operations.
type BoardService struct {
	repo   ports.BoardRepository
	logger zerolog.Logger
}

func NewBoardService(repo ports.BoardRepository, logger zerolog.Logger) *BoardService {
	return &BoardService{repo: repo, logger: logger}
}

// List returns the user's boards ordered by creation time ascending.
func (s *BoardService) List(ctx context.Context, user *domain.User) ([]*domain.Board, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByOwner(ctx, user.ID)
}

// Get returns the board only when it exists and is owned by the user. An
// ownership mismatch is indistinguishable from non-existence so that ids
// belonging to other users leak nothing.
func (s *BoardService) Get(ctx context.Context, id string, user *domain.User) (*domain.Board, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	board, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !board.BelongsTo(user.ID) {
		return nil, domain.ErrBoardNotFound
	}
	return board, nil
}

// Create persists a new board for the user after checking the board quota.
func (s *BoardService) Create(ctx context.Context, name string, user *domain.User) (*domain.Board, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	count, err := s.repo.CountByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxBoardsPerUser {
		s.logger.Info().Str("user_id", user.ID).Int64("count", count).Msg("board quota reached")
		return nil, domain.ErrBoardQuotaExceeded
	}

	board := &domain.Board{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, board); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to create board")
		return nil, err
	}

	s.logger.Info().Str("board_id", board.ID).Str("user_id", user.ID).Msg("board created")
	return board, nil
}

// Update renames the board in place. The same not-found collapse applies as
// in Get.
func (s *BoardService) Update(ctx context.Context, id, newName string, user *domain.User) (*domain.Board, error) {
	board, err := s.Get(ctx, id, user)
	if err != nil {
		return nil, err
	}

	board.Name = newName
	if err := s.repo.Save(ctx, board); err != nil {
		s.logger.Error().Err(err).Str("board_id", id).Msg("failed to rename board")
		return nil, err
	}
	return board, nil
}

// Delete removes the board together with every note it owns and reports
// whether a deletion occurred. Missing and foreign boards both yield false.
func (s *BoardService) Delete(ctx context.Context, id string, user *domain.User) (bool, error) {
	if user == nil {
		return false, domain.ErrUnauthenticated
	}
	board, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			return false, nil
		}
		return false, err
	}
	if !board.BelongsTo(user.ID) {
		return false, nil
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("board_id", id).Msg("failed to delete board")
		return false, err
	}

	s.logger.Info().Str("board_id", id).Str("user_id", user.ID).Msg("board deleted")
	return true, nil
}

// Count returns how many boards the user owns.
func (s *BoardService) Count(ctx context.Context, user *domain.User) (int64, error) {
	if user == nil {
		return 0, domain.ErrUnauthenticated
	}
	return s.repo.CountByOwner(ctx, user.ID)
}
