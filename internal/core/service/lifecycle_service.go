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

// LifecycleService seeds and purges the starter dataset at session-boundary
// events. Ordinary accounts are seeded exactly once at registration and keep
// the data; the demo account is reseeded on every login and wiped on every
// logout so each session starts from the canonical state.
type LifecycleService struct {
	users   ports.UserRepository
	boards  ports.BoardRepository
	dataset ports.DatasetRepository
	logger  zerolog.Logger
}

func NewLifecycleService(users ports.UserRepository, boards ports.BoardRepository, dataset ports.DatasetRepository, logger zerolog.Logger) *LifecycleService {
	return &LifecycleService{users: users, boards: boards, dataset: dataset, logger: logger}
}

// SeedOnRegister creates the "Main Board" and starter notes for a newly
// registered ordinary account. The demo account is skipped (it has its own
// login-time path), and an existing main board makes the call a no-op so it
// stays safe against double invocation.
func (s *LifecycleService) SeedOnRegister(ctx context.Context, user *domain.User) error {
	if user == nil {
		s.logger.Info().Msg("no user to seed, skipping")
		return nil
	}
	if user.Kind == domain.KindDemo {
		s.logger.Info().Str("user_id", user.ID).Msg("demo account registers through its own path, skipping seed")
		return nil
	}
	return s.seed(ctx, user)
}

// SeedOnLogin materializes the demo dataset when the demo account logs in.
// If the dataset already exists within the session, nothing happens.
func (s *LifecycleService) SeedOnLogin(ctx context.Context, user *domain.User) error {
	if user == nil || user.Kind != domain.KindDemo {
		return nil
	}

	// Re-resolve from storage; a missing demo account means bootstrap has
	// not run and must not fail the login.
	demo, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Msg("demo account not found, skipping seed")
			return nil
		}
		return err
	}
	return s.seed(ctx, demo)
}

// PurgeOnLogout deletes every note and board owned by the demo account,
// regardless of what the session added or edited. Ordinary accounts are
// never purged.
func (s *LifecycleService) PurgeOnLogout(ctx context.Context, user *domain.User) error {
	if user == nil || user.Kind != domain.KindDemo {
		return nil
	}

	demo, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Msg("demo account not found, skipping purge")
			return nil
		}
		return err
	}

	if err := s.dataset.PurgeOwner(ctx, demo.ID); err != nil {
		s.logger.Error().Err(err).Str("user_id", demo.ID).Msg("failed to purge demo data")
		return err
	}

	s.logger.Info().Str("user_id", demo.ID).Msg("demo data purged")
	return nil
}

func (s *LifecycleService) seed(ctx context.Context, user *domain.User) error {
	existing, err := s.boards.FindByNameAndOwner(ctx, domain.MainBoardName, user.ID)
	if err != nil && !errors.Is(err, domain.ErrBoardNotFound) {
		return err
	}
	if existing != nil {
		s.logger.Info().Str("user_id", user.ID).Msg("main board already exists, skipping seed")
		return nil
	}

	now := time.Now().UTC()
	board := &domain.Board{
		ID:        uuid.New().String(),
		Name:      domain.MainBoardName,
		OwnerID:   user.ID,
		CreatedAt: now,
	}

	if err := s.dataset.SeedDataset(ctx, board, starterNotes(user.ID, board.ID, now)); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to seed starter dataset")
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Str("board_id", board.ID).Msg("starter dataset seeded")
	return nil
}

// starterNotes builds the three fixed notes every freshly seeded account
// starts with. Titles, content, positions, sizes and colors are part of the
// product contract and must not drift.
func starterNotes(ownerID, boardID string, createdAt time.Time) []*domain.Note {
	base := domain.Note{
		Tags:      []string{},
		OwnerID:   ownerID,
		BoardID:   boardID,
		CreatedAt: createdAt,
	}

	welcome := base
	welcome.ID = uuid.New().String()
	welcome.Title = "Welcome to Notes Management!"
	welcome.Content = "This is a demo note. You can drag me around, edit me, or delete me. Try it out!"
	welcome.PositionX = 100
	welcome.PositionY = 100
	welcome.Width = 385
	welcome.Height = 300
	welcome.Color = "#fef3c7"

	gettingStarted := base
	gettingStarted.ID = uuid.New().String()
	gettingStarted.Title = "Getting Started"
	gettingStarted.Content = "1. Manage your boards by using the retractable panel on the left\n2. Create new notes by clicking the + button\n3. Drag notes to organize\n4. Change note size by dragging the right bottom corner\n5. Use tags to categorize\n6. Set reminders\n7. Search by tags or title\n8. Switch themes with the moon/sun button"
	gettingStarted.PositionX = 530
	gettingStarted.PositionY = 150
	gettingStarted.Width = 275
	gettingStarted.Height = 500
	gettingStarted.Color = "#dbeafe"

	security := base
	security.ID = uuid.New().String()
	security.Title = "Security Features"
	security.Content = "This app uses:\n• JWT authentication\n• BCrypt password hashing\n• Full data authorization\n• Per-user isolation of boards and notes"
	security.PositionX = 850
	security.PositionY = 50
	security.Width = 300
	security.Height = 350
	security.Color = "#d1fae5"

	return []*domain.Note{&welcome, &gettingStarted, &security}
}
