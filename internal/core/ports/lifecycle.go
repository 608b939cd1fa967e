package ports

import (
	"context"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

// DatasetRepository persists multi-entity lifecycle writes atomically.
type DatasetRepository interface {
	// SeedDataset stores the board and its starter notes as one
	// transactional unit.
	SeedDataset(ctx context.Context, board *domain.Board, notes []*domain.Note) error
	// PurgeOwner removes every note and every board owned by the given user
	// as one transactional unit.
	PurgeOwner(ctx context.Context, ownerID string) error
}

// LifecycleManager decides, per authenticated account, whether to seed or
// purge the starter dataset at session-boundary events. It is stateless and
// re-derives everything from storage on each call.
type LifecycleManager interface {
	// SeedOnRegister gives an ordinary account its one-time starter dataset.
	// Demo accounts are skipped; an existing "Main Board" makes it a no-op.
	SeedOnRegister(ctx context.Context, user *domain.User) error
	// SeedOnLogin materializes the demo dataset if absent. No-op for
	// ordinary accounts and when the dataset already exists.
	SeedOnLogin(ctx context.Context, user *domain.User) error
	// PurgeOnLogout unconditionally removes all demo data. No-op for
	// ordinary accounts.
	PurgeOnLogout(ctx context.Context, user *domain.User) error
}
