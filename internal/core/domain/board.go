package domain

import (
	"errors"
	"time"
)

// MaxBoardsPerUser is the per-user board quota, enforced only on create.
const MaxBoardsPerUser = 20

// MainBoardName is the name of the board every account is seeded with.
const MainBoardName = "Main Board"

var ErrBoardNotFound = errors.New("board not found")
var ErrBoardQuotaExceeded = errors.New("maximum number of boards reached for this user")

// Board is a named container of notes owned by exactly one user.
// Ownership is immutable after creation.
type Board struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// BelongsTo reports whether the board is owned by the given user.
// Every read and mutation of a board goes through this predicate.
func (b *Board) BelongsTo(userID string) bool {
	return b != nil && b.OwnerID == userID
}
