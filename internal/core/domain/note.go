package domain

import (
	"errors"
	"time"
)

const (
	// MaxNoteContentLength caps the content field of a note.
	MaxNoteContentLength = 1000

	// DefaultNoteColor is the yellow applied when a note is created without one.
	DefaultNoteColor = "#fef3c7"

	// DefaultNotePositionX and DefaultNotePositionY place new notes that
	// arrive without explicit coordinates.
	DefaultNotePositionX = 100.0
	DefaultNotePositionY = 100.0
)

var ErrNoteNotFound = errors.New("note not found")
var ErrNoteContentTooLong = errors.New("note content exceeds maximum length")

// Note is a positioned, colored, taggable text item. It belongs to exactly
// one board and one user; OwnerID always equals the owning board's OwnerID.
// ID, OwnerID, BoardID and CreatedAt are never changed after creation.
type Note struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	PositionX float64   `json:"position_x" bson:"position_x"`
	PositionY float64   `json:"position_y" bson:"position_y"`
	Width     float64   `json:"width" bson:"width"`
	Height    float64   `json:"height" bson:"height"`
	Color     string    `json:"color" bson:"color"`
	Tags      []string  `json:"tags" bson:"tags"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	BoardID   string    `json:"board_id" bson:"board_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// BelongsTo reports whether the note is owned by the given user.
func (n *Note) BelongsTo(userID string) bool {
	return n != nil && n.OwnerID == userID
}

// HasTag reports whether the note carries the given tag. Tag order is
// insignificant for filtering.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
