package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
	"github.com/KarolinaSkr/NotesManagement/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubNoteRepo struct {
	notes   map[string]*domain.Note
	saveErr error
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{notes: make(map[string]*domain.Note)}
}

func (r *stubNoteRepo) FindByID(_ context.Context, id string) (*domain.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNoteRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Note, error) {
	var out []*domain.Note
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNoteRepo) FindByBoardAndOwner(_ context.Context, boardID, ownerID string) ([]*domain.Note, error) {
	var out []*domain.Note
	for _, n := range r.notes {
		if n.BoardID == boardID && n.OwnerID == ownerID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

// FindByTag is deliberately not owner-scoped, mirroring the real query.
func (r *stubNoteRepo) FindByTag(_ context.Context, tag string) ([]*domain.Note, error) {
	var out []*domain.Note
	for _, n := range r.notes {
		if n.HasTag(tag) {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNoteRepo) Save(_ context.Context, n *domain.Note) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *n
	r.notes[n.ID] = &clone
	return nil
}

func (r *stubNoteRepo) Delete(_ context.Context, id string) error {
	delete(r.notes, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newNoteFixture(t *testing.T) (*stubNoteRepo, *stubBoardRepo, *NoteService) {
	t.Helper()
	noteRepo := newStubNoteRepo()
	boardRepo := newStubBoardRepo()
	boards := NewBoardService(boardRepo, discardLogger)
	return noteRepo, boardRepo, NewNoteService(noteRepo, boards, discardLogger)
}

func seedNote(r *stubNoteRepo, id, ownerID, boardID string, tags ...string) *domain.Note {
	n := &domain.Note{
		ID:        id,
		Title:     "note " + id,
		Color:     domain.DefaultNoteColor,
		Tags:      tags,
		OwnerID:   ownerID,
		BoardID:   boardID,
		CreatedAt: time.Now(),
	}
	r.notes[id] = n
	return n
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestNoteService_Create_AppliesDefaults(t *testing.T) {
	noteRepo, boardRepo, svc := newNoteFixture(t)
	seedBoard(boardRepo, "b1", "u1", time.Now())

	note, err := svc.Create(context.Background(), ports.CreateNoteInput{
		Title:   "Shopping",
		BoardID: "b1",
	}, testUser("u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.Color != domain.DefaultNoteColor {
		t.Errorf("expected default color %s, got %s", domain.DefaultNoteColor, note.Color)
	}
	if note.PositionX != domain.DefaultNotePositionX || note.PositionY != domain.DefaultNotePositionY {
		t.Errorf("expected default position, got (%v,%v)", note.PositionX, note.PositionY)
	}
	if note.Tags == nil || len(note.Tags) != 0 {
		t.Errorf("expected empty tag set, got %v", note.Tags)
	}
	if note.OwnerID != "u1" || note.BoardID != "b1" {
		t.Errorf("ownership wrong: owner=%s board=%s", note.OwnerID, note.BoardID)
	}
	if _, ok := noteRepo.notes[note.ID]; !ok {
		t.Error("note not persisted")
	}
}

func TestNoteService_Create_ExplicitPositionKept(t *testing.T) {
	_, boardRepo, svc := newNoteFixture(t)
	seedBoard(boardRepo, "b1", "u1", time.Now())

	x, y := 42.0, 7.5
	note, err := svc.Create(context.Background(), ports.CreateNoteInput{
		Title:     "placed",
		PositionX: &x,
		PositionY: &y,
		Color:     "#dbeafe",
		Tags:      []string{"work"},
		BoardID:   "b1",
	}, testUser("u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.PositionX != 42.0 || note.PositionY != 7.5 {
		t.Errorf("explicit position overwritten: (%v,%v)", note.PositionX, note.PositionY)
	}
	if note.Color != "#dbeafe" {
		t.Errorf("explicit color overwritten: %s", note.Color)
	}
}

func TestNoteService_Create_ForeignBoardRejected(t *testing.T) {
	noteRepo, boardRepo, svc := newNoteFixture(t)
	seedBoard(boardRepo, "b1", "u1", time.Now())

	_, err := svc.Create(context.Background(), ports.CreateNoteInput{
		Title:   "sneaky",
		BoardID: "b1",
	}, testUser("u2"))
	if !errors.Is(err, domain.ErrBoardNotFound) {
		t.Fatalf("expected ErrBoardNotFound, got %v", err)
	}
	if len(noteRepo.notes) != 0 {
		t.Error("no note may be created on a foreign board")
	}
}

func TestNoteService_Create_ContentTooLong(t *testing.T) {
	_, boardRepo, svc := newNoteFixture(t)
	seedBoard(boardRepo, "b1", "u1", time.Now())

	_, err := svc.Create(context.Background(), ports.CreateNoteInput{
		Title:   "long",
		Content: strings.Repeat("x", domain.MaxNoteContentLength+1),
		BoardID: "b1",
	}, testUser("u1"))
	if !errors.Is(err, domain.ErrNoteContentTooLong) {
		t.Fatalf("expected ErrNoteContentTooLong, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Get / List
// ---------------------------------------------------------------------------

func TestNoteService_Get_ForeignNoteLooksMissing(t *testing.T) {
	noteRepo, _, svc := newNoteFixture(t)
	seedNote(noteRepo, "n1", "u1", "b1")

	if _, err := svc.Get(context.Background(), "n1", testUser("u1")); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	_, foreignErr := svc.Get(context.Background(), "n1", testUser("u2"))
	_, missingErr := svc.Get(context.Background(), "ghost", testUser("u2"))
	if !errors.Is(foreignErr, domain.ErrNoteNotFound) || !errors.Is(missingErr, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound for both, got %v / %v", foreignErr, missingErr)
	}
}

func TestNoteService_ListByBoard_RevalidatesOwnership(t *testing.T) {
	noteRepo, boardRepo, svc := newNoteFixture(t)
	seedBoard(boardRepo, "b1", "u1", time.Now())
	seedNote(noteRepo, "n1", "u1", "b1")

	notes, err := svc.ListByBoard(context.Background(), "b1", testUser("u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}

	// a foreign board must fail loudly, not return an empty list
	if _, err := svc.ListByBoard(context.Background(), "b1", testUser("u2")); !errors.Is(err, domain.ErrBoardNotFound) {
		t.Fatalf("expected ErrBoardNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestNoteService_Update_ReplacesMutableFieldsOnly(t *testing.T) {
	noteRepo, _, svc := newNoteFixture(t)
	original := seedNote(noteRepo, "n1", "u1", "b1")
	createdAt := original.CreatedAt

	note, err := svc.Update(context.Background(), "n1", ports.UpdateNoteInput{
		Title:     "new title",
		Content:   "new content",
		PositionX: 10,
		PositionY: 20,
		Width:     300,
		Height:    200,
		Color:     "#d1fae5",
		Tags:      []string{"a", "b"},
	}, testUser("u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.Title != "new title" || note.Color != "#d1fae5" || len(note.Tags) != 2 {
		t.Errorf("mutable fields not replaced: %+v", note)
	}
	if note.ID != "n1" || note.OwnerID != "u1" || note.BoardID != "b1" || !note.CreatedAt.Equal(createdAt) {
		t.Errorf("immutable fields changed: %+v", note)
	}
}

func TestNoteService_Update_ForeignNote(t *testing.T) {
	noteRepo, _, svc := newNoteFixture(t)
	seedNote(noteRepo, "n1", "u1", "b1")

	_, err := svc.Update(context.Background(), "n1", ports.UpdateNoteInput{Title: "hijack"}, testUser("u2"))
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
	if noteRepo.notes["n1"].Title == "hijack" {
		t.Error("foreign update must never mutate the row")
	}
}

func TestNoteService_Delete_OwnAndForeign(t *testing.T) {
	noteRepo, _, svc := newNoteFixture(t)
	seedNote(noteRepo, "n1", "u1", "b1")
	seedNote(noteRepo, "n2", "u2", "b2")

	deleted, err := svc.Delete(context.Background(), "n1", testUser("u1"))
	if err != nil || !deleted {
		t.Fatalf("own delete must succeed, got (%v, %v)", deleted, err)
	}

	deleted, err = svc.Delete(context.Background(), "n2", testUser("u1"))
	if err != nil || deleted {
		t.Fatalf("foreign delete must be (false, nil), got (%v, %v)", deleted, err)
	}
	if _, ok := noteRepo.notes["n2"]; !ok {
		t.Error("foreign delete must never mutate")
	}

	deleted, err = svc.Delete(context.Background(), "ghost", testUser("u1"))
	if err != nil || deleted {
		t.Fatalf("missing delete must be (false, nil), got (%v, %v)", deleted, err)
	}
}

// ---------------------------------------------------------------------------
// Tag filter
// ---------------------------------------------------------------------------

func TestNoteService_ListByTag_FiltersToOwner(t *testing.T) {
	noteRepo, _, svc := newNoteFixture(t)
	seedNote(noteRepo, "mine", "u1", "b1", "work")
	seedNote(noteRepo, "mine-other-tag", "u1", "b1", "home")
	seedNote(noteRepo, "theirs", "u2", "b2", "work")

	notes, err := svc.ListByTag(context.Background(), "work", testUser("u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0].ID != "mine" {
		t.Errorf("expected note 'mine', got %s", notes[0].ID)
	}
}
