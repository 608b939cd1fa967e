package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

const collectionBoards = "boards"

type BoardRepository struct {
	db    *mongo.Database
	col   *mongo.Collection
	notes *mongo.Collection
}

func NewBoardRepository(db *mongo.Database) *BoardRepository {
	return &BoardRepository{
		db:    db,
		col:   db.Collection(collectionBoards),
		notes: db.Collection(collectionNotes),
	}
}

func (r *BoardRepository) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Board
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBoardNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByOwner returns the owner's boards in creation order, oldest first.
func (r *BoardRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	boards := []*domain.Board{}
	if err := cur.All(ctx, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *BoardRepository) FindByNameAndOwner(ctx context.Context, name, ownerID string) (*domain.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Board
	err := r.col.FindOne(ctx, bson.M{"name": name, "owner_id": ownerID}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBoardNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BoardRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"owner_id": ownerID})
}

// Save upserts the board document by id.
func (r *BoardRepository) Save(ctx context.Context, b *domain.Board) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": b.ID}, b, opts)
	return err
}

// DeleteCascade removes the board's notes and the board itself inside one
// transaction, so no orphan notes can survive a partial failure.
func (r *BoardRepository) DeleteCascade(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return inTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		if _, err := r.notes.DeleteMany(sc, bson.M{"board_id": id}); err != nil {
			return err
		}
		_, err := r.col.DeleteOne(sc, bson.M{"_id": id})
		return err
	})
}

// EnsureIndexes creates the indexes board queries rely on.
func (r *BoardRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "owner_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
