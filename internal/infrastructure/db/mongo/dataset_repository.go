package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

// DatasetRepository handles the multi-document writes of the account
// lifecycle: seeding a starter dataset and purging everything an account
// owns. Both run inside a single transaction.
type DatasetRepository struct {
	db     *mongo.Database
	boards *mongo.Collection
	notes  *mongo.Collection
}

func NewDatasetRepository(db *mongo.Database) *DatasetRepository {
	return &DatasetRepository{
		db:     db,
		boards: db.Collection(collectionBoards),
		notes:  db.Collection(collectionNotes),
	}
}

// SeedDataset stores the board and its starter notes atomically.
func (r *DatasetRepository) SeedDataset(ctx context.Context, board *domain.Board, notes []*domain.Note) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, len(notes))
	for i, n := range notes {
		docs[i] = n
	}

	return inTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		if _, err := r.boards.InsertOne(sc, board); err != nil {
			return err
		}
		if len(docs) == 0 {
			return nil
		}
		_, err := r.notes.InsertMany(sc, docs)
		return err
	})
}

// PurgeOwner deletes every note and every board owned by the given user.
// Notes go first so a failure between the two deletes cannot orphan them.
func (r *DatasetRepository) PurgeOwner(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return inTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		if _, err := r.notes.DeleteMany(sc, bson.M{"owner_id": ownerID}); err != nil {
			return err
		}
		_, err := r.boards.DeleteMany(sc, bson.M{"owner_id": ownerID})
		return err
	})
}
