package repository

import (
	"context"

	"staffdir/internal/core"
	client "staffdir/internal/database/client"
	"staffdir/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CounterRepository struct {
	collection *mongo.Collection
}

func NewCounterRepository(mongoClient *client.MongoClient) *CounterRepository {
	return &CounterRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBStaffdir)).Collection(string(core.MongoCollectionCounters)),
	}
}

// NextID 以 $inc upsert 取得單調遞增的序號
func (repository *CounterRepository) NextID(contextValue context.Context, name string) (_ int64, returnedError error) {
	var counter model.Counter
	returnedError = repository.collection.FindOneAndUpdate(
		contextValue,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if returnedError != nil {
		return 0, returnedError
	}
	return counter.Seq, nil
}
