package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore keeps each snapshot as a single document in a `snapshots`
// collection, keyed by the logical name. The blob stays opaque to Mongo.
type MongoStore struct {
	collection *mongo.Collection
}

type snapshotDocument struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// NewMongoStore connects to uri and uses the `snapshots` collection of the
// named database.
func NewMongoStore(uri, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &MongoStore{
		collection: client.Database(dbName).Collection("snapshots"),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc snapshotDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Data, nil
}

func (s *MongoStore) Set(ctx context.Context, key string, value []byte) error {
	doc := snapshotDocument{Key: key, Data: value, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	return err
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Disconnect closes the underlying client.
func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.collection.Database().Client().Disconnect(ctx)
}
