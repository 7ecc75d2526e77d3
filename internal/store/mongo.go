package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to MongoDB using the MONGO_URI environment variable.
func ConnectMongo() (*mongo.Client, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// blobDocument is the shape of a stored key: one document per key, the whole
// collection held as a single JSON string. Keeping the value opaque preserves
// the whole-blob read-modify-write semantics of the original store; no
// partial updates or server-side queries happen against record fields.
type blobDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoStore implements Store with one document per key.
type MongoStore struct {
	Collection *mongo.Collection
}

// NewMongoStore wraps a mongo collection as a blob store.
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{Collection: collection}
}

// Get returns the stored value for a key, or ErrKeyNotFound.
func (s *MongoStore) Get(ctx context.Context, key string) (string, error) {
	if s.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	var doc blobDocument
	err := s.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return doc.Value, nil
}

// Set writes the value for a key, replacing any previous value.
func (s *MongoStore) Set(ctx context.Context, key string, value string) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": key}, blobDocument{Key: key, Value: value}, opts)
	return err
}
