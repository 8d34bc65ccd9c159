// Package mgo wraps the MongoDB collection the pipeline ingests from and
// seeds into.
package mgo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 65 * time.Second

// Connect dials the document store and verifies the connection. TLS trust
// material, credentials and the like travel inside the URI.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri is empty")
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the document store: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to reach the document store: %w", err)
	}
	return client, nil
}

// Store gives the pipeline stages find/insert access to one collection.
type Store struct {
	logger     *zap.Logger
	client     *mongo.Client
	database   string
	collection string
}

func New(logger *zap.Logger, client *mongo.Client, database, collection string) *Store {
	return &Store{
		logger:     logger,
		client:     client,
		database:   database,
		collection: collection,
	}
}

// FindAll reads every document of the collection, preserving each
// document's field order.
func (s *Store) FindAll(ctx context.Context) ([]bson.D, error) {
	coll := s.client.Database(s.database).Collection(s.collection)
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		s.logger.Error("failed to query the collection", zap.Error(err), zap.String("collection", s.collection))
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			s.logger.Debug("failed to close the find cursor", zap.Error(err))
		}
	}()

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		s.logger.Error("failed to decode the collection documents", zap.Error(err), zap.String("collection", s.collection))
		return nil, err
	}
	return docs, nil
}

// InsertMany writes the given documents into the collection and returns the
// number of inserted records.
func (s *Store) InsertMany(ctx context.Context, records []any) (int, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("no records to insert into %s.%s", s.database, s.collection)
	}
	coll := s.client.Database(s.database).Collection(s.collection)
	result, err := coll.InsertMany(ctx, records)
	if err != nil {
		s.logger.Error("failed to insert the records", zap.Error(err), zap.String("collection", s.collection))
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

// Disconnect closes the client, logging instead of failing since it runs on
// every exit path.
func Disconnect(ctx context.Context, logger *zap.Logger, client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Debug("failed to disconnect the document store client", zap.Error(err))
	}
}
