package cli

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"go.driftline.io/pipeline/config"
	"go.driftline.io/pipeline/pkg/platform/mgo"
)

// newRunPaths lays out a fresh timestamped artifact tree for one invocation.
func newRunPaths(cfg *config.Config) config.RunPaths {
	return config.NewRunPaths(cfg.ArtifactDir, time.Now())
}

// connectStore dials the document store and scopes a handle to the
// configured collection. The caller owns the returned client.
func connectStore(ctx context.Context, p *Provider) (*mongo.Client, *mgo.Store, error) {
	client, err := mgo.Connect(ctx, p.Cfg.Mongo.URI)
	if err != nil {
		return nil, nil, err
	}
	store := mgo.New(p.Logger, client, p.Cfg.Mongo.Database, p.Cfg.Mongo.Collection)
	return client, store, nil
}
