// Package ingest implements the ingestion stage: export of the source
// collection into the feature store and the seeded train/test split.
package ingest

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"go.driftline.io/pipeline/config"
	"go.driftline.io/pipeline/pkg/models"
	"go.driftline.io/pipeline/pkg/platform/tabular"
)

// storeIDColumn is assigned by the document store and never belongs to the
// feature set.
const storeIDColumn = "_id"

// missingSentinel is how the source collection marks absent values.
const missingSentinel = "na"

// DocumentSource is the slice of the document store the stage consumes.
type DocumentSource interface {
	FindAll(ctx context.Context) ([]bson.D, error)
}

// Service pulls the collection, persists the feature store snapshot and
// splits it into train/test files.
type Service struct {
	logger *zap.Logger
	source DocumentSource

	splitRatio float64
	splitSeed  int64

	featureStorePath string
	trainPath        string
	testPath         string
}

func New(logger *zap.Logger, source DocumentSource, cfg config.Ingest, paths config.RunPaths) *Service {
	return &Service{
		logger:           logger,
		source:           source,
		splitRatio:       cfg.SplitRatio,
		splitSeed:        cfg.SplitSeed,
		featureStorePath: paths.FeatureStoreFile,
		trainPath:        paths.TrainFile,
		testPath:         paths.TestFile,
	}
}

// ExportCollection reads every document of the collection into a frame,
// dropping the store identifier and normalizing the missing sentinel.
func (s *Service) ExportCollection(ctx context.Context) (*tabular.Frame, error) {
	docs, err := s.source.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export the collection: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("the collection is empty or unreachable")
	}

	frame, err := frameFromDocuments(docs)
	if err != nil {
		return nil, err
	}
	frame.DropColumn(storeIDColumn)
	frame.Replace(missingSentinel, tabular.Missing)

	s.logger.Info("exported the collection",
		zap.Int("rows", frame.Rows()),
		zap.Int("columns", len(frame.Columns())))
	return frame, nil
}

// Run executes the full ingestion stage and returns its artifact.
func (s *Service) Run(ctx context.Context) (*models.IngestionArtifact, error) {
	frame, err := s.ExportCollection(ctx)
	if err != nil {
		return nil, err
	}

	if err := frame.WriteCSV(s.featureStorePath); err != nil {
		return nil, fmt.Errorf("failed to persist the feature store: %w", err)
	}
	s.logger.Info("persisted the feature store", zap.String("path", s.featureStorePath))

	trainFrame, testFrame := SplitTrainTest(frame, s.splitRatio, s.splitSeed)
	s.logger.Info("split the dataset",
		zap.Int("trainRows", trainFrame.Rows()),
		zap.Int("testRows", testFrame.Rows()),
		zap.Float64("ratio", s.splitRatio),
		zap.Int64("seed", s.splitSeed))

	if err := trainFrame.WriteCSV(s.trainPath); err != nil {
		return nil, fmt.Errorf("failed to persist the train split: %w", err)
	}
	if err := testFrame.WriteCSV(s.testPath); err != nil {
		return nil, fmt.Errorf("failed to persist the test split: %w", err)
	}

	return &models.IngestionArtifact{
		FeatureStorePath: s.featureStorePath,
		TrainPath:        s.trainPath,
		TestPath:         s.testPath,
	}, nil
}
