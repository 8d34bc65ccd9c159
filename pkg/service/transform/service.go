// Package transform implements the transformation stage: target separation,
// label remapping and missing-value imputation over the validated splits.
package transform

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"go.driftline.io/pipeline/config"
	"go.driftline.io/pipeline/pkg/models"
	"go.driftline.io/pipeline/pkg/platform/blob"
	"go.driftline.io/pipeline/pkg/platform/tabular"
)

// negativeClassLabel is the sentinel the source data uses for the negative
// class; downstream training expects 0.
const negativeClassLabel = -1

// Service fits the imputer on the training features and applies it to both
// splits, persisting the transformed matrices and the fitted object.
type Service struct {
	logger *zap.Logger

	targetColumn string
	neighbors    int

	trainMatrixPath string
	testMatrixPath  string
	imputerPath     string
}

func New(logger *zap.Logger, cfg config.Transform, paths config.RunPaths) *Service {
	return &Service{
		logger:          logger,
		targetColumn:    cfg.TargetColumn,
		neighbors:       cfg.Neighbors,
		trainMatrixPath: paths.TransformedTrainFile,
		testMatrixPath:  paths.TransformedTestFile,
		imputerPath:     paths.ImputerFile,
	}
}

// Run executes the transformation stage over the validated train/test files
// and returns its artifact.
func (s *Service) Run(ctx context.Context, validTrainPath, validTestPath string) (*models.TransformationArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trainFrame, err := tabular.ReadCSV(validTrainPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load the valid train split: %w", err)
	}
	testFrame, err := tabular.ReadCSV(validTestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load the valid test split: %w", err)
	}

	trainFeatures, trainTarget, err := splitFeaturesTarget(trainFrame, s.targetColumn)
	if err != nil {
		return nil, fmt.Errorf("train split: %w", err)
	}
	testFeatures, testTarget, err := splitFeaturesTarget(testFrame, s.targetColumn)
	if err != nil {
		return nil, fmt.Errorf("test split: %w", err)
	}

	imputer := NewKNNImputer(s.neighbors)
	imputer.Fit(trainFeatures)
	s.logger.Info("fitted the nearest-neighbor imputer",
		zap.Int("neighbors", imputer.Neighbors),
		zap.Int("trainRows", len(trainFeatures)))

	trainMatrix := appendTarget(imputer.Transform(trainFeatures), trainTarget)
	testMatrix := appendTarget(imputer.Transform(testFeatures), testTarget)

	if err := blob.SaveMatrix(s.trainMatrixPath, trainMatrix); err != nil {
		return nil, fmt.Errorf("failed to persist the transformed train matrix: %w", err)
	}
	if err := blob.SaveMatrix(s.testMatrixPath, testMatrix); err != nil {
		return nil, fmt.Errorf("failed to persist the transformed test matrix: %w", err)
	}
	if err := blob.SaveObject(s.imputerPath, imputer); err != nil {
		return nil, fmt.Errorf("failed to persist the fitted imputer: %w", err)
	}
	s.logger.Info("transformation finished",
		zap.String("trainMatrix", s.trainMatrixPath),
		zap.String("testMatrix", s.testMatrixPath),
		zap.String("imputer", s.imputerPath))

	return &models.TransformationArtifact{
		TransformedTrainPath: s.trainMatrixPath,
		TransformedTestPath:  s.testMatrixPath,
		ImputerPath:          s.imputerPath,
	}, nil
}

// splitFeaturesTarget separates the target column from the features,
// remapping the negative class sentinel to 0. Feature cells that are missing
// or non-numeric become NaN for the imputer to fill.
func splitFeaturesTarget(frame *tabular.Frame, targetColumn string) ([][]float64, []float64, error) {
	if !frame.HasColumn(targetColumn) {
		return nil, nil, fmt.Errorf("target column %q is absent", targetColumn)
	}

	featureColumns := make([]string, 0, len(frame.Columns())-1)
	for _, c := range frame.Columns() {
		if c != targetColumn {
			featureColumns = append(featureColumns, c)
		}
	}

	features := make([][]float64, frame.Rows())
	for i := range features {
		features[i] = make([]float64, len(featureColumns))
	}
	for j, c := range featureColumns {
		col, _ := frame.Column(c)
		for i, cell := range col {
			features[i][j] = parseCell(cell)
		}
	}

	targetCol, _ := frame.Column(targetColumn)
	target := make([]float64, len(targetCol))
	for i, cell := range targetCol {
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("target column %q has a non-numeric value %q at row %d", targetColumn, cell, i)
		}
		if value == negativeClassLabel {
			value = 0
		}
		target[i] = value
	}
	return features, target, nil
}

func parseCell(cell string) float64 {
	if cell == tabular.Missing {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// appendTarget attaches the target as the last column of the matrix.
func appendTarget(features [][]float64, target []float64) [][]float64 {
	out := make([][]float64, len(features))
	for i, row := range features {
		out[i] = append(append([]float64(nil), row...), target[i])
	}
	return out
}
