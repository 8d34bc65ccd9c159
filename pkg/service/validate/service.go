// Package validate implements the validation stage: schema conformance and
// drift detection between the train and test splits.
package validate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go.driftline.io/pipeline/config"
	"go.driftline.io/pipeline/pkg/models"
	"go.driftline.io/pipeline/pkg/platform/tabular"
	"go.driftline.io/pipeline/pkg/platform/yamlstore"
)

// Service validates an ingested train/test pair against the declared schema
// and checks for distributional drift between the two.
type Service struct {
	logger    *zap.Logger
	schema    *yamlstore.Schema
	threshold float64

	validTrainPath  string
	validTestPath   string
	driftReportPath string
}

// New loads the schema once and builds the stage. A missing or malformed
// schema document surfaces as *yamlstore.ConfigError.
func New(logger *zap.Logger, cfg config.Validate, paths config.RunPaths) (*Service, error) {
	schema, err := yamlstore.ReadSchema(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	return &Service{
		logger:          logger,
		schema:          schema,
		threshold:       cfg.DriftThreshold,
		validTrainPath:  paths.ValidTrainFile,
		validTestPath:   paths.ValidTestFile,
		driftReportPath: paths.DriftReportFile,
	}, nil
}

// ColumnCountOK reports whether the frame has the expected number of
// columns. A mismatch never errors; callers log and decide.
func ColumnCountOK(frame *tabular.Frame, expected int) bool {
	return len(frame.Columns()) == expected
}

// DetectDrift compares current against base column by column and writes the
// drift report. It returns the overall status (true iff no column drifted)
// alongside the report.
func (s *Service) DetectDrift(base, current *tabular.Frame) (bool, models.DriftReport, error) {
	status, report := detectDrift(s.logger, base, current, s.threshold)
	if err := yamlstore.WriteDriftReport(s.logger, s.driftReportPath, report); err != nil {
		return false, nil, fmt.Errorf("failed to persist the drift report: %w", err)
	}
	return status, report, nil
}

// Run executes the validation stage over the ingested train/test files and
// returns the stage artifact. Any failure aborts the run; no partial
// artifact is returned.
func (s *Service) Run(ctx context.Context, trainPath, testPath string) (*models.ValidationArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trainFrame, err := tabular.ReadCSV(trainPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load the train split: %w", err)
	}
	testFrame, err := tabular.ReadCSV(testPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load the test split: %w", err)
	}

	expected := len(s.schema.Columns)
	schemaOK := true
	if !ColumnCountOK(trainFrame, expected) {
		schemaOK = false
		s.logger.Warn("train split does not match the declared column count",
			zap.Int("expected", expected),
			zap.Int("actual", len(trainFrame.Columns())))
	}
	if !ColumnCountOK(testFrame, expected) {
		schemaOK = false
		s.logger.Warn("test split does not match the declared column count",
			zap.Int("expected", expected),
			zap.Int("actual", len(testFrame.Columns())))
	}

	driftOK, report, err := s.DetectDrift(trainFrame, testFrame)
	if err != nil {
		return nil, err
	}
	s.logger.Info("drift detection finished",
		zap.Bool("driftOk", driftOK),
		zap.Bool("schemaOk", schemaOK),
		zap.Int("columnsCompared", len(report)))

	// The splits are carried forward verbatim; validation never rewrites rows.
	if err := trainFrame.WriteCSV(s.validTrainPath); err != nil {
		return nil, fmt.Errorf("failed to persist the valid train split: %w", err)
	}
	if err := testFrame.WriteCSV(s.validTestPath); err != nil {
		return nil, fmt.Errorf("failed to persist the valid test split: %w", err)
	}

	return &models.ValidationArtifact{
		ValidationStatus: driftOK,
		SchemaOK:         schemaOK,
		DriftOK:          driftOK,
		ValidTrainPath:   s.validTrainPath,
		ValidTestPath:    s.validTestPath,
		DriftReportPath:  s.driftReportPath,
	}, nil
}
