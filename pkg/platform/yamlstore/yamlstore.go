// Package yamlstore reads and writes the YAML documents the pipeline
// consumes and produces: the declared dataset schema and drift reports.
package yamlstore

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	yamlLib "gopkg.in/yaml.v3"

	"go.driftline.io/pipeline/pkg/models"
	"go.driftline.io/pipeline/utils"
)

// ConfigError reports a missing or malformed configuration document.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config document %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Schema is the declared structure of the dataset. Validation consumes only
// the cardinality of Columns.
type Schema struct {
	Columns []string `yaml:"columns"`
}

// ReadSchema loads the schema document at path.
func ReadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	var schema Schema
	if err := yamlLib.Unmarshal(data, &schema); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if len(schema.Columns) == 0 {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("no columns declared")}
	}
	return &schema, nil
}

// WriteDriftReport serializes the report to path, creating parent
// directories as needed and overwriting any existing file.
func WriteDriftReport(logger *zap.Logger, path string, report models.DriftReport) error {
	data, err := yamlLib.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal the drift report to yaml: %w", err)
	}
	if err := utils.EnsureParentDir(path); err != nil {
		logger.Error("failed to create a directory for the drift report", zap.Error(err), zap.String("path", path))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("failed to write the drift report", zap.Error(err), zap.String("path", path))
		return err
	}
	return nil
}

// ReadDriftReport loads a previously written drift report.
func ReadDriftReport(path string) (models.DriftReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the drift report %s: %w", path, err)
	}
	report := models.DriftReport{}
	if err := yamlLib.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode the drift report %s: %w", path, err)
	}
	return report, nil
}
