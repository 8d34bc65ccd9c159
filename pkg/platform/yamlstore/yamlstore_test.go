package yamlstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go.driftline.io/pipeline/pkg/models"
)

func TestReadSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yml")
	require.NoError(t, os.WriteFile(path, []byte("columns:\n  - a\n  - b\n  - Result\n"), 0o644))

	schema, err := ReadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "Result"}, schema.Columns)
}

func TestReadSchema_Missing(t *testing.T) {
	_, err := ReadSchema(filepath.Join(t.TempDir(), "absent.yml"))

	require.Error(t, err)
	var confErr *ConfigError
	require.True(t, errors.As(err, &confErr))
	assert.Contains(t, confErr.Path, "absent.yml")
}

func TestReadSchema_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- broken"), 0o644))

	_, err := ReadSchema(path)

	var confErr *ConfigError
	require.True(t, errors.As(err, &confErr))
}

func TestReadSchema_NoColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yml")
	require.NoError(t, os.WriteFile(path, []byte("columns: []\n"), 0o644))

	_, err := ReadSchema(path)

	var confErr *ConfigError
	require.True(t, errors.As(err, &confErr))
}

func TestDriftReportRoundTrip(t *testing.T) {
	report := models.DriftReport{
		"a":      {PValue: 1.0, DriftDetected: false},
		"b":      {PValue: 0.0012345, DriftDetected: true},
		"Result": {PValue: 0.5, DriftDetected: false},
	}
	path := filepath.Join(t.TempDir(), "drift_report", "report.yaml")

	require.NoError(t, WriteDriftReport(zap.NewNop(), path, report))

	got, err := ReadDriftReport(path)
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestWriteDriftReport_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, WriteDriftReport(zap.NewNop(), path, models.DriftReport{
		"stale": {PValue: 0.9},
	}))
	require.NoError(t, WriteDriftReport(zap.NewNop(), path, models.DriftReport{
		"fresh": {PValue: 0.1, DriftDetected: false},
	}))

	got, err := ReadDriftReport(path)
	require.NoError(t, err)
	assert.NotContains(t, got, "stale")
	assert.Contains(t, got, "fresh")
}
