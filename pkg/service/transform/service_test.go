package transform

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go.driftline.io/pipeline/config"
	"go.driftline.io/pipeline/pkg/platform/blob"
	"go.driftline.io/pipeline/pkg/platform/tabular"
)

func writeCSV(t *testing.T, path string, columns []string, rows [][]string) {
	t.Helper()
	frame, err := tabular.New(columns)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, frame.AppendRow(row))
	}
	require.NoError(t, frame.WriteCSV(path))
}

func transformPaths(dir string) config.RunPaths {
	return config.RunPaths{
		RunDir:               dir,
		TransformedTrainFile: filepath.Join(dir, "transformed", "train.matrix"),
		TransformedTestFile:  filepath.Join(dir, "transformed", "test.matrix"),
		ImputerFile:          filepath.Join(dir, "imputer.obj"),
	}
}

func TestSplitFeaturesTarget(t *testing.T) {
	frame, err := tabular.New([]string{"a", "Result", "b"})
	require.NoError(t, err)
	require.NoError(t, frame.AppendRow([]string{"1", "-1", "x"}))
	require.NoError(t, frame.AppendRow([]string{tabular.Missing, "1", "2"}))

	features, target, err := splitFeaturesTarget(frame, "Result")
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1}, target, "the -1 label is remapped to 0")
	require.Len(t, features, 2)
	assert.Equal(t, 1.0, features[0][0])
	assert.True(t, math.IsNaN(features[0][1]), "non-numeric cells become NaN")
	assert.True(t, math.IsNaN(features[1][0]), "missing cells become NaN")
	assert.Equal(t, 2.0, features[1][1])
}

func TestSplitFeaturesTarget_AbsentTarget(t *testing.T) {
	frame, err := tabular.New([]string{"a"})
	require.NoError(t, err)

	_, _, err = splitFeaturesTarget(frame, "Result")
	require.Error(t, err)
}

func TestSplitFeaturesTarget_NonNumericTarget(t *testing.T) {
	frame, err := tabular.New([]string{"a", "Result"})
	require.NoError(t, err)
	require.NoError(t, frame.AppendRow([]string{"1", "yes"}))

	_, _, err = splitFeaturesTarget(frame, "Result")
	require.Error(t, err)
}

func TestService_Run(t *testing.T) {
	dir := t.TempDir()
	columns := []string{"f1", "f2", "Result"}
	trainRows := [][]string{
		{"1", "10", "1"},
		{"2", "20", "-1"},
		{"3", "30", "1"},
		{"2", tabular.Missing, "-1"},
	}
	testRows := [][]string{
		{"1.5", tabular.Missing, "1"},
		{"3", "30", "-1"},
	}
	trainPath := filepath.Join(dir, "train.csv")
	testPath := filepath.Join(dir, "test.csv")
	writeCSV(t, trainPath, columns, trainRows)
	writeCSV(t, testPath, columns, testRows)

	paths := transformPaths(dir)
	svc := New(zap.NewNop(), config.Transform{TargetColumn: "Result", Neighbors: 2}, paths)

	artifact, err := svc.Run(t.Context(), trainPath, testPath)
	require.NoError(t, err)

	trainMatrix, err := blob.LoadMatrix(artifact.TransformedTrainPath)
	require.NoError(t, err)
	require.Len(t, trainMatrix, 4)
	require.Len(t, trainMatrix[0], 3, "two features plus the target column")

	// No NaN survives the imputation.
	for i, row := range trainMatrix {
		for j, cell := range row {
			assert.False(t, math.IsNaN(cell), "train[%d][%d]", i, j)
		}
	}

	// Targets are reattached as the last column, with -1 remapped.
	assert.Equal(t, 1.0, trainMatrix[0][2])
	assert.Equal(t, 0.0, trainMatrix[1][2])

	testMatrix, err := blob.LoadMatrix(artifact.TransformedTestPath)
	require.NoError(t, err)
	require.Len(t, testMatrix, 2)
	for i, row := range testMatrix {
		for j, cell := range row {
			assert.False(t, math.IsNaN(cell), "test[%d][%d]", i, j)
		}
	}

	// The fitted imputer round-trips as a blob.
	var imputer KNNImputer
	require.NoError(t, blob.LoadObject(artifact.ImputerPath, &imputer))
	assert.Equal(t, 2, imputer.Neighbors)
	assert.Len(t, imputer.Fitted, 4)
}

func TestService_Run_MissingTargetAborts(t *testing.T) {
	dir := t.TempDir()
	columns := []string{"f1"}
	rows := [][]string{{"1"}}
	trainPath := filepath.Join(dir, "train.csv")
	testPath := filepath.Join(dir, "test.csv")
	writeCSV(t, trainPath, columns, rows)
	writeCSV(t, testPath, columns, rows)

	svc := New(zap.NewNop(), config.Transform{TargetColumn: "Result", Neighbors: 3}, transformPaths(dir))
	_, err := svc.Run(t.Context(), trainPath, testPath)
	require.Error(t, err)
}
