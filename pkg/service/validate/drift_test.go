package validate

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go.driftline.io/pipeline/pkg/platform/tabular"
)

func frameOf(t *testing.T, columns []string, rows [][]string) *tabular.Frame {
	t.Helper()
	frame, err := tabular.New(columns)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, frame.AppendRow(row))
	}
	return frame
}

func constantColumn(t *testing.T, name, value string, rows int) *tabular.Frame {
	t.Helper()
	frame, err := tabular.New([]string{name})
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		require.NoError(t, frame.AppendRow([]string{value}))
	}
	return frame
}

func TestColumnCountOK(t *testing.T) {
	frame := frameOf(t, []string{"a", "b", "c"}, nil)

	assert.True(t, ColumnCountOK(frame, 3))
	assert.False(t, ColumnCountOK(frame, 4))
	assert.False(t, ColumnCountOK(frame, 2))
}

func TestDetectDrift_IdenticalConstantColumn(t *testing.T) {
	base := constantColumn(t, "a", "0", 1000)
	current := constantColumn(t, "a", "0", 1000)

	ok, report := detectDrift(zap.NewNop(), base, current, 0.05)

	require.Contains(t, report, "a")
	assert.True(t, ok)
	assert.False(t, report["a"].DriftDetected)
	assert.Equal(t, 1.0, report["a"].PValue)
}

func TestDetectDrift_DisjointDistributions(t *testing.T) {
	base := constantColumn(t, "a", "0", 100)
	current := constantColumn(t, "a", "1", 100)

	ok, report := detectDrift(zap.NewNop(), base, current, 0.05)

	require.Contains(t, report, "a")
	assert.False(t, ok)
	assert.True(t, report["a"].DriftDetected)
	assert.Less(t, report["a"].PValue, 0.05)
}

func TestDetectDrift_AllMissingBaseColumnIsOmitted(t *testing.T) {
	base := frameOf(t, []string{"a", "b"}, [][]string{
		{tabular.Missing, "1"},
		{tabular.Missing, "2"},
		{tabular.Missing, "3"},
	})
	current := frameOf(t, []string{"a", "b"}, [][]string{
		{"5", "1"},
		{"6", "2"},
		{"7", "3"},
	})

	ok, report := detectDrift(zap.NewNop(), base, current, 0.05)

	assert.True(t, ok)
	assert.NotContains(t, report, "a")
	assert.Contains(t, report, "b")
}

func TestDetectDrift_CurrentOnlyColumnsAreIgnored(t *testing.T) {
	base := constantColumn(t, "a", "1", 10)
	current := frameOf(t, []string{"a", "extra"}, [][]string{
		{"1", "9"}, {"1", "9"}, {"1", "9"}, {"1", "9"}, {"1", "9"},
	})

	_, report := detectDrift(zap.NewNop(), base, current, 0.05)

	assert.NotContains(t, report, "extra")
	assert.Contains(t, report, "a")
}

func TestDetectDrift_EmptyReportIsOK(t *testing.T) {
	base := constantColumn(t, "a", tabular.Missing, 5)
	current := constantColumn(t, "a", tabular.Missing, 5)

	ok, report := detectDrift(zap.NewNop(), base, current, 0.05)

	assert.True(t, ok)
	assert.Empty(t, report)
}

func TestKSTwoSample_ShiftedSamples(t *testing.T) {
	base := make([]float64, 200)
	current := make([]float64, 200)
	for i := range base {
		base[i] = float64(i % 10)
		current[i] = float64(i%10) + 100
	}

	p := ksTwoSample(base, current)
	assert.Less(t, p, 0.05)
}

func TestKSTwoSample_SameSample(t *testing.T) {
	sample := make([]float64, 500)
	for i := range sample {
		sample[i] = float64(i % 7)
	}

	p := ksTwoSample(sample, sample)
	assert.Equal(t, 1.0, p)
}

func TestKolmogorovSurvival_Bounds(t *testing.T) {
	assert.Equal(t, 1.0, kolmogorovSurvival(0))
	assert.Equal(t, 1.0, kolmogorovSurvival(-1))

	// Monotonically decreasing and within [0, 1].
	prev := 1.0
	for i := 1; i <= 40; i++ {
		lambda := float64(i) * 0.1
		p := kolmogorovSurvival(lambda)
		assert.GreaterOrEqual(t, p, 0.0, "lambda=%v", lambda)
		assert.LessOrEqual(t, p, prev+1e-9, "lambda=%v", lambda)
		prev = p
	}
	assert.InDelta(t, 0, kolmogorovSurvival(5), 1e-9)
}

func TestDetectDrift_ReportThresholdBoundary(t *testing.T) {
	// With threshold 1.1 even a p-value of 1.0 counts as drift, proving the
	// strict less-than comparison.
	base := constantColumn(t, "a", "0", 50)
	current := constantColumn(t, "a", "0", 50)

	ok, report := detectDrift(zap.NewNop(), base, current, 1.1)
	assert.False(t, ok)
	assert.True(t, report["a"].DriftDetected)

	ok, report = detectDrift(zap.NewNop(), base, current, 1.0)
	assert.True(t, ok)
	assert.False(t, report["a"].DriftDetected)
}

func TestDetectDrift_ManyColumns(t *testing.T) {
	columns := []string{"c0", "c1", "c2", "c3"}
	var baseRows, currentRows [][]string
	for i := 0; i < 100; i++ {
		v := strconv.Itoa(i % 5)
		baseRows = append(baseRows, []string{v, v, v, "0"})
		currentRows = append(currentRows, []string{v, v, v, "1"})
	}
	base := frameOf(t, columns, baseRows)
	current := frameOf(t, columns, currentRows)

	ok, report := detectDrift(zap.NewNop(), base, current, 0.05)

	assert.False(t, ok)
	assert.Len(t, report, 4)
	assert.False(t, report["c0"].DriftDetected)
	assert.True(t, report["c3"].DriftDetected)
}
