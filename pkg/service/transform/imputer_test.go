package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

func TestKNNImputer_ObservedCellsUntouched(t *testing.T) {
	train := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}
	imputer := NewKNNImputer(2)
	imputer.Fit(train)

	out := imputer.Transform([][]float64{{1.5, 15}})
	assert.Equal(t, [][]float64{{1.5, 15}}, out)
}

func TestKNNImputer_FillsWithNeighborMean(t *testing.T) {
	train := [][]float64{
		{1, 10},
		{2, 20},
		{100, 1000},
	}
	imputer := NewKNNImputer(2)
	imputer.Fit(train)

	// First feature 1.5: nearest train rows are {1,10} and {2,20}.
	out := imputer.Transform([][]float64{{1.5, nan()}})
	require.Len(t, out, 1)
	assert.InDelta(t, 15, out[0][1], 1e-9)
	assert.Equal(t, 1.5, out[0][0])
}

func TestKNNImputer_InputNotMutated(t *testing.T) {
	imputer := NewKNNImputer(1)
	imputer.Fit([][]float64{{1, 5}})

	in := [][]float64{{1, nan()}}
	_ = imputer.Transform(in)
	assert.True(t, math.IsNaN(in[0][1]))
}

func TestKNNImputer_ColumnMeanFallback(t *testing.T) {
	// The row being imputed shares no observed coordinate with any train
	// row, so the column mean is used.
	train := [][]float64{
		{1, 10},
		{3, 30},
	}
	imputer := NewKNNImputer(2)
	imputer.Fit(train)

	out := imputer.Transform([][]float64{{nan(), nan()}})
	assert.InDelta(t, 2, out[0][0], 1e-9)
	assert.InDelta(t, 20, out[0][1], 1e-9)
}

func TestKNNImputer_KLargerThanTrainSet(t *testing.T) {
	imputer := NewKNNImputer(10)
	imputer.Fit([][]float64{
		{1, 10},
		{2, 20},
	})

	out := imputer.Transform([][]float64{{1, nan()}})
	assert.InDelta(t, 15, out[0][1], 1e-9, "all available neighbors are used")
}

func TestKNNImputer_DefaultNeighbors(t *testing.T) {
	assert.Equal(t, 3, NewKNNImputer(0).Neighbors)
	assert.Equal(t, 3, NewKNNImputer(-2).Neighbors)
	assert.Equal(t, 5, NewKNNImputer(5).Neighbors)
}

func TestNanEuclidean(t *testing.T) {
	a := []float64{0, 0, nan(), 7}
	b := []float64{3, 4, 5, nan()}

	// Column 3 is being imputed; columns 0 and 1 are co-observed, column 2
	// is missing in a. Distance over {0,1} rescaled to 3 total features.
	d := nanEuclidean(a, b, 3)
	assert.InDelta(t, math.Sqrt(25*3.0/2.0), d, 1e-9)

	// Nothing co-observed.
	assert.True(t, math.IsInf(nanEuclidean([]float64{nan(), 1}, []float64{2, nan()}, 2), 1))
}
