package transform

import (
	"math"
	"sort"
)

// KNNImputer fills missing cells with the uniform mean of the value in the
// k nearest training rows. Distance is euclidean over the features observed
// in both rows, rescaled to the full feature count so rows with few shared
// observations don't look artificially close.
//
// Fields are exported so the fitted object serializes as a blob artifact.
type KNNImputer struct {
	Neighbors int
	Fitted    [][]float64
}

func NewKNNImputer(neighbors int) *KNNImputer {
	if neighbors <= 0 {
		neighbors = 3
	}
	return &KNNImputer{Neighbors: neighbors}
}

// Fit stores a copy of the training feature matrix. Statistics are always
// learned from these rows, never from the matrix being transformed.
func (imp *KNNImputer) Fit(features [][]float64) {
	imp.Fitted = make([][]float64, len(features))
	for i, row := range features {
		imp.Fitted[i] = append([]float64(nil), row...)
	}
}

// Transform returns a copy of features with every missing cell imputed.
// The input is left untouched.
func (imp *KNNImputer) Transform(features [][]float64) [][]float64 {
	out := make([][]float64, len(features))
	for i, row := range features {
		out[i] = append([]float64(nil), row...)
	}
	for i, row := range out {
		for j, cell := range row {
			if math.IsNaN(cell) {
				out[i][j] = imp.imputeCell(features[i], j)
			}
		}
	}
	return out
}

type neighbor struct {
	distance float64
	value    float64
}

func (imp *KNNImputer) imputeCell(row []float64, column int) float64 {
	var neighbors []neighbor
	for _, trainRow := range imp.Fitted {
		if column >= len(trainRow) || math.IsNaN(trainRow[column]) {
			continue
		}
		d := nanEuclidean(row, trainRow, column)
		if math.IsInf(d, 1) {
			continue
		}
		neighbors = append(neighbors, neighbor{distance: d, value: trainRow[column]})
	}
	if len(neighbors) == 0 {
		return imp.columnMean(column)
	}
	sort.Slice(neighbors, func(a, b int) bool { return neighbors[a].distance < neighbors[b].distance })

	k := imp.Neighbors
	if k > len(neighbors) {
		k = len(neighbors)
	}
	var sum float64
	for _, nb := range neighbors[:k] {
		sum += nb.value
	}
	return sum / float64(k)
}

// nanEuclidean computes the distance between two rows over the coordinates
// observed in both, excluding the column being imputed. Returns +Inf when
// nothing is co-observed.
func nanEuclidean(a, b []float64, skip int) float64 {
	var sum float64
	observed := 0
	total := 0
	for i := range a {
		if i == skip || i >= len(b) {
			continue
		}
		total++
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		diff := a[i] - b[i]
		sum += diff * diff
		observed++
	}
	if observed == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(sum * float64(total) / float64(observed))
}

// columnMean is the fallback when no training row both observes the column
// and shares a coordinate with the row being imputed.
func (imp *KNNImputer) columnMean(column int) float64 {
	var sum float64
	count := 0
	for _, row := range imp.Fitted {
		if column < len(row) && !math.IsNaN(row[column]) {
			sum += row[column]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
