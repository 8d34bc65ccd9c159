package validate

import (
	"math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"go.driftline.io/pipeline/pkg/models"
	"go.driftline.io/pipeline/pkg/platform/tabular"
)

// detectDrift runs the per-column two-sample Kolmogorov-Smirnov check of
// current against base. Iteration is driven by base's columns: a column only
// present in current is never checked. A column with no observed values on
// either side is skipped and omitted from the report.
//
// The returned flag is true iff no compared column drifted.
func detectDrift(logger *zap.Logger, base, current *tabular.Frame, threshold float64) (bool, models.DriftReport) {
	status := true
	report := models.DriftReport{}

	for _, column := range base.Columns() {
		baseValues := base.Numeric(column)
		currentValues := current.Numeric(column)

		if len(baseValues) == 0 || len(currentValues) == 0 {
			logger.Warn("column has no observed values on one side, skipping the drift check",
				zap.String("column", column),
				zap.Int("baseValues", len(baseValues)),
				zap.Int("currentValues", len(currentValues)))
			continue
		}

		pValue := ksTwoSample(baseValues, currentValues)
		driftDetected := pValue < threshold

		report[column] = models.DriftEntry{
			PValue:        pValue,
			DriftDetected: driftDetected,
		}
		if driftDetected {
			status = false
			logger.Info("drift detected for column",
				zap.String("column", column),
				zap.Float64("pValue", pValue),
				zap.Float64("threshold", threshold))
		}
	}
	return status, report
}

// ksTwoSample returns the two-sided asymptotic p-value of the two-sample
// Kolmogorov-Smirnov test between the given samples.
func ksTwoSample(base, current []float64) float64 {
	x := append([]float64(nil), base...)
	y := append([]float64(nil), current...)
	sort.Float64s(x)
	sort.Float64s(y)

	d := stat.KolmogorovSmirnov(x, nil, y, nil)

	n := float64(len(x))
	m := float64(len(y))
	en := math.Sqrt(n * m / (n + m))
	// Small-sample correction before evaluating the limiting distribution.
	lambda := (en + 0.12 + 0.11/en) * d
	return kolmogorovSurvival(lambda)
}

// kolmogorovSurvival evaluates Q(lambda) = 2 * sum_{k>=1} (-1)^{k-1} exp(-2 k^2 lambda^2),
// the survival function of the Kolmogorov distribution.
func kolmogorovSurvival(lambda float64) float64 {
	if lambda <= 0 {
		return 1
	}
	var sum float64
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k)*float64(k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-16 {
			break
		}
		sign = -sign
	}
	p := 2 * sum
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
