package models

// DriftEntry is the per-column outcome of the two-sample drift check.
type DriftEntry struct {
	PValue        float64 `json:"p_value" yaml:"p_value"`
	DriftDetected bool    `json:"drift_detected" yaml:"drift_detected"`
}

// DriftReport maps a column name to its drift check outcome. Columns skipped
// because one side had no observed values are absent from the report.
type DriftReport map[string]DriftEntry

// OK reports whether no compared column drifted. An empty report is OK.
func (r DriftReport) OK() bool {
	for _, entry := range r {
		if entry.DriftDetected {
			return false
		}
	}
	return true
}
