// Package models defines the artifacts handed between pipeline stages.
package models

// IngestionArtifact records where the ingestion stage left its output.
type IngestionArtifact struct {
	FeatureStorePath string `json:"featureStorePath" yaml:"featureStorePath"`
	TrainPath        string `json:"trainPath" yaml:"trainPath"`
	TestPath         string `json:"testPath" yaml:"testPath"`
}

// ValidationArtifact is the result of the validation stage.
//
// SchemaOK and DriftOK are surfaced independently so the caller decides the
// combined policy. ValidationStatus keeps its historical meaning: true iff
// no compared column drifted. It does not depend on SchemaOK.
type ValidationArtifact struct {
	ValidationStatus bool   `json:"validationStatus" yaml:"validationStatus"`
	SchemaOK         bool   `json:"schemaOk" yaml:"schemaOk"`
	DriftOK          bool   `json:"driftOk" yaml:"driftOk"`
	ValidTrainPath   string `json:"validTrainPath" yaml:"validTrainPath"`
	ValidTestPath    string `json:"validTestPath" yaml:"validTestPath"`
	InvalidTrainPath string `json:"invalidTrainPath,omitempty" yaml:"invalidTrainPath,omitempty"`
	InvalidTestPath  string `json:"invalidTestPath,omitempty" yaml:"invalidTestPath,omitempty"`
	DriftReportPath  string `json:"driftReportPath" yaml:"driftReportPath"`
}

// TransformationArtifact records the transformed matrices and the fitted
// imputer object.
type TransformationArtifact struct {
	TransformedTrainPath string `json:"transformedTrainPath" yaml:"transformedTrainPath"`
	TransformedTestPath  string `json:"transformedTestPath" yaml:"transformedTestPath"`
	ImputerPath          string `json:"imputerPath" yaml:"imputerPath"`
}

// PipelineArtifact aggregates the per-stage artifacts of one run.
type PipelineArtifact struct {
	RunID          string                 `json:"runId" yaml:"runId"`
	RunDir         string                 `json:"runDir" yaml:"runDir"`
	Ingestion      IngestionArtifact      `json:"ingestion" yaml:"ingestion"`
	Validation     ValidationArtifact     `json:"validation" yaml:"validation"`
	Transformation TransformationArtifact `json:"transformation" yaml:"transformation"`
}
