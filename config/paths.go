package config

import (
	"path/filepath"
	"time"
)

// File names inside a run's artifact directory, mirroring the layout the
// downstream training job expects.
const (
	featureStoreDir = "feature_store"
	ingestedDir     = "data_ingested"
	validatedDir    = "validated"
	driftReportDir  = "drift_report"
	transformedDir  = "transformed"

	featureFileName    = "features.csv"
	trainFileName      = "train.csv"
	testFileName       = "test.csv"
	driftReportName    = "report.yaml"
	trainMatrixName    = "train.matrix"
	testMatrixName     = "test.matrix"
	imputerObjectName  = "imputer.obj"
	ingestionStageDir  = "data_ingestion"
	validationStageDir = "data_validation"
	transformStageDir  = "data_transformation"
)

// RunPaths resolves every artifact path of a single pipeline run. Each run
// gets its own timestamped directory so reruns never clobber prior output.
type RunPaths struct {
	RunDir string

	FeatureStoreFile string
	TrainFile        string
	TestFile         string

	ValidTrainFile  string
	ValidTestFile   string
	DriftReportFile string

	TransformedTrainFile string
	TransformedTestFile  string
	ImputerFile          string
}

// NewRunPaths lays out the artifact tree under artifactDir for the run
// started at ts.
func NewRunPaths(artifactDir string, ts time.Time) RunPaths {
	runDir := filepath.Join(artifactDir, ts.Format("02012006150405"))

	ingestion := filepath.Join(runDir, ingestionStageDir)
	validation := filepath.Join(runDir, validationStageDir)
	transform := filepath.Join(runDir, transformStageDir)

	return RunPaths{
		RunDir: runDir,

		FeatureStoreFile: filepath.Join(ingestion, featureStoreDir, featureFileName),
		TrainFile:        filepath.Join(ingestion, ingestedDir, trainFileName),
		TestFile:         filepath.Join(ingestion, ingestedDir, testFileName),

		ValidTrainFile:  filepath.Join(validation, validatedDir, trainFileName),
		ValidTestFile:   filepath.Join(validation, validatedDir, testFileName),
		DriftReportFile: filepath.Join(validation, driftReportDir, driftReportName),

		TransformedTrainFile: filepath.Join(transform, transformedDir, trainMatrixName),
		TransformedTestFile:  filepath.Join(transform, transformedDir, testMatrixName),
		ImputerFile:          filepath.Join(transform, imputerObjectName),
	}
}
