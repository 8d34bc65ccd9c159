// Package config provides configuration structures for the pipeline.
package config

type Config struct {
	ArtifactDir string    `json:"artifactDir" yaml:"artifactDir" mapstructure:"artifactDir"`
	ConfigPath  string    `json:"configPath" yaml:"configPath" mapstructure:"configPath"`
	Debug       bool      `json:"debug" yaml:"debug" mapstructure:"debug"`
	LogFile     string    `json:"logFile" yaml:"logFile" mapstructure:"logFile"`
	Mongo       Mongo     `json:"mongo" yaml:"mongo" mapstructure:"mongo"`
	Ingest      Ingest    `json:"ingest" yaml:"ingest" mapstructure:"ingest"`
	Validate    Validate  `json:"validate" yaml:"validate" mapstructure:"validate"`
	Transform   Transform `json:"transform" yaml:"transform" mapstructure:"transform"`
}

// Mongo carries the document-store connection settings. The URI may embed
// TLS trust material (tlsCAFile) the same way the driver expects it.
type Mongo struct {
	URI        string `json:"uri" yaml:"uri" mapstructure:"uri"`
	Database   string `json:"database" yaml:"database" mapstructure:"database"`
	Collection string `json:"collection" yaml:"collection" mapstructure:"collection"`
}

type Ingest struct {
	SplitRatio float64 `json:"splitRatio" yaml:"splitRatio" mapstructure:"splitRatio"` // fraction of rows sent to the test split
	SplitSeed  int64   `json:"splitSeed" yaml:"splitSeed" mapstructure:"splitSeed"`
}

type Validate struct {
	SchemaPath     string  `json:"schemaPath" yaml:"schemaPath" mapstructure:"schemaPath"`
	DriftThreshold float64 `json:"driftThreshold" yaml:"driftThreshold" mapstructure:"driftThreshold"`
}

type Transform struct {
	TargetColumn string `json:"targetColumn" yaml:"targetColumn" mapstructure:"targetColumn"`
	Neighbors    int    `json:"neighbors" yaml:"neighbors" mapstructure:"neighbors"` // k for the nearest-neighbor imputer
}
