package config

import (
	"fmt"

	yaml3 "gopkg.in/yaml.v3"
)

var defaultConfig = `
artifactDir: "artifacts"
configPath: ""
debug: false
logFile: ""
mongo:
  uri: ""
  database: "mlops"
  collection: "NetworkData"
ingest:
  splitRatio: 0.25
  splitSeed: 42
validate:
  schemaPath: "data_schema/schema.yml"
  driftThreshold: 0.05
transform:
  targetColumn: "Result"
  neighbors: 3
`

// New returns a Config populated with the defaults above.
func New() (*Config, error) {
	cfg := &Config{}
	if err := yaml3.Unmarshal([]byte(defaultConfig), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the default config: %v", err)
	}
	return cfg, nil
}

// GetDefaultConfig exposes the default document so the generate-config
// command can write a starter file for the user.
func GetDefaultConfig() string {
	return defaultConfig
}
