// Package blob persists the binary artifacts of the transformation stage:
// numeric matrices and the fitted imputer object. The format is opaque to
// the rest of the pipeline; only this package and the training job read it.
package blob

import (
	"encoding/gob"
	"fmt"
	"os"

	"go.driftline.io/pipeline/utils"
)

// SaveMatrix writes a numeric matrix to path, creating parent directories
// as needed and overwriting any existing file.
func SaveMatrix(path string, matrix [][]float64) error {
	return save(path, matrix)
}

// LoadMatrix reads a matrix previously written by SaveMatrix.
func LoadMatrix(path string) ([][]float64, error) {
	var matrix [][]float64
	if err := load(path, &matrix); err != nil {
		return nil, err
	}
	return matrix, nil
}

// SaveObject serializes an arbitrary fitted object (e.g. the imputer).
func SaveObject(path string, v any) error {
	return save(path, v)
}

// LoadObject deserializes into v, which must be a pointer to the same
// concrete type SaveObject received.
func LoadObject(path string, v any) error {
	return load(path, v)
}

func save(path string, v any) error {
	if err := utils.EnsureParentDir(path); err != nil {
		return fmt.Errorf("failed to create a directory for the blob %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create the blob file %s: %w", path, err)
	}
	defer file.Close()
	if err := gob.NewEncoder(file).Encode(v); err != nil {
		return fmt.Errorf("failed to encode the blob %s: %w", path, err)
	}
	return nil
}

func load(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open the blob file %s: %w", path, err)
	}
	defer file.Close()
	if err := gob.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("failed to decode the blob %s: %w", path, err)
	}
	return nil
}
