package tabular

import (
	"encoding/csv"
	"fmt"
	"os"

	"go.driftline.io/pipeline/utils"
)

// ReadCSV loads a comma-delimited file with a header row into a frame.
func ReadCSV(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the csv file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read the csv header of %s: %w", path, err)
	}
	frame, err := New(header)
	if err != nil {
		return nil, fmt.Errorf("invalid csv header in %s: %w", path, err)
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read the csv rows of %s: %w", path, err)
	}
	for _, record := range records {
		if err := frame.AppendRow(record); err != nil {
			return nil, fmt.Errorf("malformed row in %s: %w", path, err)
		}
	}
	return frame, nil
}

// WriteCSV persists the frame with a header row and no index column,
// creating parent directories as needed and overwriting any existing file.
func (f *Frame) WriteCSV(path string) error {
	if err := utils.EnsureParentDir(path); err != nil {
		return fmt.Errorf("failed to create a directory for the csv file: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create the csv file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(f.cols); err != nil {
		return fmt.Errorf("failed to write the csv header: %w", err)
	}
	for i := 0; i < f.rows; i++ {
		if err := writer.Write(f.Row(i)); err != nil {
			return fmt.Errorf("failed to write a csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush the csv file %s: %w", path, err)
	}
	return nil
}
