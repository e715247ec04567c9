// Package deltat loads externally published Delta-T reference series from
// CSV, for comparison against the compiled-in table. The compiled table
// stays authoritative; nothing here feeds back into the reduction core.
package deltat

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.ngs.io/ephemeris-api/internal/domain"
)

// ReferenceLoader reads Delta-T samples from a CSV file with the header
// "mjd,delta_t_seconds".
type ReferenceLoader struct {
	path string
}

// NewReferenceLoader creates a loader for the given CSV file path.
func NewReferenceLoader(path string) *ReferenceLoader {
	return &ReferenceLoader{
		path: path,
	}
}

// Load reads and validates the reference series: at least two rows,
// strictly ascending MJD.
func (l *ReferenceLoader) Load() ([]domain.DeltaTSample, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Delta-T reference CSV: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	// Read header.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Validate header.
	expectedHeaders := []string{"mjd", "delta_t_seconds"}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", expectedHeaders, header)
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid CSV header: expected column %d to be %s, got %s", i, expectedHeaders[i], h)
		}
	}

	// Read data rows.
	samples := make([]domain.DeltaTSample, 0)

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		if len(record) != 2 {
			return nil, fmt.Errorf("invalid CSV record: expected 2 columns, got %d", len(record))
		}

		mjd, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mjd %q: %w", record[0], err)
		}
		seconds, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid delta_t_seconds %q: %w", record[1], err)
		}

		samples = append(samples, domain.DeltaTSample{MJD: mjd, Seconds: seconds})
	}

	if len(samples) < 2 {
		return nil, fmt.Errorf("reference series needs at least 2 samples, got %d", len(samples))
	}

	for i := 1; i < len(samples); i++ {
		if samples[i].MJD <= samples[i-1].MJD {
			return nil, fmt.Errorf("reference series not strictly ascending at row %d (mjd %v)", i, samples[i].MJD)
		}
	}

	return samples, nil
}
