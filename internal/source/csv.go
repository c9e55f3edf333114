package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/rshade/jable/internal/table"
)

// FromCSV reads a header row followed by data rows. Every row must have as
// many fields as the header.
func FromCSV(r io.Reader) ([]table.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var records []table.Record
	for {
		row, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading CSV: %w", readErr)
		}

		rec := table.NewRecord()
		for i, col := range header {
			if err = setUnique(&rec, col, row[i]); err != nil {
				return nil, fmt.Errorf("CSV header: %w", err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
