package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/boxkit/boxfinder/internal/model"
)

// detectDelimiter determines the most likely CSV delimiter by trying each
// candidate and scoring how consistently it yields more than one column
// across lines.
func detectDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		score := 0
		for {
			record, err := reader.Read()
			if err != nil {
				break
			}
			if len(record) > 1 {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = delim
		}
	}
	return best
}

// readCSV parses an instance from CSV data. The first record holds
// w, h, nboxes, proportion; each following record holds one box. Records
// beyond the declared box count are ignored.
func readCSV(data []byte) (*model.Instance, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return instanceFromRows(records)
}

// instanceFromRows builds an instance from tabular rows, shared by the CSV
// and XLSX readers.
func instanceFromRows(rows [][]string) (*model.Instance, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("instance data is empty")
	}

	header, err := parseFields(rows[0], 4)
	if err != nil {
		return nil, fmt.Errorf("instance header: %w", err)
	}
	w, h, proportion := header[0], header[1], header[3]
	nboxes := int(header[2])
	if nboxes < 0 {
		return nil, fmt.Errorf("%w: negative box count %d", model.ErrInvalidBox, nboxes)
	}
	if len(rows)-1 < nboxes {
		return nil, fmt.Errorf("header declares %d boxes but only %d rows follow", nboxes, len(rows)-1)
	}

	boxes := make([]model.Box, 0, nboxes)
	for i := 1; i <= nboxes; i++ {
		fields, err := parseFields(rows[i], 5)
		if err != nil {
			return nil, fmt.Errorf("box row %d: %w", i, err)
		}
		b, err := model.NewBox(fields[0], fields[1], fields[2], fields[3], fields[4])
		if err != nil {
			return nil, fmt.Errorf("box row %d: %w", i, err)
		}
		boxes = append(boxes, b)
	}

	return finish(w, h, proportion, boxes)
}

// parseFields converts the first n cells of a row to floats.
func parseFields(row []string, n int) ([]float64, error) {
	if len(row) < n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(row))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("field %d %q: %w", i+1, row[i], err)
		}
		out[i] = v
	}
	return out, nil
}
