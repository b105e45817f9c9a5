package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// rows is a parsed source file keyed by canonical column.
type rows struct {
	index   map[string]int
	records [][]string
}

func readTable(path string, t table) (*rows, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read header: %w", err)
	}
	index := mapHeaders(header, t)

	var records [][]string
	line := 1
	for {
		line++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return &rows{index: index, records: records}, nil
}

// mapHeaders keeps the first header that maps onto each canonical column.
func mapHeaders(header []string, t table) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		key, ok := t.canonical(name)
		if !ok {
			continue
		}
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}

	return index
}

func (r *rows) has(column string) bool {
	_, ok := r.index[column]
	return ok
}

// get returns the trimmed cell, or "" when the column or cell is absent.
func (r *rows) get(record []string, column string) string {
	pos, ok := r.index[column]
	if !ok || pos >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[pos])
}
