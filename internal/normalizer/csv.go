package normalizer

import (
	"encoding/csv"
	"fmt"
	"slices"
	"strings"
)

// Row is one extracted record. Keys keep the order in which they were first
// set; setting an existing key replaces its value in place.
type Row struct {
	keys   []string
	values map[string]string
}

func NewRow() *Row {
	return &Row{values: make(map[string]string)}
}

func (r *Row) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *Row) Keys() []string {
	return slices.Clone(r.keys)
}

// Columns resolves the header: the first row's keys in their own order, then
// every key first seen in a later row, sorted.
func Columns(rows []*Row) []string {
	if len(rows) == 0 {
		return nil
	}

	columns := slices.Clone(rows[0].keys)

	seen := make(map[string]struct{}, len(columns))
	for _, key := range columns {
		seen[key] = struct{}{}
	}

	var extra []string
	for _, row := range rows[1:] {
		for _, key := range row.keys {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)

	return append(columns, extra...)
}

// BuildCSV renders rows under the resolved header with "\n" line endings.
// Keys outside the header cannot occur since the header is the union of all
// keys; missing keys render empty.
func BuildCSV(rows []*Row) (string, error) {
	columns := Columns(rows)

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.UseCRLF = false

	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(columns))
	for i, row := range rows {
		for j, column := range columns {
			record[j] = row.values[column]
		}

		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row #%d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return sb.String(), nil
}
