package parsers

import (
	"fmt"
	"strings"
)

type columnIndex struct {
	name, position, age, nationality int
}

// indexHeader locates the squad columns in the header row, ignoring case and
// surrounding whitespace. Nationality is optional.
func indexHeader(header []string) (columnIndex, error) {
	idx := columnIndex{name: -1, position: -1, age: -1, nationality: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			idx.name = i
		case "position":
			idx.position = i
		case "age":
			idx.age = i
		case "nationality":
			idx.nationality = i
		}
	}

	var missing []string
	if idx.name < 0 {
		missing = append(missing, "name")
	}
	if idx.position < 0 {
		missing = append(missing, "position")
	}
	if idx.age < 0 {
		missing = append(missing, "age")
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("header is missing column(s): %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// buildRows converts raw records (header first) into squad rows, skipping blank
// lines. Line is the 1-based record number, header included.
func buildRows(records [][]string) ([]SquadRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("squad sheet is empty")
	}

	idx, err := indexHeader(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]SquadRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		rows = append(rows, SquadRow{
			Line:        i + 2,
			Name:        cell(rec, idx.name),
			Position:    cell(rec, idx.position),
			Age:         cell(rec, idx.age),
			Nationality: cell(rec, idx.nationality),
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("squad sheet has no player rows")
	}
	return rows, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
