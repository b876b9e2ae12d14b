package palette

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

var errNoSeparator = errors.New("missing ',' between name and color")

// ReadRecords reads one "name,#rrggbb" record per line. The first comma
// separates the fields, so names cannot contain commas. Blank lines are
// skipped; there is no header.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record

	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, value, ok := strings.Cut(line, ",")
		if !ok {
			return nil, &FormatError{Line: n, Name: line, Err: errNoSeparator}
		}
		records = append(records, Record{
			Name: name,
			Hex:  strings.TrimSpace(value),
			Line: n,
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
