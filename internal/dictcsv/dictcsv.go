package dictcsv

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Record is one data row keyed by column name.
type Record map[string]string

// Table is a fully parsed delimited file: the header row plus one Record
// per data row.
type Table struct {
	Header []string
	Rows   []Record
}

// HasColumn reports whether name appears in the file's header row.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Header {
		if col == name {
			return true
		}
	}
	return false
}

// ReadFile parses a delimited UTF-8 text file with a header row. comma and
// quote are single runes; a quoted field may contain separators, newlines,
// and doubled quote characters. Rows shorter than the header yield empty
// strings for the trailing columns; fields beyond the header are dropped.
//
// The whole file is read up front: inputs are small, bounded batch data,
// and one read keeps the handle lifetime trivial.
func ReadFile(path string, comma, quote rune) (*Table, error) {
	if comma == 0 || quote == 0 {
		return nil, errors.Newf("dictcsv: separator and quote must be set for %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	records := parse(string(content), comma, quote)
	if len(records) == 0 {
		return &Table{}, nil
	}

	table := &Table{Header: records[0]}
	for _, fields := range records[1:] {
		// blank line, not a row
		if len(fields) == 1 && fields[0] == "" {
			continue
		}
		row := make(Record, len(table.Header))
		for i, col := range table.Header {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// parse splits content into records of fields. A single pass with a small
// quote state machine; no allocation tricks needed at this data size.
func parse(content string, comma, quote rune) [][]string {
	var (
		records [][]string
		current []string
		field   strings.Builder
		quoted  bool
	)

	endField := func() {
		current = append(current, field.String())
		field.Reset()
	}
	endRecord := func() {
		endField()
		records = append(records, current)
		current = nil
	}

	runes := []rune(content)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case quoted:
			if r == quote {
				// doubled quote is a literal quote character
				if i+1 < len(runes) && runes[i+1] == quote {
					field.WriteRune(quote)
					i += 2
					continue
				}
				quoted = false
				i++
				continue
			}
			field.WriteRune(r)
			i++
		case r == quote:
			quoted = true
			i++
		case r == comma:
			endField()
			i++
		case r == '\r':
			// CRLF line ending; a lone CR is field data
			if i+1 < len(runes) && runes[i+1] == '\n' {
				endRecord()
				i += 2
			} else {
				field.WriteRune(r)
				i++
			}
		case r == '\n':
			endRecord()
			i++
		default:
			field.WriteRune(r)
			i++
		}
	}
	// last record when the file has no trailing newline
	if field.Len() > 0 || len(current) > 0 {
		endRecord()
	}
	return records
}
