package ponto

import (
	"fmt"
	"io"
	"strings"
)

// WriteCSV writes the whole collection as CSV, sorted globally by
// (date, time). The note column is always quoted, with internal quotes
// doubled; the other columns are format-constrained and never need
// escaping.
func WriteCSV(w io.Writer, records []Record) error {
	if _, err := fmt.Fprintln(w, "date,time,type,note"); err != nil {
		return err
	}
	for _, r := range SortByDateTime(records) {
		note := strings.ReplaceAll(r.Note, `"`, `""`)
		if _, err := fmt.Fprintf(w, "%s,%s,%s,\"%s\"\n", r.Date, r.Time, r.Type, note); err != nil {
			return err
		}
	}
	return nil
}
