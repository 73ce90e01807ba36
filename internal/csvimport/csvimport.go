// Package csvimport parses user-supplied job CSV files into preview
// rows ready for bulk submission.
//
// The format is deliberately simple: comma separated, first surviving
// line is the header. Quoted fields containing commas are not
// supported; existing import files rely on that behavior, so the
// parser keeps it rather than adopting encoding/csv quoting rules.
package csvimport

import (
	"fmt"
	"strings"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/dtos"
)

// RequiredJobHeaders are the columns a job import file must carry.
// Matching is a case-insensitive substring check, so "Job Title"
// satisfies the "title" requirement.
var RequiredJobHeaders = []string{"title", "description", "location", "ctc"}

// Row is one parsed CSV line. ID is the zero-based position in the
// file, stable across edits, and serves as the row's local identity
// for per-row HR assignment in the preview. AssignedHR starts empty
// and is filled from the preview UI (or the -hr flag of importctl).
type Row struct {
	ID         int
	Fields     map[string]string
	AssignedHR string
}

// Get returns the value of the named column, "" if the column was
// missing or the row was too short.
func (r Row) Get(header string) string {
	return r.Fields[header]
}

// Preview is the parse result shown to the operator before submitting.
type Preview struct {
	Headers []string
	Rows    []Row
}

// MissingColumnsError reports required columns absent from the header
// line. Callers surface it before allowing bulk submission.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Parse splits raw CSV text into headers and rows. Lines that are
// empty after trimming are discarded; the first surviving line is the
// header. Rows shorter than the header list get empty strings for the
// missing trailing fields. Ragged or otherwise malformed rows never
// make Parse fail; an input with no surviving lines yields an empty
// Preview.
func Parse(text string) Preview {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return Preview{Headers: []string{}, Rows: []Row{}}
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]Row, 0, len(lines)-1)
	for i, line := range lines[1:] {
		values := strings.Split(line, ",")
		fields := make(map[string]string, len(headers))
		for col, header := range headers {
			if col < len(values) {
				fields[header] = strings.TrimSpace(values[col])
			} else {
				fields[header] = ""
			}
		}
		rows = append(rows, Row{ID: i, Fields: fields, AssignedHR: ""})
	}

	return Preview{Headers: headers, Rows: rows}
}

// ValidateHeaders reports whether every required column name matches
// some actual header, case-insensitively and as a substring. The
// lenient match tolerates header variants like "Job Title" for
// "title".
func ValidateHeaders(headers, required []string) bool {
	for _, req := range required {
		found := false
		for _, h := range headers {
			if strings.Contains(strings.ToLower(h), strings.ToLower(req)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Validate checks a preview against the job-import column set and
// returns a MissingColumnsError naming every absent column.
func (p Preview) Validate() error {
	var missing []string
	for _, req := range RequiredJobHeaders {
		if !ValidateHeaders(p.Headers, []string{req}) {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing}
	}
	return nil
}

// ToBulkPayload maps parsed rows onto the bulk job-creation shape,
// carrying each row's assigned HR through as nullable.
func ToBulkPayload(rows []Row) []dtos.BulkJobRow {
	payload := make([]dtos.BulkJobRow, 0, len(rows))
	for _, row := range rows {
		var hr *string
		if row.AssignedHR != "" {
			v := row.AssignedHR
			hr = &v
		}
		payload = append(payload, dtos.BulkJobRow{
			Title:       row.Get("title"),
			Description: row.Get("description"),
			Location:    row.Get("location"),
			CTC:         row.Get("ctc"),
			AssignedHR:  hr,
		})
	}
	return payload
}
