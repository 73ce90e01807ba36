package csvimport

import (
	"errors"
	"testing"
)

func TestParse_RoundTrip(t *testing.T) {
	preview := Parse("title,description,location,ctc\nSWE,Build stuff,Pune,10 LPA")

	if len(preview.Headers) != 4 {
		t.Fatalf("got %d headers, want 4", len(preview.Headers))
	}
	if len(preview.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(preview.Rows))
	}

	row := preview.Rows[0]
	if row.ID != 0 {
		t.Errorf("row.ID = %d, want 0", row.ID)
	}
	if row.AssignedHR != "" {
		t.Errorf("row.AssignedHR = %q, want empty", row.AssignedHR)
	}
	want := map[string]string{
		"title":       "SWE",
		"description": "Build stuff",
		"location":    "Pune",
		"ctc":         "10 LPA",
	}
	for header, value := range want {
		if got := row.Get(header); got != value {
			t.Errorf("row[%q] = %q, want %q", header, got, value)
		}
	}

	if !ValidateHeaders(preview.Headers, RequiredJobHeaders) {
		t.Error("ValidateHeaders() = false for a complete header set")
	}
}

func TestParse_DiscardsBlankLines(t *testing.T) {
	preview := Parse("\n\n  \ntitle,description,location,ctc\n\nA,B,C,D\n   \n")
	if len(preview.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(preview.Rows))
	}
	if preview.Headers[0] != "title" {
		t.Errorf("first header = %q, want %q", preview.Headers[0], "title")
	}
}

func TestParse_RaggedRow(t *testing.T) {
	preview := Parse("title,description,location,ctc\nSWE,Build stuff")
	row := preview.Rows[0]

	if got := row.Get("location"); got != "" {
		t.Errorf("missing trailing field location = %q, want empty", got)
	}
	if got := row.Get("ctc"); got != "" {
		t.Errorf("missing trailing field ctc = %q, want empty", got)
	}
	if got := row.Get("title"); got != "SWE" {
		t.Errorf("title = %q, want SWE", got)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n\t\n"} {
		preview := Parse(input)
		if len(preview.Headers) != 0 || len(preview.Rows) != 0 {
			t.Errorf("Parse(%q) = %d headers, %d rows; want empty preview",
				input, len(preview.Headers), len(preview.Rows))
		}
	}
}

func TestParse_RowIndexIsStable(t *testing.T) {
	preview := Parse("title,description,location,ctc\nA,a,x,1\nB,b,y,2\nC,c,z,3")
	for i, row := range preview.Rows {
		if row.ID != i {
			t.Errorf("row %d has ID %d", i, row.ID)
		}
	}
}

func TestValidateHeaders_SubstringMatch(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    bool
	}{
		{"Exact", []string{"title", "description", "location", "ctc"}, true},
		{"Variants", []string{"Job Title", "Job Description", "Job Location", "CTC (LPA)"}, true},
		{"Mixed case", []string{"TITLE", "Description", "location", "Ctc"}, true},
		{"Missing ctc", []string{"title", "description", "location"}, false},
		{"Empty", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateHeaders(tt.headers, RequiredJobHeaders); got != tt.want {
				t.Errorf("ValidateHeaders(%v) = %v, want %v", tt.headers, got, tt.want)
			}
		})
	}
}

func TestValidate_NamesMissingColumns(t *testing.T) {
	preview := Parse("title,location\nSWE,Pune")

	err := preview.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want MissingColumnsError")
	}
	var missingErr *MissingColumnsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Validate() error type = %T", err)
	}
	if len(missingErr.Missing) != 2 {
		t.Fatalf("missing = %v, want [description ctc]", missingErr.Missing)
	}
}

func TestToBulkPayload(t *testing.T) {
	preview := Parse("title,description,location,ctc\nSWE,Build stuff,Pune,10 LPA\nQA,Test stuff,Mumbai,8 LPA")
	preview.Rows[0].AssignedHR = "hr-1"

	payload := ToBulkPayload(preview.Rows)
	if len(payload) != 2 {
		t.Fatalf("got %d payload rows, want 2", len(payload))
	}

	first := payload[0]
	if first.Title != "SWE" || first.CTC != "10 LPA" {
		t.Errorf("first row = %+v", first)
	}
	if first.AssignedHR == nil || *first.AssignedHR != "hr-1" {
		t.Errorf("first row assigned_hr = %v, want hr-1", first.AssignedHR)
	}
	if payload[1].AssignedHR != nil {
		t.Errorf("unassigned row should carry nil assigned_hr, got %v", *payload[1].AssignedHR)
	}
}
