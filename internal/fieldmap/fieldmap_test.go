package fieldmap

import "testing"

// TestResolve_TableEntries verifies the pinned label translations that
// the fallback transform would get wrong.
func TestResolve_TableEntries(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Title/Position", "title_position"},
		{"Duration", "education_degree_duration"},
		{"Additional Certifications", "education_additional_certifications"},
		{"PAN Number", "pan_number"},
		{"LinkedIn", "linkedin"},
		{"GitHub", "github"},
		{"Availability for Interview", "availability_interview"},
		{"General Attitude", "general_attitude_assessment"},
		{"Oral Communication", "oral_communication_assessment"},
		{"Date of Joining", "date_of_joining_organization"},
		{"Have you authenticated resources education history with fake list of universities published by UGC", "education_authenticated_ugc_check"},
		{"Have you sent test mail to the resources current organization official email ID to check the authenticity", "test_mail_sent_to_organization"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Resolve(tt.label); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

// TestResolve_Fallback covers labels without a table entry.
func TestResolve_Fallback(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"Single word", "Hometown", "hometown"},
		{"Two words", "Current Location", "current_location"},
		{"Whitespace run", "Reason for   Job Change", "reason_for_job_change"},
		{"Tabs and spaces", "End \t Client", "end_client"},
		{"Unknown label", "Favourite Editor", "favourite_editor"},
		{"Already snake", "notice_period", "notice_period"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.label); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

// TestResolve_Totality asserts Resolve never returns an empty
// identifier, whatever the input looks like.
func TestResolve_Totality(t *testing.T) {
	inputs := []string{"", " ", "\t\n", "x", "???", "A B C", "  padded  "}
	for _, in := range inputs {
		if got := Resolve(in); got == "" {
			t.Errorf("Resolve(%q) returned empty identifier", in)
		}
	}
}

// TestResolve_TablePrecedence: an explicit entry wins even when the
// fallback would produce a different name.
func TestResolve_TablePrecedence(t *testing.T) {
	// Fallback would yield "duration", the table pins the degree field.
	if got := Resolve("Duration"); got == "duration" {
		t.Fatalf("table entry did not take precedence over fallback")
	}
}
