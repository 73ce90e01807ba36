// Package fieldmap translates the human-facing form labels of the
// candidate view into canonical snake_case record field names.
package fieldmap

import (
	"regexp"
	"strings"
)

// labelTable pins the labels whose derived name would be wrong or
// ambiguous. An explicit entry always wins over the fallback transform.
var labelTable = map[string]string{
	// Personal information
	"Name":                         "name",
	"Title/Position":               "title_position",
	"Email":                        "email",
	"Phone":                        "phone",
	"PAN Number":                   "pan_number",
	"Passport Number":              "passport_number",
	"Current Location":             "current_location",
	"Hometown":                     "hometown",
	"Preferred Interview Location": "preferred_interview_location",
	"Interview Location":           "interview_location",
	"Availability for Interview":   "availability_interview",

	// General information
	"ROC Check Done":             "roc_check_done",
	"Applied Before":             "applied_for_before",
	"Is Organization Employee":   "is_organization_employee",
	"Date of Joining":            "date_of_joining_organization",
	"Interested in Relocation":   "interested_in_relocation",
	"Willingness to Work Shifts": "willingness_work_shifts",
	"Role Applied For":           "role_applied_for",
	"Reason for Job Change":      "reason_for_job_change",
	"Current Role":               "current_role",
	"Notice Period":              "notice_period",
	"Payrolling Company Name":    "payrolling_company_name",
	"Have you authenticated resources education history with fake list of universities published by UGC": "education_authenticated_ugc_check",

	// Experience
	"Total Experience":    "total_experience",
	"Relevant Experience": "relevant_experience",

	// Education (the degree block owns the ambiguous short labels)
	"Duration":                  "education_degree_duration",
	"Additional Certifications": "education_additional_certifications",
	"Degree Name":               "education_degree_name",

	// Assessments
	"General Attitude":   "general_attitude_assessment",
	"Oral Communication": "oral_communication_assessment",

	// SME
	"SME Name":                       "sme_name",
	"SME Email":                      "sme_email",
	"SME Mobile":                     "sme_mobile",
	"Do Not Know Candidate":          "do_not_know_candidate",
	"Evaluated Resume with JD":       "evaluated_resume_with_jd",
	"Personally Spoken to Candidate": "personally_spoken_to_candidate",
	"Available for Clarification":    "available_for_clarification",

	// Verification
	"Salary Slip Verified":  "salary_slip_verified",
	"Offer Letter Verified": "offer_letter_verified",
	"Have you sent test mail to the resources current organization official email ID to check the authenticity": "test_mail_sent_to_organization",

	// Additional information
	"LinkedIn":                 "linkedin",
	"GitHub":                   "github",
	"Publications Title":       "publications_title",
	"Publications Date":        "publications_date",
	"Publications Publisher":   "publications_publisher",
	"Publications Description": "publications_description",

	// Application state
	"Status": "status",
	"Notes":  "notes",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Resolve maps a form label to its canonical field identifier. Labels
// without a table entry degrade to the lower-cased label with
// whitespace runs collapsed to a single underscore. Resolve is pure
// and never fails; an unknown label may produce an identifier that no
// record carries, which readers treat as absent and writers ignore.
func Resolve(label string) string {
	if field, ok := labelTable[label]; ok {
		return field
	}
	mapped := whitespaceRun.ReplaceAllString(strings.ToLower(label), "_")
	if mapped == "" {
		return "_"
	}
	return mapped
}
