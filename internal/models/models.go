package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// YES/NO flag values used by the general-information and verification
// dropdowns. An empty string (or nil pointer) means "not answered".
const (
	FlagYes = "YES"
	FlagNo  = "NO"
)

// SkillAssessment is one row of a candidate's skills matrix.
type SkillAssessment struct {
	SkillName                string `json:"skill_name"`
	YearsOfExperience        string `json:"years_of_experience"`
	LastUsedYear             string `json:"last_used_year"`
	VendorSMEAssessmentScore string `json:"vendor_sme_assessment_score"`
}

// WorkExperienceEntry is one organization block of a candidate's
// employment history.
type WorkExperienceEntry struct {
	Organization          string   `json:"organization"`
	EndClient             string   `json:"end_client"`
	Project               string   `json:"project"`
	StartMonthYear        string   `json:"start_month_year"`
	EndMonthYear          string   `json:"end_month_year"`
	TechnologyTools       string   `json:"technology_tools"`
	RoleDesignation       string   `json:"role_designation"`
	AdditionalInformation string   `json:"additional_information"`
	Responsibilities      []string `json:"responsibilities"`
}

// JSONB column types. GORM persists these as jsonb so each nested
// collection stays a single column with the same shape the API exposes.

type SkillAssessmentList []SkillAssessment

func (l SkillAssessmentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *SkillAssessmentList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type WorkExperienceList []WorkExperienceEntry

func (l WorkExperienceList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *WorkExperienceList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// Candidate is one applicant record, tied to exactly one Job via JobID.
// Optional scalars are pointers so that "never set" serializes as null
// rather than an empty string.
type Candidate struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Required at creation
	Name  string `gorm:"not null" json:"name" binding:"required"`
	Email string `gorm:"not null" json:"email" binding:"required"`
	Phone string `gorm:"not null" json:"phone" binding:"required"`

	// Personal information
	TitlePosition              *string `json:"title_position"`
	PANNumber                  *string `json:"pan_number"`
	PassportNumber             *string `json:"passport_number"`
	CurrentLocation            *string `json:"current_location"`
	Hometown                   *string `json:"hometown"`
	PreferredInterviewLocation *string `json:"preferred_interview_location"`
	InterviewLocation          *string `json:"interview_location"`
	AvailabilityInterview      *string `json:"availability_interview"`

	// General information (YES/NO dropdowns plus free text)
	ROCCheckDone                   *string    `json:"roc_check_done"`
	AppliedForBefore               *string    `json:"applied_for_before"`
	IsOrganizationEmployee         *string    `json:"is_organization_employee"`
	DateOfJoiningOrganization      *string    `json:"date_of_joining_organization"`
	ClientDeploymentDetails        StringList `gorm:"type:jsonb" json:"client_deployment_details"`
	InterestedInRelocation         *string    `json:"interested_in_relocation"`
	WillingnessWorkShifts          *string    `json:"willingness_work_shifts"`
	RoleAppliedFor                 *string    `json:"role_applied_for"`
	ReasonForJobChange             *string    `json:"reason_for_job_change"`
	CurrentRole                    *string    `json:"current_role"`
	EducationAuthenticatedUGCCheck *string    `json:"education_authenticated_ugc_check"`
	NoticePeriod                   *string    `json:"notice_period"`
	PayrollingCompanyName          *string    `json:"payrolling_company_name"`

	// Experience summary
	TotalExperience    *string `json:"total_experience"`
	RelevantExperience *string `json:"relevant_experience"`

	// Education - Class X
	EducationXInstitute  *string `json:"education_x_institute"`
	EducationXPercentage *string `json:"education_x_percentage"`
	EducationXStartDate  *string `json:"education_x_start_date"`
	EducationXEndDate    *string `json:"education_x_end_date"`

	// Education - Class XII
	EducationXIIInstitute  *string `json:"education_xii_institute"`
	EducationXIIPercentage *string `json:"education_xii_percentage"`
	EducationXIIStartDate  *string `json:"education_xii_start_date"`
	EducationXIIEndDate    *string `json:"education_xii_end_date"`

	// Education - Degree
	EducationDegreeName               *string `json:"education_degree_name"`
	EducationDegreeInstitute          *string `json:"education_degree_institute"`
	EducationDegreePercentage         *string `json:"education_degree_percentage"`
	EducationDegreeStartDate          *string `json:"education_degree_start_date"`
	EducationDegreeEndDate            *string `json:"education_degree_end_date"`
	EducationDegreeDuration           *string `json:"education_degree_duration"`
	EducationAdditionalCertifications *string `json:"education_additional_certifications"`

	// Assessment scores, 1..4 when set (see AssessmentLabel)
	GeneralAttitudeAssessment   *int `json:"general_attitude_assessment"`
	OralCommunicationAssessment *int `json:"oral_communication_assessment"`

	// SME details and declaration
	SMEName                     *string `json:"sme_name"`
	SMEEmail                    *string `json:"sme_email"`
	SMEMobile                   *string `json:"sme_mobile"`
	DoNotKnowCandidate          *string `json:"do_not_know_candidate"`
	EvaluatedResumeWithJD       *string `json:"evaluated_resume_with_jd"`
	PersonallySpokenToCandidate *string `json:"personally_spoken_to_candidate"`
	AvailableForClarification   *string `json:"available_for_clarification"`

	// Verification
	SalarySlipVerified         *string `json:"salary_slip_verified"`
	OfferLetterVerified        *string `json:"offer_letter_verified"`
	TestMailSentToOrganization *string `json:"test_mail_sent_to_organization"`

	// Nested collections
	SkillAssessments      SkillAssessmentList `gorm:"type:jsonb" json:"skill_assessments"`
	WorkExperienceEntries WorkExperienceList  `gorm:"type:jsonb" json:"work_experience_entries"`

	// Additional information
	Skills                  *string `json:"skills"`
	Projects                *string `json:"projects"`
	Certifications          *string `json:"certifications"`
	PublicationsTitle       *string `json:"publications_title"`
	PublicationsDate        *string `json:"publications_date"`
	PublicationsPublisher   *string `json:"publications_publisher"`
	PublicationsDescription *string `json:"publications_description"`
	References              *string `json:"references"`
	LinkedIn                *string `gorm:"column:linkedin" json:"linkedin"`
	GitHub                  *string `gorm:"column:github" json:"github"`

	// Application state
	Status        string  `gorm:"default:'applied';index" json:"status"`
	Notes         *string `gorm:"type:text" json:"notes"`
	AppliedDate   *string `json:"applied_date"`
	JobID         string  `gorm:"not null;index" json:"job_id"`
	CreatedBy     *string `json:"created_by,omitempty"`
	LastUpdatedBy *string `json:"last_updated_by,omitempty"`

	// Listing enrichment, derived from the owning Job. Never persisted.
	AppliedFor string `gorm:"-" json:"applied_for,omitempty"`
	JobTitle   string `gorm:"-" json:"job_title,omitempty"`
}

// Job is one opening with a lifecycle status and an assignable HR owner.
type Job struct {
	ID        string    `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	// Human-visible identifier (jbMMDDHHMMnn), used by candidate
	// records and by every route that takes a job id.
	JobID string `gorm:"uniqueIndex;not null" json:"job_id"`

	Title         string `gorm:"not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	Location      string `json:"location"`
	SalaryPackage string `json:"salary_package"`
	SourceCompany string `json:"source_company"`

	UploadedBy  string    `json:"uploaded_by"`
	AssignedHR  *string   `gorm:"index" json:"assigned_hr"`
	Status      string    `gorm:"default:'open';index" json:"status"`
	OpeningDate time.Time `json:"opening_date"`

	// Filled from the users table when listing. Never persisted.
	AssignedHRName string `gorm:"-" json:"assigned_hr_name,omitempty"`
}

// User is the minimal HR/admin identity the portal needs for job
// allocation and audit fields. Account lifecycle and credentials live
// in the external auth service.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"not null" json:"role"` // "admin" or "hr"
}

// StatusHistory records one candidate status transition.
type StatusHistory struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CandidateID string    `gorm:"index;not null" json:"candidate_id"`
	JobID       string    `json:"job_id"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	UpdatedBy   string    `json:"updated_by"`
	Timestamp   time.Time `json:"timestamp"`
	Comment     *string   `gorm:"type:text" json:"comment"`
}

var assessmentLabels = map[int]string{
	1: "Below Average",
	2: "Average",
	3: "Good",
	4: "Excellent",
}

// AssessmentLabel returns the display text for a 1..4 assessment score,
// or "" for anything outside the scale.
func AssessmentLabel(score int) string {
	return assessmentLabels[score]
}
