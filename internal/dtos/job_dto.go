package dtos

type JobCreationRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Location      string `json:"location" binding:"required"`
	SalaryPackage string `json:"salary_package" binding:"required"`

	// Optional Fields
	SourceCompany string  `json:"source_company"` // Defaults to "Manual Entry" if empty
	AssignedHR    *string `json:"assigned_hr"`
}

// BulkJobRow is one row of a bulk (CSV) import submission. The CSV
// column is "ctc"; the store maps it onto salary_package.
type BulkJobRow struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	CTC         string  `json:"ctc"`
	AssignedHR  *string `json:"assigned_hr"`
}

type BulkJobsResult struct {
	Message string `json:"message"`
}
