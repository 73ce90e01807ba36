// Package export renders candidate listings as Excel workbooks for
// offline review.
package export

import (
	"bytes"
	"fmt"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
	"github.com/xuri/excelize/v2"
)

var candidateColumns = []struct {
	header string
	value  func(c *models.Candidate) interface{}
}{
	{"Name", func(c *models.Candidate) interface{} { return c.Name }},
	{"Email", func(c *models.Candidate) interface{} { return c.Email }},
	{"Phone", func(c *models.Candidate) interface{} { return c.Phone }},
	{"Job ID", func(c *models.Candidate) interface{} { return c.JobID }},
	{"Applied For", func(c *models.Candidate) interface{} { return c.AppliedFor }},
	{"Status", func(c *models.Candidate) interface{} { return c.Status }},
	{"Applied Date", func(c *models.Candidate) interface{} { return deref(c.AppliedDate) }},
	{"Current Location", func(c *models.Candidate) interface{} { return deref(c.CurrentLocation) }},
	{"Hometown", func(c *models.Candidate) interface{} { return deref(c.Hometown) }},
	{"Total Experience", func(c *models.Candidate) interface{} { return deref(c.TotalExperience) }},
	{"Relevant Experience", func(c *models.Candidate) interface{} { return deref(c.RelevantExperience) }},
	{"Notice Period", func(c *models.Candidate) interface{} { return deref(c.NoticePeriod) }},
	{"General Attitude", func(c *models.Candidate) interface{} { return assessment(c.GeneralAttitudeAssessment) }},
	{"Oral Communication", func(c *models.Candidate) interface{} { return assessment(c.OralCommunicationAssessment) }},
	{"Notes", func(c *models.Candidate) interface{} { return deref(c.Notes) }},
}

// CandidatesToExcel builds a single-sheet workbook with one row per
// candidate and returns it as bytes ready for download.
func CandidatesToExcel(candidates []models.Candidate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Candidates"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range candidateColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for row, cand := range candidates {
		for i, col := range candidateColumns {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, col.value(&cand)); err != nil {
				return nil, err
			}
		}
	}

	f.SetColWidth(sheet, "A", "C", 24)
	f.SetColWidth(sheet, "D", "O", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func assessment(score *int) string {
	if score == nil {
		return ""
	}
	return fmt.Sprintf("%d - %s", *score, models.AssessmentLabel(*score))
}
