package pdfexport

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	changetracker "interview-tracker-backend/lib/change-tracker"
	"interview-tracker-backend/lib/utils/helpers"
	"interview-tracker-backend/models"
	dbmodels "interview-tracker-backend/models/db"
)

const (
	fontFamily = "Helvetica"
	lineHt     = 6.0
)

// GenerateTimelineReport renders an interview card followed by its timeline,
// entries are printed in the given order.
func GenerateTimelineReport(interview dbmodels.Interview, records []dbmodels.InterviewRecord) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateTimelineReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(fmt.Sprintf("%s - %s", interview.Company, interview.Position)), false)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.MultiCell(0, 9, tr(fmt.Sprintf("%s - %s", interview.Company, interview.Position)), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "", 11)
	for _, line := range interviewLines(interview) {
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(40, lineHt, tr(line[0]), "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		pdf.MultiCell(0, lineHt, tr(line[1]), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, 8, "Timeline", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	if len(records) == 0 {
		pdf.SetFont(fontFamily, "I", 11)
		pdf.CellFormat(0, lineHt, "No entries", "", 1, "L", false, 0, "")
	}
	for _, rec := range records {
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(0, lineHt, tr(fmt.Sprintf("%s  %s", helpers.HumanDate(rec.CreatedAt), recordTitle(rec.Type))), "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		for _, line := range recordLines(rec) {
			pdf.SetX(15)
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		}
		pdf.Ln(2)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func interviewLines(interview dbmodels.Interview) [][2]string {
	lines := [][2]string{
		{changetracker.DisplayName("date"), helpers.HumanDate(interview.Date)},
		{changetracker.DisplayName("status"), interview.Status.ToHuman()},
		{changetracker.DisplayName("type"), interview.Type.ToHuman()},
	}
	optional := []struct {
		field string
		value *string
	}{
		{"interviewer", interview.Interviewer},
		{"location", interview.Location},
		{"callLink", interview.CallLink},
		{"followUpDate", interview.FollowUpDate},
		{"notes", interview.Notes},
		{"feedback", interview.Feedback},
	}
	for _, item := range optional {
		if item.value == nil || *item.value == "" {
			continue
		}
		lines = append(lines, [2]string{changetracker.DisplayName(item.field), *item.value})
	}
	if interview.Rating != nil {
		lines = append(lines, [2]string{changetracker.DisplayName("rating"), fmt.Sprintf("%d / 5", *interview.Rating)})
	}
	return lines
}

var recordTitles = map[models.RecordType]string{
	models.RecordTypeNote:         "Note",
	models.RecordTypeStatusChange: "Status change",
	models.RecordTypeFieldChange:  "Changes",
	models.RecordTypeCreated:      "Created",
	models.RecordTypeEmail:        "Email",
	models.RecordTypeCall:         "Call",
	models.RecordTypeOther:        "Other",
}

func recordTitle(recordType models.RecordType) string {
	if title, ok := recordTitles[recordType]; ok {
		return title
	}
	return string(recordType)
}

func recordLines(rec dbmodels.InterviewRecord) []string {
	lines := []string{}
	if rec.Message != nil && *rec.Message != "" {
		lines = append(lines, *rec.Message)
	}
	if rec.Type != models.RecordTypeFieldChange || rec.Metadata.IsNull() {
		return lines
	}
	var meta dbmodels.ChangesMetadata
	if err := json.Unmarshal(rec.Metadata, &meta); err != nil {
		return lines
	}
	for _, change := range meta.Changes {
		lines = append(lines, changetracker.Describe(change))
	}
	return lines
}
