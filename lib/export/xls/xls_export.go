package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"interview-tracker-backend/lib/utils/helpers"
	dbmodels "interview-tracker-backend/models/db"
)

type Provider interface {
	ExportInterviewList(list []dbmodels.Interview) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const interviewSheet = "Interviews"

var interviewHeaders = []string{"Company", "Position", "Date", "Status", "Type", "Interviewer", "Location", "Call Link", "Rating", "Follow-up Date", "Notes", "Feedback"}

func (i impl) ExportInterviewList(list []dbmodels.Interview) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, interviewHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		_, err = writeInterviewData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx rows")
		}
	}
	if err = f.SetSheetName(sheet, interviewSheet); err != nil {
		return nil, errors.Wrap(err, "failed to name xlsx sheet")
	}
	return f.WriteToBuffer()
}

func writeInterviewData(f *excelize.File, sheet string, list []dbmodels.Interview, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(interviewHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []any{
			item.Company,
			item.Position,
			helpers.HumanDate(item.Date),
			item.Status.ToHuman(),
			item.Type.ToHuman(),
			helpers.StringValue(item.Interviewer),
			helpers.StringValue(item.Location),
			helpers.StringValue(item.CallLink),
			nil,
			"",
			helpers.StringValue(item.Notes),
			helpers.StringValue(item.Feedback),
		}
		if item.Rating != nil {
			values[8] = *item.Rating
		}
		if item.FollowUpDate != nil && *item.FollowUpDate != "" {
			values[9] = helpers.HumanDate(*item.FollowUpDate)
		}
		for idx, value := range values {
			if value == nil || value == "" {
				continue
			}
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
