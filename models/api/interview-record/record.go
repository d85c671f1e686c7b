package interviewrecordapimodels

import (
	"github.com/pkg/errors"
	"interview-tracker-backend/models"
	dbmodels "interview-tracker-backend/models/db"
)

// RecordData is a new timeline entry.
type RecordData struct {
	Type     models.RecordType `json:"type"`
	Message  *string           `json:"message"`
	Metadata dbmodels.Metadata `json:"metadata" swaggertype:"object"`
}

func (r RecordData) Validate() error {
	if !r.Type.IsValid() {
		return errors.Errorf("unknown record type: %q", r.Type)
	}
	if !r.Metadata.IsNull() && !r.Metadata.IsObject() {
		return errors.New("metadata must be a JSON object")
	}
	return nil
}

type RecordView struct {
	ID          int               `json:"id"`
	InterviewID int               `json:"interviewId"`
	UserID      *int              `json:"userId"`
	Type        models.RecordType `json:"type"`
	Message     *string           `json:"message"`
	Metadata    dbmodels.Metadata `json:"metadata" swaggertype:"object"`
	CreatedAt   string            `json:"createdAt"`
}

func Convert(rec dbmodels.InterviewRecord) RecordView {
	return RecordView{
		ID:          rec.ID,
		InterviewID: rec.InterviewID,
		UserID:      rec.UserID,
		Type:        rec.Type,
		Message:     rec.Message,
		Metadata:    rec.Metadata,
		CreatedAt:   rec.CreatedAt,
	}
}

func ConvertList(list []dbmodels.InterviewRecord) []RecordView {
	result := make([]RecordView, 0, len(list))
	for _, rec := range list {
		result = append(result, Convert(rec))
	}
	return result
}
