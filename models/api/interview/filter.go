package interviewapimodels

import (
	"github.com/pkg/errors"
	"interview-tracker-backend/models"
	apimodels "interview-tracker-backend/models/api"
)

type InterviewFilter struct {
	apimodels.Pagination
	Status []models.InterviewStatus `json:"status"`
	Type   []models.InterviewType   `json:"type"`
	Search string                   `json:"search"` // substring of company or position
}

func (r InterviewFilter) Validate() error {
	for _, status := range r.Status {
		if !status.IsValid() {
			return errors.Errorf("unknown interview status: %q", status)
		}
	}
	for _, interviewType := range r.Type {
		if !interviewType.IsValid() {
			return errors.Errorf("unknown interview type: %q", interviewType)
		}
	}
	return nil
}
