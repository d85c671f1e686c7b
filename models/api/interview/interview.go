package interviewapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"interview-tracker-backend/lib/utils/helpers"
	"interview-tracker-backend/models"
	dbmodels "interview-tracker-backend/models/db"
)

type InterviewData struct {
	Company      string                 `json:"company"`
	Position     string                 `json:"position"`
	Date         string                 `json:"date"` // ISO-8601
	Status       models.InterviewStatus `json:"status"`
	Type         models.InterviewType   `json:"type"`
	Interviewer  *string                `json:"interviewer"`
	Location     *string                `json:"location"`
	CallLink     *string                `json:"callLink"`
	Notes        *string                `json:"notes"`
	Feedback     *string                `json:"feedback"`
	Rating       *int                   `json:"rating"` // 1-5
	FollowUpDate *string                `json:"followUpDate"`
}

func (r InterviewData) Validate() error {
	if strings.TrimSpace(r.Company) == "" {
		return errors.New("company must not be empty")
	}
	if strings.TrimSpace(r.Position) == "" {
		return errors.New("position must not be empty")
	}
	if !helpers.IsISODate(r.Date) {
		return errors.New("date must be an ISO-8601 date")
	}
	if !r.Status.IsValid() {
		return errors.Errorf("unknown interview status: %q", r.Status)
	}
	if !r.Type.IsValid() {
		return errors.Errorf("unknown interview type: %q", r.Type)
	}
	if r.Rating != nil {
		if err := validateRating(*r.Rating); err != nil {
			return err
		}
	}
	if r.FollowUpDate != nil && *r.FollowUpDate != "" && !helpers.IsISODate(*r.FollowUpDate) {
		return errors.New("followUpDate must be an ISO-8601 date")
	}
	return nil
}

func (r InterviewData) ToDB(userID int, now string) dbmodels.Interview {
	return dbmodels.Interview{
		UserID:       userID,
		Company:      strings.TrimSpace(r.Company),
		Position:     strings.TrimSpace(r.Position),
		Date:         r.Date,
		Status:       r.Status,
		Type:         r.Type,
		Interviewer:  r.Interviewer,
		Location:     r.Location,
		CallLink:     r.CallLink,
		Notes:        r.Notes,
		Feedback:     r.Feedback,
		Rating:       r.Rating,
		FollowUpDate: r.FollowUpDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

type InterviewView struct {
	ID           int                    `json:"id"`
	UserID       int                    `json:"userId"`
	Company      string                 `json:"company"`
	Position     string                 `json:"position"`
	Date         string                 `json:"date"`
	Status       models.InterviewStatus `json:"status"`
	Type         models.InterviewType   `json:"type"`
	Interviewer  *string                `json:"interviewer"`
	Location     *string                `json:"location"`
	CallLink     *string                `json:"callLink"`
	Notes        *string                `json:"notes"`
	Feedback     *string                `json:"feedback"`
	Rating       *int                   `json:"rating"`
	FollowUpDate *string                `json:"followUpDate"`
	CreatedAt    string                 `json:"createdAt"`
	UpdatedAt    string                 `json:"updatedAt"`
}

func Convert(rec dbmodels.Interview) InterviewView {
	return InterviewView{
		ID:           rec.ID,
		UserID:       rec.UserID,
		Company:      rec.Company,
		Position:     rec.Position,
		Date:         rec.Date,
		Status:       rec.Status,
		Type:         rec.Type,
		Interviewer:  rec.Interviewer,
		Location:     rec.Location,
		CallLink:     rec.CallLink,
		Notes:        rec.Notes,
		Feedback:     rec.Feedback,
		Rating:       rec.Rating,
		FollowUpDate: rec.FollowUpDate,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func ConvertList(list []dbmodels.Interview) []InterviewView {
	result := make([]InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, Convert(rec))
	}
	return result
}
