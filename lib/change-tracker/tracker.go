package changetracker

import (
	"fmt"
	"strconv"
	"strings"

	interviewapimodels "interview-tracker-backend/models/api/interview"
	dbmodels "interview-tracker-backend/models/db"
)

const NoChangesMessage = "No changes detected"

var fieldDisplayNames = map[string]string{
	"status":       "Status",
	"type":         "Interview Type",
	"company":      "Company",
	"position":     "Position",
	"date":         "Date & Time",
	"interviewer":  "Interviewer",
	"location":     "Location",
	"callLink":     "Call Link",
	"notes":        "Notes",
	"feedback":     "Feedback",
	"rating":       "Rating",
	"followUpDate": "Follow-up Date",
}

type Result struct {
	HasChanges bool
	Changes    []dbmodels.FieldChange
	Message    string
}

func DisplayName(field string) string {
	if name, ok := fieldDisplayNames[field]; ok {
		return name
	}
	return field
}

// DetectInterviewChanges compares the stored interview with the fields of a
// partial update. Changes keep the order of the update payload.
func DetectInterviewChanges(old dbmodels.Interview, upd interviewapimodels.InterviewUpdate) Result {
	oldValues := interviewValues(old)
	changes := []dbmodels.FieldChange{}
	for _, field := range upd.Fields() {
		oldValue := oldValues[field.Name]
		if oldValue == field.Value {
			continue
		}
		if isUnset(oldValue) && isUnset(field.Value) {
			continue
		}
		changes = append(changes, dbmodels.FieldChange{
			Field:       field.Name,
			OldValue:    oldValue,
			NewValue:    field.Value,
			DisplayName: DisplayName(field.Name),
		})
	}
	return Result{
		HasChanges: len(changes) > 0,
		Changes:    changes,
		Message:    ChangeMessage(changes),
	}
}

func ChangeMessage(changes []dbmodels.FieldChange) string {
	switch len(changes) {
	case 0:
		return NoChangesMessage
	case 1:
		return "Updated " + changes[0].DisplayName
	case 2:
		return fmt.Sprintf("Updated %s and %s", changes[0].DisplayName, changes[1].DisplayName)
	}
	remaining := len(changes) - 2
	noun := "field"
	if remaining > 1 {
		noun = "fields"
	}
	return fmt.Sprintf("Updated %s, %s, and %d more %s",
		changes[0].DisplayName, changes[1].DisplayName, remaining, noun)
}

// FormatFieldValue renders a change value for people.
func FormatFieldValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "Not set"
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		if v == "" {
			return "Not set"
		}
		runes := []rune(v)
		if len(runes) > 50 {
			return string(runes[:47]) + "..."
		}
		return v
	}
	return fmt.Sprint(value)
}

func isUnset(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// interviewValues holds the comparable value of every updatable field,
// nil for an unset optional one.
func interviewValues(rec dbmodels.Interview) map[string]any {
	return map[string]any{
		"company":      rec.Company,
		"position":     rec.Position,
		"date":         rec.Date,
		"status":       string(rec.Status),
		"type":         string(rec.Type),
		"interviewer":  stringOrNil(rec.Interviewer),
		"location":     stringOrNil(rec.Location),
		"callLink":     stringOrNil(rec.CallLink),
		"notes":        stringOrNil(rec.Notes),
		"feedback":     stringOrNil(rec.Feedback),
		"rating":       intOrNil(rec.Rating),
		"followUpDate": stringOrNil(rec.FollowUpDate),
	}
}

func stringOrNil(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func intOrNil(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

// Describe renders one change as "Display: old -> new".
func Describe(change dbmodels.FieldChange) string {
	return strings.Join([]string{
		change.DisplayName + ":",
		FormatFieldValue(change.OldValue),
		"->",
		FormatFieldValue(change.NewValue),
	}, " ")
}
