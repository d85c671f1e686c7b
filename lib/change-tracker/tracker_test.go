package changetracker

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"interview-tracker-backend/models"
	interviewapimodels "interview-tracker-backend/models/api/interview"
	dbmodels "interview-tracker-backend/models/db"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func storedInterview() dbmodels.Interview {
	return dbmodels.Interview{
		ID:          12,
		UserID:      5,
		Company:     "Acme",
		Position:    "Backend Engineer",
		Date:        "2024-03-01T10:00:00.000Z",
		Status:      models.InterviewStatusScheduled,
		Type:        models.InterviewTypeVideo,
		Interviewer: strPtr("Jane"),
		Notes:       strPtr(""),
		Rating:      intPtr(3),
	}
}

func parseUpdate(t *testing.T, payload string) interviewapimodels.InterviewUpdate {
	var upd interviewapimodels.InterviewUpdate
	require.NoError(t, json.Unmarshal([]byte(payload), &upd))
	return upd
}

func TestDetectInterviewChanges(t *testing.T) {
	t.Run(`single status change`, func(t *testing.T) {
		result := DetectInterviewChanges(storedInterview(), parseUpdate(t, `{"status":"completed"}`))
		require.True(t, result.HasChanges)
		require.Equal(t, []dbmodels.FieldChange{{
			Field:       "status",
			OldValue:    "scheduled",
			NewValue:    "completed",
			DisplayName: "Status",
		}}, result.Changes)
		require.Equal(t, "Updated Status", result.Message)
	})
	t.Run(`identical values are not changes`, func(t *testing.T) {
		result := DetectInterviewChanges(storedInterview(), parseUpdate(t, `{"company":"Acme","rating":3,"type":"video"}`))
		require.False(t, result.HasChanges)
		require.Empty(t, result.Changes)
		require.Equal(t, "No changes detected", result.Message)
	})
	t.Run(`empty update`, func(t *testing.T) {
		result := DetectInterviewChanges(storedInterview(), parseUpdate(t, `{}`))
		require.False(t, result.HasChanges)
		require.Equal(t, NoChangesMessage, result.Message)
	})
	t.Run(`null and empty string are the same`, func(t *testing.T) {
		result := DetectInterviewChanges(storedInterview(), parseUpdate(t, `{"notes":null,"location":"","feedback":null}`))
		require.False(t, result.HasChanges)
	})
	t.Run(`clearing a value is a change`, func(t *testing.T) {
		result := DetectInterviewChanges(storedInterview(), parseUpdate(t, `{"interviewer":null}`))
		require.True(t, result.HasChanges)
		require.Equal(t, "Jane", result.Changes[0].OldValue)
		require.Nil(t, result.Changes[0].NewValue)
		require.Equal(t, "Interviewer", result.Changes[0].DisplayName)
	})
	t.Run(`setting an unset value is a change`, func(t *testing.T) {
		result := DetectInterviewChanges(storedInterview(), parseUpdate(t, `{"followUpDate":"2024-03-08"}`))
		require.Len(t, result.Changes, 1)
		require.Nil(t, result.Changes[0].OldValue)
		require.Equal(t, "2024-03-08", result.Changes[0].NewValue)
		require.Equal(t, "Follow-up Date", result.Changes[0].DisplayName)
	})
	t.Run(`payload order is kept`, func(t *testing.T) {
		result := DetectInterviewChanges(storedInterview(), parseUpdate(t, `{"rating":5,"company":"Globex"}`))
		require.Len(t, result.Changes, 2)
		require.Equal(t, "rating", result.Changes[0].Field)
		require.Equal(t, 3, result.Changes[0].OldValue)
		require.Equal(t, 5, result.Changes[0].NewValue)
		require.Equal(t, "company", result.Changes[1].Field)
		require.Equal(t, "Updated Rating and Company", result.Message)
	})
	t.Run(`many changes`, func(t *testing.T) {
		result := DetectInterviewChanges(storedInterview(), parseUpdate(t,
			`{"status":"completed","type":"onsite","callLink":"https://meet","feedback":"good"}`))
		require.Len(t, result.Changes, 4)
		require.Equal(t, "Updated Status, Interview Type, and 2 more fields", result.Message)
	})
	t.Run(`unchanged fields are skipped in the middle`, func(t *testing.T) {
		result := DetectInterviewChanges(storedInterview(), parseUpdate(t,
			`{"status":"completed","company":"Acme","position":"CTO","date":"2024-03-02"}`))
		require.Len(t, result.Changes, 3)
		require.Equal(t, "Updated Status, Position, and 1 more field", result.Message)
	})
}

func TestChangeMessage(t *testing.T) {
	change := func(name string) dbmodels.FieldChange {
		return dbmodels.FieldChange{Field: name, DisplayName: DisplayName(name)}
	}
	require.Equal(t, "No changes detected", ChangeMessage(nil))
	require.Equal(t, "Updated Call Link", ChangeMessage([]dbmodels.FieldChange{change("callLink")}))
	require.Equal(t, "Updated Date & Time and Notes",
		ChangeMessage([]dbmodels.FieldChange{change("date"), change("notes")}))
	require.Equal(t, "Updated Status, Company, and 1 more field",
		ChangeMessage([]dbmodels.FieldChange{change("status"), change("company"), change("rating")}))
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Follow-up Date", DisplayName("followUpDate"))
	require.Equal(t, "Interview Type", DisplayName("type"))
	require.Equal(t, "salary", DisplayName("salary"))
}

func TestFormatFieldValue(t *testing.T) {
	require.Equal(t, "Not set", FormatFieldValue(nil))
	require.Equal(t, "Not set", FormatFieldValue(""))
	require.Equal(t, "Yes", FormatFieldValue(true))
	require.Equal(t, "No", FormatFieldValue(false))
	require.Equal(t, "4", FormatFieldValue(4))
	require.Equal(t, "4", FormatFieldValue(float64(4)))
	require.Equal(t, "Acme", FormatFieldValue("Acme"))

	exact := strings.Repeat("a", 50)
	require.Equal(t, exact, FormatFieldValue(exact))

	long := strings.Repeat("b", 51)
	formatted := FormatFieldValue(long)
	require.Equal(t, strings.Repeat("b", 47)+"...", formatted)
	require.Len(t, formatted, 50)
}

func TestDescribe(t *testing.T) {
	require.Equal(t, "Status: scheduled -> completed", Describe(dbmodels.FieldChange{
		Field: "status", OldValue: "scheduled", NewValue: "completed", DisplayName: "Status",
	}))
	require.Equal(t, "Notes: Not set -> ok", Describe(dbmodels.FieldChange{
		Field: "notes", NewValue: "ok", DisplayName: "Notes",
	}))
}
