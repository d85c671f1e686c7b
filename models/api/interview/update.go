package interviewapimodels

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"interview-tracker-backend/lib/utils/helpers"
	"interview-tracker-backend/models"
	dbmodels "interview-tracker-backend/models/db"
)

// Optional is a field of a partial update.
type Optional[T any] struct {
	Set   bool // key present in the payload
	Valid bool // value is not null
	Value T
}

func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// InterviewUpdate is a partial update of an interview. It keeps the order in
// which keys appeared in the payload and tells an explicit null apart from an
// absent key.
type InterviewUpdate struct {
	Company      Optional[string]
	Position     Optional[string]
	Date         Optional[string]
	Status       Optional[models.InterviewStatus]
	Type         Optional[models.InterviewType]
	Interviewer  Optional[string]
	Location     Optional[string]
	CallLink     Optional[string]
	Notes        Optional[string]
	Feedback     Optional[string]
	Rating       Optional[int]
	FollowUpDate Optional[string]

	keys []string
}

// UpdateField is one key of the payload. Value is nil, a string or an int.
type UpdateField struct {
	Name  string
	Value any
}

// keys clients echo back from a fetched interview, they are never applied
var readOnlyKeys = map[string]bool{"id": true, "userId": true, "createdAt": true, "updatedAt": true}

func (r *InterviewUpdate) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("update payload must be a JSON object")
	}
	*r = InterviewUpdate{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return errors.New("update payload has a non-string key")
		}
		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
		if readOnlyKeys[key] {
			continue
		}
		if err = r.setField(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

func (r *InterviewUpdate) setField(key string, raw json.RawMessage) error {
	var err error
	switch key {
	// names are trimmed here so the change diff sees what gets stored
	case "company":
		err = decodeOptional(raw, &r.Company)
		r.Company.Value = strings.TrimSpace(r.Company.Value)
	case "position":
		err = decodeOptional(raw, &r.Position)
		r.Position.Value = strings.TrimSpace(r.Position.Value)
	case "date":
		err = decodeOptional(raw, &r.Date)
	case "status":
		err = decodeOptional(raw, &r.Status)
	case "type":
		err = decodeOptional(raw, &r.Type)
	case "interviewer":
		err = decodeOptional(raw, &r.Interviewer)
	case "location":
		err = decodeOptional(raw, &r.Location)
	case "callLink":
		err = decodeOptional(raw, &r.CallLink)
	case "notes":
		err = decodeOptional(raw, &r.Notes)
	case "feedback":
		err = decodeOptional(raw, &r.Feedback)
	case "rating":
		err = decodeOptional(raw, &r.Rating)
	case "followUpDate":
		err = decodeOptional(raw, &r.FollowUpDate)
	default:
		return errors.Errorf("unknown field %q", key)
	}
	if err != nil {
		return errors.Wrapf(err, "field %q", key)
	}
	// a repeated key keeps its first position, the last value wins
	for _, k := range r.keys {
		if k == key {
			return nil
		}
	}
	r.keys = append(r.keys, key)
	return nil
}

func decodeOptional[T any](raw json.RawMessage, out *Optional[T]) error {
	var zero T
	out.Set = true
	out.Value = zero
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		out.Valid = false
		return nil
	}
	if err := json.Unmarshal(raw, &out.Value); err != nil {
		return err
	}
	out.Valid = true
	return nil
}

// IsEmpty reports whether the payload named no fields at all.
func (r InterviewUpdate) IsEmpty() bool {
	return len(r.keys) == 0
}

// Fields returns the payload keys in their original order.
func (r InterviewUpdate) Fields() []UpdateField {
	result := make([]UpdateField, 0, len(r.keys))
	for _, key := range r.keys {
		result = append(result, UpdateField{Name: key, Value: r.value(key)})
	}
	return result
}

func (r InterviewUpdate) value(key string) any {
	switch key {
	case "company":
		return stringValue(r.Company)
	case "position":
		return stringValue(r.Position)
	case "date":
		return stringValue(r.Date)
	case "status":
		if !r.Status.Valid {
			return nil
		}
		return string(r.Status.Value)
	case "type":
		if !r.Type.Valid {
			return nil
		}
		return string(r.Type.Value)
	case "interviewer":
		return stringValue(r.Interviewer)
	case "location":
		return stringValue(r.Location)
	case "callLink":
		return stringValue(r.CallLink)
	case "notes":
		return stringValue(r.Notes)
	case "feedback":
		return stringValue(r.Feedback)
	case "rating":
		if !r.Rating.Valid {
			return nil
		}
		return r.Rating.Value
	case "followUpDate":
		return stringValue(r.FollowUpDate)
	}
	return nil
}

func stringValue(o Optional[string]) any {
	if !o.Valid {
		return nil
	}
	return o.Value
}

func (r InterviewUpdate) Validate() error {
	required := map[string]Optional[string]{
		"company":  r.Company,
		"position": r.Position,
		"date":     r.Date,
	}
	for name, field := range required {
		if field.Set && (!field.Valid || strings.TrimSpace(field.Value) == "") {
			return errors.Errorf("%s must not be empty", name)
		}
	}
	if r.Date.Valid && !helpers.IsISODate(r.Date.Value) {
		return errors.New("date must be an ISO-8601 date")
	}
	if r.Status.Set && !(r.Status.Valid && r.Status.Value.IsValid()) {
		return errors.Errorf("unknown interview status: %q", r.Status.Value)
	}
	if r.Type.Set && !(r.Type.Valid && r.Type.Value.IsValid()) {
		return errors.Errorf("unknown interview type: %q", r.Type.Value)
	}
	if r.Rating.Valid {
		if err := validateRating(r.Rating.Value); err != nil {
			return err
		}
	}
	if r.FollowUpDate.Valid && r.FollowUpDate.Value != "" && !helpers.IsISODate(r.FollowUpDate.Value) {
		return errors.New("followUpDate must be an ISO-8601 date")
	}
	return nil
}

// Apply copies every present field onto rec. Identity, owner and timestamps
// are not touched.
func (r InterviewUpdate) Apply(rec *dbmodels.Interview) {
	if r.Company.Valid {
		rec.Company = r.Company.Value
	}
	if r.Position.Valid {
		rec.Position = r.Position.Value
	}
	if r.Date.Valid {
		rec.Date = r.Date.Value
	}
	if r.Status.Valid {
		rec.Status = r.Status.Value
	}
	if r.Type.Valid {
		rec.Type = r.Type.Value
	}
	if r.Interviewer.Set {
		rec.Interviewer = r.Interviewer.Ptr()
	}
	if r.Location.Set {
		rec.Location = r.Location.Ptr()
	}
	if r.CallLink.Set {
		rec.CallLink = r.CallLink.Ptr()
	}
	if r.Notes.Set {
		rec.Notes = r.Notes.Ptr()
	}
	if r.Feedback.Set {
		rec.Feedback = r.Feedback.Ptr()
	}
	if r.Rating.Set {
		rec.Rating = r.Rating.Ptr()
	}
	if r.FollowUpDate.Set {
		rec.FollowUpDate = r.FollowUpDate.Ptr()
	}
}
