package dbmodels

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// Metadata is an opaque JSON document attached to a timeline entry.
// A nil value is stored as SQL NULL and serialized as JSON null.
type Metadata json.RawMessage

func NewMetadata(v any) (Metadata, error) {
	if v == nil {
		return nil, nil
	}
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Metadata(body), nil
}

func (j Metadata) IsNull() bool {
	return len(j) == 0 || bytes.Equal(bytes.TrimSpace(j), []byte("null"))
}

func (j Metadata) Value() (driver.Value, error) {
	if j.IsNull() {
		return nil, nil
	}
	return string(j), nil
}

func (j *Metadata) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = Metadata(v)
	default:
		return errors.Errorf("unsupported metadata type %T", value)
	}
	if j.IsNull() {
		*j = nil
	}
	return nil
}

func (j Metadata) MarshalJSON() ([]byte, error) {
	if j.IsNull() {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

func (j *Metadata) UnmarshalJSON(data []byte) error {
	if j == nil {
		return errors.New("dbmodels.Metadata: UnmarshalJSON on nil pointer")
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*j = nil
		return nil
	}
	*j = append((*j)[:0], data...)
	return nil
}

// IsObject reports whether the document is a JSON object.
func (j Metadata) IsObject() bool {
	trimmed := bytes.TrimSpace(j)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
