package helpers

import (
	"strings"
	"time"
)

// ISOLayout is the millisecond precision UTC layout used for every stored timestamp.
const ISOLayout = "2006-01-02T15:04:05.000Z"

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

func ParseISO(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var err error
	for _, layout := range isoLayouts {
		var t time.Time
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func IsISODate(value string) bool {
	_, err := ParseISO(value)
	return err == nil
}

// HumanDate renders an ISO string for documents, falling back to the raw value.
func HumanDate(value string) string {
	t, err := ParseISO(value)
	if err != nil {
		return value
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("02.01.2006")
	}
	return t.Format("02.01.2006 15:04")
}

func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
