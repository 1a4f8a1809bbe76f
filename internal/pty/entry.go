package pty

import (
	"fmt"
	"strings"
)

// Entry holds a single frequency to station metadata mapping.
type Entry struct {
	// FrequencyKHz holds the frequency in kHz (e.g. 102700 = 102.7 MHz).
	FrequencyKHz uint32 `json:"frequency_khz"`

	// Tag holds the free-text program type (tag schema).
	Tag string `json:"tag,omitempty"`

	// Code holds the RDS program type code 0 - 31 (code schema).
	Code uint8 `json:"code"`

	// Name holds the optional station display name (code schema).
	Name string `json:"name,omitempty"`
}

// String implements fmt.Stringer.
func (e Entry) String() string {
	return fmt.Sprintf("Entry(frequency_khz=%d, tag=%s, code=%d, name=%s)", e.FrequencyKHz, e.Tag, e.Code, e.Name)
}

// Schema defines the layout of the metadata field(s) in the persisted file.
type Schema string

// Available schemas.
const (
	// SchemaTag stores a free-text tag: <frequency>,<tag>
	SchemaTag Schema = "tag"

	// SchemaCode stores a numeric code and an optional display name:
	// <frequency>,<code>[,<name>]
	SchemaCode Schema = "code"
)

// ParseSchema returns the Schema for the given (case-insensitive) name.
func ParseSchema(s string) (Schema, error) {
	switch Schema(strings.ToLower(strings.TrimSpace(s))) {
	case SchemaTag:
		return SchemaTag, nil
	case SchemaCode:
		return SchemaCode, nil
	default:
		return "", ErrInvalidSchema
	}
}

// Status defines the outcome of a table operation. Operations never return
// errors, the status makes the outcome observable.
type Status int

// Possible statuses.
const (
	StatusOK Status = iota
	StatusNotFound
	StatusIOError
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusIOError:
		return "io_error"
	case StatusMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
