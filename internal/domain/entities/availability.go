package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Weekday numbers days from Monday=0 to Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Valid reports whether d is one of the seven day codes.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return ""
	}
	return weekdayNames[d]
}

// Availability is a weekly window in which an employee can (or cannot) work.
type Availability struct {
	ID           uuid.UUID
	EmployeeID   uuid.UUID
	EmployeeName string
	DayOfWeek    Weekday
	StartTime    TimeOfDay
	EndTime      TimeOfDay
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AvailabilityInput is the create/update payload. Nil fields were absent.
type AvailabilityInput struct {
	Employee    *EmployeeRef `json:"employee"`
	DayOfWeek   *int         `json:"day_of_week"`
	StartTime   *string      `json:"start_time"`
	EndTime     *string      `json:"end_time"`
	IsAvailable *bool        `json:"is_available"`
}

// EmployeeRef is the employee member of an availability payload, held as raw
// JSON. Any JSON value decodes; its type is checked when the reference is
// resolved, after a nested create has replaced it with the path employee.
type EmployeeRef json.RawMessage

// EmployeeRefTo references id as a JSON string.
func EmployeeRefTo(id string) *EmployeeRef {
	raw, _ := json.Marshal(id)
	ref := EmployeeRef(raw)
	return &ref
}

func (r *EmployeeRef) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

func (r EmployeeRef) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// Text returns the referenced id when the value is a JSON string.
func (r EmployeeRef) Text() (string, bool) {
	var s string
	if err := json.Unmarshal(r, &s); err != nil {
		return "", false
	}
	return s, true
}

// JSONType names the kind of value sent: str, int, float, bool, list or dict.
func (r EmployeeRef) JSONType() string {
	trimmed := bytes.TrimSpace(r)
	if len(trimmed) == 0 {
		return "NoneType"
	}
	switch trimmed[0] {
	case '"':
		return "str"
	case '{':
		return "dict"
	case '[':
		return "list"
	case 't', 'f':
		return "bool"
	case 'n':
		return "NoneType"
	}
	if bytes.ContainsAny(trimmed, ".eE") {
		return "float"
	}
	return "int"
}

// AvailabilityBatch is either one availability object or an ordered list of
// them. Many records whether the client sent a list so the reply can mirror it.
type AvailabilityBatch struct {
	Many  bool
	Items []AvailabilityInput
}

var ErrEmptyPayload = errors.New("expected an object or a list of objects")

func (b *AvailabilityBatch) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrEmptyPayload
	}
	switch trimmed[0] {
	case '[':
		var items []AvailabilityInput
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		b.Many = true
		b.Items = items
	case '{':
		var item AvailabilityInput
		if err := json.Unmarshal(trimmed, &item); err != nil {
			return err
		}
		b.Many = false
		b.Items = []AvailabilityInput{item}
	default:
		return ErrEmptyPayload
	}
	return nil
}

// AvailabilityFilter drives availability listing.
type AvailabilityFilter struct {
	EmployeeID  uuid.NullUUID
	DayOfWeek   null.Int
	IsAvailable null.Bool
	Ordering    []string
	Page        int
	Limit       int
}
