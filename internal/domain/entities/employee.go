package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// MinorAgeThreshold is the age below which labor-law restrictions apply.
const MinorAgeThreshold = 18

// Employee is a shift worker record.
type Employee struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	HourlyRate   decimal.Decimal
	HireDate     time.Time
	BirthDate    time.Time
	IsActive     bool
	Skills       []*Skill
	Availability []*Availability
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name with a single space.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Age returns completed years between the birth date and today.
func (e *Employee) Age(today time.Time) int {
	return AgeOn(e.BirthDate, today)
}

// IsMinor reports whether the employee is under MinorAgeThreshold on today.
func (e *Employee) IsMinor(today time.Time) bool {
	return e.Age(today) < MinorAgeThreshold
}

// AgeOn computes age in whole years, subtracting one if the birthday has not
// yet been reached in today's year.
func AgeOn(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// SkillIDs returns the ids of the attached skills.
func (e *Employee) SkillIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(e.Skills))
	for _, s := range e.Skills {
		ids = append(ids, s.ID)
	}
	return ids
}

// EmployeeInput is the create/update payload. Nil fields were absent from the
// request; HourlyRate is kept raw so bad numbers surface as field errors.
type EmployeeInput struct {
	FirstName   *string         `json:"first_name" binding:"omitempty,max=100"`
	LastName    *string         `json:"last_name" binding:"omitempty,max=100"`
	Email       *string         `json:"email" binding:"omitempty,email,max=254"`
	PhoneNumber *string         `json:"phone_number" binding:"omitempty,max=20"`
	HourlyRate  json.RawMessage `json:"hourly_rate"`
	HireDate    *string         `json:"hire_date"`
	BirthDate   *string         `json:"birth_date"`
	IsActive    *bool           `json:"is_active"`
	SkillIDs    []string        `json:"skill_ids"`
}

// EmployeeFilter drives employee listing.
type EmployeeFilter struct {
	Search   string
	IsActive null.Bool
	SkillIDs []uuid.UUID
	Ordering []string
	Page     int
	Limit    int
}
