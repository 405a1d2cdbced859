package entities

import (
	"time"

	"github.com/google/uuid"
)

// Wire date layout for hire and birth dates.
const DateLayout = "2006-01-02"

// AvailabilityView is the wire shape of an availability record.
type AvailabilityView struct {
	ID               uuid.UUID `json:"id"`
	Employee         uuid.UUID `json:"employee"`
	EmployeeName     string    `json:"employee_name,omitempty"`
	DayOfWeek        Weekday   `json:"day_of_week"`
	DayOfWeekDisplay string    `json:"day_of_week_display"`
	StartTime        TimeOfDay `json:"start_time"`
	EndTime          TimeOfDay `json:"end_time"`
	IsAvailable      bool      `json:"is_available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EmployeeSummary is the lightweight list shape: no availability, no age.
type EmployeeSummary struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	HourlyRate string    `json:"hourly_rate"`
	Skills     []*Skill  `json:"skills"`
	IsActive   bool      `json:"is_active"`
}

// EmployeeDetail is the full shape with derived and nested fields.
type EmployeeDetail struct {
	ID           uuid.UUID           `json:"id"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	FullName     string              `json:"full_name"`
	Email        string              `json:"email"`
	PhoneNumber  string              `json:"phone_number"`
	HourlyRate   string              `json:"hourly_rate"`
	HireDate     string              `json:"hire_date"`
	BirthDate    string              `json:"birth_date"`
	Age          int                 `json:"age"`
	IsMinor      bool                `json:"is_minor"`
	Skills       []*Skill            `json:"skills"`
	Availability []*AvailabilityView `json:"availability"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// NewAvailabilityView serializes a record.
func NewAvailabilityView(a *Availability) *AvailabilityView {
	return &AvailabilityView{
		ID:               a.ID,
		Employee:         a.EmployeeID,
		EmployeeName:     a.EmployeeName,
		DayOfWeek:        a.DayOfWeek,
		DayOfWeekDisplay: a.DayOfWeek.String(),
		StartTime:        a.StartTime,
		EndTime:          a.EndTime,
		IsAvailable:      a.IsAvailable,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// NewAvailabilityViews serializes a slice, never returning nil.
func NewAvailabilityViews(items []*Availability) []*AvailabilityView {
	out := make([]*AvailabilityView, 0, len(items))
	for _, a := range items {
		out = append(out, NewAvailabilityView(a))
	}
	return out
}

// NewEmployeeSummary serializes e for list responses.
func NewEmployeeSummary(e *Employee) *EmployeeSummary {
	return &EmployeeSummary{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Email:      e.Email,
		HourlyRate: e.HourlyRate.StringFixed(2),
		Skills:     nonNilSkills(e.Skills),
		IsActive:   e.IsActive,
	}
}

// NewEmployeeDetail serializes e, deriving age and is_minor against today.
func NewEmployeeDetail(e *Employee, today time.Time) *EmployeeDetail {
	age := e.Age(today)
	return &EmployeeDetail{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		FullName:     e.FullName(),
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		HourlyRate:   e.HourlyRate.StringFixed(2),
		HireDate:     e.HireDate.Format(DateLayout),
		BirthDate:    e.BirthDate.Format(DateLayout),
		Age:          age,
		IsMinor:      age < MinorAgeThreshold,
		Skills:       nonNilSkills(e.Skills),
		Availability: NewAvailabilityViews(e.Availability),
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func nonNilSkills(skills []*Skill) []*Skill {
	if skills == nil {
		return []*Skill{}
	}
	return skills
}

// EmployeeDeactivation is the soft delete confirmation body.
type EmployeeDeactivation struct {
	Detail   string    `json:"detail"`
	ID       uuid.UUID `json:"id"`
	IsActive bool      `json:"is_active"`
}
