package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEmployee_FullName(t *testing.T) {
	e := &Employee{FirstName: "Jane", LastName: "Smith"}
	if got := e.FullName(); got != "Jane Smith" {
		t.Fatalf("expected Jane Smith got %q", got)
	}
}

func TestAgeOn_BirthdayBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		birth time.Time
		today time.Time
		want  int
	}{
		{"day before birthday", date(2010, 6, 15), date(2024, 6, 14), 13},
		{"on birthday", date(2010, 6, 15), date(2024, 6, 15), 14},
		{"earlier month", date(2010, 6, 15), date(2024, 5, 30), 13},
		{"later month", date(2010, 6, 15), date(2024, 7, 1), 14},
		{"leap day in non-leap year", date(2004, 2, 29), date(2022, 2, 28), 17},
		{"leap day after march", date(2004, 2, 29), date(2022, 3, 1), 18},
	}
	for _, tc := range cases {
		if got := AgeOn(tc.birth, tc.today); got != tc.want {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.want, got)
		}
	}
}

func TestEmployee_IsMinorMatchesAge(t *testing.T) {
	e := &Employee{BirthDate: date(2006, 10, 18)}
	if !e.IsMinor(date(2024, 10, 17)) {
		t.Fatalf("expected minor the day before the 18th birthday")
	}
	if e.IsMinor(date(2024, 10, 18)) {
		t.Fatalf("expected adult on the 18th birthday")
	}
}

func TestNewEmployeeDetail_DerivedFields(t *testing.T) {
	e := &Employee{
		FirstName:  "John",
		LastName:   "Doe",
		HourlyRate: decimal.RequireFromString("15.5"),
		HireDate:   date(2024, 1, 15),
		BirthDate:  date(2010, 6, 15),
		IsActive:   true,
		Availability: []*Availability{
			{DayOfWeek: Tuesday, StartTime: NewTimeOfDay(9, 0, 0), EndTime: NewTimeOfDay(17, 0, 0)},
		},
	}
	d := NewEmployeeDetail(e, date(2024, 6, 14))
	if d.FullName != "John Doe" || d.Age != 13 || !d.IsMinor {
		t.Fatalf("unexpected derived fields: %+v", d)
	}
	if d.HourlyRate != "15.50" {
		t.Fatalf("expected 15.50 got %s", d.HourlyRate)
	}
	if d.HireDate != "2024-01-15" || d.BirthDate != "2010-06-15" {
		t.Fatalf("unexpected dates %s %s", d.HireDate, d.BirthDate)
	}
	if d.Skills == nil || len(d.Availability) != 1 || d.Availability[0].DayOfWeekDisplay != "Tuesday" {
		t.Fatalf("unexpected nested fields: %+v", d)
	}

	s := NewEmployeeSummary(e)
	if s.FullName != "John Doe" || s.HourlyRate != "15.50" || s.Skills == nil {
		t.Fatalf("unexpected summary: %+v", s)
	}
}
