package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"staff-roster.backend/internal/domain/entities"
	"staff-roster.backend/internal/infrastructure/models"
)

var testCtx = context.Background()

// newTestDB opens a private in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...), "migrate")
	mustExec(t, db, "CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_email_lower ON employees (LOWER(email))")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(entities.DateLayout, s)
	require.NoError(t, err)
	return d
}

func seedSkill(t *testing.T, db *gorm.DB, name string) *entities.Skill {
	t.Helper()
	s := &entities.Skill{Name: name, Description: name + " work"}
	require.NoError(t, NewSkillRepository(db).Create(testCtx, s))
	return s
}

func seedEmployee(t *testing.T, db *gorm.DB, first, last, email string, skills ...*entities.Skill) *entities.Employee {
	t.Helper()
	e := &entities.Employee{
		FirstName:   first,
		LastName:    last,
		Email:       email,
		PhoneNumber: "555-0100",
		HourlyRate:  decimal.RequireFromString("18.50"),
		HireDate:    date(t, "2023-01-10"),
		BirthDate:   date(t, "1995-04-02"),
		IsActive:    true,
		Skills:      skills,
	}
	require.NoError(t, NewEmployeeRepository(db).Create(testCtx, e))
	return e
}

func seedAvailability(t *testing.T, db *gorm.DB, employeeID uuid.UUID, day entities.Weekday, start, end string) *entities.Availability {
	t.Helper()
	st, err := entities.ParseTimeOfDay(start)
	require.NoError(t, err)
	et, err := entities.ParseTimeOfDay(end)
	require.NoError(t, err)
	a := &entities.Availability{
		EmployeeID:  employeeID,
		DayOfWeek:   day,
		StartTime:   st,
		EndTime:     et,
		IsAvailable: true,
	}
	require.NoError(t, NewAvailabilityRepository(db).Create(testCtx, a))
	return a
}
