package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"staff-roster.backend/internal/domain/entities"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/internal/infrastructure/models"
	"staff-roster.backend/pkg/utils"
)

var availabilityOrdering = map[string]string{
	"day_of_week": "availabilities.day_of_week",
	"start_time":  "availabilities.start_time",
	"employee":    "availabilities.employee_id",
}

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Create(ctx context.Context, availability *entities.Availability) error {
	if availability.ID == uuid.Nil {
		availability.ID = utils.NewID()
	}
	m := availabilityToModel(availability)
	if err := GetDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		return translateError(err)
	}
	availability.CreatedAt = m.CreatedAt
	availability.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID loads the record with the owning employee's name.
func (r *AvailabilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Availability, error) {
	var m models.Availability
	if err := GetDB(ctx, r.db).Joins("Employee").Where("availabilities.id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return availabilityToEntity(&m)
}

func (r *AvailabilityRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entities.Availability, error) {
	var ms []models.Availability
	if err := GetDB(ctx, r.db).
		Joins("Employee").
		Where("availabilities.employee_id = ?", employeeID).
		Order("availabilities.day_of_week ASC").
		Order("availabilities.start_time ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return availabilityEntities(ms)
}

func (r *AvailabilityRepository) List(ctx context.Context, filter entities.AvailabilityFilter) ([]*entities.Availability, int64, error) {
	q := GetDB(ctx, r.db).Model(&models.Availability{})
	if filter.EmployeeID.Valid {
		q = q.Where("availabilities.employee_id = ?", filter.EmployeeID.UUID)
	}
	if filter.DayOfWeek.Valid {
		q = q.Where("availabilities.day_of_week = ?", filter.DayOfWeek.Int)
	}
	if filter.IsAvailable.Valid {
		q = q.Where("availabilities.is_available = ?", filter.IsAvailable.Bool)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Availability
	q = applyOrdering(q.Joins("Employee"), "availabilities", filter.Ordering, availabilityOrdering,
		[]string{"employee", "day_of_week", "start_time"})
	if err := applyPage(q, filter.Page, filter.Limit).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items, err := availabilityEntities(ms)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *AvailabilityRepository) SlotTaken(ctx context.Context, employeeID uuid.UUID, day entities.Weekday, start entities.TimeOfDay, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := GetDB(ctx, r.db).Model(&models.Availability{}).
		Where("employee_id = ? AND day_of_week = ? AND start_time = ?", employeeID, int(day), start.String())
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AvailabilityRepository) Update(ctx context.Context, availability *entities.Availability) error {
	now := time.Now()
	result := GetDB(ctx, r.db).
		Model(&models.Availability{}).
		Where("id = ?", availability.ID).
		Updates(map[string]interface{}{
			"employee_id":  availability.EmployeeID,
			"day_of_week":  int(availability.DayOfWeek),
			"start_time":   availability.StartTime.String(),
			"end_time":     availability.EndTime.String(),
			"is_available": availability.IsAvailable,
			"updated_at":   now,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	availability.UpdatedAt = now
	return nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Availability{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func availabilityEntities(ms []models.Availability) ([]*entities.Availability, error) {
	items := make([]*entities.Availability, 0, len(ms))
	for i := range ms {
		a, err := availabilityToEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

func availabilityToEntity(m *models.Availability) (*entities.Availability, error) {
	start, err := entities.ParseTimeOfDay(string(m.StartTime))
	if err != nil {
		return nil, fmt.Errorf("availability %s start_time: %w", m.ID, err)
	}
	end, err := entities.ParseTimeOfDay(string(m.EndTime))
	if err != nil {
		return nil, fmt.Errorf("availability %s end_time: %w", m.ID, err)
	}
	a := &entities.Availability{
		ID:          m.ID,
		EmployeeID:  m.EmployeeID,
		DayOfWeek:   entities.Weekday(m.DayOfWeek),
		StartTime:   start,
		EndTime:     end,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Employee != nil {
		a.EmployeeName = m.Employee.FirstName + " " + m.Employee.LastName
	}
	return a, nil
}

func availabilityToModel(e *entities.Availability) *models.Availability {
	return &models.Availability{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		DayOfWeek:   int(e.DayOfWeek),
		StartTime:   models.ClockTime(e.StartTime.String()),
		EndTime:     models.ClockTime(e.EndTime.String()),
		IsAvailable: e.IsAvailable,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
