package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"staff-roster.backend/internal/domain/entities"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/internal/infrastructure/models"
	"staff-roster.backend/pkg/utils"
)

var employeeOrdering = map[string]string{
	"first_name":  "first_name",
	"last_name":   "last_name",
	"hire_date":   "hire_date",
	"hourly_rate": "hourly_rate",
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts the employee and links any skills already set on it.
func (r *EmployeeRepository) Create(ctx context.Context, employee *entities.Employee) error {
	if employee.ID == uuid.Nil {
		employee.ID = utils.NewID()
	}
	db := GetDB(ctx, r.db)
	m := r.toModel(employee)
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return translateError(err)
	}
	if err := insertEmployeeSkills(db, employee.ID, employee.SkillIDs()); err != nil {
		return translateError(err)
	}
	employee.CreatedAt = m.CreatedAt
	employee.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Employee, error) {
	db := GetDB(ctx, r.db)
	var m models.Employee
	if err := db.Preload("Skills", orderSkillsByName).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}

	var slots []models.Availability
	if err := db.Where("employee_id = ?", id).
		Order("day_of_week ASC").Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	e := r.toEntity(&m)
	e.Availability = make([]*entities.Availability, 0, len(slots))
	for i := range slots {
		a, err := availabilityToEntity(&slots[i])
		if err != nil {
			return nil, err
		}
		e.Availability = append(e.Availability, a)
	}
	return e, nil
}

func (r *EmployeeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&models.Employee{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EmployeeRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := GetDB(ctx, r.db).Model(&models.Employee{}).Where("LOWER(email) = LOWER(?)", email)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EmployeeRepository) List(ctx context.Context, filter entities.EmployeeFilter) ([]*entities.Employee, int64, error) {
	q := GetDB(ctx, r.db).Model(&models.Employee{})
	if filter.IsActive.Valid {
		q = q.Where("is_active = ?", filter.IsActive.Bool)
	}
	if len(filter.SkillIDs) > 0 {
		q = q.Where("id IN (SELECT employee_id FROM employee_skills WHERE skill_id IN ?)", filter.SkillIDs)
	}
	q = applySearch(q, filter.Search, "first_name", "last_name", "email")
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Employee
	q = applyOrdering(q, "employees", filter.Ordering, employeeOrdering, []string{"last_name", "first_name"})
	if err := applyPage(q, filter.Page, filter.Limit).Preload("Skills", orderSkillsByName).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Employee, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

// Update writes every scalar column. Skills are handled by ReplaceSkills.
func (r *EmployeeRepository) Update(ctx context.Context, employee *entities.Employee) error {
	now := time.Now()
	result := GetDB(ctx, r.db).
		Model(&models.Employee{}).
		Where("id = ?", employee.ID).
		Updates(map[string]interface{}{
			"first_name":   employee.FirstName,
			"last_name":    employee.LastName,
			"email":        employee.Email,
			"phone_number": employee.PhoneNumber,
			"hourly_rate":  employee.HourlyRate,
			"hire_date":    employee.HireDate,
			"birth_date":   employee.BirthDate,
			"is_active":    employee.IsActive,
			"updated_at":   now,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	employee.UpdatedAt = now
	return nil
}

// ReplaceSkills sets the employee's skills to exactly skillIDs.
func (r *EmployeeRepository) ReplaceSkills(ctx context.Context, employeeID uuid.UUID, skillIDs []uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("employee_id = ?", employeeID).Delete(&models.EmployeeSkill{}).Error; err != nil {
		return err
	}
	return translateError(insertEmployeeSkills(db, employeeID, skillIDs))
}

// Deactivate flips is_active off. The row and its relations stay.
func (r *EmployeeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func insertEmployeeSkills(db *gorm.DB, employeeID uuid.UUID, skillIDs []uuid.UUID) error {
	if len(skillIDs) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(skillIDs))
	rows := make([]models.EmployeeSkill, 0, len(skillIDs))
	for _, id := range skillIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, models.EmployeeSkill{EmployeeID: employeeID, SkillID: id})
	}
	return db.Create(&rows).Error
}

func orderSkillsByName(db *gorm.DB) *gorm.DB {
	return db.Order("skills.name ASC")
}

func (r *EmployeeRepository) toEntity(m *models.Employee) *entities.Employee {
	skills := make([]*entities.Skill, 0, len(m.Skills))
	for i := range m.Skills {
		s := m.Skills[i]
		skills = append(skills, &entities.Skill{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return &entities.Employee{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		HourlyRate:  m.HourlyRate,
		HireDate:    m.HireDate,
		BirthDate:   m.BirthDate,
		IsActive:    m.IsActive,
		Skills:      skills,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *EmployeeRepository) toModel(e *entities.Employee) *models.Employee {
	return &models.Employee{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		HourlyRate:  e.HourlyRate,
		HireDate:    e.HireDate,
		BirthDate:   e.BirthDate,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
