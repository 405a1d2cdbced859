package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee rows are never removed by the API; is_active carries the soft delete.
// Case-insensitive email uniqueness is the idx_employees_email_lower expression
// index created by the migration, not a column tag.
type Employee struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FirstName   string          `gorm:"type:varchar(100);not null;index:idx_employees_name,priority:2"`
	LastName    string          `gorm:"type:varchar(100);not null;index:idx_employees_name,priority:1"`
	Email       string          `gorm:"type:varchar(254);not null"`
	PhoneNumber string          `gorm:"type:varchar(20);not null"`
	HourlyRate  decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	HireDate    time.Time       `gorm:"type:date;not null"`
	BirthDate   time.Time       `gorm:"type:date;not null"`
	IsActive    bool            `gorm:"not null;index:idx_employees_is_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Skills []Skill `gorm:"many2many:employee_skills;constraint:OnDelete:CASCADE"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeSkill is the join row between employees and skills.
type EmployeeSkill struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SkillID    uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (EmployeeSkill) TableName() string {
	return "employee_skills"
}
