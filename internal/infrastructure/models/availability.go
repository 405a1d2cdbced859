package models

import (
	"time"

	"github.com/google/uuid"
)

// Availability start/end are SQL TIME columns.
type Availability struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_availability_slot,priority:1"`
	DayOfWeek   int       `gorm:"not null;uniqueIndex:idx_availability_slot,priority:2;index:idx_availability_day"`
	StartTime   ClockTime `gorm:"type:time;not null;uniqueIndex:idx_availability_slot,priority:3"`
	EndTime     ClockTime `gorm:"type:time;not null"`
	IsAvailable bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (Availability) TableName() string {
	return "availabilities"
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{&Skill{}, &Employee{}, &EmployeeSkill{}, &Availability{}}
}
