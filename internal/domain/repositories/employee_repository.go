package repositories

import (
	"context"

	"github.com/google/uuid"
	"staff-roster.backend/internal/domain/entities"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entities.Employee) error
	// GetByID loads the employee with skills and availability.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Employee, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// EmailTaken matches case-insensitively, ignoring excludeID.
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	// List loads skills but not availability.
	List(ctx context.Context, filter entities.EmployeeFilter) ([]*entities.Employee, int64, error)
	Update(ctx context.Context, employee *entities.Employee) error
	ReplaceSkills(ctx context.Context, employeeID uuid.UUID, skillIDs []uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}
