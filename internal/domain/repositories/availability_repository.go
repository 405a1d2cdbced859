package repositories

import (
	"context"

	"github.com/google/uuid"
	"staff-roster.backend/internal/domain/entities"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, availability *entities.Availability) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Availability, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entities.Availability, error)
	List(ctx context.Context, filter entities.AvailabilityFilter) ([]*entities.Availability, int64, error)
	// SlotTaken reports whether (employee, day, start) is used by a record other than excludeID.
	SlotTaken(ctx context.Context, employeeID uuid.UUID, day entities.Weekday, start entities.TimeOfDay, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, availability *entities.Availability) error
	Delete(ctx context.Context, id uuid.UUID) error
}
