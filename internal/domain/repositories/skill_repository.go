package repositories

import (
	"context"

	"github.com/google/uuid"
	"staff-roster.backend/internal/domain/entities"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *entities.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Skill, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Skill, error)
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, filter entities.SkillFilter) ([]*entities.Skill, int64, error)
	Update(ctx context.Context, skill *entities.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}
