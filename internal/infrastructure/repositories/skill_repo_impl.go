package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"staff-roster.backend/internal/domain/entities"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/internal/infrastructure/models"
	"staff-roster.backend/pkg/utils"
)

var skillOrdering = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, skill *entities.Skill) error {
	if skill.ID == uuid.Nil {
		skill.ID = utils.NewID()
	}
	m := r.toModel(skill)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	skill.CreatedAt = m.CreatedAt
	skill.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Skill, error) {
	var m models.Skill
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// GetByIDs returns the skills that exist among ids; missing ids are skipped.
func (r *SkillRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Skill, error) {
	if len(ids) == 0 {
		return []*entities.Skill{}, nil
	}
	var ms []models.Skill
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *SkillRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := GetDB(ctx, r.db).Model(&models.Skill{}).Where("name = ?", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SkillRepository) List(ctx context.Context, filter entities.SkillFilter) ([]*entities.Skill, int64, error) {
	q := GetDB(ctx, r.db).Model(&models.Skill{})
	q = applySearch(q, filter.Search, "name", "description")
	// Session lets the filtered query serve both Count and Find.
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Skill
	q = applyOrdering(q, "skills", filter.Ordering, skillOrdering, []string{"name"})
	if err := applyPage(q, filter.Page, filter.Limit).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return r.toEntities(ms), total, nil
}

func (r *SkillRepository) Update(ctx context.Context, skill *entities.Skill) error {
	now := time.Now()
	result := GetDB(ctx, r.db).
		Model(&models.Skill{}).
		Where("id = ?", skill.ID).
		Updates(map[string]interface{}{
			"name":        skill.Name,
			"description": skill.Description,
			"updated_at":  now,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	skill.UpdatedAt = now
	return nil
}

// Delete removes the skill and its employee associations.
func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("skill_id = ?", id).Delete(&models.EmployeeSkill{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *SkillRepository) toEntities(ms []models.Skill) []*entities.Skill {
	items := make([]*entities.Skill, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *SkillRepository) toEntity(m *models.Skill) *entities.Skill {
	return &entities.Skill{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *SkillRepository) toModel(e *entities.Skill) *models.Skill {
	return &models.Skill{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
