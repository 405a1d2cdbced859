package usecases

import (
	"context"

	"github.com/google/uuid"
	"staff-roster.backend/internal/domain/entities"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/internal/domain/repositories"
)

// SkillUsecase handles skill business logic
type SkillUsecase struct {
	skillRepo repositories.SkillRepository
	uow       repositories.UnitOfWork
}

// NewSkillUsecase creates a new skill usecase
func NewSkillUsecase(skillRepo repositories.SkillRepository, uow repositories.UnitOfWork) *SkillUsecase {
	return &SkillUsecase{skillRepo: skillRepo, uow: uow}
}

func (u *SkillUsecase) List(ctx context.Context, filter entities.SkillFilter) ([]*entities.Skill, int64, error) {
	return u.skillRepo.List(ctx, filter)
}

func (u *SkillUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Skill, error) {
	return u.skillRepo.GetByID(ctx, id)
}

func (u *SkillUsecase) Create(ctx context.Context, input *entities.SkillInput) (*entities.Skill, error) {
	skill := &entities.Skill{}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.apply(ctx, skill, input, false); err != nil {
			return err
		}
		return u.skillRepo.Create(ctx, skill)
	})
	if err != nil {
		return nil, err
	}
	return skill, nil
}

// Update replaces the skill (PUT) or merges the given fields (PATCH).
func (u *SkillUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.SkillInput, partial bool) (*entities.Skill, error) {
	var skill *entities.Skill
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		skill, err = u.skillRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := u.apply(ctx, skill, input, partial); err != nil {
			return err
		}
		return u.skillRepo.Update(ctx, skill)
	})
	if err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *SkillUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		return u.skillRepo.Delete(ctx, id)
	})
}

func (u *SkillUsecase) apply(ctx context.Context, skill *entities.Skill, input *entities.SkillInput, partial bool) error {
	errs := domainerrors.FieldErrors{}
	if name, ok := requiredText(errs, "name", input.Name, partial); ok {
		taken, err := u.skillRepo.ExistsByName(ctx, name, skill.ID)
		if err != nil {
			return err
		}
		if taken {
			errs.Add("name", domainerrors.MsgSkillNameTaken)
		} else {
			skill.Name = name
		}
	}
	if input.Description != nil {
		skill.Description = *input.Description
	}
	return domainerrors.NewValidationError(errs)
}
