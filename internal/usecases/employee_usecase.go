package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"staff-roster.backend/internal/domain/entities"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/internal/domain/repositories"
)

// DeactivatedMessage is the detail returned by a soft delete.
const DeactivatedMessage = "Employee deactivated successfully."

// EmployeeUsecase handles employee business logic
type EmployeeUsecase struct {
	employeeRepo repositories.EmployeeRepository
	skillRepo    repositories.SkillRepository
	uow          repositories.UnitOfWork
	now          func() time.Time
}

// NewEmployeeUsecase creates a new employee usecase
func NewEmployeeUsecase(
	employeeRepo repositories.EmployeeRepository,
	skillRepo repositories.SkillRepository,
	uow repositories.UnitOfWork,
) *EmployeeUsecase {
	return &EmployeeUsecase{
		employeeRepo: employeeRepo,
		skillRepo:    skillRepo,
		uow:          uow,
		now:          time.Now,
	}
}

// SetClock overrides the clock used for age and is_minor.
func (u *EmployeeUsecase) SetClock(now func() time.Time) {
	u.now = now
}

func (u *EmployeeUsecase) List(ctx context.Context, filter entities.EmployeeFilter) ([]*entities.EmployeeSummary, int64, error) {
	if len(filter.SkillIDs) > 0 {
		found, err := u.skillRepo.GetByIDs(ctx, filter.SkillIDs)
		if err != nil {
			return nil, 0, err
		}
		if missing := firstMissingSkill(filter.SkillIDs, found); missing != uuid.Nil {
			return nil, 0, domainerrors.FieldError("skills", fmt.Sprintf(domainerrors.MsgFilterChoice, missing))
		}
	}

	items, total, err := u.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*entities.EmployeeSummary, 0, len(items))
	for _, e := range items {
		out = append(out, entities.NewEmployeeSummary(e))
	}
	return out, total, nil
}

func (u *EmployeeUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.EmployeeDetail, error) {
	e, err := u.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return entities.NewEmployeeDetail(e, u.now()), nil
}

func (u *EmployeeUsecase) Create(ctx context.Context, input *entities.EmployeeInput) (*entities.EmployeeDetail, error) {
	var created *entities.Employee
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		e := &entities.Employee{IsActive: true}
		skills, _, err := u.apply(ctx, e, input, false)
		if err != nil {
			return err
		}
		e.Skills = skills
		if err := u.employeeRepo.Create(ctx, e); err != nil {
			return err
		}
		created, err = u.employeeRepo.GetByID(ctx, e.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entities.NewEmployeeDetail(created, u.now()), nil
}

// Update replaces the employee (PUT) or merges the given fields (PATCH).
// skill_ids, when present, replaces the whole skill set.
func (u *EmployeeUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.EmployeeInput, partial bool) (*entities.EmployeeDetail, error) {
	var updated *entities.Employee
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		e, err := u.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		skills, replaceSkills, err := u.apply(ctx, e, input, partial)
		if err != nil {
			return err
		}
		if err := u.employeeRepo.Update(ctx, e); err != nil {
			return err
		}
		if replaceSkills {
			ids := make([]uuid.UUID, 0, len(skills))
			for _, s := range skills {
				ids = append(ids, s.ID)
			}
			if err := u.employeeRepo.ReplaceSkills(ctx, e.ID, ids); err != nil {
				return err
			}
		}
		updated, err = u.employeeRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entities.NewEmployeeDetail(updated, u.now()), nil
}

// Deactivate is the soft delete: the row stays, is_active turns false.
func (u *EmployeeUsecase) Deactivate(ctx context.Context, id uuid.UUID) (*entities.EmployeeDeactivation, error) {
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		return u.employeeRepo.Deactivate(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &entities.EmployeeDeactivation{
		Detail:   DeactivatedMessage,
		ID:       id,
		IsActive: false,
	}, nil
}

// apply validates input and copies it onto e. The returned skills are only
// meaningful when replace is true, i.e. skill_ids was sent.
func (u *EmployeeUsecase) apply(ctx context.Context, e *entities.Employee, input *entities.EmployeeInput, partial bool) (skills []*entities.Skill, replace bool, err error) {
	errs := domainerrors.FieldErrors{}

	if v, ok := requiredText(errs, "first_name", input.FirstName, partial); ok {
		e.FirstName = v
	}
	if v, ok := requiredText(errs, "last_name", input.LastName, partial); ok {
		e.LastName = v
	}
	if v, ok := requiredText(errs, "email", input.Email, partial); ok {
		taken, err := u.employeeRepo.EmailTaken(ctx, v, e.ID)
		if err != nil {
			return nil, false, err
		}
		if taken {
			errs.Add("email", domainerrors.MsgEmailTaken)
		} else {
			e.Email = v
		}
	}
	if v, ok := requiredText(errs, "phone_number", input.PhoneNumber, partial); ok {
		e.PhoneNumber = v
	}

	if input.HourlyRate == nil {
		if !partial {
			errs.Add("hourly_rate", domainerrors.MsgRequired)
		}
	} else if rate, msg := parseHourlyRate(input.HourlyRate); msg != "" {
		errs.Add("hourly_rate", msg)
	} else {
		e.HourlyRate = rate
	}

	if d, ok := requiredDate(errs, "hire_date", input.HireDate, partial); ok {
		e.HireDate = d
	}
	if d, ok := requiredDate(errs, "birth_date", input.BirthDate, partial); ok {
		e.BirthDate = d
	}
	if input.IsActive != nil {
		e.IsActive = *input.IsActive
	}

	if input.SkillIDs != nil {
		replace = true
		skills, err = u.resolveSkills(ctx, errs, input.SkillIDs)
		if err != nil {
			return nil, false, err
		}
	}

	return skills, replace, domainerrors.NewValidationError(errs)
}

// resolveSkills loads every referenced skill, reporting the first unknown id.
func (u *EmployeeUsecase) resolveSkills(ctx context.Context, errs domainerrors.FieldErrors, raw []string) ([]*entities.Skill, error) {
	ids, bad, ok := parseUUIDs(raw)
	if !ok {
		errs.Add("skill_ids", invalidPK(bad))
		return nil, nil
	}
	found, err := u.skillRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if missing := firstMissingSkill(ids, found); missing != uuid.Nil {
		errs.Add("skill_ids", invalidPK(missing.String()))
		return nil, nil
	}
	return found, nil
}

func firstMissingSkill(ids []uuid.UUID, found []*entities.Skill) uuid.UUID {
	have := make(map[uuid.UUID]struct{}, len(found))
	for _, s := range found {
		have[s.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return id
		}
	}
	return uuid.Nil
}
