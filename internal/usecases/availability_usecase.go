package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"staff-roster.backend/internal/domain/entities"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/internal/domain/repositories"
)

// AvailabilityUsecase handles availability business logic
type AvailabilityUsecase struct {
	availabilityRepo repositories.AvailabilityRepository
	employeeRepo     repositories.EmployeeRepository
	uow              repositories.UnitOfWork
}

// NewAvailabilityUsecase creates a new availability usecase
func NewAvailabilityUsecase(
	availabilityRepo repositories.AvailabilityRepository,
	employeeRepo repositories.EmployeeRepository,
	uow repositories.UnitOfWork,
) *AvailabilityUsecase {
	return &AvailabilityUsecase{
		availabilityRepo: availabilityRepo,
		employeeRepo:     employeeRepo,
		uow:              uow,
	}
}

type slotKey struct {
	employeeID uuid.UUID
	day        entities.Weekday
	start      entities.TimeOfDay
}

func slotOf(a *entities.Availability) slotKey {
	return slotKey{employeeID: a.EmployeeID, day: a.DayOfWeek, start: a.StartTime}
}

func (u *AvailabilityUsecase) List(ctx context.Context, filter entities.AvailabilityFilter) ([]*entities.AvailabilityView, int64, error) {
	if filter.DayOfWeek.Valid && !entities.Weekday(filter.DayOfWeek.Int).Valid() {
		return nil, 0, domainerrors.FieldError("day_of_week", fmt.Sprintf(domainerrors.MsgFilterChoice, fmt.Sprint(filter.DayOfWeek.Int)))
	}
	if filter.EmployeeID.Valid {
		ok, err := u.employeeRepo.Exists(ctx, filter.EmployeeID.UUID)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, domainerrors.FieldError("employee", fmt.Sprintf(domainerrors.MsgFilterChoice, "That choice"))
		}
	}

	items, total, err := u.availabilityRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return entities.NewAvailabilityViews(items), total, nil
}

func (u *AvailabilityUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.AvailabilityView, error) {
	a, err := u.availabilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return entities.NewAvailabilityView(a), nil
}

// ListForEmployee returns every record of one employee, 404 if the employee is unknown.
func (u *AvailabilityUsecase) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entities.AvailabilityView, error) {
	if err := u.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	items, err := u.availabilityRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return entities.NewAvailabilityViews(items), nil
}

func (u *AvailabilityUsecase) Create(ctx context.Context, input *entities.AvailabilityInput) (*entities.AvailabilityView, error) {
	var view *entities.AvailabilityView
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		a := &entities.Availability{IsAvailable: true}
		errs, err := u.apply(ctx, a, input, false, nil)
		if err != nil {
			return err
		}
		if err := domainerrors.NewValidationError(errs); err != nil {
			return err
		}
		view, err = u.persist(ctx, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// CreateForEmployee stores one or many records for employeeID, overriding any
// employee sent by the client. Every item is validated before anything is
// written, and the whole batch shares one transaction.
func (u *AvailabilityUsecase) CreateForEmployee(ctx context.Context, employeeID uuid.UUID, batch *entities.AvailabilityBatch) ([]*entities.AvailabilityView, error) {
	views := make([]*entities.AvailabilityView, 0, len(batch.Items))
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.requireEmployee(ctx, employeeID); err != nil {
			return err
		}

		pending := make(map[slotKey]struct{}, len(batch.Items))
		records := make([]*entities.Availability, len(batch.Items))
		report := make([]domainerrors.FieldErrors, len(batch.Items))
		for i := range batch.Items {
			in := batch.Items[i]
			in.Employee = entities.EmployeeRefTo(employeeID.String())
			a := &entities.Availability{IsAvailable: true}
			errs, err := u.apply(ctx, a, &in, false, pending)
			if err != nil {
				return err
			}
			if len(errs) == 0 {
				pending[slotOf(a)] = struct{}{}
			}
			records[i] = a
			report[i] = errs
		}

		if batch.Many {
			if err := domainerrors.NewBatchValidationError(report); err != nil {
				return err
			}
		} else if len(report) == 1 {
			if err := domainerrors.NewValidationError(report[0]); err != nil {
				return err
			}
		}

		for _, a := range records {
			view, err := u.persist(ctx, a)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// Update replaces the record (PUT) or merges the given fields (PATCH). Stored
// values fill whatever a partial update leaves out before the range check.
func (u *AvailabilityUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.AvailabilityInput, partial bool) (*entities.AvailabilityView, error) {
	var view *entities.AvailabilityView
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		a, err := u.availabilityRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		errs, err := u.apply(ctx, a, input, partial, nil)
		if err != nil {
			return err
		}
		if err := domainerrors.NewValidationError(errs); err != nil {
			return err
		}
		if err := u.availabilityRepo.Update(ctx, a); err != nil {
			return err
		}
		stored, err := u.availabilityRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		view = entities.NewAvailabilityView(stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (u *AvailabilityUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		return u.availabilityRepo.Delete(ctx, id)
	})
}

func (u *AvailabilityUsecase) persist(ctx context.Context, a *entities.Availability) (*entities.AvailabilityView, error) {
	if err := u.availabilityRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	stored, err := u.availabilityRepo.GetByID(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	return entities.NewAvailabilityView(stored), nil
}

func (u *AvailabilityUsecase) requireEmployee(ctx context.Context, id uuid.UUID) error {
	ok, err := u.employeeRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrNotFound
	}
	return nil
}

// apply validates input onto a. Field errors come first; the slot uniqueness
// check runs only on a clean record, and the time range check only after it.
func (u *AvailabilityUsecase) apply(ctx context.Context, a *entities.Availability, input *entities.AvailabilityInput, partial bool, pending map[slotKey]struct{}) (domainerrors.FieldErrors, error) {
	errs := domainerrors.FieldErrors{}

	if input.Employee == nil {
		if !partial {
			errs.Add("employee", domainerrors.MsgRequired)
		}
	} else if text, ok := input.Employee.Text(); !ok {
		errs.Add("employee", fmt.Sprintf(domainerrors.MsgIncorrectPKType, input.Employee.JSONType()))
	} else {
		raw := strings.TrimSpace(text)
		id, err := uuid.Parse(raw)
		if err != nil {
			errs.Add("employee", invalidPK(raw))
		} else {
			ok, err := u.employeeRepo.Exists(ctx, id)
			if err != nil {
				return nil, err
			}
			if !ok {
				errs.Add("employee", invalidPK(raw))
			} else {
				a.EmployeeID = id
			}
		}
	}

	if input.DayOfWeek == nil {
		if !partial {
			errs.Add("day_of_week", domainerrors.MsgRequired)
		}
	} else if day := entities.Weekday(*input.DayOfWeek); !day.Valid() {
		errs.Add("day_of_week", fmt.Sprintf(domainerrors.MsgInvalidChoice, *input.DayOfWeek))
	} else {
		a.DayOfWeek = day
	}

	if t, ok := requiredTime(errs, "start_time", input.StartTime, partial); ok {
		a.StartTime = t
	}
	if t, ok := requiredTime(errs, "end_time", input.EndTime, partial); ok {
		a.EndTime = t
	}
	if input.IsAvailable != nil {
		a.IsAvailable = *input.IsAvailable
	}
	if len(errs) > 0 {
		return errs, nil
	}

	taken, err := u.availabilityRepo.SlotTaken(ctx, a.EmployeeID, a.DayOfWeek, a.StartTime, a.ID)
	if err != nil {
		return nil, err
	}
	if _, dup := pending[slotOf(a)]; taken || dup {
		errs.Add(domainerrors.NonFieldErrorsKey, domainerrors.MsgSlotTaken)
		return errs, nil
	}

	if a.EndTime <= a.StartTime {
		errs.Add("end_time", domainerrors.MsgEndBeforeStart)
	}
	return errs, nil
}
