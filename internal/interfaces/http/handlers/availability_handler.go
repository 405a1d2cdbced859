package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"staff-roster.backend/internal/domain/entities"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/internal/interfaces/http/response"
	"staff-roster.backend/internal/usecases"
)

// AvailabilityHandler handles the top-level availability endpoints
type AvailabilityHandler struct {
	availabilityUsecase *usecases.AvailabilityUsecase
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityUsecase *usecases.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUsecase: availabilityUsecase}
}

// ListAvailability lists availability records.
// GET /api/availability/?employee=&day_of_week=&is_available=&ordering=
func (h *AvailabilityHandler) ListAvailability(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := entities.AvailabilityFilter{
		Ordering: q.Ordering,
		Page:     q.Page.Page,
		Limit:    q.Page.Limit,
	}

	if raw := c.Query("employee"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.FieldError("employee", fmt.Sprintf(domainerrors.MsgFilterChoice, "That choice")))
			return
		}
		filter.EmployeeID = uuid.NullUUID{UUID: id, Valid: true}
	}

	errs := domainerrors.FieldErrors{}
	if c.Query("day_of_week") != "" {
		if day, ok := queryInt(errs, c, "day_of_week", 0); ok {
			filter.DayOfWeek = null.IntFrom(day)
		}
	}
	if err := domainerrors.NewValidationError(errs); err != nil {
		response.Error(c, err)
		return
	}

	available, set, err := queryBool(c, "is_available")
	if err != nil {
		response.Error(c, err)
		return
	}
	if set {
		filter.IsAvailable = null.BoolFrom(available)
	}

	items, total, err := h.availabilityUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, total, q.Page)
}

// CreateAvailability creates one availability record.
// POST /api/availability/
func (h *AvailabilityHandler) CreateAvailability(c *gin.Context) {
	var input entities.AvailabilityInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.availabilityUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, view)
}

// GetAvailability returns one record.
// GET /api/availability/:id/
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.availabilityUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// UpdateAvailability replaces a record.
// PUT /api/availability/:id/
func (h *AvailabilityHandler) UpdateAvailability(c *gin.Context) {
	h.update(c, false)
}

// PatchAvailability updates the given fields of a record.
// PATCH /api/availability/:id/
func (h *AvailabilityHandler) PatchAvailability(c *gin.Context) {
	h.update(c, true)
}

func (h *AvailabilityHandler) update(c *gin.Context, partial bool) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.AvailabilityInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.availabilityUsecase.Update(c.Request.Context(), id, &input, partial)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// DeleteAvailability hard deletes a record.
// DELETE /api/availability/:id/
func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.availabilityUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
