package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"staff-roster.backend/internal/domain/entities"
	"staff-roster.backend/internal/interfaces/http/response"
	"staff-roster.backend/internal/usecases"
	"staff-roster.backend/pkg/logger"
	"staff-roster.backend/pkg/metrics"
)

// EmployeeHandler handles employee endpoints, including the nested
// availability collection.
type EmployeeHandler struct {
	employeeUsecase     *usecases.EmployeeUsecase
	availabilityUsecase *usecases.AvailabilityUsecase
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeUsecase *usecases.EmployeeUsecase, availabilityUsecase *usecases.AvailabilityUsecase) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUsecase:     employeeUsecase,
		availabilityUsecase: availabilityUsecase,
	}
}

// ListEmployees lists employees in summary form.
// GET /api/employees/?is_active=&skills=&search=&ordering=
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := entities.EmployeeFilter{
		Search:   q.Search,
		Ordering: q.Ordering,
		Page:     q.Page.Page,
		Limit:    q.Page.Limit,
	}

	active, set, err := queryBool(c, "is_active")
	if err != nil {
		response.Error(c, err)
		return
	}
	if set {
		filter.IsActive = null.BoolFrom(active)
	}
	if filter.SkillIDs, err = queryUUIDs(c, "skills"); err != nil {
		response.Error(c, err)
		return
	}

	items, total, err := h.employeeUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, total, q.Page)
}

// CreateEmployee creates an employee.
// POST /api/employees/
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var input entities.EmployeeInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	employee, err := h.employeeUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, employee)
}

// GetEmployee returns the detail view, inactive employees included.
// GET /api/employees/:id/
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	employee, err := h.employeeUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, employee)
}

// UpdateEmployee replaces an employee.
// PUT /api/employees/:id/
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	h.update(c, false)
}

// PatchEmployee updates the given employee fields.
// PATCH /api/employees/:id/
func (h *EmployeeHandler) PatchEmployee(c *gin.Context) {
	h.update(c, true)
}

func (h *EmployeeHandler) update(c *gin.Context, partial bool) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.EmployeeInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	employee, err := h.employeeUsecase.Update(c.Request.Context(), id, &input, partial)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, employee)
}

// DeleteEmployee deactivates the employee; the row is kept.
// DELETE /api/employees/:id/
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.employeeUsecase.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	metrics.EmployeeDeactivated()
	logger.Info(c.Request.Context(), "employee deactivated", zap.String("employee_id", id.String()))
	response.Success(c, http.StatusOK, result)
}

// ListAvailability returns every availability record of the employee.
// GET /api/employees/:id/availability/
func (h *EmployeeHandler) ListAvailability(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.availabilityUsecase.ListForEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// CreateAvailability stores one object or a list of objects for the
// employee. The reply mirrors the request shape.
// POST /api/employees/:id/availability/
func (h *EmployeeHandler) CreateAvailability(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var batch entities.AvailabilityBatch
	if err := bindJSON(c, &batch); err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.availabilityUsecase.CreateForEmployee(c.Request.Context(), id, &batch)
	if err != nil {
		response.Error(c, err)
		return
	}
	metrics.ObserveAvailabilityBatch(len(views))

	if !batch.Many && len(views) == 1 {
		response.Success(c, http.StatusCreated, views[0])
		return
	}
	response.Success(c, http.StatusCreated, views)
}
