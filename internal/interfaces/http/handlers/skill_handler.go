package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"staff-roster.backend/internal/domain/entities"
	"staff-roster.backend/internal/interfaces/http/response"
	"staff-roster.backend/internal/usecases"
)

// SkillHandler handles skill endpoints
type SkillHandler struct {
	skillUsecase *usecases.SkillUsecase
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillUsecase *usecases.SkillUsecase) *SkillHandler {
	return &SkillHandler{skillUsecase: skillUsecase}
}

// ListSkills lists skills with search, ordering and pagination.
// GET /api/skills/
func (h *SkillHandler) ListSkills(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, total, err := h.skillUsecase.List(c.Request.Context(), entities.SkillFilter{
		Search:   q.Search,
		Ordering: q.Ordering,
		Page:     q.Page.Page,
		Limit:    q.Page.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, total, q.Page)
}

// CreateSkill creates a skill.
// POST /api/skills/
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var input entities.SkillInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	skill, err := h.skillUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, skill)
}

// GetSkill returns one skill.
// GET /api/skills/:id/
func (h *SkillHandler) GetSkill(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	skill, err := h.skillUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, skill)
}

// UpdateSkill replaces a skill.
// PUT /api/skills/:id/
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	h.update(c, false)
}

// PatchSkill updates the given skill fields.
// PATCH /api/skills/:id/
func (h *SkillHandler) PatchSkill(c *gin.Context) {
	h.update(c, true)
}

func (h *SkillHandler) update(c *gin.Context, partial bool) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.SkillInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	skill, err := h.skillUsecase.Update(c.Request.Context(), id, &input, partial)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, skill)
}

// DeleteSkill removes a skill and detaches it from every employee.
// DELETE /api/skills/:id/
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.skillUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
