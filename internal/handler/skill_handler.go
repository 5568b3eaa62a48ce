package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/afitoip/portfolio-api/internal/models"
	"github.com/afitoip/portfolio-api/internal/repository"
)

type SkillHandler struct {
	skillRepo *repository.SkillRepository
}

func NewSkillHandler(skillRepo *repository.SkillRepository) *SkillHandler {
	return &SkillHandler{
		skillRepo: skillRepo,
	}
}

type createSkillRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=hard soft"`
	IconName    *string `json:"icon_name"`
	Proficiency *int    `json:"proficiency" binding:"omitempty,gte=0,lte=100"`
	OrderIndex  *int    `json:"order_index"`
}

// icon_name and proficiency are nullable: an explicit null clears them.
// The proficiency range check moves out of the binding tags because the
// nullable wrapper hides the inner value from the validator.
type updateSkillRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1"`
	Category    *string          `json:"category" binding:"omitempty,oneof=hard soft"`
	IconName    nullable[string] `json:"icon_name"`
	Proficiency nullable[int]    `json:"proficiency"`
	OrderIndex  *int             `json:"order_index"`
}

func (r *updateSkillRequest) validate() string {
	if r.Proficiency.set && r.Proficiency.value != nil {
		if *r.Proficiency.value < 0 {
			return "proficiency must be at least 0"
		}
		if *r.Proficiency.value > 100 {
			return "proficiency must be at most 100"
		}
	}
	return ""
}

func (r *updateSkillRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Category != nil {
		u["category"] = *r.Category
	}
	if r.IconName.set {
		u["icon_name"] = r.IconName.value
	}
	if r.Proficiency.set {
		u["proficiency"] = r.Proficiency.value
	}
	if r.OrderIndex != nil {
		u["order_index"] = *r.OrderIndex
	}
	return u
}

// GET /skills
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillRepo.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err, "Skill not found")
		return
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	c.JSON(http.StatusOK, skills)
}

// POST /skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	skill := &models.Skill{
		Name:        req.Name,
		Category:    models.SkillCategory(req.Category),
		IconName:    req.IconName,
		Proficiency: req.Proficiency,
	}

	created, err := h.skillRepo.Create(c.Request.Context(), skill, req.OrderIndex)
	if err != nil {
		respondRepoError(c, err, "Skill not found")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /skills/:id
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Skill not found")
		return
	}

	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if msg := req.validate(); msg != "" {
		errorJSON(c, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.skillRepo.Update(c.Request.Context(), id, req.updates())
	if err != nil {
		respondRepoError(c, err, "Skill not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /skills/:id
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Skill not found")
		return
	}

	if err := h.skillRepo.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err, "Skill not found")
		return
	}
	c.Status(http.StatusNoContent)
}
