package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/afitoip/portfolio-api/internal/models"
	"github.com/afitoip/portfolio-api/internal/repository"
)

type EducationHandler struct {
	educationRepo *repository.EducationRepository
}

func NewEducationHandler(educationRepo *repository.EducationRepository) *EducationHandler {
	return &EducationHandler{
		educationRepo: educationRepo,
	}
}

type createEducationRequest struct {
	Institution  string  `json:"institution" binding:"required"`
	Degree       string  `json:"degree" binding:"required"`
	FieldOfStudy *string `json:"field_of_study"`
	StartYear    *int    `json:"start_year" binding:"required"`
	EndYear      *int    `json:"end_year"`
	Description  *string `json:"description"`
	Achievements *string `json:"achievements"`
	OrderIndex   *int    `json:"order_index"`
}

// Nullable columns use the nullable wrapper so an explicit null clears
// them; an entry with end_year nulled becomes ongoing again.
type updateEducationRequest struct {
	Institution  *string          `json:"institution" binding:"omitempty,min=1"`
	Degree       *string          `json:"degree" binding:"omitempty,min=1"`
	FieldOfStudy nullable[string] `json:"field_of_study"`
	StartYear    *int             `json:"start_year"`
	EndYear      nullable[int]    `json:"end_year"`
	Description  nullable[string] `json:"description"`
	Achievements nullable[string] `json:"achievements"`
	OrderIndex   *int             `json:"order_index"`
}

// updates maps supplied fields onto their columns. Only this fixed set
// of names can ever reach the update statement.
func (r *updateEducationRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Institution != nil {
		u["institution"] = *r.Institution
	}
	if r.Degree != nil {
		u["degree"] = *r.Degree
	}
	if r.FieldOfStudy.set {
		u["field_of_study"] = r.FieldOfStudy.value
	}
	if r.StartYear != nil {
		u["start_year"] = *r.StartYear
	}
	if r.EndYear.set {
		u["end_year"] = r.EndYear.value
	}
	if r.Description.set {
		u["description"] = r.Description.value
	}
	if r.Achievements.set {
		u["achievements"] = r.Achievements.value
	}
	if r.OrderIndex != nil {
		u["order_index"] = *r.OrderIndex
	}
	return u
}

// GET /education
func (h *EducationHandler) List(c *gin.Context) {
	entries, err := h.educationRepo.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err, "Education not found")
		return
	}
	if entries == nil {
		entries = []models.Education{}
	}
	c.JSON(http.StatusOK, entries)
}

// POST /education
func (h *EducationHandler) Create(c *gin.Context) {
	var req createEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	entry := &models.Education{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartYear:    *req.StartYear,
		EndYear:      req.EndYear,
		Description:  req.Description,
		Achievements: req.Achievements,
	}

	created, err := h.educationRepo.Create(c.Request.Context(), entry, req.OrderIndex)
	if err != nil {
		respondRepoError(c, err, "Education not found")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /education/:id
func (h *EducationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Education not found")
		return
	}

	var req updateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	updated, err := h.educationRepo.Update(c.Request.Context(), id, req.updates())
	if err != nil {
		respondRepoError(c, err, "Education not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /education/:id
func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Education not found")
		return
	}

	if err := h.educationRepo.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err, "Education not found")
		return
	}
	c.Status(http.StatusNoContent)
}
