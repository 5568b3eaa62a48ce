package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/afitoip/portfolio-api/internal/models"
	"github.com/afitoip/portfolio-api/internal/repository"
)

type ProjectHandler struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectHandler(projectRepo *repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{
		projectRepo: projectRepo,
	}
}

type createProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Technologies []string `json:"technologies" binding:"omitempty,dive,min=1"`
	GithubURL    *string  `json:"github_url" binding:"omitempty,url"`
	LiveURL      *string  `json:"live_url" binding:"omitempty,url"`
	ThumbnailURL *string  `json:"thumbnail_url" binding:"omitempty,url"`
	OrderIndex   *int     `json:"order_index"`
}

// The three link columns are nullable: an explicit null removes the
// link. Their URL checks move out of the binding tags because the
// nullable wrapper hides the inner value from the validator.
type updateProjectRequest struct {
	Title        *string          `json:"title" binding:"omitempty,min=1"`
	Description  *string          `json:"description" binding:"omitempty,min=1"`
	Technologies []string         `json:"technologies" binding:"omitempty,dive,min=1"`
	GithubURL    nullable[string] `json:"github_url"`
	LiveURL      nullable[string] `json:"live_url"`
	ThumbnailURL nullable[string] `json:"thumbnail_url"`
	OrderIndex   *int             `json:"order_index"`
}

func (r *updateProjectRequest) validate() string {
	links := []struct {
		name  string
		value nullable[string]
	}{
		{"github_url", r.GithubURL},
		{"live_url", r.LiveURL},
		{"thumbnail_url", r.ThumbnailURL},
	}
	for _, link := range links {
		if link.value.set && link.value.value != nil && !isURL(*link.value.value) {
			return link.name + " must be a valid URL"
		}
	}
	return ""
}

func (r *updateProjectRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Technologies != nil {
		u["technologies"] = pq.StringArray(r.Technologies)
	}
	if r.GithubURL.set {
		u["github_url"] = r.GithubURL.value
	}
	if r.LiveURL.set {
		u["live_url"] = r.LiveURL.value
	}
	if r.ThumbnailURL.set {
		u["thumbnail_url"] = r.ThumbnailURL.value
	}
	if r.OrderIndex != nil {
		u["order_index"] = *r.OrderIndex
	}
	return u
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectRepo.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err, "Project not found")
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	project := &models.Project{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: pq.StringArray(req.Technologies),
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		ThumbnailURL: req.ThumbnailURL,
	}

	created, err := h.projectRepo.Create(c.Request.Context(), project, req.OrderIndex)
	if err != nil {
		respondRepoError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Project not found")
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if msg := req.validate(); msg != "" {
		errorJSON(c, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.projectRepo.Update(c.Request.Context(), id, req.updates())
	if err != nil {
		respondRepoError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Project not found")
		return
	}

	if err := h.projectRepo.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err, "Project not found")
		return
	}
	c.Status(http.StatusNoContent)
}
