package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/afitoip/portfolio-api/internal/repository"
)

type ProfileHandler struct {
	profileRepo *repository.ProfileRepository
}

func NewProfileHandler(profileRepo *repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{
		profileRepo: profileRepo,
	}
}

// Everything but full_name is nullable; an explicit null clears the
// field (removing the photo, for instance).
type updateProfileRequest struct {
	FullName *string          `json:"full_name" binding:"omitempty,min=1"`
	Tagline  nullable[string] `json:"tagline"`
	Title    nullable[string] `json:"title"`
	PhotoURL nullable[string] `json:"photo_url"`
}

func (r *updateProfileRequest) validate() string {
	if r.PhotoURL.set && r.PhotoURL.value != nil && !isURL(*r.PhotoURL.value) {
		return "photo_url must be a valid URL"
	}
	return ""
}

func (r *updateProfileRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.FullName != nil {
		u["full_name"] = *r.FullName
	}
	if r.Tagline.set {
		u["tagline"] = r.Tagline.value
	}
	if r.Title.set {
		u["title"] = r.Title.value
	}
	if r.PhotoURL.set {
		u["photo_url"] = r.PhotoURL.value
	}
	return u
}

// List returns the owner profile, planting the default row when the
// table is empty. Never returns an empty list.
// GET /profiles
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileRepo.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// Update partially updates the profile. There is no create or delete:
// the profile row is never explicitly destroyed.
// PUT /profiles/:id
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Profile not found")
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if msg := req.validate(); msg != "" {
		errorJSON(c, http.StatusBadRequest, msg)
		return
	}

	profile, err := h.profileRepo.Update(c.Request.Context(), id, req.updates())
	if err != nil {
		respondRepoError(c, err, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}
