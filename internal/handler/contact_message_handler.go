package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/afitoip/portfolio-api/internal/models"
	"github.com/afitoip/portfolio-api/internal/repository"
	"github.com/afitoip/portfolio-api/pkg/logger"
)

type ContactMessageHandler struct {
	messageRepo *repository.ContactMessageRepository
}

func NewContactMessageHandler(messageRepo *repository.ContactMessageRepository) *ContactMessageHandler {
	return &ContactMessageHandler{
		messageRepo: messageRepo,
	}
}

type createContactMessageRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Message string `json:"message" binding:"required,max=1000"`
}

type markReadRequest struct {
	Read bool `json:"read"`
}

// List returns all messages, newest first. Admin only.
// GET /contact-messages
func (h *ContactMessageHandler) List(c *gin.Context) {
	messages, err := h.messageRepo.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err, "Message not found")
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

// Create accepts a visitor-submitted message. This is the one mutating
// route with no authentication.
// POST /contact-messages
func (h *ContactMessageHandler) Create(c *gin.Context) {
	var req createContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	created, err := h.messageRepo.Create(c.Request.Context(), message)
	if err != nil {
		respondRepoError(c, err, "Message not found")
		return
	}

	logger.Log.Info("Contact message received",
		zap.String("id", created.ID.String()),
		zap.String("from", created.Email),
	)
	c.JSON(http.StatusCreated, created)
}

// MarkRead toggles the read flag, the only mutable field of a message.
// PATCH /contact-messages/:id/read
func (h *ContactMessageHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Message not found")
		return
	}

	// An empty body reads as {"read": false}.
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		errorJSON(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	updated, err := h.messageRepo.SetRead(c.Request.Context(), id, req.Read)
	if err != nil {
		respondRepoError(c, err, "Message not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /contact-messages/:id
func (h *ContactMessageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Message not found")
		return
	}

	if err := h.messageRepo.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err, "Message not found")
		return
	}
	c.Status(http.StatusNoContent)
}
