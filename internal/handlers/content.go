package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taufanAli65/social-media-todo-api/internal/utils"
	"github.com/taufanAli65/social-media-todo-api/internal/workflow"
)

type ContentHandler struct {
	service *workflow.Service
}

func NewContentHandler(service *workflow.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

type AddContentRequest struct {
	Title    string  `json:"title"`
	Brand    string  `json:"brand"`
	Platform string  `json:"platform"`
	Payment  float64 `json:"payment"`
}

type AssignmentRequest struct {
	UserID    string `json:"userID"`
	ContentID string `json:"contentID"`
}

type UpdateStatusRequest struct {
	UserID    string `json:"userID"`
	ContentID string `json:"contentID"`
	Status    string `json:"status"`
}

func (h *ContentHandler) List(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "invalid", "error": err.Error()})
		return
	}

	contents, err := h.service.ListContents(ctx.Request.Context(), workflow.Caller{ID: caller.ID, Role: caller.Role})

	if err != nil {
		writeWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Success", "contents": contents})
}

func (h *ContentHandler) GetByID(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "invalid", "error": err.Error()})
		return
	}

	content, err := h.service.GetContent(ctx.Request.Context(), ctx.Param("contentID"), workflow.Caller{ID: caller.ID, Role: caller.Role})

	if err != nil {
		writeWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Success", "content": content})
}

func (h *ContentHandler) ListByUser(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "invalid", "error": err.Error()})
		return
	}

	contents, err := h.service.ListUserContents(ctx.Request.Context(), ctx.Param("userID"), workflow.Caller{ID: caller.ID, Role: caller.Role})

	if err != nil {
		writeWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Success", "contents": contents})
}

func (h *ContentHandler) ListByStatus(ctx *gin.Context) {
	contents, err := h.service.ListContentsByStatus(ctx.Request.Context(), ctx.Param("status"))

	if err != nil {
		writeWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Success", "contents": contents})
}

func (h *ContentHandler) Create(ctx *gin.Context) {
	var body AddContentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "error": "Invalid request"})
		return
	}

	content, err := h.service.AddContent(ctx.Request.Context(), workflow.AddContentInput{
		Title:    body.Title,
		Brand:    body.Brand,
		Platform: body.Platform,
		Payment:  body.Payment,
	})

	if err != nil {
		writeWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Success", "content": content, "id": content.ID})
}

func (h *ContentHandler) Assign(ctx *gin.Context) {
	var body AssignmentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "error": "Invalid request"})
		return
	}

	if err := h.service.Assign(ctx.Request.Context(), body.UserID, body.ContentID); err != nil {
		writeWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Success", "message": "Content assigned successfully"})
}

func (h *ContentHandler) Reassign(ctx *gin.Context) {
	var body AssignmentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "error": "Invalid request"})
		return
	}

	if err := h.service.Reassign(ctx.Request.Context(), body.UserID, body.ContentID); err != nil {
		writeWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Success", "message": "Content reassigned successfully"})
}

func (h *ContentHandler) UpdateStatus(ctx *gin.Context) {
	var body UpdateStatusRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "error": "Invalid request"})
		return
	}

	if err := h.service.UpdateStatus(ctx.Request.Context(), body.UserID, body.ContentID, body.Status); err != nil {
		writeWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Success", "message": "Status updated successfully"})
}

func (h *ContentHandler) Delete(ctx *gin.Context) {
	contentID := ctx.Param("contentID")

	if err := h.service.Delete(ctx.Request.Context(), contentID); err != nil {
		writeWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": fmt.Sprintf("Content %s deleted successfully", contentID),
	})
}

// writeWorkflowError maps workflow failure kinds to the wire. Ownership
// failures keep the API's established 404 shape rather than 403;
// clients depend on it.
func writeWorkflowError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, workflow.ErrMissingFields), errors.Is(err, workflow.ErrMissingParameter):
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "error": err.Error()})
	case errors.Is(err, workflow.ErrInvalidStatus), errors.Is(err, workflow.ErrAlreadyAssigned):
		ctx.JSON(http.StatusBadRequest, gin.H{"status": err.Error()})
	case errors.Is(err, workflow.ErrUserNotFound),
		errors.Is(err, workflow.ErrContentNotFound),
		errors.Is(err, workflow.ErrNoContents),
		errors.Is(err, workflow.ErrNotAssignee):
		ctx.JSON(http.StatusNotFound, gin.H{"status": err.Error()})
	default:
		log.Printf("Workflow operation failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "Internal Server Error", "error": err.Error()})
	}
}
