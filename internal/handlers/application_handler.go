package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/jobdeck-api/internal/apperr"
	"github.com/jobdeck/jobdeck-api/internal/auth"
	"github.com/jobdeck/jobdeck-api/internal/dtos"
	"github.com/jobdeck/jobdeck-api/internal/services"
	"gorm.io/datatypes"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// CreateApplication is the POST /applications endpoint.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.JobID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id is required"})
		return
	}

	var answers datatypes.JSON
	if req.Answers != nil {
		answers = datatypes.JSON(*req.Answers)
	}

	app, err := h.ApplicationService.Submit(c.Request.Context(), user.ID, req.JobID, answers)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListApplications is the GET /applications endpoint, newest first.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	user := auth.CurrentUser(c)

	apps, err := h.ApplicationService.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, apps)
}
