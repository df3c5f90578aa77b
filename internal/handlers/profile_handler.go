package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/jobdeck-api/internal/apperr"
	"github.com/jobdeck/jobdeck-api/internal/auth"
	"github.com/jobdeck/jobdeck-api/internal/dtos"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/jobdeck/jobdeck-api/internal/resume"
	"github.com/jobdeck/jobdeck-api/internal/services"
)

type ProfileHandler struct {
	ProfileService *services.ProfileService
}

func NewProfileHandler(p *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{ProfileService: p}
}

// GetProfile is the GET /profile endpoint. A first read creates an empty
// profile for the user.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := auth.CurrentUser(c)

	profile, err := h.ProfileService.Get(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, profileResponse(profile))
}

// UpdateProfile is the PUT /profile endpoint: partial update, absent
// fields untouched.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	profile, err := h.ProfileService.Update(c.Request.Context(), user.ID, &req)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, profileResponse(profile))
}

// DownloadResume is the GET /profile/resume endpoint: the stored bytes
// with their content type and an inline disposition.
func (h *ProfileHandler) DownloadResume(c *gin.Context) {
	user := auth.CurrentUser(c)

	profile, err := h.ProfileService.Get(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if len(profile.ResumeData) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}

	c.Header("Content-Disposition", resume.ContentDisposition(profile.ResumeName))
	c.Data(http.StatusOK, resume.ContentType(profile.ResumeType), profile.ResumeData)
}

func profileResponse(p *models.Profile) dtos.ProfileResponse {
	resp := dtos.ProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Skills:      json.RawMessage(p.Skills),
		Experience:  json.RawMessage(p.Experience),
		Education:   json.RawMessage(p.Education),
		Preferences: json.RawMessage(p.Preferences),
		Location:    p.Location,
		ResumeName:  p.ResumeName,
		ResumeType:  p.ResumeType,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if len(p.ResumeData) > 0 {
		encoded := resume.Encode(p.ResumeData)
		resp.ResumeData = &encoded
	}
	return resp
}
