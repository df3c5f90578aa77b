package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jobdeck/jobdeck-api/internal/apperr"
	"github.com/jobdeck/jobdeck-api/internal/automation"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB      *gorm.DB
	Trigger automation.Trigger
}

func NewApplicationService(db *gorm.DB, trigger automation.Trigger) *ApplicationService {
	return &ApplicationService{DB: db, Trigger: trigger}
}

// Submit records a QUEUED application for an existing job and hands it to
// the automation trigger. Nothing is written when the job does not exist.
func (s *ApplicationService) Submit(ctx context.Context, userID, jobID uint, answers datatypes.JSON) (*models.Application, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", apperr.ErrNotFound, jobID)
		}
		return nil, err
	}

	app := &models.Application{
		UserID:  userID,
		JobID:   job.ID,
		Status:  models.ApplicationStatusQueued,
		Answers: answers,
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	app.Job = job

	if s.Trigger != nil {
		// The workflow behind the trigger owns retries and status
		// transitions; a failed hand-off never unwinds the recorded row.
		if err := s.Trigger.ApplicationQueued(ctx, app); err != nil {
			log.Printf("automation hand-off failed for application %d: %v", app.ID, err)
		}
	}
	return app, nil
}

// ListForUser returns the user's applications newest first, each joined
// with its job for display.
func (s *ApplicationService) ListForUser(ctx context.Context, userID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}
