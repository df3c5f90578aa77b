package services

import (
	"context"

	"github.com/jobdeck/jobdeck-api/internal/dtos"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/jobdeck/jobdeck-api/internal/resume"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// Get returns the user's profile, creating an empty one on first read.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.WithContext(ctx).
		Where(&models.Profile{UserID: userID}).
		Attrs(models.Profile{Skills: datatypes.JSON("[]")}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update merges the fields present in req into the profile, creating the
// row if absent. A nil field is a no-op, never a clear. Resume name and
// type only move together with a new resume payload, so a bytes-only
// update keeps whatever metadata was stored before.
func (s *ProfileService) Update(ctx context.Context, userID uint, req *dtos.ProfileUpdateRequest) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.ResumeData != nil && *req.ResumeData != "" {
		data, err := resume.Decode(*req.ResumeData)
		if err != nil {
			return nil, err
		}
		if err := resume.ValidateUpload(data, req.ResumeType); err != nil {
			return nil, err
		}
		updates["resume_data"] = data
		if req.ResumeName != nil {
			updates["resume_name"] = *req.ResumeName
		}
		if req.ResumeType != nil {
			updates["resume_type"] = *req.ResumeType
		}
	}
	if req.Skills != nil {
		updates["skills"] = datatypes.JSON(*req.Skills)
	}
	if req.Experience != nil {
		updates["experience"] = datatypes.JSON(*req.Experience)
	}
	if req.Education != nil {
		updates["education"] = datatypes.JSON(*req.Education)
	}
	if req.Preferences != nil {
		updates["preferences"] = datatypes.JSON(*req.Preferences)
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if len(updates) == 0 {
		return profile, nil
	}

	if err := s.DB.WithContext(ctx).Model(profile).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Re-read so the caller sees exactly what was persisted.
	var updated models.Profile
	if err := s.DB.WithContext(ctx).Where(&models.Profile{UserID: userID}).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
