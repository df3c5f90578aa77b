package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jobdeck/jobdeck-api/internal/apperr"
	"github.com/jobdeck/jobdeck-api/internal/dtos"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/jobdeck/jobdeck-api/internal/resume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func rawPtr(s string) *json.RawMessage {
	raw := json.RawMessage(s)
	return &raw
}

func TestGetCreatesEmptyProfile(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|first")
	s := NewProfileService(db)

	profile, err := s.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.JSONEq(t, "[]", string(profile.Skills))
	assert.Nil(t, profile.Location)
	assert.Empty(t, profile.ResumeData)
	assert.Nil(t, profile.ResumeName)
	assert.Nil(t, profile.ResumeType)

	// Second read returns the same row, no duplicate.
	again, err := s.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateEmptyPartialIsNoop(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|noop")
	s := NewProfileService(db)

	seeded := &models.Profile{
		UserID:     user.ID,
		Skills:     datatypes.JSON(`["go","sql"]`),
		Experience: datatypes.JSON(`[{"company":"Acme"}]`),
		Location:   strPtr("Berlin"),
		ResumeData: []byte("%PDF-data"),
		ResumeName: strPtr("cv.pdf"),
		ResumeType: strPtr("application/pdf"),
	}
	require.NoError(t, db.Create(seeded).Error)

	updated, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `["go","sql"]`, string(updated.Skills))
	assert.JSONEq(t, `[{"company":"Acme"}]`, string(updated.Experience))
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Berlin", *updated.Location)
	assert.Equal(t, []byte("%PDF-data"), updated.ResumeData)
	require.NotNil(t, updated.ResumeName)
	assert.Equal(t, "cv.pdf", *updated.ResumeName)
}

func TestUpdateFieldsIndependently(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|fields")
	s := NewProfileService(db)

	_, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		Skills:   rawPtr(`["go"]`),
		Location: strPtr("Remote"),
	})
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		Education: rawPtr(`[{"institution":"TU"}]`),
	})
	require.NoError(t, err)

	// Earlier fields survive a later update that omits them.
	assert.JSONEq(t, `["go"]`, string(updated.Skills))
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Remote", *updated.Location)
	assert.JSONEq(t, `[{"institution":"TU"}]`, string(updated.Education))
}

func TestUpdateResumeBytesOnlyKeepsStoredMetadata(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|resume-meta")
	s := NewProfileService(db)

	_, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		ResumeData: strPtr(resume.Encode([]byte("first version"))),
		ResumeName: strPtr("v1.pdf"),
		ResumeType: strPtr("application/pdf"),
	})
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		ResumeData: strPtr(resume.Encode([]byte("second version"))),
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("second version"), updated.ResumeData)
	require.NotNil(t, updated.ResumeName)
	assert.Equal(t, "v1.pdf", *updated.ResumeName)
	require.NotNil(t, updated.ResumeType)
	assert.Equal(t, "application/pdf", *updated.ResumeType)
}

func TestUpdateResumeBytesOnlyLeavesUnsetMetadataUnset(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|resume-nometa")
	s := NewProfileService(db)

	updated, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		ResumeData: strPtr(resume.Encode([]byte("only bytes"))),
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("only bytes"), updated.ResumeData)
	assert.Nil(t, updated.ResumeName)
	assert.Nil(t, updated.ResumeType)
}

func TestUpdateMetadataWithoutBytesIsIgnored(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|meta-only")
	s := NewProfileService(db)

	_, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		ResumeData: strPtr(resume.Encode([]byte("payload"))),
		ResumeName: strPtr("original.pdf"),
	})
	require.NoError(t, err)

	// Name/type only move together with a new payload.
	updated, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		ResumeName: strPtr("renamed.pdf"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ResumeName)
	assert.Equal(t, "original.pdf", *updated.ResumeName)
	assert.Equal(t, []byte("payload"), updated.ResumeData)
}

func TestUpdateRejectsInvalidBase64(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|badb64")
	s := NewProfileService(db)

	_, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		ResumeData: strPtr("!!! not base64 !!!"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestUpdateRejectsOversizeResume(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|oversize")
	s := NewProfileService(db)

	big := make([]byte, resume.MaxUploadSize+1)
	_, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		ResumeData: strPtr(resume.Encode(big)),
		ResumeType: strPtr("application/pdf"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	// The failed update wrote nothing.
	profile, err := s.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.ResumeData)
}

func TestUpdateRejectsNonPDFResume(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|docx")
	s := NewProfileService(db)

	_, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		ResumeData: strPtr(resume.Encode([]byte("word doc"))),
		ResumeType: strPtr("application/msword"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestUpdateCreatesProfileIfAbsent(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "auth0|upsert")
	s := NewProfileService(db)

	updated, err := s.Update(context.Background(), user.ID, &dtos.ProfileUpdateRequest{
		Skills: rawPtr(`["kubernetes"]`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["kubernetes"]`, string(updated.Skills))

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
