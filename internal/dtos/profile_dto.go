package dtos

import (
	"encoding/json"
	"time"
)

// ProfileUpdateRequest carries a partial update. Pointer fields distinguish
// "not sent" (nil, leave as-is) from "sent" at the JSON boundary.
type ProfileUpdateRequest struct {
	ResumeData  *string          `json:"resume_data"`
	ResumeName  *string          `json:"resume_name"`
	ResumeType  *string          `json:"resume_type"`
	Skills      *json.RawMessage `json:"skills"`
	Experience  *json.RawMessage `json:"experience"`
	Education   *json.RawMessage `json:"education"`
	Location    *string          `json:"location"`
	Preferences *json.RawMessage `json:"preferences"`
}

// ProfileResponse is the transport form of a profile; the resume travels as
// base64 text or null.
type ProfileResponse struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	Skills      json.RawMessage `json:"skills"`
	Experience  json.RawMessage `json:"experience"`
	Education   json.RawMessage `json:"education"`
	Preferences json.RawMessage `json:"preferences"`
	Location    *string         `json:"location"`
	ResumeData  *string         `json:"resume_data"`
	ResumeName  *string         `json:"resume_name"`
	ResumeType  *string         `json:"resume_type"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
