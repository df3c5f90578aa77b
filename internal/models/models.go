package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ApplicationStatusQueued is the state every application is created in.
// Later transitions (submitted, failed, ...) are written by the external
// automation workflow, never by this service.
const ApplicationStatusQueued = "QUEUED"

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// AuthSubject is the identity provider's stable id for the person and
	// the natural key for lazy user creation.
	AuthSubject string `gorm:"uniqueIndex;not null" json:"-"`
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	Plan        string `gorm:"default:'free'" json:"plan"`
}

// Profile holds the applicant data used to fill applications. At most one
// row per user; the resume lives inline as an opaque blob.
type Profile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Skills      datatypes.JSON `json:"skills"`
	Experience  datatypes.JSON `json:"experience"`
	Education   datatypes.JSON `json:"education"`
	Preferences datatypes.JSON `json:"preferences"`
	Location    *string        `json:"location"`

	// ResumeName/ResumeType are only meaningful while ResumeData is set.
	ResumeData []byte  `json:"-"`
	ResumeName *string `json:"resume_name"`
	ResumeType *string `json:"resume_type"`
}

// Job is an externally ingested listing. This service only reads jobs; the
// ingestion pipeline owns writes.
type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Company  string    `gorm:"not null" json:"company"`
	Title    string    `gorm:"not null" json:"title"`
	Location *string   `json:"location"`
	ApplyURL string    `json:"apply_url"`
	Source   string    `json:"source"`
	LastSeen time.Time `gorm:"index" json:"last_seen"`
}

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	JobID  uint `gorm:"index;not null" json:"job_id"`
	// Association: GORM needs Preload() to fill this
	Job Job `json:"job"`

	Status  string         `gorm:"default:'QUEUED'" json:"status"`
	Answers datatypes.JSON `json:"answers"`
}
