package dtos

import "encoding/json"

type ApplicationCreateRequest struct {
	JobID   uint             `json:"job_id"`
	Answers *json.RawMessage `json:"answers"`
}
