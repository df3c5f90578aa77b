// Package automation is the hand-off point to the system that performs the
// actual submission on the target site. Durably recording the QUEUED
// application is this service's last responsibility; retries and status
// transitions belong to the workflow behind the trigger.
package automation

import (
	"context"
	"log"

	"github.com/jobdeck/jobdeck-api/internal/models"
)

type Trigger interface {
	ApplicationQueued(ctx context.Context, app *models.Application) error
}

// LogTrigger stands in until the workflow endpoint exists.
// TODO: replace with the n8n webhook call once the workflow is deployed.
type LogTrigger struct{}

func (LogTrigger) ApplicationQueued(_ context.Context, app *models.Application) error {
	log.Printf("application %d queued for job %d (user %d)", app.ID, app.JobID, app.UserID)
	return nil
}
