// Package jobs persists batch job records in SQLite.
//
// Each batch invocation and each job submitted through the API becomes a
// row with a generated UUID, a status, and timestamps. The store uses a
// write-ahead log (WAL) so readers never block the single writer.
package jobs

import (
	"errors"
	"time"
)

// Status is the lifecycle state of a job.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// ErrNotFound is returned when a job with the requested ID does not exist.
var ErrNotFound = errors.New("job not found")

// Job is a single unit of recorded work.
type Job struct {
	// ID is a generated UUID identifying the job.
	ID string `json:"id"`

	// Name is a human-readable label, e.g. the batch task name.
	Name string `json:"name"`

	// Payload is an opaque caller-supplied string, often JSON.
	Payload string `json:"payload,omitempty"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// Error holds the failure message when Status is failed.
	Error string `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
