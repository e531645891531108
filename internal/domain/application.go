package domain

import (
	"strings"
	"time"
)

// ApplicationStatus enumerates review states for an application. Values are
// stored lowercase; writes accept any casing.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus normalizes a status string case-insensitively.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	switch ApplicationStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending, true
	case StatusAccepted:
		return StatusAccepted, true
	case StatusRejected:
		return StatusRejected, true
	default:
		return "", false
	}
}

// Application records a seeker applying to a job. At most one application
// exists per (job, applicant) pair, enforced by the storage layer.
type Application struct {
	ID          string            `json:"_id"`
	JobID       string            `json:"job"`
	ApplicantID string            `json:"applicant"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
