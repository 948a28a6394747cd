package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateApplication is surfaced by the repository when the unique
// (job_id, candidate_id) index rejects an insert. The uniqueness check lives
// in the storage layer so concurrent applies cannot both pass a pre-check.
var ErrDuplicateApplication = errors.New("application already exists")

const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewing   = "reviewing"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing,
		ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	JobTitle       string    `json:"job_title"`
	CandidateID    string    `json:"candidate_id"`
	CandidateEmail string    `json:"candidate_email"`
	CoverLetter    string    `json:"cover_letter"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ApplicationRepository interface {
	// Create inserts the application, relying on the unique (job_id,
	// candidate_id) constraint. Returns ErrDuplicateApplication on conflict.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	GetByJob(ctx context.Context, jobID string) ([]Application, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, candidateID, candidateEmail, jobID, coverLetter string) (*Application, error)
	MyApplications(ctx context.Context, candidateID string) ([]Application, error)
	ListForJob(ctx context.Context, vendorID, jobID string) ([]Application, error)
	UpdateStatus(ctx context.Context, vendorID, applicationID, status string) error
}
