package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job types form a closed vocabulary. Subtypes are free strings whose
// meaning depends on the type (e.g. "w2", "c2c", "1099" under contract).
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// JobTypes lists every known job type, in declaration order.
var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

// ValidJobType reports whether t is one of the four known job types.
func ValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if t == jt {
			return true
		}
	}
	return false
}

const (
	WorkModeRemote = "remote"
	WorkModeOnsite = "onsite"
	WorkModeHybrid = "hybrid"
)

type Job struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	VendorID           string    `json:"vendor_id"`
	VendorEmail        string    `json:"vendor_email"`
	RecruiterName      string    `json:"recruiter_name"`
	RecruiterPhone     string    `json:"recruiter_phone"`
	Location           string    `json:"location"`
	JobCountry         string    `json:"job_country"`
	JobState           string    `json:"job_state"`
	JobCity            string    `json:"job_city"`
	JobType            string    `json:"job_type"`
	JobSubType         string    `json:"job_sub_type"`
	WorkMode           string    `json:"work_mode"`
	SalaryMin          *float64  `json:"salary_min"`
	SalaryMax          *float64  `json:"salary_max"`
	PayPerHour         *float64  `json:"pay_per_hour"`
	SkillsRequired     []string  `json:"skills_required"`
	ExperienceRequired int       `json:"experience_required"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// JobFilter narrows active-job listings.
type JobFilter struct {
	JobType string
	Country string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// FetchActive returns a page of active jobs (newest first) plus the total count.
	FetchActive(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	// FetchAllActive returns the full active-job snapshot used by the rankers.
	FetchAllActive(ctx context.Context) ([]Job, error)
	FetchByVendor(ctx context.Context, vendorID string) ([]Job, error)
	// FetchActiveByVendor restricts to the vendor's active jobs, optionally to one job id.
	FetchActiveByVendor(ctx context.Context, vendorID, jobID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	SetActive(ctx context.Context, id string, active bool) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, vendorID, vendorEmail string, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, int64, error)
	ListActiveJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]Job, int64, error)
	ListVendorJobs(ctx context.Context, vendorID string) ([]Job, error)
	UpdateJob(ctx context.Context, vendorID string, job *Job) error
	SetJobActive(ctx context.Context, vendorID, jobID string, active bool) error
}
