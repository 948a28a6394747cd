package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
	validate        *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, applicationRepo domain.ApplicationRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		validate:        validate,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, vendorID, vendorEmail string, job *domain.Job) error {
	if err := u.validateJob(job); err != nil {
		return err
	}

	job.VendorID = vendorID
	job.VendorEmail = vendorEmail
	job.IsActive = true
	if job.JobType == "" {
		job.JobType = domain.JobTypeFullTime
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJob returns the job plus its application count.
func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, int64, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, 0, apperror.NotFound("Job not found")
		}
		return nil, 0, apperror.Internal(err)
	}

	count, err := u.applicationRepo.CountByJob(ctx, id)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return job, count, nil
}

func (u *jobUsecase) ListActiveJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if filter.JobType != "" && !domain.ValidJobType(filter.JobType) {
		return nil, 0, apperror.BadRequest("job_type must be one of: " + strings.Join(domain.JobTypes, ", "))
	}

	offset := (page - 1) * pageSize
	jobs, total, err := u.jobRepo.FetchActive(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) ListVendorJobs(ctx context.Context, vendorID string) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchByVendor(ctx, vendorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// UpdateJob replaces mutable fields; only the owning vendor may touch a job.
func (u *jobUsecase) UpdateJob(ctx context.Context, vendorID string, job *domain.Job) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if existing.VendorID != vendorID {
		return apperror.Forbidden("You can only modify your own jobs")
	}

	if err := u.validateJob(job); err != nil {
		return err
	}

	job.VendorID = existing.VendorID
	job.VendorEmail = existing.VendorEmail
	job.IsActive = existing.IsActive
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// SetJobActive closes or reopens a posting. Jobs are never hard-deleted.
func (u *jobUsecase) SetJobActive(ctx context.Context, vendorID, jobID string, active bool) error {
	existing, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if existing.VendorID != vendorID {
		return apperror.Forbidden("You can only modify your own jobs")
	}

	if err := u.jobRepo.SetActive(ctx, jobID, active); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) validateJob(job *domain.Job) error {
	if len(job.Title) < 2 {
		return apperror.BadRequest("title must be at least 2 characters")
	}
	if len(job.Description) < 10 {
		return apperror.BadRequest("description must be at least 10 characters")
	}
	if job.JobType != "" && !domain.ValidJobType(job.JobType) {
		return apperror.BadRequest("job_type must be one of: " + strings.Join(domain.JobTypes, ", "))
	}
	if err := u.validate.Var(job.WorkMode, "work_mode"); err != nil {
		return apperror.BadRequest("work_mode must be remote, onsite or hybrid")
	}
	if err := u.validate.Var(job.RecruiterPhone, "valid_phone"); err != nil {
		return apperror.BadRequest("recruiter_phone must be a valid phone number")
	}
	if job.ExperienceRequired < 0 {
		return apperror.BadRequest("experience_required cannot be negative")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.BadRequest("salary_min cannot be greater than salary_max")
	}
	return nil
}
