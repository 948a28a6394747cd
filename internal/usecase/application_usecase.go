package usecase

import (
	"context"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(applicationRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply creates the application. Duplicate detection is left to the storage
// layer's unique (job_id, candidate_id) index so two concurrent applies
// cannot both slip past a pre-check.
func (u *applicationUsecase) Apply(ctx context.Context, candidateID, candidateEmail, jobID, coverLetter string) (*domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found or inactive")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive {
		return nil, apperror.NotFound("Job not found or inactive")
	}

	app := &domain.Application{
		JobID:          jobID,
		JobTitle:       job.Title,
		CandidateID:    candidateID,
		CandidateEmail: candidateEmail,
		CoverLetter:    coverLetter,
		Status:         domain.ApplicationStatusPending,
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if err == domain.ErrDuplicateApplication {
			return nil, apperror.Conflict("Already applied to this job")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) MyApplications(ctx context.Context, candidateID string) ([]domain.Application, error) {
	apps, err := u.applicationRepo.GetByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListForJob returns a job's applications to its owning vendor only.
func (u *applicationUsecase) ListForJob(ctx context.Context, vendorID, jobID string) ([]domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.VendorID != vendorID {
		return nil, apperror.Forbidden("You can only view applications for your own jobs")
	}

	apps, err := u.applicationRepo.GetByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, vendorID, applicationID, status string) error {
	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("status must be one of: pending, reviewing, shortlisted, rejected, hired")
	}

	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if job.VendorID != vendorID {
		return apperror.Forbidden("You can only manage applications for your own jobs")
	}

	if err := u.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
