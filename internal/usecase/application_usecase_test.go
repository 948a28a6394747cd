package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/internal/usecase"
)

func TestApply(t *testing.T) {
	ctx := context.Background()

	activeJob := &domain.Job{ID: "job-1", Title: "Go Engineer", VendorID: "vendor-1", IsActive: true}

	t.Run("Should create a pending application for an active job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, "job-1").Return(activeJob, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.Apply(ctx, "cand-1", "dana@example.com", "job-1", "Hi there")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "Go Engineer", app.JobTitle)
	})

	t.Run("Should reject applications to inactive jobs", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		closed := &domain.Job{ID: "job-2", IsActive: false}
		jobRepo.On("GetByID", ctx, "job-2").Return(closed, nil)

		_, err := uc.Apply(ctx, "cand-1", "dana@example.com", "job-2", "")
		assert.Error(t, err)
		assertAppErrorCode(t, err, 404)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject applications to missing jobs", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, "nope").Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(ctx, "cand-1", "dana@example.com", "nope", "")
		assert.Error(t, err)
		assertAppErrorCode(t, err, 404)
	})

	t.Run("Should map the unique-index violation to a conflict", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, "job-1").Return(activeJob, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicateApplication)

		_, err := uc.Apply(ctx, "cand-1", "dana@example.com", "job-1", "")
		assert.Error(t, err)
		assertAppErrorCode(t, err, 409)
		assert.Contains(t, err.Error(), "Already applied")
	})
}

func TestListForJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return applications for the owning vendor", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, "job-1").Return(&domain.Job{ID: "job-1", VendorID: "vendor-1"}, nil)
		appRepo.On("GetByJob", ctx, "job-1").Return([]domain.Application{{ID: "app-1"}}, nil)

		apps, err := uc.ListForJob(ctx, "vendor-1", "job-1")
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("Should forbid other vendors", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, "job-1").Return(&domain.Job{ID: "job-1", VendorID: "vendor-1"}, nil)

		_, err := uc.ListForJob(ctx, "vendor-2", "job-1")
		assert.Error(t, err)
		assertAppErrorCode(t, err, 403)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject unknown statuses", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		err := uc.UpdateStatus(ctx, "vendor-1", "app-1", "archived")
		assert.Error(t, err)
		assertAppErrorCode(t, err, 400)
	})

	t.Run("Should update status for the owning vendor", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", ctx, "app-1").Return(&domain.Application{ID: "app-1", JobID: "job-1"}, nil)
		jobRepo.On("GetByID", ctx, "job-1").Return(&domain.Job{ID: "job-1", VendorID: "vendor-1"}, nil)
		appRepo.On("UpdateStatus", ctx, "app-1", "shortlisted").Return(nil)

		err := uc.UpdateStatus(ctx, "vendor-1", "app-1", "shortlisted")
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should forbid vendors who do not own the job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", ctx, "app-1").Return(&domain.Application{ID: "app-1", JobID: "job-1"}, nil)
		jobRepo.On("GetByID", ctx, "job-1").Return(&domain.Job{ID: "job-1", VendorID: "vendor-1"}, nil)

		err := uc.UpdateStatus(ctx, "vendor-2", "app-1", "rejected")
		assert.Error(t, err)
		assertAppErrorCode(t, err, 403)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
