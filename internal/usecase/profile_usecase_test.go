package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/internal/usecase"
	"matchdb-jobs-service/pkg/apperror"
)

func intPtr(i int) *int { return &i }

func lockedProfile() *domain.CandidateProfile {
	return &domain.CandidateProfile{
		ID:               "profile-1",
		CandidateID:      "cand-1",
		Name:             "Dana",
		Email:            "dana@example.com",
		ProfileCountry:   "US",
		ResumeSummary:    "Backend engineer.",
		ExperienceYears:  5,
		Skills:           []string{"Go"},
		VisibilityConfig: domain.VisibilityConfig{"full_time": {"w2"}},
		ProfileLocked:    true,
		Version:          3,
	}
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should lock the profile and extract skills on first write", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil)

		profile, err := uc.CreateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			Name:           "Dana",
			ProfileCountry: "US",
			ResumeSummary:  "Shipped Go services backed by PostgreSQL and Redis.",
		})
		assert.NoError(t, err)
		assert.True(t, profile.ProfileLocked)
		assert.Equal(t, "dana@example.com", profile.Email)
		assert.Contains(t, profile.Skills, "Go")
		assert.Contains(t, profile.Skills, "PostgreSQL")
		assert.Contains(t, profile.Skills, "Redis")
	})

	t.Run("Should reject a second profile for the same candidate", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)

		_, err := uc.CreateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{ProfileCountry: "US"})
		assert.Error(t, err)
		assertAppErrorCode(t, err, 409)
	})

	t.Run("Should surface the unique-index conflict from a concurrent create", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(domain.ErrDuplicateProfile)

		_, err := uc.CreateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{ProfileCountry: "US"})
		assert.Error(t, err)
		assertAppErrorCode(t, err, 409)
	})

	t.Run("Should require a profile country", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(nil, nil)

		_, err := uc.CreateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "profile_country")
	})

	t.Run("Should reject unknown job types in the visibility config", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(nil, nil)

		_, err := uc.CreateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			ProfileCountry:   "US",
			VisibilityConfig: domain.VisibilityConfig{"freelance": {}},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown job type")
	})
}

func TestUpdateProfileAppendOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("Should accept resume text that extends the current value", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)
		repo.On("ReplaceVersioned", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil)

		profile, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			ResumeSummary: "Backend engineer. Now leading a platform team.",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Backend engineer. Now leading a platform team.", profile.ResumeSummary)
	})

	t.Run("Should reject resume text that does not extend the current value", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)

		_, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			ResumeSummary: "Rewritten from scratch.",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "can only be appended to")
		repo.AssertNotCalled(t, "ReplaceVersioned", mock.Anything, mock.Anything)
	})

	t.Run("Should treat empty resume fields as no change, not clear", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)
		repo.On("ReplaceVersioned", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil)

		profile, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			Location: "Austin",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Backend engineer.", profile.ResumeSummary)
		assert.Equal(t, "Austin", profile.Location)
	})

	t.Run("Should reject decreasing experience", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)

		_, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			ExperienceYears: intPtr(3),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot decrease")
		repo.AssertNotCalled(t, "ReplaceVersioned", mock.Anything, mock.Anything)
	})

	t.Run("Should accept increasing experience", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)
		repo.On("ReplaceVersioned", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil)

		profile, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			ExperienceYears: intPtr(7),
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, profile.ExperienceYears)
	})

	t.Run("Should union-merge visibility grants without revoking", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)
		repo.On("ReplaceVersioned", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil)

		profile, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			VisibilityConfig: domain.VisibilityConfig{
				"full_time": {"c2h"},
				"contract":  {},
			},
		})
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"w2", "c2h"}, profile.VisibilityConfig["full_time"])
		subs, ok := profile.VisibilityConfig["contract"]
		assert.True(t, ok)
		assert.Empty(t, subs)
	})

	t.Run("Should abort the whole update on a single violation", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)

		// Valid append plus an invalid experience decrease: nothing lands.
		_, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			ResumeSummary:   "Backend engineer. More detail.",
			ExperienceYears: intPtr(1),
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "ReplaceVersioned", mock.Anything, mock.Anything)
	})

	t.Run("Should only add skills, never remove", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		existing := lockedProfile()
		existing.Skills = []string{"Go", "Kafka"}
		repo.On("GetByCandidateID", ctx, "cand-1").Return(existing, nil)
		repo.On("ReplaceVersioned", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil)

		profile, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			ResumeSummary: "Backend engineer. Added Terraform automation.",
		})
		assert.NoError(t, err)
		assert.Contains(t, profile.Skills, "Go")
		assert.Contains(t, profile.Skills, "Kafka")
		assert.Contains(t, profile.Skills, "Terraform")
	})

	t.Run("Should delegate to create when no profile exists", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil)

		profile, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			ProfileCountry: "US",
		})
		assert.NoError(t, err)
		assert.True(t, profile.ProfileLocked)
	})
}

func TestUpdateProfileConcurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("Should re-read and retry on a version conflict", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)
		repo.On("ReplaceVersioned", ctx, mock.AnythingOfType("*domain.CandidateProfile")).
			Return(domain.ErrVersionConflict).Once()
		repo.On("ReplaceVersioned", ctx, mock.AnythingOfType("*domain.CandidateProfile")).
			Return(nil).Once()

		profile, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			Location: "Denver",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Denver", profile.Location)
		repo.AssertNumberOfCalls(t, "GetByCandidateID", 2)
	})

	t.Run("Should give up after exhausting retries", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		repo.On("GetByCandidateID", ctx, "cand-1").Return(lockedProfile(), nil)
		repo.On("ReplaceVersioned", ctx, mock.AnythingOfType("*domain.CandidateProfile")).
			Return(domain.ErrVersionConflict)

		_, err := uc.UpdateProfile(ctx, "cand-1", "dana@example.com", &domain.ProfileUpdate{
			Location: "Denver",
		})
		assert.Error(t, err)
		repo.AssertNumberOfCalls(t, "ReplaceVersioned", 3)
	})
}

func assertAppErrorCode(t *testing.T, err error, code int) {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	if assert.True(t, ok, "expected *apperror.AppError, got %T", err) {
		assert.Equal(t, code, appErr.Code)
	}
}
