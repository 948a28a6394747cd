package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/internal/usecase"
)

func TestMatchesForCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return empty for candidates without a profile", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewMatchUsecase(jobRepo, candidateRepo)

		candidateRepo.On("GetByCandidateID", ctx, "cand-1").Return(nil, nil)

		matches, _, total, err := uc.MatchesForCandidate(ctx, "cand-1", domain.PlanFree, 1, 10)
		assert.NoError(t, err)
		assert.Empty(t, matches)
		assert.Zero(t, total)
		jobRepo.AssertNotCalled(t, "FetchAllActive", ctx)
	})

	t.Run("Should restrict free-plan candidates to full time and contract", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewMatchUsecase(jobRepo, candidateRepo)

		candidateRepo.On("GetByCandidateID", ctx, "cand-1").
			Return(&domain.CandidateProfile{CandidateID: "cand-1", Skills: []string{"Go"}}, nil)
		jobRepo.On("FetchAllActive", ctx).Return([]domain.Job{
			{ID: "ft", JobType: "full_time", SkillsRequired: []string{"Go"}},
			{ID: "pt", JobType: "part_time", SkillsRequired: []string{"Go"}},
			{ID: "ct", JobType: "contract", SkillsRequired: []string{"Go"}},
		}, nil)

		matches, _, total, err := uc.MatchesForCandidate(ctx, "cand-1", domain.PlanFree, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, m := range matches {
			assert.NotEqual(t, "pt", m.Job.ID)
		}
	})

	t.Run("Should show pro candidates every job type", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewMatchUsecase(jobRepo, candidateRepo)

		candidateRepo.On("GetByCandidateID", ctx, "cand-1").
			Return(&domain.CandidateProfile{CandidateID: "cand-1", Skills: []string{"Go"}}, nil)
		jobRepo.On("FetchAllActive", ctx).Return([]domain.Job{
			{ID: "ft", JobType: "full_time", SkillsRequired: []string{"Go"}},
			{ID: "pt", JobType: "part_time", SkillsRequired: []string{"Go"}},
		}, nil)

		_, _, total, err := uc.MatchesForCandidate(ctx, "cand-1", domain.PlanPro, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("Should paginate after ranking so facets cover the whole set", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewMatchUsecase(jobRepo, candidateRepo)

		jobs := make([]domain.Job, 0, 5)
		for _, id := range []string{"a", "b", "c", "d", "e"} {
			jobs = append(jobs, domain.Job{ID: id, JobType: "full_time", SkillsRequired: []string{"Go"}})
		}
		candidateRepo.On("GetByCandidateID", ctx, "cand-1").
			Return(&domain.CandidateProfile{CandidateID: "cand-1", Skills: []string{"Go"}}, nil)
		jobRepo.On("FetchAllActive", ctx).Return(jobs, nil)

		matches, facets, total, err := uc.MatchesForCandidate(ctx, "cand-1", domain.PlanFree, 2, 2)
		assert.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, matches, 2)
		assert.Equal(t, 5, facets.ByType["full_time"])
	})

	t.Run("Should return an empty page past the end", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewMatchUsecase(jobRepo, candidateRepo)

		candidateRepo.On("GetByCandidateID", ctx, "cand-1").
			Return(&domain.CandidateProfile{CandidateID: "cand-1"}, nil)
		jobRepo.On("FetchAllActive", ctx).Return([]domain.Job{{ID: "a", JobType: "full_time"}}, nil)

		matches, _, total, err := uc.MatchesForCandidate(ctx, "cand-1", domain.PlanFree, 9, 10)
		assert.NoError(t, err)
		assert.Empty(t, matches)
		assert.Equal(t, 1, total)
	})
}

func TestCandidatesForVendor(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return empty when the vendor has no active jobs", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewMatchUsecase(jobRepo, candidateRepo)

		jobRepo.On("FetchActiveByVendor", ctx, "vendor-1", "").Return([]domain.Job{}, nil)

		matches, err := uc.CandidatesForVendor(ctx, "vendor-1", "")
		assert.NoError(t, err)
		assert.Empty(t, matches)
		candidateRepo.AssertNotCalled(t, "FetchAll", ctx)
	})

	t.Run("Should pre-filter the pool by job countries", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewMatchUsecase(jobRepo, candidateRepo)

		jobRepo.On("FetchActiveByVendor", ctx, "vendor-1", "").Return([]domain.Job{
			{ID: "us", JobCountry: "US", SkillsRequired: []string{"Go"}},
			{ID: "de", JobCountry: "DE", SkillsRequired: []string{"Go"}},
		}, nil)
		candidateRepo.On("FetchByCountries", ctx, []string{"US", "DE"}).
			Return([]domain.CandidateProfile{{ID: "p1", Skills: []string{"Go"}}}, nil)

		matches, err := uc.CandidatesForVendor(ctx, "vendor-1", "")
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		candidateRepo.AssertNotCalled(t, "FetchAll", ctx)
	})

	t.Run("Should fetch everyone when no job names a country", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewMatchUsecase(jobRepo, candidateRepo)

		jobRepo.On("FetchActiveByVendor", ctx, "vendor-1", "job-1").Return([]domain.Job{
			{ID: "job-1", SkillsRequired: []string{"Go"}, ExperienceRequired: 5},
		}, nil)
		candidateRepo.On("FetchAll", ctx).
			Return([]domain.CandidateProfile{
				{ID: "p1", Skills: []string{"Go"}, ExperienceYears: 5},
				{ID: "p2", Skills: []string{"COBOL"}},
			}, nil)

		matches, err := uc.CandidatesForVendor(ctx, "vendor-1", "job-1")
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		assert.Equal(t, "p1", matches[0].Profile.ID)
	})
}
