package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/internal/matching"
)

func TestRankJobsForCandidate(t *testing.T) {
	t.Run("Should sort by overall score, best first", func(t *testing.T) {
		profile := &domain.CandidateProfile{Skills: []string{"Go"}}
		jobs := []domain.Job{
			{ID: "weak", SkillsRequired: []string{"Rust"}},
			{ID: "strong", SkillsRequired: []string{"Go"}},
		}
		ranked, _ := matching.RankJobsForCandidate(profile, jobs, nil)
		assert.Len(t, ranked, 2)
		assert.Equal(t, "strong", ranked[0].Job.ID)
		assert.Equal(t, "weak", ranked[1].Job.ID)
		assert.Greater(t, ranked[0].MatchPercentage, ranked[1].MatchPercentage)
	})

	t.Run("Should keep encounter order on equal scores", func(t *testing.T) {
		profile := &domain.CandidateProfile{Skills: []string{"Go"}}
		jobs := []domain.Job{
			{ID: "first", SkillsRequired: []string{"Go"}},
			{ID: "second", SkillsRequired: []string{"Go"}},
		}
		ranked, _ := matching.RankJobsForCandidate(profile, jobs, nil)
		assert.Len(t, ranked, 2)
		assert.Equal(t, "first", ranked[0].Job.ID)
		assert.Equal(t, "second", ranked[1].Job.ID)
	})

	t.Run("Should drop jobs outside the profile country", func(t *testing.T) {
		profile := &domain.CandidateProfile{ProfileCountry: "US"}
		jobs := []domain.Job{
			{ID: "us", JobCountry: "US"},
			{ID: "de", JobCountry: "DE"},
			{ID: "none"},
		}
		ranked, _ := matching.RankJobsForCandidate(profile, jobs, nil)
		assert.Len(t, ranked, 1)
		assert.Equal(t, "us", ranked[0].Job.ID)
	})

	t.Run("Should see every country when the profile has none", func(t *testing.T) {
		profile := &domain.CandidateProfile{}
		jobs := []domain.Job{
			{ID: "us", JobCountry: "US"},
			{ID: "de", JobCountry: "DE"},
		}
		ranked, _ := matching.RankJobsForCandidate(profile, jobs, nil)
		assert.Len(t, ranked, 2)
	})

	t.Run("Should enforce the allowed-type constraint", func(t *testing.T) {
		profile := &domain.CandidateProfile{}
		jobs := []domain.Job{
			{ID: "ft", JobType: "full_time"},
			{ID: "pt", JobType: "part_time"},
			{ID: "ct", JobType: "contract"},
		}
		ranked, _ := matching.RankJobsForCandidate(profile, jobs, []string{"full_time", "contract"})
		assert.Len(t, ranked, 2)
		for _, r := range ranked {
			assert.NotEqual(t, "pt", r.Job.ID)
		}
	})

	t.Run("Should count facets over the whole filtered set", func(t *testing.T) {
		profile := &domain.CandidateProfile{}
		jobs := []domain.Job{
			{ID: "1", JobType: "full_time", JobSubType: "w2"},
			{ID: "2", JobType: "full_time", JobSubType: "c2h"},
			{ID: "3", JobType: "full_time", JobSubType: "w2"},
			{ID: "4", JobType: "contract", JobSubType: "1099"},
		}
		_, facets := matching.RankJobsForCandidate(profile, jobs, nil)
		assert.Equal(t, 3, facets.ByType["full_time"])
		assert.Equal(t, 1, facets.ByType["contract"])
		assert.Equal(t, 2, facets.BySubType["full_time"]["w2"])
		assert.Equal(t, 1, facets.BySubType["full_time"]["c2h"])
		assert.Equal(t, 1, facets.BySubType["contract"]["1099"])
	})

	t.Run("Should exclude filtered-out jobs from facets", func(t *testing.T) {
		profile := &domain.CandidateProfile{
			VisibilityConfig: domain.VisibilityConfig{"contract": {}},
		}
		jobs := []domain.Job{
			{ID: "1", JobType: "full_time"},
			{ID: "2", JobType: "contract"},
		}
		_, facets := matching.RankJobsForCandidate(profile, jobs, nil)
		assert.Equal(t, 0, facets.ByType["full_time"])
		assert.Equal(t, 1, facets.ByType["contract"])
	})
}

func TestRankCandidatesForJobs(t *testing.T) {
	t.Run("Should keep each candidate's best job only", func(t *testing.T) {
		jobs := []domain.Job{
			{ID: "weak", Title: "Weak", SkillsRequired: []string{"Rust"}, ExperienceRequired: 5},
			{ID: "strong", Title: "Strong", SkillsRequired: []string{"Go"}, ExperienceRequired: 5},
		}
		profiles := []domain.CandidateProfile{
			{ID: "p1", Skills: []string{"Go"}, ExperienceYears: 5},
		}
		ranked := matching.RankCandidatesForJobs(jobs, profiles)
		assert.Len(t, ranked, 1)
		assert.Equal(t, "strong", ranked[0].MatchedJobID)
		assert.Equal(t, "Strong", ranked[0].MatchedJobTitle)
	})

	t.Run("Should let the first-seen job win exact ties", func(t *testing.T) {
		jobs := []domain.Job{
			{ID: "a", SkillsRequired: []string{"Go"}},
			{ID: "b", SkillsRequired: []string{"Go"}},
		}
		profiles := []domain.CandidateProfile{
			{ID: "p1", Skills: []string{"Go"}},
		}
		ranked := matching.RankCandidatesForJobs(jobs, profiles)
		assert.Len(t, ranked, 1)
		assert.Equal(t, "a", ranked[0].MatchedJobID)
	})

	t.Run("Should exclude candidates whose best score is zero", func(t *testing.T) {
		jobs := []domain.Job{
			{ID: "a", SkillsRequired: []string{"Go"}, ExperienceRequired: 5},
		}
		profiles := []domain.CandidateProfile{
			{ID: "none", Skills: []string{"Rust"}, ExperienceYears: 0},
			{ID: "some", Skills: []string{"Go"}, ExperienceYears: 0},
		}
		ranked := matching.RankCandidatesForJobs(jobs, profiles)
		assert.Len(t, ranked, 1)
		assert.Equal(t, "some", ranked[0].Profile.ID)
	})

	t.Run("Should respect visibility when picking the best job", func(t *testing.T) {
		jobs := []domain.Job{
			{ID: "hidden", JobType: "contract", SkillsRequired: []string{"Go"}},
			{ID: "open", JobType: "full_time", SkillsRequired: []string{"Go"}},
		}
		profiles := []domain.CandidateProfile{
			{ID: "p1", Skills: []string{"Go"}, VisibilityConfig: domain.VisibilityConfig{"full_time": {}}},
		}
		ranked := matching.RankCandidatesForJobs(jobs, profiles)
		assert.Len(t, ranked, 1)
		assert.Equal(t, "open", ranked[0].MatchedJobID)
	})

	t.Run("Should sort candidates by best score descending", func(t *testing.T) {
		jobs := []domain.Job{
			{ID: "j", SkillsRequired: []string{"Go", "Redis"}},
		}
		profiles := []domain.CandidateProfile{
			{ID: "half", Skills: []string{"Go"}},
			{ID: "full", Skills: []string{"Go", "Redis"}},
		}
		ranked := matching.RankCandidatesForJobs(jobs, profiles)
		assert.Len(t, ranked, 2)
		assert.Equal(t, "full", ranked[0].Profile.ID)
		assert.Equal(t, "half", ranked[1].Profile.ID)
	})
}
