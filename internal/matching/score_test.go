package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/internal/matching"
)

func TestSkillsScore(t *testing.T) {
	t.Run("Should give 100 when job requires no skills", func(t *testing.T) {
		profile := &domain.CandidateProfile{Skills: []string{"Go"}}
		job := &domain.Job{}
		b := matching.Score(profile, job)
		assert.Equal(t, 100, b.Skills)
	})

	t.Run("Should give 0 when candidate has no skills against a requirement", func(t *testing.T) {
		profile := &domain.CandidateProfile{}
		job := &domain.Job{SkillsRequired: []string{"Go"}}
		b := matching.Score(profile, job)
		assert.Equal(t, 0, b.Skills)
	})

	t.Run("Should score the fraction of required skills covered", func(t *testing.T) {
		profile := &domain.CandidateProfile{Skills: []string{"Go", "Redis", "Kafka"}}
		job := &domain.Job{SkillsRequired: []string{"Go", "Redis", "PostgreSQL"}}
		b := matching.Score(profile, job)
		assert.Equal(t, 67, b.Skills) // 2 of 3, rounded
	})

	t.Run("Should match skills case-insensitively with surrounding whitespace", func(t *testing.T) {
		profile := &domain.CandidateProfile{Skills: []string{" go ", "REDIS"}}
		job := &domain.Job{SkillsRequired: []string{"Go", "redis"}}
		b := matching.Score(profile, job)
		assert.Equal(t, 100, b.Skills)
	})

	t.Run("Should not reward extra candidate skills", func(t *testing.T) {
		profile := &domain.CandidateProfile{Skills: []string{"Go", "Rust", "Python", "Java"}}
		job := &domain.Job{SkillsRequired: []string{"Go", "TypeScript"}}
		b := matching.Score(profile, job)
		assert.Equal(t, 50, b.Skills)
	})
}

func TestTypeScore(t *testing.T) {
	t.Run("Should give 100 on case-insensitive type match", func(t *testing.T) {
		profile := &domain.CandidateProfile{PreferredJobType: "Full_Time"}
		job := &domain.Job{JobType: "full_time"}
		assert.Equal(t, 100, matching.Score(profile, job).Type)
	})

	t.Run("Should give 0 when preference is empty", func(t *testing.T) {
		profile := &domain.CandidateProfile{}
		job := &domain.Job{JobType: "contract"}
		assert.Equal(t, 0, matching.Score(profile, job).Type)
	})

	t.Run("Should give 0 on mismatch", func(t *testing.T) {
		profile := &domain.CandidateProfile{PreferredJobType: "full_time"}
		job := &domain.Job{JobType: "contract"}
		assert.Equal(t, 0, matching.Score(profile, job).Type)
	})
}

func TestExperienceScore(t *testing.T) {
	t.Run("Should give 100 when job requires no experience", func(t *testing.T) {
		profile := &domain.CandidateProfile{ExperienceYears: 0}
		job := &domain.Job{ExperienceRequired: 0}
		assert.Equal(t, 100, matching.Score(profile, job).Experience)
	})

	t.Run("Should scale linearly below the requirement", func(t *testing.T) {
		profile := &domain.CandidateProfile{ExperienceYears: 2}
		job := &domain.Job{ExperienceRequired: 5}
		assert.Equal(t, 40, matching.Score(profile, job).Experience)

		profile.ExperienceYears = 5
		job.ExperienceRequired = 10
		assert.Equal(t, 50, matching.Score(profile, job).Experience)
	})

	t.Run("Should cap at 100 above the requirement", func(t *testing.T) {
		profile := &domain.CandidateProfile{ExperienceYears: 5}
		job := &domain.Job{ExperienceRequired: 2}
		assert.Equal(t, 100, matching.Score(profile, job).Experience)
	})
}

func TestOverallScore(t *testing.T) {
	t.Run("Should weight skills 60, type 15 and experience 25", func(t *testing.T) {
		// skills 80 (4 of 5), type 100, experience 60 (3 of 5)
		profile := &domain.CandidateProfile{
			Skills:           []string{"Go", "Redis", "Kafka", "Docker"},
			PreferredJobType: "contract",
			ExperienceYears:  3,
		}
		job := &domain.Job{
			SkillsRequired:     []string{"Go", "Redis", "Kafka", "Docker", "PostgreSQL"},
			JobType:            "contract",
			ExperienceRequired: 5,
		}
		b := matching.Score(profile, job)
		assert.Equal(t, 80, b.Skills)
		assert.Equal(t, 100, b.Type)
		assert.Equal(t, 60, b.Experience)
		assert.Equal(t, 78, b.Overall) // 0.60*80 + 0.15*100 + 0.25*60
	})

	t.Run("Should be deterministic for the same inputs", func(t *testing.T) {
		profile := &domain.CandidateProfile{
			Skills:           []string{"Python", "TensorFlow"},
			PreferredJobType: "full_time",
			ExperienceYears:  4,
		}
		job := &domain.Job{
			SkillsRequired:     []string{"Python", "PyTorch", "TensorFlow"},
			JobType:            "full_time",
			ExperienceRequired: 6,
		}
		first := matching.Score(profile, job)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, matching.Score(profile, job))
		}
	})
}
