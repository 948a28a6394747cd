package matching

import (
	"math"
	"strings"

	"matchdb-jobs-service/internal/domain"
)

// Overall score weights. Skill fit dominates, type match is a light signal,
// experience is secondary.
const (
	weightSkills     = 0.60
	weightType       = 0.15
	weightExperience = 0.25
)

// Score computes the candidate↔job compatibility breakdown. Pure function;
// every component is in [0,100].
func Score(profile *domain.CandidateProfile, job *domain.Job) domain.MatchBreakdown {
	skills := skillsScore(profile.Skills, job.SkillsRequired)
	typ := typeScore(profile.PreferredJobType, job.JobType)
	exp := experienceScore(profile.ExperienceYears, job.ExperienceRequired)

	overall := int(math.Round(weightSkills*float64(skills) + weightType*float64(typ) + weightExperience*float64(exp)))

	return domain.MatchBreakdown{
		Skills:     skills,
		Type:       typ,
		Experience: exp,
		Overall:    overall,
	}
}

// skillsScore is the fraction of required skills the candidate has, as a
// percentage over case-folded trimmed sets. No requirement means 100; a
// candidate with no skills against any requirement means 0. Extra candidate
// skills neither help nor hurt.
func skillsScore(candidateSkills, jobSkills []string) int {
	jobSet := foldSet(jobSkills)
	if len(jobSet) == 0 {
		return 100
	}
	candidateSet := foldSet(candidateSkills)
	if len(candidateSet) == 0 {
		return 0
	}

	matches := 0
	for s := range jobSet {
		if candidateSet[s] {
			matches++
		}
	}
	return int(math.Round(float64(matches) / float64(len(jobSet)) * 100))
}

// typeScore is binary: exact case-insensitive job-type match or nothing.
func typeScore(preferred, jobType string) int {
	if preferred != "" && strings.EqualFold(preferred, jobType) {
		return 100
	}
	return 0
}

// experienceScore is linear in candidate years up to the requirement, capped
// at 100. A job requiring zero years has no requirement to fail.
func experienceScore(candidateYears, requiredYears int) int {
	if requiredYears <= 0 {
		return 100
	}
	score := int(math.Round(float64(candidateYears) / float64(requiredYears) * 100))
	if score > 100 {
		return 100
	}
	return score
}

func foldSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	return set
}
