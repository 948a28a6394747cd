package matching

import (
	"sort"

	"matchdb-jobs-service/internal/domain"
)

// RankJobsForCandidate scores every job the candidate can see and returns
// them sorted by overall score, best first, plus facet counts over the whole
// filtered set. Ties keep encounter order (stable sort).
//
// Filters, in order: visibility config, strict country equality when the
// profile has a country, then the caller-supplied allowed-type constraint
// (nil or empty means unconstrained).
func RankJobsForCandidate(profile *domain.CandidateProfile, jobs []domain.Job, allowedTypes []string) ([]domain.RankedJob, domain.FacetCounts) {
	facets := domain.FacetCounts{
		ByType:    make(map[string]int),
		BySubType: make(map[string]map[string]int),
	}

	allowed := map[string]bool{}
	for _, t := range allowedTypes {
		allowed[t] = true
	}

	ranked := make([]domain.RankedJob, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if !Visible(profile, job) {
			continue
		}
		if profile.ProfileCountry != "" && job.JobCountry != profile.ProfileCountry {
			continue
		}
		if len(allowed) > 0 && !allowed[job.JobType] {
			continue
		}

		breakdown := Score(profile, job)
		ranked = append(ranked, domain.RankedJob{
			Job:             *job,
			MatchPercentage: breakdown.Overall,
			MatchBreakdown:  breakdown,
		})

		facets.ByType[job.JobType]++
		if facets.BySubType[job.JobType] == nil {
			facets.BySubType[job.JobType] = make(map[string]int)
		}
		facets.BySubType[job.JobType][job.JobSubType]++
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})

	return ranked, facets
}

// RankCandidatesForJobs scores every candidate against a vendor's job set,
// keeping each candidate's single best-matching job. Strict > means the
// first-seen job wins exact ties. Candidates whose best score is 0 carry no
// positive signal and are excluded entirely. Output is sorted by best score,
// stable on ties. Any country pre-filtering of the pool is the caller's
// concern.
func RankCandidatesForJobs(jobs []domain.Job, profiles []domain.CandidateProfile) []domain.RankedCandidate {
	ranked := make([]domain.RankedCandidate, 0, len(profiles))

	for i := range profiles {
		profile := &profiles[i]

		best := 0
		var bestJob *domain.Job
		var bestBreakdown domain.MatchBreakdown

		for j := range jobs {
			job := &jobs[j]
			if !Visible(profile, job) {
				continue
			}
			breakdown := Score(profile, job)
			if breakdown.Overall > best {
				best = breakdown.Overall
				bestJob = job
				bestBreakdown = breakdown
			}
		}

		if best == 0 || bestJob == nil {
			continue
		}

		ranked = append(ranked, domain.RankedCandidate{
			Profile:         profile.Public(),
			MatchPercentage: best,
			MatchedJobID:    bestJob.ID,
			MatchedJobTitle: bestJob.Title,
			MatchBreakdown:  bestBreakdown,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})

	return ranked
}
