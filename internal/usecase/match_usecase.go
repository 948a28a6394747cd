package usecase

import (
	"context"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/internal/matching"
	"matchdb-jobs-service/pkg/apperror"
)

type matchUsecase struct {
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
}

func NewMatchUsecase(jobRepo domain.JobRepository, candidateRepo domain.CandidateRepository) domain.MatchUsecase {
	return &matchUsecase{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
	}
}

// MatchesForCandidate ranks the full active-job snapshot for the candidate.
// The whole filtered set is ranked and faceted; pagination slices afterwards
// so facet counts always cover every match, not just the page.
func (u *matchUsecase) MatchesForCandidate(ctx context.Context, candidateID, plan string, page, pageSize int) ([]domain.RankedJob, domain.FacetCounts, int, error) {
	emptyFacets := domain.FacetCounts{
		ByType:    map[string]int{},
		BySubType: map[string]map[string]int{},
	}

	profile, err := u.candidateRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, emptyFacets, 0, apperror.Internal(err)
	}
	if profile == nil {
		// No profile yet: nothing to match, not an error.
		return []domain.RankedJob{}, emptyFacets, 0, nil
	}

	jobs, err := u.jobRepo.FetchAllActive(ctx)
	if err != nil {
		return nil, emptyFacets, 0, apperror.Internal(err)
	}

	allowed := domain.AllowedJobTypesForPlan(plan)
	ranked, facets := matching.RankJobsForCandidate(profile, jobs, allowed)
	total := len(ranked)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start >= total {
		return []domain.RankedJob{}, facets, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return ranked[start:end], facets, total, nil
}

// CandidatesForVendor ranks the candidate pool against the vendor's active
// jobs (optionally a single job). When any job names a country, the pool is
// pre-filtered to candidates in one of those countries.
func (u *matchUsecase) CandidatesForVendor(ctx context.Context, vendorID, jobID string) ([]domain.RankedCandidate, error) {
	jobs, err := u.jobRepo.FetchActiveByVendor(ctx, vendorID, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(jobs) == 0 {
		return []domain.RankedCandidate{}, nil
	}

	countries := jobCountries(jobs)
	var profiles []domain.CandidateProfile
	if len(countries) > 0 {
		profiles, err = u.candidateRepo.FetchByCountries(ctx, countries)
	} else {
		profiles, err = u.candidateRepo.FetchAll(ctx)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return matching.RankCandidatesForJobs(jobs, profiles), nil
}

func jobCountries(jobs []domain.Job) []string {
	seen := map[string]bool{}
	var out []string
	for i := range jobs {
		c := jobs[i].JobCountry
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
