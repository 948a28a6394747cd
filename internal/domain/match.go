package domain

import "context"

// MatchBreakdown holds the three sub-scores and the weighted overall score,
// all in [0,100]. Weights: skills 60%, type 15%, experience 25%.
type MatchBreakdown struct {
	Skills     int `json:"skills"`
	Type       int `json:"type"`
	Experience int `json:"experience"`
	Overall    int `json:"overall"`
}

// RankedJob is a job scored against one candidate.
type RankedJob struct {
	Job             Job            `json:"job"`
	MatchPercentage int            `json:"match_percentage"`
	MatchBreakdown  MatchBreakdown `json:"match_breakdown"`
}

// RankedCandidate is a candidate with the single best-matching job across a
// vendor's job set.
type RankedCandidate struct {
	Profile         PublicProfile  `json:"profile"`
	MatchPercentage int            `json:"match_percentage"`
	MatchedJobID    string         `json:"matched_job_id"`
	MatchedJobTitle string         `json:"matched_job_title"`
	MatchBreakdown  MatchBreakdown `json:"match_breakdown"`
}

// FacetCounts aggregates the entire filtered job set (not just a page) to
// drive faceted UI filters.
type FacetCounts struct {
	ByType    map[string]int            `json:"by_type"`
	BySubType map[string]map[string]int `json:"by_sub_type"`
}

type MatchUsecase interface {
	// MatchesForCandidate ranks all visible active jobs for the candidate,
	// constrained by plan tier, and returns one page plus whole-set facets.
	MatchesForCandidate(ctx context.Context, candidateID, plan string, page, pageSize int) ([]RankedJob, FacetCounts, int, error)
	// CandidatesForVendor ranks candidates against the vendor's active jobs,
	// optionally restricted to a single job.
	CandidatesForVendor(ctx context.Context, vendorID, jobID string) ([]RankedCandidate, error)
}
