package matching

import "matchdb-jobs-service/internal/domain"

// Visible decides whether a candidate should be considered for a job, and
// symmetrically whether the job should be shown to the candidate.
//
// Rules, in order:
//   - empty visibility config: visible everywhere (legacy opt-out default)
//   - job without a type: visible (cannot gate on missing data)
//   - job type not granted in the config: not visible
//   - granted type with a non-empty subtype list and a job subtype outside
//     that list: not visible
func Visible(profile *domain.CandidateProfile, job *domain.Job) bool {
	vis := profile.VisibilityConfig
	if len(vis) == 0 {
		return true
	}
	if job.JobType == "" {
		return true
	}
	subTypes, ok := vis[job.JobType]
	if !ok {
		return false
	}
	if job.JobSubType != "" && len(subTypes) > 0 && !contains(subTypes, job.JobSubType) {
		return false
	}
	return true
}

// FilterVisibleJobs keeps the jobs the candidate is visible for, preserving
// input order.
func FilterVisibleJobs(profile *domain.CandidateProfile, jobs []domain.Job) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for i := range jobs {
		if Visible(profile, &jobs[i]) {
			out = append(out, jobs[i])
		}
	}
	return out
}

// FilterVisibleCandidates keeps the candidates visible for the job,
// preserving input order.
func FilterVisibleCandidates(job *domain.Job, profiles []domain.CandidateProfile) []domain.CandidateProfile {
	out := make([]domain.CandidateProfile, 0, len(profiles))
	for i := range profiles {
		if Visible(&profiles[i], job) {
			out = append(out, profiles[i])
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
