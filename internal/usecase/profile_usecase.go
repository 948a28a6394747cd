package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/internal/matching"
	"matchdb-jobs-service/pkg/apperror"
)

// replaceRetries bounds the CAS retry loop on concurrent profile updates.
const replaceRetries = 3

type profileUsecase struct {
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

func NewProfileUsecase(candidateRepo domain.CandidateRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		candidateRepo: candidateRepo,
		validate:      validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, candidateID string) (*domain.CandidateProfile, error) {
	profile, err := u.candidateRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

// CreateProfile is the first write. The profile is locked immediately: it is
// append-only from the very first save.
func (u *profileUsecase) CreateProfile(ctx context.Context, candidateID, email string, in *domain.ProfileUpdate) (*domain.CandidateProfile, error) {
	existing, err := u.candidateRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Profile already exists. Use PUT to update.")
	}

	if err := u.validateInput(in); err != nil {
		return nil, err
	}
	if in.ProfileCountry == "" {
		return nil, apperror.BadRequest("profile_country is required")
	}
	vis, err := validateVisibilityConfig(in.VisibilityConfig)
	if err != nil {
		return nil, err
	}

	years := 0
	if in.ExperienceYears != nil {
		if *in.ExperienceYears < 0 {
			return nil, apperror.BadRequest("experience_years cannot be negative")
		}
		years = *in.ExperienceYears
	}

	profile := &domain.CandidateProfile{
		CandidateID:        candidateID,
		Name:               in.Name,
		Email:              email,
		Phone:              in.Phone,
		CurrentCompany:     in.CurrentCompany,
		CurrentRole:        in.CurrentRole,
		PreferredJobType:   in.PreferredJobType,
		ExpectedHourlyRate: in.ExpectedHourlyRate,
		ExperienceYears:    years,
		Location:           in.Location,
		ProfileCountry:     in.ProfileCountry,
		Bio:                in.Bio,
		ResumeSummary:      in.ResumeSummary,
		ResumeExperience:   in.ResumeExperience,
		ResumeEducation:    in.ResumeEducation,
		ResumeAchievements: in.ResumeAchievements,
		VisibilityConfig:   vis,
		ProfileLocked:      true,
	}
	profile.Skills = matching.ExtractSkills(resumeText(profile))

	if err := u.candidateRepo.Create(ctx, profile); err != nil {
		if err == domain.ErrDuplicateProfile {
			return nil, apperror.Conflict("Profile already exists. Use PUT to update.")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpdateProfile applies the append-only mutation protocol. The read, the
// validation and the replace run against the same document version: the
// repository replace is conditional on the version read here, and a
// concurrent writer forces a full re-read and re-validation.
func (u *profileUsecase) UpdateProfile(ctx context.Context, candidateID, email string, in *domain.ProfileUpdate) (*domain.CandidateProfile, error) {
	if err := u.validateInput(in); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < replaceRetries; attempt++ {
		existing, err := u.candidateRepo.GetByCandidateID(ctx, candidateID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if existing == nil {
			// First persisted write locks, whichever operation it is.
			return u.CreateProfile(ctx, candidateID, email, in)
		}

		var updated *domain.CandidateProfile
		if existing.ProfileLocked {
			updated, err = applyLockedUpdate(existing, in)
		} else {
			updated, err = applyUnlockedOverwrite(existing, in)
		}
		if err != nil {
			return nil, err
		}

		err = u.candidateRepo.ReplaceVersioned(ctx, updated)
		if err == nil {
			return updated, nil
		}
		if err != domain.ErrVersionConflict {
			return nil, apperror.Internal(err)
		}
		// Lost the race; validate again against the new document.
	}
	return nil, apperror.Internal(fmt.Errorf("profile update for %s kept losing version races", candidateID))
}

func (u *profileUsecase) ListPublicProfiles(ctx context.Context) ([]domain.PublicProfile, error) {
	profiles, err := u.candidateRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	out := make([]domain.PublicProfile, 0, len(profiles))
	for i := range profiles {
		out = append(out, profiles[i].Public())
	}
	return out, nil
}

func (u *profileUsecase) validateInput(in *domain.ProfileUpdate) error {
	if in == nil {
		return apperror.BadRequest("request body is required")
	}
	if err := u.validate.Var(in.Phone, "valid_phone"); err != nil {
		return apperror.BadRequest("phone must be a valid phone number")
	}
	if err := u.validate.Var(in.PreferredJobType, "job_type"); err != nil {
		return apperror.BadRequest("preferred_job_type must be one of: " + strings.Join(domain.JobTypes, ", "))
	}
	if in.ExperienceYears != nil && *in.ExperienceYears < 0 {
		return apperror.BadRequest("experience_years cannot be negative")
	}
	return nil
}

// applyUnlockedOverwrite handles the rare path of a profile row that exists
// but was never locked (minimal-creation entry path). Supplied fields fully
// overwrite; the write locks the profile.
func applyUnlockedOverwrite(existing *domain.CandidateProfile, in *domain.ProfileUpdate) (*domain.CandidateProfile, error) {
	updated := *existing
	updated.VisibilityConfig = existing.VisibilityConfig.Clone()

	applyScalars(&updated, in)
	if in.ResumeSummary != "" {
		updated.ResumeSummary = in.ResumeSummary
	}
	if in.ResumeExperience != "" {
		updated.ResumeExperience = in.ResumeExperience
	}
	if in.ResumeEducation != "" {
		updated.ResumeEducation = in.ResumeEducation
	}
	if in.ResumeAchievements != "" {
		updated.ResumeAchievements = in.ResumeAchievements
	}
	if in.ExperienceYears != nil {
		updated.ExperienceYears = *in.ExperienceYears
	}
	if in.VisibilityConfig != nil {
		vis, err := validateVisibilityConfig(in.VisibilityConfig)
		if err != nil {
			return nil, err
		}
		updated.VisibilityConfig = vis
	}
	if updated.ProfileCountry == "" {
		return nil, apperror.BadRequest("profile_country is required")
	}

	updated.Skills = unionSkills(existing.Skills, matching.ExtractSkills(resumeText(&updated)))
	updated.ProfileLocked = true
	return &updated, nil
}

// applyLockedUpdate enforces the append-only protocol: resume text grows by
// suffix-append only, experience never decreases, visibility grants only
// union, skills only accumulate. Any single violation rejects the whole
// update; the stored document stays untouched.
func applyLockedUpdate(existing *domain.CandidateProfile, in *domain.ProfileUpdate) (*domain.CandidateProfile, error) {
	updated := *existing
	updated.VisibilityConfig = existing.VisibilityConfig.Clone()

	resumeFields := []struct {
		name     string
		existing string
		incoming string
		target   *string
	}{
		{"resume_summary", existing.ResumeSummary, in.ResumeSummary, &updated.ResumeSummary},
		{"resume_experience", existing.ResumeExperience, in.ResumeExperience, &updated.ResumeExperience},
		{"resume_education", existing.ResumeEducation, in.ResumeEducation, &updated.ResumeEducation},
		{"resume_achievements", existing.ResumeAchievements, in.ResumeAchievements, &updated.ResumeAchievements},
	}
	for _, f := range resumeFields {
		if f.incoming == "" {
			continue // no change, not "clear"
		}
		if f.existing != "" && !strings.HasPrefix(f.incoming, f.existing) {
			return nil, apperror.BadRequest(f.name + " can only be appended to; the new value must start with the current text")
		}
		*f.target = f.incoming
	}

	if in.ExperienceYears != nil {
		if *in.ExperienceYears < existing.ExperienceYears {
			return nil, apperror.BadRequest(fmt.Sprintf(
				"experience_years cannot decrease (current %d, got %d)",
				existing.ExperienceYears, *in.ExperienceYears))
		}
		updated.ExperienceYears = *in.ExperienceYears
	}

	if in.VisibilityConfig != nil {
		merged, err := mergeVisibility(existing.VisibilityConfig, in.VisibilityConfig)
		if err != nil {
			return nil, err
		}
		updated.VisibilityConfig = merged
	}

	applyScalars(&updated, in)

	updated.Skills = unionSkills(existing.Skills, matching.ExtractSkills(resumeText(&updated)))
	return &updated, nil
}

// applyScalars covers the plain "incoming overrides if present" fields.
func applyScalars(p *domain.CandidateProfile, in *domain.ProfileUpdate) {
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Phone != "" {
		p.Phone = in.Phone
	}
	if in.CurrentCompany != "" {
		p.CurrentCompany = in.CurrentCompany
	}
	if in.CurrentRole != "" {
		p.CurrentRole = in.CurrentRole
	}
	if in.PreferredJobType != "" {
		p.PreferredJobType = in.PreferredJobType
	}
	if in.ExpectedHourlyRate != nil {
		p.ExpectedHourlyRate = in.ExpectedHourlyRate
	}
	if in.Location != "" {
		p.Location = in.Location
	}
	if in.ProfileCountry != "" {
		p.ProfileCountry = in.ProfileCountry
	}
	if in.Bio != "" {
		p.Bio = in.Bio
	}
}

// validateVisibilityConfig rejects unknown job-type keys at the boundary
// instead of propagating them silently.
func validateVisibilityConfig(vis domain.VisibilityConfig) (domain.VisibilityConfig, error) {
	if vis == nil {
		return domain.VisibilityConfig{}, nil
	}
	for key := range vis {
		if !domain.ValidJobType(key) {
			return nil, apperror.BadRequest(fmt.Sprintf("unknown job type %q in visibility_config", key))
		}
	}
	return vis.Clone(), nil
}

// mergeVisibility unions the two configs per job-type key. A grant, once
// present, is never revoked by this merge; a missing key counts as an empty
// set on that side.
func mergeVisibility(existing, incoming domain.VisibilityConfig) (domain.VisibilityConfig, error) {
	validated, err := validateVisibilityConfig(incoming)
	if err != nil {
		return nil, err
	}

	merged := existing.Clone()
	if merged == nil {
		merged = domain.VisibilityConfig{}
	}
	for key, subs := range validated {
		if current, ok := merged[key]; ok {
			merged[key] = unionStrings(current, subs)
		} else {
			merged[key] = subs
		}
	}
	return merged, nil
}

// resumeText concatenates every text-bearing field feeding skill extraction.
func resumeText(p *domain.CandidateProfile) string {
	return strings.Join([]string{
		p.ResumeSummary,
		p.ResumeExperience,
		p.ResumeEducation,
		p.ResumeAchievements,
		p.Bio,
		p.CurrentRole,
	}, "\n")
}

// unionSkills keeps existing skills (and their order) and appends newly
// extracted ones. Skills are never removed by the mutation protocol.
func unionSkills(existing, extracted []string) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, len(existing)+len(extracted))
	for _, s := range existing {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range extracted {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func unionStrings(a, b []string) []string {
	return unionSkills(a, b)
}
