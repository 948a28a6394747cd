package domain

import (
	"context"
	"errors"
	"time"
)

// ErrVersionConflict is returned by ReplaceVersioned when the stored document
// changed between read and write. Callers re-read and re-validate.
var ErrVersionConflict = errors.New("profile version conflict")

// ErrDuplicateProfile is surfaced when the unique candidate_id index rejects
// a second profile for the same candidate.
var ErrDuplicateProfile = errors.New("profile already exists")

// VisibilityConfig maps a job type to the subtypes a candidate allows.
// An empty slice under a key allows every subtype of that type. A missing
// key hides the candidate from that job type entirely. An empty map means
// visible everywhere (legacy opt-out default).
type VisibilityConfig map[string][]string

// Clone returns a deep copy so merges never alias stored slices.
func (v VisibilityConfig) Clone() VisibilityConfig {
	if v == nil {
		return nil
	}
	out := make(VisibilityConfig, len(v))
	for k, subs := range v {
		cp := make([]string, len(subs))
		copy(cp, subs)
		out[k] = cp
	}
	return out
}

type CandidateProfile struct {
	ID                 string           `json:"id"`
	CandidateID        string           `json:"candidate_id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	CurrentCompany     string           `json:"current_company"`
	CurrentRole        string           `json:"current_role"`
	PreferredJobType   string           `json:"preferred_job_type"`
	ExpectedHourlyRate *float64         `json:"expected_hourly_rate"`
	ExperienceYears    int              `json:"experience_years"`
	Skills             []string         `json:"skills"`
	Location           string           `json:"location"`
	ProfileCountry     string           `json:"profile_country"`
	Bio                string           `json:"bio"`
	ResumeSummary      string           `json:"resume_summary"`
	ResumeExperience   string           `json:"resume_experience"`
	ResumeEducation    string           `json:"resume_education"`
	ResumeAchievements string           `json:"resume_achievements"`
	VisibilityConfig   VisibilityConfig `json:"visibility_config"`
	ProfileLocked      bool             `json:"profile_locked"`
	Version            int64            `json:"-"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// ProfileUpdate carries incoming profile fields. Empty strings mean "no
// change"; nil pointers mean "not supplied". The mutation protocol in the
// profile usecase decides what each field is allowed to do once the profile
// is locked.
type ProfileUpdate struct {
	Name               string
	Phone              string
	CurrentCompany     string
	CurrentRole        string
	PreferredJobType   string
	ExpectedHourlyRate *float64
	ExperienceYears    *int
	Location           string
	ProfileCountry     string
	Bio                string
	ResumeSummary      string
	ResumeExperience   string
	ResumeEducation    string
	ResumeAchievements string
	VisibilityConfig   VisibilityConfig
}

// PublicProfile is the trimmed candidate view exposed without authentication.
type PublicProfile struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	CurrentRole      string   `json:"current_role"`
	CurrentCompany   string   `json:"current_company"`
	PreferredJobType string   `json:"preferred_job_type"`
	ExperienceYears  int      `json:"experience_years"`
	Skills           []string `json:"skills"`
	Location         string   `json:"location"`
}

// Public trims the profile down to the fields exposed to other parties.
func (p *CandidateProfile) Public() PublicProfile {
	return PublicProfile{
		ID:               p.ID,
		Name:             p.Name,
		CurrentRole:      p.CurrentRole,
		CurrentCompany:   p.CurrentCompany,
		PreferredJobType: p.PreferredJobType,
		ExperienceYears:  p.ExperienceYears,
		Skills:           p.Skills,
		Location:         p.Location,
	}
}

type CandidateRepository interface {
	GetByCandidateID(ctx context.Context, candidateID string) (*CandidateProfile, error)
	Create(ctx context.Context, profile *CandidateProfile) error
	// ReplaceVersioned atomically replaces the full document iff the stored
	// version still equals profile.Version; on success the stored version is
	// bumped. Returns ErrVersionConflict otherwise.
	ReplaceVersioned(ctx context.Context, profile *CandidateProfile) error
	FetchAll(ctx context.Context) ([]CandidateProfile, error)
	// FetchByCountries returns profiles whose country is in the given set.
	FetchByCountries(ctx context.Context, countries []string) ([]CandidateProfile, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, candidateID string) (*CandidateProfile, error)
	CreateProfile(ctx context.Context, candidateID, email string, in *ProfileUpdate) (*CandidateProfile, error)
	UpdateProfile(ctx context.Context, candidateID, email string, in *ProfileUpdate) (*CandidateProfile, error)
	ListPublicProfiles(ctx context.Context) ([]PublicProfile, error)
}
