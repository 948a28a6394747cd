package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"matchdb-jobs-service/internal/domain"
)

const profileColumns = `
	id, candidate_id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(current_company, ''), COALESCE(current_role, ''), COALESCE(preferred_job_type, ''),
	expected_hourly_rate, experience_years, skills,
	COALESCE(location, ''), COALESCE(profile_country, ''), COALESCE(bio, ''),
	COALESCE(resume_summary, ''), COALESCE(resume_experience, ''),
	COALESCE(resume_education, ''), COALESCE(resume_achievements, ''),
	visibility_config, profile_locked, version, created_at, updated_at`

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByCandidateID(ctx context.Context, candidateID string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM candidate_profiles WHERE candidate_id = $1`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, candidateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (r *candidateRepository) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	profile.ID = uuid.NewString()
	profile.Version = 1

	visJSON, err := marshalVisibility(profile.VisibilityConfig)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidate_profiles (
			id, candidate_id, name, email, phone,
			current_company, current_role, preferred_job_type,
			expected_hourly_rate, experience_years, skills,
			location, profile_country, bio,
			resume_summary, resume_experience, resume_education, resume_achievements,
			visibility_config, profile_locked, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,NOW(),NOW())
		RETURNING created_at, updated_at`

	err = r.db.QueryRow(ctx, query,
		profile.ID, profile.CandidateID, profile.Name, profile.Email, profile.Phone,
		profile.CurrentCompany, profile.CurrentRole, profile.PreferredJobType,
		profile.ExpectedHourlyRate, profile.ExperienceYears, pq.Array(profile.Skills),
		profile.Location, profile.ProfileCountry, profile.Bio,
		profile.ResumeSummary, profile.ResumeExperience, profile.ResumeEducation, profile.ResumeAchievements,
		visJSON, profile.ProfileLocked, profile.Version,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateProfile
		}
		return err
	}
	return nil
}

// ReplaceVersioned swaps in the full computed document iff the stored version
// still matches the one the caller read. Readers observe either the fully old
// or fully new document, never an intermediate state.
func (r *candidateRepository) ReplaceVersioned(ctx context.Context, profile *domain.CandidateProfile) error {
	visJSON, err := marshalVisibility(profile.VisibilityConfig)
	if err != nil {
		return err
	}

	query := `
		UPDATE candidate_profiles SET
			name=$1, email=$2, phone=$3,
			current_company=$4, current_role=$5, preferred_job_type=$6,
			expected_hourly_rate=$7, experience_years=$8, skills=$9,
			location=$10, profile_country=$11, bio=$12,
			resume_summary=$13, resume_experience=$14, resume_education=$15, resume_achievements=$16,
			visibility_config=$17, profile_locked=$18,
			version=version+1, updated_at=NOW()
		WHERE candidate_id=$19 AND version=$20`

	tag, err := r.db.Exec(ctx, query,
		profile.Name, profile.Email, profile.Phone,
		profile.CurrentCompany, profile.CurrentRole, profile.PreferredJobType,
		profile.ExpectedHourlyRate, profile.ExperienceYears, pq.Array(profile.Skills),
		profile.Location, profile.ProfileCountry, profile.Bio,
		profile.ResumeSummary, profile.ResumeExperience, profile.ResumeEducation, profile.ResumeAchievements,
		visJSON, profile.ProfileLocked,
		profile.CandidateID, profile.Version,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	profile.Version++
	return nil
}

func (r *candidateRepository) FetchAll(ctx context.Context) ([]domain.CandidateProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM candidate_profiles ORDER BY created_at DESC`
	return r.queryProfiles(ctx, query)
}

func (r *candidateRepository) FetchByCountries(ctx context.Context, countries []string) ([]domain.CandidateProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM candidate_profiles
		WHERE profile_country = ANY($1) ORDER BY created_at DESC`
	return r.queryProfiles(ctx, query, pq.Array(countries))
}

func (r *candidateRepository) queryProfiles(ctx context.Context, query string, args ...interface{}) ([]domain.CandidateProfile, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.CandidateProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func scanProfile(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	var skills []string
	var visJSON []byte

	err := row.Scan(
		&p.ID, &p.CandidateID, &p.Name, &p.Email, &p.Phone,
		&p.CurrentCompany, &p.CurrentRole, &p.PreferredJobType,
		&p.ExpectedHourlyRate, &p.ExperienceYears, pq.Array(&skills),
		&p.Location, &p.ProfileCountry, &p.Bio,
		&p.ResumeSummary, &p.ResumeExperience,
		&p.ResumeEducation, &p.ResumeAchievements,
		&visJSON, &p.ProfileLocked, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Skills = skills

	if len(visJSON) > 0 {
		if err := json.Unmarshal(visJSON, &p.VisibilityConfig); err != nil {
			return nil, fmt.Errorf("decode visibility_config for %s: %w", p.CandidateID, err)
		}
	}
	if p.VisibilityConfig == nil {
		p.VisibilityConfig = domain.VisibilityConfig{}
	}
	return &p, nil
}

func marshalVisibility(vis domain.VisibilityConfig) ([]byte, error) {
	if vis == nil {
		vis = domain.VisibilityConfig{}
	}
	data, err := json.Marshal(vis)
	if err != nil {
		return nil, fmt.Errorf("encode visibility_config: %w", err)
	}
	return data, nil
}
