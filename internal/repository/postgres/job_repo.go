package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"matchdb-jobs-service/internal/domain"
)

const jobColumns = `
	id, title, description, vendor_id, vendor_email,
	COALESCE(recruiter_name, ''), COALESCE(recruiter_phone, ''),
	COALESCE(location, ''), COALESCE(job_country, ''), COALESCE(job_state, ''), COALESCE(job_city, ''),
	job_type, COALESCE(job_sub_type, ''), COALESCE(work_mode, ''),
	salary_min, salary_max, pay_per_hour,
	skills_required, experience_required, is_active, created_at, updated_at`

type jobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	job.ID = uuid.NewString()
	query := `
		INSERT INTO jobs (
			id, title, description, vendor_id, vendor_email,
			recruiter_name, recruiter_phone,
			location, job_country, job_state, job_city,
			job_type, job_sub_type, work_mode,
			salary_min, salary_max, pay_per_hour,
			skills_required, experience_required, is_active,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,NOW(),NOW())
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		job.ID, job.Title, job.Description, job.VendorID, job.VendorEmail,
		job.RecruiterName, job.RecruiterPhone,
		job.Location, job.JobCountry, job.JobState, job.JobCity,
		job.JobType, job.JobSubType, job.WorkMode,
		job.SalaryMin, job.SalaryMax, job.PayPerHour,
		pq.Array(job.SkillsRequired), job.ExperienceRequired, job.IsActive,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) FetchActive(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	where := `WHERE is_active = TRUE`
	args := []interface{}{}
	idx := 1
	if filter.JobType != "" {
		where += fmt.Sprintf(" AND job_type = $%d", idx)
		args = append(args, filter.JobType)
		idx++
	}
	if filter.Country != "" {
		where += fmt.Sprintf(" AND job_country = $%d", idx)
		args = append(args, filter.Country)
		idx++
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM jobs %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, idx, idx+1)
	args = append(args, limit, offset)

	jobs, err := r.queryJobs(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) FetchAllActive(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE is_active = TRUE ORDER BY created_at DESC`
	return r.queryJobs(ctx, query)
}

func (r *jobRepository) FetchByVendor(ctx context.Context, vendorID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE vendor_id = $1 ORDER BY created_at DESC`
	return r.queryJobs(ctx, query, vendorID)
}

func (r *jobRepository) FetchActiveByVendor(ctx context.Context, vendorID, jobID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE vendor_id = $1 AND is_active = TRUE`
	args := []interface{}{vendorID}
	if jobID != "" {
		query += ` AND id = $2`
		args = append(args, jobID)
	}
	query += ` ORDER BY created_at DESC`
	return r.queryJobs(ctx, query, args...)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs SET
			title=$1, description=$2,
			recruiter_name=$3, recruiter_phone=$4,
			location=$5, job_country=$6, job_state=$7, job_city=$8,
			job_type=$9, job_sub_type=$10, work_mode=$11,
			salary_min=$12, salary_max=$13, pay_per_hour=$14,
			skills_required=$15, experience_required=$16,
			updated_at=NOW()
		WHERE id=$17`
	tag, err := r.db.Exec(ctx, query,
		job.Title, job.Description,
		job.RecruiterName, job.RecruiterPhone,
		job.Location, job.JobCountry, job.JobState, job.JobCity,
		job.JobType, job.JobSubType, job.WorkMode,
		job.SalaryMin, job.SalaryMax, job.PayPerHour,
		pq.Array(job.SkillsRequired), job.ExperienceRequired,
		job.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE jobs SET is_active=$1, updated_at=NOW() WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepository) queryJobs(ctx context.Context, query string, args ...interface{}) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	var skills []string
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.VendorID, &j.VendorEmail,
		&j.RecruiterName, &j.RecruiterPhone,
		&j.Location, &j.JobCountry, &j.JobState, &j.JobCity,
		&j.JobType, &j.JobSubType, &j.WorkMode,
		&j.SalaryMin, &j.SalaryMax, &j.PayPerHour,
		pq.Array(&skills), &j.ExperienceRequired, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.SkillsRequired = skills
	return &j, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
