package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"matchdb-jobs-service/internal/domain"
)

const pokeColumns = `
	id, sender_id, COALESCE(sender_name, ''), COALESCE(sender_email, ''), sender_type,
	target_id, COALESCE(target_vendor_id, ''), target_email, COALESCE(target_name, ''),
	COALESCE(subject, ''), is_email, COALESCE(job_id, ''), COALESCE(job_title, ''), created_at`

type pokeRepository struct {
	db *pgxpool.Pool
}

func NewPokeRepository(db *pgxpool.Pool) domain.PokeRepository {
	return &pokeRepository{db: db}
}

// Create relies on the unique (sender_id, target_id, is_email) index: one
// quick poke and one email poke per sender/target pair.
func (r *pokeRepository) Create(ctx context.Context, rec *domain.PokeRecord) error {
	rec.ID = uuid.NewString()
	query := `
		INSERT INTO poke_records (
			id, sender_id, sender_name, sender_email, sender_type,
			target_id, target_vendor_id, target_email, target_name,
			subject, is_email, job_id, job_title, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,NOW())
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		rec.ID, rec.SenderID, rec.SenderName, rec.SenderEmail, rec.SenderType,
		rec.TargetID, rec.TargetVendorID, rec.TargetEmail, rec.TargetName,
		rec.Subject, rec.IsEmail, rec.JobID, rec.JobTitle,
	).Scan(&rec.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePoke
		}
		return err
	}
	return nil
}

func (r *pokeRepository) ListSent(ctx context.Context, senderID string) ([]domain.PokeRecord, error) {
	query := `SELECT ` + pokeColumns + ` FROM poke_records WHERE sender_id = $1 ORDER BY created_at DESC`
	return r.queryPokes(ctx, query, senderID)
}

func (r *pokeRepository) ListReceived(ctx context.Context, targetID string) ([]domain.PokeRecord, error) {
	query := `SELECT ` + pokeColumns + ` FROM poke_records WHERE target_id = $1 ORDER BY created_at DESC`
	return r.queryPokes(ctx, query, targetID)
}

func (r *pokeRepository) ListReceivedByVendor(ctx context.Context, vendorID string) ([]domain.PokeRecord, error) {
	query := `SELECT ` + pokeColumns + ` FROM poke_records WHERE target_vendor_id = $1 ORDER BY created_at DESC`
	return r.queryPokes(ctx, query, vendorID)
}

func (r *pokeRepository) queryPokes(ctx context.Context, query string, args ...interface{}) ([]domain.PokeRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []domain.PokeRecord{}
	for rows.Next() {
		var rec domain.PokeRecord
		err := rows.Scan(
			&rec.ID, &rec.SenderID, &rec.SenderName, &rec.SenderEmail, &rec.SenderType,
			&rec.TargetID, &rec.TargetVendorID, &rec.TargetEmail, &rec.TargetName,
			&rec.Subject, &rec.IsEmail, &rec.JobID, &rec.JobTitle, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
