package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/pkg/apperror"
	"matchdb-jobs-service/pkg/email"
	"matchdb-jobs-service/pkg/logger"
)

// PokeEmailSender is the outbound notification dependency; satisfied by
// *email.Sender and mocked in tests.
type PokeEmailSender interface {
	IsConfigured() bool
	SendPoke(to string, data email.PokeEmailData) error
}

type pokeUsecase struct {
	pokeRepo      domain.PokeRepository
	candidateRepo domain.CandidateRepository
	limiter       domain.PokeLimiter
	emailSender   PokeEmailSender
	validate      *validator.Validate
	defaultCap    int
}

func NewPokeUsecase(
	pokeRepo domain.PokeRepository,
	candidateRepo domain.CandidateRepository,
	limiter domain.PokeLimiter,
	emailSender PokeEmailSender,
	validate *validator.Validate,
	defaultCap int,
) domain.PokeUsecase {
	return &pokeUsecase{
		pokeRepo:      pokeRepo,
		candidateRepo: candidateRepo,
		limiter:       limiter,
		emailSender:   emailSender,
		validate:      validate,
		defaultCap:    defaultCap,
	}
}

// SendPoke records a one-time interest notification, enforcing the monthly
// per-sender cap. The cap check is increment-then-inspect: the counter is
// bumped atomically, and if the post-increment value exceeds the cap the
// bump is rolled back before rejecting, so concurrent sends never lose
// count accuracy.
func (u *pokeUsecase) SendPoke(ctx context.Context, sender domain.PokeSender, in *domain.PokeInput) (*domain.PokeRecord, error) {
	if in == nil {
		return nil, apperror.BadRequest("request body is required")
	}
	if in.TargetID == "" {
		return nil, apperror.BadRequest("target_id is required")
	}
	if in.TargetName == "" {
		return nil, apperror.BadRequest("target_name is required")
	}
	if err := u.validate.Var(in.TargetEmail, "required,email"); err != nil {
		return nil, apperror.BadRequest("target_email must be a valid email address")
	}
	if in.Subject == "" {
		return nil, apperror.BadRequest("subject is required")
	}

	period := time.Now().UTC().Format("2006-01")
	cap := domain.PokeCapForPlan(sender.Plan, u.defaultCap)

	counted := false
	if cap > 0 && u.limiter != nil {
		n, err := u.limiter.Incr(ctx, sender.UserID, period)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		counted = true
		if n > int64(cap) {
			u.rollback(ctx, sender.UserID, period)
			return nil, apperror.TooManyRequests("Monthly poke limit reached for your plan")
		}
	}

	rec := &domain.PokeRecord{
		SenderID:       sender.UserID,
		SenderName:     sender.Name,
		SenderEmail:    sender.Email,
		SenderType:     sender.UserType,
		TargetID:       in.TargetID,
		TargetVendorID: in.TargetVendorID,
		TargetEmail:    in.TargetEmail,
		TargetName:     in.TargetName,
		Subject:        in.Subject,
		IsEmail:        in.IsEmail,
		JobID:          in.JobID,
		JobTitle:       in.JobTitle,
	}

	if err := u.pokeRepo.Create(ctx, rec); err != nil {
		if counted {
			u.rollback(ctx, sender.UserID, period)
		}
		if err == domain.ErrDuplicatePoke {
			return nil, apperror.Conflict("You have already poked this target")
		}
		return nil, apperror.Internal(err)
	}

	if in.IsEmail && u.emailSender != nil && u.emailSender.IsConfigured() {
		data := email.PokeEmailData{
			ToName:         in.TargetName,
			FromName:       sender.Name,
			FromEmail:      sender.Email,
			SubjectContext: in.Subject,
		}
		if err := u.emailSender.SendPoke(in.TargetEmail, data); err != nil {
			// The poke is recorded; delivery is best-effort.
			logger.Log.Warn("poke email delivery failed", "target", in.TargetEmail, "error", err)
		}
	}

	return rec, nil
}

func (u *pokeUsecase) rollback(ctx context.Context, senderID, period string) {
	if err := u.limiter.Decr(ctx, senderID, period); err != nil {
		logger.Log.Warn("poke counter rollback failed", "sender", senderID, "period", period, "error", err)
	}
}

func (u *pokeUsecase) ListSent(ctx context.Context, senderID string) ([]domain.PokeRecord, error) {
	recs, err := u.pokeRepo.ListSent(ctx, senderID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return recs, nil
}

// ListReceived resolves the caller's receiving identity: vendors are
// addressed through their jobs (target_vendor_id), candidates through their
// profile id.
func (u *pokeUsecase) ListReceived(ctx context.Context, userID, userType string) ([]domain.PokeRecord, error) {
	if userType == domain.UserTypeVendor {
		recs, err := u.pokeRepo.ListReceivedByVendor(ctx, userID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return recs, nil
	}

	profile, err := u.candidateRepo.GetByCandidateID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return []domain.PokeRecord{}, nil
	}
	recs, err := u.pokeRepo.ListReceived(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return recs, nil
}
