package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicatePoke is surfaced when the unique (sender_id, target_id,
// is_email) index rejects an insert: one quick poke and one email poke are
// allowed per sender/target pair, ever.
var ErrDuplicatePoke = errors.New("poke already sent to this target")

const (
	PokeSenderVendor    = "vendor"
	PokeSenderCandidate = "candidate"
)

type PokeRecord struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	SenderEmail    string    `json:"sender_email"`
	SenderType     string    `json:"sender_type"`
	TargetID       string    `json:"target_id"`
	TargetVendorID string    `json:"target_vendor_id"`
	TargetEmail    string    `json:"target_email"`
	TargetName     string    `json:"target_name"`
	Subject        string    `json:"subject"`
	IsEmail        bool      `json:"is_email"`
	JobID          string    `json:"job_id"`
	JobTitle       string    `json:"job_title"`
	CreatedAt      time.Time `json:"created_at"`
}

type PokeRepository interface {
	// Create inserts the record, relying on the unique (sender_id, target_id,
	// is_email) constraint. Returns ErrDuplicatePoke on conflict.
	Create(ctx context.Context, rec *PokeRecord) error
	ListSent(ctx context.Context, senderID string) ([]PokeRecord, error)
	// ListReceived returns pokes aimed at targetID or, for vendors, at any of
	// their jobs via target_vendor_id.
	ListReceived(ctx context.Context, targetID string) ([]PokeRecord, error)
	ListReceivedByVendor(ctx context.Context, vendorID string) ([]PokeRecord, error)
}

// PokeLimiter tracks monthly poke counts per sender. Incr returns the
// post-increment count for (senderID, period); Decr rolls a rejected
// increment back so concurrent senders never lose count accuracy.
type PokeLimiter interface {
	Incr(ctx context.Context, senderID, period string) (int64, error)
	Decr(ctx context.Context, senderID, period string) error
}

type PokeUsecase interface {
	SendPoke(ctx context.Context, sender PokeSender, in *PokeInput) (*PokeRecord, error)
	ListSent(ctx context.Context, senderID string) ([]PokeRecord, error)
	ListReceived(ctx context.Context, userID, userType string) ([]PokeRecord, error)
}

// PokeSender is the authenticated identity sending a poke.
type PokeSender struct {
	UserID   string
	Email    string
	Name     string
	UserType string
	Plan     string
}

// PokeInput describes the poke target and mode.
type PokeInput struct {
	TargetID       string
	TargetVendorID string
	TargetEmail    string
	TargetName     string
	Subject        string
	IsEmail        bool
	JobID          string
	JobTitle       string
}
