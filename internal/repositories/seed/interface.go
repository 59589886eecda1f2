package seed

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wheelparty/chaoswheel/internal/repositories/seed Repository

import (
	"context"
)

// Repository defines the interface for the private seed commitment record.
// Exactly one record exists per lock cycle; only its hash is ever published.
type Repository interface {
	// UpsertSeed stores the (secret, hash) pair for a room, replacing any
	// previous cycle's record
	UpsertSeed(ctx context.Context, input *UpsertSeedInput) error

	// GetSeed retrieves a room's seed record
	GetSeed(ctx context.Context, input *GetSeedInput) (*Record, error)

	// ClaimReveal atomically claims the reveal for a room. It returns true
	// for exactly one caller per lock cycle; everyone else gets false and
	// must read the already-persisted result instead of recomputing.
	ClaimReveal(ctx context.Context, input *ClaimRevealInput) (bool, error)

	// MarkRevealed records when the seed was revealed
	MarkRevealed(ctx context.Context, input *MarkRevealedInput) error

	// DeleteSeed removes a room's seed record and reveal claim
	DeleteSeed(ctx context.Context, input *DeleteSeedInput) error
}
