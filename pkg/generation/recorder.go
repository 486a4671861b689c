package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/llm"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/prompt"
)

// UsageRecord is the generation log entry written after each successful call.
type UsageRecord struct {
	BrandID          uuid.UUID
	OrganizationID   uuid.UUID
	UserID           uuid.UUID
	EmailType        prompt.EmailType
	Provider         llm.Provider
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// UsageRecorder persists generation log entries. Implementations must
// tolerate concurrent calls; the Service swallows any error they return.
type UsageRecorder interface {
	Record(ctx context.Context, rec UsageRecord) error
}

// PGRecorder writes usage records to the generation_logs table.
type PGRecorder struct {
	pool *pgxpool.Pool
}

// NewPGRecorder creates a Postgres-backed usage recorder.
func NewPGRecorder(pool *pgxpool.Pool) (*PGRecorder, error) {
	if pool == nil {
		return nil, errors.New("pgxpool is required")
	}
	return &PGRecorder{pool: pool}, nil
}

func (r *PGRecorder) Record(ctx context.Context, rec UsageRecord) error {
	const query = `
		INSERT INTO generation_logs (
			id, brand_id, organization_id, user_id, email_type,
			provider, model, prompt_tokens, completion_tokens, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`

	_, err := r.pool.Exec(ctx, query,
		uuid.New(), rec.BrandID, rec.OrganizationID, rec.UserID, string(rec.EmailType),
		string(rec.Provider), rec.Model, rec.PromptTokens, rec.CompletionTokens,
	)
	if err != nil {
		return fmt.Errorf("failed to insert generation log: %w", err)
	}
	return nil
}
