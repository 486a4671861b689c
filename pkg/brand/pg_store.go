package brand

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/pg"
)

// PGStore implements BrandStore, KnowledgeStore and SavedEmailStore on a
// pgx connection pool.
type PGStore struct {
	db *pgxpool.Pool
}

// NewPGStore creates a Postgres-backed store.
func NewPGStore(db *pgxpool.Pool) (*PGStore, error) {
	if db == nil {
		return nil, errors.New("pgx pool cannot be nil")
	}
	return &PGStore{db: db}, nil
}

func (s *PGStore) GetBrand(ctx context.Context, id uuid.UUID) (*Brand, error) {
	const q = `
		SELECT id, organization_id, name, COALESCE(website_url, ''), COALESCE(vertical, ''), created_at, updated_at
		FROM brands WHERE id = $1`

	var b Brand
	err := s.db.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.OrganizationID, &b.Name, &b.WebsiteURL, &b.Vertical, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrBrandNotFound, id)
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

func (s *PGStore) GetBrandKit(ctx context.Context, brandID uuid.UUID) (*BrandKit, error) {
	const q = `
		SELECT brand_id, brand_identity, product_differentiation, customer_audience,
		       brand_voice, marketing_strategy, design_preferences, is_complete, created_at, updated_at
		FROM brand_kits WHERE brand_id = $1`

	var (
		kit      BrandKit
		sections [6][]byte
	)
	err := s.db.QueryRow(ctx, q, brandID).Scan(
		&kit.BrandID,
		&sections[0], &sections[1], &sections[2], &sections[3], &sections[4], &sections[5],
		&kit.IsComplete, &kit.CreatedAt, &kit.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: brand %s", ErrKitNotFound, brandID)
		}
		return nil, fmt.Errorf("get brand kit: %w", err)
	}

	targets := []any{&kit.Identity, &kit.Product, &kit.Audience, &kit.Voice, &kit.Strategy, &kit.Design}
	for i, raw := range sections {
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, targets[i]); err != nil {
			return nil, fmt.Errorf("decode brand kit section: %w", err)
		}
	}
	return &kit, nil
}

func (s *PGStore) SaveBrandKit(ctx context.Context, kit *BrandKit) error {
	sections := make([][]byte, 0, 6)
	for _, v := range []any{kit.Identity, kit.Product, kit.Audience, kit.Voice, kit.Strategy, kit.Design} {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode brand kit section: %w", err)
		}
		sections = append(sections, raw)
	}

	const q = `
		INSERT INTO brand_kits (brand_id, brand_identity, product_differentiation, customer_audience,
		                        brand_voice, marketing_strategy, design_preferences, is_complete, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		ON CONFLICT (brand_id) DO UPDATE SET
			brand_identity = EXCLUDED.brand_identity,
			product_differentiation = EXCLUDED.product_differentiation,
			customer_audience = EXCLUDED.customer_audience,
			brand_voice = EXCLUDED.brand_voice,
			marketing_strategy = EXCLUDED.marketing_strategy,
			design_preferences = EXCLUDED.design_preferences,
			is_complete = EXCLUDED.is_complete,
			updated_at = now()`

	_, err := s.db.Exec(ctx, q, kit.BrandID,
		sections[0], sections[1], sections[2], sections[3], sections[4], sections[5], kit.IsComplete)
	if err != nil {
		return fmt.Errorf("save brand kit: %w", err)
	}
	return nil
}

func (s *PGStore) ListEntries(ctx context.Context, brandID uuid.UUID) ([]KnowledgeEntry, error) {
	const q = `
		SELECT id, brand_id, category, title, content, COALESCE(source_url, ''), source_type,
		       is_active, created_by, created_at, updated_at
		FROM knowledge_entries WHERE brand_id = $1 ORDER BY created_at ASC`

	rows, err := s.db.Query(ctx, q, brandID)
	if err != nil {
		return nil, fmt.Errorf("list knowledge entries: %w", err)
	}
	defer rows.Close()

	var entries []KnowledgeEntry
	for rows.Next() {
		var e KnowledgeEntry
		if err := rows.Scan(
			&e.ID, &e.BrandID, &e.Category, &e.Title, &e.Content, &e.SourceURL, &e.SourceType,
			&e.IsActive, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan knowledge entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list knowledge entries: %w", err)
	}
	return entries, nil
}

func (s *PGStore) CreateEntry(ctx context.Context, entry *KnowledgeEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	const q = `
		INSERT INTO knowledge_entries (id, brand_id, category, title, content, source_url, source_type,
		                               is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11)`

	_, err := s.db.Exec(ctx, q, entry.ID, entry.BrandID, entry.Category, entry.Title, entry.Content,
		entry.SourceURL, entry.SourceType, entry.IsActive, entry.CreatedBy, entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create knowledge entry: %w", err)
	}
	return nil
}

func (s *PGStore) SetEntryActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE knowledge_entries SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set knowledge entry active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return nil
}

func (s *PGStore) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM knowledge_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete knowledge entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return nil
}

func (s *PGStore) CreateSavedEmail(ctx context.Context, email *SavedEmail) error {
	if email.ID == uuid.Nil {
		email.ID = uuid.New()
	}
	if email.Status == "" {
		email.Status = StatusDraft
	}
	if !email.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, email.Status)
	}
	now := time.Now().UTC()
	email.CreatedAt = now
	email.UpdatedAt = now

	const q = `
		INSERT INTO saved_emails (id, brand_id, email_type, subject_line, preview_text, headline,
		                          body, cta, status, model, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, NULLIF($8, ''), $9, NULLIF($10, ''), $11, $12, $13)`

	_, err := s.db.Exec(ctx, q, email.ID, email.BrandID, email.EmailType, email.SubjectLine,
		email.PreviewText, email.Headline, email.Body, email.CTA, email.Status, email.Model,
		email.CreatedBy, email.CreatedAt, email.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create saved email: %w", err)
	}
	return nil
}

// UpdateStatus reads the current status under a row lock so concurrent
// transitions cannot skip a workflow step.
func (s *PGStore) UpdateStatus(ctx context.Context, id uuid.UUID, next Status) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin status update: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current Status
	err = tx.QueryRow(ctx, `SELECT status FROM saved_emails WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrEmailNotFound, id)
		}
		return fmt.Errorf("load saved email status: %w", err)
	}
	if !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE saved_emails SET status = $2, updated_at = now() WHERE id = $1`, id, next); err != nil {
		return fmt.Errorf("update saved email status: %w", err)
	}
	return tx.Commit(ctx)
}

func (s *PGStore) ListSavedEmails(ctx context.Context, brandID uuid.UUID) ([]SavedEmail, error) {
	const q = `
		SELECT id, brand_id, email_type, subject_line, COALESCE(preview_text, ''), COALESCE(headline, ''),
		       body, COALESCE(cta, ''), status, COALESCE(model, ''), created_by, created_at, updated_at
		FROM saved_emails WHERE brand_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q, brandID)
	if err != nil {
		return nil, fmt.Errorf("list saved emails: %w", err)
	}
	defer rows.Close()

	var emails []SavedEmail
	for rows.Next() {
		var e SavedEmail
		if err := rows.Scan(
			&e.ID, &e.BrandID, &e.EmailType, &e.SubjectLine, &e.PreviewText, &e.Headline,
			&e.Body, &e.CTA, &e.Status, &e.Model, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan saved email: %w", err)
		}
		emails = append(emails, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saved emails: %w", err)
	}
	return emails, nil
}
