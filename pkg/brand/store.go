package brand

import (
	"context"

	"github.com/google/uuid"
)

// BrandStore loads and updates brand records.
type BrandStore interface {
	// GetBrand retrieves a brand by ID. Returns ErrBrandNotFound if missing.
	GetBrand(ctx context.Context, id uuid.UUID) (*Brand, error)

	// GetBrandKit retrieves the kit for a brand. Returns ErrKitNotFound if
	// the kit row is missing (kits are created with the brand, so this
	// indicates data corruption rather than a normal state).
	GetBrandKit(ctx context.Context, brandID uuid.UUID) (*BrandKit, error)

	// SaveBrandKit upserts the kit for its brand.
	SaveBrandKit(ctx context.Context, kit *BrandKit) error
}

// KnowledgeStore manages knowledge entries for a brand.
type KnowledgeStore interface {
	// ListEntries returns all entries for a brand, active and inactive,
	// oldest first.
	ListEntries(ctx context.Context, brandID uuid.UUID) ([]KnowledgeEntry, error)

	// CreateEntry persists a validated entry.
	CreateEntry(ctx context.Context, entry *KnowledgeEntry) error

	// SetEntryActive toggles an entry in or out of prompt construction.
	SetEntryActive(ctx context.Context, id uuid.UUID, active bool) error

	// DeleteEntry removes an entry. Explicit action only; toggling inactive
	// is the default lifecycle.
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// SavedEmailStore persists chosen generation results.
type SavedEmailStore interface {
	// CreateSavedEmail persists a saved email in draft status.
	CreateSavedEmail(ctx context.Context, email *SavedEmail) error

	// UpdateStatus applies a workflow transition, enforcing the same rules
	// as SavedEmail.Transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, next Status) error

	// ListSavedEmails returns saved emails for a brand, newest first.
	ListSavedEmails(ctx context.Context, brandID uuid.UUID) ([]SavedEmail, error)
}
