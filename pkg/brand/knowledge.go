package brand

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies a knowledge entry for prompt grouping.
type Category string

const (
	CategoryProduct        Category = "product"
	CategoryFAQ            Category = "faq"
	CategoryCompetitor     Category = "competitor"
	CategoryPersona        Category = "persona"
	CategoryCampaignResult Category = "campaign_result"
	CategoryGeneral        Category = "general"
)

// Categories lists all valid knowledge categories in display order.
func Categories() []Category {
	return []Category{
		CategoryProduct,
		CategoryFAQ,
		CategoryCompetitor,
		CategoryPersona,
		CategoryCampaignResult,
		CategoryGeneral,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryProduct, CategoryFAQ, CategoryCompetitor,
		CategoryPersona, CategoryCampaignResult, CategoryGeneral:
		return true
	}
	return false
}

// SourceType records how a knowledge entry was produced.
type SourceType string

const (
	SourceManual      SourceType = "manual"
	SourceWebResearch SourceType = "web_research"
)

const (
	// MaxTitleLength limits entry titles before persistence.
	MaxTitleLength = 200
	// MaxContentLength limits entry content before persistence.
	MaxContentLength = 50000
)

// KnowledgeEntry is a free-form grounding fact attached to a brand.
// Inactive entries are kept but excluded from prompt construction.
type KnowledgeEntry struct {
	ID         uuid.UUID  `json:"id"`
	BrandID    uuid.UUID  `json:"brand_id"`
	Category   Category   `json:"category"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	SourceURL  string     `json:"source_url,omitempty"`
	SourceType SourceType `json:"source_type"`
	IsActive   bool       `json:"is_active"`
	CreatedBy  uuid.UUID  `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Validate enforces the persistence invariants: non-empty title and content
// within length limits, and a known category.
func (e KnowledgeEntry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if len(e.Title) > MaxTitleLength {
		return fmt.Errorf("%w: %d characters, max %d", ErrTitleTooLong, len(e.Title), MaxTitleLength)
	}
	if strings.TrimSpace(e.Content) == "" {
		return ErrEmptyContent
	}
	if len(e.Content) > MaxContentLength {
		return fmt.Errorf("%w: %d characters, max %d", ErrContentTooLong, len(e.Content), MaxContentLength)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, e.Category)
	}
	return nil
}

// FilterActive returns only the active entries, preserving input order.
// The orchestrator applies this before handing entries to the prompt builder.
func FilterActive(entries []KnowledgeEntry) []KnowledgeEntry {
	if len(entries) == 0 {
		return nil
	}
	active := make([]KnowledgeEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsActive {
			active = append(active, e)
		}
	}
	if len(active) == 0 {
		return nil
	}
	return active
}
