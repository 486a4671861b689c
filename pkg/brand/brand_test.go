package brand_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/brand"
)

func validEntry() brand.KnowledgeEntry {
	return brand.KnowledgeEntry{
		ID:         uuid.New(),
		BrandID:    uuid.New(),
		Category:   brand.CategoryProduct,
		Title:      "Hero moisturizer",
		Content:    "SPF 30, fragrance free, 50ml.",
		SourceType: brand.SourceManual,
		IsActive:   true,
	}
}

func TestKnowledgeEntryValidate(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		assert.NoError(t, validEntry().Validate())
	})

	t.Run("empty title", func(t *testing.T) {
		e := validEntry()
		e.Title = "  "
		assert.ErrorIs(t, e.Validate(), brand.ErrEmptyTitle)
	})

	t.Run("title over limit", func(t *testing.T) {
		e := validEntry()
		e.Title = strings.Repeat("a", brand.MaxTitleLength+1)
		assert.ErrorIs(t, e.Validate(), brand.ErrTitleTooLong)
	})

	t.Run("title at limit", func(t *testing.T) {
		e := validEntry()
		e.Title = strings.Repeat("a", brand.MaxTitleLength)
		assert.NoError(t, e.Validate())
	})

	t.Run("empty content", func(t *testing.T) {
		e := validEntry()
		e.Content = ""
		assert.ErrorIs(t, e.Validate(), brand.ErrEmptyContent)
	})

	t.Run("content over limit", func(t *testing.T) {
		e := validEntry()
		e.Content = strings.Repeat("a", brand.MaxContentLength+1)
		assert.ErrorIs(t, e.Validate(), brand.ErrContentTooLong)
	})

	t.Run("unknown category", func(t *testing.T) {
		e := validEntry()
		e.Category = "press"
		assert.ErrorIs(t, e.Validate(), brand.ErrInvalidCategory)
	})
}

func TestFilterActive(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, brand.FilterActive(nil))
	})

	t.Run("all inactive", func(t *testing.T) {
		e := validEntry()
		e.IsActive = false
		assert.Nil(t, brand.FilterActive([]brand.KnowledgeEntry{e}))
	})

	t.Run("keeps order of active entries", func(t *testing.T) {
		first := validEntry()
		first.Title = "first"
		inactive := validEntry()
		inactive.IsActive = false
		second := validEntry()
		second.Title = "second"

		out := brand.FilterActive([]brand.KnowledgeEntry{first, inactive, second})
		require.Len(t, out, 2)
		assert.Equal(t, "first", out[0].Title)
		assert.Equal(t, "second", out[1].Title)
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("allowed transitions", func(t *testing.T) {
		assert.True(t, brand.StatusDraft.CanTransitionTo(brand.StatusApproved))
		assert.True(t, brand.StatusApproved.CanTransitionTo(brand.StatusExported))
		assert.True(t, brand.StatusApproved.CanTransitionTo(brand.StatusDraft))
	})

	t.Run("forbidden transitions", func(t *testing.T) {
		assert.False(t, brand.StatusDraft.CanTransitionTo(brand.StatusExported))
		assert.False(t, brand.StatusExported.CanTransitionTo(brand.StatusDraft))
		assert.False(t, brand.StatusExported.CanTransitionTo(brand.StatusApproved))
		assert.False(t, brand.StatusDraft.CanTransitionTo(brand.StatusDraft))
	})

	t.Run("transition mutates on success", func(t *testing.T) {
		email := brand.SavedEmail{Status: brand.StatusDraft}
		require.NoError(t, email.Transition(brand.StatusApproved))
		assert.Equal(t, brand.StatusApproved, email.Status)
	})

	t.Run("transition rejects unknown status", func(t *testing.T) {
		email := brand.SavedEmail{Status: brand.StatusDraft}
		assert.ErrorIs(t, email.Transition("archived"), brand.ErrInvalidStatus)
		assert.Equal(t, brand.StatusDraft, email.Status)
	})

	t.Run("transition rejects illegal move", func(t *testing.T) {
		email := brand.SavedEmail{Status: brand.StatusExported}
		assert.ErrorIs(t, email.Transition(brand.StatusDraft), brand.ErrInvalidTransition)
		assert.Equal(t, brand.StatusExported, email.Status)
	})
}

func TestCategories(t *testing.T) {
	cats := brand.Categories()
	require.Len(t, cats, 6)
	for _, c := range cats {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, brand.Category("press").Valid())
}
