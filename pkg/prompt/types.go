package prompt

// EmailType is one of the marketing email categories the generator supports.
type EmailType string

const (
	TypeWelcome         EmailType = "welcome"
	TypeWelcomeSeries2  EmailType = "welcome_series_2"
	TypeWelcomeSeries3  EmailType = "welcome_series_3"
	TypeAbandonedCart   EmailType = "abandoned_cart"
	TypeAbandonedBrowse EmailType = "abandoned_browse"
	TypePostPurchase    EmailType = "post_purchase"
	TypeReviewRequest   EmailType = "review_request"
	TypePromotion       EmailType = "promotion"
	TypeNewProduct      EmailType = "new_product"
	TypeBackInStock     EmailType = "back_in_stock"
	TypeWinback         EmailType = "winback"
	TypeVIPExclusive    EmailType = "vip_exclusive"
)

// EmailTypes lists all supported email types in display order.
func EmailTypes() []EmailType {
	return []EmailType{
		TypeWelcome,
		TypeWelcomeSeries2,
		TypeWelcomeSeries3,
		TypeAbandonedCart,
		TypeAbandonedBrowse,
		TypePostPurchase,
		TypeReviewRequest,
		TypePromotion,
		TypeNewProduct,
		TypeBackInStock,
		TypeWinback,
		TypeVIPExclusive,
	}
}

// Valid reports whether t is a supported email type.
func (t EmailType) Valid() bool {
	_, ok := emailTypeInstructions[t]
	return ok
}

// Tone adjusts the voice of a single generation without touching the kit.
type Tone string

const (
	ToneDefault     Tone = "default"
	ToneMoreCasual  Tone = "more_casual"
	ToneMoreFormal  Tone = "more_formal"
	ToneMoreUrgent  Tone = "more_urgent"
	ToneMorePlayful Tone = "more_playful"
)

// Valid reports whether t is a known tone.
func (t Tone) Valid() bool {
	switch t {
	case ToneDefault, ToneMoreCasual, ToneMoreFormal, ToneMoreUrgent, ToneMorePlayful:
		return true
	}
	return false
}

// Length selects how much body copy each variation should carry.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Valid reports whether l is a known length.
func (l Length) Valid() bool {
	switch l {
	case LengthShort, LengthMedium, LengthLong:
		return true
	}
	return false
}

// Options carries the per-call generation parameters the prompt reflects.
type Options struct {
	EmailType         EmailType
	SubjectLineCount  int
	VariationCount    int
	AdditionalContext string
	Tone              Tone
	IncludeEmoji      bool
	MaxLength         Length
}
