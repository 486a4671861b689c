package brand

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the identity of a client brand owned by an organization.
// Identity is immutable; only the name, website and vertical are editable.
type Brand struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	WebsiteURL     string    `json:"website_url,omitempty"`
	Vertical       string    `json:"vertical,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BrandKit holds the structured questionnaire answers for a brand.
// There is exactly one kit per brand, created with all-empty defaults when the
// brand is created. Empty string means "not specified"; the prompt builder
// substitutes a placeholder rather than rendering empty values.
type BrandKit struct {
	BrandID    uuid.UUID              `json:"brand_id"`
	Identity   BrandIdentity          `json:"brand_identity"`
	Product    ProductDifferentiation `json:"product_differentiation"`
	Audience   CustomerAudience       `json:"customer_audience"`
	Voice      BrandVoice             `json:"brand_voice"`
	Strategy   MarketingStrategy      `json:"marketing_strategy"`
	Design     DesignPreferences      `json:"design_preferences"`
	IsComplete bool                   `json:"is_complete"` // flipped only by explicit user action
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// BrandIdentity captures what the brand stands for.
type BrandIdentity struct {
	ValuesThemes       string `json:"values_themes"`
	BrandStory         string `json:"brand_story"`
	DesiredFeeling     string `json:"desired_feeling"`
	CulturalInfluences string `json:"cultural_influences"`
}

// ProductDifferentiation captures what sets the products apart.
type ProductDifferentiation struct {
	UniqueAspects       string `json:"unique_aspects"`
	BestSellers         string `json:"best_sellers"`
	FeaturesToEmphasize string `json:"features_to_emphasize"`
}

// CustomerAudience describes who the brand sells to.
type CustomerAudience struct {
	IdealCustomer   string `json:"ideal_customer"`
	DayToDayReality string `json:"day_to_day_reality"`
	BrandsTheyBuy   string `json:"brands_they_buy"`
}

// BrandVoice describes how the brand speaks.
type BrandVoice struct {
	VoiceDescription string `json:"voice_description"`
	WordsToAvoid     string `json:"words_to_avoid"`
	ReferenceBrands  string `json:"reference_brands"`
}

// MarketingStrategy captures competitive and operational context.
type MarketingStrategy struct {
	Competitors           string `json:"competitors"`
	PlannedLaunches       string `json:"planned_launches"`
	HasReviewPlatform     bool   `json:"has_review_platform"`
	ReviewPlatform        string `json:"review_platform"`
	WelcomeIncentives     string `json:"welcome_incentives"`
	InternationalShipping bool   `json:"international_shipping"`
	ReturnPolicy          string `json:"return_policy"`
}

// DesignPreferences captures visual direction. Not rendered into prompts;
// consumed by the moodboard and template surfaces.
type DesignPreferences struct {
	BrandsLikedVisually string `json:"brands_liked_visually"`
	DesignElements      string `json:"design_elements"`
	MoodboardLink       string `json:"moodboard_link"`
}
