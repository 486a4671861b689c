package generation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/llm"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/prompt"
)

// Request describes one generation call. It is an ephemeral value, never
// persisted. An empty Provider resolves to llm.DefaultProvider.
type Request struct {
	BrandID           uuid.UUID
	UserID            uuid.UUID
	EmailType         prompt.EmailType
	SubjectLineCount  int
	VariationCount    int
	AdditionalContext string
	Tone              prompt.Tone
	IncludeEmoji      bool
	MaxLength         prompt.Length
	Provider          llm.Provider
}

// Validate checks the request shape. Counts are accepted as any positive
// integer; the UI caps them, the orchestrator does not clamp.
func (r Request) Validate() error {
	if !r.EmailType.Valid() {
		return fmt.Errorf("%w: unknown email type %q", ErrInvalidRequest, r.EmailType)
	}
	if r.SubjectLineCount <= 0 {
		return fmt.Errorf("%w: subject line count must be positive, got %d", ErrInvalidRequest, r.SubjectLineCount)
	}
	if r.VariationCount <= 0 {
		return fmt.Errorf("%w: variation count must be positive, got %d", ErrInvalidRequest, r.VariationCount)
	}
	if r.Tone != "" && !r.Tone.Valid() {
		return fmt.Errorf("%w: unknown tone %q", ErrInvalidRequest, r.Tone)
	}
	if r.MaxLength != "" && !r.MaxLength.Valid() {
		return fmt.Errorf("%w: unknown length %q", ErrInvalidRequest, r.MaxLength)
	}
	if r.Provider != "" && !r.Provider.Valid() {
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidRequest, r.Provider)
	}
	return nil
}

// provider resolves the requested provider, defaulting when unspecified.
func (r Request) provider() llm.Provider {
	if r.Provider == "" {
		return llm.DefaultProvider
	}
	return r.Provider
}

// promptOptions projects the request onto the prompt builder's options.
func (r Request) promptOptions() prompt.Options {
	return prompt.Options{
		EmailType:         r.EmailType,
		SubjectLineCount:  r.SubjectLineCount,
		VariationCount:    r.VariationCount,
		AdditionalContext: r.AdditionalContext,
		Tone:              r.Tone,
		IncludeEmoji:      r.IncludeEmoji,
		MaxLength:         r.MaxLength,
	}
}

// SubjectLine is one generated subject line option.
type SubjectLine struct {
	Text        string `json:"text"`
	PreviewText string `json:"preview_text,omitempty"`
}

// Variation is one full alternate rendering of the email. At least Body and
// one CTA field are always present after schema validation.
type Variation struct {
	ID         uuid.UUID `json:"id"`
	Headline   string    `json:"headline,omitempty"`
	Subheader1 string    `json:"subheader1,omitempty"`
	CTA1       string    `json:"cta1,omitempty"`
	Subheader2 string    `json:"subheader2,omitempty"`
	CTA2       string    `json:"cta2,omitempty"`
	CTA        string    `json:"cta,omitempty"`
	Body       string    `json:"body"`
}

// GeneratedEmail is the orchestrator's output. Subject lines and variations
// keep the provider's order; index 0 is the default selection downstream.
type GeneratedEmail struct {
	EmailType        prompt.EmailType `json:"email_type"`
	SubjectLines     []SubjectLine    `json:"subject_lines"`
	Variations       []Variation      `json:"variations"`
	Provider         llm.Provider     `json:"provider"`
	Model            string           `json:"model"`
	PromptTokens     int              `json:"prompt_tokens"`
	CompletionTokens int              `json:"completion_tokens"`
}

// CostEstimate returns the estimated cost in USD of the call that produced
// the email, based on the provider catalog's per-token pricing.
func CostEstimate(email *GeneratedEmail) (float64, error) {
	info, err := llm.InfoFor(email.Provider)
	if err != nil {
		return 0, err
	}
	return llm.EstimateCost(info, llm.Usage{
		PromptTokens:     email.PromptTokens,
		CompletionTokens: email.CompletionTokens,
	}), nil
}

// llmPayload is the JSON shape the output_format block demands from the
// provider.
type llmPayload struct {
	SubjectLines []struct {
		Text        string `json:"text"`
		PreviewText string `json:"preview_text"`
	} `json:"subject_lines"`
	Variations []struct {
		Headline   string `json:"headline"`
		Subheader1 string `json:"subheader1"`
		CTA1       string `json:"cta1"`
		Subheader2 string `json:"subheader2"`
		CTA2       string `json:"cta2"`
		CTA        string `json:"cta"`
		Body       string `json:"body"`
	} `json:"variations"`
}

// validate enforces the schema before any field is consumed downstream.
func (p llmPayload) validate() error {
	if len(p.SubjectLines) == 0 {
		return fmt.Errorf("%w: missing or empty subject_lines array", ErrInvalidResponse)
	}
	for i, sl := range p.SubjectLines {
		if strings.TrimSpace(sl.Text) == "" {
			return fmt.Errorf("%w: subject line %d has no text", ErrInvalidResponse, i)
		}
	}
	if len(p.Variations) == 0 {
		return fmt.Errorf("%w: missing or empty variations array", ErrInvalidResponse)
	}
	for i, v := range p.Variations {
		if strings.TrimSpace(v.Body) == "" {
			return fmt.Errorf("%w: variation %d has no body", ErrInvalidResponse, i)
		}
		if v.CTA == "" && v.CTA1 == "" && v.CTA2 == "" {
			return fmt.Errorf("%w: variation %d has no call to action", ErrInvalidResponse, i)
		}
	}
	return nil
}
