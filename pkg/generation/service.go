package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/brand"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/llm"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/prompt"
)

const defaultTimeout = 60 * time.Second

// AdapterFactory resolves a provider to a ready adapter. The default is
// llm.New; tests substitute fakes through WithAdapterFactory.
type AdapterFactory func(p llm.Provider, creds llm.Credentials, opts ...llm.Option) (llm.Adapter, error)

// Service runs generation calls against the configured credentials. Safe for
// concurrent use; it holds no per-call state.
type Service struct {
	creds       llm.Credentials
	timeout     time.Duration
	recorder    UsageRecorder
	log         *slog.Logger
	newAdapter  AdapterFactory
	adapterOpts []llm.Option
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTimeout sets the per-call deadline applied to the provider request.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRecorder sets the best-effort usage recorder.
func WithRecorder(r UsageRecorder) ServiceOption {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the logger used for recorder failures.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithAdapterFactory replaces provider adapter construction.
func WithAdapterFactory(f AdapterFactory) ServiceOption {
	return func(s *Service) {
		if f != nil {
			s.newAdapter = f
		}
	}
}

// WithAdapterOptions appends options passed to every adapter construction,
// such as llm.WithMaxTokens or a custom HTTP client.
func WithAdapterOptions(opts ...llm.Option) ServiceOption {
	return func(s *Service) { s.adapterOpts = append(s.adapterOpts, opts...) }
}

// New creates a Service bound to the given provider credentials. Credentials
// are threaded in explicitly so multi-tenant callers can isolate keys per
// organization instead of reading ambient environment state at call time.
func New(creds llm.Credentials, opts ...ServiceOption) *Service {
	s := &Service{
		creds:      creds,
		timeout:    defaultTimeout,
		log:        slog.Default(),
		newAdapter: llm.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs one generation call end to end. Only active knowledge
// entries are folded into the prompt; filtering happens here, not in the
// prompt builder. The returned email preserves the provider's subject line
// and variation order.
func (s *Service) Generate(ctx context.Context, b brand.Brand, kit brand.BrandKit, req Request, entries []brand.KnowledgeEntry) (*GeneratedEmail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	provider := req.provider()
	if !s.creds.Configured(provider) {
		return nil, fmt.Errorf("%w: %s has no API key", ErrProviderNotConfigured, provider)
	}

	adapter, err := s.newAdapter(provider, s.creds, s.adapterOpts...)
	if err != nil {
		if errors.Is(err, llm.ErrAPIKeyRequired) {
			return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, provider)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	active := brand.FilterActive(entries)
	userPrompt := prompt.BuildEmailPrompt(b, kit, req.promptOptions(), active)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	completion, err := adapter.Complete(callCtx, prompt.SystemPrompt, userPrompt)
	if err != nil {
		return nil, classify(callCtx, err)
	}

	var payload llmPayload
	if err := json.Unmarshal(completion.JSON, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	email := &GeneratedEmail{
		EmailType:        req.EmailType,
		SubjectLines:     make([]SubjectLine, 0, len(payload.SubjectLines)),
		Variations:       make([]Variation, 0, len(payload.Variations)),
		Provider:         provider,
		Model:            completion.Model,
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
	}
	for _, sl := range payload.SubjectLines {
		email.SubjectLines = append(email.SubjectLines, SubjectLine{
			Text:        sl.Text,
			PreviewText: sl.PreviewText,
		})
	}
	for _, v := range payload.Variations {
		email.Variations = append(email.Variations, Variation{
			ID:         uuid.New(),
			Headline:   v.Headline,
			Subheader1: v.Subheader1,
			CTA1:       v.CTA1,
			Subheader2: v.Subheader2,
			CTA2:       v.CTA2,
			CTA:        v.CTA,
			Body:       v.Body,
		})
	}

	s.record(ctx, b, req, email)

	return email, nil
}

// record writes the usage log entry. Failure here must never fail the
// generation, so errors are logged and swallowed.
func (s *Service) record(ctx context.Context, b brand.Brand, req Request, email *GeneratedEmail) {
	if s.recorder == nil {
		return
	}

	rec := UsageRecord{
		BrandID:          b.ID,
		OrganizationID:   b.OrganizationID,
		UserID:           req.UserID,
		EmailType:        req.EmailType,
		Provider:         email.Provider,
		Model:            email.Model,
		PromptTokens:     email.PromptTokens,
		CompletionTokens: email.CompletionTokens,
	}
	if err := s.recorder.Record(context.WithoutCancel(ctx), rec); err != nil {
		s.log.ErrorContext(ctx, "failed to record generation usage",
			slog.String("brand_id", b.ID.String()),
			slog.String("provider", string(email.Provider)),
			slog.Any("error", err),
		)
	}
}

// classify maps adapter errors onto the orchestrator taxonomy.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(err, llm.ErrMalformedResponse) || errors.Is(err, llm.ErrEmptyCompletion):
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	case errors.Is(err, llm.ErrRequestFailed):
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	default:
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
}
