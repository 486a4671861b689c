package generation_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/brand"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/generation"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/llm"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/prompt"
)

type fakeAdapter struct {
	info       llm.Info
	completion *llm.Completion
	err        error

	lastSystem string
	lastUser   string
	block      bool
}

func (f *fakeAdapter) Complete(ctx context.Context, system, user string) (*llm.Completion, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.block {
		<-ctx.Done()
		return nil, fmt.Errorf("%w: %v", llm.ErrRequestFailed, ctx.Err())
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

func (f *fakeAdapter) Info() llm.Info { return f.info }

func fakeFactory(adapter llm.Adapter) generation.AdapterFactory {
	return func(p llm.Provider, creds llm.Credentials, opts ...llm.Option) (llm.Adapter, error) {
		return adapter, nil
	}
}

type memRecorder struct {
	records []generation.UsageRecord
	err     error
}

func (r *memRecorder) Record(ctx context.Context, rec generation.UsageRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, rec)
	return nil
}

func testCreds() llm.Credentials {
	return llm.Credentials{
		AnthropicAPIKey: "sk-ant-test",
		OpenAIAPIKey:    "sk-test",
		DeepSeekAPIKey:  "sk-ds-test",
	}
}

func testBrand() brand.Brand {
	return brand.Brand{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "TestBrand Co",
		WebsiteURL:     "https://testbrand.com",
		Vertical:       "skincare",
	}
}

func testRequest() generation.Request {
	return generation.Request{
		BrandID:          uuid.New(),
		UserID:           uuid.New(),
		EmailType:        prompt.TypeWelcome,
		SubjectLineCount: 3,
		VariationCount:   2,
		Tone:             prompt.ToneDefault,
		IncludeEmoji:     true,
		MaxLength:        prompt.LengthMedium,
	}
}

func validPayload() json.RawMessage {
	return json.RawMessage(`{
		"subject_lines": [
			{"text": "Welcome to the family", "preview_text": "Your first order awaits"},
			{"text": "You made a great choice"}
		],
		"variations": [
			{"headline": "Welcome!", "body": "First variation body.", "cta": "Shop Now"},
			{"body": "Second variation body.", "cta1": "Browse", "subheader1": "New here?"}
		]
	}`)
}

func TestRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, testRequest().Validate())
	})

	t.Run("unknown email type", func(t *testing.T) {
		req := testRequest()
		req.EmailType = "newsletter"
		assert.ErrorIs(t, req.Validate(), generation.ErrInvalidRequest)
	})

	t.Run("non-positive subject line count", func(t *testing.T) {
		req := testRequest()
		req.SubjectLineCount = 0
		assert.ErrorIs(t, req.Validate(), generation.ErrInvalidRequest)
	})

	t.Run("non-positive variation count", func(t *testing.T) {
		req := testRequest()
		req.VariationCount = -1
		assert.ErrorIs(t, req.Validate(), generation.ErrInvalidRequest)
	})

	t.Run("counts above UI caps are accepted", func(t *testing.T) {
		req := testRequest()
		req.SubjectLineCount = 10
		req.VariationCount = 8
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		req := testRequest()
		req.Provider = "mistral"
		assert.ErrorIs(t, req.Validate(), generation.ErrInvalidRequest)
	})
}

func TestServiceGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("successful generation maps payload in order", func(t *testing.T) {
		adapter := &fakeAdapter{
			completion: &llm.Completion{
				JSON:  validPayload(),
				Model: "deepseek-chat",
				Usage: llm.Usage{PromptTokens: 1500, CompletionTokens: 600},
			},
		}
		svc := generation.New(testCreds(), generation.WithAdapterFactory(fakeFactory(adapter)))

		email, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
		require.NoError(t, err)

		assert.Equal(t, prompt.TypeWelcome, email.EmailType)
		assert.Equal(t, llm.ProviderDeepSeek, email.Provider)
		assert.Equal(t, "deepseek-chat", email.Model)
		assert.Equal(t, 1500, email.PromptTokens)
		assert.Equal(t, 600, email.CompletionTokens)

		require.Len(t, email.SubjectLines, 2)
		assert.Equal(t, "Welcome to the family", email.SubjectLines[0].Text)
		assert.Equal(t, "Your first order awaits", email.SubjectLines[0].PreviewText)
		assert.Equal(t, "You made a great choice", email.SubjectLines[1].Text)

		require.Len(t, email.Variations, 2)
		assert.Equal(t, "Welcome!", email.Variations[0].Headline)
		assert.Equal(t, "First variation body.", email.Variations[0].Body)
		assert.Equal(t, "Shop Now", email.Variations[0].CTA)
		assert.Equal(t, "Second variation body.", email.Variations[1].Body)
		assert.Equal(t, "Browse", email.Variations[1].CTA1)
		assert.NotEqual(t, uuid.Nil, email.Variations[0].ID)
		assert.NotEqual(t, email.Variations[0].ID, email.Variations[1].ID)
	})

	t.Run("sends system prompt and brand context to adapter", func(t *testing.T) {
		adapter := &fakeAdapter{
			completion: &llm.Completion{JSON: validPayload()},
		}
		svc := generation.New(testCreds(), generation.WithAdapterFactory(fakeFactory(adapter)))

		_, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
		require.NoError(t, err)

		assert.Equal(t, prompt.SystemPrompt, adapter.lastSystem)
		assert.Contains(t, adapter.lastUser, "<brand_name>TestBrand Co</brand_name>")
		assert.Contains(t, adapter.lastUser, "<email_type>welcome</email_type>")
	})

	t.Run("filters inactive knowledge entries", func(t *testing.T) {
		adapter := &fakeAdapter{
			completion: &llm.Completion{JSON: validPayload()},
		}
		svc := generation.New(testCreds(), generation.WithAdapterFactory(fakeFactory(adapter)))

		b := testBrand()
		entries := []brand.KnowledgeEntry{
			{BrandID: b.ID, Category: brand.CategoryProduct, Title: "Active fact", Content: "shown", IsActive: true},
			{BrandID: b.ID, Category: brand.CategoryFAQ, Title: "Inactive fact", Content: "hidden", IsActive: false},
		}

		_, err := svc.Generate(ctx, b, brand.BrandKit{}, testRequest(), entries)
		require.NoError(t, err)

		assert.Contains(t, adapter.lastUser, `title="Active fact"`)
		assert.NotContains(t, adapter.lastUser, "Inactive fact")
	})

	t.Run("invalid request short-circuits before adapter", func(t *testing.T) {
		adapter := &fakeAdapter{}
		svc := generation.New(testCreds(), generation.WithAdapterFactory(fakeFactory(adapter)))

		req := testRequest()
		req.EmailType = "spam"
		_, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, req, nil)
		assert.ErrorIs(t, err, generation.ErrInvalidRequest)
		assert.Empty(t, adapter.lastUser)
	})

	t.Run("missing key fails fast without fallback", func(t *testing.T) {
		svc := generation.New(llm.Credentials{DeepSeekAPIKey: "sk-ds"})

		req := testRequest()
		req.Provider = llm.ProviderAnthropic
		_, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, req, nil)
		assert.ErrorIs(t, err, generation.ErrProviderNotConfigured)
	})

	t.Run("empty provider defaults to deepseek", func(t *testing.T) {
		var resolved llm.Provider
		adapter := &fakeAdapter{completion: &llm.Completion{JSON: validPayload()}}
		svc := generation.New(testCreds(), generation.WithAdapterFactory(
			func(p llm.Provider, creds llm.Credentials, opts ...llm.Option) (llm.Adapter, error) {
				resolved = p
				return adapter, nil
			},
		))

		email, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
		require.NoError(t, err)
		assert.Equal(t, llm.DefaultProvider, resolved)
		assert.Equal(t, llm.ProviderDeepSeek, email.Provider)
	})

	t.Run("malformed adapter payload is invalid response", func(t *testing.T) {
		adapter := &fakeAdapter{err: fmt.Errorf("%w: not JSON", llm.ErrMalformedResponse)}
		svc := generation.New(testCreds(), generation.WithAdapterFactory(fakeFactory(adapter)))

		_, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("empty completion is invalid response", func(t *testing.T) {
		adapter := &fakeAdapter{err: llm.ErrEmptyCompletion}
		svc := generation.New(testCreds(), generation.WithAdapterFactory(fakeFactory(adapter)))

		_, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("upstream failure is request failed", func(t *testing.T) {
		adapter := &fakeAdapter{err: fmt.Errorf("%w: rate limited", llm.ErrRequestFailed)}
		svc := generation.New(testCreds(), generation.WithAdapterFactory(fakeFactory(adapter)))

		_, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
		assert.ErrorIs(t, err, generation.ErrRequestFailed)
	})

	t.Run("deadline maps to timeout", func(t *testing.T) {
		adapter := &fakeAdapter{block: true}
		svc := generation.New(testCreds(),
			generation.WithAdapterFactory(fakeFactory(adapter)),
			generation.WithTimeout(20*time.Millisecond),
		)

		_, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
		assert.ErrorIs(t, err, generation.ErrTimeout)
	})

	t.Run("schema violations", func(t *testing.T) {
		for name, payload := range map[string]string{
			"missing subject_lines":   `{"variations":[{"body":"b","cta":"c"}]}`,
			"empty subject_lines":     `{"subject_lines":[],"variations":[{"body":"b","cta":"c"}]}`,
			"blank subject line text": `{"subject_lines":[{"text":"  "}],"variations":[{"body":"b","cta":"c"}]}`,
			"missing variations":      `{"subject_lines":[{"text":"s"}]}`,
			"variation without body":  `{"subject_lines":[{"text":"s"}],"variations":[{"cta":"c"}]}`,
			"variation without CTA":   `{"subject_lines":[{"text":"s"}],"variations":[{"body":"b"}]}`,
			"wrong field types":       `{"subject_lines":"oops","variations":[]}`,
		} {
			t.Run(name, func(t *testing.T) {
				adapter := &fakeAdapter{completion: &llm.Completion{JSON: json.RawMessage(payload)}}
				svc := generation.New(testCreds(), generation.WithAdapterFactory(fakeFactory(adapter)))

				email, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
				assert.ErrorIs(t, err, generation.ErrInvalidResponse)
				assert.Nil(t, email)
			})
		}
	})
}

func TestServiceRecorder(t *testing.T) {
	ctx := context.Background()

	t.Run("usage recorded after success", func(t *testing.T) {
		rec := &memRecorder{}
		adapter := &fakeAdapter{
			completion: &llm.Completion{
				JSON:  validPayload(),
				Model: "deepseek-chat",
				Usage: llm.Usage{PromptTokens: 100, CompletionTokens: 50},
			},
		}
		svc := generation.New(testCreds(),
			generation.WithAdapterFactory(fakeFactory(adapter)),
			generation.WithRecorder(rec),
		)

		b := testBrand()
		req := testRequest()
		_, err := svc.Generate(ctx, b, brand.BrandKit{}, req, nil)
		require.NoError(t, err)

		require.Len(t, rec.records, 1)
		assert.Equal(t, b.ID, rec.records[0].BrandID)
		assert.Equal(t, b.OrganizationID, rec.records[0].OrganizationID)
		assert.Equal(t, req.UserID, rec.records[0].UserID)
		assert.Equal(t, prompt.TypeWelcome, rec.records[0].EmailType)
		assert.Equal(t, llm.ProviderDeepSeek, rec.records[0].Provider)
		assert.Equal(t, "deepseek-chat", rec.records[0].Model)
		assert.Equal(t, 100, rec.records[0].PromptTokens)
		assert.Equal(t, 50, rec.records[0].CompletionTokens)
	})

	t.Run("recorder failure never fails generation", func(t *testing.T) {
		rec := &memRecorder{err: errors.New("connection refused")}
		adapter := &fakeAdapter{completion: &llm.Completion{JSON: validPayload()}}
		svc := generation.New(testCreds(),
			generation.WithAdapterFactory(fakeFactory(adapter)),
			generation.WithRecorder(rec),
		)

		email, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
		require.NoError(t, err)
		assert.NotNil(t, email)
	})

	t.Run("nothing recorded on failure", func(t *testing.T) {
		rec := &memRecorder{}
		adapter := &fakeAdapter{err: llm.ErrEmptyCompletion}
		svc := generation.New(testCreds(),
			generation.WithAdapterFactory(fakeFactory(adapter)),
			generation.WithRecorder(rec),
		)

		_, err := svc.Generate(ctx, testBrand(), brand.BrandKit{}, testRequest(), nil)
		require.Error(t, err)
		assert.Empty(t, rec.records)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, generation.IsRetryable(generation.ErrRequestFailed))
	assert.True(t, generation.IsRetryable(generation.ErrTimeout))
	assert.True(t, generation.IsRetryable(generation.ErrInvalidResponse))
	assert.True(t, generation.IsRetryable(fmt.Errorf("%w: wrapped", generation.ErrTimeout)))
	assert.False(t, generation.IsRetryable(generation.ErrInvalidRequest))
	assert.False(t, generation.IsRetryable(generation.ErrProviderNotConfigured))
	assert.False(t, generation.IsRetryable(errors.New("something else")))
}

func TestCostEstimate(t *testing.T) {
	email := &generation.GeneratedEmail{
		Provider:         llm.ProviderDeepSeek,
		PromptTokens:     1000,
		CompletionTokens: 1000,
	}

	cost, err := generation.CostEstimate(email)
	require.NoError(t, err)
	assert.InDelta(t, 0.00042, cost, 1e-9)

	email.Provider = "mistral"
	_, err = generation.CostEstimate(email)
	assert.ErrorIs(t, err, llm.ErrUnknownProvider)
}
