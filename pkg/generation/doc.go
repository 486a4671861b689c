// Package generation orchestrates a single email generation call: it
// validates the request, renders the prompt from the brand context, invokes
// the selected LLM provider adapter, validates the returned JSON shape, and
// maps it into a GeneratedEmail.
//
// Every invocation is a pure function of its explicit inputs plus the
// credentials the Service was constructed with. No state is retained between
// calls, so concurrent generations for different brands are independent.
//
// Usage:
//
//	svc := generation.New(creds,
//		generation.WithTimeout(45*time.Second),
//		generation.WithRecorder(recorder),
//	)
//
//	email, err := svc.Generate(ctx, b, kit, generation.Request{
//		BrandID:          b.ID,
//		EmailType:        prompt.TypeWelcome,
//		SubjectLineCount: 3,
//		VariationCount:   2,
//		MaxLength:        prompt.LengthMedium,
//	}, entries)
//
// Errors carry a typed taxonomy (ErrInvalidRequest, ErrProviderNotConfigured,
// ErrRequestFailed, ErrTimeout, ErrInvalidResponse); IsRetryable reports
// whether a manual retry of the same request can plausibly succeed.
package generation
