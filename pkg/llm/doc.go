// Package llm provides a uniform adapter interface over the supported LLM
// providers (Anthropic, OpenAI, DeepSeek). Each adapter accepts a system and
// user prompt, issues exactly one HTTP request to its provider's endpoint,
// and normalizes the reply into a Completion: the structured JSON payload the
// model returned plus token usage and the wire model name.
//
// Providers differ at the wire level - Anthropic's Messages API carries the
// system prompt as a top-level field and returns content blocks, while OpenAI
// and DeepSeek share the Chat Completions shape with JSON mode - but callers
// only see the Adapter interface and the package's sentinel errors.
//
// # Usage
//
//	var creds llm.Credentials
//	config.MustLoad(&creds)
//
//	adapter, err := llm.New(llm.ProviderDeepSeek, creds)
//	if err != nil {
//	    // llm.ErrAPIKeyRequired: key not configured
//	}
//	completion, err := adapter.Complete(ctx, systemPrompt, userPrompt)
//
// Cost accounting uses the static catalog: every provider entry carries its
// per-1K-token input and output prices, so usage can be priced without a
// second API call.
package llm
