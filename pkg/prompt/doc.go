// Package prompt deterministically renders brand context and generation
// options into the system and user prompts sent to an LLM provider.
//
// The user prompt uses a tagged-section format (pseudo-XML) so the model can
// ground its output against supplied facts and a reviewer can audit exactly
// what the model was given. Field order is fixed, empty free-text fields are
// substituted with the literal "Not specified", and booleans render as
// "Yes"/"No" - the same input always produces byte-identical output, which
// keeps prompts reproducible and unit-testable with literal string
// assertions.
//
// All functions here are pure: no I/O, no clock, no randomness.
package prompt
