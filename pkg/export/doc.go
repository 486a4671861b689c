// Package export renders an assembled email into the formats users copy out
// of the product: plain text, a standalone HTML document, and ESP-specific
// markup variants.
//
// Every function here is a deterministic string builder with no network
// access. Body paragraphs are preserved one to one: N blank-line-separated
// paragraphs in means N paragraph elements out, with single newlines inside
// a paragraph rendered as line breaks.
package export
