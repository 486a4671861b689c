// Package brand defines the domain model for client brands and the data the
// generation pipeline is grounded on: the brand record itself, its one-to-one
// brand kit questionnaire, free-text knowledge entries, and saved emails.
//
// The types here are plain data shapes with validation and lifecycle rules.
// Persistence is abstracted behind small store interfaces with a Postgres
// implementation; transient generation values live in pkg/generation.
//
// # Basic Usage
//
//	entry := brand.KnowledgeEntry{
//	    BrandID:  brandID,
//	    Category: brand.CategoryProduct,
//	    Title:    "Vitamin C Serum",
//	    Content:  "Our best-selling serum, 20% L-ascorbic acid...",
//	}
//	if err := entry.Validate(); err != nil {
//	    // reject before persisting
//	}
//
// Knowledge entries are never silently removed: they are toggled inactive and
// excluded from prompts, and only deleted by an explicit user action.
package brand
