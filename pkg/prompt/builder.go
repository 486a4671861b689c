package prompt

import (
	"strconv"
	"strings"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/brand"
)

// notSpecified is substituted for any empty or whitespace-only free-text
// field so the model never sees a bare empty tag.
const notSpecified = "Not specified"

// BuildBrandKitContext renders the brand and its kit into a single
// <brand_kit> block with fixed field order. Website and vertical tags are
// omitted entirely when unset; booleans render as "Yes"/"No"; empty free-text
// fields become "Not specified". When entries is non-empty a <knowledge_base>
// block is nested at the end of the brand kit. Entries are assumed already
// filtered to active - that responsibility sits with the orchestrator.
func BuildBrandKitContext(b brand.Brand, kit brand.BrandKit, entries []brand.KnowledgeEntry) string {
	var sb strings.Builder

	sb.WriteString("<brand_kit>\n")
	writeTag(&sb, "brand_name", b.Name)
	if strings.TrimSpace(b.WebsiteURL) != "" {
		writeTag(&sb, "website", b.WebsiteURL)
	}
	if strings.TrimSpace(b.Vertical) != "" {
		writeTag(&sb, "vertical", b.Vertical)
	}

	sb.WriteString("<brand_identity>\n")
	writeTag(&sb, "values_themes", orNotSpecified(kit.Identity.ValuesThemes))
	writeTag(&sb, "brand_story", orNotSpecified(kit.Identity.BrandStory))
	writeTag(&sb, "desired_feeling", orNotSpecified(kit.Identity.DesiredFeeling))
	writeTag(&sb, "cultural_influences", orNotSpecified(kit.Identity.CulturalInfluences))
	sb.WriteString("</brand_identity>\n")

	sb.WriteString("<product_differentiation>\n")
	writeTag(&sb, "unique_aspects", orNotSpecified(kit.Product.UniqueAspects))
	writeTag(&sb, "best_sellers", orNotSpecified(kit.Product.BestSellers))
	writeTag(&sb, "features_to_emphasize", orNotSpecified(kit.Product.FeaturesToEmphasize))
	sb.WriteString("</product_differentiation>\n")

	sb.WriteString("<customer_audience>\n")
	writeTag(&sb, "ideal_customer", orNotSpecified(kit.Audience.IdealCustomer))
	writeTag(&sb, "day_to_day_reality", orNotSpecified(kit.Audience.DayToDayReality))
	writeTag(&sb, "brands_they_buy", orNotSpecified(kit.Audience.BrandsTheyBuy))
	sb.WriteString("</customer_audience>\n")

	sb.WriteString("<brand_voice>\n")
	writeTag(&sb, "voice_description", orNotSpecified(kit.Voice.VoiceDescription))
	writeTag(&sb, "words_to_avoid", orNotSpecified(kit.Voice.WordsToAvoid))
	writeTag(&sb, "reference_brands", orNotSpecified(kit.Voice.ReferenceBrands))
	sb.WriteString("</brand_voice>\n")

	sb.WriteString("<marketing_strategy>\n")
	writeTag(&sb, "competitors", orNotSpecified(kit.Strategy.Competitors))
	writeTag(&sb, "planned_launches", orNotSpecified(kit.Strategy.PlannedLaunches))
	writeTag(&sb, "has_review_platform", yesNo(kit.Strategy.HasReviewPlatform))
	if strings.TrimSpace(kit.Strategy.ReviewPlatform) != "" {
		writeTag(&sb, "review_platform", kit.Strategy.ReviewPlatform)
	}
	writeTag(&sb, "welcome_incentives", orNotSpecified(kit.Strategy.WelcomeIncentives))
	writeTag(&sb, "international_shipping", yesNo(kit.Strategy.InternationalShipping))
	writeTag(&sb, "return_policy", orNotSpecified(kit.Strategy.ReturnPolicy))
	sb.WriteString("</marketing_strategy>\n")

	if kb := BuildKnowledgeBaseContext(entries); kb != "" {
		sb.WriteString(kb)
		sb.WriteString("\n")
	}

	sb.WriteString("</brand_kit>")
	return sb.String()
}

// BuildKnowledgeBaseContext renders knowledge entries grouped by category
// into a <knowledge_base> block. Entries of the same category share one
// contiguous parent tag; category blocks appear in first-seen order among the
// given entries, which keeps output deterministic for a given input order.
// Nil or empty input returns the empty string.
func BuildKnowledgeBaseContext(entries []brand.KnowledgeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	order := make([]brand.Category, 0, len(entries))
	grouped := make(map[brand.Category][]brand.KnowledgeEntry, len(entries))
	for _, e := range entries {
		if _, seen := grouped[e.Category]; !seen {
			order = append(order, e.Category)
		}
		grouped[e.Category] = append(grouped[e.Category], e)
	}

	var sb strings.Builder
	sb.WriteString("<knowledge_base>\n")
	for _, cat := range order {
		sb.WriteString("<" + string(cat) + ">\n")
		for _, e := range grouped[cat] {
			sb.WriteString(`<entry title="` + e.Title + `">`)
			sb.WriteString(e.Content)
			sb.WriteString("</entry>\n")
		}
		sb.WriteString("</" + string(cat) + ">\n")
	}
	sb.WriteString("</knowledge_base>")
	return sb.String()
}

// BuildEmailPrompt assembles the full user prompt for one generation call:
// brand kit context (with knowledge), the email request parameters, per-type
// instructions, conditional tone adjustment, length guideline, emoji
// guidance, and the fixed critical rules and output format blocks.
func BuildEmailPrompt(b brand.Brand, kit brand.BrandKit, opts Options, entries []brand.KnowledgeEntry) string {
	var sb strings.Builder

	sb.WriteString(BuildBrandKitContext(b, kit, entries))
	sb.WriteString("\n\n")

	sb.WriteString("<email_request>\n")
	writeTag(&sb, "email_type", string(opts.EmailType))
	writeTag(&sb, "subject_lines_needed", strconv.Itoa(opts.SubjectLineCount))
	writeTag(&sb, "variations_needed", strconv.Itoa(opts.VariationCount))
	if strings.TrimSpace(opts.AdditionalContext) != "" {
		writeTag(&sb, "additional_context", opts.AdditionalContext)
	}
	sb.WriteString("</email_request>\n\n")

	sb.WriteString("<email_type_instructions>\n")
	sb.WriteString(emailTypeInstructions[opts.EmailType])
	sb.WriteString("\n</email_type_instructions>\n\n")

	if opts.Tone != "" && opts.Tone != ToneDefault {
		sb.WriteString("<tone_adjustment>\n")
		sb.WriteString("Apply a " + toneModifier(opts.Tone) + " tone to everything you write for this email, while keeping the brand voice recognizable.")
		sb.WriteString("\n</tone_adjustment>\n\n")
	}

	sb.WriteString("<length_guideline>\n")
	sb.WriteString(lengthGuideline(opts.MaxLength))
	sb.WriteString("\n</length_guideline>\n\n")

	if opts.IncludeEmoji {
		sb.WriteString(emojiAllowed)
	} else {
		sb.WriteString(emojiNotAllowed)
	}
	sb.WriteString("\n\n")

	sb.WriteString("<critical_rules>\n")
	sb.WriteString(criticalRules)
	sb.WriteString("\n</critical_rules>\n\n")

	sb.WriteString("<output_format>\n")
	sb.WriteString(outputFormat)
	sb.WriteString("\n</output_format>")

	return sb.String()
}

// toneModifier renders a non-default tone as an upper-cased modifier phrase,
// e.g. more_casual -> "MORE CASUAL".
func toneModifier(t Tone) string {
	return strings.ToUpper(strings.ReplaceAll(string(t), "_", " "))
}

func lengthGuideline(l Length) string {
	if g, ok := lengthGuidelines[l]; ok {
		return g
	}
	return lengthGuidelines[LengthMedium]
}

func writeTag(sb *strings.Builder, name, value string) {
	sb.WriteString("<" + name + ">")
	sb.WriteString(value)
	sb.WriteString("</" + name + ">\n")
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
