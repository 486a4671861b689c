package prompt

// SystemPrompt is the fixed persona sent with every generation call.
// It is returned as-is, never templated.
const SystemPrompt = `You are an expert email copywriter who has spent a decade writing high-converting lifecycle emails for DTC ecommerce brands. You write emails that sound like they come from the brand itself, not from an agency. You study the brand voice you are given and match it precisely, and you ground every line in the facts you are supplied - you never invent products, offers, statistics, or claims.`

// emailTypeInstructions maps each supported email type to the fixed guidance
// block injected into the user prompt. The welcome entry doubles as the
// validity table for EmailType.
var emailTypeInstructions = map[EmailType]string{
	TypeWelcome: `This is the FIRST email a new subscriber receives, moments after signing up. Make the brand's first impression count: introduce who the brand is and what it stands for, deliver any welcome incentive clearly, and set expectations for what emails they'll get. Warm, confident, zero hard sell.`,

	TypeWelcomeSeries2: `This is the SECOND email in the welcome series, sent a few days after the first. The subscriber knows who the brand is; now deepen the relationship. Tell the brand story or highlight what makes the products different. One clear next step, still no heavy discounting pressure.`,

	TypeWelcomeSeries3: `This is the THIRD email in the welcome series. The subscriber has seen the introduction and the story; now drive the first purchase. Lead with best sellers or the most-loved product, address the most common hesitation, and restate any welcome incentive before it expires.`,

	TypeAbandonedCart: `The subscriber added items to their cart and left without buying. Remind them what they left behind, remove friction (shipping, returns, guarantees), and give one clear reason to come back now. Helpful, not guilt-tripping.`,

	TypeAbandonedBrowse: `The subscriber viewed products but never added anything to a cart. Softer than an abandoned-cart email: re-surface the category or product they looked at, add context or social proof, and invite them back without assuming intent to buy.`,

	TypePostPurchase: `The subscriber just bought. Thank them genuinely, confirm they made a good choice, and tell them what happens next (shipping, how to use the product, where to get help). This email builds loyalty, not immediate revenue - sell nothing or at most a gentle cross-sell.`,

	TypeReviewRequest: `The order arrived a little while ago. Ask for a review in the brand's voice: make it personal, explain why reviews matter to a brand this size, and make leaving one feel like a 30-second favor. If the brand has a review platform, point there.`,

	TypePromotion: `A promotional email for a sale or offer. Lead with the offer, be specific about what's included and when it ends, and keep urgency honest - no fake countdowns. The brand voice still matters more than the discount.`,

	TypeNewProduct: `Announce a new product launch. Build genuine excitement: what it is, why the brand made it, who it's for, and what makes it different from what's already out there. Early access or launch details if mentioned in the context.`,

	TypeBackInStock: `A previously sold-out product is available again. Short and direct: it's back, here's why people loved it, and it may not stay long if it sold out before. Respect the reader's time.`,

	TypeWinback: `The subscriber hasn't opened, clicked, or bought in months. Acknowledge the absence without guilt, show what's new or improved since they left, and give one compelling reason to come back. This may be the last email they read - make it count.`,

	TypeVIPExclusive: `An email for the brand's best customers. Make them feel like insiders: exclusive access, early availability, or a perk that isn't offered to everyone. Gratitude over salesmanship - they already love the brand.`,
}

// lengthGuidelines maps each length to the guidance text in the prompt.
var lengthGuidelines = map[Length]string{
	LengthShort:  `Keep it CONCISE. A few punchy sentences per variation - subscribers skim, so every word has to earn its place. Cut anything that doesn't move the reader toward the CTA.`,
	LengthMedium: `Standard email length: two to three short paragraphs per variation. Enough room to make the case, short enough to read on a phone in under a minute.`,
	LengthLong:   `An expanded email: three to five paragraphs per variation, with room for storytelling, social proof, and a secondary supporting point before the CTA. Long does not mean padded - every paragraph still needs a job.`,
}

const (
	emojiAllowed    = `You may use emoji in subject lines where they fit the brand voice, at most one per subject line.`
	emojiNotAllowed = `No emoji in subject lines or body copy.`
)

// criticalRules is a fixed block of grounding and quality rules appended to
// every prompt.
const criticalRules = `- NEVER use generic marketing speak ("Don't miss out!", "Act now!", "Limited time only!") unless the brand voice explicitly calls for it.
- Ground every claim in the brand kit and knowledge base above. Never invent products, prices, discounts, statistics, or testimonials.
- Write in the brand voice described above and avoid the words the brand avoids.
- Each subject line must take a genuinely different angle - not rewordings of the same idea.
- Each variation must be a complete, standalone email body, not a fragment.`

// outputFormat pins the exact JSON shape the model must return.
const outputFormat = `Return ONLY a valid JSON object - no markdown fences, no commentary before or after. The object must have exactly this shape:
{
  "subject_lines": [
    {"text": "the subject line", "preview_text": "the preview text"}
  ],
  "variations": [
    {
      "headline": "optional headline",
      "subheader1": "optional first subheader",
      "subheader2": "optional second subheader",
      "body": "the full email body copy",
      "cta": "call to action button text"
    }
  ]
}
Every subject line needs "text"; "preview_text" is strongly encouraged. Every variation needs "body" and at least one CTA field ("cta", "cta1", or "cta2").`
