package export

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

// ErrUnknownFormat means the requested ESP format id is not registered.
var ErrUnknownFormat = errors.New("unknown export format")

// Format describes one ESP export target shown in the format picker.
type Format struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

const (
	FormatKlaviyo   = "klaviyo"
	FormatMailchimp = "mailchimp"
	FormatGeneric   = "generic"
)

var formats = []Format{
	{
		ID:          FormatKlaviyo,
		Name:        "Klaviyo",
		Icon:        "klaviyo",
		Description: "HTML block ready to paste into a Klaviyo template, with a first-name greeting tag.",
	},
	{
		ID:          FormatMailchimp,
		Name:        "Mailchimp",
		Icon:        "mailchimp",
		Description: "HTML block with Mailchimp merge tags and editable content regions.",
	},
	{
		ID:          FormatGeneric,
		Name:        "Generic HTML",
		Icon:        "code",
		Description: "A complete standalone HTML email document for any other platform.",
	},
}

// Formats lists the available export formats in display order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Options carries the shared context every ESP template renders with.
type Options struct {
	BrandName string
	EmailType string
}

// AsESP renders the email in the markup dialect of the given format id.
func AsESP(formatID string, email Email, opts Options) (string, error) {
	switch formatID {
	case FormatKlaviyo:
		return asKlaviyo(email, opts), nil
	case FormatMailchimp:
		return asMailchimp(email, opts), nil
	case FormatGeneric:
		return AsHTML(email), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, formatID)
	}
}

// asKlaviyo emits an HTML fragment for pasting into a Klaviyo text block:
// no document wrapper, Klaviyo personalization tags, table-based CTA.
func asKlaviyo(email Email, opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<!-- %s / %s (Klaviyo) -->\n", html.EscapeString(opts.BrandName), html.EscapeString(opts.EmailType))
	fmt.Fprintf(&sb, "<!-- Subject: %s -->\n", html.EscapeString(email.SubjectLine))
	if strings.TrimSpace(email.PreviewText) != "" {
		fmt.Fprintf(&sb, "<!-- Preview text: %s -->\n", html.EscapeString(email.PreviewText))
	}

	if strings.TrimSpace(email.Headline) != "" {
		sb.WriteString("<h1>" + html.EscapeString(email.Headline) + "</h1>\n")
	}
	sb.WriteString("<p>Hi {{ first_name|default:'there' }},</p>\n")
	for _, p := range Paragraphs(email.Body) {
		sb.WriteString("<p>" + paragraphHTML(p) + "</p>\n")
	}
	if email.CTA != "" {
		sb.WriteString("<table role=\"presentation\" border=\"0\" cellpadding=\"0\" cellspacing=\"0\"><tr>")
		sb.WriteString("<td style=\"padding: 12px 32px; background-color: #1a1a1a; border-radius: 4px;\">")
		sb.WriteString("<a href=\"#\" style=\"color: #ffffff; text-decoration: none; font-weight: bold;\">")
		sb.WriteString(html.EscapeString(email.CTA))
		sb.WriteString("</a></td></tr></table>\n")
	}
	return sb.String()
}

// asMailchimp emits an HTML fragment with Mailchimp merge tags and mc:edit
// regions so the pasted content stays editable in the campaign builder.
func asMailchimp(email Email, opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<!-- %s / %s (Mailchimp) -->\n", html.EscapeString(opts.BrandName), html.EscapeString(opts.EmailType))
	fmt.Fprintf(&sb, "<!-- Subject: %s -->\n", html.EscapeString(email.SubjectLine))
	if strings.TrimSpace(email.PreviewText) != "" {
		fmt.Fprintf(&sb, "<!-- Preview text: %s -->\n", html.EscapeString(email.PreviewText))
	}

	if strings.TrimSpace(email.Headline) != "" {
		sb.WriteString("<h1 mc:edit=\"headline\">" + html.EscapeString(email.Headline) + "</h1>\n")
	}
	sb.WriteString("<p>Hi *|FNAME|*,</p>\n")
	sb.WriteString("<div mc:edit=\"body\">\n")
	for _, p := range Paragraphs(email.Body) {
		sb.WriteString("<p>" + paragraphHTML(p) + "</p>\n")
	}
	sb.WriteString("</div>\n")
	if email.CTA != "" {
		sb.WriteString("<p mc:edit=\"cta\"><a href=\"#\" style=\"display: inline-block; padding: 12px 32px; background-color: #1a1a1a; color: #ffffff; text-decoration: none; font-weight: bold; border-radius: 4px;\">")
		sb.WriteString(html.EscapeString(email.CTA))
		sb.WriteString("</a></p>\n")
	}
	return sb.String()
}
