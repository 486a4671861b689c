package export

import (
	"html"
	"regexp"
	"strings"
)

// Email is the assembled selection handed to the exporters: one subject line
// plus one variation's content. PreviewText and Headline may be empty.
type Email struct {
	SubjectLine string
	PreviewText string
	Headline    string
	Body        string
	CTA         string
}

// noPreview is rendered in place of an absent or empty preview text.
const noPreview = "(none)"

// AsText renders the email as labeled plain text sections.
func AsText(email Email) string {
	preview := strings.TrimSpace(email.PreviewText)
	if preview == "" {
		preview = noPreview
	}

	var sb strings.Builder
	sb.WriteString("SUBJECT LINE:\n")
	sb.WriteString(email.SubjectLine)
	sb.WriteString("\n\nPREVIEW TEXT:\n")
	sb.WriteString(preview)
	sb.WriteString("\n\nBODY:\n")
	sb.WriteString(email.Body)
	sb.WriteString("\n\nCTA:\n")
	sb.WriteString(email.CTA)
	sb.WriteString("\n")
	return sb.String()
}

// AsHTML renders the email as a complete standalone HTML document. The
// preview text becomes a hidden preheader div when present, the headline an
// h1 when present, and the body one paragraph element per blank-line
// separated paragraph.
func AsHTML(email Email) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(email.SubjectLine) + "</title>\n")
	sb.WriteString("</head>\n")
	sb.WriteString("<body style=\"margin: 0; padding: 24px; font-family: Arial, Helvetica, sans-serif; color: #1a1a1a; background-color: #ffffff;\">\n")

	if strings.TrimSpace(email.PreviewText) != "" {
		sb.WriteString("<div style=\"display: none\">" + html.EscapeString(email.PreviewText) + "</div>\n")
	}
	if strings.TrimSpace(email.Headline) != "" {
		sb.WriteString("<h1 style=\"font-size: 28px; line-height: 1.2; margin: 0 0 16px;\">" + html.EscapeString(email.Headline) + "</h1>\n")
	}

	for _, p := range Paragraphs(email.Body) {
		sb.WriteString("<p style=\"font-size: 16px; line-height: 1.6; margin: 0 0 16px;\">")
		sb.WriteString(paragraphHTML(p))
		sb.WriteString("</p>\n")
	}

	if email.CTA != "" {
		sb.WriteString("<div style=\"margin: 24px 0;\">")
		sb.WriteString("<a href=\"#\" style=\"display: inline-block; padding: 12px 32px; background-color: #1a1a1a; color: #ffffff; text-decoration: none; font-weight: bold; border-radius: 4px;\">")
		sb.WriteString(html.EscapeString(email.CTA))
		sb.WriteString("</a></div>\n")
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

var paragraphSplit = regexp.MustCompile(`\n[ \t]*\n`)

// Paragraphs splits a body on blank-line boundaries, dropping
// whitespace-only fragments. Single newlines stay inside their paragraph.
func Paragraphs(body string) []string {
	var out []string
	for _, p := range paragraphSplit.Split(body, -1) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, strings.Trim(p, "\n"))
	}
	return out
}

// paragraphHTML escapes one paragraph and converts its inner newlines to br
// elements.
func paragraphHTML(p string) string {
	lines := strings.Split(p, "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(line)
	}
	return strings.Join(lines, "<br>")
}
