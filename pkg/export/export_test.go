package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/export"
)

func testEmail() export.Email {
	return export.Email{
		SubjectLine: "Welcome to TestBrand",
		PreviewText: "Your first order awaits",
		Headline:    "Welcome to the family",
		Body:        "First paragraph of the email.\n\nSecond paragraph,\nwith a manual break.\n\nThird paragraph.",
		CTA:         "Shop Now",
	}
}

func TestAsText(t *testing.T) {
	t.Run("all sections present", func(t *testing.T) {
		out := export.AsText(testEmail())

		assert.Contains(t, out, "SUBJECT LINE:\nWelcome to TestBrand")
		assert.Contains(t, out, "PREVIEW TEXT:\nYour first order awaits")
		assert.Contains(t, out, "BODY:\nFirst paragraph of the email.")
		assert.Contains(t, out, "CTA:\nShop Now")
	})

	t.Run("absent preview renders (none)", func(t *testing.T) {
		email := testEmail()
		email.PreviewText = ""
		assert.Contains(t, export.AsText(email), "PREVIEW TEXT:\n(none)")
	})

	t.Run("whitespace-only preview renders (none)", func(t *testing.T) {
		email := testEmail()
		email.PreviewText = "   "
		assert.Contains(t, export.AsText(email), "PREVIEW TEXT:\n(none)")
	})

	t.Run("section label order is fixed", func(t *testing.T) {
		out := export.AsText(testEmail())
		subject := strings.Index(out, "SUBJECT LINE:")
		preview := strings.Index(out, "PREVIEW TEXT:")
		body := strings.Index(out, "BODY:")
		cta := strings.Index(out, "CTA:")
		assert.True(t, subject < preview && preview < body && body < cta)
	})
}

func TestAsHTML(t *testing.T) {
	t.Run("complete document structure", func(t *testing.T) {
		out := export.AsHTML(testEmail())

		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		assert.Contains(t, out, "<title>Welcome to TestBrand</title>")
		assert.Contains(t, out, "<div style=\"display: none\">Your first order awaits</div>")
		assert.Contains(t, out, ">Welcome to the family</h1>")
		assert.Contains(t, out, ">Shop Now</a>")
		assert.Contains(t, out, "</html>")
	})

	t.Run("paragraph count round-trips", func(t *testing.T) {
		out := export.AsHTML(testEmail())
		assert.Equal(t, 3, strings.Count(out, "<p "))
	})

	t.Run("single newline becomes br", func(t *testing.T) {
		out := export.AsHTML(testEmail())
		assert.Contains(t, out, "Second paragraph,<br>with a manual break.")
	})

	t.Run("paragraph order preserved", func(t *testing.T) {
		out := export.AsHTML(testEmail())
		first := strings.Index(out, "First paragraph")
		second := strings.Index(out, "Second paragraph")
		third := strings.Index(out, "Third paragraph")
		assert.True(t, first < second && second < third)
	})

	t.Run("empty preview omits preheader div", func(t *testing.T) {
		email := testEmail()
		email.PreviewText = ""
		assert.NotContains(t, export.AsHTML(email), "display: none")
	})

	t.Run("empty headline omits h1", func(t *testing.T) {
		email := testEmail()
		email.Headline = ""
		assert.NotContains(t, export.AsHTML(email), "<h1")
	})

	t.Run("content is escaped", func(t *testing.T) {
		email := testEmail()
		email.SubjectLine = `Deals <& "steals">`
		email.Body = "Save 20% on <everything>"
		out := export.AsHTML(email)

		assert.Contains(t, out, "<title>Deals &lt;&amp; &#34;steals&#34;&gt;</title>")
		assert.Contains(t, out, "Save 20% on &lt;everything&gt;")
		assert.NotContains(t, out, "<everything>")
	})

	t.Run("extra blank lines do not create empty paragraphs", func(t *testing.T) {
		email := testEmail()
		email.Body = "One.\n\n\n\nTwo."
		out := export.AsHTML(email)
		assert.Equal(t, 2, strings.Count(out, "<p "))
	})

	t.Run("deterministic output", func(t *testing.T) {
		assert.Equal(t, export.AsHTML(testEmail()), export.AsHTML(testEmail()))
	})
}

func TestParagraphs(t *testing.T) {
	assert.Nil(t, export.Paragraphs(""))
	assert.Nil(t, export.Paragraphs("  \n \n  "))
	assert.Equal(t, []string{"one", "two"}, export.Paragraphs("one\n\ntwo"))
	assert.Equal(t, []string{"a\nb"}, export.Paragraphs("a\nb"))
}

func TestFormats(t *testing.T) {
	list := export.Formats()
	require.Len(t, list, 3)

	ids := make([]string, 0, len(list))
	for _, f := range list {
		ids = append(ids, f.ID)
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.Icon)
		assert.NotEmpty(t, f.Description)
	}
	assert.Equal(t, []string{"klaviyo", "mailchimp", "generic"}, ids)

	// Callers must not be able to mutate the registry.
	list[0].Name = "changed"
	assert.Equal(t, "Klaviyo", export.Formats()[0].Name)
}

func TestAsESP(t *testing.T) {
	opts := export.Options{BrandName: "TestBrand Co", EmailType: "welcome"}

	t.Run("klaviyo fragment", func(t *testing.T) {
		out, err := export.AsESP(export.FormatKlaviyo, testEmail(), opts)
		require.NoError(t, err)

		assert.NotContains(t, out, "<!DOCTYPE html>")
		assert.Contains(t, out, "TestBrand Co / welcome (Klaviyo)")
		assert.Contains(t, out, "{{ first_name|default:'there' }}")
		assert.Contains(t, out, ">Shop Now</a>")
		assert.Equal(t, 3, strings.Count(out, "<p>")-1) // minus the greeting line
	})

	t.Run("mailchimp fragment", func(t *testing.T) {
		out, err := export.AsESP(export.FormatMailchimp, testEmail(), opts)
		require.NoError(t, err)

		assert.NotContains(t, out, "<!DOCTYPE html>")
		assert.Contains(t, out, "*|FNAME|*")
		assert.Contains(t, out, "mc:edit=\"body\"")
		assert.Contains(t, out, "mc:edit=\"headline\"")
		assert.Contains(t, out, ">Shop Now</a>")
	})

	t.Run("generic matches AsHTML", func(t *testing.T) {
		out, err := export.AsESP(export.FormatGeneric, testEmail(), opts)
		require.NoError(t, err)
		assert.Equal(t, export.AsHTML(testEmail()), out)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := export.AsESP("sendgrid", testEmail(), opts)
		assert.ErrorIs(t, err, export.ErrUnknownFormat)
	})
}
