package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainTextStripsMarkupAndTrims(t *testing.T) {
	assert.Equal(t, "Hi", PlainText("  <b>Hi</b>  "))
	assert.Equal(t, "plain", PlainText("plain"))
	assert.Equal(t, "", PlainText("  <b></b>  "))
	assert.Equal(t, "", PlainText("<script>alert(1)</script>"))
}

func TestRichTextKeepsSafeSubset(t *testing.T) {
	assert.Equal(t, "<p>ok</p>", RichText("<script>x</script><p>ok</p>"))
	assert.Equal(t, "<p>hello <strong>world</strong></p>", RichText("<p>hello <strong>world</strong></p>"))
	assert.Equal(t, "", RichText(""))
}

func TestSanitizationIsIdempotent(t *testing.T) {
	inputs := []string{
		"  <b>Hi</b>  ",
		"<script>x</script><p>ok</p>",
		"plain text",
		"a & b < c",
		`<a href="javascript:evil()">link</a>`,
		"<p>nested <em>tags</em> here</p>",
	}

	for _, input := range inputs {
		once := PlainText(input)
		assert.Equal(t, once, PlainText(once), "PlainText not idempotent for %q", input)

		once = RichText(input)
		assert.Equal(t, once, RichText(once), "RichText not idempotent for %q", input)
	}
}
