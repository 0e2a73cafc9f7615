package htmlutil_test

import (
	"testing"

	"github.com/demaceo/mhi/internal/htmlutil"
	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML_AllSpecialChars(t *testing.T) {
	in := `a & b < c > d " e ' f`
	out := htmlutil.EscapeHTML(in)
	assert.Equal(t, "a &amp; b &lt; c &gt; d &quot; e &#039; f", out)
}

func TestEscapeHTML_PreservesOrderAndWhitespace(t *testing.T) {
	in := "line1\nline2\t<b>&'\"</b>"
	out := htmlutil.EscapeHTML(in)
	assert.Equal(t, "line1\nline2\t&lt;b&gt;&amp;&#039;&quot;&lt;/b&gt;", out)
}

func TestEscapeHTML_Empty(t *testing.T) {
	assert.Equal(t, "", htmlutil.EscapeHTML(""))
}

func TestEscapeHTML_NoSpecialChars(t *testing.T) {
	assert.Equal(t, "plain text 123", htmlutil.EscapeHTML("plain text 123"))
}

func TestEscapeHTML_NotIdempotent(t *testing.T) {
	once := htmlutil.EscapeHTML("&")
	twice := htmlutil.EscapeHTML(once)
	assert.Equal(t, "&amp;", once)
	assert.Equal(t, "&amp;amp;", twice)
}

func TestEscapeHTML_ScriptInjection(t *testing.T) {
	out := htmlutil.EscapeHTML(`<script>alert("x")</script>`)
	assert.NotContains(t, out, "<script>")
	assert.Equal(t, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;", out)
}
