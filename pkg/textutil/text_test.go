package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	in := `<a href="x">Tom's & Jerry</a>` + "\nend"
	want := `&lt;a href=&quot;x&quot;&gt;Tom&#39;s &amp; Jerry&lt;/a&gt;<br />end`
	assert.Equal(t, want, EscapeHTML(in))
	assert.Equal(t, "plain", EscapeHTML("plain"))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 6, DisplayWidth("中文ab"))
	assert.Equal(t, 0, DisplayWidth(""))
	assert.Equal(t, 3, DisplayWidth("a，b")) // full-width comma is outside the ideograph block
}

func TestTokenHash(t *testing.T) {
	assert.Equal(t, int32(5381), TokenHash(""))
	assert.Equal(t, int32(177670), TokenHash("a"))
	assert.Equal(t, int32(5863208), TokenHash("ab"))

	h := TokenHash("a-very-long-session-cookie-value-0123456789")
	assert.GreaterOrEqual(t, h, int32(0))
}
