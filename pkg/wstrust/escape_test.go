package wstrust

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendEscaped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "password123", "password123"},
		{"ampersand", "a&b", "a&amp;b"},
		{"quote", `a"b`, "a&quot;b"},
		{"apostrophe", "a'b", "a&apos;b"},
		{"lt", "a<b", "a&lt;b"},
		{"gt", "a>b", "a&gt;b"},
		{"all five", `&"'<>`, "&amp;&quot;&apos;&lt;&gt;"},
		{"injection attempt", `</o:Password><evil/>`, "&lt;/o:Password&gt;&lt;evil/&gt;"},
		{"entity-looking input is not double-escaped", "&amp;", "&amp;amp;"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := appendEscaped(nil, []byte(tc.input))
			assert.Equal(t, tc.want, string(got))
		})
	}
}

// Escaped output must parse as XML character data and decode back to the
// original string.
func TestAppendEscaped_RoundTrip(t *testing.T) {
	inputs := []string{
		`p@ss"<&>`,
		"no specials",
		`<<<&&&>>>'''"""`,
		"&lt;already escaped&gt;",
	}

	for _, in := range inputs {
		escaped := appendEscaped(make([]byte, 0, escapedWorstCase(len(in))), []byte(in))

		var decoded string
		err := xml.Unmarshal([]byte("<v>"+string(escaped)+"</v>"), &decoded)
		require.NoError(t, err, "escaped output is not valid XML text: %q", escaped)
		assert.Equal(t, in, decoded)

		// No raw metacharacters outside entity references.
		stripped := string(escaped)
		for _, ent := range []string{"&amp;", "&quot;", "&apos;", "&lt;", "&gt;"} {
			stripped = strings.ReplaceAll(stripped, ent, "")
		}
		assert.NotContains(t, stripped, "&")
		assert.NotContains(t, stripped, `"`)
		assert.NotContains(t, stripped, "'")
		assert.NotContains(t, stripped, "<")
		assert.NotContains(t, stripped, ">")
	}
}

func TestEscapedWorstCase(t *testing.T) {
	in := strings.Repeat(`"`, 10)
	escaped := appendEscaped(nil, []byte(in))
	assert.LessOrEqual(t, len(escaped), escapedWorstCase(len(in)))
}

func TestAppendSubstituted(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     [][]byte
		want     string
	}{
		{"single marker", "<v>%s</v>", [][]byte{[]byte("x")}, "<v>x</v>"},
		{"multiple markers in order", "%s-%s-%s", [][]byte{[]byte("a"), []byte("b"), []byte("c")}, "a-b-c"},
		{"no markers", "static", nil, "static"},
		{"empty arg", "<v>%s</v>", [][]byte{nil}, "<v></v>"},
		{"fewer args than markers leaves tail verbatim", "%s and %s", [][]byte{[]byte("a")}, "a and %s"},
		{"more args than markers ignores extras", "%s", [][]byte{[]byte("a"), []byte("b")}, "a"},
		{"arg containing a marker is not re-substituted", "%s|%s", [][]byte{[]byte("%s"), []byte("z")}, "%s|z"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := appendSubstituted(nil, tc.template, tc.args...)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

// A dst sized to len(template) plus the arg lengths must never reallocate,
// otherwise a discarded backing array would hold an unwipeable copy of the
// substituted values.
func TestAppendSubstituted_NoReallocation(t *testing.T) {
	template := "<a>%s</a><b>%s</b>"
	args := [][]byte{[]byte("first-value"), []byte("second-value")}

	size := len(template)
	for _, a := range args {
		size += len(a)
	}
	dst := make([]byte, 0, size)
	out := appendSubstituted(dst, template, args...)

	assert.Equal(t, size, cap(out), "output must stay in the pre-sized buffer")
	assert.Equal(t, "<a>first-value</a><b>second-value</b>", string(out))
}
