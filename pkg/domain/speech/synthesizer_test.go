package speech

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPrepareText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     string
	}{
		{name: "plain", text: "Gravity pulls.", maxChars: 500, want: "Gravity pulls."},
		{name: "line breaks", text: "a\nb\r\nc\rd", maxChars: 500, want: "a b c d"},
		{name: "truncates", text: "abcdef", maxChars: 3, want: "abc"},
		{name: "no limit", text: "abcdef", maxChars: 0, want: "abcdef"},
		{name: "runes", text: "héllo wörld", maxChars: 5, want: "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrepareText(tt.text, tt.maxChars))
		})
	}
}

func TestPrepareText_LongAnswer(t *testing.T) {
	text := strings.Repeat("line of explanation\n", 100)
	got := PrepareText(text, 500)

	assert.Equal(t, 500, utf8.RuneCountInString(got))
	assert.NotContains(t, got, "\n")
}
