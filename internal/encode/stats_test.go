package encode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Stats
	}{
		{"empty", "", Stats{}},
		{"single line without newline", "ab", Stats{Lines: 1, Chars: 2, Tokens: 1}},
		{"trailing newline", "abc\ndef\n", Stats{Lines: 2, Chars: 8, Tokens: 2}},
		{"token estimate rounds up", "123456789", Stats{Lines: 1, Chars: 9, Tokens: 3}},
		{"counts runes not bytes", "héllo\n", Stats{Lines: 1, Chars: 6, Tokens: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Measure(tt.text))
		})
	}
}
