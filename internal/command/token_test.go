package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "draw cat",
			want:  []string{"draw", "cat"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \t ",
			want:  nil,
		},
		{
			name:  "whitespace runs collapse",
			input: "draw   cat    now",
			want:  []string{"draw", "cat", "now"},
		},
		{
			name:  "double quoted span with spaces",
			input: `draw "my cat" --width=10`,
			want:  []string{"draw", "my cat", "--width=10"},
		},
		{
			name:  "single quoted span",
			input: `hologram cube 'hello world'`,
			want:  []string{"hologram", "cube", "hello world"},
		},
		{
			name:  "single quote inside double quotes is literal",
			input: `say "it's fine"`,
			want:  []string{"say", "it's fine"},
		},
		{
			name:  "double quote inside single quotes is literal",
			input: `say 'a "b" c'`,
			want:  []string{"say", `a "b" c`},
		},
		{
			name:  "unterminated quote is lenient",
			input: `say "hello`,
			want:  []string{"say", "hello"},
		},
		{
			name:  "unterminated quote swallows rest of line",
			input: `say "hello there friend`,
			want:  []string{"say", "hello there friend"},
		},
		{
			name:  "quotes glue adjacent text",
			input: `say ab"cd ef"gh`,
			want:  []string{"say", "abcd efgh"},
		},
		{
			name:  "empty quoted pair produces no token",
			input: `say "" hi`,
			want:  []string{"say", "hi"},
		},
		{
			name:  "tabs separate tokens",
			input: "a\tb\tc",
			want:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}
