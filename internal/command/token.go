package command

import "strings"

// Tokenize splits a raw input line into whitespace-separated tokens,
// honoring single and double quoting so quoted substrings become one
// token. Quote characters are consumed, not retained; a quote of the
// other kind inside a quoted span is literal. An unterminated quote is
// not an error: the remainder of the line joins the open token. Runs of
// whitespace collapse.
func Tokenize(input string) []string {
	var (
		tokens  []string
		buf     strings.Builder
		inQuote bool
		quote   rune
	)

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	for _, r := range input {
		switch {
		case inQuote && r == quote:
			inQuote = false
		case !inQuote && (r == '\'' || r == '"'):
			inQuote = true
			quote = r
		case !inQuote && (r == ' ' || r == '\t'):
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return tokens
}
