package command

import (
	"strings"

	"github.com/holoterm/holoterm/internal/logging"
)

// FlagValue is the value side of a parsed flag: either a string taken
// from `--flag=value` / `--flag value`, or boolean presence.
type FlagValue struct {
	str    string
	isBool bool
}

// BoolFlag is the presence-only flag value.
var BoolFlag = FlagValue{isBool: true}

// StringFlag wraps an explicit flag value.
func StringFlag(v string) FlagValue {
	return FlagValue{str: v}
}

// IsBool reports whether the flag was presence-only.
func (f FlagValue) IsBool() bool {
	return f.isBool
}

// String returns the flag's string value, empty for presence-only flags.
func (f FlagValue) String() string {
	return f.str
}

// Flags maps flag names (without leading dashes) to their values. Keys
// are case-sensitive as typed; the last occurrence of a repeated flag
// wins.
type Flags map[string]FlagValue

// Has reports whether the flag was present at all.
func (f Flags) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Value returns the flag's string value and whether the flag carried
// one (presence-only flags report false).
func (f Flags) Value(name string) (string, bool) {
	v, ok := f[name]
	if !ok || v.isBool {
		return "", false
	}
	return v.str, true
}

// Parsed is a structured command line: the lowercased command name,
// positional arguments in order, flags, and the trimmed raw line kept
// for logging and echo. Name is empty iff Args and Flags are both empty
// (blank input).
type Parsed struct {
	Name  string
	Args  []string
	Flags Flags
	Raw   string
}

// Parse tokenizes input and classifies the tokens into a Parsed
// command. The first token, lowercased, is the command name. A token
// starting with "--" is a long flag (`--key=value` splits on the first
// "=", otherwise a following non-flag token is absorbed as the value).
// A token of exactly a dash plus one character is a short flag with the
// same absorption rule. Any other token, including single-dash
// multi-character tokens like "-width", is a positional argument; that
// narrow short-flag rule is deliberate and load-bearing for callers
// that pass negative-looking arguments through.
func Parse(input string) Parsed {
	raw := strings.TrimSpace(input)
	tokens := Tokenize(raw)

	parsed := Parsed{
		Args:  []string{},
		Flags: Flags{},
		Raw:   raw,
	}
	if len(tokens) == 0 {
		return parsed
	}

	parsed.Name = strings.ToLower(tokens[0])

	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]

		switch {
		case strings.HasPrefix(tok, "--") && len(tok) > 2:
			name := tok[2:]
			if eq := strings.Index(name, "="); eq >= 0 {
				parsed.Flags[name[:eq]] = StringFlag(name[eq+1:])
				continue
			}
			if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") {
				parsed.Flags[name] = StringFlag(tokens[i+1])
				i++
				continue
			}
			parsed.Flags[name] = BoolFlag

		case len(tok) == 2 && tok[0] == '-' && tok[1] != '-':
			name := tok[1:]
			if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") {
				parsed.Flags[name] = StringFlag(tokens[i+1])
				i++
				continue
			}
			parsed.Flags[name] = BoolFlag

		default:
			if len(tok) > 2 && tok[0] == '-' && tok[1] != '-' {
				logging.Debugf("Treating %q as a positional argument, not a flag", tok)
			}
			parsed.Args = append(parsed.Args, tok)
		}
	}

	return parsed
}
