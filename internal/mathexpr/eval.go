// Package mathexpr implements a small recursive-descent arithmetic
// evaluator used as the local fallback for the solve command.
//
// The grammar is deliberately closed: numbers, + - * / ^, parentheses,
// a fixed function table and the constants pi and e. Nothing outside
// that set evaluates; there is no dynamic code execution of any kind.
package mathexpr

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/holoterm/holoterm/internal/errors"
)

// functions is the closed allow-list of callable names.
var functions = map[string]func(float64) (float64, error){
	"sqrt": func(x float64) (float64, error) {
		if x < 0 {
			return 0, errors.Evaluationf("sqrt of negative number %s", Format(x))
		}
		return math.Sqrt(x), nil
	},
	"sin": func(x float64) (float64, error) { return math.Sin(x), nil },
	"cos": func(x float64) (float64, error) { return math.Cos(x), nil },
	"tan": func(x float64) (float64, error) { return math.Tan(x), nil },
	"log": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, errors.Evaluationf("log of non-positive number %s", Format(x))
		}
		return math.Log10(x), nil
	},
	"ln": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, errors.Evaluationf("ln of non-positive number %s", Format(x))
		}
		return math.Log(x), nil
	},
	"abs": func(x float64) (float64, error) { return math.Abs(x), nil },
}

// constants maps identifier names to fixed values.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Eval parses and evaluates expr, returning an evaluation error for any
// input outside the closed grammar. It never panics.
func Eval(expr string) (float64, error) {
	p := &parser{input: strings.TrimSpace(expr)}
	if p.input == "" {
		return 0, errors.Evaluation("empty expression")
	}

	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, errors.Evaluationf("unexpected character %q at position %d", p.input[p.pos], p.pos)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Evaluation("result is not a finite number")
	}
	return v, nil
}

// Format renders a result the way the terminal prints it: integers
// without decimals, everything else fixed-point with trailing zeros
// stripped.
func Format(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// parseExpr = term {(+|-) term}
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// parseTerm = power {(*|/) power}
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parsePower()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return left, nil
		}
		p.pos++
		right, err := p.parsePower()
		if err != nil {
			return 0, err
		}
		if c == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, errors.Evaluation("division by zero")
			}
			left /= right
		}
	}
}

// parsePower = unary [^ power], right-associative
func (p *parser) parsePower() (float64, error) {
	base, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	c, ok := p.peek()
	if !ok || c != '^' {
		return base, nil
	}
	p.pos++
	exp, err := p.parsePower()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

// parseUnary = [-] primary
func (p *parser) parseUnary() (float64, error) {
	c, ok := p.peek()
	if ok && c == '-' {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.parsePrimary()
}

// parsePrimary = number | constant | func "(" args ")" | "(" expr ")"
func (p *parser) parsePrimary() (float64, error) {
	c, ok := p.peek()
	if !ok {
		return 0, errors.Evaluation("unexpected end of expression")
	}

	switch {
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(')'); err != nil {
			return 0, err
		}
		return v, nil

	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()

	case isIdentStart(rune(c)):
		return p.parseIdent()

	default:
		return 0, errors.Evaluationf("unexpected character %q at position %d", c, p.pos)
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (p.input[p.pos] >= '0' && p.input[p.pos] <= '9' || p.input[p.pos] == '.') {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, errors.Evaluationf("invalid number %q", p.input[start:p.pos])
	}
	return v, nil
}

func (p *parser) parseIdent() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(rune(p.input[p.pos])) {
		p.pos++
	}
	name := strings.ToLower(p.input[start:p.pos])

	if v, ok := constants[name]; ok {
		return v, nil
	}

	if name == "pow" {
		return p.parsePow()
	}

	fn, ok := functions[name]
	if !ok {
		return 0, errors.Evaluationf("unknown identifier %q", name)
	}

	if err := p.expect('('); err != nil {
		return 0, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if err := p.expect(')'); err != nil {
		return 0, err
	}
	return fn(arg)
}

// parsePow handles the only two-argument function in the table.
func (p *parser) parsePow() (float64, error) {
	if err := p.expect('('); err != nil {
		return 0, err
	}
	base, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if err := p.expect(','); err != nil {
		return 0, err
	}
	exp, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if err := p.expect(')'); err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *parser) expect(c byte) error {
	got, ok := p.peek()
	if !ok {
		return errors.Evaluationf("expected %q, got end of expression", c)
	}
	if got != c {
		return errors.Evaluationf("expected %q, got %q at position %d", c, got, p.pos)
	}
	p.pos++
	return nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
