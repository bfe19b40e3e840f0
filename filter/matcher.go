package filter

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/medusaphp/filesystem/errors"
)

// Matcher tests an entry's base name.
type Matcher interface {
	Match(name string) bool
}

// MatcherFunc adapts a function to a Matcher.
type MatcherFunc func(name string) bool

// Match calls f(name).
func (f MatcherFunc) Match(name string) bool {
	return f(name)
}

// delimiterPairs maps opening bracket delimiters to their closing form.
var delimiterPairs = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// delimiters lists the non-bracket characters accepted as pattern delimiters.
const delimiters = "/#~!@%|+;,"

// Regexp compiles a regular expression matcher.
//
// A delimited expression such as `/\.json$/i` has its delimiters stripped and
// its trailing modifiers translated: i, m and s map to the flags of the same
// name, U makes quantifiers lazy by default, A anchors the match at the
// start and x drops unescaped whitespace and # comments outside character
// classes. Modifiers u and D are accepted and have no effect. Any other
// modifier is rejected. An expression without recognised delimiters is
// compiled as is.
func Regexp(expr string) (Matcher, error) {
	body, mods, ok := splitDelimited(expr)
	if !ok {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid pattern",
				map[string]interface{}{"pattern": expr})
		}
		return MatcherFunc(re.MatchString), nil
	}

	var flags strings.Builder
	anchored, extended := false, false
	for _, m := range mods {
		switch m {
		case 'x':
			extended = true
		case 'i', 'm', 's', 'U':
			if !strings.ContainsRune(flags.String(), m) {
				flags.WriteRune(m)
			}
		case 'A':
			anchored = true
		case 'u', 'D':
		default:
			return nil, errors.WithContext(
				errors.Newf(errors.CodeInvalidInput, "unsupported pattern modifier %q", m),
				"pattern", expr)
		}
	}

	if extended {
		body = stripExtended(body)
	}
	if anchored {
		body = `^(?:` + body + `)`
	}
	if flags.Len() > 0 {
		body = "(?" + flags.String() + ")" + body
	}

	re, err := regexp.Compile(body)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid pattern",
			map[string]interface{}{"pattern": expr})
	}
	return MatcherFunc(re.MatchString), nil
}

// MustRegexp is like Regexp but panics on an invalid expression.
func MustRegexp(expr string) Matcher {
	m, err := Regexp(expr)
	if err != nil {
		panic(err)
	}
	return m
}

// stripExtended removes the whitespace and comments that the x modifier
// makes insignificant. Escaped characters and character classes are kept.
func stripExtended(body string) string {
	var out strings.Builder
	inClass := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			out.WriteByte(c)
			i++
			out.WriteByte(body[i])
		case inClass:
			if c == ']' {
				inClass = false
			}
			out.WriteByte(c)
		case c == '[':
			inClass = true
			out.WriteByte(c)
		case c == '#':
			for i+1 < len(body) && body[i+1] != '\n' {
				i++
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// splitDelimited separates a delimited expression into body and modifiers.
func splitDelimited(expr string) (body, mods string, ok bool) {
	if len(expr) < 2 {
		return "", "", false
	}
	open := expr[0]
	closing, bracket := delimiterPairs[open]
	if !bracket {
		if !strings.ContainsRune(delimiters, rune(open)) {
			return "", "", false
		}
		closing = open
	}

	end := strings.LastIndexByte(expr, closing)
	if end <= 0 {
		return "", "", false
	}
	mods = expr[end+1:]
	for _, r := range mods {
		if r < 'A' || r > 'z' || (r > 'Z' && r < 'a') {
			return "", "", false
		}
	}
	return expr[1:end], mods, true
}

// Glob compiles a shell glob matcher. '*' and '?' never match a path
// separator.
func Glob(pattern string) (Matcher, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid glob",
			map[string]interface{}{"pattern": pattern})
	}
	return g, nil
}

// MustGlob is like Glob but panics on an invalid pattern.
func MustGlob(pattern string) Matcher {
	m, err := Glob(pattern)
	if err != nil {
		panic(err)
	}
	return m
}
