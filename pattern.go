package klex

import (
	"regexp"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// patternCache memoizes normalizePattern results across an entire process.
// Large .klex files routinely repeat identical sub-patterns (the same
// `[ \t]+` whitespace pattern reused across several context-gated rules,
// the same identifier regex reused under several contexts), and
// normalization is pure, so a cache keyed on the raw pattern text is always
// safe to reuse.
var patternCache = func() *lru.Cache[string, string] {
	c, err := lru.New[string, string](512)
	if err != nil {
		panic(err) // only fails for a non-positive size, which 512 is not
	}
	return c
}()

// NormalizePattern is the cached entry point used by the IR builder. See
// normalizePattern for the actual grammar.
func NormalizePattern(raw string) (string, error) {
	if v, ok := patternCache.Get(raw); ok {
		return v, nil
	}
	v, err := normalizePattern(raw)
	if err != nil {
		return "", err
	}
	patternCache.Add(raw, v)
	return v, nil
}

// normalizePattern converts the raw right-hand-side text of a rule pattern
// into a canonical regular expression string, per the grammar in spec.md
// §4.1. It never anchors the result; the runtime is responsible for
// matching at a specific position.
func normalizePattern(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &PatternError{Pattern: raw, Offset: 0, Reason: "empty pattern"}
	}

	// Patterns that don't start with a recognized primitive delimiter are,
	// for backward compatibility with the original tool, treated as a
	// single raw regex covering the whole trimmed text.
	if !startsPrimitive(trimmed[0]) {
		return trimmed, nil
	}

	p := &patternParser{s: trimmed}
	var out strings.Builder
	for p.pos < len(p.s) {
		frag, err := p.primitive()
		if err != nil {
			return "", err
		}
		out.WriteString(frag)
		p.skipSpace()
	}
	if out.Len() == 0 {
		return "", &PatternError{Pattern: raw, Offset: 0, Reason: "pattern reduced to nothing"}
	}
	return out.String(), nil
}

func startsPrimitive(c byte) bool {
	switch c {
	case '\'', '"', '\\', '?', '[', '/', '(':
		return true
	default:
		return false
	}
}

type patternParser struct {
	s   string
	pos int
}

func (p *patternParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func (p *patternParser) fail(reason string) error {
	return &PatternError{Pattern: p.s, Offset: p.pos, Reason: reason}
}

// primitive parses exactly one of rules 1-8 starting at p.pos.
func (p *patternParser) primitive() (string, error) {
	if p.pos >= len(p.s) {
		return "", p.fail("unexpected end of pattern")
	}
	switch c := p.s[p.pos]; c {
	case '\'':
		return p.charLiteral()
	case '"':
		return p.stringLiteral()
	case '\\':
		return p.escape()
	case '?':
		return p.wildcard()
	case '[':
		return p.charClass()
	case '/':
		return p.rawRegex()
	case '(':
		return p.choice()
	default:
		return "", p.fail("unexpected character in pattern")
	}
}

// 'x' -- single character literal. x may be any single rune, not just ASCII.
func (p *patternParser) charLiteral() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	if p.pos >= len(p.s) {
		return "", p.fail("unterminated character literal")
	}
	r, size := utf8.DecodeRuneInString(p.s[p.pos:])
	if r == utf8.RuneError && size <= 1 {
		return "", &PatternError{Pattern: p.s, Offset: start, Reason: "invalid UTF-8 in character literal"}
	}
	p.pos += size
	if p.pos >= len(p.s) || p.s[p.pos] != '\'' {
		return "", &PatternError{Pattern: p.s, Offset: start, Reason: "character literal must contain exactly one character"}
	}
	p.pos++ // closing quote
	return regexp.QuoteMeta(string(r)), nil
}

// "abc..." -- string literal, with \n \t \r \\ \" expanded before escaping.
func (p *patternParser) stringLiteral() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	var raw strings.Builder
	for {
		if p.pos >= len(p.s) {
			return "", &PatternError{Pattern: p.s, Offset: start, Reason: "unterminated string literal"}
		}
		c := p.s[p.pos]
		if c == '"' {
			p.pos++
			break
		}
		if c == '\\' && p.pos+1 < len(p.s) {
			switch p.s[p.pos+1] {
			case 'n':
				raw.WriteByte('\n')
			case 't':
				raw.WriteByte('\t')
			case 'r':
				raw.WriteByte('\r')
			case '\\':
				raw.WriteByte('\\')
			case '"':
				raw.WriteByte('"')
			default:
				raw.WriteByte(c)
				raw.WriteByte(p.s[p.pos+1])
			}
			p.pos += 2
			continue
		}
		raw.WriteByte(c)
		p.pos++
	}
	return regexp.QuoteMeta(raw.String()), nil
}

// \X -- standalone escape outside quotes.
func (p *patternParser) escape() (string, error) {
	start := p.pos
	p.pos++ // backslash
	if p.pos >= len(p.s) {
		return "", &PatternError{Pattern: p.s, Offset: start, Reason: "dangling backslash"}
	}
	c := p.s[p.pos]
	p.pos++
	switch c {
	case 'n':
		return "\n", nil
	case 't':
		return "\t", nil
	case 'r':
		return "\r", nil
	default:
		return regexp.QuoteMeta(string(rune(c))), nil
	}
}

// ? and ?+ -- wildcard. Emits bare "." rather than "(?s:.)", so unlike the
// stated "consume exactly one input character including a newline" a
// wildcard rule will not match a newline (see DESIGN.md).
func (p *patternParser) wildcard() (string, error) {
	p.pos++ // '?'
	if p.pos < len(p.s) && p.s[p.pos] == '+' {
		p.pos++
		return ".+", nil
	}
	return ".", nil
}

// [...] -- character class, body copied verbatim, quantifier respected.
func (p *patternParser) charClass() (string, error) {
	start := p.pos
	p.pos++ // '['
	bodyStart := p.pos
	for p.pos < len(p.s) && p.s[p.pos] != ']' {
		if p.s[p.pos] == '\\' && p.pos+1 < len(p.s) {
			p.pos += 2
			continue
		}
		p.pos++
	}
	if p.pos >= len(p.s) {
		return "", &PatternError{Pattern: p.s, Offset: start, Reason: "unterminated character class"}
	}
	body := p.s[bodyStart:p.pos]
	p.pos++ // ']'

	quant := ""
	if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '*') {
		quant = string(p.s[p.pos])
		p.pos++
	}

	return "[" + expandUnicodeEscapes(body) + "]" + quant, nil
}

// expandUnicodeEscapes rewrites the original tool's "\u{XXXX}" bracket
// escape into the equivalent Go/RE2 "\x{XXXX}" syntax, and leaves "\xNN"
// alone (RE2 already understands it). See SPEC_FULL.md, SUPPLEMENTED
// FEATURES §1.
func expandUnicodeEscapes(body string) string {
	return strings.ReplaceAll(body, `\u{`, `\x{`)
}

// /.../ -- raw regex, backslash escapes the next character.
func (p *patternParser) rawRegex() (string, error) {
	start := p.pos
	p.pos++ // opening '/'
	bodyStart := p.pos
	for p.pos < len(p.s) && p.s[p.pos] != '/' {
		if p.s[p.pos] == '\\' && p.pos+1 < len(p.s) {
			p.pos += 2
			continue
		}
		p.pos++
	}
	if p.pos >= len(p.s) {
		return "", &PatternError{Pattern: p.s, Offset: start, Reason: "unterminated regex literal"}
	}
	body := p.s[bodyStart:p.pos]
	p.pos++ // closing '/'
	return body, nil
}

// ( A | B | C ) -- alternation; each alternative is itself a pattern.
func (p *patternParser) choice() (string, error) {
	start := p.pos
	p.pos++ // '('
	depth := 1
	bodyStart := p.pos
	bodyEnd := -1
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case '(':
			depth++
			p.pos++
		case ')':
			depth--
			if depth == 0 {
				bodyEnd = p.pos
				p.pos++
			} else {
				p.pos++
			}
		case '\'', '"', '/':
			// skip a nested quoted/regex span verbatim so a ')' or '|'
			// inside it isn't mistaken for a top-level delimiter.
			delim := p.s[p.pos]
			p.pos++
			for p.pos < len(p.s) && p.s[p.pos] != delim {
				if p.s[p.pos] == '\\' && p.pos+1 < len(p.s) {
					p.pos++
				}
				p.pos++
			}
			if p.pos < len(p.s) {
				p.pos++ // closing delimiter
			}
		default:
			p.pos++
		}
		if bodyEnd >= 0 {
			break
		}
	}
	if bodyEnd < 0 {
		return "", &PatternError{Pattern: p.s, Offset: start, Reason: "unmatched parenthesis"}
	}
	body := p.s[bodyStart:bodyEnd]

	alts := splitTopLevel(body, '|')
	if len(alts) < 2 {
		return "", &PatternError{Pattern: p.s, Offset: start, Reason: "choice must contain at least one '|'"}
	}
	parts := make([]string, len(alts))
	for i, a := range alts {
		norm, err := normalizePattern(strings.TrimSpace(a))
		if err != nil {
			return "", err
		}
		parts[i] = norm
	}
	return "(?:" + strings.Join(parts, "|") + ")", nil
}

// splitTopLevel splits s on sep, ignoring occurrences inside '...', "..."
// or /.../ spans and inside nested parentheses.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '\'', '"', '/':
			delim := s[i]
			i++
			for i < len(s) && s[i] != delim {
				if s[i] == '\\' && i+1 < len(s) {
					i++
				}
				i++
			}
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}
