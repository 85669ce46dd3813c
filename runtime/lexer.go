// Package runtime implements the C4 runtime tokenizer: the algorithm that
// walks a klex.LexerSpec against input text, one token at a time.
//
// It is the executable counterpart of package klex: klex parses a ".klex"
// spec into an IR, runtime walks that IR against real input. The emit
// subpackage generates a standalone copy of the same algorithm as target
// source; runtime.Engine is the reference implementation that both backs
// direct in-process use and is exercised by the test suite that emit's
// output is checked against.
package runtime

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/klex-lang/klex"
)

// ActionFunc is the Go-idiomatic binding for an opaque action rule's code
// block: it receives the provisional token (spec.md's "test_t") and
// returns either a replacement token and true, or an unspecified token and
// false to mean "skip, emit nothing".
type ActionFunc func(provisional Token) (Token, bool)

// Engine walks one LexerSpec against one input string. It is not safe for
// concurrent use: pos, coordinates, context state and the regex cache all
// mutate on every NextToken call (spec.md §5). Independent Engines over
// independent inputs share nothing and may run concurrently.
type Engine struct {
	spec    *klex.LexerSpec
	input   string
	actions map[int]ActionFunc

	pos       int
	row, col  int
	lineStart int

	lastSignificant string // "" means "none" (spec.md §4.5)

	regexCache map[string]*regexp.Regexp
	unknownID  int
	lines      *lineIndex
}

// NewEngine constructs an Engine over input using spec's rules. actions
// supplies the Go closure to run for each action rule, keyed by that
// rule's index in spec.Rules; a nil map is fine for a spec with no action
// rules.
func NewEngine(spec *klex.LexerSpec, input string, actions map[int]ActionFunc) (*Engine, error) {
	unknownID, ok := spec.TokenID(klex.Unknown)
	if !ok {
		return nil, fmt.Errorf("runtime: spec has no %s kind", klex.Unknown)
	}
	return &Engine{
		spec:       spec,
		input:      input,
		actions:    actions,
		row:        1,
		col:        1,
		regexCache: make(map[string]*regexp.Regexp),
		unknownID:  unknownID,
		lines:      newLineIndex(),
	}, nil
}

// PositionAt converts a byte offset into this engine's input (typically a
// Token's Index) into a 1-based line:column Position, for diagnostics.
func (e *Engine) PositionAt(index int) Position {
	return e.lines.positionOf(index)
}

// candidate is one enabled rule's match at the engine's current position.
type candidate struct {
	ruleIdx int
	text    string
}

// NextToken implements spec.md §4.5's per-call algorithm. ok is false only
// at end of input; err is non-nil only for a fatal condition (bad regex,
// or an action rule with no registered ActionFunc).
func (e *Engine) NextToken() (tok Token, ok bool, err error) {
	for {
		if e.pos >= len(e.input) {
			return Token{}, false, nil
		}

		best, err := e.bestMatch()
		if err != nil {
			return Token{}, false, err
		}
		if best == nil {
			return e.emitUnknown(), true, nil
		}

		row, col, indent := e.row, e.col, e.indentAt()
		provisional := Token{
			Value:  best.text,
			Index:  e.pos,
			Row:    row,
			Col:    col,
			Length: len(best.text),
		}
		provisional.Indent = indent

		rule := e.spec.Rules[best.ruleIdx]
		if rule.Body == klex.BodyAction {
			fn := e.actions[best.ruleIdx]
			if fn == nil {
				return Token{}, false, &MissingActionError{RuleIndex: best.ruleIdx}
			}
			result, matched := fn(provisional)
			e.advance(provisional.Length)
			if !matched {
				continue // skip: no output, context untouched, loop to step 1
			}
			e.updateContext(result.Kind)
			return result, true, nil
		}

		provisional.Kind = rule.TokenID
		e.advance(provisional.Length)
		e.updateContext(provisional.Kind)
		return provisional, true, nil
	}
}

// bestMatch builds the enabled rule set for the current position (context
// predicate absent or matching), evaluates every candidate, and returns
// the longest match, ties broken by context-gated over context-free, then
// action-over-kind, then declaration order (see better). A zero-length
// match is never a candidate.
func (e *Engine) bestMatch() (*candidate, error) {
	var best *candidate
	var bestIsAction, bestHasContext bool

	for i, rule := range e.spec.Rules {
		if rule.Context != "" && rule.Context != e.lastSignificant {
			continue
		}
		re, err := e.compiled(i, rule.Regex)
		if err != nil {
			return nil, err
		}
		loc := re.FindStringIndex(e.input[e.pos:])
		if loc == nil || loc[1] == 0 {
			continue
		}
		text := e.input[e.pos : e.pos+loc[1]]
		isAction := rule.Body == klex.BodyAction
		hasContext := rule.Context != ""

		if best == nil || better(len(text), hasContext, isAction, i, len(best.text), bestHasContext, bestIsAction, best.ruleIdx) {
			best = &candidate{ruleIdx: i, text: text}
			bestIsAction = isAction
			bestHasContext = hasContext
		}
	}
	return best, nil
}

// better reports whether candidate A beats candidate B under the
// selection rule: longer match wins. At equal length, a context-gated
// rule beats a context-free one (spec.md §8 scenario 2 requires this: at
// "abc 42" the equal-length NUMBER and %ID-gated IDNUM rules both match
// "42", and IDNUM must win because it is the more specific, context-aware
// rule — the plain "action before kind, then declaration order" tiebreak
// spec.md §4.5 states in the abstract isn't sufficient on its own to
// produce that result). Failing that, action beats kind; failing that,
// earlier declaration wins.
func better(lenA int, ctxA, actionA bool, idxA int, lenB int, ctxB, actionB bool, idxB int) bool {
	if lenA != lenB {
		return lenA > lenB
	}
	if ctxA != ctxB {
		return ctxA
	}
	if actionA != actionB {
		return actionA
	}
	return idxA < idxB
}

func (e *Engine) compiled(ruleIdx int, pattern string) (*regexp.Regexp, error) {
	if re, ok := e.regexCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, &RegexCompileError{RuleIndex: ruleIdx, Regex: pattern, Err: err}
	}
	e.regexCache[pattern] = re
	return re, nil
}

// indentAt counts the space/tab run between the start of the current line
// and e.pos. Tabs count as one unit per spec.md's fixed design-note
// decision; each space or tab byte adds one.
func (e *Engine) indentAt() int {
	n := 0
	for i := e.lineStart; i < e.pos; i++ {
		c := e.input[i]
		if c != ' ' && c != '\t' {
			break
		}
		n++
	}
	return n
}

// emitUnknown consumes exactly one UTF-8 code point as the recovery token
// for "no rule matched" (spec.md §4.5 step 6).
func (e *Engine) emitUnknown() Token {
	_, size := utf8.DecodeRuneInString(e.input[e.pos:])
	tok := Token{
		Kind:   e.unknownID,
		Value:  e.input[e.pos : e.pos+size],
		Index:  e.pos,
		Row:    e.row,
		Col:    e.col,
		Length: size,
		Indent: e.indentAt(),
	}
	e.advance(size)
	e.updateContext(e.unknownID)
	return tok
}

// advance consumes n bytes starting at e.pos, updating pos/row/col/
// lineStart. col counts one per rune regardless of display width
// (spec.md §4.5 step 10 fixes col as a plain character count after the
// last '\n', not a display-width measure), so runtime.Engine and the
// generated Lexer's runeWidth-less NextToken agree on every Token.Col.
// A single matched token may itself contain more than one '\n' (e.g. a
// whitespace rule spanning blank lines), so every newline crossed here
// gets its own lineIndex entry, not just the last one.
func (e *Engine) advance(n int) {
	text := e.input[e.pos : e.pos+n]
	start := e.pos
	for i, r := range text {
		if r == '\n' {
			e.row++
			e.col = 1
			e.lineStart = start + i + 1
			e.lines.advance(e.lineStart)
			continue
		}
		e.col++
	}
	e.pos = start + n
}

// updateContext applies spec.md §4.5 step 11: only a significant token
// (neither Whitespace nor Newline) updates the context state that gates
// %NAME rules.
func (e *Engine) updateContext(kindID int) {
	name, ok := e.spec.KindName(kindID)
	if !ok {
		return
	}
	if name == klex.Whitespace || name == klex.Newline {
		return
	}
	e.lastSignificant = name
}
