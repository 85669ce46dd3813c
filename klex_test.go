package klex

import (
	"strings"
	"testing"
)

// arithSpec mirrors spec.md §8's first concrete scenario: numbers,
// identifiers, a plus sign and whitespace.
const arithSpec = `
%%
[0-9]+ -> NUMBER
/[a-zA-Z_][a-zA-Z0-9_]*/ -> ID
'+' -> PLUS
/[ \t]+/ -> _
%%
`

func TestParseSpecArith(t *testing.T) {
	spec, err := ParseSpec(arithSpec)
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Rules) != 4 {
		t.Fatalf("got %d rules, want 4", len(spec.Rules))
	}
	names := []string{"NUMBER", "ID", "PLUS", Whitespace, Newline, Unknown}
	for _, n := range names {
		if _, ok := spec.TokenID(n); !ok {
			t.Errorf("missing token kind %q", n)
		}
	}
}

func TestParseSpecPassthroughRoundTrips(t *testing.T) {
	text := "// prelude\nimport foo\n%%\n'x' -> X\n%%\n// trailer\n"
	spec, err := ParseSpec(text)
	if err != nil {
		t.Fatal(err)
	}
	if spec.PrefixCode != "// prelude\nimport foo\n" {
		t.Errorf("PrefixCode = %q", spec.PrefixCode)
	}
	if spec.SuffixCode != "// trailer\n" {
		t.Errorf("SuffixCode = %q", spec.SuffixCode)
	}
}

func TestParseSpecContextGating(t *testing.T) {
	// spec.md §8 scenario 2: a context-gated rule doesn't fire unless the
	// last significant token matches its predecessor, and whitespace in
	// between doesn't reset that state.
	text := strings.Join([]string{
		"%%",
		"[0-9]+ -> NUMBER",
		"/[a-zA-Z_][a-zA-Z0-9_]*/ -> ID",
		"'+' -> PLUS",
		"/[ \\t]+/ -> _",
		"%ID /[0-9]+/ -> IDNUM",
		"%%",
	}, "\n")
	spec, err := ParseSpec(text)
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, r := range spec.Rules {
		if r.TokenName == "IDNUM" {
			found = true
			if r.Context != "ID" {
				t.Errorf("IDNUM context = %q, want ID", r.Context)
			}
		}
	}
	if !found {
		t.Fatal("IDNUM rule not found")
	}
}

func TestParseSpecActionRuleDropsToken(t *testing.T) {
	// spec.md §8 scenario 3: an action rule may consume input and emit
	// nothing (a "None" result).
	text := "%%\n\"debug\" -> { return None }\n/[a-z]+/ -> WORD\n%%\n"
	spec, err := ParseSpec(text)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Rules[0].Body != BodyAction {
		t.Fatalf("Rules[0].Body = %v, want BodyAction", spec.Rules[0].Body)
	}
	if spec.Rules[0].TokenID != -1 {
		t.Errorf("Rules[0].TokenID = %d, want -1", spec.Rules[0].TokenID)
	}
}

func TestParseSpecSectionErrors(t *testing.T) {
	if _, err := ParseSpec("no separators here"); err != ErrSpecSections {
		t.Errorf("err = %v, want ErrSpecSections", err)
	}
}

func TestParseSpecEmptyRuleSection(t *testing.T) {
	if _, err := ParseSpec("prefix\n%%\n%%\nsuffix\n"); err != ErrEmptyRuleSection {
		t.Errorf("err = %v, want ErrEmptyRuleSection", err)
	}
}

func TestParseSpecUnderscoreRewrite(t *testing.T) {
	spec, err := ParseSpec("%%\n/[ \\t]+/ -> _\n%%\n")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Rules[0].TokenName != Whitespace {
		t.Errorf("TokenName = %q, want %q", spec.Rules[0].TokenName, Whitespace)
	}
}
