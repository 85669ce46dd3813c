package runtime

import "fmt"

// RegexCompileError reports a rule whose canonical_regex failed to compile.
// The spec compiler never validates slash-delimited bodies (spec.md §4.5),
// so this can only surface here, on first use of the offending rule.
type RegexCompileError struct {
	RuleIndex int
	Regex     string
	Err       error
}

func (e *RegexCompileError) Error() string {
	return fmt.Sprintf("runtime: rule %d: regex compile failed for %q: %v", e.RuleIndex, e.Regex, e.Err)
}

func (e *RegexCompileError) Unwrap() error { return e.Err }

// MissingActionError reports an action rule the Engine matched but for
// which the caller registered no ActionFunc.
type MissingActionError struct {
	RuleIndex int
}

func (e *MissingActionError) Error() string {
	return fmt.Sprintf("runtime: rule %d: matched an action rule but no ActionFunc was registered for it", e.RuleIndex)
}
