package emit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// goIdentifier turns a token kind name into an exported Go identifier
// suitable for a constant name: "NUMBER" becomes "Number", matching the
// casing convention the reserved kind names (Whitespace, Newline, Unknown)
// already use. Anything that isn't a valid identifier rune is dropped
// rather than transliterated, since kind names are expected to already be
// identifier-like per spec.md's grammar.
func goIdentifier(name string) string {
	titled := titleCaser.String(strings.ToLower(name))
	var b strings.Builder
	for _, r := range titled {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 || unicode.IsDigit(rune(b.String()[0])) {
		return "Kind" + b.String()
	}
	return b.String()
}
