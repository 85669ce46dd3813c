// Package emit implements the C5 code emitter: it combines a
// klex.LexerSpec with the embedded runtime template (template.go) into a
// single, standalone Go source file exposing Kind, Token, Lexer,
// NewLexer, and NextToken, per spec.md §4.4.
//
// The emitter never reorders rules, renames identifiers beyond the
// Go-identifier sanitization spec.md leaves to the implementer, or alters
// action-code text; prefix_code and suffix_code are copied through
// byte-identical (spec.md §8 property 8).
package emit

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/klex-lang/klex"
)

type kindData struct {
	GoName string
	ID     int
}

type ruleData struct {
	RegexLit   string
	Context    string
	IsAction   bool
	ActionCode string
	KindGoName string
}

type templateData struct {
	SourceLabel string
	PackageName string
	PrefixCode  string
	SuffixCode  string
	Kinds       []kindData
	Rules       []ruleData
}

// Generate is the core operation spec.md §6 names: generate(spec,
// source_label) -> String. The emitted file declares "package lexer";
// use GeneratePackage to name it otherwise (internal/config's generator
// settings drive that choice for cmd/klex).
func Generate(spec *klex.LexerSpec, sourceLabel string) (string, error) {
	return GeneratePackage(spec, sourceLabel, "lexer")
}

// GeneratePackage is Generate with an explicit output package name.
func GeneratePackage(spec *klex.LexerSpec, sourceLabel, packageName string) (string, error) {
	if spec == nil {
		return "", fmt.Errorf("emit: nil spec")
	}
	if packageName == "" {
		packageName = "lexer"
	}

	data := templateData{
		SourceLabel: sourceLabel,
		PackageName: packageName,
		PrefixCode:  spec.PrefixCode,
		SuffixCode:  spec.SuffixCode,
	}
	for _, k := range spec.Tokens {
		data.Kinds = append(data.Kinds, kindData{GoName: goIdentifier(k.Name), ID: k.ID})
	}
	for _, r := range spec.Rules {
		context := ""
		if r.Context != "" {
			// lastSignificant is set to Kind.String() (the Go identifier),
			// not the raw spec name, so the gate must compare identifiers
			// on both sides.
			context = goIdentifier(r.Context)
		}
		rd := ruleData{
			RegexLit:   strconv.Quote(r.Regex),
			Context:    context,
			IsAction:   r.Body == klex.BodyAction,
			ActionCode: r.Action,
		}
		if !rd.IsAction {
			rd.KindGoName = goIdentifier(r.TokenName)
		}
		data.Rules = append(data.Rules, rd)
	}

	var buf bytes.Buffer
	if err := lexerTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("emit: %w", err)
	}
	return buf.String(), nil
}
