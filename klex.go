package klex

// ParseSpec compiles the text of a ".klex" file into a LexerSpec: it runs
// the spec parser (C2) to split sections and produce a raw rule list, then
// the IR builder (C3) to assign ids and validate context references.
//
// ParseSpec is a pure function of text: identical input always yields an
// identical LexerSpec (invariant 2 in spec.md §3, property 3 in §8).
func ParseSpec(text string) (*LexerSpec, error) {
	prefix, ruleSection, suffix, err := splitSections(text)
	if err != nil {
		return nil, err
	}

	raw, declaredTokens, err := parseRuleSection(ruleSection)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyRuleSection
	}

	return buildSpec(prefix, suffix, raw, declaredTokens)
}
