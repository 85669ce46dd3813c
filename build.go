package klex

// reservedKinds are folded into the name table regardless of whether the
// spec text ever mentions them (invariants 2 and 3).
var reservedKinds = []string{Whitespace, Newline, Unknown}

// buildSpec implements the C3 IR Builder: it assigns dense ids to every
// distinct kind name, in the order rules declare them, then reserved kinds,
// then names contributed only by %token, and validates context references
// against the resulting set.
func buildSpec(prefix, suffix string, raw []rawRule, declaredTokens []string) (*LexerSpec, error) {
	nameToID := make(map[string]int)
	var tokens []TokenKind

	addName := func(name string) {
		if _, ok := nameToID[name]; ok {
			return
		}
		nameToID[name] = len(tokens)
		tokens = append(tokens, TokenKind{ID: len(tokens), Name: name})
	}

	for _, r := range raw {
		if !r.IsAction {
			addName(r.KindName)
		}
	}
	for _, name := range reservedKinds {
		addName(name)
	}
	for _, name := range declaredTokens {
		addName(name)
	}

	rules := make([]LexerRule, 0, len(raw))
	for _, r := range raw {
		if r.Context != "" {
			if _, ok := nameToID[r.Context]; !ok {
				return nil, &UnknownContextError{Line: r.Line, Context: r.Context}
			}
		}

		regex, err := NormalizePattern(r.PatternText)
		if err != nil {
			return nil, err
		}

		rule := LexerRule{
			Regex:   regex,
			Context: r.Context,
		}
		if r.IsAction {
			rule.Body = BodyAction
			rule.Action = r.ActionCode
			rule.TokenID = -1
		} else {
			rule.Body = BodyKind
			rule.TokenName = r.KindName
			rule.TokenID = nameToID[r.KindName]
		}
		rules = append(rules, rule)
	}

	return &LexerSpec{
		PrefixCode:     prefix,
		Rules:          rules,
		SuffixCode:     suffix,
		DeclaredTokens: declaredTokens,
		Tokens:         tokens,
		nameToID:       nameToID,
	}, nil
}
