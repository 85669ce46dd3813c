package klex

import "testing"

func TestBuildSpecAssignsDenseIDs(t *testing.T) {
	raw := []rawRule{
		{Line: 1, PatternText: `[0-9]+`, KindName: "NUMBER"},
		{Line: 2, PatternText: `'+'`, KindName: "PLUS"},
		{Line: 3, PatternText: `[ \t]+`, KindName: Whitespace},
	}
	spec, err := buildSpec("", "", raw, nil)
	if err != nil {
		t.Fatal(err)
	}

	numID, ok := spec.TokenID("NUMBER")
	if !ok || numID != 0 {
		t.Errorf("NUMBER id = %d, %v, want 0, true", numID, ok)
	}
	plusID, ok := spec.TokenID("PLUS")
	if !ok || plusID != 1 {
		t.Errorf("PLUS id = %d, %v, want 1, true", plusID, ok)
	}
	// Whitespace was already declared by rule 3, so it must not be
	// re-added by the reserved-kind pass; its id stays where the rule
	// declaration order put it.
	wsID, ok := spec.TokenID(Whitespace)
	if !ok || wsID != 2 {
		t.Errorf("Whitespace id = %d, %v, want 2, true", wsID, ok)
	}
	// Newline and Unknown are reserved and always exist, even though no
	// rule ever mentions them.
	if _, ok := spec.TokenID(Newline); !ok {
		t.Error("Newline missing from token table")
	}
	if _, ok := spec.TokenID(Unknown); !ok {
		t.Error("Unknown missing from token table")
	}
}

func TestBuildSpecActionRuleGetsNoTokenID(t *testing.T) {
	raw := []rawRule{
		{Line: 1, PatternText: `"debug"`, IsAction: true, ActionCode: "return None"},
	}
	spec, err := buildSpec("", "", raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Rules[0].TokenID != -1 {
		t.Errorf("action rule TokenID = %d, want -1", spec.Rules[0].TokenID)
	}
	if spec.Rules[0].Body != BodyAction {
		t.Errorf("action rule Body = %v, want BodyAction", spec.Rules[0].Body)
	}
}

func TestBuildSpecDeclaredTokensGetIDs(t *testing.T) {
	raw := []rawRule{
		{Line: 1, PatternText: `[0-9]+`, KindName: "NUMBER"},
	}
	spec, err := buildSpec("", "", raw, []string{"EXTRA"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := spec.TokenID("EXTRA"); !ok {
		t.Error("declared token EXTRA missing from token table")
	}
}

func TestBuildSpecUnknownContextRef(t *testing.T) {
	raw := []rawRule{
		{Line: 4, PatternText: `[0-9]+`, KindName: "NUMBER", Context: "NOSUCHKIND"},
	}
	_, err := buildSpec("", "", raw, nil)
	ctxErr, ok := err.(*UnknownContextError)
	if !ok {
		t.Fatalf("err = %v (%T), want *UnknownContextError", err, err)
	}
	if ctxErr.Line != 4 || ctxErr.Context != "NOSUCHKIND" {
		t.Errorf("UnknownContextError = %+v", ctxErr)
	}
}

func TestBuildSpecValidContextRef(t *testing.T) {
	raw := []rawRule{
		{Line: 1, PatternText: `/[a-z]+/`, KindName: "ID"},
		{Line: 2, PatternText: `/[0-9]+/`, KindName: "IDNUM", Context: "ID"},
	}
	spec, err := buildSpec("", "", raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Rules[1].Context != "ID" {
		t.Errorf("Context = %q, want ID", spec.Rules[1].Context)
	}
}
