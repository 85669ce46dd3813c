/*
Package runtime implements the executable semantics klex.LexerSpec only
describes. An Engine holds one input string and one spec; each call to
NextToken advances it by exactly one token, per spec.md §4.5: build the
enabled rule set for the current position, evaluate every candidate,
select the longest match (ties broken context-gated over context-free,
then action-over-kind, then declaration order), run the winning rule's
action code if it has any, and advance.

Action rules are opaque in the IR (klex.LexerRule.Action is a string of
target-language source), so a direct Engine needs the caller to supply the
Go equivalent out of band: NewEngine's actions map binds each action
rule's index to an ActionFunc closure. Code generated by the emit
subpackage instead inlines the action text verbatim, since there the
"target language" its output runs in is Go itself.
*/
package runtime
