package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSemanticsClean(t *testing.T) {
	messages := CheckSemantics(lexAll(t, "int x = 5;"))
	assert.Empty(t, messages)
}

func TestCheckSemanticsStringToInt(t *testing.T) {
	messages := CheckSemantics(lexAll(t, `int x = "hello";`))
	assert.Contains(t, messages, "Type error: cannot assign string to int variable 'x' (line 1).")
}

func TestCheckSemanticsTypeErrorBlamesRHSLine(t *testing.T) {
	messages := CheckSemantics(lexAll(t, "int x = 1;\nx =\n\"boom\";"))
	assert.Contains(t, messages, "Type error: cannot assign string to int variable 'x' (line 3).")
}

func TestCheckSemanticsOnlyIntStringPairIsChecked(t *testing.T) {
	// The single hard-coded rule: string into int. Everything else passes.
	messages := CheckSemantics(lexAll(t, `float f = "text";`))
	assert.Empty(t, messages)
}

func TestCheckSemanticsAssignedBeforeDeclaration(t *testing.T) {
	messages := CheckSemantics(lexAll(t, "y = 10;"))
	assert.Contains(t, messages, "Variable 'y' assigned before declaration (line 1).")
}

func TestCheckSemanticsLaterDeclarationIsVisible(t *testing.T) {
	// The symbol table is built over the whole stream before the usage
	// scan, so a declaration below the assignment still satisfies it.
	messages := CheckSemantics(lexAll(t, "y = 10;\nint y;"))
	assert.Empty(t, messages)
}

func TestCheckSemanticsUnusedDeclaration(t *testing.T) {
	messages := CheckSemantics(lexAll(t, "int count;"))
	assert.Contains(t, messages, "Warning: variable 'count' declared at line 1 but not used.")
}

func TestCheckSemanticsInitializedDeclarationCountsAsUsed(t *testing.T) {
	messages := CheckSemantics(lexAll(t, "int x = 5;"))
	assert.NotContains(t, messages, "Warning: variable 'x' declared at line 1 but not used.")
}

func TestCheckSemanticsPlainMentionCountsAsUsed(t *testing.T) {
	messages := CheckSemantics(lexAll(t, "int x;\nreturn x;"))
	assert.Empty(t, messages)
}

func TestCheckSemanticsFlowKeywordDoesNotDeclare(t *testing.T) {
	// "return y" is a use of y, not a declaration with type "return":
	// no symbol is recorded and no unused warning can fire for it.
	messages := CheckSemantics(lexAll(t, "return y;"))
	assert.Empty(t, messages)
}

func TestCheckSemanticsMentionAfterFlowKeywordMarksUse(t *testing.T) {
	messages := CheckSemantics(lexAll(t, "int x;\nif (x == 1) { }"))
	assert.Empty(t, messages)

	messages = CheckSemantics(lexAll(t, "int x;\nwhile (x < 10) { }"))
	assert.Empty(t, messages)
}

func TestCheckSemanticsMultipleUnusedAllReported(t *testing.T) {
	messages := CheckSemantics(lexAll(t, "int a;\nfloat b;\nint c;\nreturn c;"))
	// Exactly the two unused names warn; c is used by the return.
	assert.ElementsMatch(t, []string{
		"Warning: variable 'a' declared at line 1 but not used.",
		"Warning: variable 'b' declared at line 2 but not used.",
	}, messages)
}

func TestCheckSemanticsRedeclarationOverwrites(t *testing.T) {
	// The String redeclaration wins, so assigning a string is fine.
	messages := CheckSemantics(lexAll(t, "int x;\nString x;\nx = \"ok\";"))
	assert.Empty(t, messages)
}

func TestCheckSemanticsRedeclarationMovesDeclLine(t *testing.T) {
	messages := CheckSemantics(lexAll(t, "int x;\nfloat x;"))
	assert.Contains(t, messages, "Warning: variable 'x' declared at line 2 but not used.")
}

func TestCheckSemanticsUndeclaredAssignmentSkipsTypeRule(t *testing.T) {
	messages := CheckSemantics(lexAll(t, `z = "text";`))
	assert.Equal(t, []string{"Variable 'z' assigned before declaration (line 1)."}, messages)
}

func TestCheckSemanticsBoundedLookahead(t *testing.T) {
	// Assignment as the final token must not index past the stream.
	messages := CheckSemantics(lexAll(t, "int x;\nx ="))
	assert.NotContains(t, messages, "Warning: variable 'x' declared at line 1 but not used.")
}

func TestCheckSemanticsIdempotent(t *testing.T) {
	tokens := lexAll(t, "int a;\nint b;\ny = 1;")
	first := CheckSemantics(tokens)
	second := CheckSemantics(tokens)
	assert.Equal(t, first, second)
}
