// Package analyzer implements the three-stage analysis pipeline for a small
// C-like toy language.
//
// Pipeline: source text → Lex → CheckSyntax → CheckSemantics
//
// Each stage consumes the previous stage's output read-only; the Pipeline
// type enforces the stage order.
package analyzer

import "fmt"

// Kind identifies the category of a lexed token.
type Kind int

const (
	Keyword     Kind = iota // reserved word: int, if, while, ...
	Identifier              // variable / function name
	Number                  // integer or decimal literal
	String                  // string literal, quotes included
	Operator                // arithmetic / comparison operator
	Assignment              // the single "=" operator
	Punctuation             // ( ) { } ; ,
)

var kindNames = [...]string{
	Keyword:     "KEYWORD",
	Identifier:  "IDENTIFIER",
	Number:      "NUMBER",
	String:      "STRING",
	Operator:    "OPERATOR",
	Assignment:  "ASSIGNMENT",
	Punctuation: "PUNCTUATION",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit produced by the Lexer. Tokens are values;
// once emitted they are never mutated.
type Token struct {
	Kind   Kind
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-11s %-14q  line %d", t.Kind, t.Lexeme, t.Line)
}
