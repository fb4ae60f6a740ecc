package analyzer

import "fmt"

// SyntaxResult is the outcome of a syntax pass. OK is true exactly when no
// diagnostic was emitted.
type SyntaxResult struct {
	OK       bool
	Messages []string
}

// CheckSyntax validates structural well-formedness of a token stream. It is
// a pure function of its input: tokens are never mutated and repeated calls
// return identical results.
//
// Two rules are checked, and all diagnostics are collected rather than
// stopping at the first: every assignment must be terminated by a semicolon
// on its own line, and parentheses/braces must balance across the stream.
func CheckSyntax(tokens []Token) SyntaxResult {
	var messages []string

	// Assignment termination. The search for ';' is bounded to tokens on
	// the assignment's own line.
	for i, t := range tokens {
		if t.Kind != Assignment {
			continue
		}
		found := false
		for j := i + 1; j < len(tokens) && tokens[j].Line == t.Line; j++ {
			if tokens[j].Kind == Punctuation && tokens[j].Lexeme == ";" {
				found = true
				break
			}
		}
		if !found {
			messages = append(messages, fmt.Sprintf("Missing semicolon at or after assignment on line %d.", t.Line))
		}
	}

	// Delimiter balance. An early closer is reported at its line and the
	// counter clamps to zero so later closers do not cascade.
	paren, brace := 0, 0
	for _, t := range tokens {
		if t.Kind != Punctuation {
			continue
		}
		switch t.Lexeme {
		case "(":
			paren++
		case ")":
			paren--
			if paren < 0 {
				messages = append(messages, fmt.Sprintf("Unmatched closing parenthesis at line %d.", t.Line))
				paren = 0
			}
		case "{":
			brace++
		case "}":
			brace--
			if brace < 0 {
				messages = append(messages, fmt.Sprintf("Unmatched closing brace at line %d.", t.Line))
				brace = 0
			}
		}
	}
	if paren > 0 {
		messages = append(messages, "Unmatched opening parenthesis.")
	}
	if brace > 0 {
		messages = append(messages, "Unmatched opening brace.")
	}

	return SyntaxResult{OK: len(messages) == 0, Messages: messages}
}
