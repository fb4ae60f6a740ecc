package analyzer

import (
	"fmt"
	"sort"
)

// symbol is one entry in the flat namespace: the declared type and the line
// of the declaration that produced it.
type symbol struct {
	declaredType string
	declLine     int
	used         bool
}

// typeKeywords are the keywords that open a declaration. An identifier after
// a flow keyword such as return or while is a use, not a declaration.
var typeKeywords = map[string]bool{
	"int":    true,
	"float":  true,
	"double": true,
	"String": true,
	"void":   true,
}

// isDeclKeyword reports whether t can declare the identifier following it.
func isDeclKeyword(t Token) bool {
	return t.Kind == Keyword && typeKeywords[t.Lexeme]
}

// CheckSemantics validates declaration/use and type consistency over a token
// stream. It always runs to completion; the returned messages may mix hard
// errors and warnings, and an empty slice means no issues.
//
// The namespace is flat. A declaration is a type keyword immediately
// followed by an Identifier; redeclaring a name silently overwrites its type
// and declaration line.
func CheckSemantics(tokens []Token) []string {
	var messages []string

	// Pass 1: build the symbol table.
	table := make(map[string]*symbol)
	for i := 0; i+1 < len(tokens); i++ {
		if isDeclKeyword(tokens[i]) && tokens[i+1].Kind == Identifier {
			table[tokens[i+1].Lexeme] = &symbol{
				declaredType: tokens[i].Lexeme,
				declLine:     tokens[i+1].Line,
			}
		}
	}

	// Pass 2: usage and the single type rule.
	for i, t := range tokens {
		if t.Kind != Identifier {
			continue
		}
		if i+1 < len(tokens) && tokens[i+1].Kind == Assignment {
			// Assignment target.
			sym, declared := table[t.Lexeme]
			if !declared {
				messages = append(messages, fmt.Sprintf("Variable '%s' assigned before declaration (line %d).", t.Lexeme, t.Line))
				continue
			}
			sym.used = true
			if i+2 < len(tokens) && tokens[i+2].Kind == String && sym.declaredType == "int" {
				messages = append(messages, fmt.Sprintf("Type error: cannot assign string to int variable '%s' (line %d).", t.Lexeme, tokens[i+2].Line))
			}
			continue
		}
		// The identifier of a declaration is not a use of the name.
		if i > 0 && isDeclKeyword(tokens[i-1]) {
			continue
		}
		if sym, ok := table[t.Lexeme]; ok {
			sym.used = true
		}
	}

	// Pass 3: unused declarations. Sorted so repeated runs emit the
	// warnings in the same order.
	var unused []string
	for name, sym := range table {
		if !sym.used {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)
	for _, name := range unused {
		messages = append(messages, fmt.Sprintf("Warning: variable '%s' declared at line %d but not used.", name, table[name].declLine))
	}

	return messages
}
