package analyzer

import (
	"fmt"
	"strings"
	"unicode"
)

// keywords is the complete reserved-word set of the language. An identifier
// match whose lexeme appears here is classified as Keyword.
var keywords = map[string]bool{
	"int":    true,
	"float":  true,
	"double": true,
	"if":     true,
	"else":   true,
	"while":  true,
	"for":    true,
	"return": true,
	"void":   true,
	"String": true,
}

// twoCharOperators must be tried before their one-character prefixes.
var twoCharOperators = []string{"==", "!=", "<=", ">="}

const oneCharOperators = "=+-*/<>"

const punctuation = "(){};,"

// LexicalError reports an unrecognized run of characters on a single line.
// One bad line fails that line only; the document pass continues.
type LexicalError struct {
	Line int
	Text string // the offending run, surrounding whitespace trimmed
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Unrecognized token near: '%s'", e.Text)
}

// lexer holds the scanning state for a single source line.
type lexer struct {
	src  []rune
	line int // 1-based line number attached to every emitted token
}

// matchAt attempts to recognize a token starting exactly at pos. Alternatives
// are tried in priority order (string literal, identifier, number, operator,
// punctuation) and the first that matches wins. It returns the token and the
// position just past it.
func (l *lexer) matchAt(pos int) (Token, int, bool) {
	if tok, end, ok := l.matchString(pos); ok {
		return tok, end, true
	}
	if tok, end, ok := l.matchIdent(pos); ok {
		return tok, end, true
	}
	if tok, end, ok := l.matchNumber(pos); ok {
		return tok, end, true
	}
	if tok, end, ok := l.matchOperator(pos); ok {
		return tok, end, true
	}
	if tok, end, ok := l.matchPunctuation(pos); ok {
		return tok, end, true
	}
	return Token{}, pos, false
}

// matchString recognizes a double-quoted literal. The shortest closing quote
// wins and the quotes are part of the lexeme. An unterminated quote is not a
// string; the quote character then falls through to the unrecognized-run
// handling in TokenizeLine.
func (l *lexer) matchString(pos int) (Token, int, bool) {
	if l.src[pos] != '"' {
		return Token{}, pos, false
	}
	for i := pos + 1; i < len(l.src); i++ {
		if l.src[i] == '"' {
			return Token{Kind: String, Lexeme: string(l.src[pos : i+1]), Line: l.line}, i + 1, true
		}
	}
	return Token{}, pos, false
}

func (l *lexer) matchIdent(pos int) (Token, int, bool) {
	r := l.src[pos]
	if !unicode.IsLetter(r) && r != '_' {
		return Token{}, pos, false
	}
	end := pos + 1
	for end < len(l.src) {
		r := l.src[end]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		end++
	}
	lexeme := string(l.src[pos:end])
	kind := Identifier
	if keywords[lexeme] {
		kind = Keyword
	}
	return Token{Kind: kind, Lexeme: lexeme, Line: l.line}, end, true
}

// matchNumber recognizes digits with an optional fractional part. A dot not
// followed by a digit is left unconsumed.
func (l *lexer) matchNumber(pos int) (Token, int, bool) {
	if !unicode.IsDigit(l.src[pos]) {
		return Token{}, pos, false
	}
	end := pos + 1
	for end < len(l.src) && unicode.IsDigit(l.src[end]) {
		end++
	}
	if end+1 < len(l.src) && l.src[end] == '.' && unicode.IsDigit(l.src[end+1]) {
		end += 2
		for end < len(l.src) && unicode.IsDigit(l.src[end]) {
			end++
		}
	}
	return Token{Kind: Number, Lexeme: string(l.src[pos:end]), Line: l.line}, end, true
}

func (l *lexer) matchOperator(pos int) (Token, int, bool) {
	if pos+1 < len(l.src) {
		pair := string(l.src[pos : pos+2])
		for _, op := range twoCharOperators {
			if pair == op {
				return Token{Kind: Operator, Lexeme: op, Line: l.line}, pos + 2, true
			}
		}
	}
	r := l.src[pos]
	if !strings.ContainsRune(oneCharOperators, r) {
		return Token{}, pos, false
	}
	kind := Operator
	if r == '=' {
		kind = Assignment
	}
	return Token{Kind: kind, Lexeme: string(r), Line: l.line}, pos + 1, true
}

func (l *lexer) matchPunctuation(pos int) (Token, int, bool) {
	r := l.src[pos]
	if !strings.ContainsRune(punctuation, r) {
		return Token{}, pos, false
	}
	return Token{Kind: Punctuation, Lexeme: string(r), Line: l.line}, pos + 1, true
}

// TokenizeLine scans one source line and returns its tokens in order.
//
// The scan repeatedly finds the leftmost position where any alternative
// matches. Characters skipped over to reach a match — or left after the last
// one — are an unrecognized run unless they are all whitespace, in which case
// they are silently dropped. On error no tokens are returned: the whole line
// is reported as failed.
func TokenizeLine(text string, line int) ([]Token, error) {
	l := &lexer{src: []rune(text), line: line}
	var tokens []Token

	cursor := 0 // start of the text not yet accounted for
	pos := 0
	for pos < len(l.src) {
		tok, end, ok := l.matchAt(pos)
		if !ok {
			pos++
			continue
		}
		if skipped := strings.TrimSpace(string(l.src[cursor:pos])); skipped != "" {
			return nil, &LexicalError{Line: line, Text: skipped}
		}
		tokens = append(tokens, tok)
		pos = end
		cursor = end
	}
	if trailing := strings.TrimSpace(string(l.src[cursor:])); trailing != "" {
		return nil, &LexicalError{Line: line, Text: trailing}
	}
	return tokens, nil
}
