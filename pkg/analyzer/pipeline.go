package analyzer

import (
	"errors"
	"strings"
)

// Progress tracks how far a pipeline run has advanced. Each stage may only
// run once the previous one has passed on the same source.
type Progress int

const (
	NotStarted   Progress = iota
	LexPassed             // lexical stage passed; token stream is valid
	SyntaxPassed          // syntax stage passed; semantics may run
)

var (
	// ErrNoCode is reported when the document is empty or whitespace-only.
	ErrNoCode = errors.New("no code loaded")
	// ErrStageOrder is reported when a stage runs before the previous one
	// has passed.
	ErrStageOrder = errors.New("previous analysis stage has not passed")
)

// LineResult is the lexical outcome for a single source line. Exactly one of
// Tokens and Err is meaningful; an empty line has neither.
type LineResult struct {
	Line   int
	Tokens []Token
	Err    *LexicalError
}

// LexReport is the lexical outcome for a whole document. Every line is
// attempted even after a failure; OK is true only when no line failed.
// Tokens is the concatenated document stream and is set only when OK.
type LexReport struct {
	OK     bool
	Lines  []LineResult
	Tokens []Token
}

// TokenizeDocument splits text on newlines and tokenizes each line
// independently, so one bad line does not hide errors on the lines after it.
// Line numbers are 1-based and count every split segment, including a
// trailing empty one when the text ends with a newline.
func TokenizeDocument(text string) *LexReport {
	report := &LexReport{OK: true}
	for i, line := range strings.Split(text, "\n") {
		lr := LineResult{Line: i + 1}
		tokens, err := TokenizeLine(line, i+1)
		if err != nil {
			var lexErr *LexicalError
			errors.As(err, &lexErr)
			lr.Err = lexErr
			report.OK = false
		} else {
			lr.Tokens = tokens
		}
		report.Lines = append(report.Lines, lr)
	}
	if report.OK {
		for _, lr := range report.Lines {
			report.Tokens = append(report.Tokens, lr.Tokens...)
		}
	}
	return report
}

// Pipeline owns one analysis run over a fixed source snapshot. Replacing the
// source discards the token stream and all progress, so a later stage can
// never observe tokens from superseded text.
type Pipeline struct {
	source   string
	progress Progress
	tokens   []Token
}

func NewPipeline(source string) *Pipeline {
	return &Pipeline{source: source}
}

// Reset replaces the source wholesale and returns the pipeline to
// NotStarted.
func (p *Pipeline) Reset(source string) {
	p.source = source
	p.progress = NotStarted
	p.tokens = nil
}

func (p *Pipeline) Progress() Progress {
	return p.progress
}

// Tokens returns the current document token stream, valid once the lexical
// stage has passed.
func (p *Pipeline) Tokens() []Token {
	return p.tokens
}

// RunLexical tokenizes the whole document. It fails with ErrNoCode when the
// source is empty or whitespace-only; otherwise it returns the per-line
// report and advances progress when every line passed.
func (p *Pipeline) RunLexical() (*LexReport, error) {
	if strings.TrimSpace(p.source) == "" {
		return nil, ErrNoCode
	}
	report := TokenizeDocument(p.source)
	if report.OK {
		p.tokens = report.Tokens
		if p.progress < LexPassed {
			p.progress = LexPassed
		}
	} else {
		p.tokens = nil
		p.progress = NotStarted
	}
	return report, nil
}

// RunSyntax checks the token stream produced by a passed lexical stage.
func (p *Pipeline) RunSyntax() (SyntaxResult, error) {
	if p.progress < LexPassed {
		return SyntaxResult{}, ErrStageOrder
	}
	result := CheckSyntax(p.tokens)
	if result.OK {
		p.progress = SyntaxPassed
	} else {
		p.progress = LexPassed
	}
	return result, nil
}

// RunSemantics checks the token stream once syntax has passed on it.
func (p *Pipeline) RunSemantics() ([]string, error) {
	if p.progress < SyntaxPassed {
		return nil, ErrStageOrder
	}
	return CheckSemantics(p.tokens), nil
}
