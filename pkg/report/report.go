// Package report renders analysis stage results for terminals. Coloring is
// process-global and can be switched off for pipes and tests.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"minicc/pkg/analyzer"
)

var (
	errorText   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningText = color.New(color.FgYellow, color.Bold).SprintFunc()
	okText      = color.New(color.FgGreen).SprintFunc()
	bannerText  = color.New(color.FgBlue).SprintFunc()
)

// SetColor enables or disables colored output for all render calls.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Banner writes the stage separator used before each analysis stage.
func Banner(w io.Writer, stage string) {
	fmt.Fprintln(w, bannerText(fmt.Sprintf("--- %s ---", stage)))
}

// Lexical writes the outcome of the lexical stage: the token listing when
// every line passed, otherwise one error line per failed source line.
func Lexical(w io.Writer, rep *analyzer.LexReport) {
	if rep.OK {
		fmt.Fprintln(w, "Tokens:")
		for _, t := range rep.Tokens {
			fmt.Fprintf(w, "  %s\n", t)
		}
		return
	}
	for _, lr := range rep.Lines {
		if lr.Err != nil {
			fmt.Fprintf(w, "%s Line %d: %s\n", errorText("Lexical Error:"), lr.Line, lr.Err)
		}
	}
}

// Syntax writes the outcome of the syntax stage.
func Syntax(w io.Writer, res analyzer.SyntaxResult) {
	if res.OK {
		fmt.Fprintln(w, okText("Syntax OK."))
		return
	}
	fmt.Fprintln(w, errorText("Syntax Errors:"))
	for _, m := range res.Messages {
		fmt.Fprintf(w, "  %s\n", m)
	}
}

// Semantics writes the outcome of the semantic stage. Messages with a
// "Warning:" prefix render as warnings, everything else as errors.
func Semantics(w io.Writer, messages []string) {
	if len(messages) == 0 {
		fmt.Fprintln(w, okText("Semantic OK. No issues found."))
		return
	}
	fmt.Fprintln(w, "Semantic Warnings/Errors:")
	for _, m := range messages {
		if strings.HasPrefix(m, "Warning:") {
			fmt.Fprintf(w, "  %s\n", warningText(m))
		} else {
			fmt.Fprintf(w, "  %s\n", errorText(m))
		}
	}
}
