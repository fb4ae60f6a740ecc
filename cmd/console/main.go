package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minicc/pkg/analyzer"
	"minicc/pkg/report"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "minicc",
	Short: "minicc — staged analysis for a small C-like language",
	Long: `minicc runs a three-stage analysis pipeline over a source file.

Commands:
  lex       Lexical analysis: print the token stream
  syntax    Lexical + syntax analysis
  semantic  The full gated pipeline
  check     All stages with per-stage banners
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		report.SetColor(!noColor)
	},
}

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Run lexical analysis and print the token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline(args[0])
		if err != nil {
			return err
		}
		rep, err := p.RunLexical()
		if err != nil {
			return err
		}
		report.Lexical(os.Stdout, rep)
		if !rep.OK {
			os.Exit(1)
		}
		return nil
	},
}

var syntaxCmd = &cobra.Command{
	Use:   "syntax <file>",
	Short: "Run lexical then syntax analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline(args[0])
		if err != nil {
			return err
		}
		res, err := runThroughSyntax(p)
		if err != nil {
			return err
		}
		report.Syntax(os.Stdout, res)
		if !res.OK {
			os.Exit(1)
		}
		return nil
	},
}

var semanticCmd = &cobra.Command{
	Use:   "semantic <file>",
	Short: "Run the full gated pipeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline(args[0])
		if err != nil {
			return err
		}
		res, err := runThroughSyntax(p)
		if err != nil {
			return err
		}
		if !res.OK {
			report.Syntax(os.Stdout, res)
			os.Exit(1)
		}
		messages, err := p.RunSemantics()
		if err != nil {
			return err
		}
		report.Semantics(os.Stdout, messages)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run every stage in order with per-stage banners",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline(args[0])
		if err != nil {
			return err
		}

		report.Banner(os.Stdout, "Lexical Analysis")
		rep, err := p.RunLexical()
		if err != nil {
			return err
		}
		report.Lexical(os.Stdout, rep)
		if !rep.OK {
			os.Exit(1)
		}

		report.Banner(os.Stdout, "Syntax Analysis")
		res, err := p.RunSyntax()
		if err != nil {
			return err
		}
		report.Syntax(os.Stdout, res)
		if !res.OK {
			os.Exit(1)
		}

		report.Banner(os.Stdout, "Semantic Analysis")
		messages, err := p.RunSemantics()
		if err != nil {
			return err
		}
		report.Semantics(os.Stdout, messages)
		return nil
	},
}

// runThroughSyntax drives the pipeline up to the syntax stage, printing
// lexical errors itself; it only returns a result once lexing passed.
func runThroughSyntax(p *analyzer.Pipeline) (analyzer.SyntaxResult, error) {
	rep, err := p.RunLexical()
	if err != nil {
		return analyzer.SyntaxResult{}, err
	}
	if !rep.OK {
		report.Lexical(os.Stdout, rep)
		os.Exit(1)
	}
	return p.RunSyntax()
}

func loadPipeline(path string) (*analyzer.Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return analyzer.NewPipeline(string(data)), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(lexCmd, syntaxCmd, semanticCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
