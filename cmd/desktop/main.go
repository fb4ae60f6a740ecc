package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"minicc/pkg/analyzer"
)

const (
	screenW = 640
	screenH = 720

	lineHeight = 16
	logRows    = 24 // rows reserved for the result log pane
	codeRows   = 19
)

// Game is the interactive analyzer window: a result log on top, the source
// below, and one key per pipeline stage.
type Game struct {
	pipeline  *analyzer.Pipeline
	source    string
	codeLines []string
	logLines  []string
}

func newGame(source string) *Game {
	g := &Game{
		pipeline:  analyzer.NewPipeline(source),
		source:    source,
		codeLines: strings.Split(source, "\n"),
	}
	g.appendLog("Keys: L lexical, S syntax, M semantic, C clear")
	return g
}

func (g *Game) appendLog(lines ...string) {
	g.logLines = append(g.logLines, lines...)
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.runLexical()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.runSyntax()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.runSemantics()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.logLines = nil
		g.pipeline.Reset(g.source)
		g.appendLog("Cleared.")
	}
	return nil
}

func (g *Game) runLexical() {
	g.appendLog("--- Lexical Analysis ---")
	rep, err := g.pipeline.RunLexical()
	if err != nil {
		g.appendLog("Error: No code loaded.")
		return
	}
	if !rep.OK {
		for _, lr := range rep.Lines {
			if lr.Err != nil {
				g.appendLog(fmt.Sprintf("Lexical Error: Line %d: %s", lr.Line, lr.Err))
			}
		}
		return
	}
	g.appendLog("Tokens:")
	for _, t := range rep.Tokens {
		g.appendLog("  " + t.String())
	}
}

func (g *Game) runSyntax() {
	g.appendLog("--- Syntax Analysis ---")
	res, err := g.pipeline.RunSyntax()
	if errors.Is(err, analyzer.ErrStageOrder) {
		g.appendLog("Syntax Error: Lexical analysis not completed or failed.")
		return
	}
	if res.OK {
		g.appendLog("Syntax OK.")
		return
	}
	g.appendLog("Syntax Errors:")
	for _, m := range res.Messages {
		g.appendLog("  " + m)
	}
}

func (g *Game) runSemantics() {
	g.appendLog("--- Semantic Analysis ---")
	messages, err := g.pipeline.RunSemantics()
	if errors.Is(err, analyzer.ErrStageOrder) {
		g.appendLog("Semantic Error: Syntax analysis not completed or failed.")
		return
	}
	if len(messages) == 0 {
		g.appendLog("Semantic OK. No issues found.")
		return
	}
	g.appendLog("Semantic Warnings/Errors:")
	for _, m := range messages {
		g.appendLog("  " + m)
	}
}

// status names the stage the pipeline will accept next.
func (g *Game) status() string {
	switch g.pipeline.Progress() {
	case analyzer.LexPassed:
		return "Next stage: syntax (S)"
	case analyzer.SyntaxPassed:
		return "Next stage: semantic (M)"
	default:
		return "Next stage: lexical (L)"
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Result: "+g.status(), 4, 0)

	// Result log pane, tail only.
	visible := g.logLines
	if len(visible) > logRows {
		visible = visible[len(visible)-logRows:]
	}
	for i, line := range visible {
		ebitenutil.DebugPrintAt(screen, line, 4, (i+1)*lineHeight)
	}

	// Source pane.
	top := (logRows + 2) * lineHeight
	ebitenutil.DebugPrintAt(screen, "Code:", 4, top)
	for i, line := range g.codeLines {
		if i >= codeRows {
			break
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%3d  %s", i+1, line), 4, top+(i+1)*lineHeight)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <source-file>", os.Args[0])
	}
	sourceBytes, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Mini Compiler")

	if err := ebiten.RunGame(newGame(string(sourceBytes))); err != nil {
		log.Fatal(err)
	}
}
