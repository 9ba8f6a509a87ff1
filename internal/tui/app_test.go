package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"joken-ghost/internal/game"
	"joken-ghost/internal/render"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want game.Action
	}{
		{"rock", tcell.KeyRune, '1', game.ActionRock},
		{"scissors", tcell.KeyRune, '3', game.ActionScissors},
		{"large potion", tcell.KeyRune, '6', game.ActionBuy3},
		{"restart", tcell.KeyRune, 'r', game.ActionRestart},
		{"right arrow", tcell.KeyRight, 0, game.ActionTargetNext},
		{"backtab", tcell.KeyBacktab, 0, game.ActionTargetPrev},
		{"escape", tcell.KeyEscape, 0, game.ActionQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, game.ActionQuit},
		{"unmapped rune", tcell.KeyRune, 'z', game.ActionNone},
		{"unmapped key", tcell.KeyF5, 0, game.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyAction(tt.key, tt.r); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	cells := [][]render.Cell{
		{{Ch: 'G', FgR: 255, FgG: 85, FgB: 85, Bold: true}, {Ch: 'o'}},
		{{Ch: '█', BgR: 12, BgG: 12, BgB: 18}},
	}
	Blit(screen, cells)
	screen.Show()

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != 'G' {
		t.Errorf("expected 'G', got %q", mainc)
	}
	fg, _, attrs := style.Decompose()
	if fg != tcell.NewRGBColor(255, 85, 85) {
		t.Errorf("expected red foreground, got %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("expected bold")
	}

	mainc, _, style, _ = screen.GetContent(0, 1)
	if _, bg, _ := style.Decompose(); mainc != '█' || bg != tcell.NewRGBColor(12, 12, 18) {
		t.Errorf("expected block on dark background, got %q %v", mainc, bg)
	}
}
