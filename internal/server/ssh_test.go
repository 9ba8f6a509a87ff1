package server

import (
	"slices"
	"testing"

	"joken-ghost/internal/game"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []game.Action
	}{
		{"weapons", "123", []game.Action{game.ActionRock, game.ActionPaper, game.ActionScissors}},
		{"shop", "456", []game.Action{game.ActionBuy1, game.ActionBuy2, game.ActionBuy3}},
		{"arrows", "\x1b[C\x1b[D", []game.Action{game.ActionTargetNext, game.ActionTargetPrev}},
		{"tab and shift-tab", "\t\x1b[Z", []game.Action{game.ActionTargetNext, game.ActionTargetPrev}},
		{"restart", "R", []game.Action{game.ActionRestart}},
		{"ctrl-c", "\x03", []game.Action{game.ActionQuit}},
		{"unknown keys dropped", "xyz9", nil},
		{"mixed", "a1\x1b[Cq", []game.Action{game.ActionTargetPrev, game.ActionRock, game.ActionTargetNext, game.ActionQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInput([]byte(tt.in))
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewSSHServer(t *testing.T) {
	s := NewSSHServer(":0", "host_key", nil, func() game.RNG { return game.NewRNG(1) })
	s.OnSession(func(*game.Session) {})
	if len(s.hooks) != 1 || s.Active() != 0 {
		t.Errorf("expected one hook and no battles, got %d hooks, %d active", len(s.hooks), s.Active())
	}
}
