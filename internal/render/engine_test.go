package render

import (
	"strings"
	"testing"

	"joken-ghost/internal/game"
)

func rowText(cells [][]Cell, y int) string {
	var sb strings.Builder
	for _, c := range cells[y] {
		sb.WriteRune(c.Ch)
	}
	return sb.String()
}

func screenText(cells [][]Cell) string {
	var sb strings.Builder
	for y := range cells {
		sb.WriteString(rowText(cells, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func testState() game.BattleState {
	layout := game.DefaultLayout()
	return game.BattleState{
		ID: "test",
		Enemies: []game.EnemySnapshot{
			{ID: 1, Index: 0, Kind: "wraith", Label: "Wraith", Health: 60, MaxHealth: 120,
				Slot: 0, Active: true, Alive: true, Front: true, Pose: layout[0].PoseOf()},
			{ID: 2, Index: 1, Kind: "banshee", Label: "Banshee", Health: 120, MaxHealth: 120,
				Slot: 1, Active: true, Alive: true, Pose: layout[1].PoseOf()},
		},
		FrontIndex: 0,
		Selected:   1,
		Player:     game.PlayerSnapshot{Name: "Hunter", Health: 80, MaxHealth: 100, Money: 120},
		Shop:       game.DefaultShop(),
		Log:        []string{"A Wraith appears!", "You attack with the Holy Cross."},
		Wave:       1,
		Turn:       2,
	}
}

func TestRenderDiff(t *testing.T) {
	e := NewEngine(80, 24)
	st := testState()

	first := e.Render(st, 80, 24)
	if !strings.HasPrefix(first, "\x1b[1;1H") {
		t.Error("expected the first frame to start at the origin")
	}
	if second := e.Render(st, 80, 24); second != "" {
		t.Errorf("expected empty diff for an unchanged frame, got %d bytes", len(second))
	}

	st.Player.Money = 5
	if third := e.Render(st, 80, 24); third == "" {
		t.Error("expected a diff after the state changed")
	}
}

func TestRenderResizeRedraws(t *testing.T) {
	e := NewEngine(80, 24)
	st := testState()
	e.Render(st, 80, 24)
	out := e.Render(st, 100, 30)
	if !strings.Contains(out, "\x1b[30;1H") {
		t.Error("expected a full redraw after resize")
	}
	if w, h := e.Size(); w != 100 || h != 30 {
		t.Errorf("expected 100x30, got %dx%d", w, h)
	}
}

func TestFrameContents(t *testing.T) {
	e := NewEngine(80, 24)
	text := screenText(e.Frame(testState(), 80, 24))

	for _, want := range []string{
		"Wraith",
		"▶ Banshee",
		"▲ FRONT",
		"60/120",
		"Holy Cross",
		"Healing Potion $30",
		"$120",
		"Wave 1  Turn 2",
		"You attack with the Holy Cross.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected frame to contain %q", want)
		}
	}
}

func TestFrameHidesTargetWhenLocked(t *testing.T) {
	e := NewEngine(80, 24)
	st := testState()
	st.Locked = true
	text := screenText(e.Frame(st, 80, 24))
	if strings.Contains(text, "▶") {
		t.Error("target marker drawn while input is locked")
	}
}

func TestFrameBanner(t *testing.T) {
	e := NewEngine(80, 24)
	st := testState()
	st.Effects.Banner = &game.Banner{Text: "VICTORY! +$30", Victory: true}
	cells := e.Frame(st, 80, 24)
	if !strings.Contains(rowText(cells, bannerRow), "VICTORY! +$30") {
		t.Errorf("expected banner on row %d, got %q", bannerRow, rowText(cells, bannerRow))
	}
	if c := cells[bannerRow][(80-len("VICTORY! +$30"))/2]; c.FgR != 255 || c.FgG != 220 {
		t.Errorf("expected gold banner, got %+v", c)
	}
}

func TestFrameFrontSitsLowest(t *testing.T) {
	e := NewEngine(80, 24)
	st := testState()
	front := e.cardPosFor(st.Enemies[0].Pose)
	back := e.cardPosFor(st.Enemies[1].Pose)
	if front.top <= back.top {
		t.Errorf("expected front card below back card, got %d vs %d", front.top, back.top)
	}
	if front.left <= back.left {
		t.Errorf("expected front card right of the left slot, got %d vs %d", front.left, back.left)
	}
}

func TestFrameTooSmall(t *testing.T) {
	e := NewEngine(40, 10)
	text := screenText(e.Frame(testState(), 40, 10))
	if !strings.Contains(text, "too small") {
		t.Error("expected a size warning")
	}
}

func TestPaletteColorsGhosts(t *testing.T) {
	e := NewEngine(80, 24)
	e.SetPalette(map[string]string{"wraith": "bright_red", "banshee": "no-such-color"})
	st := testState()
	cells := e.Frame(st, 80, 24)
	pos := e.cardPosFor(st.Enemies[0].Pose)
	c := cells[pos.top][pos.left+(cardWidth-len(ghostSprite[0]))/2+1]
	if r, g, b, _ := ColorByName("bright_red"); c.FgR != r || c.FgG != g || c.FgB != b {
		t.Errorf("expected palette color, got %+v", c)
	}
	if e.palette["banshee"] != defaultGhost {
		t.Errorf("expected unknown color name to fall back, got %+v", e.palette["banshee"])
	}
}

func TestColorByName(t *testing.T) {
	tests := []struct {
		name   string
		wantOK bool
	}{
		{"bright_cyan", true},
		{" Gray ", true},
		{"grey", true},
		{"chartreuse", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, ok := ColorByName(tt.name); ok != tt.wantOK {
				t.Errorf("expected ok=%v, got %v", tt.wantOK, ok)
			}
		})
	}
	if r, g, b, _ := ColorByName("chartreuse"); (color{r, g, b}) != defaultGhost {
		t.Errorf("expected default ghost color, got %d,%d,%d", r, g, b)
	}
}

func TestCellEscapes(t *testing.T) {
	var sb strings.Builder
	writeMoveTo(&sb, 3, 7)
	writeCell(&sb, Cell{Ch: 'x', FgR: 1, FgG: 2, FgB: 3, BgR: 4, BgG: 5, BgB: 6, Bold: true})
	want := "\x1b[3;7H\x1b[0;1;38;2;1;2;3;48;2;4;5;6mx"
	if got := sb.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHPBarColor(t *testing.T) {
	tests := []struct {
		hp, max int
		wantG   uint8
	}{
		{100, 100, 210},
		{40, 100, 200},
		{10, 100, 60},
	}
	for _, tt := range tests {
		if _, g, _ := hpBarColor(tt.hp, tt.max); g != tt.wantG {
			t.Errorf("hp %d/%d: expected green %d, got %d", tt.hp, tt.max, tt.wantG, g)
		}
	}
}
