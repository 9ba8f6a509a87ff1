package render

import (
	"fmt"
	"math"
	"strings"

	"joken-ghost/internal/game"
)

const (
	HUDRows   = 4
	MinWidth  = 60
	MinHeight = 22
)

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// Engine is a per-session double-buffer diff renderer.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
	palette       map[string]color // species ID -> card color
	stageLo       float64        // leftmost slot centre, stage pixels
	stageHi       float64
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		firstFrame: true,
		palette:    make(map[string]color),
	}
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.SetLayout(game.DefaultLayout())
	return e
}

// SetLayout maps the horizontal extent of the formation onto the screen.
func (e *Engine) SetLayout(l game.Layout) {
	if l.Len() == 0 {
		return
	}
	e.stageLo, e.stageHi = math.Inf(1), math.Inf(-1)
	for _, s := range l {
		c := s.X + s.Width/2
		e.stageLo = math.Min(e.stageLo, c)
		e.stageHi = math.Max(e.stageHi, c)
	}
}

// SetPalette sets the ghost colors by species ID from content color names.
func (e *Engine) SetPalette(colors map[string]string) {
	e.palette = make(map[string]color, len(colors))
	for id, name := range colors {
		r, g, b, _ := ColorByName(name)
		e.palette[id] = color{r, g, b}
	}
}

// Size returns the current buffer dimensions.
func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Frame draws the battle into the back buffer and returns it. The buffer is
// owned by the engine and only valid until the next Frame or Render call.
func (e *Engine) Frame(st game.BattleState, termW, termH int) [][]Cell {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}
	if e.width < MinWidth || e.height < MinHeight {
		e.drawTooSmall()
	} else {
		e.drawBattle(st)
	}
	return e.next
}

// Render produces the ANSI byte output for the current frame.
func (e *Engine) Render(st game.BattleState, termW, termH int) string {
	e.Frame(st, termW, termH)
	return e.emitDiff()
}

func (e *Engine) fill(c Cell) {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.next[y][x] = c
		}
	}
}

func (e *Engine) drawTooSmall() {
	bgR, bgG, bgB := uint8(12), uint8(12), uint8(18)
	e.fill(Cell{Ch: ' ', BgR: bgR, BgG: bgG, BgB: bgB})
	msg := fmt.Sprintf("Terminal too small: need %dx%d", MinWidth, MinHeight)
	e.drawCenteredText(e.height/2, msg, 220, 120, 80, bgR, bgG, bgB, true)
}

// --- HUD ---

func (e *Engine) drawHUD(st game.BattleState, bdrR, bdrG, bdrB uint8) {
	hudY := e.height - HUDRows
	if hudY < 0 {
		return
	}

	splitCol := e.width / 2
	bgR, bgG, bgB := uint8(20), uint8(15), uint8(22)

	// Row 0: separator, doubling as the bottom border of the stage box
	for x := 0; x < e.width; x++ {
		t := uint8(60 - x*40/max(e.width, 1))
		e.next[hudY][x] = Cell{
			Ch: '━', FgR: 90 + t, FgG: 40 + t, FgB: 120 + t,
			BgR: bgR, BgG: bgG, BgB: bgB,
		}
	}
	e.next[hudY][0] = Cell{Ch: '┕', FgR: bdrR, FgG: bdrG, FgB: bdrB, BgR: bgR, BgG: bgG, BgB: bgB}
	if e.width > 1 {
		e.next[hudY][e.width-1] = Cell{Ch: '┙', FgR: bdrR, FgG: bdrG, FgB: bdrB, BgR: bgR, BgG: bgG, BgB: bgB}
	}

	for row := 1; row <= 3; row++ {
		y := hudY + row
		if y >= e.height {
			break
		}
		for x := 0; x < e.width; x++ {
			e.next[y][x] = Cell{Ch: ' ', BgR: bgR, BgG: bgG, BgB: bgB}
		}
		if splitCol > 0 && splitCol < e.width {
			e.next[y][splitCol] = Cell{Ch: '│', FgR: 70, FgG: 40, FgB: 80, BgR: bgR, BgG: bgG, BgB: bgB}
		}
	}

	row1 := hudY + 1
	row2 := hudY + 2
	row3 := hudY + 3

	// --- Left column: weapons, shop, hint ---
	col := 1
	for i, w := range game.Weapons {
		if i > 0 {
			col = e.writeText(row1, col, splitCol, " ", 80, 80, 95, bgR, bgG, bgB, false)
		}
		r, g, b := weaponColor(w)
		if st.Locked {
			r, g, b = 90, 90, 100
		}
		col = e.writeText(row1, col, splitCol, fmt.Sprintf("%d:%s", i+1, w.Tool()), r, g, b, bgR, bgG, bgB, !st.Locked)
	}

	col = 1
	for i, it := range st.Shop {
		if i > 0 {
			col = e.writeText(row2, col, splitCol, " ", 80, 80, 95, bgR, bgG, bgB, false)
		}
		r, g, b := uint8(200), uint8(190), uint8(120)
		if it.Price > st.Player.Money || st.Locked {
			r, g, b = 90, 90, 100
		}
		col = e.writeText(row2, col, splitCol, fmt.Sprintf("%d:%s $%d", i+4, it.Name, it.Price), r, g, b, bgR, bgG, bgB, false)
	}

	switch {
	case st.Hint != "":
		e.writeText(row3, 1, splitCol, st.Hint, 255, 200, 120, bgR, bgG, bgB, true)
	case st.BattleOver:
		e.writeText(row3, 1, splitCol, "R:Hunt again  Q:Quit", 220, 200, 180, bgR, bgG, bgB, false)
	default:
		e.writeText(row3, 1, splitCol, "←→:Target  Q:Quit", 130, 130, 145, bgR, bgG, bgB, false)
	}

	// --- Right column: hunter stats ---
	rightStart := splitCol + 2
	maxNumLen := len(fmt.Sprintf("%d/%d", st.Player.MaxHealth, st.Player.MaxHealth))
	barWidth := (e.width - rightStart) - 9 - maxNumLen
	if barWidth < 4 {
		barWidth = 4
	}
	hpFillR, hpFillG, hpFillB := hpBarColor(st.Player.Health, st.Player.MaxHealth)
	e.drawStatBar(row1, rightStart, "Health ", st.Player.Health, st.Player.MaxHealth, barWidth,
		255, 80, 80, hpFillR, hpFillG, hpFillB, bgR, bgG, bgB)

	col = e.writeText(row2, rightStart, e.width, fmt.Sprintf("$%d", st.Player.Money), 255, 215, 0, bgR, bgG, bgB, true)
	col = e.writeText(row2, col, e.width, "  │  ", 60, 65, 85, bgR, bgG, bgB, false)
	e.writeText(row2, col, e.width, fmt.Sprintf("Banished %d", st.Player.Defeated), 180, 180, 195, bgR, bgG, bgB, false)

	col = e.writeText(row3, rightStart, e.width, fmt.Sprintf("Wave %d  Turn %d", st.Wave, st.Turn), 180, 180, 195, bgR, bgG, bgB, false)
	col = e.writeText(row3, col, e.width, "  │  ", 60, 65, 85, bgR, bgG, bgB, false)
	e.writeText(row3, col, e.width, fmt.Sprintf("Log %d%%", int(st.Completion)), 150, 200, 220, bgR, bgG, bgB, false)
}

// hpBarColor returns the fill color for an HP bar based on current/max ratio.
func hpBarColor(current, maxHP int) (uint8, uint8, uint8) {
	if maxHP <= 0 {
		return 80, 80, 90
	}
	ratio := float64(current) / float64(maxHP)
	if ratio > 0.5 {
		return 70, 210, 70
	} else if ratio > 0.25 {
		return 220, 200, 40
	}
	return 220, 60, 40
}

// weaponColor is the HUD color of a weapon.
func weaponColor(w game.Weapon) (uint8, uint8, uint8) {
	switch w {
	case game.WeaponRock:
		return 200, 170, 120
	case game.WeaponPaper:
		return 240, 240, 200
	case game.WeaponScissors:
		return 160, 220, 160
	}
	return 170, 170, 170
}

// drawStatBar draws a labeled stat bar with fill. Returns columns consumed.
func (e *Engine) drawStatBar(row, col int, label string, current, maximum, barWidth int,
	labelR, labelG, labelB, fillR, fillG, fillB, bgR, bgG, bgB uint8) int {
	startCol := col

	for _, r := range label {
		if col < e.width && row >= 0 && row < e.height {
			e.next[row][col] = Cell{Ch: r, FgR: labelR, FgG: labelG, FgB: labelB,
				BgR: bgR, BgG: bgG, BgB: bgB, Bold: true}
		}
		col++
	}
	col++

	filled := 0
	if maximum > 0 {
		filled = barWidth * current / maximum
	}
	filled = min(max(filled, 0), barWidth)
	for i := 0; i < barWidth; i++ {
		x := col + i
		if x >= e.width || row < 0 || row >= e.height {
			break
		}
		if i < filled {
			e.next[row][x] = Cell{Ch: '█', FgR: fillR, FgG: fillG, FgB: fillB,
				BgR: bgR, BgG: bgG, BgB: bgB}
		} else {
			e.next[row][x] = Cell{Ch: '░', FgR: 45, FgG: 45, FgB: 55,
				BgR: bgR, BgG: bgG, BgB: bgB}
		}
	}
	col += barWidth
	col++

	numText := fmt.Sprintf("%d/%d", current, maximum)
	for _, r := range numText {
		if col < e.width && row >= 0 && row < e.height {
			e.next[row][col] = Cell{Ch: r, FgR: 180, FgG: 180, FgB: 195,
				BgR: bgR, BgG: bgG, BgB: bgB}
		}
		col++
	}

	return col - startCol
}

// writeText writes colored text into a bounded region [col, maxCol). Returns the next column position.
func (e *Engine) writeText(row, col, maxCol int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bold bool) int {
	for _, r := range text {
		if col >= maxCol || col >= e.width {
			break
		}
		if row >= 0 && row < e.height && col >= 0 {
			e.next[row][col] = Cell{Ch: r, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB, Bold: bold}
		}
		col++
	}
	return col
}

// emitDiff performs the buffer diff and produces ANSI output.
func (e *Engine) emitDiff() string {
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					writeMoveTo(&sb, y+1, x+1)
				}
				writeCell(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(reset)
	}

	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}
