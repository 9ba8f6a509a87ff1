package render

import (
	"fmt"
	"math"

	"joken-ghost/internal/game"
)

const (
	cardWidth  = 18
	cardHeight = 7 // sprite, label, HP bar and marker
	dividerRow = 10
	bannerRow  = 11

	// pixelsPerCol converts shake offsets from stage pixels to columns.
	pixelsPerCol = 4.0
	// pixelsPerRow converts floating text rise to rows.
	pixelsPerRow = 12.0
)

var ghostSprite = []string{
	" .-. ",
	"(o o)",
	"| O |",
	"'^^^'",
}

var banishedSprite = []string{
	"     ",
	"  +  ",
	" -+- ",
	"  |  ",
}

// cardPos is where one enemy card was drawn this frame.
type cardPos struct {
	top, left int
}

// drawBattle renders the full battle screen into the back buffer.
func (e *Engine) drawBattle(st game.BattleState) {
	// Dark stage background
	bgR, bgG, bgB := uint8(12), uint8(12), uint8(18)
	e.fill(Cell{Ch: ' ', BgR: bgR, BgG: bgG, BgB: bgB})

	hudY := e.height - HUDRows
	bR, bG, bB := uint8(90), uint8(60), uint8(110) // border color

	e.drawBoxRow(0, '┌', '─', '┐', bR, bG, bB, bgR, bgG, bgB)
	title := " JOKENGHOST "
	if st.Player.Name != "" {
		title = fmt.Sprintf(" JOKENGHOST  %s ", st.Player.Name)
	}
	e.writeText(0, 2, e.width-1, title, 200, 180, 230, bgR, bgG, bgB, true)

	for y := 1; y < hudY; y++ {
		e.next[y][0] = Cell{Ch: '│', FgR: bR, FgG: bG, FgB: bB, BgR: bgR, BgG: bgG, BgB: bgB}
		e.next[y][e.width-1] = Cell{Ch: '│', FgR: bR, FgG: bG, FgB: bB, BgR: bgR, BgG: bgG, BgB: bgB}
	}

	// --- Enemy stage ---
	cards := make(map[int]cardPos, len(st.Enemies))
	screenDX := pxToCols(st.Effects.ScreenDX)
	for _, en := range st.Enemies {
		pos := e.cardPosFor(en.Pose)
		pos.left += screenDX + pxToCols(st.Effects.EnemyDX[en.ID])
		cards[en.ID] = pos
		e.drawEnemyCard(pos, en, en.Index == st.Selected && en.Alive && !st.Locked)
	}

	var sep string
	switch {
	case st.Rotating:
		sep = " The ghosts shift... "
	case st.Wave > 0:
		sep = fmt.Sprintf(" BATTLE  Wave %d  Turn %d ", st.Wave, st.Turn)
	}
	e.drawBoxDivider(dividerRow, sep, bR, bG, bB, 200, 180, 80, bgR, bgG, bgB)

	if b := st.Effects.Banner; b != nil {
		r, g, bl := bannerColor(*b)
		e.drawCenteredText(bannerRow, b.Text, r, g, bl, bgR, bgG, bgB, true)
	}

	// --- Battle log ---
	logTop := bannerRow + 1
	lines := st.Log
	if room := hudY - logTop; len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	logStart := hudY - len(lines)
	for i, msg := range lines {
		fgR, fgG, fgB := uint8(150), uint8(150), uint8(165)
		// Most recent message is brighter
		if i == len(lines)-1 {
			fgR, fgG, fgB = 225, 225, 235
		}
		e.writeText(logStart+i, 2, e.width-1, msg, fgR, fgG, fgB, bgR, bgG, bgB, false)
	}

	e.drawFloatingTexts(st, cards, hudY, bgR, bgG, bgB)

	e.drawHUD(st, bR, bG, bB)
}

// cardPosFor maps a pose onto the stage: horizontal position follows the
// slot centre, and deeper ranks sit higher up.
func (e *Engine) cardPosFor(p game.Pose) cardPos {
	usable := e.width - 2 - cardWidth
	left := 1 + usable/2
	if span := e.stageHi - e.stageLo; span > 0 {
		t := (p.X + p.Width/2 - e.stageLo) / span
		left = 1 + int(math.Round(t*float64(usable)))
	}
	top := min(max(p.Rank, 1), dividerRow-cardHeight)
	return cardPos{top: top, left: left}
}

func (e *Engine) drawEnemyCard(pos cardPos, en game.EnemySnapshot, selected bool) {
	bgR, bgG, bgB := uint8(12), uint8(12), uint8(18)

	c, ok := e.palette[en.Kind]
	if !ok {
		c = defaultGhost
	}
	fgR, fgG, fgB := c.r, c.g, c.b
	sprite := ghostSprite
	if !en.Alive {
		sprite = banishedSprite
		fgR, fgG, fgB = 70, 70, 80
	}

	spriteLeft := pos.left + (cardWidth-len(sprite[0]))/2
	for i, line := range sprite {
		e.writeClipped(pos.top+i, spriteLeft, line, fgR, fgG, fgB, bgR, bgG, bgB, en.Front)
	}

	label := en.Label
	if selected {
		label = "▶ " + label
	}
	nameR, nameG, nameB := uint8(200), uint8(190), uint8(210)
	if selected {
		nameR, nameG, nameB = 255, 220, 80
	}
	if !en.Alive {
		nameR, nameG, nameB = 80, 80, 90
	}
	labelRow := pos.top + len(sprite)
	e.writeClipped(labelRow, pos.left+centerPad(label, cardWidth), label, nameR, nameG, nameB, bgR, bgG, bgB, selected)

	if en.Alive {
		e.drawHPBar(labelRow+1, pos.left, cardWidth, en.Health, en.MaxHealth)
	}
	if en.Front && en.Alive {
		e.writeClipped(labelRow+2, pos.left+centerPad("▲ FRONT", cardWidth), "▲ FRONT", 140, 200, 255, bgR, bgG, bgB, false)
	}
}

// drawHPBar draws a bar followed by the numeric HP, together width columns wide.
func (e *Engine) drawHPBar(row, col, width, hp, maxHP int) {
	bgR, bgG, bgB := uint8(12), uint8(12), uint8(18)

	hpText := fmt.Sprintf(" %d/%d", hp, maxHP)
	barWidth := width - len(hpText)
	if barWidth < 1 || maxHP <= 0 {
		return
	}
	filled := min(max(barWidth*hp/maxHP, 0), barWidth)
	fR, fG, fB := hpBarColor(hp, maxHP)
	for i := 0; i < barWidth; i++ {
		ch := '░'
		r, g, b := uint8(40), uint8(40), uint8(50)
		if i < filled {
			ch = '█'
			r, g, b = fR, fG, fB
		}
		e.setClipped(row, col+i, Cell{Ch: ch, FgR: r, FgG: g, FgB: b, BgR: bgR, BgG: bgG, BgB: bgB})
	}
	e.writeClipped(row, col+barWidth, hpText, 180, 180, 195, bgR, bgG, bgB, false)
}

func (e *Engine) drawFloatingTexts(st game.BattleState, cards map[int]cardPos, hudY int, bgR, bgG, bgB uint8) {
	for _, ft := range st.Effects.Texts {
		var row, col int
		if ft.Anchor == game.PlayerAnchor {
			row = hudY - 1
			col = e.width - 2 - len([]rune(ft.Text)) - cardWidth/2 + pxToCols(st.Effects.PlayerDX)
		} else {
			pos, ok := cards[ft.Anchor]
			if !ok {
				continue
			}
			row = pos.top - 1
			col = pos.left + centerPad(ft.Text, cardWidth)
		}
		row -= int(ft.Rise() / pixelsPerRow)
		if row < 1 {
			row = 1
		}

		r, g, b := textColor(ft.Kind)
		a := ft.Alpha()
		r, g, b = fade(r, bgR, a), fade(g, bgG, a), fade(b, bgB, a)
		e.writeClipped(row, col, ft.Text, r, g, b, bgR, bgG, bgB, true)
	}
}

// setClipped writes c if (row, col) lies inside the stage box.
func (e *Engine) setClipped(row, col int, c Cell) {
	if row < 1 || row >= e.height-HUDRows || col < 1 || col >= e.width-1 {
		return
	}
	e.next[row][col] = c
}

func (e *Engine) writeClipped(row, col int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bold bool) {
	for _, r := range text {
		e.setClipped(row, col, Cell{Ch: r, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB, Bold: bold})
		col++
	}
}

// drawBoxRow draws a full horizontal box line: left + fill + right.
func (e *Engine) drawBoxRow(row int, left, fill, right rune, fR, fG, fB, bR, bG, bB uint8) {
	if row < 0 || row >= e.height {
		return
	}
	e.next[row][0] = Cell{Ch: left, FgR: fR, FgG: fG, FgB: fB, BgR: bR, BgG: bG, BgB: bB}
	for x := 1; x < e.width-1; x++ {
		e.next[row][x] = Cell{Ch: fill, FgR: fR, FgG: fG, FgB: fB, BgR: bR, BgG: bG, BgB: bB}
	}
	if e.width > 1 {
		e.next[row][e.width-1] = Cell{Ch: right, FgR: fR, FgG: fG, FgB: fB, BgR: bR, BgG: bG, BgB: bB}
	}
}

// drawBoxDivider draws ├─ text ─┤ with optional centered text.
func (e *Engine) drawBoxDivider(row int, text string, fR, fG, fB, tR, tG, tB, bR, bG, bB uint8) {
	e.drawBoxRow(row, '├', '─', '┤', fR, fG, fB, bR, bG, bB)
	if text == "" {
		return
	}
	runes := []rune(text)
	cx := (e.width - len(runes)) / 2
	for i, r := range runes {
		x := cx + i
		if x > 0 && x < e.width-1 && row >= 0 && row < e.height {
			e.next[row][x] = Cell{Ch: r, FgR: tR, FgG: tG, FgB: tB, BgR: bR, BgG: bG, BgB: bB, Bold: true}
		}
	}
}

// drawCenteredText draws text centered on the given row.
func (e *Engine) drawCenteredText(row int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bold bool) {
	if row < 0 || row >= e.height {
		return
	}
	runes := []rune(text)
	cx := (e.width - len(runes)) / 2
	for i, r := range runes {
		x := cx + i
		if x >= 0 && x < e.width {
			e.next[row][x] = Cell{Ch: r, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB, Bold: bold}
		}
	}
}

func bannerColor(b game.Banner) (uint8, uint8, uint8) {
	switch {
	case b.Victory:
		return 255, 220, 50
	case b.Defeat:
		return 255, 50, 50
	case b.Kind == game.OutcomeWin:
		return 120, 255, 120
	case b.Kind == game.OutcomeLose:
		return 255, 110, 90
	}
	return 210, 210, 220
}

func textColor(k game.TextKind) (uint8, uint8, uint8) {
	switch k {
	case game.TextReward:
		return 255, 215, 0
	case game.TextHeal:
		return 90, 230, 120
	}
	return 255, 90, 80
}

// fade blends a color channel toward the background as alpha drops.
func fade(fg, bg uint8, alpha float64) uint8 {
	return uint8(float64(bg) + (float64(fg)-float64(bg))*alpha)
}

func centerPad(text string, width int) int {
	return max((width-len([]rune(text)))/2, 0)
}

func pxToCols(px float64) int {
	return int(math.Round(px / pixelsPerCol))
}
