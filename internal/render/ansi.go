package render

import (
	"strconv"
	"strings"
)

const (
	csi   = "\x1b["
	reset = csi + "0m"
)

// EnterScreen switches an SSH terminal to the alternate buffer, hides the
// cursor and clears it. LeaveScreen undoes it.
const (
	EnterScreen = csi + "?1049h" + csi + "?25l" + csi + "2J"
	LeaveScreen = reset + csi + "?25h" + csi + "?1049l"
)

type color struct{ r, g, b uint8 }

// defaultGhost is used for species without a palette entry.
var defaultGhost = color{170, 170, 170}

// ghostColors maps content color names to card colors. The values are
// lifted off the stage background so a dark name still reads.
var ghostColors = map[string]color{
	"black":          {80, 80, 95},
	"red":            {190, 50, 50},
	"green":          {60, 180, 80},
	"yellow":         {200, 180, 60},
	"blue":           {80, 100, 220},
	"magenta":        {180, 70, 180},
	"cyan":           {60, 180, 190},
	"white":          {190, 190, 200},
	"gray":           {130, 130, 145},
	"grey":           {130, 130, 145},
	"bright_red":     {255, 95, 85},
	"bright_green":   {110, 255, 120},
	"bright_yellow":  {255, 240, 110},
	"bright_blue":    {120, 140, 255},
	"bright_magenta": {255, 110, 240},
	"bright_cyan":    {110, 240, 255},
	"bright_white":   {250, 250, 255},
}

// ColorByName returns the card color for a content color name. Unknown
// names get the default ghost color and ok is false.
func ColorByName(name string) (r, g, b uint8, ok bool) {
	c, ok := ghostColors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		c = defaultGhost
	}
	return c.r, c.g, c.b, ok
}

func writeMoveTo(sb *strings.Builder, row, col int) {
	sb.WriteString(csi)
	sb.WriteString(strconv.Itoa(row))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(col))
	sb.WriteByte('H')
}

// writeCell emits a full SGR for every cell so no state carries over from
// the previous one.
func writeCell(sb *strings.Builder, c Cell) {
	sb.WriteString(csi + "0")
	if c.Bold {
		sb.WriteString(";1")
	}
	sb.WriteString(";38;2;")
	writeRGB(sb, c.FgR, c.FgG, c.FgB)
	sb.WriteString(";48;2;")
	writeRGB(sb, c.BgR, c.BgG, c.BgB)
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}

func writeRGB(sb *strings.Builder, r, g, b uint8) {
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(b)))
}
