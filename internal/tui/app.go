package tui

import (
	"github.com/gdamore/tcell/v2"

	"joken-ghost/internal/audio"
	"joken-ghost/internal/content"
	"joken-ghost/internal/game"
	"joken-ghost/internal/render"
)

// App plays one battle in the local terminal.
type App struct {
	screen  tcell.Screen
	session *game.Session
	engine  *render.Engine
	sound   *audio.Player
}

// NewApp wires a session to a tcell screen. sound may be nil.
func NewApp(screen tcell.Screen, sess *game.Session, c *content.Content, sound *audio.Player) *App {
	w, h := screen.Size()
	engine := render.NewEngine(w, h)
	engine.SetPalette(c.Colors)
	engine.SetLayout(c.Layout)
	if sound != nil {
		sess.Subscribe(sound)
	}
	return &App{screen: screen, session: sess, engine: engine, sound: sound}
}

// KeyAction maps a tcell key to a battle action.
func KeyAction(k tcell.Key, r rune) game.Action {
	switch k {
	case tcell.KeyRight, tcell.KeyDown, tcell.KeyTab:
		return game.ActionTargetNext
	case tcell.KeyLeft, tcell.KeyUp, tcell.KeyBacktab:
		return game.ActionTargetPrev
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionQuit
	case tcell.KeyRune:
		return game.RuneAction(r)
	}
	return game.ActionNone
}

// Run starts the session and blocks until the player quits.
func (a *App) Run() {
	go a.session.Run()
	defer a.session.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	renderCh := a.session.RenderChan()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case st, ok := <-renderCh:
			if !ok {
				return
			}
			a.draw(st)
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') && a.sound != nil {
			a.sound.ToggleMute()
			return true
		}
		action := KeyAction(ev.Key(), ev.Rune())
		if action == game.ActionQuit {
			return false
		}
		if action != game.ActionNone {
			select {
			case a.session.InputChan() <- game.InputEvent{Action: action}:
			default:
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) draw(st game.BattleState) {
	w, h := a.screen.Size()
	Blit(a.screen, a.engine.Frame(st, w, h))
	a.screen.Show()
}

// Blit copies rendered cells onto the screen.
func Blit(screen tcell.Screen, cells [][]render.Cell) {
	for y, row := range cells {
		for x, c := range row {
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.FgR), int32(c.FgG), int32(c.FgB))).
				Background(tcell.NewRGBColor(int32(c.BgR), int32(c.BgG), int32(c.BgB))).
				Bold(c.Bold)
			screen.SetContent(x, y, c.Ch, nil, style)
		}
	}
}
