package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"joken-ghost/internal/game"
)

// Player turns battle events into sound cues. Until Init succeeds every cue
// is dropped, so a battle runs the same with or without an audio device.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	muted  bool
	sink   func(beep.Streamer)
	played map[Cue]int
}

// NewPlayer creates a silent player at the given linear volume (0.0-1.0).
func NewPlayer(volume float64) *Player {
	return &Player{
		rate:   SampleRate,
		volume: min(max(volume, 0), 1),
		played: make(map[Cue]int),
	}
}

// Init opens the speaker and routes cues through a shared mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink != nil {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	}
	return nil
}

// Close releases the speaker if Init opened it.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sink == nil {
		return
	}
	speaker.Close()
	p.sink = nil
}

// ToggleMute flips the mute state and reports whether sound is now on.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// Played returns how many times a cue was sent to the device.
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// Play queues a cue. It reports false when nothing could be played.
func (p *Player) Play(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink == nil || p.muted {
		return false
	}
	s := Synth(c, p.volume, p.rate)
	if s == nil {
		return false
	}
	p.sink(s)
	p.played[c]++
	return true
}

// OnEvent implements game.Listener.
func (p *Player) OnEvent(ev game.Event) {
	if c, ok := CueFor(ev); ok {
		p.Play(c)
	}
}

// CueFor maps a battle event to its cue.
func CueFor(ev game.Event) (Cue, bool) {
	switch ev.Type {
	case game.EventOutcomeResolved:
		out, ok := ev.Data.(game.CombatOutcome)
		if !ok || out.TotalVictory {
			return 0, false
		}
		switch out.Kind {
		case game.OutcomeWin:
			return CueWin, true
		case game.OutcomeLose:
			if out.PlayerDamageTaken > 0 {
				return CueLose, true
			}
		case game.OutcomeTie:
			return CueTie, true
		}
	case game.EventTotalVictory:
		return CueVictory, true
	case game.EventDefeat:
		return CueDefeat, true
	case game.EventItemPurchased:
		return CuePurchase, true
	}
	return 0, false
}
