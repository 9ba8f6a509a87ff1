package game

import (
	"fmt"
	"math"
)

// PlayerAnchor marks floating text attached to the hunter instead of a ghost.
const PlayerAnchor = -1

// Shake is a decaying jitter. Offsets are a fixed function of elapsed time so
// replays render identically.
type Shake struct {
	Intensity float64 // pixels at the start
	Duration  float64 // ms
	Remaining float64 // ms
}

// Active reports whether the shake is still running.
func (s Shake) Active() bool {
	return s.Remaining > 0
}

// Current returns the intensity after linear decay.
func (s Shake) Current() float64 {
	if !s.Active() || s.Duration <= 0 {
		return 0
	}
	return s.Intensity * (s.Remaining / s.Duration)
}

// Offset returns the displacement to apply this frame.
func (s Shake) Offset() (dx, dy float64) {
	c := s.Current()
	if c == 0 {
		return 0, 0
	}
	t := s.Duration - s.Remaining
	return c * math.Sin(t/25), c * math.Cos(t/35)
}

func (s *Shake) tick(dt float64) {
	s.Remaining -= dt
	if s.Remaining < 0 {
		s.Remaining = 0
	}
}

// TextKind selects the colour of floating text.
type TextKind int

const (
	TextDamage TextKind = iota
	TextReward
	TextHeal
)

// FloatingText is a number drifting up from an enemy or the hunter.
type FloatingText struct {
	Text     string
	Kind     TextKind
	Anchor   int     // enemy ID or PlayerAnchor
	Age      float64 // ms
	Lifetime float64 // ms
	Speed    float64 // pixels per second, upward
}

// Rise returns how far the text has drifted.
func (f FloatingText) Rise() float64 {
	return f.Speed * f.Age / 1000
}

// Alpha fades linearly from 1 to 0 over the lifetime.
func (f FloatingText) Alpha() float64 {
	if f.Lifetime <= 0 {
		return 0
	}
	return clamp01(1 - f.Age/f.Lifetime)
}

// Banner is the big result message shown after an exchange.
type Banner struct {
	Text      string
	Kind      OutcomeKind
	Victory   bool
	Defeat    bool
	Remaining float64 // ms
}

// Effects holds every visual timer of a battle. It draws no random numbers.
type Effects struct {
	screen Shake
	player Shake
	enemy  map[int]Shake
	texts  []FloatingText
	banner *Banner
}

// NewEffects creates an empty effect set.
func NewEffects() *Effects {
	return &Effects{enemy: make(map[int]Shake)}
}

// ShakeEnemy starts a shake on the enemy with the given ID.
func (e *Effects) ShakeEnemy(id int) {
	e.enemy[id] = Shake{Intensity: EnemyShakeIntensity, Duration: EnemyShakeDuration, Remaining: EnemyShakeDuration}
}

// ShakePlayer starts a shake on the hunter.
func (e *Effects) ShakePlayer() {
	e.player = Shake{Intensity: PlayerShakeIntensity, Duration: PlayerShakeDuration, Remaining: PlayerShakeDuration}
}

// ShakeScreen starts a shake of the whole stage.
func (e *Effects) ShakeScreen() {
	e.screen = Shake{Intensity: ScreenShakeIntensity, Duration: ScreenShakeDuration, Remaining: ScreenShakeDuration}
}

// Float adds floating text.
func (e *Effects) Float(anchor int, kind TextKind, text string) {
	speed := 35.0
	if kind == TextReward {
		speed = 25
	}
	e.texts = append(e.texts, FloatingText{
		Text:     text,
		Kind:     kind,
		Anchor:   anchor,
		Lifetime: FloatingTextLifetime,
		Speed:    speed,
	})
}

// ShowBanner replaces the current banner.
func (e *Effects) ShowBanner(b Banner) {
	b.Remaining = BannerLifetime
	e.banner = &b
}

// Update advances every timer by dt milliseconds. Non-positive dt is a no-op.
func (e *Effects) Update(dt float64) {
	if dt <= 0 {
		return
	}
	e.screen.tick(dt)
	e.player.tick(dt)
	for id, s := range e.enemy {
		s.tick(dt)
		if s.Active() {
			e.enemy[id] = s
		} else {
			delete(e.enemy, id)
		}
	}

	kept := e.texts[:0]
	for _, t := range e.texts {
		t.Age += dt
		if t.Age < t.Lifetime {
			kept = append(kept, t)
		}
	}
	e.texts = kept

	if e.banner != nil {
		e.banner.Remaining -= dt
		if e.banner.Remaining <= 0 {
			e.banner = nil
		}
	}
}

// Clear drops every running effect.
func (e *Effects) Clear() {
	e.screen = Shake{}
	e.player = Shake{}
	clear(e.enemy)
	e.texts = nil
	e.banner = nil
}

// OnEvent turns battle events into shakes, numbers and banners.
func (e *Effects) OnEvent(ev Event) {
	switch ev.Type {
	case EventOutcomeResolved:
		out, ok := ev.Data.(CombatOutcome)
		if !ok {
			return
		}
		e.applyOutcome(out)
	case EventTotalVictory:
		if v, ok := ev.Data.(VictoryData); ok {
			e.ShowBanner(Banner{Text: fmt.Sprintf("VICTORY! +$%d", v.Bonus), Kind: OutcomeWin, Victory: true})
		}
	case EventDefeat:
		e.ShowBanner(Banner{Text: "YOU WERE DEFEATED", Kind: OutcomeLose, Defeat: true})
	case EventItemPurchased:
		p, ok := ev.Data.(PurchaseData)
		if !ok {
			return
		}
		if p.Healed > 0 {
			e.Float(PlayerAnchor, TextHeal, fmt.Sprintf("+%d HP", p.Healed))
		}
		if p.Hit != nil {
			e.ShakeEnemy(p.Hit.EnemyID)
			e.Float(p.Hit.EnemyID, TextDamage, fmt.Sprintf("-%d", p.Hit.Damage))
		}
	}
}

func (e *Effects) applyOutcome(out CombatOutcome) {
	switch out.Kind {
	case OutcomeWin:
		if out.Primary == nil {
			return
		}
		e.ShakeScreen()
		for _, h := range append([]HitReport{*out.Primary}, out.Secondary...) {
			e.ShakeEnemy(h.EnemyID)
			e.Float(h.EnemyID, TextDamage, fmt.Sprintf("-%d", h.Damage))
		}
		if out.Reward > 0 {
			e.Float(out.Primary.EnemyID, TextReward, fmt.Sprintf("+$%d", out.Reward))
		}
		e.ShowBanner(Banner{Text: "YOU WIN!", Kind: OutcomeWin})
	case OutcomeLose:
		e.ShakePlayer()
		e.Float(PlayerAnchor, TextDamage, fmt.Sprintf("-%d", out.PlayerDamageTaken))
		e.ShowBanner(Banner{Text: "YOU LOSE!", Kind: OutcomeLose})
	default:
		e.ShowBanner(Banner{Text: "TIE!", Kind: OutcomeTie})
	}
}

// EffectsSnapshot is the frame-ready view of running effects.
type EffectsSnapshot struct {
	ScreenDX, ScreenDY float64
	PlayerDX, PlayerDY float64
	EnemyDX            map[int]float64
	EnemyDY            map[int]float64
	Texts              []FloatingText
	Banner             *Banner
}

// Snapshot copies the current effect state.
func (e *Effects) Snapshot() EffectsSnapshot {
	s := EffectsSnapshot{
		EnemyDX: make(map[int]float64, len(e.enemy)),
		EnemyDY: make(map[int]float64, len(e.enemy)),
		Texts:   append([]FloatingText(nil), e.texts...),
	}
	s.ScreenDX, s.ScreenDY = e.screen.Offset()
	s.PlayerDX, s.PlayerDY = e.player.Offset()
	for id, sh := range e.enemy {
		s.EnemyDX[id], s.EnemyDY[id] = sh.Offset()
	}
	if e.banner != nil {
		b := *e.banner
		s.Banner = &b
	}
	return s
}
