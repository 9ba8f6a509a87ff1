package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const InputChanSize = 256

// Action is a decoded player intent.
type Action int

const (
	ActionNone Action = iota
	ActionRock
	ActionPaper
	ActionScissors
	ActionTargetNext
	ActionTargetPrev
	ActionBuy1
	ActionBuy2
	ActionBuy3
	ActionRestart
	ActionQuit
)

// Weapon returns the weapon an action plays, or WeaponNone.
func (a Action) Weapon() Weapon {
	switch a {
	case ActionRock:
		return WeaponRock
	case ActionPaper:
		return WeaponPaper
	case ActionScissors:
		return WeaponScissors
	}
	return WeaponNone
}

// InputEvent is sent by a front-end to its session.
type InputEvent struct {
	Action Action
}

// RenderChan receives battle snapshots once per tick.
type RenderChan chan BattleState

// Session runs one battle on its own ticker. Front-ends push InputEvents and
// read BattleStates; every other method must be called from the Run goroutine
// or before Run starts.
type Session struct {
	id       string
	coord    *Coordinator
	bestiary *Bestiary
	inputCh  chan InputEvent
	renderCh RenderChan

	selected  int
	hint      string
	tickCount uint64

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSession creates a session with a fresh wave already spawned.
func NewSession(cfg Config) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		id:       uuid.NewString(),
		coord:    NewCoordinator(cfg),
		bestiary: NewBestiary(cfg.Species),
		inputCh:  make(chan InputEvent, InputChanSize),
		renderCh: make(RenderChan, 2),
		selected: -1,
		stopCh:   make(chan struct{}),
	}
	s.coord.Subscribe(s.bestiary)
	s.coord.Subscribe(ListenerFunc(s.onFormation), EventFormationChanged, EventEnemiesSpawned)
	s.bestiary.Notify = func(d Discovery) {
		if d.Weapon == WeaponNone {
			s.coord.addLog(fmt.Sprintf("New ghost recorded: %s.", d.Name))
		} else {
			s.coord.addLog(fmt.Sprintf("Weakness found: %s fears the %s.", d.Name, d.Weapon.Tool()))
		}
	}
	s.coord.SpawnEnemies()
	return s
}

// ID returns the battle identifier.
func (s *Session) ID() string {
	return s.id
}

// Coordinator exposes the battle engine.
func (s *Session) Coordinator() *Coordinator {
	return s.coord
}

// Bestiary exposes the monster log.
func (s *Session) Bestiary() *Bestiary {
	return s.bestiary
}

// Subscribe registers an extra listener, such as a sound player.
func (s *Session) Subscribe(l Listener, types ...EventType) {
	s.coord.Subscribe(l, types...)
}

// InputChan returns the channel front-ends send input on.
func (s *Session) InputChan() chan<- InputEvent {
	return s.inputCh
}

// RenderChan returns the snapshot channel. It is closed when Run returns.
func (s *Session) RenderChan() <-chan BattleState {
	return s.renderCh
}

// Selected returns the targeted enemy index.
func (s *Session) Selected() int {
	return s.selected
}

// Run ticks the battle until Stop is called or the player quits.
func (s *Session) Run() {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()
	defer close(s.renderCh)

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.Tick(Ms(time.Second / TickRate))
		}
	}
}

// Stop ends Run. Safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// Tick drains pending input, advances the battle by dt milliseconds and
// publishes a snapshot.
func (s *Session) Tick(dt float64) {
	for {
		select {
		case ev := <-s.inputCh:
			s.HandleInput(ev)
		default:
			goto drained
		}
	}
drained:

	s.coord.Update(dt)
	s.tickCount++

	select {
	case s.renderCh <- s.State():
	default:
		// Drop frame for slow client
	}
}

// State builds the render snapshot.
func (s *Session) State() BattleState {
	st := s.coord.Snapshot()
	st.ID = s.id
	st.Selected = s.selected
	st.Completion = s.bestiary.Completion()
	st.Hint = s.hint
	st.Tick = s.tickCount
	return st
}

// HandleInput applies one input event.
func (s *Session) HandleInput(ev InputEvent) {
	switch ev.Action {
	case ActionRock, ActionPaper, ActionScissors:
		s.attack(ev.Action.Weapon())
	case ActionTargetNext:
		s.cycleTarget(1)
	case ActionTargetPrev:
		s.cycleTarget(-1)
	case ActionBuy1, ActionBuy2, ActionBuy3:
		s.buy(int(ev.Action - ActionBuy1))
	case ActionRestart:
		if !s.coord.BattleOver() {
			s.hint = "Restart is available after defeat"
			return
		}
		s.hint = ""
		s.coord.Reset()
	case ActionQuit:
		s.Stop()
	}
}

func (s *Session) attack(w Weapon) {
	target := s.selected
	if !s.coord.roster.IsAlive(target) {
		target, _ = s.coord.Front()
	}
	_, err := s.coord.Submit(w, target)
	switch {
	case err == nil:
		s.hint = ""
	case errors.Is(err, ErrTurnLocked):
		if s.coord.BattleOver() {
			s.hint = "Press R to hunt again"
		} else {
			s.hint = "Wait for the ghosts to settle"
		}
	default:
		s.hint = err.Error()
	}
}

func (s *Session) buy(i int) {
	_, err := s.coord.Buy(i)
	switch {
	case err == nil:
		s.hint = ""
	case errors.Is(err, ErrInsufficientFunds):
		s.hint = "Not enough money"
	case errors.Is(err, ErrTurnLocked):
		s.hint = "The shop opens between turns"
	default:
		s.hint = err.Error()
	}
}

// cycleTarget moves the selection to the next or previous alive enemy.
func (s *Session) cycleTarget(dir int) {
	var alive []int
	for i := range s.coord.AliveIndices() {
		alive = append(alive, i)
	}
	if len(alive) == 0 {
		s.selected = -1
		return
	}
	pos := -1
	for p, i := range alive {
		if i == s.selected {
			pos = p
			break
		}
	}
	if pos < 0 {
		front, _ := s.coord.Front()
		s.selected = front
		return
	}
	pos = (pos + dir + len(alive)) % len(alive)
	s.selected = alive[pos]
}

func (s *Session) onFormation(ev Event) {
	switch d := ev.Data.(type) {
	case FormationChangedData:
		s.selected = d.FrontIndex
	case SpawnedData:
		s.selected = -1
	}
}
