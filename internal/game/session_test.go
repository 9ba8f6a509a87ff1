package game

import "testing"

func newTestSession(t *testing.T) (*Session, *scriptedRNG) {
	t.Helper()
	rng := &scriptedRNG{}
	rng.queue([]int{0, 0, 0}, rollFor(3))
	s := NewSession(Config{Species: testSpecies(100), RNG: rng})
	if s.Coordinator().roster.Len() != 3 {
		t.Fatalf("expected 3 enemies, got %d", s.Coordinator().roster.Len())
	}
	return s, rng
}

func TestSessionTargetCycling(t *testing.T) {
	s, _ := newTestSession(t)
	if s.Selected() != 0 {
		t.Fatalf("expected front selected, got %d", s.Selected())
	}

	steps := []struct {
		action Action
		want   int
	}{
		{ActionTargetNext, 1},
		{ActionTargetNext, 2},
		{ActionTargetNext, 0},
		{ActionTargetPrev, 2},
	}
	for _, st := range steps {
		s.HandleInput(InputEvent{Action: st.action})
		if s.Selected() != st.want {
			t.Errorf("expected selection %d, got %d", st.want, s.Selected())
		}
	}

	s.Coordinator().roster.ApplyDamage(0, 100)
	s.HandleInput(InputEvent{Action: ActionTargetNext})
	if s.Selected() != 1 {
		t.Errorf("expected dead enemy skipped, got %d", s.Selected())
	}
}

func TestSessionAttackAndLockHint(t *testing.T) {
	s, rng := newTestSession(t)
	s.HandleInput(InputEvent{Action: ActionTargetPrev})
	rng.queue([]int{2})

	s.InputChan() <- InputEvent{Action: ActionRock}
	s.InputChan() <- InputEvent{Action: ActionPaper}
	s.Tick(0)

	st := <-s.RenderChan()
	if st.ID == "" || st.ID != s.ID() {
		t.Errorf("expected battle id %q, got %q", s.ID(), st.ID)
	}
	if st.Enemies[2].Health != 75 {
		t.Errorf("expected selected enemy hit to 75, got %d", st.Enemies[2].Health)
	}
	if st.Enemies[0].Health != 100 {
		t.Errorf("front enemy was hit instead of the selection")
	}
	if !st.Locked || st.Hint == "" {
		t.Errorf("expected locked state with a hint, got locked=%v hint=%q", st.Locked, st.Hint)
	}
	if st.Completion != 100 {
		t.Errorf("expected the only species logged, got %v", st.Completion)
	}
	if st.Tick != 1 {
		t.Errorf("expected tick 1, got %d", st.Tick)
	}
}

func TestSessionSettlesAndFollowsFront(t *testing.T) {
	s, rng := newTestSession(t)
	rng.queue([]int{0})
	s.HandleInput(InputEvent{Action: ActionRock})

	s.Tick(MessageDisplayDelay)
	s.Tick(RotationDuration)
	s.Tick(SettleCooldown)
	if s.Coordinator().IsLocked() {
		t.Fatalf("expected unlocked, got %s", s.Coordinator().State())
	}
	front, _ := s.Coordinator().Front()
	if s.Selected() != front {
		t.Errorf("expected selection to follow front %d, got %d", front, s.Selected())
	}
}

func TestSessionRestartAndQuit(t *testing.T) {
	s, _ := newTestSession(t)
	s.HandleInput(InputEvent{Action: ActionRestart})
	if s.State().Hint == "" {
		t.Error("restart before defeat should hint")
	}

	s.Coordinator().player.Health = 0
	s.Coordinator().battleOver = true
	s.Coordinator().state = StateLocked
	s.HandleInput(InputEvent{Action: ActionRestart})
	if s.Coordinator().BattleOver() || s.Coordinator().Player().Health != PlayerMaxHealth {
		t.Error("restart did not start a new battle")
	}

	s.HandleInput(InputEvent{Action: ActionQuit})
	select {
	case <-s.stopCh:
	default:
		t.Error("quit did not stop the session")
	}
	s.Stop()
}

func TestSessionBuy(t *testing.T) {
	s, _ := newTestSession(t)
	s.HandleInput(InputEvent{Action: ActionBuy2})
	if got := s.Coordinator().Player().Money; got != StartingMoney-50 {
		t.Errorf("expected money %d, got %d", StartingMoney-50, got)
	}
	s.HandleInput(InputEvent{Action: ActionBuy3})
	if s.State().Hint != "Not enough money" {
		t.Errorf("expected funds hint, got %q", s.State().Hint)
	}
}
