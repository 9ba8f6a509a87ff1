package game

import "testing"

// scriptedRNG replays fixed draws. Once a queue runs dry Float64 returns 0.5
// and Intn returns 0.
type scriptedRNG struct {
	floats []float64
	ints   []int
}

func (s *scriptedRNG) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRNG) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRNG) queue(ints []int, floats ...float64) {
	s.ints = append(s.ints, ints...)
	s.floats = append(s.floats, floats...)
}

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(t EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func testSpecies(hp int) []Species {
	return []Species{{
		ID:         "test",
		Name:       "Test Ghost",
		MaxHealth:  hp,
		Weaknesses: []Weapon{WeaponRock},
		Resistance: WeaponPaper,
	}}
}

func spawnRoster(t *testing.T, count, hp int) *Roster {
	t.Helper()
	r := NewRoster(DefaultLayout(), testSpecies(hp))
	if err := r.Spawn(count, &scriptedRNG{}); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	return r
}

// rollFor returns the RollCount draw that yields n enemies.
func rollFor(n int) float64 {
	switch n {
	case 1:
		return 0.1
	case 2:
		return 0.5
	default:
		return 0.9
	}
}

// newTestCoordinator spawns a wave of count enemies with hp health each.
func newTestCoordinator(t *testing.T, count, hp int) (*Coordinator, *scriptedRNG, *recorder) {
	t.Helper()
	rng := &scriptedRNG{}
	rng.queue(make([]int, count), rollFor(count))
	c := NewCoordinator(Config{Species: testSpecies(hp), RNG: rng})
	rec := &recorder{}
	c.Subscribe(rec)
	if n := c.SpawnEnemies(); n != count {
		t.Fatalf("expected %d enemies, got %d", count, n)
	}
	return c, rng, rec
}
