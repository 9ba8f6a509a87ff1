package game

import (
	"fmt"
	"iter"
)

const (
	MinWaveSize = 1
	MaxWaveSize = 3
)

// DamageReport describes one application of damage to an enemy.
type DamageReport struct {
	EnemyID int
	Index   int
	Kind    string
	Label   string
	Before  int
	After   int
	Damage  int // health actually removed
	Died    bool
}

// Roster owns the enemies of one battle. Other components refer to enemies by
// index and go through the Roster to mutate them.
type Roster struct {
	layout  Layout
	species []Species
	enemies []*Enemy
	nextID  int
	started int // enemies present when the current wave spawned
}

// NewRoster creates an empty roster for the given layout and species pool.
func NewRoster(layout Layout, species []Species) *Roster {
	return &Roster{layout: layout, species: species}
}

// RollCount draws a wave size: 25% one, 50% two, 25% three.
func RollCount(r RNG) int {
	v := r.Float64()
	switch {
	case v < 0.25:
		return 1
	case v < 0.75:
		return 2
	default:
		return 3
	}
}

// Spawn replaces the current wave with count enemies, each of a species drawn
// uniformly, placed on slots 0..count-1.
func (r *Roster) Spawn(count int, rng RNG) error {
	if count < MinWaveSize || count > MaxWaveSize {
		return fmt.Errorf("spawn %d enemies: count must be in [%d,%d]", count, MinWaveSize, MaxWaveSize)
	}
	if count > r.layout.Len() {
		return fmt.Errorf("spawn %d enemies: layout has %d slots", count, r.layout.Len())
	}
	if len(r.species) == 0 {
		return fmt.Errorf("spawn %d enemies: no species configured", count)
	}

	picked := make([]Species, count)
	for i := range picked {
		picked[i] = r.species[rng.Intn(len(r.species))]
	}
	labels := enemyLabels(picked)

	r.enemies = make([]*Enemy, count)
	for i, s := range picked {
		r.enemies[i] = &Enemy{
			ID:        r.nextID,
			Species:   s,
			Label:     labels[i],
			Health:    s.MaxHealth,
			MaxHealth: s.MaxHealth,
			Slot:      i,
			Active:    true,
			Pose:      r.layout.Slot(i).PoseOf(),
		}
		r.nextID++
	}
	r.started = count
	return nil
}

// Clear removes every enemy.
func (r *Roster) Clear() {
	r.enemies = nil
	r.started = 0
}

// Len returns the number of enemies in the wave, alive or not.
func (r *Roster) Len() int {
	return len(r.enemies)
}

// StartCount returns how many enemies the current wave spawned with.
func (r *Roster) StartCount() int {
	return r.started
}

// Layout returns the formation layout.
func (r *Roster) Layout() Layout {
	return r.layout
}

// Get returns a copy of the enemy at index.
func (r *Roster) Get(index int) (Enemy, bool) {
	if index < 0 || index >= len(r.enemies) {
		return Enemy{}, false
	}
	return *r.enemies[index], true
}

// IsAlive reports whether index refers to an active enemy with health left.
func (r *Roster) IsAlive(index int) bool {
	return index >= 0 && index < len(r.enemies) && r.enemies[index].Alive()
}

// AliveIndices yields the indices of alive enemies in roster order.
func (r *Roster) AliveIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, e := range r.enemies {
			if !e.Alive() {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

// AliveCount returns how many enemies are still alive.
func (r *Roster) AliveCount() int {
	n := 0
	for range r.AliveIndices() {
		n++
	}
	return n
}

// AllDefeated reports whether no enemy is alive.
func (r *Roster) AllDefeated() bool {
	for range r.AliveIndices() {
		return false
	}
	return true
}

// Front returns the index of the alive enemy on the highest-ranked slot. When
// no alive enemy holds that slot, the first alive enemy is returned instead.
// ok is false when nothing is alive.
func (r *Roster) Front() (index int, ok bool) {
	maxRank := r.layout.MaxRank()
	first := -1
	for i := range r.AliveIndices() {
		if first < 0 {
			first = i
		}
		if r.layout.Slot(r.enemies[i].Slot).DepthRank == maxRank {
			return i, true
		}
	}
	if first < 0 {
		return -1, false
	}
	return first, true
}

// ApplyDamage removes amount health from the enemy at index, clamped to
// [0, MaxHealth]. An enemy brought to 0 becomes inactive. Slots are untouched.
func (r *Roster) ApplyDamage(index, amount int) (DamageReport, bool) {
	if index < 0 || index >= len(r.enemies) {
		return DamageReport{}, false
	}
	e := r.enemies[index]
	before := e.Health
	after := before - amount
	if after < 0 {
		after = 0
	}
	if after > e.MaxHealth {
		after = e.MaxHealth
	}
	e.Health = after
	died := false
	if after == 0 && e.Active {
		e.Active = false
		died = true
	}
	return DamageReport{
		EnemyID: e.ID,
		Index:   index,
		Kind:    e.Species.ID,
		Label:   e.Label,
		Before:  before,
		After:   after,
		Damage:  before - after,
		Died:    died,
	}, true
}

// Deactivate removes an enemy from combat and rotation without damage.
func (r *Roster) Deactivate(index int) {
	if index >= 0 && index < len(r.enemies) {
		r.enemies[index].Active = false
	}
}

// assignSlot commits a slot and its resting pose.
func (r *Roster) assignSlot(index, slot int) {
	e := r.enemies[index]
	e.Slot = slot
	e.Pose = r.layout.Slot(slot).PoseOf()
}

func (r *Roster) setPose(index int, p Pose) {
	r.enemies[index].Pose = p
}

// Snapshot returns read-only copies of every enemy in roster order.
func (r *Roster) Snapshot() []EnemySnapshot {
	front, hasFront := r.Front()
	out := make([]EnemySnapshot, len(r.enemies))
	for i, e := range r.enemies {
		out[i] = EnemySnapshot{
			ID:        e.ID,
			Index:     i,
			Kind:      e.Species.ID,
			Label:     e.Label,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Slot:      e.Slot,
			Active:    e.Active,
			Alive:     e.Alive(),
			Front:     hasFront && front == i,
			Pose:      e.Pose,
		}
	}
	return out
}
