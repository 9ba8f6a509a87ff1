package game

import "slices"

// BestiaryEntry is what the hunter has learned about one species.
type BestiaryEntry struct {
	Species    Species
	Discovered bool
	Encounters int
	Defeats    int
	// Revealed lists discovered weaknesses in discovery order.
	Revealed []Weapon
}

// WinRate is defeats over encounters as a percentage.
func (b BestiaryEntry) WinRate() float64 {
	if b.Encounters == 0 {
		return 0
	}
	return float64(b.Defeats) / float64(b.Encounters) * 100
}

// Knows reports whether weakness w has been revealed.
func (b BestiaryEntry) Knows(w Weapon) bool {
	return slices.Contains(b.Revealed, w)
}

// Discovery is reported through Bestiary.Notify.
type Discovery struct {
	SpeciesID string
	Name      string
	Weapon    Weapon // WeaponNone when the species itself was discovered
}

// Bestiary is the monster log. It subscribes to battle events and never
// mutates battle state.
type Bestiary struct {
	order   []string
	entries map[string]*BestiaryEntry

	// Notify, if set, is called for every new discovery.
	Notify func(Discovery)
}

// NewBestiary creates a log with an undiscovered entry per species.
func NewBestiary(species []Species) *Bestiary {
	b := &Bestiary{
		entries: make(map[string]*BestiaryEntry, len(species)),
	}
	for _, s := range species {
		if _, dup := b.entries[s.ID]; dup {
			continue
		}
		b.order = append(b.order, s.ID)
		b.entries[s.ID] = &BestiaryEntry{Species: s}
	}
	return b
}

// Entry returns a copy of the entry for a species.
func (b *Bestiary) Entry(id string) (BestiaryEntry, bool) {
	e, ok := b.entries[id]
	if !ok {
		return BestiaryEntry{}, false
	}
	out := *e
	out.Revealed = slices.Clone(e.Revealed)
	return out, true
}

// Entries returns copies of every entry in catalogue order.
func (b *Bestiary) Entries() []BestiaryEntry {
	out := make([]BestiaryEntry, 0, len(b.order))
	for _, id := range b.order {
		e, _ := b.Entry(id)
		out = append(out, e)
	}
	return out
}

// Completion is the percentage of species discovered.
func (b *Bestiary) Completion() float64 {
	if len(b.order) == 0 {
		return 0
	}
	n := 0
	for _, e := range b.entries {
		if e.Discovered {
			n++
		}
	}
	return float64(n) / float64(len(b.order)) * 100
}

// Reset forgets everything.
func (b *Bestiary) Reset() {
	for _, id := range b.order {
		b.entries[id] = &BestiaryEntry{Species: b.entries[id].Species}
	}
}

// RecordEncounter counts an encounter and discovers the species.
func (b *Bestiary) RecordEncounter(speciesID string) {
	e, ok := b.entries[speciesID]
	if !ok {
		return
	}
	e.Encounters++
	if !e.Discovered {
		e.Discovered = true
		b.notify(Discovery{SpeciesID: speciesID, Name: e.Species.Name})
	}
}

// RecordDefeat counts a banished ghost.
func (b *Bestiary) RecordDefeat(speciesID string) {
	if e, ok := b.entries[speciesID]; ok {
		e.Defeats++
	}
}

// RecordHit reveals w as a weakness when it is one. A species with a
// DiscoveryGate reveals nothing until the gate weapon has landed once.
// Returns true when something new was revealed.
func (b *Bestiary) RecordHit(speciesID string, w Weapon) bool {
	e, ok := b.entries[speciesID]
	if !ok || !e.Species.WeakTo(w) || e.Knows(w) {
		return false
	}
	if gate := e.Species.DiscoveryGate; gate != WeaponNone && len(e.Revealed) == 0 && w != gate {
		return false
	}
	e.Revealed = append(e.Revealed, w)
	b.notify(Discovery{SpeciesID: speciesID, Name: e.Species.Name, Weapon: w})
	return true
}

func (b *Bestiary) notify(d Discovery) {
	if b.Notify != nil {
		b.Notify(d)
	}
}

// OnEvent records spawns, hits and kills.
func (b *Bestiary) OnEvent(ev Event) {
	switch ev.Type {
	case EventEnemiesSpawned:
		data, ok := ev.Data.(SpawnedData)
		if !ok {
			return
		}
		for _, e := range data.Enemies {
			b.RecordEncounter(e.Kind)
		}
	case EventOutcomeResolved:
		out, ok := ev.Data.(CombatOutcome)
		if !ok || out.Kind != OutcomeWin || out.Primary == nil {
			return
		}
		b.RecordHit(out.Primary.Kind, out.PlayerWeapon)
		for _, k := range out.Killed() {
			b.RecordDefeat(k.Kind)
		}
	case EventItemPurchased:
		if p, ok := ev.Data.(PurchaseData); ok && p.Hit != nil && p.Hit.Died {
			b.RecordDefeat(p.Hit.Kind)
		}
	}
}
