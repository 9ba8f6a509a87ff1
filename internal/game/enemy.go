package game

// Species defines a ghost type's base stats and bestiary entry.
type Species struct {
	ID          string
	Name        string
	Description string
	MaxHealth   int
	Weaknesses  []Weapon
	Resistance  Weapon
	Reward      int // shown in the bestiary

	// DiscoveryGate, when set, is the only weapon that can reveal any weakness
	// of this species until its first weakness has been discovered.
	DiscoveryGate Weapon
}

// WeakTo reports whether w is listed as a weakness.
func (s Species) WeakTo(w Weapon) bool {
	for _, weak := range s.Weaknesses {
		if weak == w {
			return true
		}
	}
	return false
}

// Enemy is a live ghost in a battle. Only the Roster mutates it.
type Enemy struct {
	ID        int
	Species   Species
	Label     string // display name, e.g. "Wraith B"
	Health    int
	MaxHealth int
	Slot      int
	Active    bool
	Pose      Pose
}

// Alive reports whether this enemy can still be targeted.
func (e *Enemy) Alive() bool {
	return e.Active && e.Health > 0
}

// EnemySnapshot is a read-only view of an enemy for collaborators.
type EnemySnapshot struct {
	ID        int
	Index     int
	Kind      string
	Label     string
	Health    int
	MaxHealth int
	Slot      int
	Active    bool
	Alive     bool
	Front     bool
	Pose      Pose
}

// DefaultSpecies is the ghost catalogue of the first act.
func DefaultSpecies() []Species {
	return []Species{
		{
			ID: "shadow-spirit", Name: "Shadow Spirit",
			Description: "A common ghost haunting abandoned graveyards.",
			MaxHealth:   80, Weaknesses: []Weapon{WeaponRock, WeaponScissors}, Resistance: WeaponPaper,
			Reward: 15, DiscoveryGate: WeaponRock,
		},
		{
			ID: "lost-soul", Name: "Lost Soul",
			Description: "A wandering spirit searching for eternal peace.",
			MaxHealth:   100, Weaknesses: []Weapon{WeaponPaper}, Resistance: WeaponScissors,
			Reward: 20,
		},
		{
			ID: "poltergeist", Name: "Poltergeist",
			Description: "A mischievous ghost that throws furniture around.",
			MaxHealth:   100, Weaknesses: []Weapon{WeaponScissors}, Resistance: WeaponRock,
			Reward: 25,
		},
		{
			ID: "banshee", Name: "Banshee",
			Description: "A wailing spirit whose cry is deadly.",
			MaxHealth:   120, Weaknesses: []Weapon{WeaponRock, WeaponScissors}, Resistance: WeaponPaper,
			Reward: 30,
		},
		{
			ID: "wraith", Name: "Wraith",
			Description: "A vengeful ghost of great power.",
			MaxHealth:   120, Weaknesses: []Weapon{WeaponPaper}, Resistance: WeaponScissors,
			Reward: 35,
		},
		{
			ID: "phantom", Name: "Phantom",
			Description: "A mysterious and elusive apparition.",
			MaxHealth:   100, Weaknesses: []Weapon{WeaponScissors, WeaponPaper}, Resistance: WeaponRock,
			Reward: 40,
		},
	}
}

// enemyLabels generates labels like "Wraith", "Wraith B" so duplicate species
// in one wave can be told apart.
func enemyLabels(species []Species) []string {
	labels := make([]string, len(species))
	seen := make(map[string]int)
	for i, s := range species {
		n := seen[s.ID]
		seen[s.ID] = n + 1
		if n == 0 {
			labels[i] = s.Name
		} else {
			labels[i] = s.Name + " " + string(rune('A'+n))
		}
	}
	return labels
}
