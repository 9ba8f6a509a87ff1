package game

import "testing"

func TestPrimaryReward(t *testing.T) {
	tests := []struct {
		name   string
		weapon Weapon
		damage int
		jitter float64
		want   int
	}{
		{"paper full", WeaponPaper, 25, 1.0, 28},
		{"rock full", WeaponRock, 25, 1.0, 12},
		{"scissors no bonus", WeaponScissors, 20, 1.0, 5},
		{"paper high jitter", WeaponPaper, 30, 1.1, 33},
		{"unknown weapon", WeaponNone, 25, 1.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrimaryReward(tt.weapon, tt.damage, tt.jitter); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRewardsNeverNegative(t *testing.T) {
	for _, w := range Weapons {
		for d := 0; d <= 100; d += 5 {
			for _, j := range []float64{0.9, 1.0, 1.1} {
				if got := PrimaryReward(w, d, j); got < 0 {
					t.Errorf("%s dmg %d jitter %v: got %d", w, d, j, got)
				}
			}
		}
		for hits := 0; hits <= 3; hits++ {
			if got := AreaBonus(w, hits); got < 0 {
				t.Errorf("%s hits %d: got %d", w, hits, got)
			}
		}
	}
}

func TestAreaBonus(t *testing.T) {
	tests := []struct {
		weapon Weapon
		hits   int
		want   int
	}{
		{WeaponRock, 0, 0},
		{WeaponRock, 1, 3},
		{WeaponPaper, 2, 10},
		{WeaponScissors, 3, 7},
	}
	for _, tt := range tests {
		if got := AreaBonus(tt.weapon, tt.hits); got != tt.want {
			t.Errorf("%s x%d: expected %d, got %d", tt.weapon, tt.hits, tt.want, got)
		}
	}
}

func TestAreaChanceMonotonicAndCapped(t *testing.T) {
	prev := -1.0
	for p := 0; p <= 300; p++ {
		c := AreaChance(p)
		if c < prev {
			t.Fatalf("chance decreased at power %d: %v < %v", p, c, prev)
		}
		if c > 0.7 {
			t.Fatalf("chance %v above cap at power %d", c, p)
		}
		prev = c
	}
	if got := AreaChance(0); got != 0.3 {
		t.Errorf("expected 0.3 floor, got %v", got)
	}
}

func TestVictoryBonus(t *testing.T) {
	if got := VictoryBonus(3); got != 180 {
		t.Errorf("expected 180, got %d", got)
	}
	if got := VictoryBonus(0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestEffectivenessRange(t *testing.T) {
	for _, w := range Weapons {
		m := EffectivenessOf(w).Multiplier
		if m <= 0 || m > 1 {
			t.Errorf("%s multiplier %v outside (0,1]", w, m)
		}
	}
}
