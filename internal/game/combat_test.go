package game

import (
	"errors"
	"testing"
)

func TestResolveSingleEnemyWin(t *testing.T) {
	roster := spawnRoster(t, 1, 80)
	player := NewPlayer("p")
	// Opponent draws scissors; the jitter draw of 0.5 is exactly 1.0.
	rng := &scriptedRNG{ints: []int{2}, floats: []float64{0.5}}

	out, err := NewResolver(rng).Resolve(roster, player, WeaponRock, 0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if out.Kind != OutcomeWin || out.OpponentWeapon != WeaponScissors {
		t.Fatalf("expected WIN vs SCISSORS, got %s vs %s", out.Kind, out.OpponentWeapon)
	}
	if out.Primary == nil || out.Primary.After != 55 || out.Primary.Before != 80 || out.Primary.Died {
		t.Errorf("expected 80 -> 55 alive, got %+v", out.Primary)
	}
	if len(out.Secondary) != 0 {
		t.Errorf("expected no secondary hits, got %d", len(out.Secondary))
	}
	if want := PrimaryReward(WeaponRock, 25, 1.0); out.Reward != want {
		t.Errorf("expected reward %d, got %d", want, out.Reward)
	}
	if out.PlayerDamageTaken != 0 || player.Health != PlayerMaxHealth {
		t.Errorf("player should be untouched, took %d", out.PlayerDamageTaken)
	}
}

func TestResolveAreaHits(t *testing.T) {
	roster := spawnRoster(t, 3, 100)
	rng := &scriptedRNG{
		ints: []int{2},
		// enemy 1 hit with u=0.45, enemy 2 missed, jitter 1.0
		floats: []float64{0.1, 0.5, 0.9, 0.5},
	}
	out, err := NewResolver(rng).Resolve(roster, NewPlayer("p"), WeaponRock, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Secondary) != 1 {
		t.Fatalf("expected 1 secondary hit, got %d", len(out.Secondary))
	}
	hit := out.Secondary[0]
	if hit.Index != 1 || hit.Damage != 11 {
		t.Errorf("expected 11 damage on enemy 1, got %+v", hit)
	}
	if e, _ := roster.Get(2); e.Health != 100 {
		t.Errorf("enemy 2 should be untouched, has %d", e.Health)
	}
	wantPrimary := PrimaryReward(WeaponRock, 25, 1.0)
	wantArea := AreaBonus(WeaponRock, 1)
	if out.Breakdown.Primary != wantPrimary || out.Breakdown.Area != wantArea {
		t.Errorf("expected breakdown %d+%d, got %+v", wantPrimary, wantArea, out.Breakdown)
	}
	if out.Reward != wantPrimary+wantArea {
		t.Errorf("expected reward %d, got %d", wantPrimary+wantArea, out.Reward)
	}
}

func TestResolveLoseAndTie(t *testing.T) {
	tests := []struct {
		name       string
		opponent   int
		wantKind   OutcomeKind
		wantHealth int
	}{
		{"lose to paper", 1, OutcomeLose, PlayerMaxHealth - CounterDamage},
		{"tie", 0, OutcomeTie, PlayerMaxHealth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := spawnRoster(t, 2, 100)
			player := NewPlayer("p")
			rng := &scriptedRNG{ints: []int{tt.opponent}}
			out, err := NewResolver(rng).Resolve(roster, player, WeaponRock, 0)
			if err != nil {
				t.Fatal(err)
			}
			if out.Kind != tt.wantKind {
				t.Errorf("expected %s, got %s", tt.wantKind, out.Kind)
			}
			if player.Health != tt.wantHealth {
				t.Errorf("expected health %d, got %d", tt.wantHealth, player.Health)
			}
			if out.Reward != 0 || out.Primary != nil {
				t.Errorf("expected no reward or hit, got %d %+v", out.Reward, out.Primary)
			}
			for _, e := range roster.Snapshot() {
				if e.Health != 100 {
					t.Errorf("enemy %d damaged on %s", e.Index, out.Kind)
				}
			}
		})
	}
}

func TestResolveInvalidTarget(t *testing.T) {
	tests := []struct {
		name   string
		target int
		kill   bool
	}{
		{"negative", -1, false},
		{"out of range", 5, false},
		{"dead", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := spawnRoster(t, 2, 100)
			if tt.kill {
				roster.ApplyDamage(0, 100)
			}
			rng := &scriptedRNG{ints: []int{2}}
			_, err := NewResolver(rng).Resolve(roster, NewPlayer("p"), WeaponRock, tt.target)
			if !errors.Is(err, ErrTargetInvalid) {
				t.Fatalf("expected ErrTargetInvalid, got %v", err)
			}
			if len(rng.ints) != 1 {
				t.Error("invalid target consumed a random draw")
			}
		})
	}
}

func TestResolveEmptyRoster(t *testing.T) {
	roster := NewRoster(DefaultLayout(), testSpecies(100))
	_, err := NewResolver(&scriptedRNG{}).Resolve(roster, NewPlayer("p"), WeaponRock, 0)
	if !errors.Is(err, ErrNoEnemies) {
		t.Errorf("expected ErrNoEnemies, got %v", err)
	}
}

func TestSecondaryDamageFloor(t *testing.T) {
	r := &Resolver{rng: &scriptedRNG{floats: []float64{0}}, damage: 2}
	if got := r.secondaryDamage(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		player, opponent Weapon
		want             OutcomeKind
	}{
		{WeaponRock, WeaponScissors, OutcomeWin},
		{WeaponPaper, WeaponRock, OutcomeWin},
		{WeaponScissors, WeaponPaper, OutcomeWin},
		{WeaponRock, WeaponPaper, OutcomeLose},
		{WeaponPaper, WeaponScissors, OutcomeLose},
		{WeaponScissors, WeaponRock, OutcomeLose},
		{WeaponRock, WeaponRock, OutcomeTie},
		{WeaponPaper, WeaponPaper, OutcomeTie},
		{WeaponScissors, WeaponScissors, OutcomeTie},
	}
	for _, tt := range tests {
		t.Run(tt.player.String()+"_vs_"+tt.opponent.String(), func(t *testing.T) {
			if got := Classify(tt.player, tt.opponent); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseWeapon(t *testing.T) {
	for _, s := range []string{"rock", "PAPER", "Scissors"} {
		if _, err := ParseWeapon(s); err != nil {
			t.Errorf("%q: %v", s, err)
		}
	}
	if _, err := ParseWeapon("lizard"); err == nil {
		t.Error("expected error for unknown weapon")
	}
}
