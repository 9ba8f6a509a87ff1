package game

import "testing"

func TestShakeDecays(t *testing.T) {
	e := NewEffects()
	e.ShakeScreen()
	start := e.screen.Current()
	if start != ScreenShakeIntensity {
		t.Fatalf("expected %v, got %v", ScreenShakeIntensity, start)
	}
	e.Update(ScreenShakeDuration / 2)
	if got := e.screen.Current(); got != ScreenShakeIntensity/2 {
		t.Errorf("expected half intensity, got %v", got)
	}
	e.Update(ScreenShakeDuration)
	if e.screen.Active() {
		t.Error("shake outlived its duration")
	}
	if dx, dy := e.screen.Offset(); dx != 0 || dy != 0 {
		t.Errorf("expected zero offset, got %v,%v", dx, dy)
	}
}

func TestEffectsExpire(t *testing.T) {
	e := NewEffects()
	e.ShakeEnemy(7)
	e.Float(7, TextDamage, "-25")
	e.ShowBanner(Banner{Text: "YOU WIN!"})

	e.Update(EnemyShakeDuration)
	if _, ok := e.enemy[7]; ok {
		t.Error("enemy shake not removed")
	}
	if len(e.texts) != 1 {
		t.Fatal("floating text expired early")
	}
	if e.texts[0].Rise() <= 0 {
		t.Error("floating text did not rise")
	}

	e.Update(FloatingTextLifetime)
	if len(e.texts) != 0 {
		t.Error("floating text outlived its lifetime")
	}
	if e.banner == nil {
		t.Fatal("banner expired early")
	}
	e.Update(BannerLifetime)
	if e.banner != nil {
		t.Error("banner outlived its lifetime")
	}
}

func TestEffectsUpdateZero(t *testing.T) {
	e := NewEffects()
	e.ShakePlayer()
	e.Float(PlayerAnchor, TextDamage, "-20")
	e.Update(0)
	e.Update(-5)
	if e.player.Remaining != PlayerShakeDuration || e.texts[0].Age != 0 {
		t.Error("non-positive update advanced timers")
	}
}

func TestEffectsFromOutcome(t *testing.T) {
	tests := []struct {
		name       string
		out        CombatOutcome
		wantScreen bool
		wantPlayer bool
		wantTexts  int
		wantBanner string
	}{
		{
			name: "win with splash",
			out: CombatOutcome{
				Kind:      OutcomeWin,
				Primary:   &HitReport{EnemyID: 1, Damage: 25},
				Secondary: []HitReport{{EnemyID: 2, Damage: 10}},
				Reward:    15,
			},
			wantScreen: true,
			wantTexts:  3,
			wantBanner: "YOU WIN!",
		},
		{
			name:       "lose",
			out:        CombatOutcome{Kind: OutcomeLose, PlayerDamageTaken: 20},
			wantPlayer: true,
			wantTexts:  1,
			wantBanner: "YOU LOSE!",
		},
		{
			name:       "tie",
			out:        CombatOutcome{Kind: OutcomeTie},
			wantBanner: "TIE!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEffects()
			e.OnEvent(Event{Type: EventOutcomeResolved, Data: tt.out})
			if e.screen.Active() != tt.wantScreen {
				t.Errorf("screen shake: expected %v", tt.wantScreen)
			}
			if e.player.Active() != tt.wantPlayer {
				t.Errorf("player shake: expected %v", tt.wantPlayer)
			}
			if len(e.texts) != tt.wantTexts {
				t.Errorf("expected %d texts, got %d", tt.wantTexts, len(e.texts))
			}
			if e.banner == nil || e.banner.Text != tt.wantBanner {
				t.Errorf("expected banner %q, got %+v", tt.wantBanner, e.banner)
			}
		})
	}
}

func TestEffectsSnapshotIsCopy(t *testing.T) {
	e := NewEffects()
	e.ShowBanner(Banner{Text: "TIE!"})
	s := e.Snapshot()
	s.Banner.Text = "changed"
	if e.banner.Text != "TIE!" {
		t.Error("snapshot aliases the live banner")
	}
}
