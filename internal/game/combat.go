package game

import "fmt"

// HitReport is the damage one enemy took in an exchange.
type HitReport = DamageReport

// RewardBreakdown splits the money granted by an exchange.
type RewardBreakdown struct {
	Primary int
	Area    int
	Victory int
}

// CombatOutcome is the result of one player action. It holds copies only and
// is discarded once collaborators have seen it.
type CombatOutcome struct {
	Kind              OutcomeKind
	PlayerWeapon      Weapon
	OpponentWeapon    Weapon
	Primary           *HitReport // nil unless the exchange was won
	Secondary         []HitReport
	PlayerDamageTaken int
	Reward            int
	Breakdown         RewardBreakdown
	TotalVictory      bool
}

// Killed returns the reports of every enemy this exchange finished off.
func (o CombatOutcome) Killed() []HitReport {
	var out []HitReport
	if o.Primary != nil && o.Primary.Died {
		out = append(out, *o.Primary)
	}
	for _, h := range o.Secondary {
		if h.Died {
			out = append(out, h)
		}
	}
	return out
}

// Summary is the one-line battle log entry for the outcome.
func (o CombatOutcome) Summary() string {
	if o.TotalVictory && o.Primary == nil {
		return fmt.Sprintf("The haunting is over! +$%d bonus.", o.Breakdown.Victory)
	}
	switch o.Kind {
	case OutcomeWin:
		msg := fmt.Sprintf("%s beats %s! %s takes %d damage.", o.PlayerWeapon, o.OpponentWeapon, o.Primary.Label, o.Primary.Damage)
		if o.Primary.Died {
			msg += fmt.Sprintf(" %s banished!", o.Primary.Label)
		}
		if n := len(o.Secondary); n > 0 {
			msg += fmt.Sprintf(" Splash hits %d more.", n)
		}
		return msg + fmt.Sprintf(" +$%d", o.Reward)
	case OutcomeLose:
		return fmt.Sprintf("%s loses to %s! You take %d damage.", o.PlayerWeapon, o.OpponentWeapon, o.PlayerDamageTaken)
	default:
		return fmt.Sprintf("Both played %s. Tie!", o.PlayerWeapon)
	}
}

// Resolver turns one player action into a CombatOutcome.
type Resolver struct {
	rng           RNG
	damage        int
	counterDamage int
}

// NewResolver creates a resolver with the standard flat damage values.
func NewResolver(rng RNG) *Resolver {
	return &Resolver{rng: rng, damage: PlayerDamage, counterDamage: CounterDamage}
}

// Resolve plays weapon against the enemy at target. It mutates the roster and
// the player but never the turn state. On error nothing has changed.
func (r *Resolver) Resolve(roster *Roster, player *Player, weapon Weapon, target int) (CombatOutcome, error) {
	if roster.Len() == 0 {
		return CombatOutcome{}, ErrNoEnemies
	}
	if !weapon.Valid() {
		return CombatOutcome{}, fmt.Errorf("%w: %d", ErrWeaponInvalid, weapon)
	}
	if !roster.IsAlive(target) {
		return CombatOutcome{}, fmt.Errorf("%w: index %d", ErrTargetInvalid, target)
	}

	opponent := drawWeapon(r.rng)
	out := CombatOutcome{
		Kind:           Classify(weapon, opponent),
		PlayerWeapon:   weapon,
		OpponentWeapon: opponent,
	}

	switch out.Kind {
	case OutcomeWin:
		primary, _ := roster.ApplyDamage(target, r.damage)
		out.Primary = &primary

		chance := AreaChance(r.damage)
		var others []int
		for i := range roster.AliveIndices() {
			if i != target {
				others = append(others, i)
			}
		}
		for _, i := range others {
			if r.rng.Float64() >= chance {
				continue
			}
			hit, _ := roster.ApplyDamage(i, r.secondaryDamage())
			out.Secondary = append(out.Secondary, hit)
		}

		out.Breakdown.Primary = RollPrimaryReward(weapon, primary.Damage, r.rng)
		out.Breakdown.Area = AreaBonus(weapon, len(out.Secondary))
		out.Reward = out.Breakdown.Primary + out.Breakdown.Area
	case OutcomeLose:
		out.PlayerDamageTaken = player.TakeDamage(r.counterDamage)
	}
	return out, nil
}

// secondaryDamage is 30-60% of the base damage, at least 1.
func (r *Resolver) secondaryDamage() int {
	d := int(float64(r.damage) * uniform(r.rng, 0.3, 0.6))
	if d < 1 {
		d = 1
	}
	return d
}
