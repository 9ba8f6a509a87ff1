package game

import (
	"fmt"
	"math"
)

// Effectiveness is how well a weapon works against ghosts.
type Effectiveness struct {
	Multiplier  float64 // in (0, 1]
	BaseBonus   int
	Description string
}

var effectiveness = map[Weapon]Effectiveness{
	WeaponRock:     {Multiplier: 0.7, BaseBonus: 15, Description: "Moderately effective"},
	WeaponPaper:    {Multiplier: 1.0, BaseBonus: 25, Description: "Very effective"},
	WeaponScissors: {Multiplier: 0.5, BaseBonus: 10, Description: "Barely effective"},
}

// EffectivenessOf returns the weapon's multiplier against the ghost archetype.
// Unknown weapons get a zero multiplier and earn nothing.
func EffectivenessOf(w Weapon) Effectiveness {
	return effectiveness[w]
}

// PrimaryReward is the money earned for the primary hit of a won exchange.
// jitter must be in [0.9, 1.1].
func PrimaryReward(w Weapon, damage int, jitter float64) int {
	eff := EffectivenessOf(w)
	bonus := math.Max(0, float64(damage-20)*0.5)
	v := math.Round((float64(eff.BaseBonus) + bonus) * eff.Multiplier * jitter)
	if v < 0 {
		return 0
	}
	return int(v)
}

// RollPrimaryReward draws the jitter and computes PrimaryReward.
func RollPrimaryReward(w Weapon, damage int, r RNG) int {
	return PrimaryReward(w, damage, uniform(r, 0.9, 1.1))
}

// AreaBonus is the extra money for secondary hits.
func AreaBonus(w Weapon, hits int) int {
	if hits <= 0 {
		return 0
	}
	return int(math.Floor(float64(hits*AreaHitBonus) * EffectivenessOf(w).Multiplier))
}

// VictoryBonus is paid when the whole formation is cleared.
func VictoryBonus(startCount int) int {
	if startCount <= 0 {
		return 0
	}
	return startCount * VictoryBaseReward
}

// AreaChance is the per-enemy probability of splash damage for an attack of
// the given power: 30% floor, up to 40% more, capped at 70%.
func AreaChance(power int) float64 {
	if power < 0 {
		power = 0
	}
	return math.Min(0.3+(float64(power)/100)*0.4, 0.7)
}

// EffectivenessText is the HUD line for a weapon.
func EffectivenessText(w Weapon) string {
	eff := EffectivenessOf(w)
	return fmt.Sprintf("%s: %d%% effective vs ghosts", w.Tool(), int(math.Round(eff.Multiplier*100)))
}

// RewardPreview estimates the payout of a weapon before attacking.
func RewardPreview(w Weapon) string {
	eff := EffectivenessOf(w)
	return fmt.Sprintf("Estimated reward: $%d (%s)", eff.BaseBonus, eff.Description)
}
