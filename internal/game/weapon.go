package game

import (
	"fmt"
	"strings"
)

// Weapon is one of the three hunter tools, played rock-paper-scissors style.
type Weapon int

const (
	WeaponNone     Weapon = iota
	WeaponRock            // spirit vacuum
	WeaponPaper           // holy cross
	WeaponScissors        // wooden stake
)

// Weapons lists the playable weapons in menu order.
var Weapons = []Weapon{WeaponRock, WeaponPaper, WeaponScissors}

var weaponNames = map[Weapon]string{
	WeaponRock:     "ROCK",
	WeaponPaper:    "PAPER",
	WeaponScissors: "SCISSORS",
}

var weaponTools = map[Weapon]string{
	WeaponRock:     "Spirit Vacuum",
	WeaponPaper:    "Holy Cross",
	WeaponScissors: "Wooden Stake",
}

func (w Weapon) String() string {
	if n, ok := weaponNames[w]; ok {
		return n
	}
	return "NONE"
}

// Tool returns the in-game item name for the weapon.
func (w Weapon) Tool() string {
	return weaponTools[w]
}

// Valid reports whether w is a playable weapon.
func (w Weapon) Valid() bool {
	return w >= WeaponRock && w <= WeaponScissors
}

// Beats reports whether w wins against other.
func (w Weapon) Beats(other Weapon) bool {
	switch w {
	case WeaponRock:
		return other == WeaponScissors
	case WeaponPaper:
		return other == WeaponRock
	case WeaponScissors:
		return other == WeaponPaper
	}
	return false
}

// ParseWeapon accepts the names used in content files ("rock", "PAPER", ...).
func ParseWeapon(s string) (Weapon, error) {
	for w, n := range weaponNames {
		if strings.EqualFold(s, n) {
			return w, nil
		}
	}
	return WeaponNone, fmt.Errorf("unknown weapon %q", s)
}

// drawWeapon picks an opponent weapon uniformly.
func drawWeapon(r RNG) Weapon {
	return Weapons[r.Intn(len(Weapons))]
}

// OutcomeKind classifies one exchange from the player's side.
type OutcomeKind int

const (
	OutcomeTie OutcomeKind = iota
	OutcomeWin
	OutcomeLose
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWin:
		return "WIN"
	case OutcomeLose:
		return "LOSE"
	default:
		return "TIE"
	}
}

// Classify applies the rock-paper-scissors relation.
func Classify(player, opponent Weapon) OutcomeKind {
	switch {
	case player == opponent:
		return OutcomeTie
	case player.Beats(opponent):
		return OutcomeWin
	default:
		return OutcomeLose
	}
}
