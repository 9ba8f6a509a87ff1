package game

import "errors"

// Turn errors. All are recoverable; none leaves the battle in a partial state.
var (
	ErrTargetInvalid     = errors.New("target invalid")
	ErrWeaponInvalid     = errors.New("weapon invalid")
	ErrTurnLocked        = errors.New("turn locked")
	ErrNoEnemies         = errors.New("no enemies to resolve")
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
