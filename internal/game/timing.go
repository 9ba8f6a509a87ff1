package game

import "time"

const TickRate = 30 // session ticks per second

// Ms converts a duration to the float milliseconds the engine counts in.
func Ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Timing constants, in milliseconds of game time.
var (
	MessageDisplayDelay = Ms(800 * time.Millisecond)  // result banner visible before rotation starts
	RotationDuration    = Ms(800 * time.Millisecond)  // formation shift animation
	SettleCooldown      = Ms(300 * time.Millisecond)  // after rotation (or no rotation) before unlock
	VictorySettleDelay  = Ms(1500 * time.Millisecond) // total victory banner before the next wave

	BannerLifetime       = Ms(2 * time.Second)
	FloatingTextLifetime = Ms(1 * time.Second)
	EnemyShakeDuration   = Ms(300 * time.Millisecond)
	PlayerShakeDuration  = Ms(400 * time.Millisecond)
	ScreenShakeDuration  = Ms(500 * time.Millisecond)
)

// Balance constants.
const (
	PlayerDamage      = 25 // flat damage of a won exchange
	CounterDamage     = 20 // damage the player takes on a lost exchange
	PlayerMaxHealth   = 100
	StartingMoney     = 100
	VictoryBaseReward = 60 // per enemy present at battle start
	AreaHitBonus      = 5  // flat bonus per secondary hit before effectiveness

	EnemyShakeIntensity  = 8.0
	PlayerShakeIntensity = 10.0
	ScreenShakeIntensity = 15.0
)
