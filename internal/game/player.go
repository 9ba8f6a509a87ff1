package game

// Player holds the hunter's state for one battle.
type Player struct {
	Name      string
	Health    int
	MaxHealth int
	Money     int
	Score     int
	Defeated  int // ghosts banished
}

// NewPlayer returns a hunter with full health and the starting purse.
func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		Health:    PlayerMaxHealth,
		MaxHealth: PlayerMaxHealth,
		Money:     StartingMoney,
	}
}

// Dead reports whether the hunter is out of health.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// TakeDamage removes health, clamped at zero. Returns the amount removed.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.Health
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return before - p.Health
}

// Heal restores health up to MaxHealth. Returns the amount restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.Health
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	return p.Health - before
}

// Credit adds money; negative amounts are ignored.
func (p *Player) Credit(amount int) {
	if amount > 0 {
		p.Money += amount
	}
}

// PlayerSnapshot is a read-only copy of the hunter for rendering.
type PlayerSnapshot struct {
	Name      string
	Health    int
	MaxHealth int
	Money     int
	Score     int
	Defeated  int
}

// Snapshot returns a read-only copy of the player.
func (p *Player) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		Name:      p.Name,
		Health:    p.Health,
		MaxHealth: p.MaxHealth,
		Money:     p.Money,
		Score:     p.Score,
		Defeated:  p.Defeated,
	}
}
