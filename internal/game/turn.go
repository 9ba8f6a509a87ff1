package game

import (
	"fmt"
	"iter"
	"log"
	"slices"
)

// TurnState is the phase of the current turn.
type TurnState int

const (
	StateIdle             TurnState = iota // accepting input
	StateResolving                         // Submit is applying an exchange
	StateAwaitingRotation                  // result visible, rotation pending
	StateRotating                          // formation animation running
	StateLocked                            // settling before unlock, or battle over
)

var turnStateNames = [...]string{"Idle", "Resolving", "AwaitingRotation", "Rotating", "Locked"}

func (s TurnState) String() string {
	if int(s) < len(turnStateNames) {
		return turnStateNames[s]
	}
	return fmt.Sprintf("TurnState(%d)", int(s))
}

// turnTransitions is the only place legal turn transitions are defined.
// Reset may return to Idle from any state.
var turnTransitions = map[TurnState][]TurnState{
	StateIdle:             {StateResolving},
	StateResolving:        {StateAwaitingRotation, StateLocked},
	StateAwaitingRotation: {StateRotating, StateLocked},
	StateRotating:         {StateLocked},
	StateLocked:           {StateIdle},
}

// CanTransition reports whether from -> to is a legal turn transition.
func CanTransition(from, to TurnState) bool {
	return slices.Contains(turnTransitions[from], to)
}

const maxLogLines = 6

// Config wires a coordinator. Zero fields get the defaults.
type Config struct {
	Layout     Layout
	Species    []Species
	Shop       []ShopItem
	RNG        RNG
	PlayerName string
}

func (c Config) withDefaults() Config {
	if len(c.Layout) == 0 {
		c.Layout = DefaultLayout()
	}
	if len(c.Species) == 0 {
		c.Species = DefaultSpecies()
	}
	if c.Shop == nil {
		c.Shop = DefaultShop()
	}
	if c.RNG == nil {
		c.RNG = NewRNG(0)
	}
	if c.PlayerName == "" {
		c.PlayerName = "Hunter"
	}
	return c
}

// BattleState is a read-only snapshot of a battle for rendering.
type BattleState struct {
	ID         string
	State      TurnState
	Locked     bool
	BattleOver bool
	Rotating   bool
	Enemies    []EnemySnapshot
	FrontIndex int // -1 when nothing is alive
	Selected   int // target chosen by the front-end, -1 for none
	Player     PlayerSnapshot
	Effects    EffectsSnapshot
	Shop       []ShopItem
	Log        []string
	Turn       int
	Wave       int
	Completion float64 // monster log percentage, filled in by the session
	Hint       string  // transient front-end message
	Tick       uint64
}

// Coordinator sequences turns: it resolves an exchange, then walks the
// formation through its delayed rotation and unlocks input again. All
// battle state is mutated from the goroutine calling Submit, Buy and Update.
type Coordinator struct {
	rng      RNG
	roster   *Roster
	player   *Player
	resolver *Resolver
	rotation *Rotation
	effects  *Effects
	shop     []ShopItem
	events   *Dispatcher
	name     string

	state          TurnState
	timer          float64 // ms left in the current wait
	battleOver     bool
	respawnPending bool
	frontID        int

	turn int
	wave int
	log  []string
}

// NewCoordinator builds an idle coordinator with an empty roster. Call
// SpawnEnemies to start the first wave.
func NewCoordinator(cfg Config) *Coordinator {
	cfg = cfg.withDefaults()
	roster := NewRoster(cfg.Layout, cfg.Species)
	c := &Coordinator{
		rng:      cfg.RNG,
		roster:   roster,
		player:   NewPlayer(cfg.PlayerName),
		resolver: NewResolver(cfg.RNG),
		rotation: NewRotation(roster, RotationDuration),
		effects:  NewEffects(),
		shop:     cfg.Shop,
		events:   NewDispatcher(),
		name:     cfg.PlayerName,
		frontID:  -1,
	}
	c.events.Subscribe(c.effects)
	return c
}

// Subscribe registers a listener for the given event types, or all events.
func (c *Coordinator) Subscribe(l Listener, types ...EventType) {
	c.events.Subscribe(l, types...)
}

// State returns the current turn state.
func (c *Coordinator) State() TurnState {
	return c.state
}

// IsLocked reports whether Submit would be refused.
func (c *Coordinator) IsLocked() bool {
	return c.state != StateIdle
}

// BattleOver reports whether the hunter has been defeated.
func (c *Coordinator) BattleOver() bool {
	return c.battleOver
}

// Player returns a copy of the hunter.
func (c *Coordinator) Player() PlayerSnapshot {
	return c.player.Snapshot()
}

// FormationSnapshot returns read-only copies of the current enemies.
func (c *Coordinator) FormationSnapshot() []EnemySnapshot {
	return c.roster.Snapshot()
}

// Front returns the index of the front enemy.
func (c *Coordinator) Front() (int, bool) {
	return c.roster.Front()
}

// AliveIndices yields alive enemy indices in roster order.
func (c *Coordinator) AliveIndices() iter.Seq[int] {
	return c.roster.AliveIndices()
}

// Messages returns a copy of the battle log.
func (c *Coordinator) Messages() []string {
	return slices.Clone(c.log)
}

// Snapshot returns the full render state.
func (c *Coordinator) Snapshot() BattleState {
	front, ok := c.roster.Front()
	if !ok {
		front = -1
	}
	return BattleState{
		State:      c.state,
		Locked:     c.IsLocked(),
		BattleOver: c.battleOver,
		Rotating:   c.rotation.Animating(),
		Enemies:    c.roster.Snapshot(),
		FrontIndex: front,
		Selected:   -1,
		Player:     c.player.Snapshot(),
		Effects:    c.effects.Snapshot(),
		Shop:       slices.Clone(c.shop),
		Log:        slices.Clone(c.log),
		Turn:       c.turn,
		Wave:       c.wave,
	}
}

// addLog appends a message to the battle log, keeping it trimmed.
func (c *Coordinator) addLog(msg string) {
	c.log = append(c.log, msg)
	if len(c.log) > maxLogLines {
		c.log = c.log[len(c.log)-maxLogLines:]
	}
}

func (c *Coordinator) transition(to TurnState) bool {
	if !CanTransition(c.state, to) {
		log.Printf("turn: refused transition %s -> %s", c.state, to)
		return false
	}
	c.state = to
	return true
}

// lockFor enters Locked and unlocks after ms of Update time.
func (c *Coordinator) lockFor(ms float64) {
	if c.transition(StateLocked) {
		c.timer = ms
	}
}

// SpawnEnemies replaces the wave with a fresh one of 1-3 ghosts and returns
// how many spawned. A turn in flight is abandoned and input is unlocked,
// unless the battle is over.
func (c *Coordinator) SpawnEnemies() int {
	n := c.spawnWave()
	if !c.battleOver {
		c.state = StateIdle
		c.timer = 0
		c.respawnPending = false
	}
	return n
}

func (c *Coordinator) spawnWave() int {
	count := RollCount(c.rng)
	if slots := c.roster.Layout().Len(); count > slots {
		count = slots
	}
	c.rotation.Cancel()
	if err := c.roster.Spawn(count, c.rng); err != nil {
		log.Printf("spawn wave: %v", err)
		c.roster.Clear()
		return 0
	}
	c.wave++
	log.Printf("wave %d: %d ghosts", c.wave, count)
	if count == 1 {
		c.addLog("A ghost appears!")
	} else {
		c.addLog(fmt.Sprintf("%d ghosts appear!", count))
	}
	c.events.Dispatch(Event{Type: EventEnemiesSpawned, Data: SpawnedData{Enemies: c.roster.Snapshot()}})
	c.frontID = -1
	c.checkFront()
	return count
}

// checkFront emits FormationChanged when the front enemy differs from the
// last one announced.
func (c *Coordinator) checkFront() {
	id, idx := -1, -1
	if i, ok := c.roster.Front(); ok {
		e, _ := c.roster.Get(i)
		id, idx = e.ID, i
	}
	if id == c.frontID {
		return
	}
	c.frontID = id
	c.events.Dispatch(Event{Type: EventFormationChanged, Data: FormationChangedData{FrontID: id, FrontIndex: idx}})
}

// Submit plays weapon against the enemy at target. Its effects on the roster,
// the hunter and the purse are applied before it returns; the visual settle
// continues through Update.
func (c *Coordinator) Submit(weapon Weapon, target int) (CombatOutcome, error) {
	if c.state != StateIdle {
		return CombatOutcome{}, fmt.Errorf("%w: state %s", ErrTurnLocked, c.state)
	}
	if c.roster.Len() == 0 {
		return CombatOutcome{}, ErrNoEnemies
	}
	if c.roster.AllDefeated() {
		c.transition(StateResolving)
		return c.totalVictory(CombatOutcome{TotalVictory: true}), nil
	}
	if !weapon.Valid() {
		return CombatOutcome{}, fmt.Errorf("%w: %d", ErrWeaponInvalid, weapon)
	}
	if !c.roster.IsAlive(target) {
		return CombatOutcome{}, fmt.Errorf("%w: index %d", ErrTargetInvalid, target)
	}

	c.transition(StateResolving)
	out, err := c.resolver.Resolve(c.roster, c.player, weapon, target)
	if err != nil {
		// Validated above; reaching this is a bug, not a player error.
		log.Printf("resolve: %v", err)
		c.state = StateIdle
		return CombatOutcome{}, err
	}
	c.turn++
	c.player.Credit(out.Reward)
	c.player.Score += out.Reward
	c.player.Defeated += len(out.Killed())
	c.addLog(out.Summary())

	switch {
	case c.player.Dead():
		c.battleOver = true
		c.transition(StateLocked)
		c.events.Dispatch(Event{Type: EventOutcomeResolved, Data: out})
		c.addLog("You were defeated!")
		c.events.Dispatch(Event{Type: EventDefeat, Data: c.player.Snapshot()})
	case c.roster.AllDefeated():
		out.TotalVictory = true
		c.events.Dispatch(Event{Type: EventOutcomeResolved, Data: out})
		out = c.totalVictory(out)
	case c.roster.AliveCount() == 1:
		c.lockFor(SettleCooldown)
		c.events.Dispatch(Event{Type: EventOutcomeResolved, Data: out})
		c.checkFront()
	default:
		if c.transition(StateAwaitingRotation) {
			c.timer = MessageDisplayDelay
		}
		c.events.Dispatch(Event{Type: EventOutcomeResolved, Data: out})
		c.checkFront()
	}
	return out, nil
}

// totalVictory pays the formation bonus and schedules the next wave. The
// coordinator must be Resolving.
func (c *Coordinator) totalVictory(out CombatOutcome) CombatOutcome {
	bonus := VictoryBonus(c.roster.StartCount())
	out.TotalVictory = true
	out.Breakdown.Victory = bonus
	out.Reward += bonus
	c.player.Credit(bonus)
	c.player.Score += bonus
	c.respawnPending = true
	c.lockFor(VictorySettleDelay)
	c.addLog(fmt.Sprintf("All ghosts banished! +$%d bonus.", bonus))
	c.events.Dispatch(Event{Type: EventTotalVictory, Data: VictoryData{Bonus: bonus, Cleared: c.roster.StartCount()}})
	c.checkFront()
	return out
}

// Buy purchases shop item index. Only allowed while idle.
func (c *Coordinator) Buy(index int) (PurchaseData, error) {
	if c.state != StateIdle {
		return PurchaseData{}, fmt.Errorf("%w: state %s", ErrTurnLocked, c.state)
	}
	it, err := checkPurchase(c.shop, index, c.player.Money)
	if err != nil {
		return PurchaseData{}, err
	}

	data := PurchaseData{Item: it}
	switch it.Effect {
	case EffectHeal:
		c.player.Money -= it.Price
		data.Healed = c.player.Heal(it.Amount)
		c.addLog(fmt.Sprintf("%s restores %d HP.", it.Name, data.Healed))
		c.events.Dispatch(Event{Type: EventItemPurchased, Data: data})
	case EffectDamageFront:
		front, ok := c.roster.Front()
		if !ok {
			return PurchaseData{}, ErrNoEnemies
		}
		c.player.Money -= it.Price
		hit, _ := c.roster.ApplyDamage(front, it.Amount)
		data.Hit = &hit
		msg := fmt.Sprintf("%s hits %s for %d.", it.Name, hit.Label, hit.Damage)
		if hit.Died {
			c.player.Defeated++
			msg += fmt.Sprintf(" %s banished!", hit.Label)
		}
		c.addLog(msg)
		c.events.Dispatch(Event{Type: EventItemPurchased, Data: data})
		if c.roster.AllDefeated() {
			c.transition(StateResolving)
			c.totalVictory(CombatOutcome{TotalVictory: true})
		} else {
			c.checkFront()
		}
	}
	return data, nil
}

// Update advances every timer by deltaMs. Update(0) changes nothing.
func (c *Coordinator) Update(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	c.effects.Update(deltaMs)

	switch c.state {
	case StateAwaitingRotation:
		c.timer -= deltaMs
		if c.timer > 0 {
			return
		}
		if c.rotation.Start() {
			c.transition(StateRotating)
		} else {
			c.lockFor(SettleCooldown)
		}
	case StateRotating:
		if c.rotation.Tick(deltaMs) {
			c.checkFront()
			c.lockFor(SettleCooldown)
		}
	case StateLocked:
		if c.battleOver {
			return
		}
		c.timer -= deltaMs
		if c.timer > 0 {
			return
		}
		if c.respawnPending {
			c.respawnPending = false
			c.spawnWave()
		}
		c.timer = 0
		if c.transition(StateIdle) {
			c.events.Dispatch(Event{Type: EventTurnUnlocked})
		}
	}
}

// Reset starts a new battle: fresh hunter, fresh wave, state Idle.
func (c *Coordinator) Reset() {
	c.rotation.Cancel()
	c.effects.Clear()
	c.roster.Clear()
	c.player = NewPlayer(c.name)
	c.log = nil
	c.turn = 0
	c.wave = 0
	c.battleOver = false
	c.respawnPending = false
	c.timer = 0
	c.state = StateIdle
	c.frontID = -1
	c.SpawnEnemies()
}
