package game

// EventType identifies what happened in a battle.
type EventType string

const (
	EventEnemiesSpawned   EventType = "enemies_spawned"
	EventOutcomeResolved  EventType = "outcome_resolved"
	EventFormationChanged EventType = "formation_changed"
	EventTotalVictory     EventType = "total_victory"
	EventDefeat           EventType = "defeat"
	EventItemPurchased    EventType = "item_purchased"
	EventTurnUnlocked     EventType = "turn_unlocked"
)

// Event is delivered synchronously to listeners. Data holds one of the
// payload types below, matching Type.
type Event struct {
	Type EventType
	Data any
}

// SpawnedData accompanies EventEnemiesSpawned.
type SpawnedData struct {
	Enemies []EnemySnapshot
}

// FormationChangedData accompanies EventFormationChanged. FrontID is -1 when
// nothing is alive.
type FormationChangedData struct {
	FrontID    int
	FrontIndex int
}

// VictoryData accompanies EventTotalVictory.
type VictoryData struct {
	Bonus   int
	Cleared int
}

// PurchaseData accompanies EventItemPurchased.
type PurchaseData struct {
	Item ShopItem
	// Healed and Hit describe what the item did; at most one is set.
	Healed int
	Hit    *HitReport
}

// Listener receives battle events.
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) OnEvent(ev Event) { f(ev) }

// Dispatcher fans events out to subscribers in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe registers l for the given event types, or for every event when
// none are given.
func (d *Dispatcher) Subscribe(l Listener, types ...EventType) {
	if len(types) == 0 {
		d.all = append(d.all, l)
		return
	}
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], l)
	}
}

// Dispatch delivers ev to every matching listener.
func (d *Dispatcher) Dispatch(ev Event) {
	for _, l := range d.listeners[ev.Type] {
		l.OnEvent(ev)
	}
	for _, l := range d.all {
		l.OnEvent(ev)
	}
}
