package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"joken-ghost/internal/content"
	"joken-ghost/internal/game"
)

const (
	maxTurns      = 500
	healThreshold = 40
)

func main() {
	// Battle logging would drown the report.
	log.SetOutput(io.Discard)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: simulate validate <content.json>")
			os.Exit(1)
		}
		os.Exit(runValidate(args[0]))
	case "species":
		if len(args) > 1 {
			fmt.Fprintln(os.Stderr, "Usage: simulate species [content.json]")
			os.Exit(1)
		}
		os.Exit(runSpecies(optional(args, 0)))
	case "run":
		if len(args) < 1 || len(args) > 3 {
			fmt.Fprintln(os.Stderr, "Usage: simulate run <battles> [seed] [content.json]")
			os.Exit(1)
		}
		os.Exit(runBattles(args))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: simulate <command> [args]

Commands:
  validate <content.json>                  Check a content file
  species  [content.json]                  List ghost species and weaknesses
  run      <battles> [seed] [content.json] Play headless battles and report totals`)
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// --- validate ---

func runValidate(path string) int {
	c, err := content.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}
	fmt.Printf("OK %q (%d species, %d shop items, %d slots)\n", c.Name, len(c.Species), len(c.Shop), c.Layout.Len())
	return 0
}

// --- species ---

func runSpecies(path string) int {
	c, err := content.LoadOrDefault(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}
	fmt.Printf("%-16s %4s %-20s %-10s %s\n", "SPECIES", "HP", "WEAK TO", "RESISTS", "GATE")
	for _, s := range c.Species {
		weak := make([]string, len(s.Weaknesses))
		for i, w := range s.Weaknesses {
			weak[i] = w.String()
		}
		gate := "-"
		if s.DiscoveryGate != game.WeaponNone {
			gate = s.DiscoveryGate.String()
		}
		fmt.Printf("%-16s %4d %-20s %-10s %s\n", s.Name, s.MaxHealth, strings.Join(weak, ","), s.Resistance, gate)
	}
	fmt.Println()
	for _, w := range game.Weapons {
		fmt.Printf("%s  %s\n", game.EffectivenessText(w), game.RewardPreview(w))
	}
	return 0
}

// --- run ---

type totals struct {
	battles, turns, waves int
	wins, losses, ties    int
	defeated, money       int
	victories, defeats    int
	bestScore             int
	timeouts              int
}

func runBattles(args []string) int {
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "FAIL: battles must be a positive number, got %q\n", args[0])
		return 1
	}
	var seed int64
	if s := optional(args, 1); s != "" {
		if seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: bad seed %q\n", s)
			return 1
		}
	}
	c, err := content.LoadOrDefault(optional(args, 2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var t totals
	for i := 0; i < n; i++ {
		playBattle(c, seed+int64(i), &t)
	}

	fmt.Printf("Battles   %d (seed %d, %d hit the turn cap)\n", t.battles, seed, t.timeouts)
	fmt.Printf("Turns     %d (%.1f per battle)\n", t.turns, float64(t.turns)/float64(t.battles))
	fmt.Printf("Waves     %d (%.1f per battle)\n", t.waves, float64(t.waves)/float64(t.battles))
	fmt.Printf("Exchanges %d win / %d lose / %d tie\n", t.wins, t.losses, t.ties)
	fmt.Printf("Results   %d waves cleared, %d hunters defeated\n", t.victories, t.defeats)
	fmt.Printf("Banished  %d ghosts, $%d left on average, best score %d\n",
		t.defeated, t.money/t.battles, t.bestScore)
	return 0
}

// playBattle runs one battle until the hunter falls, attacking the front
// ghost with its first weakness and healing when low.
func playBattle(c *content.Content, seed int64, t *totals) {
	coord := game.NewCoordinator(c.Config(game.NewRNG(seed), "sim"))
	coord.Subscribe(game.ListenerFunc(func(ev game.Event) {
		switch ev.Type {
		case game.EventTotalVictory:
			t.victories++
			return
		case game.EventDefeat:
			t.defeats++
			return
		}
		out, ok := ev.Data.(game.CombatOutcome)
		if !ok {
			return
		}
		switch out.Kind {
		case game.OutcomeWin:
			t.wins++
		case game.OutcomeLose:
			t.losses++
		default:
			t.ties++
		}
	}), game.EventOutcomeResolved, game.EventTotalVictory, game.EventDefeat)
	coord.SpawnEnemies()

	species := make(map[string]game.Species, len(c.Species))
	for _, s := range c.Species {
		species[s.ID] = s
	}

	dt := game.Ms(time.Second / game.TickRate)
	for !coord.BattleOver() {
		st := coord.Snapshot()
		if st.Turn >= maxTurns {
			t.timeouts++
			break
		}
		if st.State != game.StateIdle {
			coord.Update(dt)
			continue
		}
		if st.Player.Health < healThreshold {
			if _, err := coord.Buy(0); err == nil {
				continue
			}
		}
		front, ok := coord.Front()
		if !ok {
			coord.Update(dt)
			continue
		}
		w := game.WeaponRock
		if s, ok := species[st.Enemies[front].Kind]; ok && len(s.Weaknesses) > 0 {
			w = s.Weaknesses[0]
		}
		if _, err := coord.Submit(w, front); err != nil {
			fmt.Fprintf(os.Stderr, "battle %d: %v\n", seed, err)
			break
		}
	}

	st := coord.Snapshot()
	t.battles++
	t.turns += st.Turn
	t.waves += st.Wave
	t.defeated += st.Player.Defeated
	t.money += st.Player.Money
	t.bestScore = max(t.bestScore, st.Player.Score)
}
