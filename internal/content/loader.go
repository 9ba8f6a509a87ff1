package content

import (
	"encoding/json"
	"fmt"
	"os"

	"joken-ghost/internal/game"
)

// Content is the data a battle is played with.
type Content struct {
	Name    string
	Species []game.Species
	Shop    []game.ShopItem
	Layout  game.Layout
	Colors  map[string]string // species ID -> color name
}

// Config returns a coordinator config using this content.
func (c *Content) Config(rng game.RNG, player string) game.Config {
	return game.Config{
		Layout:     c.Layout,
		Species:    c.Species,
		Shop:       c.Shop,
		RNG:        rng,
		PlayerName: player,
	}
}

// jsonContent is the on-disk JSON format.
type jsonContent struct {
	Name    string        `json:"name"`
	Species []jsonSpecies `json:"species"`
	Shop    []jsonItem    `json:"shop,omitempty"`
	Slots   []jsonSlot    `json:"slots,omitempty"`
}

type jsonSpecies struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Health        int      `json:"health"`
	Weaknesses    []string `json:"weaknesses"`
	Resistance    string   `json:"resistance,omitempty"`
	Reward        int      `json:"reward"`
	DiscoveryGate string   `json:"discovery_gate,omitempty"`
	Color         string   `json:"color,omitempty"`
}

type jsonItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Effect string `json:"effect"` // "heal" or "damage_front"
	Amount int    `json:"amount"`
}

type jsonSlot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  int     `json:"depth"`
}

// Load reads a JSON content file from disk.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates content JSON. Missing shop and slot tables
// fall back to the defaults.
func Parse(data []byte) (*Content, error) {
	var jc jsonContent
	if err := json.Unmarshal(data, &jc); err != nil {
		return nil, fmt.Errorf("parse content JSON: %w", err)
	}

	c := &Content{Name: jc.Name, Colors: make(map[string]string)}
	for i, js := range jc.Species {
		s, err := js.species()
		if err != nil {
			return nil, fmt.Errorf("species %d (%q): %w", i, js.ID, err)
		}
		c.Species = append(c.Species, s)
		if js.Color != "" {
			c.Colors[s.ID] = js.Color
		}
	}

	if len(jc.Shop) == 0 {
		c.Shop = game.DefaultShop()
	}
	for i, ji := range jc.Shop {
		it, err := ji.item()
		if err != nil {
			return nil, fmt.Errorf("shop item %d (%q): %w", i, ji.ID, err)
		}
		c.Shop = append(c.Shop, it)
	}

	if len(jc.Slots) == 0 {
		c.Layout = game.DefaultLayout()
	}
	for _, js := range jc.Slots {
		c.Layout = append(c.Layout, game.FormationSlot{
			X: js.X, Y: js.Y, Width: js.Width, Height: js.Height, DepthRank: js.Depth,
		})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (js jsonSpecies) species() (game.Species, error) {
	s := game.Species{
		ID:          js.ID,
		Name:        js.Name,
		Description: js.Description,
		MaxHealth:   js.Health,
		Reward:      js.Reward,
	}
	for _, name := range js.Weaknesses {
		w, err := game.ParseWeapon(name)
		if err != nil {
			return s, fmt.Errorf("weakness: %w", err)
		}
		s.Weaknesses = append(s.Weaknesses, w)
	}
	if js.Resistance != "" {
		w, err := game.ParseWeapon(js.Resistance)
		if err != nil {
			return s, fmt.Errorf("resistance: %w", err)
		}
		s.Resistance = w
	}
	if js.DiscoveryGate != "" {
		w, err := game.ParseWeapon(js.DiscoveryGate)
		if err != nil {
			return s, fmt.Errorf("discovery gate: %w", err)
		}
		s.DiscoveryGate = w
	}
	return s, nil
}

func (ji jsonItem) item() (game.ShopItem, error) {
	it := game.ShopItem{ID: ji.ID, Name: ji.Name, Price: ji.Price, Amount: ji.Amount}
	switch ji.Effect {
	case "heal":
		it.Effect = game.EffectHeal
	case "damage_front":
		it.Effect = game.EffectDamageFront
	default:
		return it, fmt.Errorf("unknown effect %q", ji.Effect)
	}
	return it, nil
}

// Validate checks the rules the engine relies on.
func (c *Content) Validate() error {
	if len(c.Species) == 0 {
		return fmt.Errorf("content %q: no species", c.Name)
	}
	seen := make(map[string]bool)
	for _, s := range c.Species {
		if s.ID == "" {
			return fmt.Errorf("species %q: empty id", s.Name)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate species id %q", s.ID)
		}
		seen[s.ID] = true
		if s.MaxHealth <= 0 {
			return fmt.Errorf("species %q: health %d must be positive", s.ID, s.MaxHealth)
		}
		if len(s.Weaknesses) == 0 {
			return fmt.Errorf("species %q: no weaknesses", s.ID)
		}
		if s.Resistance != game.WeaponNone && s.WeakTo(s.Resistance) {
			return fmt.Errorf("species %q: %s is both weakness and resistance", s.ID, s.Resistance)
		}
		if s.DiscoveryGate != game.WeaponNone && !s.WeakTo(s.DiscoveryGate) {
			return fmt.Errorf("species %q: discovery gate %s is not a weakness", s.ID, s.DiscoveryGate)
		}
	}

	for _, it := range c.Shop {
		if it.Price <= 0 || it.Amount <= 0 {
			return fmt.Errorf("shop item %q: price and amount must be positive", it.ID)
		}
	}

	if c.Layout.Len() < game.MaxWaveSize {
		return fmt.Errorf("layout has %d slots, need %d", c.Layout.Len(), game.MaxWaveSize)
	}
	ranks := make(map[int]bool)
	for i, s := range c.Layout {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("slot %d: size must be positive", i)
		}
		if ranks[s.DepthRank] {
			return fmt.Errorf("slot %d: depth %d used twice", i, s.DepthRank)
		}
		ranks[s.DepthRank] = true
	}
	if c.Layout[0].DepthRank != c.Layout.MaxRank() {
		return fmt.Errorf("slot 0 must hold the highest depth rank")
	}
	return nil
}

// Default returns the built-in content, used when no file is available.
func Default() *Content {
	return &Content{
		Name:    "Haunted Manor",
		Species: game.DefaultSpecies(),
		Shop:    game.DefaultShop(),
		Layout:  game.DefaultLayout(),
		Colors: map[string]string{
			"shadow-spirit": "gray",
			"lost-soul":     "bright_cyan",
			"poltergeist":   "bright_yellow",
			"banshee":       "bright_magenta",
			"wraith":        "bright_red",
			"phantom":       "bright_white",
		},
	}
}

// LoadOrDefault loads path, or returns the default content when path is empty.
// On a load error the default is returned together with the error.
func LoadOrDefault(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}
	c, err := Load(path)
	if err != nil {
		return Default(), err
	}
	return c, nil
}
