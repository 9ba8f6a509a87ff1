package game

import "fmt"

// ItemEffect is what a shop item does when bought.
type ItemEffect int

const (
	EffectHeal ItemEffect = iota
	EffectDamageFront
)

// ShopItem is one entry in the shop.
type ShopItem struct {
	ID     string
	Name   string
	Price  int
	Effect ItemEffect
	Amount int // health restored or damage dealt
}

// Describe is the one-line shop text for the item.
func (it ShopItem) Describe() string {
	switch it.Effect {
	case EffectDamageFront:
		return fmt.Sprintf("%s ($%d): %d damage to the front ghost", it.Name, it.Price, it.Amount)
	default:
		return fmt.Sprintf("%s ($%d): +%d HP", it.Name, it.Price, it.Amount)
	}
}

// DefaultShop is the item list of the first act.
func DefaultShop() []ShopItem {
	return []ShopItem{
		{ID: "potion", Name: "Healing Potion", Price: 30, Effect: EffectHeal, Amount: 30},
		{ID: "buff", Name: "Offensive Buff", Price: 50, Effect: EffectDamageFront, Amount: 15},
		{ID: "large-potion", Name: "Large Potion", Price: 80, Effect: EffectHeal, Amount: 60},
	}
}

// checkPurchase validates a purchase without applying it.
func checkPurchase(items []ShopItem, index, money int) (ShopItem, error) {
	if index < 0 || index >= len(items) {
		return ShopItem{}, fmt.Errorf("%w: %d", ErrUnknownItem, index)
	}
	it := items[index]
	if money < it.Price {
		return ShopItem{}, fmt.Errorf("%w: %s costs $%d, have $%d", ErrInsufficientFunds, it.Name, it.Price, money)
	}
	return it, nil
}
