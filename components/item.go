package components

import "github.com/yohamta/donburi"

type ItemData struct {
	Value int
}

var Item = donburi.NewComponentType[ItemData]()

// InventoryData counts picked-up items by type. Stacking rules and capacity
// live with the inventory screen, not here.
type InventoryData struct {
	Counts map[string]int
	Value  int
}

func (inv *InventoryData) Add(typeName string, value int) {
	if inv.Counts == nil {
		inv.Counts = make(map[string]int)
	}
	inv.Counts[typeName]++
	inv.Value += value
}

var Inventory = donburi.NewComponentType[InventoryData]()
