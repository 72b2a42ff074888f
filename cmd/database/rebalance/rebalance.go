package rebalance

import (
	"fmt"

	"Banking-Clicker-Backend/entities"

	"gorm.io/gorm"
)

type target struct {
	Cost        float64
	IncomeBoost float64
}

// Rebalancing targets keyed by sort order; upgrades beyond the table
// keep their current values.
var balancedBySortOrder = map[int]target{
	1: {Cost: 100, IncomeBoost: 1},
	2: {Cost: 500, IncomeBoost: 3},
	3: {Cost: 2500, IncomeBoost: 10},
	4: {Cost: 10000, IncomeBoost: 30},
	5: {Cost: 50000, IncomeBoost: 100},
	6: {Cost: 250000, IncomeBoost: 300},
	7: {Cost: 1000000, IncomeBoost: 1000},
}

// Rebalance overwrites base cost and income boost of the seeded catalog
// with the tuned values.
func Rebalance(db *gorm.DB) error {
	var upgrades []*entities.Upgrade
	if err := db.Order("sort_order ASC").Find(&upgrades).Error; err != nil {
		return err
	}

	if len(upgrades) == 0 {
		fmt.Println("No upgrades found in DB. Nothing to rebalance.")
		return nil
	}

	for _, u := range upgrades {
		t, ok := balancedBySortOrder[u.SortOrder]
		if !ok {
			continue
		}
		if err := db.Model(&entities.Upgrade{}).
			Where("id = ?", u.ID).
			Updates(map[string]interface{}{
				"cost":         t.Cost,
				"income_boost": t.IncomeBoost,
			}).Error; err != nil {
			return err
		}
		fmt.Printf("Rebalanced %s: cost=%.2f income_boost=%.2f\n", u.ID, t.Cost, t.IncomeBoost)
	}

	return nil
}
