package seed

import (
	"fmt"

	"Banking-Clicker-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The base upgrade catalog. Re-running the seed refreshes existing rows
// in place so balance tweaks can ship without a wipe.
var upgrades = []entities.Upgrade{
	{
		ID:               "lemonade_stand",
		Name:             "Lemonade Stand",
		Description:      "A small stand generating passive income",
		Cost:             10.00,
		IncomeBoost:      0.10,
		Icon:             "🍋",
		SortOrder:        1,
		CostMultiplier:   1.15,
		IncomeMultiplier: 1.20,
	},
	{
		ID:               "food_truck",
		Name:             "Food Truck",
		Description:      "A fast-food truck",
		Cost:             100.00,
		IncomeBoost:      1.00,
		Icon:             "🚚",
		SortOrder:        2,
		CostMultiplier:   1.20,
		IncomeMultiplier: 1.30,
	},
	{
		ID:               "coffee_shop",
		Name:             "Coffee Shop",
		Description:      "A popular neighborhood cafe",
		Cost:             500.00,
		IncomeBoost:      5.00,
		Icon:             "☕",
		SortOrder:        3,
		CostMultiplier:   1.25,
		IncomeMultiplier: 1.40,
	},
	{
		ID:               "restaurant",
		Name:             "Restaurant",
		Description:      "A fine dining restaurant",
		Cost:             2000.00,
		IncomeBoost:      20.00,
		Icon:             "🍽️",
		SortOrder:        4,
		CostMultiplier:   1.30,
		IncomeMultiplier: 1.50,
	},
	{
		ID:               "hotel",
		Name:             "Hotel",
		Description:      "A luxury downtown hotel",
		Cost:             10000.00,
		IncomeBoost:      100.00,
		Icon:             "🏨",
		SortOrder:        5,
		CostMultiplier:   1.35,
		IncomeMultiplier: 1.60,
	},
}

func SeedUpgrades(db *gorm.DB) error {
	for _, upgrade := range upgrades {
		u := upgrade
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&u).Error; err != nil {
			return err
		}
	}

	fmt.Println("Upgrades seeded successfully")
	return nil
}
