package upgrade

import (
	"math"

	"Banking-Clicker-Backend/entities"
)

// CostAtLevel returns the price of the next purchase when the account
// already owns the upgrade at the given level (0 = not owned yet).
// Costs grow geometrically: base_cost * cost_multiplier^level.
func CostAtLevel(u *entities.Upgrade, level int) float64 {
	return u.Cost * math.Pow(u.CostMultiplier, float64(level))
}

// BoostAtLevel returns the permanent income gained by the purchase made
// at the given owned level: base_income_boost * income_multiplier^level.
func BoostAtLevel(u *entities.Upgrade, level int) float64 {
	return u.IncomeBoost * math.Pow(u.IncomeMultiplier, float64(level))
}
