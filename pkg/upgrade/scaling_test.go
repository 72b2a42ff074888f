package upgrade

import (
	"testing"

	"Banking-Clicker-Backend/entities"

	"github.com/stretchr/testify/assert"
)

func TestCostAtLevelGeometricGrowth(t *testing.T) {
	u := &entities.Upgrade{
		Cost:             10,
		IncomeBoost:      0.1,
		CostMultiplier:   1.15,
		IncomeMultiplier: 1.20,
	}

	tests := []struct {
		level     int
		wantCost  float64
		wantBoost float64
	}{
		{level: 0, wantCost: 10, wantBoost: 0.1},
		{level: 1, wantCost: 11.5, wantBoost: 0.12},
		{level: 2, wantCost: 13.225, wantBoost: 0.144},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.wantCost, CostAtLevel(u, tc.level), 1e-9, "cost at level %d", tc.level)
		assert.InDelta(t, tc.wantBoost, BoostAtLevel(u, tc.level), 1e-9, "boost at level %d", tc.level)
	}
}

func TestCostAtLevelCatalogValues(t *testing.T) {
	u := &entities.Upgrade{
		Cost:             100,
		IncomeBoost:      1,
		CostMultiplier:   1.20,
		IncomeMultiplier: 1.30,
	}

	// Ten purchases in, cost has scaled by 1.2^10.
	assert.InDelta(t, 100*6.1917364224, CostAtLevel(u, 10), 1e-6)
	assert.InDelta(t, 1*13.785849184900007, BoostAtLevel(u, 10), 1e-6)
}
