package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stardrift-game/stardrift/internal/model"
)

func TestDroneLookup(t *testing.T) {
	c := Default()

	d, err := c.Drone(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Cost)
	assert.Equal(t, 96.0, d.IncomePerDay)

	d, err = c.Drone(15)
	require.NoError(t, err)
	assert.Equal(t, 130.0, d.Cost)
	assert.Equal(t, 6595.0, d.IncomePerDay)

	_, err = c.Drone(16)
	assert.ErrorIs(t, err, model.ErrUnknownDrone)
	_, err = c.Drone(0)
	assert.ErrorIs(t, err, model.ErrUnknownDrone)
}

func TestAsteroidLookup(t *testing.T) {
	c := Default()

	a, err := c.Asteroid(1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, a.Cost)
	assert.Equal(t, 1600.0, a.Yield)

	// The last asteroid holds the effectively-endless deposit
	a, err = c.Asteroid(13)
	require.NoError(t, err)
	assert.Equal(t, EndlessYield, a.Yield)

	_, err = c.Asteroid(14)
	assert.ErrorIs(t, err, model.ErrUnknownAsteroid)
}

func TestTierLookup(t *testing.T) {
	c := Default()

	tier, err := c.Tier(1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, tier.Capacity)
	assert.False(t, tier.AutoCollect)

	top, err := c.Tier(c.MaxTier())
	require.NoError(t, err)
	assert.True(t, top.AutoCollect)

	_, err = c.Tier(6)
	assert.ErrorIs(t, err, model.ErrUnknownCargoTier)
}

func TestTierCostsAndCapacitiesIncrease(t *testing.T) {
	c := Default()
	tiers := c.Tiers()
	require.Len(t, tiers, 5)

	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].UpgradeCost, tiers[i-1].UpgradeCost)
		if !tiers[i].AutoCollect {
			assert.Greater(t, tiers[i].Capacity, tiers[i-1].Capacity)
		}
	}
}

func TestDailyIncome(t *testing.T) {
	c := Default()

	total, err := c.DailyIncome([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 470.0, total)

	total, err = c.DailyIncome(nil)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = c.DailyIncome([]int{1, 99})
	assert.ErrorIs(t, err, model.ErrUnknownDrone)
}

func TestTablesAreCopies(t *testing.T) {
	c := Default()

	drones := c.Drones()
	drones[0].Cost = 9999

	fresh, err := c.Drone(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, fresh.Cost)
}
