package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestUpdateTotalEarningsAndBalance(t *testing.T) {
	rp := NewRewardPool(addr(9))
	rp.UpdateTotalEarningsAndBalance(sdk.NewInt(100))
	require.Equal(t, "100", rp.Balance.String())
	require.Equal(t, "100", rp.TotalEarnings.String())

	rp.UpdateTotalEarningsAndBalance(sdk.NewInt(150))
	require.Equal(t, "150", rp.Balance.String())
	require.Equal(t, "150", rp.TotalEarnings.String())
}

func TestCalculateDelegatorPayoutSplitsProRataByPoints(t *testing.T) {
	rp := NewRewardPool(addr(9))
	poolAccount := addr(0)

	// Two delegators with equal bonded points; 100 units of reward arrive.
	d1 := NewBondedDelegator(poolAccount, sdk.NewInt(50), sdk.ZeroInt())

	out := CalculateDelegatorPayout(sdk.NewInt(100), rp, d1, sdk.NewInt(100))

	require.Equal(t, "50", out.Payout.String())
	require.Equal(t, "50", out.RewardPool.Balance.String())
	require.Equal(t, "100", out.RewardPool.TotalEarnings.String())
	require.Equal(t, "100", out.Delegator.RewardPoolTotalEarnings.String())
}

func TestCalculateDelegatorPayoutIsZeroWhenNoNewEarnings(t *testing.T) {
	rp := NewRewardPool(addr(9))
	poolAccount := addr(0)
	d := NewBondedDelegator(poolAccount, sdk.NewInt(50), sdk.ZeroInt())

	// First claim observes the 100 that already sits in the account as
	// having been earned at delegator join time, so nothing is owed yet.
	d.RewardPoolTotalEarnings = sdk.NewInt(100)
	rp.TotalEarnings = sdk.NewInt(100)
	rp.Balance = sdk.NewInt(100)

	out := CalculateDelegatorPayout(sdk.NewInt(100), rp, d, sdk.NewInt(100))
	require.True(t, out.Payout.IsZero())
}

func TestCalculateDelegatorPayoutWeightsByBondedPoints(t *testing.T) {
	rp := NewRewardPool(addr(9))
	poolAccount := addr(0)

	// Delegator holds 25% of the pool's 100 bonded points; 100 units arrive.
	d := NewBondedDelegator(poolAccount, sdk.NewInt(25), sdk.ZeroInt())

	out := CalculateDelegatorPayout(sdk.NewInt(100), rp, d, sdk.NewInt(100))
	require.Equal(t, "25", out.Payout.String())
}
