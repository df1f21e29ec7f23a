package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"
)

// RewardPool accrues staking rewards for one bonded pool using
// virtual-points accounting, so a per-delegator claim is O(1) regardless of
// how long it has been since the delegator's last claim (spec.md §4.4).
type RewardPool struct {
	Account sdk.AccAddress `json:"account"`

	// Balance is the reward account's free balance as of the last payout.
	Balance sdk.Int `json:"balance"`

	// TotalEarnings is the reward pool's cumulative lifetime earnings; it
	// never decreases.
	TotalEarnings sdk.Int `json:"total_earnings"`

	// Points is the wide virtual-share count. It is deliberately a 256-bit
	// integer: it inflates by a factor of the bonded pool's points count on
	// every observed reward unit, which would overflow a 128-bit balance
	// type for a long-lived, high-reward pool.
	Points *uint256.Int `json:"points"`
}

// NewRewardPool returns a zeroed reward pool for account.
func NewRewardPool(account sdk.AccAddress) RewardPool {
	return RewardPool{
		Account:       account,
		Balance:       sdk.ZeroInt(),
		TotalEarnings: sdk.ZeroInt(),
		Points:        new(uint256.Int),
	}
}

// UpdateTotalEarningsAndBalance re-observes the reward account's free
// balance and folds any newly-arrived balance into TotalEarnings (spec.md
// §4.4 step 1).
func (r *RewardPool) UpdateTotalEarningsAndBalance(currentFreeBalance sdk.Int) {
	newEarnings := SaturatingSub(currentFreeBalance, r.Balance)
	r.TotalEarnings = SaturatingAdd(r.TotalEarnings, newEarnings)
	r.Balance = currentFreeBalance
}

// DelegatorPayout is the result of computing one delegator's claim against
// the reward pool: the mutated reward pool and delegator records, and the
// balance to transfer.
type DelegatorPayout struct {
	RewardPool RewardPool
	Delegator  Delegator
	Payout     sdk.Int
}

// CalculateDelegatorPayout implements spec.md §4.4 steps 1-5. bondedPoints
// is the bonded pool's current points (B_p); currentFreeBalance is the
// reward account's free balance observed at the start of this claim.
func CalculateDelegatorPayout(bondedPoints sdk.Int, rewardPool RewardPool, delegator Delegator, currentFreeBalance sdk.Int) DelegatorPayout {
	lastTotalEarnings := rewardPool.TotalEarnings
	rewardPool.UpdateTotalEarningsAndBalance(currentFreeBalance)

	newEarnings := IntToU256(SaturatingSub(rewardPool.TotalEarnings, lastTotalEarnings))
	newPoints := SaturatingMulU256(IntToU256(bondedPoints), newEarnings)
	currentPoints := SaturatingAddU256(rewardPool.Points, newPoints)

	newEarningsSinceLastClaim := IntToU256(SaturatingSub(rewardPool.TotalEarnings, delegator.RewardPoolTotalEarnings))
	delegatorVirtualPoints := SaturatingMulU256(IntToU256(delegator.Points), newEarningsSinceLastClaim)

	var payout sdk.Int
	if delegatorVirtualPoints.IsZero() || currentPoints.IsZero() || rewardPool.Balance.IsZero() {
		payout = sdk.ZeroInt()
	} else {
		numerator := SaturatingMulU256(delegatorVirtualPoints, IntToU256(rewardPool.Balance))
		payout = U256ToInt(new(uint256.Int).Div(numerator, currentPoints))
	}

	delegator.RewardPoolTotalEarnings = rewardPool.TotalEarnings
	rewardPool.Points = SaturatingSubU256(currentPoints, delegatorVirtualPoints)
	rewardPool.Balance = SaturatingSub(rewardPool.Balance, payout)

	return DelegatorPayout{RewardPool: rewardPool, Delegator: delegator, Payout: payout}
}
