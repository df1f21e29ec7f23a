package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Delegator is a member of exactly one pool, holding points in either the
// pool's bonded share ledger or, once unbonding, in exactly one of its
// sub-pools. See spec.md §3.
type Delegator struct {
	Pool sdk.AccAddress `json:"pool"`

	// Points this delegator holds in the bonded pool, or in the sub-pool
	// named by UnbondingEra once unbonding has started.
	Points sdk.Int `json:"points"`

	// RewardPoolTotalEarnings is the reward pool's lifetime earnings as
	// observed at this delegator's last payout.
	RewardPoolTotalEarnings sdk.Int `json:"reward_pool_total_earnings"`

	// UnbondingEra is nil while the delegator is bonded. Once set, it names
	// the era the delegator started unbonding in and the sub-pool it
	// belongs to.
	UnbondingEra *uint64 `json:"unbonding_era,omitempty"`
}

// IsUnbonding reports whether the delegator has begun unbonding.
func (d Delegator) IsUnbonding() bool {
	return d.UnbondingEra != nil
}

// NewBondedDelegator constructs a delegator that is not unbonding.
func NewBondedDelegator(pool sdk.AccAddress, points, rewardPoolTotalEarnings sdk.Int) Delegator {
	return Delegator{
		Pool:                    pool,
		Points:                  points,
		RewardPoolTotalEarnings: rewardPoolTotalEarnings,
	}
}
