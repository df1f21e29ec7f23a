package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// ClaimPayout pays delegator their share of their pool's accrued rewards
// (spec.md §4.5 "claim_payout", §4.4 for the payout computation). Returns
// the amount paid (zero is not an error: a delegator may legitimately have
// nothing owed since their last claim).
func (k Keeper) ClaimPayout(ctx sdk.Context, delegator sdk.AccAddress) (sdk.Int, sdk.Error) {
	d, ok := k.GetDelegator(ctx, delegator)
	if !ok {
		return sdk.Int{}, types.ErrDelegatorNotFound()
	}
	if d.IsUnbonding() {
		return sdk.Int{}, types.ErrAlreadyUnbonding()
	}

	bondedPool, ok := k.GetBondedPool(ctx, d.Pool)
	if !ok {
		k.Logger(ctx).Error("delegator names a pool that no longer exists", "delegator", delegator.String(), "pool", d.Pool.String())
		return sdk.Int{}, types.ErrPoolNotFound()
	}
	rewardPool, ok := k.GetRewardPool(ctx, d.Pool)
	if !ok {
		k.Logger(ctx).Error("bonded pool has no matching reward pool", "pool", d.Pool.String())
		return sdk.Int{}, types.ErrRewardPoolNotFound()
	}

	currentFreeBalance := k.bankKeeper.FreeBalance(ctx, rewardPool.Account)
	out := types.CalculateDelegatorPayout(bondedPool.Points, rewardPool, d, currentFreeBalance)

	if out.Payout.IsPositive() {
		if err := k.bankKeeper.Transfer(ctx, out.RewardPool.Account, delegator, out.Payout, false); err != nil {
			return sdk.Int{}, err
		}
	}

	k.SetRewardPool(ctx, d.Pool, out.RewardPool)
	k.SetDelegator(ctx, delegator, out.Delegator)
	return out.Payout, nil
}
