package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// Join bonds amount from delegator into pool (spec.md §4.5 "join").
func (k Keeper) Join(ctx sdk.Context, delegator, pool sdk.AccAddress, amount sdk.Int) sdk.Error {
	if _, isDelegator := k.GetDelegator(ctx, delegator); isDelegator {
		return types.ErrAccountBelongsToOtherPool()
	}

	params := k.GetParams(ctx)
	if amount.LT(params.MinJoinBond) {
		return types.ErrMinimumBondNotMet()
	}

	bondedPool, ok := k.GetBondedPool(ctx, pool)
	if !ok {
		return types.ErrPoolNotFound()
	}

	bondedBalance, ok := k.stakingKeeper.BondedBalance(ctx, pool)
	if !ok {
		return types.ErrPoolNotFound()
	}

	if err := bondedPool.OkToJoinWith(bondedBalance, amount, params.PoolSizeMax); err != nil {
		return err
	}

	if err := k.stakingKeeper.BondExtra(ctx, pool, delegator, amount); err != nil {
		return err
	}

	issued := bondedPool.Issue(bondedBalance, amount)
	k.SetBondedPool(ctx, bondedPool)

	rewardPool, ok := k.GetRewardPool(ctx, pool)
	if !ok {
		return types.ErrRewardPoolNotFound()
	}
	rewardPool.UpdateTotalEarningsAndBalance(k.bankKeeper.FreeBalance(ctx, rewardPool.Account))
	k.SetRewardPool(ctx, pool, rewardPool)

	k.SetDelegator(ctx, delegator, types.NewBondedDelegator(pool, issued, rewardPool.TotalEarnings))
	return nil
}
