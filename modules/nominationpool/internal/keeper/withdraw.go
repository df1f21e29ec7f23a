package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// PoolWithdrawUnbonded pokes the staking subsystem to release pool's fully
// matured unlocking chunks back into the pool's own free balance (spec.md
// §4.5 "pool_withdraw_unbonded"). Permissionless: any account may call it to
// keep a pool's withdrawals moving.
func (k Keeper) PoolWithdrawUnbonded(ctx sdk.Context, pool sdk.AccAddress, numSlashingSpans uint32) sdk.Error {
	if _, ok := k.GetBondedPool(ctx, pool); !ok {
		return types.ErrPoolNotFound()
	}
	return k.stakingKeeper.WithdrawUnbonded(ctx, pool, numSlashingSpans)
}

// WithdrawResult reports the outcome of a withdraw_unbonded_other call: the
// balance actually paid out, whether the pool was torn down as a result
// (true only for the depositor's final withdrawal), and whether the claim
// hit a dusted pool that could not cover it (spec.md §9 "Dust and pool
// reaping").
type WithdrawResult struct {
	Balance       sdk.Int
	TornDown      bool
	DustWithdrawn bool
}

// WithdrawUnbondedOther pays target their redeemed sub-pool balance once
// their unbonding era has matured (spec.md §4.5 "withdraw_unbonded_other").
func (k Keeper) WithdrawUnbondedOther(ctx sdk.Context, caller, target sdk.AccAddress) (WithdrawResult, sdk.Error) {
	d, ok := k.GetDelegator(ctx, target)
	if !ok {
		return WithdrawResult{}, types.ErrDelegatorNotFound()
	}
	if !d.IsUnbonding() {
		return WithdrawResult{}, types.ErrNotUnbonding()
	}

	currentEra, ok := k.stakingKeeper.CurrentEra(ctx)
	if !ok {
		return WithdrawResult{}, types.ErrPoolNotFound()
	}
	if currentEra < *d.UnbondingEra+k.stakingKeeper.BondingDuration(ctx) {
		return WithdrawResult{}, types.ErrNotUnbondedYet()
	}

	bondedPool, ok := k.GetBondedPool(ctx, d.Pool)
	if !ok {
		k.Logger(ctx).Error("delegator names a pool that no longer exists", "delegator", target.String(), "pool", d.Pool.String())
		return WithdrawResult{}, types.ErrPoolNotFound()
	}
	subPools, ok := k.GetSubPools(ctx, d.Pool)
	if !ok {
		k.Logger(ctx).Error("bonded pool has no matching sub-pools", "pool", d.Pool.String())
		return WithdrawResult{}, types.ErrSubPoolsNotFound()
	}

	tearDown, err := bondedPool.OkToWithdrawUnbondedOtherWith(caller, target, d, subPools)
	if err != nil {
		return WithdrawResult{}, err
	}

	subPools = subPools.MaybeMergePools(currentEra, k.window(ctx))

	var balance sdk.Int
	if unbondPool, withEra := subPools.WithEra[*d.UnbondingEra]; withEra {
		balance = unbondPool.BalanceToUnbond(d.Points)
		unbondPool.Points = types.SaturatingSub(unbondPool.Points, d.Points)
		unbondPool.Balance = types.SaturatingSub(unbondPool.Balance, balance)
		subPools.SetWithEra(*d.UnbondingEra, unbondPool)
		subPools.RemoveWithEraIfDry(*d.UnbondingEra)
	} else {
		// The delegator's era was merged into the era-less pool already.
		balance = subPools.NoEra.BalanceToUnbond(d.Points)
		subPools.NoEra.Points = types.SaturatingSub(subPools.NoEra.Points, d.Points)
		subPools.NoEra.Balance = types.SaturatingSub(subPools.NoEra.Balance, balance)
	}

	// Free matured funds from the staking subsystem before paying out.
	if err := k.stakingKeeper.WithdrawUnbonded(ctx, d.Pool, 0); err != nil {
		return WithdrawResult{}, err
	}

	// A dusted pool (drained below what its sub-pool ledger still promises
	// by a prior call) cannot cover this claim. Skip the transfer but still
	// remove the delegator so pool reaping keeps moving.
	dustWithdrawn := false
	paid := balance
	if balance.IsPositive() {
		if k.bankKeeper.FreeBalance(ctx, d.Pool).LT(balance) {
			dustWithdrawn = true
			paid = sdk.ZeroInt()
		} else if err := k.bankKeeper.Transfer(ctx, d.Pool, target, balance, false); err != nil {
			return WithdrawResult{}, err
		}
	}

	k.deleteDelegator(ctx, target)

	if tearDown {
		k.teardownPool(ctx, bondedPool)
	} else {
		k.SetSubPools(ctx, d.Pool, subPools)
	}

	if dustWithdrawn {
		k.Logger(ctx).Info("withdrew against a dusted pool, no transfer made", "delegator", target.String(), "pool", d.Pool.String())
	}
	return WithdrawResult{Balance: paid, TornDown: tearDown, DustWithdrawn: dustWithdrawn}, nil
}

// teardownPool removes every trace of a pool once its depositor has
// withdrawn their final stake (spec.md §4.5 "pool teardown").
func (k Keeper) teardownPool(ctx sdk.Context, pool types.BondedPool) {
	k.deleteBondedPool(ctx, pool.Account)
	k.deleteRewardPool(ctx, pool.Account)
	k.deleteSubPools(ctx, pool.Account)
	k.bankKeeper.MakeFreeBalanceBe(ctx, pool.Account, sdk.ZeroInt())
	k.bankKeeper.MakeFreeBalanceBe(ctx, pool.RewardAccount, sdk.ZeroInt())
	k.decrementPoolsCount(ctx)
}
