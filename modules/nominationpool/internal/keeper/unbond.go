package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// UnbondOther moves target's full bonded stake into the unbonding sub-pool
// of the current era, the era unbonding starts in (spec.md §4.5 "unbond_other"; caller == target
// is the common self-unbond case, any other caller must satisfy the
// permission matrix of spec.md §4.3).
func (k Keeper) UnbondOther(ctx sdk.Context, caller, target sdk.AccAddress) sdk.Error {
	d, ok := k.GetDelegator(ctx, target)
	if !ok {
		return types.ErrDelegatorNotFound()
	}
	if d.IsUnbonding() {
		return types.ErrAlreadyUnbonding()
	}

	bondedPool, ok := k.GetBondedPool(ctx, d.Pool)
	if !ok {
		k.Logger(ctx).Error("delegator names a pool that no longer exists", "delegator", target.String(), "pool", d.Pool.String())
		return types.ErrPoolNotFound()
	}
	if err := bondedPool.OkToUnbondOtherWith(caller, target, d); err != nil {
		return err
	}

	// Settle any outstanding reward claim before the delegator's points
	// leave the bonded pool's ledger, so no earnings are silently lost.
	if _, err := k.ClaimPayout(ctx, target); err != nil {
		return err
	}
	d, _ = k.GetDelegator(ctx, target)

	bondedBalance, ok := k.stakingKeeper.BondedBalance(ctx, d.Pool)
	if !ok {
		return types.ErrPoolNotFound()
	}
	unbondingBalance := bondedPool.BalanceToUnbond(bondedBalance, d.Points)

	if err := k.stakingKeeper.Unbond(ctx, d.Pool, unbondingBalance); err != nil {
		return err
	}
	bondedPool.Points = types.SaturatingSub(bondedPool.Points, d.Points)

	currentEra, ok := k.stakingKeeper.CurrentEra(ctx)
	if !ok {
		return types.ErrPoolNotFound()
	}

	subPools, ok := k.GetSubPools(ctx, d.Pool)
	if !ok {
		k.Logger(ctx).Error("bonded pool has no matching sub-pools", "pool", d.Pool.String())
		return types.ErrSubPoolsNotFound()
	}
	subPools = subPools.MaybeMergePools(currentEra, k.window(ctx))

	unbondPool := subPools.UncheckedWithEraGetOrMake(currentEra)
	issued := unbondPool.Issue(unbondingBalance)
	subPools.SetWithEra(currentEra, unbondPool)

	d.Points = issued
	d.UnbondingEra = &currentEra

	k.SetBondedPool(ctx, bondedPool)
	k.SetSubPools(ctx, d.Pool, subPools)
	k.SetDelegator(ctx, target, d)
	return nil
}
