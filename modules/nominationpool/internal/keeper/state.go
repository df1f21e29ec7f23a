package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// SetState transitions pool's lifecycle state, restricted to root and
// state-toggler, with Destroying absorbing (spec.md §4.5 "set_state",
// SPEC_FULL.md §9 Open Question resolution).
func (k Keeper) SetState(ctx sdk.Context, caller, pool sdk.AccAddress, newState types.PoolState) sdk.Error {
	bondedPool, ok := k.GetBondedPool(ctx, pool)
	if !ok {
		return types.ErrPoolNotFound()
	}
	if bondedPool.IsDestroying() {
		return types.ErrNotDestroying()
	}
	if !caller.Equals(bondedPool.Root) && !caller.Equals(bondedPool.StateToggler) {
		return types.ErrNotKickerOrDestroying()
	}

	bondedPool.State = newState
	k.SetBondedPool(ctx, bondedPool)
	return nil
}
