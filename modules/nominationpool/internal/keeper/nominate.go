package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// Nominate forwards a validator list to the staking subsystem on behalf of
// pool's stash, restricted to the pool's root or nominator (spec.md §4.5
// "nominate", §4.3 row 2).
func (k Keeper) Nominate(ctx sdk.Context, caller, pool sdk.AccAddress, validators []sdk.ValAddress) sdk.Error {
	bondedPool, ok := k.GetBondedPool(ctx, pool)
	if !ok {
		return types.ErrPoolNotFound()
	}
	if !bondedPool.CanNominate(caller) {
		return types.ErrNotNominator()
	}
	return k.stakingKeeper.Nominate(ctx, pool, validators)
}
