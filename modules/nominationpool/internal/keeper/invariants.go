package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// IterateDelegators walks every delegator record in the store.
func (k Keeper) IterateDelegators(ctx sdk.Context, fn func(addr sdk.AccAddress, d types.Delegator) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.DelegatorKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		addr := sdk.AccAddress(iter.Key()[len(types.DelegatorKeyPrefix):])
		var d types.Delegator
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &d)
		if fn(addr, d) {
			break
		}
	}
}

// IterateBondedPools walks every bonded pool record in the store.
func (k Keeper) IterateBondedPools(ctx sdk.Context, fn func(pool types.BondedPool) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.BondedPoolKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var pool types.BondedPool
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &pool)
		if fn(pool) {
			break
		}
	}
}

// PointsBalancedInvariant checks that every bonded pool's recorded points
// equal the sum of its bonded (non-unbonding) delegators' points (spec.md
// §8 invariant 1). Returns a human-readable message and whether it broke.
func PointsBalancedInvariant(k Keeper) func(ctx sdk.Context) (string, bool) {
	return func(ctx sdk.Context) (string, bool) {
		sums := map[string]sdk.Int{}
		k.IterateDelegators(ctx, func(_ sdk.AccAddress, d types.Delegator) bool {
			if d.IsUnbonding() {
				return false
			}
			key := d.Pool.String()
			if existing, ok := sums[key]; ok {
				sums[key] = existing.Add(d.Points)
			} else {
				sums[key] = d.Points
			}
			return false
		})

		broken := false
		msg := ""
		k.IterateBondedPools(ctx, func(pool types.BondedPool) bool {
			sum, ok := sums[pool.Account.String()]
			if !ok {
				sum = sdk.ZeroInt()
			}
			if !sum.Equal(pool.Points) {
				broken = true
				msg += fmt.Sprintf("pool %s: delegator points %s != bonded points %s\n", pool.Account, sum, pool.Points)
			}
			return false
		})
		return msg, broken
	}
}
