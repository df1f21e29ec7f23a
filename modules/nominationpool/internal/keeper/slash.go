package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// SlashPool is the outward interface the staking subsystem calls into when
// it retroactively applies a slash whose target stash belongs to a pool
// (spec.md §4.5, §6). The engine never touches balances itself; it returns
// the post-slash balances the staking engine must then apply to the pool
// stash and to each affected unbonding era, the same windowed retroactive
// scan `stakingx.Slash` runs over unbonding delegations and redelegations
// but restricted to the (slash_era, apply_era] window spec.md §4.5 names.
// Returns (nil, false) if PoolStash does not name a pool.
func (k Keeper) SlashPool(ctx sdk.Context, args types.SlashPoolArgs) (*types.SlashPoolOut, bool) {
	if _, ok := k.GetBondedPool(ctx, args.PoolStash); !ok {
		return nil, false
	}
	subPools, ok := k.GetSubPools(ctx, args.PoolStash)
	if !ok {
		k.Logger(ctx).Error("bonded pool has no matching sub-pools", "pool", args.PoolStash.String())
		return nil, false
	}

	// Only unbonding chunks that started between the infraction and the
	// era the slash is applied were still actively bonded (and so
	// contributing stake) at infraction time.
	affectedEras := make([]uint64, 0, len(subPools.WithEra))
	totalAffected := args.ActiveBonded
	for era, pool := range subPools.WithEra {
		if era <= args.SlashEra || era > args.ApplyEra {
			continue
		}
		affectedEras = append(affectedEras, era)
		totalAffected = totalAffected.Add(pool.Balance)
	}

	if !totalAffected.IsPositive() {
		return &types.SlashPoolOut{SlashedBonded: args.ActiveBonded, SlashedUnlocking: map[uint64]sdk.Int{}}, true
	}

	slashFactor := args.SlashAmount.ToDec().QuoInt(totalAffected)
	if slashFactor.GT(sdk.OneDec()) {
		slashFactor = sdk.OneDec()
	}

	bondedSlash := slashFactor.MulInt(args.ActiveBonded).TruncateInt()
	out := &types.SlashPoolOut{
		SlashedBonded:    types.SaturatingSub(args.ActiveBonded, bondedSlash),
		SlashedUnlocking: make(map[uint64]sdk.Int, len(affectedEras)),
	}

	for _, era := range affectedEras {
		pool := subPools.WithEra[era]
		poolSlash := slashFactor.MulInt(pool.Balance).TruncateInt()
		pool.Balance = types.SaturatingSub(pool.Balance, poolSlash)
		subPools.SetWithEra(era, pool)
		out.SlashedUnlocking[era] = pool.Balance
	}

	k.SetSubPools(ctx, args.PoolStash, subPools)
	return out, true
}
