package nominationpool

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/keeper"
	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// InitGenesis loads every pool in data into the store and checks the
// module's startup integrity invariant (spec.md §10 "integrity_test").
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	k.SetParams(ctx, data.Params)

	for _, record := range data.Pools {
		k.SetBondedPool(ctx, record.Bonded)
		k.SetRewardPool(ctx, record.Bonded.Account, record.Reward)
		k.SetSubPools(ctx, record.Bonded.Account, record.SubPools)
		for addr, d := range record.Delegators {
			accAddr, err := sdk.AccAddressFromBech32(addr)
			if err != nil {
				panic(err)
			}
			k.SetDelegator(ctx, accAddr, d)
		}
	}

	if err := k.AssertIntegrity(ctx); err != nil {
		panic(err)
	}
}

// ExportGenesis reads every pool out of the store for genesis export.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	params := k.GetParams(ctx)
	var pools []types.PoolRecord

	k.IterateBondedPools(ctx, func(bonded types.BondedPool) bool {
		reward, _ := k.GetRewardPool(ctx, bonded.Account)
		subPools, _ := k.GetSubPools(ctx, bonded.Account)
		delegators := map[string]types.Delegator{}
		k.IterateDelegators(ctx, func(addr sdk.AccAddress, d types.Delegator) bool {
			if d.Pool.Equals(bonded.Account) {
				delegators[addr.String()] = d
			}
			return false
		})
		pools = append(pools, types.PoolRecord{
			Bonded:     bonded,
			Reward:     reward,
			SubPools:   subPools,
			Delegators: delegators,
		})
		return false
	})

	return types.NewGenesisState(params, pools)
}
