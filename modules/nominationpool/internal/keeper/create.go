package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// Create opens a new pool bonding amount from depositor, naming depositor
// as root, nominator and state-toggler (spec.md §4.5 "create"). Returns the
// freshly derived pool (stash) account so the caller can tag it.
func (k Keeper) Create(ctx sdk.Context, depositor sdk.AccAddress, amount sdk.Int) (sdk.AccAddress, sdk.Error) {
	if _, isDelegator := k.GetDelegator(ctx, depositor); isDelegator {
		return nil, types.ErrAccountBelongsToOtherPool()
	}

	params := k.GetParams(ctx)
	minBond := params.MinCreateBond
	if floor := k.stakingKeeper.MinimumBond(ctx); floor.GT(minBond) {
		minBond = floor
	}
	if amount.LT(minBond) {
		return nil, types.ErrMinimumBondNotMet()
	}
	if params.MaxPools > 0 && k.PoolsCount(ctx) >= params.MaxPools {
		return nil, types.ErrMaxPools()
	}

	stash, reward := k.deriveAccounts(ctx, k.PoolsCount(ctx))
	if _, exists := k.GetBondedPool(ctx, stash); exists {
		return nil, types.ErrIDInUse()
	}

	if err := k.stakingKeeper.Bond(ctx, stash, depositor, reward, amount); err != nil {
		return nil, err
	}

	pool := types.BondedPool{
		Account:       stash,
		RewardAccount: reward,
		Points:        sdk.ZeroInt(),
		Depositor:     depositor,
		Root:          depositor,
		Nominator:     depositor,
		StateToggler:  depositor,
		State:         types.PoolOpen,
	}
	pool.Issue(amount, amount)

	k.SetBondedPool(ctx, pool)
	k.SetRewardPool(ctx, stash, types.NewRewardPool(reward))
	k.SetSubPools(ctx, stash, types.NewSubPools())
	k.SetDelegator(ctx, depositor, types.NewBondedDelegator(stash, pool.Points, sdk.ZeroInt()))
	k.incrementPoolsCount(ctx)

	return stash, nil
}
