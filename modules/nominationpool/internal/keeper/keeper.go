package keeper

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/params"
	"github.com/tendermint/tendermint/crypto/tmhash"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// Keeper holds the pool engine's store access and the two external
// subsystems it calls into, the same shape the teacher's module keepers
// take (a store key, a codec, a param subspace, and the keepers of the
// modules it depends on).
type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.Codec

	paramSpace params.Subspace

	stakingKeeper types.StakingKeeper
	bankKeeper    types.BankKeeper
}

// NewKeeper constructs a Keeper, sealing the param subspace with this
// module's key table the way `bankx.NewKeeper` takes an already-namespaced
// subspace from the caller.
func NewKeeper(cdc *codec.Codec, storeKey sdk.StoreKey, paramSpace params.Subspace, stakingKeeper types.StakingKeeper, bankKeeper types.BankKeeper) Keeper {
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}
	return Keeper{
		storeKey:      storeKey,
		cdc:           cdc,
		paramSpace:    paramSpace,
		stakingKeeper: stakingKeeper,
		bankKeeper:    bankKeeper,
	}
}

// Logger returns a module-scoped logger, the same pattern
// `stakingx.Slash` uses via `ctx.Logger().With(...)`.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// --- params ---

// GetParams returns the module's current configuration.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	var p types.Params
	k.paramSpace.GetParamSet(ctx, &p)
	return p
}

// SetParams overwrites the module's configuration.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	k.paramSpace.SetParamSet(ctx, &params)
}

// --- pools count ---

// PoolsCount returns the number of bonded pools that currently exist, used
// by MaxPools admission control (spec.md §10 "CountedStorageMap").
func (k Keeper) PoolsCount(ctx sdk.Context) uint32 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PoolsCountKey)
	if bz == nil {
		return 0
	}
	var count uint32
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &count)
	return count
}

func (k Keeper) setPoolsCount(ctx sdk.Context, count uint32) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.PoolsCountKey, k.cdc.MustMarshalBinaryLengthPrefixed(count))
}

func (k Keeper) incrementPoolsCount(ctx sdk.Context) {
	k.setPoolsCount(ctx, k.PoolsCount(ctx)+1)
}

func (k Keeper) decrementPoolsCount(ctx sdk.Context) {
	count := k.PoolsCount(ctx)
	if count == 0 {
		return
	}
	k.setPoolsCount(ctx, count-1)
}

// --- bonded pools ---

// GetBondedPool returns the bonded pool at account, and whether it exists.
func (k Keeper) GetBondedPool(ctx sdk.Context, account sdk.AccAddress) (types.BondedPool, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.BondedPoolKey(account))
	if bz == nil {
		return types.BondedPool{}, false
	}
	var pool types.BondedPool
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &pool)
	return pool, true
}

// SetBondedPool writes a bonded pool's state.
func (k Keeper) SetBondedPool(ctx sdk.Context, pool types.BondedPool) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.BondedPoolKey(pool.Account), k.cdc.MustMarshalBinaryLengthPrefixed(pool))
}

func (k Keeper) deleteBondedPool(ctx sdk.Context, account sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.BondedPoolKey(account))
}

// --- reward pools ---

// GetRewardPool returns the reward pool belonging to the bonded pool keyed
// by poolAccount (the pool's stash account, not the reward account itself —
// the two are always looked up together via the bonded pool record).
func (k Keeper) GetRewardPool(ctx sdk.Context, poolAccount sdk.AccAddress) (types.RewardPool, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.RewardPoolKey(poolAccount))
	if bz == nil {
		return types.RewardPool{}, false
	}
	var pool types.RewardPool
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &pool)
	return pool, true
}

// SetRewardPool writes the reward pool belonging to the bonded pool at
// poolAccount.
func (k Keeper) SetRewardPool(ctx sdk.Context, poolAccount sdk.AccAddress, pool types.RewardPool) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.RewardPoolKey(poolAccount), k.cdc.MustMarshalBinaryLengthPrefixed(pool))
}

func (k Keeper) deleteRewardPool(ctx sdk.Context, account sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.RewardPoolKey(account))
}

// --- sub-pools ---

// GetSubPools returns the unbonding sub-pools of the bonded pool at
// account.
func (k Keeper) GetSubPools(ctx sdk.Context, account sdk.AccAddress) (types.SubPools, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.SubPoolsKey(account))
	if bz == nil {
		return types.SubPools{}, false
	}
	var sp types.SubPools
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &sp)
	return sp, true
}

// SetSubPools writes a bonded pool's sub-pools.
func (k Keeper) SetSubPools(ctx sdk.Context, account sdk.AccAddress, sp types.SubPools) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.SubPoolsKey(account), k.cdc.MustMarshalBinaryLengthPrefixed(sp))
}

func (k Keeper) deleteSubPools(ctx sdk.Context, account sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.SubPoolsKey(account))
}

// --- delegators ---

// GetDelegator returns the delegator record for addr.
func (k Keeper) GetDelegator(ctx sdk.Context, addr sdk.AccAddress) (types.Delegator, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.DelegatorKey(addr))
	if bz == nil {
		return types.Delegator{}, false
	}
	var d types.Delegator
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &d)
	return d, true
}

// SetDelegator writes a delegator's record, keyed by the delegator's own
// address (addr is passed explicitly since Delegator itself does not carry
// it, mirroring spec.md §3's "Delegators: keyed by delegator account").
func (k Keeper) SetDelegator(ctx sdk.Context, addr sdk.AccAddress, d types.Delegator) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.DelegatorKey(addr), k.cdc.MustMarshalBinaryLengthPrefixed(d))
}

func (k Keeper) deleteDelegator(ctx sdk.Context, addr sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.DelegatorKey(addr))
}

// --- account derivation ---

// deriveAccounts derives a pool's stash and reward accounts from the
// current block and tx context, following the source's `create_accounts`
// one to one (spec.md §4.5, SPEC_FULL.md §5): one domain-separated hash
// per account, over (label, seed_index, parent block hash, tx bytes).
func (k Keeper) deriveAccounts(ctx sdk.Context, seedIndex uint32) (stash, reward sdk.AccAddress) {
	seed := make([]byte, 4)
	seed[0] = byte(seedIndex >> 24)
	seed[1] = byte(seedIndex >> 16)
	seed[2] = byte(seedIndex >> 8)
	seed[3] = byte(seedIndex)

	parentHash := ctx.BlockHeader().LastBlockId.Hash
	txBytes := ctx.TxBytes()

	stash = sdk.AccAddress(deriveAccount("nominationpool/stash", seed, parentHash, txBytes))
	reward = sdk.AccAddress(deriveAccount("nominationpool/reward", seed, parentHash, txBytes))
	return stash, reward
}

func deriveAccount(label string, seed, parentHash, txBytes []byte) []byte {
	h := tmhash.New()
	h.Write([]byte(label))
	h.Write(seed)
	h.Write(parentHash)
	h.Write(txBytes)
	return h.Sum(nil)[:sdk.AddrLen]
}

// AssertIntegrity checks a startup invariant spec.md §4.5 and §9 call out:
// the unbonding sub-pool retention window must exceed the staking
// subsystem's bonding duration, the same "integrity_test" the source
// enforces at build time (SPEC_FULL.md §10). Called from InitGenesis.
func (k Keeper) AssertIntegrity(ctx sdk.Context) error {
	p := k.GetParams(ctx)
	bondingDuration := k.stakingKeeper.BondingDuration(ctx)
	window := bondingDuration + p.PostUnbondingPoolsWindow
	if window <= bondingDuration {
		return fmt.Errorf("sub-pool retention window (%d) must exceed the staking bonding duration (%d)", window, bondingDuration)
	}
	return nil
}

// window returns the sub-pool retention window W = bonding_duration +
// post_unbonding_pools_window (spec.md §3, §4.2).
func (k Keeper) window(ctx sdk.Context) uint64 {
	return k.stakingKeeper.BondingDuration(ctx) + k.GetParams(ctx).PostUnbondingPoolsWindow
}
