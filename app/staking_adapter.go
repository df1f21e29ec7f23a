package app

import (
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/bank"
	"github.com/cosmos/cosmos-sdk/x/staking"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	nptypes "github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// nominatedValidatorsPrefix keys each stash's recorded validator set in the
// adapter's own small store, the same KVStoreKey-per-concern convention
// `modules/stakingx.Keeper` wraps around a real staking.Keeper.
var nominatedValidatorsPrefix = []byte{0x01}

// StakingAdapter implements nominationpool/internal/types.StakingKeeper on
// top of a real x/staking.Keeper, the way `modules/stakingx.Keeper` wraps
// `sk` with thin pass-through methods. Cosmos delegations always target a
// validator, while a pool's bonded funds may sit unassigned between Create
// and the first Nominate; the adapter holds such funds as a plain balance
// on the stash account (itself unspendable, since no private key controls
// a derived pool address) and only opens real delegations once a
// validator set has been recorded.
type StakingAdapter struct {
	sk       staking.Keeper
	bk       bank.Keeper
	storeKey sdk.StoreKey
}

func NewStakingAdapter(sk staking.Keeper, bk bank.Keeper, storeKey sdk.StoreKey) StakingAdapter {
	return StakingAdapter{sk: sk, bk: bk, storeKey: storeKey}
}

func (a StakingAdapter) validatorsKey(stash sdk.AccAddress) []byte {
	return append(nominatedValidatorsPrefix, stash.Bytes()...)
}

func (a StakingAdapter) nominatedValidators(ctx sdk.Context, stash sdk.AccAddress) []sdk.ValAddress {
	store := ctx.KVStore(a.storeKey)
	bz := store.Get(a.validatorsKey(stash))
	if bz == nil {
		return nil
	}
	n := len(bz) / sdk.AddrLen
	out := make([]sdk.ValAddress, n)
	for i := 0; i < n; i++ {
		out[i] = sdk.ValAddress(bz[i*sdk.AddrLen : (i+1)*sdk.AddrLen])
	}
	return out
}

func (a StakingAdapter) setNominatedValidators(ctx sdk.Context, stash sdk.AccAddress, vals []sdk.ValAddress) {
	store := ctx.KVStore(a.storeKey)
	bz := make([]byte, 0, len(vals)*sdk.AddrLen)
	for _, v := range vals {
		bz = append(bz, v.Bytes()...)
	}
	store.Set(a.validatorsKey(stash), bz)
}

// delegateAcrossNominees spreads amount evenly across a stash's recorded
// validator set. Funds left over from integer division stay on the stash's
// own balance rather than being force-delegated to an arbitrary remainder
// validator.
func (a StakingAdapter) delegateAcrossNominees(ctx sdk.Context, stash sdk.AccAddress, amount sdk.Int) sdk.Error {
	vals := a.nominatedValidators(ctx, stash)
	if len(vals) == 0 || amount.IsZero() {
		return nil
	}
	share := amount.QuoRaw(int64(len(vals)))
	if share.IsZero() {
		return nil
	}
	for _, v := range vals {
		validator, found := a.sk.GetValidator(ctx, v)
		if !found {
			continue
		}
		bondDenom := a.sk.GetParams(ctx).BondDenom
		coin := sdk.NewCoin(bondDenom, share)
		if _, err := a.sk.Delegate(ctx, stash, coin.Amount, sdk.Unbonded, validator, true); err != nil {
			return sdk.ErrInternal(err.Error())
		}
	}
	return nil
}

// Bond moves amount from controller to stash and opens it as active stake,
// mirroring a pallet-nomination-pools stash's first bond.
func (a StakingAdapter) Bond(ctx sdk.Context, stash, controller, rewardDest sdk.AccAddress, amount sdk.Int) sdk.Error {
	bondDenom := a.sk.GetParams(ctx).BondDenom
	if err := a.bk.SendCoins(ctx, controller, stash, sdk.NewCoins(sdk.NewCoin(bondDenom, amount))); err != nil {
		return err
	}
	return a.delegateAcrossNominees(ctx, stash, amount)
}

// BondExtra moves amount from a joining delegator into the pool's stash.
func (a StakingAdapter) BondExtra(ctx sdk.Context, stash, from sdk.AccAddress, amount sdk.Int) sdk.Error {
	bondDenom := a.sk.GetParams(ctx).BondDenom
	if err := a.bk.SendCoins(ctx, from, stash, sdk.NewCoins(sdk.NewCoin(bondDenom, amount))); err != nil {
		return err
	}
	return a.delegateAcrossNominees(ctx, stash, amount)
}

// Unbond begins releasing amount of the stash's active stake, split evenly
// across the stash's recorded validator set; each share is capped at the
// stash's delegation to that validator. With no set recorded it does nothing.
func (a StakingAdapter) Unbond(ctx sdk.Context, stash sdk.AccAddress, amount sdk.Int) sdk.Error {
	vals := a.nominatedValidators(ctx, stash)
	if len(vals) == 0 {
		return nil
	}
	share := amount.QuoRaw(int64(len(vals)))
	if share.IsZero() {
		return nil
	}
	for _, v := range vals {
		delegation, found := a.sk.GetDelegation(ctx, stash, v)
		if !found {
			continue
		}
		validator, found := a.sk.GetValidator(ctx, v)
		if !found {
			continue
		}
		sharesToUnbond := validator.SharesFromTokens(share)
		if sharesToUnbond.GT(delegation.Shares) {
			sharesToUnbond = delegation.Shares
		}
		if _, _, err := a.sk.Undelegate(ctx, stash, v, sharesToUnbond); err != nil {
			return sdk.ErrInternal(err.Error())
		}
	}
	return nil
}

// WithdrawUnbonded is a no-op against the live staking engine: cosmos
// releases matured unbonding delegations back to the owning account
// automatically at the unbonding queue's completion time, unlike a system
// that requires an explicit withdrawal extrinsic. The pool engine's own
// era bookkeeping (sub_pools.go) tracks maturity independently of this
// call, so by the time it invokes WithdrawUnbonded the stash's free
// balance already reflects the matured funds.
func (a StakingAdapter) WithdrawUnbonded(ctx sdk.Context, stash sdk.AccAddress, numSlashingSpans uint32) sdk.Error {
	return nil
}

// Nominate records the stash's validator targets. Any future Bond/BondExtra
// calls will delegate across the new set; existing delegations to
// validators that fall out of the set are left in place until the next
// Unbond redistributes them, since moving live delegations around on every
// Nominate would itself require a slashable redelegation.
func (a StakingAdapter) Nominate(ctx sdk.Context, stash sdk.AccAddress, validators []sdk.ValAddress) sdk.Error {
	sorted := make([]sdk.ValAddress, len(validators))
	copy(sorted, validators)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].String() < sorted[j].String()
	})
	a.setNominatedValidators(ctx, stash, sorted)
	return nil
}

func (a StakingAdapter) BondedBalance(ctx sdk.Context, stash sdk.AccAddress) (sdk.Int, bool) {
	bondDenom := a.sk.GetParams(ctx).BondDenom
	total := a.bk.GetCoins(ctx, stash).AmountOf(bondDenom)
	for _, v := range a.nominatedValidators(ctx, stash) {
		delegation, found := a.sk.GetDelegation(ctx, stash, v)
		if !found {
			continue
		}
		validator, found := a.sk.GetValidator(ctx, v)
		if !found {
			continue
		}
		total = total.Add(validator.TokensFromShares(delegation.Shares).TruncateInt())
	}
	return total, true
}

func (a StakingAdapter) CurrentEra(ctx sdk.Context) (uint64, bool) {
	return uint64(ctx.BlockHeight()), true
}

func (a StakingAdapter) BondingDuration(ctx sdk.Context) uint64 {
	return uint64(a.sk.GetParams(ctx).UnbondingTime.Hours() / 24)
}

func (a StakingAdapter) MinimumBond(ctx sdk.Context) sdk.Int {
	return stakingtypes.TokensFromConsensusPower(1)
}

var _ nptypes.StakingKeeper = StakingAdapter{}
