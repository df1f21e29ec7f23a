package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StakingKeeper is the abstract staking engine this module calls into
// (spec.md §6, "Inward interface consumed from the staking subsystem").
// The pool engine never inspects unlocking chunks, validator sets, or
// consensus directly; it only issues these calls.
type StakingKeeper interface {
	Bond(ctx sdk.Context, stash, controller, rewardDest sdk.AccAddress, amount sdk.Int) sdk.Error
	BondExtra(ctx sdk.Context, stash, from sdk.AccAddress, amount sdk.Int) sdk.Error
	Unbond(ctx sdk.Context, stash sdk.AccAddress, amount sdk.Int) sdk.Error
	WithdrawUnbonded(ctx sdk.Context, stash sdk.AccAddress, numSlashingSpans uint32) sdk.Error
	Nominate(ctx sdk.Context, stash sdk.AccAddress, validators []sdk.ValAddress) sdk.Error

	// BondedBalance returns the stash's current active stake. ok is false
	// if the staking engine has no record of stash.
	BondedBalance(ctx sdk.Context, stash sdk.AccAddress) (balance sdk.Int, ok bool)

	// CurrentEra returns the staking engine's current era. ok is false if
	// no era has been observed yet (e.g. at genesis).
	CurrentEra(ctx sdk.Context) (era uint64, ok bool)

	BondingDuration(ctx sdk.Context) uint64
	MinimumBond(ctx sdk.Context) sdk.Int
}

// BankKeeper is the abstract balance ledger this module calls into
// (spec.md §6, "Interface consumed from the balance subsystem").
type BankKeeper interface {
	FreeBalance(ctx sdk.Context, addr sdk.AccAddress) sdk.Int

	// Transfer moves amount from `from` to `to`. If keepAlive is true the
	// transfer must not bring `from` below the existence threshold;
	// otherwise the sender may be fully drained. The pool engine's own
	// calls (reward payouts and withdrawals) pass false. Join does not use
	// Transfer: its funds move through StakingKeeper.BondExtra, so no
	// keep-alive check applies to the joiner.
	Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int, keepAlive bool) sdk.Error

	// MakeFreeBalanceBe forces addr's balance to amount, used to drain a
	// destroyed pool's bonded/reward accounts to zero.
	MakeFreeBalanceBe(ctx sdk.Context, addr sdk.AccAddress, amount sdk.Int)
}

// SlashPoolArgs is the argument the staking subsystem supplies when it
// retroactively applies a slash that targets a pool stash (spec.md §4.5,
// §6 "Outward interface exposed to the staking subsystem").
type SlashPoolArgs struct {
	PoolStash    sdk.AccAddress
	SlashAmount  sdk.Int
	SlashEra     uint64
	ApplyEra     uint64
	ActiveBonded sdk.Int
}

// SlashPoolOut carries the post-slash balances (not the slashed deltas) the
// staking subsystem must apply to the pool stash and to each affected
// unbonding era.
type SlashPoolOut struct {
	SlashedBonded    sdk.Int
	SlashedUnlocking map[uint64]sdk.Int
}
