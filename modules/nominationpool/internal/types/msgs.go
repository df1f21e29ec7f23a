package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Msg type names, one per operation of spec.md §4.5.
const (
	TypeMsgCreate                  = "create_pool"
	TypeMsgJoin                    = "join_pool"
	TypeMsgClaimPayout             = "claim_payout"
	TypeMsgUnbond                  = "unbond"
	TypeMsgPoolWithdrawUnbonded    = "pool_withdraw_unbonded"
	TypeMsgWithdrawUnbonded        = "withdraw_unbonded"
	TypeMsgNominate                = "nominate"
	TypeMsgSetState                = "set_state"
)

// /////////////////////////////////////////////////////////
// MsgCreate

var _ sdk.Msg = MsgCreate{}

// MsgCreate opens a new pool, bonding amount from depositor and naming
// depositor as root, nominator and state-toggler of the new pool (spec.md
// §4.5 "create").
type MsgCreate struct {
	Depositor sdk.AccAddress `json:"depositor"`
	Amount    sdk.Int        `json:"amount"`
}

func NewMsgCreate(depositor sdk.AccAddress, amount sdk.Int) MsgCreate {
	return MsgCreate{Depositor: depositor, Amount: amount}
}

func (msg MsgCreate) Route() string { return RouterKey }
func (msg MsgCreate) Type() string   { return TypeMsgCreate }

func (msg MsgCreate) ValidateBasic() sdk.Error {
	if len(msg.Depositor) == 0 {
		return sdk.ErrInvalidAddress("missing depositor address")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdk.ErrInvalidCoins("create amount must be positive")
	}
	return nil
}

func (msg MsgCreate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgCreate) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Depositor}
}

// /////////////////////////////////////////////////////////
// MsgJoin

var _ sdk.Msg = MsgJoin{}

// MsgJoin bonds amount from delegator into an existing pool (spec.md §4.5
// "join").
type MsgJoin struct {
	Delegator sdk.AccAddress `json:"delegator"`
	Pool      sdk.AccAddress `json:"pool"`
	Amount    sdk.Int        `json:"amount"`
}

func NewMsgJoin(delegator, pool sdk.AccAddress, amount sdk.Int) MsgJoin {
	return MsgJoin{Delegator: delegator, Pool: pool, Amount: amount}
}

func (msg MsgJoin) Route() string { return RouterKey }
func (msg MsgJoin) Type() string   { return TypeMsgJoin }

func (msg MsgJoin) ValidateBasic() sdk.Error {
	if len(msg.Delegator) == 0 {
		return sdk.ErrInvalidAddress("missing delegator address")
	}
	if len(msg.Pool) == 0 {
		return sdk.ErrInvalidAddress("missing pool address")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdk.ErrInvalidCoins("join amount must be positive")
	}
	return nil
}

func (msg MsgJoin) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgJoin) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Delegator}
}

// /////////////////////////////////////////////////////////
// MsgClaimPayout

var _ sdk.Msg = MsgClaimPayout{}

// MsgClaimPayout pays the caller their share of their pool's accrued
// rewards (spec.md §4.5 "claim_payout").
type MsgClaimPayout struct {
	Delegator sdk.AccAddress `json:"delegator"`
}

func NewMsgClaimPayout(delegator sdk.AccAddress) MsgClaimPayout {
	return MsgClaimPayout{Delegator: delegator}
}

func (msg MsgClaimPayout) Route() string { return RouterKey }
func (msg MsgClaimPayout) Type() string   { return TypeMsgClaimPayout }

func (msg MsgClaimPayout) ValidateBasic() sdk.Error {
	if len(msg.Delegator) == 0 {
		return sdk.ErrInvalidAddress("missing delegator address")
	}
	return nil
}

func (msg MsgClaimPayout) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgClaimPayout) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Delegator}
}

// /////////////////////////////////////////////////////////
// MsgUnbond

var _ sdk.Msg = MsgUnbond{}

// MsgUnbond starts caller unbonding target's full remaining points (spec.md
// §4.5 "unbond_other"; caller == target is the common self-unbond case).
type MsgUnbond struct {
	Caller sdk.AccAddress `json:"caller"`
	Target sdk.AccAddress `json:"target"`
}

func NewMsgUnbond(caller, target sdk.AccAddress) MsgUnbond {
	return MsgUnbond{Caller: caller, Target: target}
}

func (msg MsgUnbond) Route() string { return RouterKey }
func (msg MsgUnbond) Type() string   { return TypeMsgUnbond }

func (msg MsgUnbond) ValidateBasic() sdk.Error {
	if len(msg.Caller) == 0 {
		return sdk.ErrInvalidAddress("missing caller address")
	}
	if len(msg.Target) == 0 {
		return sdk.ErrInvalidAddress("missing target address")
	}
	return nil
}

func (msg MsgUnbond) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgUnbond) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Caller}
}

// /////////////////////////////////////////////////////////
// MsgPoolWithdrawUnbonded

var _ sdk.Msg = MsgPoolWithdrawUnbonded{}

// MsgPoolWithdrawUnbonded asks the staking subsystem to release a pool's
// fully-unbonded funds back into the pool stash's free balance
// (spec.md §4.5 "pool_withdraw_unbonded"). Permissionless: anyone may poke
// it along.
type MsgPoolWithdrawUnbonded struct {
	Caller sdk.AccAddress `json:"caller"`
	Pool   sdk.AccAddress `json:"pool"`
}

func NewMsgPoolWithdrawUnbonded(caller, pool sdk.AccAddress) MsgPoolWithdrawUnbonded {
	return MsgPoolWithdrawUnbonded{Caller: caller, Pool: pool}
}

func (msg MsgPoolWithdrawUnbonded) Route() string { return RouterKey }
func (msg MsgPoolWithdrawUnbonded) Type() string   { return TypeMsgPoolWithdrawUnbonded }

func (msg MsgPoolWithdrawUnbonded) ValidateBasic() sdk.Error {
	if len(msg.Caller) == 0 {
		return sdk.ErrInvalidAddress("missing caller address")
	}
	if len(msg.Pool) == 0 {
		return sdk.ErrInvalidAddress("missing pool address")
	}
	return nil
}

func (msg MsgPoolWithdrawUnbonded) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgPoolWithdrawUnbonded) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Caller}
}

// /////////////////////////////////////////////////////////
// MsgWithdrawUnbonded

var _ sdk.Msg = MsgWithdrawUnbonded{}

// MsgWithdrawUnbonded pays target their redeemed sub-pool balance once
// their unbonding era has matured (spec.md §4.5 "withdraw_unbonded_other").
type MsgWithdrawUnbonded struct {
	Caller sdk.AccAddress `json:"caller"`
	Target sdk.AccAddress `json:"target"`
}

func NewMsgWithdrawUnbonded(caller, target sdk.AccAddress) MsgWithdrawUnbonded {
	return MsgWithdrawUnbonded{Caller: caller, Target: target}
}

func (msg MsgWithdrawUnbonded) Route() string { return RouterKey }
func (msg MsgWithdrawUnbonded) Type() string   { return TypeMsgWithdrawUnbonded }

func (msg MsgWithdrawUnbonded) ValidateBasic() sdk.Error {
	if len(msg.Caller) == 0 {
		return sdk.ErrInvalidAddress("missing caller address")
	}
	if len(msg.Target) == 0 {
		return sdk.ErrInvalidAddress("missing target address")
	}
	return nil
}

func (msg MsgWithdrawUnbonded) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgWithdrawUnbonded) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Caller}
}

// /////////////////////////////////////////////////////////
// MsgNominate

var _ sdk.Msg = MsgNominate{}

// MsgNominate forwards a validator list to the staking subsystem on behalf
// of a pool's stash (spec.md §4.5 "nominate").
type MsgNominate struct {
	Caller     sdk.AccAddress   `json:"caller"`
	Pool       sdk.AccAddress   `json:"pool"`
	Validators []sdk.ValAddress `json:"validators"`
}

func NewMsgNominate(caller, pool sdk.AccAddress, validators []sdk.ValAddress) MsgNominate {
	return MsgNominate{Caller: caller, Pool: pool, Validators: validators}
}

func (msg MsgNominate) Route() string { return RouterKey }
func (msg MsgNominate) Type() string   { return TypeMsgNominate }

func (msg MsgNominate) ValidateBasic() sdk.Error {
	if len(msg.Caller) == 0 {
		return sdk.ErrInvalidAddress("missing caller address")
	}
	if len(msg.Pool) == 0 {
		return sdk.ErrInvalidAddress("missing pool address")
	}
	if len(msg.Validators) == 0 {
		return sdk.NewError(CodespaceNominationPool, CodeNotNominator, "must nominate at least one validator")
	}
	return nil
}

func (msg MsgNominate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgNominate) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Caller}
}

// /////////////////////////////////////////////////////////
// MsgSetState

var _ sdk.Msg = MsgSetState{}

// MsgSetState toggles a pool between Open and Blocked, or begins
// Destroying it (spec.md §4.5 "set_state", §4.3 permission matrix row 4).
type MsgSetState struct {
	Caller   sdk.AccAddress `json:"caller"`
	Pool     sdk.AccAddress `json:"pool"`
	NewState PoolState      `json:"new_state"`
}

func NewMsgSetState(caller, pool sdk.AccAddress, newState PoolState) MsgSetState {
	return MsgSetState{Caller: caller, Pool: pool, NewState: newState}
}

func (msg MsgSetState) Route() string { return RouterKey }
func (msg MsgSetState) Type() string   { return TypeMsgSetState }

func (msg MsgSetState) ValidateBasic() sdk.Error {
	if len(msg.Caller) == 0 {
		return sdk.ErrInvalidAddress("missing caller address")
	}
	if len(msg.Pool) == 0 {
		return sdk.ErrInvalidAddress("missing pool address")
	}
	if msg.NewState > PoolDestroying {
		return sdk.NewError(CodespaceNominationPool, CodeNotOpen, "unknown pool state")
	}
	return nil
}

func (msg MsgSetState) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgSetState) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Caller}
}
