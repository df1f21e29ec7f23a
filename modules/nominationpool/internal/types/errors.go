package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CodespaceNominationPool is this module's error codespace.
const CodespaceNominationPool sdk.CodespaceType = ModuleName

// Error codes. The set is exhaustive for this module's own refusals and is
// part of the module's contract; errors returned by the staking and bank
// keepers are passed through unchanged.
const (
	CodePoolNotFound             sdk.CodeType = 101
	CodeDelegatorNotFound        sdk.CodeType = 102
	CodeRewardPoolNotFound       sdk.CodeType = 103
	CodeSubPoolsNotFound         sdk.CodeType = 104
	CodeAccountBelongsToOther    sdk.CodeType = 105
	CodeMinimumBondNotMet        sdk.CodeType = 106
	CodeOverflowRisk             sdk.CodeType = 107
	CodeAlreadyUnbonding         sdk.CodeType = 108
	CodeNotUnbonding             sdk.CodeType = 109
	CodeNotUnbondedYet           sdk.CodeType = 110
	CodeNotDestroying            sdk.CodeType = 111
	CodeNotOnlyDelegator         sdk.CodeType = 112
	CodeNotNominator             sdk.CodeType = 113
	CodeNotKickerOrDestroying    sdk.CodeType = 114
	CodeNotOpen                  sdk.CodeType = 115
	CodeIDInUse                  sdk.CodeType = 116
	CodeMaxPools                 sdk.CodeType = 117
)

func ErrPoolNotFound() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodePoolNotFound, "bonded pool not found")
}

func ErrDelegatorNotFound() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeDelegatorNotFound, "delegator not found")
}

func ErrRewardPoolNotFound() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeRewardPoolNotFound, "reward pool not found")
}

func ErrSubPoolsNotFound() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeSubPoolsNotFound, "sub-pools not found")
}

func ErrAccountBelongsToOtherPool() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeAccountBelongsToOther, "account already delegates in another pool")
}

func ErrMinimumBondNotMet() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeMinimumBondNotMet, "amount does not meet the minimum bond")
}

func ErrOverflowRisk() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeOverflowRisk, "operation would risk overflow of pool accounting")
}

func ErrAlreadyUnbonding() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeAlreadyUnbonding, "delegator is already unbonding")
}

func ErrNotUnbonding() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeNotUnbonding, "delegator is not unbonding")
}

func ErrNotUnbondedYet() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeNotUnbondedYet, "bonding duration has not elapsed since unbonding started")
}

func ErrNotDestroying() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeNotDestroying, "pool must be in the destroying state")
}

func ErrNotOnlyDelegator() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeNotOnlyDelegator, "depositor is not the sole remaining delegator")
}

func ErrNotNominator() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeNotNominator, "caller is not permitted to nominate for this pool")
}

func ErrNotKickerOrDestroying() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeNotKickerOrDestroying, "caller cannot remove this delegator")
}

func ErrNotOpen() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeNotOpen, "pool is not open to join")
}

func ErrIDInUse() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeIDInUse, "generated pool account already in use")
}

func ErrMaxPools() sdk.Error {
	return sdk.NewError(CodespaceNominationPool, CodeMaxPools, "maximum number of pools reached")
}
