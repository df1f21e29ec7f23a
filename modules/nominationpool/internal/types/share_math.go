package types

import (
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"
)

// InitRatio is the points-to-balance ratio used when a pool (or sub-pool)
// has zero points: one point is minted per unit of balance.
const InitRatio = 1

// MaxBalance is the ceiling of the fixed-precision unsigned balance type
// assumed throughout the pool's accounting (u128, per spec). Saturating
// arithmetic on sdk.Int (itself arbitrary precision) clamps to this bound
// so overflow behavior matches a real u128 host.
var MaxBalance = sdk.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// SaturatingAdd returns a+b, clamped to [0, MaxBalance].
func SaturatingAdd(a, b sdk.Int) sdk.Int {
	sum := a.Add(b)
	if sum.GT(MaxBalance) {
		return MaxBalance
	}
	return sum
}

// SaturatingSub returns a-b, clamped to zero (sdk.Int has no signed concept
// of "below zero" we want here).
func SaturatingSub(a, b sdk.Int) sdk.Int {
	if b.GTE(a) {
		return sdk.ZeroInt()
	}
	return a.Sub(b)
}

// SaturatingMul returns a*b, clamped to [0, MaxBalance].
func SaturatingMul(a, b sdk.Int) sdk.Int {
	if a.IsZero() || b.IsZero() {
		return sdk.ZeroInt()
	}
	product := a.Mul(b)
	if product.GT(MaxBalance) {
		return MaxBalance
	}
	return product
}

// PointsToIssue computes the shares minted for new_funds, per spec.md §4.1.
//
//   - current_points == 0: mint new_funds * InitRatio.
//   - current_balance == 0 && current_points > 0: pool was fully slashed;
//     mint new_funds * current_points.
//   - else: mint (current_points * new_funds) / current_balance.
func PointsToIssue(currentBalance, currentPoints, newFunds sdk.Int) sdk.Int {
	switch {
	case currentPoints.IsZero():
		return SaturatingMul(newFunds, sdk.NewInt(InitRatio))
	case currentBalance.IsZero():
		return SaturatingMul(newFunds, currentPoints)
	default:
		return SaturatingMul(currentPoints, newFunds).Quo(currentBalance)
	}
}

// BalanceToUnbond computes the balance redeemed for delegator_points, per
// spec.md §4.1. Returns zero if any input is zero.
func BalanceToUnbond(currentBalance, currentPoints, delegatorPoints sdk.Int) sdk.Int {
	if currentBalance.IsZero() || currentPoints.IsZero() || delegatorPoints.IsZero() {
		return sdk.ZeroInt()
	}
	return SaturatingMul(currentBalance, delegatorPoints).Quo(currentPoints)
}

// --- wide (256-bit) arithmetic for the reward pool's virtual-points ledger ---

// SaturatingAddU256 returns a+b, clamped at the maximum representable
// uint256 value on overflow.
func SaturatingAddU256(a, b *uint256.Int) *uint256.Int {
	result, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return result
}

// SaturatingSubU256 returns a-b, clamped to zero if b > a.
func SaturatingSubU256(a, b *uint256.Int) *uint256.Int {
	if b.Gt(a) {
		return new(uint256.Int)
	}
	return new(uint256.Int).Sub(a, b)
}

// SaturatingMulU256 returns a*b, clamped at the maximum representable
// uint256 value on overflow.
func SaturatingMulU256(a, b *uint256.Int) *uint256.Int {
	result, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return result
}

// IntToU256 widens an sdk.Int (assumed non-negative and within u128) into a
// uint256.Int, for mixing balance-typed quantities into the wide
// virtual-points ledger.
func IntToU256(i sdk.Int) *uint256.Int {
	v, overflow := uint256.FromBig(i.BigInt())
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return v
}

// U256ToInt narrows a uint256.Int back down to an sdk.Int, saturating at
// MaxBalance the way the balance type's width requires.
func U256ToInt(v *uint256.Int) sdk.Int {
	i := sdk.NewIntFromBigInt(v.ToBig())
	if i.GT(MaxBalance) {
		return MaxBalance
	}
	return i
}
