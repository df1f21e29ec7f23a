package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PoolState is one of the three states a bonded pool can be in. Once
// Destroying, no other state is ever observed again (spec.md §3, §8
// invariant 5).
type PoolState byte

const (
	PoolOpen PoolState = iota
	PoolBlocked
	PoolDestroying
)

func (s PoolState) String() string {
	switch s {
	case PoolOpen:
		return "Open"
	case PoolBlocked:
		return "Blocked"
	case PoolDestroying:
		return "Destroying"
	default:
		return fmt.Sprintf("PoolState(%d)", byte(s))
	}
}

// BondedPool is the active-stake share ledger and permission/lifecycle
// record for one pool (spec.md §3, §4.3).
type BondedPool struct {
	Account       sdk.AccAddress `json:"account"`
	RewardAccount sdk.AccAddress `json:"reward_account"`
	Points        sdk.Int        `json:"points"`

	Depositor    sdk.AccAddress `json:"depositor"`
	Root         sdk.AccAddress `json:"root"`
	Nominator    sdk.AccAddress `json:"nominator"`
	StateToggler sdk.AccAddress `json:"state_toggler"`

	State PoolState `json:"state"`
}

// PointsToIssue returns the shares that would be minted for newFunds, given
// the pool's current bonded balance (read from the staking subsystem).
func (p BondedPool) PointsToIssue(bondedBalance, newFunds sdk.Int) sdk.Int {
	return PointsToIssue(bondedBalance, p.Points, newFunds)
}

// BalanceToUnbond returns the balance redeemable for delegatorPoints, given
// the pool's current bonded balance.
func (p BondedPool) BalanceToUnbond(bondedBalance, delegatorPoints sdk.Int) sdk.Int {
	return BalanceToUnbond(bondedBalance, p.Points, delegatorPoints)
}

// Issue mints points for newFunds against bondedBalance and adds them to the
// pool's outstanding points, returning the amount issued.
func (p *BondedPool) Issue(bondedBalance, newFunds sdk.Int) sdk.Int {
	issued := p.PointsToIssue(bondedBalance, newFunds)
	p.Points = SaturatingAdd(p.Points, issued)
	return issued
}

// IsDestroying reports whether the pool is in its terminal state.
func (p BondedPool) IsDestroying() bool {
	return p.State == PoolDestroying
}

// CanNominate reports whether who may forward a validator list to staking.
func (p BondedPool) CanNominate(who sdk.AccAddress) bool {
	return who.Equals(p.Root) || who.Equals(p.Nominator)
}

// CanKick reports whether who has kicking permission while the pool is
// Blocked (spec.md §4.3 permission matrix, row 3).
func (p BondedPool) CanKick(who sdk.AccAddress) bool {
	return (who.Equals(p.Root) || who.Equals(p.StateToggler)) && p.State == PoolBlocked
}

// OkToJoinWith implements the join precheck of spec.md §4.3: the pool must
// be Open, have non-zero bonded balance, and admitting newFunds must not
// risk overflowing the points:balance ratio.
func (p BondedPool) OkToJoinWith(bondedBalance, newFunds sdk.Int, poolSizeMax uint32) sdk.Error {
	if p.State != PoolOpen {
		return ErrNotOpen()
	}
	if bondedBalance.IsZero() {
		return ErrOverflowRisk()
	}
	max := sdk.NewInt(int64(poolSizeMax))

	// Pool points can inflate relative to balance, but only if the pool has
	// been slashed; cap how far that inflation is allowed to go.
	ratioFloor := p.Points.Quo(bondedBalance)
	if ratioFloor.GTE(max) {
		return ErrOverflowRisk()
	}
	// Restrict the post-join bonded balance to 1/poolSizeMax of the max
	// representable balance so the saturating multiplications above cannot
	// be pushed into their saturated (lossy) range for any realistic joiner.
	ceiling := MaxBalance.Quo(max)
	if SaturatingAdd(newFunds, bondedBalance).GTE(ceiling) {
		return ErrOverflowRisk()
	}
	return nil
}

// OkToUnbondOtherWith implements the unbond permission matrix of spec.md
// §4.3.
func (p BondedPool) OkToUnbondOtherWith(caller, target sdk.AccAddress, targetDelegator Delegator) sdk.Error {
	isPermissioned := caller.Equals(target)
	isDepositor := target.Equals(p.Depositor)

	switch {
	case !isPermissioned && !isDepositor:
		// Kick: only while Blocked by root/state-toggler, or while Destroying.
		if !p.CanKick(caller) && !p.IsDestroying() {
			return ErrNotKickerOrDestroying()
		}
	case isPermissioned && !isDepositor:
		// Any non-depositor delegator may always unbond themselves.
	default:
		// The depositor, whether self-unbonding or kicked, can only leave
		// once they are the pool's sole remaining delegator and the pool
		// is being torn down.
		if !targetDelegator.Points.Equal(p.Points) {
			return ErrNotOnlyDelegator()
		}
		if !p.IsDestroying() {
			return ErrNotDestroying()
		}
	}
	return nil
}

// OkToWithdrawUnbondedOtherWith implements the withdraw permission check of
// spec.md §4.5. It returns whether the pool should be torn down once this
// withdrawal completes (true only for the depositor's final withdrawal).
func (p BondedPool) OkToWithdrawUnbondedOtherWith(caller, target sdk.AccAddress, targetDelegator Delegator, subPools SubPools) (bool, sdk.Error) {
	if target.Equals(p.Depositor) {
		if !subPools.NoEra.Points.IsZero() {
			if len(subPools.WithEra) != 0 {
				return false, ErrNotOnlyDelegator()
			}
			if !subPools.NoEra.Points.Equal(targetDelegator.Points) {
				return false, ErrNotOnlyDelegator()
			}
		} else {
			if len(subPools.WithEra) != 1 {
				return false, ErrNotOnlyDelegator()
			}
			for _, only := range subPools.WithEra {
				if !only.Points.Equal(targetDelegator.Points) {
					return false, ErrNotOnlyDelegator()
				}
			}
		}
		return true, nil
	}

	isPermissioned := caller.Equals(target)
	if !isPermissioned && !p.CanKick(caller) && !p.IsDestroying() {
		return false, ErrNotKickerOrDestroying()
	}
	return false, nil
}
