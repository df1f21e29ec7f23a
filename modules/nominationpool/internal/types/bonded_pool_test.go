package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func addr(b byte) sdk.AccAddress {
	return sdk.AccAddress([]byte{b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b})
}

func newTestPool(state PoolState) BondedPool {
	depositor := addr(1)
	return BondedPool{
		Account:      addr(0),
		Points:       sdk.NewInt(100),
		Depositor:    depositor,
		Root:         depositor,
		Nominator:    depositor,
		StateToggler: depositor,
		State:        state,
	}
}

func TestOkToJoinWithRejectsClosedPool(t *testing.T) {
	p := newTestPool(PoolBlocked)
	err := p.OkToJoinWith(sdk.NewInt(100), sdk.NewInt(10), 100)
	require.Equal(t, CodeNotOpen, err.Code())
}

func TestOkToJoinWithRejectsZeroBalance(t *testing.T) {
	p := newTestPool(PoolOpen)
	err := p.OkToJoinWith(sdk.ZeroInt(), sdk.NewInt(10), 100)
	require.Equal(t, CodeOverflowRisk, err.Code())
}

func TestOkToJoinWithRejectsInflatedRatio(t *testing.T) {
	p := newTestPool(PoolOpen)
	p.Points = sdk.NewInt(1000)
	// points/balance ratio of 1000/1 = 1000 >= poolSizeMax of 10.
	err := p.OkToJoinWith(sdk.NewInt(1), sdk.NewInt(1), 10)
	require.Equal(t, CodeOverflowRisk, err.Code())
}

func TestOkToJoinWithAcceptsHealthyPool(t *testing.T) {
	p := newTestPool(PoolOpen)
	err := p.OkToJoinWith(sdk.NewInt(100), sdk.NewInt(10), 100)
	require.Nil(t, err)
}

func TestOkToUnbondOtherWithSelfUnbondAlwaysAllowed(t *testing.T) {
	p := newTestPool(PoolOpen)
	member := addr(2)
	d := NewBondedDelegator(p.Account, sdk.NewInt(10), sdk.ZeroInt())
	err := p.OkToUnbondOtherWith(member, member, d)
	require.Nil(t, err)
}

func TestOkToUnbondOtherWithKickRequiresBlockedOrDestroying(t *testing.T) {
	p := newTestPool(PoolOpen)
	member := addr(2)
	d := NewBondedDelegator(p.Account, sdk.NewInt(10), sdk.ZeroInt())
	err := p.OkToUnbondOtherWith(p.Root, member, d)
	require.Equal(t, CodeNotKickerOrDestroying, err.Code())

	p.State = PoolBlocked
	err = p.OkToUnbondOtherWith(p.Root, member, d)
	require.Nil(t, err)
}

func TestOkToUnbondOtherWithDepositorMustBeSoleDelegatorAndDestroying(t *testing.T) {
	p := newTestPool(PoolOpen)
	d := NewBondedDelegator(p.Account, sdk.NewInt(50), sdk.ZeroInt())

	err := p.OkToUnbondOtherWith(p.Depositor, p.Depositor, d)
	require.Equal(t, CodeNotOnlyDelegator, err.Code())

	d.Points = p.Points
	err = p.OkToUnbondOtherWith(p.Depositor, p.Depositor, d)
	require.Equal(t, CodeNotDestroying, err.Code())

	p.State = PoolDestroying
	err = p.OkToUnbondOtherWith(p.Depositor, p.Depositor, d)
	require.Nil(t, err)
}

func TestOkToWithdrawUnbondedOtherWithDepositorFinalWithdrawTearsDownPool(t *testing.T) {
	p := newTestPool(PoolDestroying)
	d := NewBondedDelegator(p.Account, sdk.NewInt(100), sdk.ZeroInt())

	sp := NewSubPools()
	sp.WithEra[3] = UnbondPool{Points: sdk.NewInt(100), Balance: sdk.NewInt(100)}

	teardown, err := p.OkToWithdrawUnbondedOtherWith(p.Depositor, p.Depositor, d, sp)
	require.Nil(t, err)
	require.True(t, teardown)
}

func TestOkToWithdrawUnbondedOtherWithDepositorBlockedByOtherSubPools(t *testing.T) {
	p := newTestPool(PoolDestroying)
	d := NewBondedDelegator(p.Account, sdk.NewInt(60), sdk.ZeroInt())

	sp := NewSubPools()
	sp.WithEra[3] = UnbondPool{Points: sdk.NewInt(60), Balance: sdk.NewInt(60)}
	sp.WithEra[4] = UnbondPool{Points: sdk.NewInt(40), Balance: sdk.NewInt(40)}

	_, err := p.OkToWithdrawUnbondedOtherWith(p.Depositor, p.Depositor, d, sp)
	require.Equal(t, CodeNotOnlyDelegator, err.Code())
}
