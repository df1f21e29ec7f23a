package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestPointsToIssue(t *testing.T) {
	cases := []struct {
		name                          string
		balance, points, newFunds     int64
		want                          int64
	}{
		{"first joiner mints at InitRatio", 0, 0, 10, 10},
		{"zero balance but existing points mints 1:1 with points", 0, 5, 10, 50},
		{"steady ratio", 100, 100, 50, 50},
		{"inflated ratio after a slash", 50, 100, 10, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := PointsToIssue(sdk.NewInt(c.balance), sdk.NewInt(c.points), sdk.NewInt(c.newFunds))
			require.Equal(t, sdk.NewInt(c.want).String(), got.String())
		})
	}
}

func TestBalanceToUnbond(t *testing.T) {
	cases := []struct {
		name                                 string
		balance, points, delegatorPoints int64
		want                                 int64
	}{
		{"empty pool redeems nothing", 0, 0, 10, 0},
		{"zero delegator points redeems nothing", 100, 100, 0, 0},
		{"steady ratio", 100, 100, 50, 50},
		{"deflated ratio after a slash", 50, 100, 20, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := BalanceToUnbond(sdk.NewInt(c.balance), sdk.NewInt(c.points), sdk.NewInt(c.delegatorPoints))
			require.Equal(t, sdk.NewInt(c.want).String(), got.String())
		})
	}
}

func TestSaturatingAddClampsAtMaxBalance(t *testing.T) {
	got := SaturatingAdd(MaxBalance, sdk.NewInt(1))
	require.Equal(t, MaxBalance.String(), got.String())
}

func TestSaturatingSubClampsAtZero(t *testing.T) {
	got := SaturatingSub(sdk.NewInt(5), sdk.NewInt(10))
	require.True(t, got.IsZero())
}

func TestSaturatingMulClampsAtMaxBalance(t *testing.T) {
	got := SaturatingMul(MaxBalance, sdk.NewInt(2))
	require.Equal(t, MaxBalance.String(), got.String())
}

func TestU256RoundTripsSmallValues(t *testing.T) {
	v := sdk.NewInt(12345)
	require.Equal(t, v.String(), U256ToInt(IntToU256(v)).String())
}

func TestSaturatingMulU256ClampsAtUint256Max(t *testing.T) {
	max := new(uint256.Int).SetAllOne()
	got := SaturatingMulU256(max, IntToU256(sdk.NewInt(2)))
	require.Equal(t, max.String(), got.String())
}
