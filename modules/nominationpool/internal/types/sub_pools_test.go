package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestUnbondPoolIssue(t *testing.T) {
	pool := NewUnbondPool()
	issued := pool.Issue(sdk.NewInt(100))
	require.Equal(t, "100", issued.String())
	require.Equal(t, "100", pool.Balance.String())
	require.Equal(t, "100", pool.Points.String())

	issued = pool.Issue(sdk.NewInt(50))
	require.Equal(t, "50", issued.String())
	require.Equal(t, "150", pool.Balance.String())
	require.Equal(t, "150", pool.Points.String())
}

func TestMaybeMergePoolsBeforeWindowIsNoOp(t *testing.T) {
	sp := NewSubPools()
	sp.WithEra[3] = UnbondPool{Points: sdk.NewInt(10), Balance: sdk.NewInt(10)}

	sp = sp.MaybeMergePools(5, 10)

	require.Len(t, sp.WithEra, 1)
	require.True(t, sp.NoEra.Points.IsZero())
}

func TestMaybeMergePoolsEvictsAgedEras(t *testing.T) {
	sp := NewSubPools()
	sp.WithEra[1] = UnbondPool{Points: sdk.NewInt(10), Balance: sdk.NewInt(10)}
	sp.WithEra[5] = UnbondPool{Points: sdk.NewInt(20), Balance: sdk.NewInt(20)}
	sp.WithEra[11] = UnbondPool{Points: sdk.NewInt(30), Balance: sdk.NewInt(30)}

	// window=10, currentEra=12: anything at era<=2 is evicted.
	sp = sp.MaybeMergePools(12, 10)

	require.Len(t, sp.WithEra, 2)
	_, stillPresent := sp.WithEra[1]
	require.False(t, stillPresent)
	require.Equal(t, "10", sp.NoEra.Points.String())
	require.Equal(t, "10", sp.NoEra.Balance.String())
}

func TestUncheckedWithEraGetOrMakeCreatesZeroEntry(t *testing.T) {
	sp := NewSubPools()
	pool := sp.UncheckedWithEraGetOrMake(7)
	require.True(t, pool.Points.IsZero())
	_, ok := sp.WithEra[7]
	require.True(t, ok)
}

func TestRemoveWithEraIfDry(t *testing.T) {
	sp := NewSubPools()
	sp.WithEra[7] = UnbondPool{Points: sdk.ZeroInt(), Balance: sdk.ZeroInt()}
	sp.RemoveWithEraIfDry(7)
	_, ok := sp.WithEra[7]
	require.False(t, ok)

	sp.WithEra[8] = UnbondPool{Points: sdk.NewInt(1), Balance: sdk.NewInt(1)}
	sp.RemoveWithEraIfDry(8)
	_, ok = sp.WithEra[8]
	require.True(t, ok)
}
