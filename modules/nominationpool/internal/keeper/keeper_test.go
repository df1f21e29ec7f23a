package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/params"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// fakeStakingKeeper is a bare in-memory stand-in for the real staking
// subsystem, the same role `fakeAssetStatusKeeper` plays in the teacher's
// own keeper tests: enough behavior to drive the pool engine, nothing more.
type fakeStakingKeeper struct {
	bonded          map[string]sdk.Int
	era             uint64
	bondingDuration uint64
	minimumBond     sdk.Int
}

func newFakeStakingKeeper() *fakeStakingKeeper {
	return &fakeStakingKeeper{
		bonded:          map[string]sdk.Int{},
		era:             0,
		bondingDuration: 3,
		minimumBond:     sdk.NewInt(1),
	}
}

func (f *fakeStakingKeeper) Bond(ctx sdk.Context, stash, controller, rewardDest sdk.AccAddress, amount sdk.Int) sdk.Error {
	f.bonded[stash.String()] = amount
	return nil
}

func (f *fakeStakingKeeper) BondExtra(ctx sdk.Context, stash, from sdk.AccAddress, amount sdk.Int) sdk.Error {
	cur := f.bonded[stash.String()]
	f.bonded[stash.String()] = cur.Add(amount)
	return nil
}

func (f *fakeStakingKeeper) Unbond(ctx sdk.Context, stash sdk.AccAddress, amount sdk.Int) sdk.Error {
	cur := f.bonded[stash.String()]
	f.bonded[stash.String()] = cur.Sub(amount)
	return nil
}

func (f *fakeStakingKeeper) WithdrawUnbonded(ctx sdk.Context, stash sdk.AccAddress, numSlashingSpans uint32) sdk.Error {
	return nil
}

func (f *fakeStakingKeeper) Nominate(ctx sdk.Context, stash sdk.AccAddress, validators []sdk.ValAddress) sdk.Error {
	return nil
}

func (f *fakeStakingKeeper) BondedBalance(ctx sdk.Context, stash sdk.AccAddress) (sdk.Int, bool) {
	amount, ok := f.bonded[stash.String()]
	return amount, ok
}

func (f *fakeStakingKeeper) CurrentEra(ctx sdk.Context) (uint64, bool) {
	return f.era, true
}

func (f *fakeStakingKeeper) BondingDuration(ctx sdk.Context) uint64 {
	return f.bondingDuration
}

func (f *fakeStakingKeeper) MinimumBond(ctx sdk.Context) sdk.Int {
	return f.minimumBond
}

var _ types.StakingKeeper = (*fakeStakingKeeper)(nil)

// fakeBankKeeper is a bare in-memory free-balance ledger.
type fakeBankKeeper struct {
	balances map[string]sdk.Int
}

func newFakeBankKeeper() *fakeBankKeeper {
	return &fakeBankKeeper{balances: map[string]sdk.Int{}}
}

func (f *fakeBankKeeper) FreeBalance(ctx sdk.Context, addr sdk.AccAddress) sdk.Int {
	if amount, ok := f.balances[addr.String()]; ok {
		return amount
	}
	return sdk.ZeroInt()
}

func (f *fakeBankKeeper) Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int, keepAlive bool) sdk.Error {
	f.balances[from.String()] = f.FreeBalance(ctx, from).Sub(amount)
	f.balances[to.String()] = f.FreeBalance(ctx, to).Add(amount)
	return nil
}

func (f *fakeBankKeeper) MakeFreeBalanceBe(ctx sdk.Context, addr sdk.AccAddress, amount sdk.Int) {
	f.balances[addr.String()] = amount
}

var _ types.BankKeeper = (*fakeBankKeeper)(nil)

type testInput struct {
	ctx     sdk.Context
	keeper  Keeper
	staking *fakeStakingKeeper
	bank    *fakeBankKeeper
}

func setupTestInput() testInput {
	cdc := codec.New()
	storeKey := sdk.NewKVStoreKey("nominationpool_test")
	paramsKey := sdk.NewKVStoreKey("params_test")
	tParamsKey := sdk.NewTransientStoreKey("transient_params_test")

	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db)
	cms.MountStoreWithDB(storeKey, sdk.StoreTypeIAVL, db)
	cms.MountStoreWithDB(paramsKey, sdk.StoreTypeIAVL, db)
	cms.MountStoreWithDB(tParamsKey, sdk.StoreTypeTransient, db)
	_ = cms.LoadLatestVersion()

	ctx := sdk.NewContext(cms, abci.Header{}, false, log.NewNopLogger())

	paramsKeeper := params.NewKeeper(cdc, paramsKey, tParamsKey, params.DefaultCodespace)
	subspace := paramsKeeper.Subspace(types.DefaultParamspace)

	stakingKeeper := newFakeStakingKeeper()
	bankKeeper := newFakeBankKeeper()
	k := NewKeeper(cdc, storeKey, subspace, stakingKeeper, bankKeeper)
	testParams := types.DefaultParams()
	testParams.MinCreateBond = sdk.NewInt(1)
	k.SetParams(ctx, testParams)

	return testInput{ctx: ctx, keeper: k, staking: stakingKeeper, bank: bankKeeper}
}

func newAddr(b byte) sdk.AccAddress {
	raw := make([]byte, sdk.AddrLen)
	raw[sdk.AddrLen-1] = b
	return sdk.AccAddress(raw)
}

func TestCreateThenJoinSplitsPointsByContribution(t *testing.T) {
	in := setupTestInput()
	depositor := newAddr(1)
	joiner := newAddr(2)

	pool, err := in.keeper.Create(in.ctx, depositor, sdk.NewInt(1000))
	require.Nil(t, err)

	bondedPool, ok := in.keeper.GetBondedPool(in.ctx, pool)
	require.True(t, ok)
	require.True(t, bondedPool.Points.Equal(sdk.NewInt(1000)))

	joinErr := in.keeper.Join(in.ctx, joiner, pool, sdk.NewInt(500))
	require.Nil(t, joinErr)

	bondedPool, ok = in.keeper.GetBondedPool(in.ctx, pool)
	require.True(t, ok)
	require.True(t, bondedPool.Points.Equal(sdk.NewInt(1500)))

	joinerDelegator, ok := in.keeper.GetDelegator(in.ctx, joiner)
	require.True(t, ok)
	require.True(t, joinerDelegator.Points.Equal(sdk.NewInt(500)))
}

func TestClaimPayoutSplitsProRataByPoints(t *testing.T) {
	in := setupTestInput()
	depositor := newAddr(1)
	joiner := newAddr(2)

	pool, err := in.keeper.Create(in.ctx, depositor, sdk.NewInt(1000))
	require.Nil(t, err)
	require.Nil(t, in.keeper.Join(in.ctx, joiner, pool, sdk.NewInt(1000)))

	rewardPool, ok := in.keeper.GetRewardPool(in.ctx, pool)
	require.True(t, ok)
	in.bank.balances[rewardPool.Account.String()] = sdk.NewInt(200)

	depositorPayout, err := in.keeper.ClaimPayout(in.ctx, depositor)
	require.Nil(t, err)
	require.True(t, depositorPayout.Equal(sdk.NewInt(100)), "expected even split, got %s", depositorPayout)

	joinerPayout, err := in.keeper.ClaimPayout(in.ctx, joiner)
	require.Nil(t, err)
	require.True(t, joinerPayout.Equal(sdk.NewInt(100)), "expected even split, got %s", joinerPayout)
}

func TestUnbondThenWithdrawReturnsBalance(t *testing.T) {
	in := setupTestInput()
	depositor := newAddr(1)
	joiner := newAddr(2)

	pool, err := in.keeper.Create(in.ctx, depositor, sdk.NewInt(1000))
	require.Nil(t, err)
	require.Nil(t, in.keeper.Join(in.ctx, joiner, pool, sdk.NewInt(1000)))

	require.Nil(t, in.keeper.UnbondOther(in.ctx, joiner, joiner))

	d, ok := in.keeper.GetDelegator(in.ctx, joiner)
	require.True(t, ok)
	require.True(t, d.IsUnbonding())

	// Not matured yet.
	_, err = in.keeper.WithdrawUnbondedOther(in.ctx, joiner, joiner)
	require.NotNil(t, err)

	in.staking.era += in.staking.bondingDuration

	// Simulate the staking engine releasing the matured unbond into the
	// pool stash's free balance ahead of the withdrawal claim.
	in.bank.balances[pool.String()] = sdk.NewInt(1000)

	out, err := in.keeper.WithdrawUnbondedOther(in.ctx, joiner, joiner)
	require.Nil(t, err)
	require.False(t, out.TornDown)
	require.False(t, out.DustWithdrawn)
	require.True(t, out.Balance.Equal(sdk.NewInt(1000)), "expected full principal back, got %s", out.Balance)

	_, stillDelegator := in.keeper.GetDelegator(in.ctx, joiner)
	require.False(t, stillDelegator)
}

func TestDepositorLastWithdrawalTearsDownPool(t *testing.T) {
	in := setupTestInput()
	depositor := newAddr(1)

	pool, err := in.keeper.Create(in.ctx, depositor, sdk.NewInt(1000))
	require.Nil(t, err)

	require.Nil(t, in.keeper.SetState(in.ctx, depositor, pool, types.PoolDestroying))
	require.Nil(t, in.keeper.UnbondOther(in.ctx, depositor, depositor))

	in.staking.era += in.staking.bondingDuration
	in.bank.balances[pool.String()] = sdk.NewInt(1000)

	out, err := in.keeper.WithdrawUnbondedOther(in.ctx, depositor, depositor)
	require.Nil(t, err)
	require.True(t, out.TornDown)

	_, stillExists := in.keeper.GetBondedPool(in.ctx, pool)
	require.False(t, stillExists)
}

func TestSlashPoolDistributesAcrossActiveAndUnbonding(t *testing.T) {
	in := setupTestInput()
	depositor := newAddr(1)
	joiner := newAddr(2)

	pool, err := in.keeper.Create(in.ctx, depositor, sdk.NewInt(1000))
	require.Nil(t, err)
	require.Nil(t, in.keeper.Join(in.ctx, joiner, pool, sdk.NewInt(1000)))

	// The infraction is recorded at era 0; the delegator only starts
	// unbonding afterward, at era 1, so their sub-pool falls inside the
	// (slash_era, apply_era] window the slash is applied against.
	slashEra := in.staking.era
	in.staking.era++
	require.Nil(t, in.keeper.UnbondOther(in.ctx, joiner, joiner))

	out, ok := in.keeper.SlashPool(in.ctx, types.SlashPoolArgs{
		PoolStash:    pool,
		SlashAmount:  sdk.NewInt(200),
		SlashEra:     slashEra,
		ApplyEra:     in.staking.era,
		ActiveBonded: sdk.NewInt(1000),
	})
	require.True(t, ok)
	// 200 slashed pro-rata across 2000 total affected stake (1000 still
	// bonded, 1000 unbonding) is a 10% factor; SlashedBonded/SlashedUnlocking
	// carry the resulting balances, not the removed deltas.
	require.True(t, out.SlashedBonded.Equal(sdk.NewInt(900)), "expected bonded balance after a 10%% cut, got %s", out.SlashedBonded)

	var totalUnlockingRemaining sdk.Int = sdk.ZeroInt()
	for _, amt := range out.SlashedUnlocking {
		totalUnlockingRemaining = totalUnlockingRemaining.Add(amt)
	}
	require.True(t, totalUnlockingRemaining.Equal(sdk.NewInt(900)), "expected unbonding balance after a 10%% cut, got %s", totalUnlockingRemaining)
}

func TestWithdrawUnbondedOtherAgainstDustedPoolSkipsTransfer(t *testing.T) {
	in := setupTestInput()
	depositor := newAddr(1)
	joiner := newAddr(2)

	pool, err := in.keeper.Create(in.ctx, depositor, sdk.NewInt(1000))
	require.Nil(t, err)
	require.Nil(t, in.keeper.Join(in.ctx, joiner, pool, sdk.NewInt(1000)))
	require.Nil(t, in.keeper.UnbondOther(in.ctx, joiner, joiner))

	in.staking.era += in.staking.bondingDuration

	// A prior call already drained the pool stash below what this
	// delegator's sub-pool ledger still promises them.
	in.bank.balances[pool.String()] = sdk.ZeroInt()

	out, err := in.keeper.WithdrawUnbondedOther(in.ctx, joiner, joiner)
	require.Nil(t, err)
	require.True(t, out.DustWithdrawn)
	require.True(t, out.Balance.IsZero(), "expected no transfer against a dusted pool, got %s", out.Balance)

	_, stillDelegator := in.keeper.GetDelegator(in.ctx, joiner)
	require.False(t, stillDelegator, "delegator record must still be removed so pool reaping keeps moving")
}
