package app

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/bank"
	"github.com/cosmos/cosmos-sdk/x/staking"

	nptypes "github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// BankAdapter implements nominationpool/internal/types.BankKeeper on top of
// a real x/bank.Keeper, the thin-wrapper style `modules/stakingx.Keeper`
// uses for its own dependencies.
type BankAdapter struct {
	bk bank.Keeper
	sk staking.Keeper
}

func NewBankAdapter(bk bank.Keeper, sk staking.Keeper) BankAdapter {
	return BankAdapter{bk: bk, sk: sk}
}

func (a BankAdapter) bondDenom(ctx sdk.Context) string {
	return a.sk.GetParams(ctx).BondDenom
}

func (a BankAdapter) FreeBalance(ctx sdk.Context, addr sdk.AccAddress) sdk.Int {
	return a.bk.GetCoins(ctx, addr).AmountOf(a.bondDenom(ctx))
}

// Transfer moves amount of the bond denom from `from` to `to`. When
// keepAlive is true the sender's post-transfer balance must stay above
// zero.
func (a BankAdapter) Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int, keepAlive bool) sdk.Error {
	denom := a.bondDenom(ctx)
	if keepAlive {
		remaining := a.bk.GetCoins(ctx, from).AmountOf(denom).Sub(amount)
		if !remaining.IsPositive() {
			return sdk.ErrInsufficientFunds("transfer would leave sender with zero balance")
		}
	}
	return a.bk.SendCoins(ctx, from, to, sdk.NewCoins(sdk.NewCoin(denom, amount)))
}

// MakeFreeBalanceBe forces addr's bond-denom balance to amount, used to
// zero out a torn-down pool's stash and reward accounts.
func (a BankAdapter) MakeFreeBalanceBe(ctx sdk.Context, addr sdk.AccAddress, amount sdk.Int) {
	denom := a.bondDenom(ctx)
	coins := a.bk.GetCoins(ctx, addr)
	others := sdk.NewCoins()
	for _, c := range coins {
		if c.Denom != denom {
			others = others.Add(sdk.NewCoins(c))
		}
	}
	a.bk.SetCoins(ctx, addr, others.Add(sdk.NewCoins(sdk.NewCoin(denom, amount))))
}

var _ nptypes.BankKeeper = BankAdapter{}
