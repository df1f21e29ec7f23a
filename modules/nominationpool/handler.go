package nominationpool

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/keeper"
	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// NewHandler dispatches the module's Msg types to the keeper operation they
// name, the same switch-on-concrete-type shape `distributionx.NewHandler`
// and `modules/asset.NewHandler` use.
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case types.MsgCreate:
			return handleMsgCreate(ctx, k, msg)
		case types.MsgJoin:
			return handleMsgJoin(ctx, k, msg)
		case types.MsgClaimPayout:
			return handleMsgClaimPayout(ctx, k, msg)
		case types.MsgUnbond:
			return handleMsgUnbond(ctx, k, msg)
		case types.MsgPoolWithdrawUnbonded:
			return handleMsgPoolWithdrawUnbonded(ctx, k, msg)
		case types.MsgWithdrawUnbonded:
			return handleMsgWithdrawUnbonded(ctx, k, msg)
		case types.MsgNominate:
			return handleMsgNominate(ctx, k, msg)
		case types.MsgSetState:
			return handleMsgSetState(ctx, k, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized nominationpool Msg type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgCreate(ctx sdk.Context, k keeper.Keeper, msg types.MsgCreate) sdk.Result {
	pool, err := k.Create(ctx, msg.Depositor, msg.Amount)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: sdk.NewTags(
			types.TagKeyPool, pool.String(),
			types.TagKeyDepositor, msg.Depositor.String(),
		),
	}
}

func handleMsgJoin(ctx sdk.Context, k keeper.Keeper, msg types.MsgJoin) sdk.Result {
	if err := k.Join(ctx, msg.Delegator, msg.Pool, msg.Amount); err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: sdk.NewTags(
			types.TagKeyPool, msg.Pool.String(),
			types.TagKeyDelegator, msg.Delegator.String(),
		),
	}
}

func handleMsgClaimPayout(ctx sdk.Context, k keeper.Keeper, msg types.MsgClaimPayout) sdk.Result {
	payout, err := k.ClaimPayout(ctx, msg.Delegator)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: sdk.NewTags(
			types.TagKeyDelegator, msg.Delegator.String(),
			types.TagKeyAmount, payout.String(),
		),
	}
}

func handleMsgUnbond(ctx sdk.Context, k keeper.Keeper, msg types.MsgUnbond) sdk.Result {
	if err := k.UnbondOther(ctx, msg.Caller, msg.Target); err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: sdk.NewTags(
			types.TagKeyCaller, msg.Caller.String(),
			types.TagKeyTarget, msg.Target.String(),
		),
	}
}

func handleMsgPoolWithdrawUnbonded(ctx sdk.Context, k keeper.Keeper, msg types.MsgPoolWithdrawUnbonded) sdk.Result {
	if err := k.PoolWithdrawUnbonded(ctx, msg.Pool, 0); err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: sdk.NewTags(types.TagKeyPool, msg.Pool.String()),
	}
}

func handleMsgWithdrawUnbonded(ctx sdk.Context, k keeper.Keeper, msg types.MsgWithdrawUnbonded) sdk.Result {
	out, err := k.WithdrawUnbondedOther(ctx, msg.Caller, msg.Target)
	if err != nil {
		return err.Result()
	}
	tags := sdk.NewTags(
		types.TagKeyTarget, msg.Target.String(),
		types.TagKeyAmount, out.Balance.String(),
	)
	if out.TornDown {
		tags = tags.AppendTag(types.TagKeyPoolTornDown, "true")
	}
	if out.DustWithdrawn {
		tags = tags.AppendTag(types.TagKeyDustWithdrawn, "true")
	}
	return sdk.Result{Tags: tags}
}

func handleMsgNominate(ctx sdk.Context, k keeper.Keeper, msg types.MsgNominate) sdk.Result {
	if err := k.Nominate(ctx, msg.Caller, msg.Pool, msg.Validators); err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: sdk.NewTags(types.TagKeyPool, msg.Pool.String()),
	}
}

func handleMsgSetState(ctx sdk.Context, k keeper.Keeper, msg types.MsgSetState) sdk.Result {
	if err := k.SetState(ctx, msg.Caller, msg.Pool, msg.NewState); err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: sdk.NewTags(
			types.TagKeyPool, msg.Pool.String(),
			types.TagKeyNewState, msg.NewState.String(),
		),
	}
}
