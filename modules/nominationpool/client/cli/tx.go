package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/cosmos/cosmos-sdk/x/auth/client/utils"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// GetTxCmd aggregates the module's transaction subcommands, the same way
// `asset.GetTxCmd` does.
func GetTxCmd(cdc *codec.Codec) *cobra.Command {
	txCmd := &cobra.Command{
		Use:   types.ModuleName,
		Short: "Nomination pool transactions subcommands",
	}

	txCmd.AddCommand(client.PostCommands(
		CreateCmd(cdc),
		JoinCmd(cdc),
		ClaimPayoutCmd(cdc),
		UnbondCmd(cdc),
		PoolWithdrawUnbondedCmd(cdc),
		WithdrawUnbondedCmd(cdc),
		NominateCmd(cdc),
		SetStateCmd(cdc),
	)...)

	return txCmd
}

func CreateCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "create [amount]",
		Short: "Create a new nomination pool, bonding amount and becoming its depositor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			amount, ok := sdk.NewIntFromString(args[0])
			if !ok {
				return sdk.ErrInvalidCoins("invalid amount: " + args[0])
			}
			msg := types.NewMsgCreate(cliCtx.GetFromAddress(), amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			txBldr := auth.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

func JoinCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "join [pool] [amount]",
		Short: "Bond amount into an existing nomination pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			pool, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			amount, ok := sdk.NewIntFromString(args[1])
			if !ok {
				return sdk.ErrInvalidCoins("invalid amount: " + args[1])
			}
			msg := types.NewMsgJoin(cliCtx.GetFromAddress(), pool, amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			txBldr := auth.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

func ClaimPayoutCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "claim-payout",
		Short: "Claim the caller's share of their pool's accrued rewards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			msg := types.NewMsgClaimPayout(cliCtx.GetFromAddress())
			txBldr := auth.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

func UnbondCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "unbond [target]",
		Short: "Begin unbonding target's full stake (self-unbond if target is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			caller := cliCtx.GetFromAddress()
			target := caller
			if len(args) == 1 {
				var err error
				target, err = sdk.AccAddressFromBech32(args[0])
				if err != nil {
					return err
				}
			}
			msg := types.NewMsgUnbond(caller, target)
			txBldr := auth.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

func PoolWithdrawUnbondedCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "pool-withdraw-unbonded [pool]",
		Short: "Release a pool's fully matured unlocking chunks back to its stash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			pool, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			msg := types.NewMsgPoolWithdrawUnbonded(cliCtx.GetFromAddress(), pool)
			txBldr := auth.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

func WithdrawUnbondedCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-unbonded [target]",
		Short: "Pay out target's matured sub-pool balance (self-withdraw if target is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			caller := cliCtx.GetFromAddress()
			target := caller
			if len(args) == 1 {
				var err error
				target, err = sdk.AccAddressFromBech32(args[0])
				if err != nil {
					return err
				}
			}
			msg := types.NewMsgWithdrawUnbonded(caller, target)
			txBldr := auth.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

func NominateCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "nominate [pool] [validator1,validator2,...]",
		Short: "Forward a validator list to staking on behalf of a pool's stash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			pool, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			valStrs := strings.Split(args[1], ",")
			validators := make([]sdk.ValAddress, len(valStrs))
			for i, s := range valStrs {
				v, err := sdk.ValAddressFromBech32(s)
				if err != nil {
					return err
				}
				validators[i] = v
			}
			msg := types.NewMsgNominate(cliCtx.GetFromAddress(), pool, validators)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			txBldr := auth.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

func SetStateCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "set-state [pool] [open|blocked|destroying]",
		Short: "Toggle a pool's lifecycle state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			pool, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			state, err := parsePoolState(args[1])
			if err != nil {
				return err
			}
			msg := types.NewMsgSetState(cliCtx.GetFromAddress(), pool, state)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			txBldr := auth.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

func parsePoolState(s string) (types.PoolState, error) {
	switch strings.ToLower(s) {
	case "open":
		return types.PoolOpen, nil
	case "blocked":
		return types.PoolBlocked, nil
	case "destroying":
		return types.PoolDestroying, nil
	default:
		if n, err := strconv.Atoi(s); err == nil {
			return types.PoolState(n), nil
		}
		return 0, sdk.ErrUnknownRequest("unknown pool state: " + s)
	}
}
