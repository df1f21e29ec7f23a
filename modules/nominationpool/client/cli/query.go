package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// GetQueryCmd aggregates the module's query subcommands, the same way
// `asset.GetQueryCmd` does.
func GetQueryCmd(cdc *codec.Codec) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   types.ModuleName,
		Short: "Nomination pool query subcommands",
	}

	queryCmd.AddCommand(client.GetCommands(
		QueryPoolCmd(cdc),
		QueryDelegatorCmd(cdc),
		QuerySubPoolsCmd(cdc),
		QueryParamsCmd(cdc),
	)...)

	return queryCmd
}

func QueryPoolCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "pool [pool]",
		Short: "Query a pool's bonded and reward state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			pool, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			bz, err := cdc.MarshalJSON(types.QueryPoolParams{Pool: pool})
			if err != nil {
				return err
			}
			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryPool)
			res, _, err := cliCtx.QueryWithData(route, bz)
			if err != nil {
				return err
			}
			return cliCtx.PrintOutput(res)
		},
	}
}

func QueryDelegatorCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "delegator [address]",
		Short: "Query a delegator's pool membership",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			bz, err := cdc.MarshalJSON(types.QueryDelegatorParams{Delegator: addr})
			if err != nil {
				return err
			}
			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryDelegator)
			res, _, err := cliCtx.QueryWithData(route, bz)
			if err != nil {
				return err
			}
			return cliCtx.PrintOutput(res)
		},
	}
}

func QuerySubPoolsCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "sub-pools [pool]",
		Short: "Query a pool's unbonding sub-pools",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			pool, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			bz, err := cdc.MarshalJSON(types.QuerySubPoolsParams{Pool: pool})
			if err != nil {
				return err
			}
			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QuerySubPools)
			res, _, err := cliCtx.QueryWithData(route, bz)
			if err != nil {
				return err
			}
			return cliCtx.PrintOutput(res)
		},
	}
}

func QueryParamsCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Query the module's current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryParams)
			res, _, err := cliCtx.QueryWithData(route, nil)
			if err != nil {
				return err
			}
			return cliCtx.PrintOutput(res)
		},
	}
}
