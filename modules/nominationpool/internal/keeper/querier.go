package keeper

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

// NewQuerier builds the sdk.Querier for this module's four reads, the same
// switch-on-path shape `modules/market/internal/keepers.NewQuerier` uses.
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
		switch path[0] {
		case types.QueryPool:
			return queryPool(ctx, req, k)
		case types.QueryDelegator:
			return queryDelegator(ctx, req, k)
		case types.QuerySubPools:
			return querySubPools(ctx, req, k)
		case types.QueryParams:
			return queryParams(ctx, k)
		default:
			return nil, sdk.ErrUnknownRequest("unknown nominationpool query path: " + path[0])
		}
	}
}

func queryPool(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryPoolParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}

	bonded, ok := k.GetBondedPool(ctx, params.Pool)
	if !ok {
		return nil, types.ErrPoolNotFound()
	}
	reward, ok := k.GetRewardPool(ctx, params.Pool)
	if !ok {
		return nil, types.ErrRewardPoolNotFound()
	}

	bz, err := codec.MarshalJSONIndent(k.cdc, types.QueryPoolResponse{Bonded: bonded, Reward: reward})
	if err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}
	return bz, nil
}

func queryDelegator(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryDelegatorParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}

	d, ok := k.GetDelegator(ctx, params.Delegator)
	if !ok {
		return nil, types.ErrDelegatorNotFound()
	}

	bz, err := codec.MarshalJSONIndent(k.cdc, types.QueryDelegatorResponse{Delegator: d})
	if err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}
	return bz, nil
}

func querySubPools(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QuerySubPoolsParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}

	sp, ok := k.GetSubPools(ctx, params.Pool)
	if !ok {
		return nil, types.ErrSubPoolsNotFound()
	}

	bz, err := codec.MarshalJSONIndent(k.cdc, types.QuerySubPoolsResponse{SubPools: sp})
	if err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}
	return bz, nil
}

func queryParams(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(k.cdc, k.GetParams(ctx))
	if err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}
	return bz, nil
}
