package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Querier route paths.
const (
	QueryPool      = "pool"
	QueryDelegator = "delegator"
	QuerySubPools  = "sub-pools"
	QueryParams    = "params"
)

// QueryPoolParams is the request payload for QueryPool.
type QueryPoolParams struct {
	Pool sdk.AccAddress `json:"pool"`
}

// QueryPoolResponse is the response payload for QueryPool.
type QueryPoolResponse struct {
	Bonded BondedPool `json:"bonded_pool"`
	Reward RewardPool `json:"reward_pool"`
}

// QueryDelegatorParams is the request payload for QueryDelegator.
type QueryDelegatorParams struct {
	Delegator sdk.AccAddress `json:"delegator"`
}

// QueryDelegatorResponse is the response payload for QueryDelegator.
type QueryDelegatorResponse struct {
	Delegator Delegator `json:"delegator"`
}

// QuerySubPoolsParams is the request payload for QuerySubPools.
type QuerySubPoolsParams struct {
	Pool sdk.AccAddress `json:"pool"`
}

// QuerySubPoolsResponse is the response payload for QuerySubPools.
type QuerySubPoolsResponse struct {
	SubPools SubPools `json:"sub_pools"`
}
