package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	params "github.com/cosmos/cosmos-sdk/x/params/subspace"
)

// Parameter store keys, one per configuration knob of spec.md §6.
var (
	KeyMinJoinBond              = []byte("MinJoinBond")
	KeyMinCreateBond            = []byte("MinCreateBond")
	KeyMaxPools                 = []byte("MaxPools")
	KeyPoolSizeMax               = []byte("PoolSizeMax")
	KeyPostUnbondingPoolsWindow = []byte("PostUnbondingPoolsWindow")
)

// Params holds the module's tunable configuration, the same four knobs
// spec.md §6 names (plus MaxPools, also named there as an optional cap).
type Params struct {
	// MinJoinBond is the minimum amount a joiner must bond.
	MinJoinBond sdk.Int `json:"min_join_bond"`

	// MinCreateBond is the minimum amount a depositor must bond to create a
	// pool.
	MinCreateBond sdk.Int `json:"min_create_bond"`

	// MaxPools caps the number of pools that may exist. Zero means
	// unbounded.
	MaxPools uint32 `json:"max_pools"`

	// PoolSizeMax bounds how large a single pool's bonded balance may grow,
	// expressed as MaxBalance/PoolSizeMax (spec.md §4.3 "OkToJoinWith").
	PoolSizeMax uint32 `json:"pool_size_max"`

	// PostUnbondingPoolsWindow extends the unbonding-sub-pool retention
	// window beyond the staking subsystem's own bonding duration (spec.md
	// §4.2: W = bonding_duration + PostUnbondingPoolsWindow).
	PostUnbondingPoolsWindow uint64 `json:"post_unbonding_pools_window"`
}

// NewParams constructs a Params value.
func NewParams(minJoinBond, minCreateBond sdk.Int, maxPools, poolSizeMax uint32, postUnbondingPoolsWindow uint64) Params {
	return Params{
		MinJoinBond:              minJoinBond,
		MinCreateBond:            minCreateBond,
		MaxPools:                 maxPools,
		PoolSizeMax:              poolSizeMax,
		PostUnbondingPoolsWindow: postUnbondingPoolsWindow,
	}
}

// DefaultParams returns sane defaults for a fresh chain.
func DefaultParams() Params {
	return NewParams(sdk.NewInt(1), sdk.NewInt(1_000_000), 0, 100, 10)
}

// ParamKeyTable returns the key table for this module's parameter subspace.
func ParamKeyTable() params.KeyTable {
	return params.NewKeyTable().RegisterParamSet(&Params{})
}

// ParamSetPairs implements params.ParamSet so Params can be registered with
// a subspace, the same way cosmos-sdk modules register their own Params.
func (p *Params) ParamSetPairs() params.ParamSetPairs {
	return params.ParamSetPairs{
		{Key: KeyMinJoinBond, Value: &p.MinJoinBond, ValidatorFn: validateBond},
		{Key: KeyMinCreateBond, Value: &p.MinCreateBond, ValidatorFn: validateBond},
		{Key: KeyMaxPools, Value: &p.MaxPools, ValidatorFn: validateUint32},
		{Key: KeyPoolSizeMax, Value: &p.PoolSizeMax, ValidatorFn: validatePoolSizeMax},
		{Key: KeyPostUnbondingPoolsWindow, Value: &p.PostUnbondingPoolsWindow, ValidatorFn: validateUint64},
	}
}

// Validate checks that the full Params value is internally consistent.
func (p Params) Validate() error {
	if err := validateBond(p.MinJoinBond); err != nil {
		return err
	}
	if err := validateBond(p.MinCreateBond); err != nil {
		return err
	}
	if err := validatePoolSizeMax(p.PoolSizeMax); err != nil {
		return err
	}
	return nil
}

func validateBond(i interface{}) error {
	v, ok := i.(sdk.Int)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v.IsNil() || v.IsNegative() {
		return fmt.Errorf("bond minimum must be non-negative: %s", v)
	}
	return nil
}

func validatePoolSizeMax(i interface{}) error {
	v, ok := i.(uint32)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v == 0 {
		return fmt.Errorf("pool size max must be positive")
	}
	return nil
}

func validateUint32(i interface{}) error {
	if _, ok := i.(uint32); !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return nil
}

func validateUint64(i interface{}) error {
	if _, ok := i.(uint64); !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return nil
}
