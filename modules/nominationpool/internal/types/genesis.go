package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PoolRecord bundles one pool's full on-chain state for genesis
// import/export.
type PoolRecord struct {
	Bonded     BondedPool           `json:"bonded_pool"`
	Reward     RewardPool           `json:"reward_pool"`
	SubPools   SubPools             `json:"sub_pools"`
	Delegators map[string]Delegator `json:"delegators"`
}

// GenesisState is the full exported/imported state of the module.
type GenesisState struct {
	Params Params       `json:"params"`
	Pools  []PoolRecord `json:"pools"`
}

// NewGenesisState constructs a GenesisState.
func NewGenesisState(params Params, pools []PoolRecord) GenesisState {
	return GenesisState{Params: params, Pools: pools}
}

// DefaultGenesisState returns the genesis state of a chain with no pools
// yet created.
func DefaultGenesisState() GenesisState {
	return NewGenesisState(DefaultParams(), []PoolRecord{})
}

// ValidateGenesis checks internal consistency of the imported state: the
// module's own params, and that every pool's bonded points match the sum of
// its delegators' points (spec.md §8 invariant 1).
func ValidateGenesis(data GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return err
	}
	for _, pool := range data.Pools {
		sum := sdk.ZeroInt()
		for _, d := range pool.Delegators {
			if d.IsUnbonding() {
				continue
			}
			sum = sum.Add(d.Points)
		}
		if !sum.Equal(pool.Bonded.Points) {
			return fmt.Errorf("pool %s: delegator points %s do not sum to bonded points %s", pool.Bonded.Account, sum, pool.Bonded.Points)
		}
	}
	return nil
}
