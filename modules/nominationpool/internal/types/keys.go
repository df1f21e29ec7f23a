package types

const (
	// ModuleName is the name of the nomination pool module.
	ModuleName = "nominationpool"

	// StoreKey is the default store key for the module.
	StoreKey = ModuleName

	// RouterKey is the message route for the module.
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the module.
	QuerierRoute = ModuleName

	// DefaultParamspace is the default param space for the module's Params.
	DefaultParamspace = ModuleName
)

// KVStore key prefixes. Each prefix except PoolsCountKey is followed by an
// account address to form the full key; PoolsCountKey is a key on its own.
// This mirrors the teacher's single-prefix-byte
// convention (see modules/market's order/trading-pair key layout).
var (
	DelegatorKeyPrefix = []byte{0x01}
	BondedPoolKeyPrefix = []byte{0x02}
	RewardPoolKeyPrefix = []byte{0x03}
	SubPoolsKeyPrefix   = []byte{0x04}
	PoolsCountKey       = []byte{0x05}
)

// DelegatorKey returns the store key for a delegator's record.
func DelegatorKey(delegator []byte) []byte {
	return append(append([]byte{}, DelegatorKeyPrefix...), delegator...)
}

// BondedPoolKey returns the store key for a bonded pool's record.
func BondedPoolKey(poolAccount []byte) []byte {
	return append(append([]byte{}, BondedPoolKeyPrefix...), poolAccount...)
}

// RewardPoolKey returns the store key for a reward pool's record.
func RewardPoolKey(poolAccount []byte) []byte {
	return append(append([]byte{}, RewardPoolKeyPrefix...), poolAccount...)
}

// SubPoolsKey returns the store key for a pool's unbonding sub-pools record.
func SubPoolsKey(poolAccount []byte) []byte {
	return append(append([]byte{}, SubPoolsKeyPrefix...), poolAccount...)
}
