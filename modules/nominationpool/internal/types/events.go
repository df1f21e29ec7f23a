package types

// Tag keys attached to sdk.Result by the module's handler, the same
// sdk.Tags-based event surface `modules/distributionx.handler.go` uses
// (this module's teacher predates the typed EventManager).
const (
	TagKeyPool          = "pool"
	TagKeyDepositor     = "depositor"
	TagKeyDelegator     = "delegator"
	TagKeyCaller        = "caller"
	TagKeyTarget        = "target"
	TagKeyAmount        = "amount"
	TagKeyNewState      = "new_state"
	TagKeyPoolTornDown  = "pool_torn_down"
	TagKeyDustWithdrawn = "dust_withdrawn"
)
