package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's Msg types with amino.
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(MsgCreate{}, "nominationpool/Create", nil)
	cdc.RegisterConcrete(MsgJoin{}, "nominationpool/Join", nil)
	cdc.RegisterConcrete(MsgClaimPayout{}, "nominationpool/ClaimPayout", nil)
	cdc.RegisterConcrete(MsgUnbond{}, "nominationpool/Unbond", nil)
	cdc.RegisterConcrete(MsgPoolWithdrawUnbonded{}, "nominationpool/PoolWithdrawUnbonded", nil)
	cdc.RegisterConcrete(MsgWithdrawUnbonded{}, "nominationpool/WithdrawUnbonded", nil)
	cdc.RegisterConcrete(MsgNominate{}, "nominationpool/Nominate", nil)
	cdc.RegisterConcrete(MsgSetState{}, "nominationpool/SetState", nil)
}

// ModuleCdc is the codec used for sign-byte and genesis (de)serialization,
// the same package-level pattern as `modules/market/internal/types.ModuleCdc`.
var ModuleCdc = codec.New()

func init() {
	RegisterCodec(ModuleCdc)
	codec.RegisterCrypto(ModuleCdc)
	ModuleCdc.Seal()
}
