package app

import (
	"encoding/json"
	"io"
	"os"

	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	bam "github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/cosmos/cosmos-sdk/version"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/cosmos/cosmos-sdk/x/bank"
	"github.com/cosmos/cosmos-sdk/x/crisis"
	distr "github.com/cosmos/cosmos-sdk/x/distribution"
	distrclient "github.com/cosmos/cosmos-sdk/x/distribution/client"
	"github.com/cosmos/cosmos-sdk/x/genaccounts"
	"github.com/cosmos/cosmos-sdk/x/genutil"
	"github.com/cosmos/cosmos-sdk/x/gov"
	"github.com/cosmos/cosmos-sdk/x/params"
	paramsclient "github.com/cosmos/cosmos-sdk/x/params/client"
	"github.com/cosmos/cosmos-sdk/x/slashing"
	"github.com/cosmos/cosmos-sdk/x/staking"
	"github.com/cosmos/cosmos-sdk/x/supply"

	"github.com/coinexchain/nominationpool/modules/nominationpool"
	"github.com/coinexchain/nominationpool/modules/nominationpool/internal/keeper"
	nptypes "github.com/coinexchain/nominationpool/modules/nominationpool/internal/types"
)

const (
	appName = "NominationPoolApp"
	// DefaultKeyPass contains the default key password for genesis transactions
	DefaultKeyPass = "12345678"
)

// default home directories for expected binaries
var (
	// default home directories for the CLI
	DefaultCLIHome = os.ExpandEnv("$HOME/.npcli")

	// default home directories for the daemon
	DefaultNodeHome = os.ExpandEnv("$HOME/.npd")

	// The ModuleBasicManager is in charge of setting up basic,
	// non-dependant module elements, such as codec registration
	// and genesis verification.
	ModuleBasics module.BasicManager
)

func init() {
	ModuleBasics = module.NewBasicManager(
		genaccounts.AppModuleBasic{},
		genutil.AppModuleBasic{},
		params.AppModuleBasic{},
		bank.AppModuleBasic{},
		distr.AppModuleBasic{},
		supply.AppModuleBasic{},
		auth.AppModuleBasic{},
		staking.AppModuleBasic{},
		slashing.AppModuleBasic{},
		crisis.AppModuleBasic{},
		gov.NewAppModuleBasic(paramsclient.ProposalHandler, distrclient.ProposalHandler),
		nominationpool.AppModuleBasic{},
	)
}

// custom tx codec
func MakeCodec() *codec.Codec {
	var cdc = codec.New()
	ModuleBasics.RegisterCodec(cdc)
	sdk.RegisterCodec(cdc)
	codec.RegisterCrypto(cdc)
	return cdc
}

// NpChainApp is the extended ABCI application wiring the nomination pool
// engine on top of a standard cosmos-sdk staking/bank/distribution stack,
// the way CetChainApp wires its own domain modules on top of the same
// stack (app/app.go).
type NpChainApp struct {
	*bam.BaseApp
	cdc *codec.Codec

	invCheckPeriod uint

	// keys to access the substores
	keyMain           *sdk.KVStoreKey
	keyAccount        *sdk.KVStoreKey
	keySupply         *sdk.KVStoreKey
	keyStaking        *sdk.KVStoreKey
	tkeyStaking       *sdk.TransientStoreKey
	keySlashing       *sdk.KVStoreKey
	keyDistr          *sdk.KVStoreKey
	tkeyDistr         *sdk.TransientStoreKey
	keyGov            *sdk.KVStoreKey
	keyParams         *sdk.KVStoreKey
	tkeyParams        *sdk.TransientStoreKey
	keyNominationPool *sdk.KVStoreKey
	keyStakingAdapter *sdk.KVStoreKey

	// Manage getting and setting accounts
	accountKeeper      auth.AccountKeeper
	bankKeeper         bank.BaseKeeper
	supplyKeeper       supply.Keeper
	stakingKeeper      staking.Keeper
	slashingKeeper     slashing.Keeper
	distrKeeper        distr.Keeper
	govKeeper          gov.Keeper
	crisisKeeper       crisis.Keeper
	paramsKeeper       params.Keeper
	nominationPoolKeeper keeper.Keeper

	// the module manager
	mm *module.Manager
}

// NewNpChainApp returns a reference to an initialized NpChainApp.
func NewNpChainApp(logger log.Logger, db dbm.DB, traceStore io.Writer, loadLatest bool,
	invCheckPeriod uint, baseAppOptions ...func(*bam.BaseApp)) *NpChainApp {

	cdc := MakeCodec()

	bApp := bam.NewBaseApp(appName, logger, db, auth.DefaultTxDecoder(cdc), baseAppOptions...)
	bApp.SetCommitMultiStoreTracer(traceStore)
	bApp.SetAppVersion(version.Version)

	app := newNpChainApp(bApp, cdc, invCheckPeriod)
	app.initKeepers(invCheckPeriod)
	app.InitModules()
	app.mountStores()

	ah := auth.NewAnteHandler(app.accountKeeper, app.supplyKeeper, auth.DefaultSigVerificationGasConsumer)

	app.SetInitChainer(app.initChainer)
	app.SetBeginBlocker(app.BeginBlocker)
	app.SetAnteHandler(ah)
	app.SetEndBlocker(app.EndBlocker)

	if loadLatest {
		err := app.LoadLatestVersion(app.keyMain)
		if err != nil {
			cmn.Exit(err.Error())
		}
	}

	return app
}

func newNpChainApp(bApp *bam.BaseApp, cdc *codec.Codec, invCheckPeriod uint) *NpChainApp {
	return &NpChainApp{
		BaseApp:           bApp,
		cdc:               cdc,
		invCheckPeriod:    invCheckPeriod,
		keyMain:           sdk.NewKVStoreKey(bam.MainStoreKey),
		keyAccount:        sdk.NewKVStoreKey(auth.StoreKey),
		keySupply:         sdk.NewKVStoreKey(supply.StoreKey),
		keyStaking:        sdk.NewKVStoreKey(staking.StoreKey),
		tkeyStaking:       sdk.NewTransientStoreKey(staking.TStoreKey),
		keyDistr:          sdk.NewKVStoreKey(distr.StoreKey),
		tkeyDistr:         sdk.NewTransientStoreKey(distr.TStoreKey),
		keySlashing:       sdk.NewKVStoreKey(slashing.StoreKey),
		keyGov:            sdk.NewKVStoreKey(gov.StoreKey),
		keyParams:         sdk.NewKVStoreKey(params.StoreKey),
		tkeyParams:        sdk.NewTransientStoreKey(params.TStoreKey),
		keyNominationPool: sdk.NewKVStoreKey(nptypes.StoreKey),
		keyStakingAdapter: sdk.NewKVStoreKey("stakingadapter"),
	}
}

func (app *NpChainApp) initKeepers(invCheckPeriod uint) {
	app.paramsKeeper = params.NewKeeper(app.cdc, app.keyParams, app.tkeyParams, params.DefaultCodespace)

	app.accountKeeper = auth.NewAccountKeeper(
		app.cdc,
		app.keyAccount,
		app.paramsKeeper.Subspace(auth.DefaultParamspace),
		auth.ProtoBaseAccount,
	)
	app.bankKeeper = bank.NewBaseKeeper(
		app.accountKeeper,
		app.paramsKeeper.Subspace(bank.DefaultParamspace),
		bank.DefaultCodespace,
	)

	maccPerms := map[string][]string{
		auth.FeeCollectorName:     {supply.Basic},
		distr.ModuleName:          {supply.Basic},
		staking.BondedPoolName:    {supply.Burner, supply.Staking},
		staking.NotBondedPoolName: {supply.Burner, supply.Staking},
		gov.ModuleName:            {supply.Burner},
	}

	app.supplyKeeper = supply.NewKeeper(app.cdc, app.keySupply, app.accountKeeper,
		app.bankKeeper, supply.DefaultCodespace, maccPerms)

	var stakingKeeper staking.Keeper

	app.distrKeeper = distr.NewKeeper(
		app.cdc,
		app.keyDistr,
		app.paramsKeeper.Subspace(distr.DefaultParamspace),
		&stakingKeeper,
		app.supplyKeeper,
		distr.DefaultCodespace,
		auth.FeeCollectorName,
	)

	stakingKeeper = staking.NewKeeper(
		app.cdc,
		app.keyStaking, app.tkeyStaking,
		app.supplyKeeper,
		app.paramsKeeper.Subspace(staking.DefaultParamspace),
		staking.DefaultCodespace,
	)

	govRouter := gov.NewRouter()
	govRouter.AddRoute(gov.RouterKey, gov.ProposalHandler).
		AddRoute(params.RouterKey, params.NewParamChangeProposalHandler(app.paramsKeeper)).
		AddRoute(distr.RouterKey, distr.NewCommunityPoolSpendProposalHandler(app.distrKeeper))

	app.govKeeper = gov.NewKeeper(
		app.cdc,
		app.keyGov,
		app.paramsKeeper, app.paramsKeeper.Subspace(gov.DefaultParamspace),
		app.supplyKeeper,
		&stakingKeeper,
		gov.DefaultCodespace,
		govRouter,
	)

	app.crisisKeeper = crisis.NewKeeper(
		app.paramsKeeper.Subspace(crisis.DefaultParamspace),
		invCheckPeriod,
		app.supplyKeeper,
		auth.FeeCollectorName,
	)

	app.slashingKeeper = slashing.NewKeeper(
		app.cdc,
		app.keySlashing,
		&stakingKeeper,
		app.paramsKeeper.Subspace(slashing.DefaultParamspace),
		slashing.DefaultCodespace,
	)

	stakingAdapter := NewStakingAdapter(stakingKeeper, app.bankKeeper, app.keyStakingAdapter)
	bankAdapter := NewBankAdapter(app.bankKeeper, stakingKeeper)

	app.nominationPoolKeeper = keeper.NewKeeper(
		app.cdc,
		app.keyNominationPool,
		app.paramsKeeper.Subspace(nptypes.DefaultParamspace),
		stakingAdapter,
		bankAdapter,
	)

	// register the staking hooks
	// NOTE: The stakingKeeper above is passed by reference, so that it can
	// be modified like below:
	app.stakingKeeper = *stakingKeeper.SetHooks(
		staking.NewMultiStakingHooks(app.distrKeeper.Hooks(), app.slashingKeeper.Hooks()))
}

func (app *NpChainApp) InitModules() {
	app.mm = module.NewManager(
		genaccounts.NewAppModule(app.accountKeeper),
		genutil.NewAppModule(app.accountKeeper, app.stakingKeeper, app.BaseApp.DeliverTx),
		auth.NewAppModule(app.accountKeeper),
		bank.NewAppModule(app.bankKeeper, app.accountKeeper),
		crisis.NewAppModule(app.crisisKeeper),
		supply.NewAppModule(app.supplyKeeper, app.accountKeeper),
		distr.NewAppModule(app.distrKeeper, app.supplyKeeper),
		gov.NewAppModule(app.govKeeper, app.supplyKeeper),
		slashing.NewAppModule(app.slashingKeeper, app.stakingKeeper),
		staking.NewAppModule(app.stakingKeeper, app.distrKeeper, app.accountKeeper, app.supplyKeeper),
		nominationpool.NewAppModule(app.nominationPoolKeeper),
	)

	// Slashing happens after distr.BeginBlocker so nothing is left over in
	// the validator fee pool, keeping the CanWithdrawInvariant invariant.
	app.mm.SetOrderBeginBlockers(distr.ModuleName, slashing.ModuleName)

	app.mm.SetOrderEndBlockers(gov.ModuleName, staking.ModuleName, nptypes.ModuleName, crisis.ModuleName)

	initGenesisOrder := []string{
		genaccounts.ModuleName,
		distr.ModuleName,
		staking.ModuleName,
		auth.ModuleName,
		bank.ModuleName,
		slashing.ModuleName,
		gov.ModuleName,
		supply.ModuleName,
		crisis.ModuleName,
		nptypes.ModuleName,
		genutil.ModuleName, // call DeliverGenTxs in genutil at last
	}

	// genutils must occur after staking so that pools are properly
	// initialized with tokens from genesis accounts.
	app.mm.SetOrderInitGenesis(initGenesisOrder...)

	exportGenesisOrder := initGenesisOrder
	app.mm.SetOrderExportGenesis(exportGenesisOrder...)

	app.mm.RegisterInvariants(&app.crisisKeeper)
	app.mm.RegisterRoutes(app.Router(), app.QueryRouter())
}

// initialize BaseApp
func (app *NpChainApp) mountStores() {
	app.MountStores(app.keyMain, app.keyAccount, app.keySupply, app.keyStaking, app.keyDistr,
		app.keySlashing, app.keyGov, app.keyParams,
		app.tkeyParams, app.tkeyStaking, app.tkeyDistr,
		app.keyNominationPool, app.keyStakingAdapter,
	)
}

// application updates every begin block
func (app *NpChainApp) BeginBlocker(ctx sdk.Context, req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	return app.mm.BeginBlock(ctx, req)
}

// application updates every end block
// nolint: unparam
func (app *NpChainApp) EndBlocker(ctx sdk.Context, req abci.RequestEndBlock) abci.ResponseEndBlock {
	return app.mm.EndBlock(ctx, req)
}

// custom logic for chain initialization
func (app *NpChainApp) initChainer(ctx sdk.Context, req abci.RequestInitChain) abci.ResponseInitChain {
	var genesisState map[string]json.RawMessage
	app.cdc.MustUnmarshalJSON(req.AppStateBytes, &genesisState)

	if err := ModuleBasics.ValidateGenesis(genesisState); err != nil {
		panic(err)
	}

	return app.mm.InitGenesis(ctx, genesisState)
}

// load a particular height
func (app *NpChainApp) LoadHeight(height int64) error {
	return app.LoadVersion(height, app.keyMain)
}
