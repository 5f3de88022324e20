package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

type Keeper struct {
	cdc          *codec.LegacyAmino
	storeService store.KVStoreService
	logger       log.Logger

	bankKeeper       types.BankKeeper
	collectionKeeper types.CollectionKeeper

	// moduleAddr holds the module account the wager escrow and the fee
	// ledger live on.
	moduleAddr sdk.AccAddress
}

func NewKeeper(
	cdc *codec.LegacyAmino,
	storeService store.KVStoreService,
	logger log.Logger,

	bankKeeper types.BankKeeper,
	collectionKeeper types.CollectionKeeper,
) Keeper {
	return Keeper{
		cdc:          cdc,
		storeService: storeService,
		logger:       logger,

		bankKeeper:       bankKeeper,
		collectionKeeper: collectionKeeper,

		moduleAddr: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// ModuleAddress returns the module account address holding the float.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

func (k Keeper) kvStore(ctx context.Context) storetypes.KVStore {
	return runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
}
