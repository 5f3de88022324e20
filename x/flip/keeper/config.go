package keeper

import (
	"context"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// GetConfig returns the module config.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, bool) {
	store := k.kvStore(ctx)

	b := store.Get(types.ConfigKey)
	if b == nil {
		return types.Config{}, false
	}

	var config types.Config
	k.cdc.MustUnmarshalJSON(b, &config)
	return config, true
}

// SetConfig persists the module config.
func (k Keeper) SetConfig(ctx context.Context, config types.Config) {
	store := k.kvStore(ctx)
	b := k.cdc.MustMarshalJSON(&config)
	store.Set(types.ConfigKey, b)
}

// mustGetConfig loads the config or fails the command. The config is always
// written at genesis, so a miss means the module was never initialized.
func (k Keeper) mustGetConfig(ctx context.Context) (types.Config, error) {
	config, found := k.GetConfig(ctx)
	if !found {
		return types.Config{}, types.ErrConfigNotFound
	}
	return config, nil
}
