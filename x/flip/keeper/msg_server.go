package keeper

import (
	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = (*msgServer)(nil)

// ensureAdmin gates the management commands on the config admin address.
func ensureAdmin(config types.Config, sender string) error {
	if config.Admin != sender {
		return types.ErrUnauthorized.Wrapf("sender %s is not the module admin", sender)
	}
	return nil
}

// ensureNotPaused gates the player-facing commands on the emergency pause.
func ensureNotPaused(config types.Config) error {
	if config.IsPaused {
		return types.ErrPaused
	}
	return nil
}
