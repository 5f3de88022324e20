package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ShouldDoFlips reports whether at least one queued wager has cleared the
// two-block delay and would settle if DoFlips ran now. Off-chain crank
// bots poll this before paying for a settlement transaction.
func (k Keeper) ShouldDoFlips(ctx sdk.Context) bool {
	for _, pending := range k.GetPendingFlips(ctx) {
		if ctx.BlockHeight() > pending.Block {
			return true
		}
	}
	return false
}
