package keeper

import (
	"context"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// GetFlipHistory returns the bounded public history of settled flips,
// oldest first.
func (k Keeper) GetFlipHistory(ctx context.Context) []types.Flip {
	store := k.kvStore(ctx)

	b := store.Get(types.FlipHistoryKey)
	if b == nil {
		return nil
	}

	var flips []types.Flip
	k.cdc.MustUnmarshalJSON(b, &flips)
	return flips
}

// SetFlipHistory replaces the settled flip history.
func (k Keeper) SetFlipHistory(ctx context.Context, flips []types.Flip) {
	store := k.kvStore(ctx)
	if flips == nil {
		flips = []types.Flip{}
	}
	b := k.cdc.MustMarshalJSON(flips)
	store.Set(types.FlipHistoryKey, b)
}

// pushFlip appends a settled flip, evicting the oldest entry once the
// history is at capacity.
func pushFlip(history []types.Flip, flip types.Flip) []types.Flip {
	if len(history) >= types.FlipHistorySize {
		history = history[1:]
	}
	return append(history, flip)
}
