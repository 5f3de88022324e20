package keeper

import (
	"context"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// GetPendingFlips returns the wager queue in insertion order.
func (k Keeper) GetPendingFlips(ctx context.Context) []types.PendingFlip {
	store := k.kvStore(ctx)

	b := store.Get(types.PendingFlipsKey)
	if b == nil {
		return nil
	}

	var pending []types.PendingFlip
	k.cdc.MustUnmarshalJSON(b, &pending)
	return pending
}

// SetPendingFlips replaces the wager queue.
func (k Keeper) SetPendingFlips(ctx context.Context, pending []types.PendingFlip) {
	store := k.kvStore(ctx)
	if pending == nil {
		pending = []types.PendingFlip{}
	}
	b := k.cdc.MustMarshalJSON(pending)
	store.Set(types.PendingFlipsKey, b)
}

// HasPendingFlip reports whether the wallet already has a wager queued.
func (k Keeper) HasPendingFlip(ctx context.Context, wallet string) bool {
	for _, pending := range k.GetPendingFlips(ctx) {
		if pending.Wallet == wallet {
			return true
		}
	}
	return false
}

// NextFlipId increments and returns the monotonic wager id.
func (k Keeper) NextFlipId(ctx context.Context) uint64 {
	store := k.kvStore(ctx)

	var id uint64
	if b := store.Get(types.NextFlipIdKey); b != nil {
		k.cdc.MustUnmarshalJSON(b, &id)
	}
	id++

	store.Set(types.NextFlipIdKey, k.cdc.MustMarshalJSON(id))
	return id
}

// PeekNextFlipId returns the last assigned id without advancing it.
func (k Keeper) PeekNextFlipId(ctx context.Context) uint64 {
	store := k.kvStore(ctx)

	var id uint64
	if b := store.Get(types.NextFlipIdKey); b != nil {
		k.cdc.MustUnmarshalJSON(b, &id)
	}
	return id
}

// SetNextFlipId seeds the id counter at genesis import.
func (k Keeper) SetNextFlipId(ctx context.Context, id uint64) {
	store := k.kvStore(ctx)
	store.Set(types.NextFlipIdKey, k.cdc.MustMarshalJSON(id))
}
