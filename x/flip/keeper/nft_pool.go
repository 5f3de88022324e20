package keeper

import (
	"context"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// GetNftPool returns the streak prize pool in deposit order.
func (k Keeper) GetNftPool(ctx context.Context) []types.NftReward {
	store := k.kvStore(ctx)

	b := store.Get(types.NftPoolKey)
	if b == nil {
		return nil
	}

	var pool []types.NftReward
	k.cdc.MustUnmarshalJSON(b, &pool)
	return pool
}

// SetNftPool replaces the streak prize pool.
func (k Keeper) SetNftPool(ctx context.Context, pool []types.NftReward) {
	store := k.kvStore(ctx)
	if pool == nil {
		pool = []types.NftReward{}
	}
	b := k.cdc.MustMarshalJSON(pool)
	store.Set(types.NftPoolKey, b)
}

// IsNftInPool reports whether a token is currently pool-tracked.
func (k Keeper) IsNftInPool(ctx context.Context, collectionAddr, tokenId string) bool {
	for _, nft := range k.GetNftPool(ctx) {
		if nft.CollectionAddr == collectionAddr && nft.TokenId == tokenId {
			return true
		}
	}
	return false
}
