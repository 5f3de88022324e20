package keeper

import (
	"context"
	"strings"

	"cosmossdk.io/store/prefix"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// GetScore returns the streak score of a wallet.
func (k Keeper) GetScore(ctx context.Context, wallet string) (types.FlipScore, bool) {
	store := prefix.NewStore(k.kvStore(ctx), types.KeyPrefix(types.ScoreKeyPrefix))

	b := store.Get(types.ScoreKey(wallet))
	if b == nil {
		return types.FlipScore{}, false
	}

	var score types.FlipScore
	k.cdc.MustUnmarshalJSON(b, &score)
	return score, true
}

// SetScore writes the streak score of a wallet.
func (k Keeper) SetScore(ctx context.Context, wallet string, score types.FlipScore) {
	store := prefix.NewStore(k.kvStore(ctx), types.KeyPrefix(types.ScoreKeyPrefix))
	b := k.cdc.MustMarshalJSON(&score)
	store.Set(types.ScoreKey(wallet), b)
}

// GetAllScores returns every stored streak score keyed by wallet.
func (k Keeper) GetAllScores(ctx context.Context) []types.ScoreRecord {
	store := prefix.NewStore(k.kvStore(ctx), types.KeyPrefix(types.ScoreKeyPrefix))

	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var records []types.ScoreRecord
	for ; iterator.Valid(); iterator.Next() {
		var score types.FlipScore
		k.cdc.MustUnmarshalJSON(iterator.Value(), &score)

		wallet := strings.TrimSuffix(string(iterator.Key()), "/")
		records = append(records, types.ScoreRecord{Wallet: wallet, Score: score})
	}
	return records
}

// GetStreakRewards returns the reward tier table, sorted ascending by
// streak length.
func (k Keeper) GetStreakRewards(ctx context.Context) []types.StreakReward {
	store := k.kvStore(ctx)

	b := store.Get(types.StreakRewardsKey)
	if b == nil {
		return nil
	}

	var rewards []types.StreakReward
	k.cdc.MustUnmarshalJSON(b, &rewards)
	return rewards
}

// SetStreakRewards replaces the reward tier table.
func (k Keeper) SetStreakRewards(ctx context.Context, rewards []types.StreakReward) {
	store := k.kvStore(ctx)
	b := k.cdc.MustMarshalJSON(rewards)
	store.Set(types.StreakRewardsKey, b)
}

// GetAllowedNftSenders returns the pool deposit allow-list.
func (k Keeper) GetAllowedNftSenders(ctx context.Context) []string {
	store := k.kvStore(ctx)

	b := store.Get(types.AllowedNftSendersKey)
	if b == nil {
		return nil
	}

	var senders []string
	k.cdc.MustUnmarshalJSON(b, &senders)
	return senders
}

// SetAllowedNftSenders replaces the pool deposit allow-list.
func (k Keeper) SetAllowedNftSenders(ctx context.Context, senders []string) {
	store := k.kvStore(ctx)
	b := k.cdc.MustMarshalJSON(senders)
	store.Set(types.AllowedNftSendersKey, b)
}

// IsAllowedNftSender reports whether the wallet may deposit into the pool.
func (k Keeper) IsAllowedNftSender(ctx context.Context, wallet string) bool {
	for _, sender := range k.GetAllowedNftSenders(ctx) {
		if sender == wallet {
			return true
		}
	}
	return false
}
