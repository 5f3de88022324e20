package keeper

import (
	"context"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// GetFees returns the accrued, undistributed fees of a denom.
func (k Keeper) GetFees(ctx context.Context, denom string) (math.Int, bool) {
	store := prefix.NewStore(k.kvStore(ctx), types.KeyPrefix(types.FeesKeyPrefix))

	b := store.Get(types.FeesKey(denom))
	if b == nil {
		return math.ZeroInt(), false
	}

	var amount math.Int
	k.cdc.MustUnmarshalJSON(b, &amount)
	return amount, true
}

// SetFees writes the accrued fees of a denom.
func (k Keeper) SetFees(ctx context.Context, denom string, amount math.Int) {
	store := prefix.NewStore(k.kvStore(ctx), types.KeyPrefix(types.FeesKeyPrefix))
	b := k.cdc.MustMarshalJSON(amount)
	store.Set(types.FeesKey(denom), b)
}

// RemoveFees drops a denom's fee ledger entry.
func (k Keeper) RemoveFees(ctx context.Context, denom string) {
	store := prefix.NewStore(k.kvStore(ctx), types.KeyPrefix(types.FeesKeyPrefix))
	store.Delete(types.FeesKey(denom))
}

// GetAllFees returns every fee ledger entry, ordered by denom.
func (k Keeper) GetAllFees(ctx context.Context) []types.FeeBalance {
	store := prefix.NewStore(k.kvStore(ctx), types.KeyPrefix(types.FeesKeyPrefix))
	iterator := storetypes.KVStorePrefixIterator(store, []byte{})
	defer iterator.Close()

	var balances []types.FeeBalance
	for ; iterator.Valid(); iterator.Next() {
		var amount math.Int
		k.cdc.MustUnmarshalJSON(iterator.Value(), &amount)

		// Keys are "<denom>/".
		denom := string(iterator.Key())
		balances = append(balances, types.FeeBalance{
			Denom:  denom[:len(denom)-1],
			Amount: amount,
		})
	}

	return balances
}

// GetAllFeesCoins returns the fee ledger as coins for queries.
func (k Keeper) GetAllFeesCoins(ctx context.Context) sdk.Coins {
	coins := sdk.NewCoins()
	for _, balance := range k.GetAllFees(ctx) {
		coins = coins.Add(sdk.NewCoin(balance.Denom, balance.Amount))
	}
	return coins
}
