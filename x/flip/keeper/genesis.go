package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	k.SetConfig(ctx, genState.Config)
	k.SetStreakRewards(ctx, genState.StreakRewards)
	k.SetAllowedNftSenders(ctx, genState.AllowedNftSenders)

	// Every configured denom carries a ledger entry even when it has
	// accrued nothing yet.
	for _, record := range genState.Config.DenomLimits {
		k.SetFees(ctx, record.Denom, math.ZeroInt())
	}
	for _, balance := range genState.FeeLedger {
		k.SetFees(ctx, balance.Denom, balance.Amount)
	}

	k.SetPendingFlips(ctx, genState.PendingFlips)
	k.SetFlipHistory(ctx, genState.FlipHistory)
	k.SetNftPool(ctx, genState.NftPool)
	k.SetNextFlipId(ctx, genState.NextFlipId)

	for _, record := range genState.Scores {
		k.SetScore(ctx, record.Wallet, record.Score)
	}
}

// ExportGenesis returns the module's exported genesis.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genesis := &types.GenesisState{}

	config, found := k.GetConfig(ctx)
	if found {
		genesis.Config = config
	}

	genesis.StreakRewards = k.GetStreakRewards(ctx)
	genesis.AllowedNftSenders = k.GetAllowedNftSenders(ctx)

	genesis.FeeLedger = k.GetAllFees(ctx)
	genesis.PendingFlips = k.GetPendingFlips(ctx)
	genesis.FlipHistory = k.GetFlipHistory(ctx)
	genesis.NftPool = k.GetNftPool(ctx)
	genesis.Scores = k.GetAllScores(ctx)
	genesis.NextFlipId = k.PeekNextFlipId(ctx)

	return genesis
}
