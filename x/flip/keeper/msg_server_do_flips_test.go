package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/trueeth/cosmos-coinflip-kujira/testutil/keeper"
	"github.com/trueeth/cosmos-coinflip-kujira/testutil/sample"
	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

func TestDoFlips_EmptyQueue(t *testing.T) {
	f := setupFixture(t)

	_, err := f.srv.DoFlips(f.ctx.WithBlockHeight(11), &types.MsgDoFlips{Sender: f.flipper})
	require.ErrorIs(t, err, types.ErrNoFlipsToDo)
}

func TestDoFlips_SameBlockStaysQueued(t *testing.T) {
	f := setupFixture(t)

	f.startFlip(t, f.flipper, 10)

	// Settling in the enqueue block resolves nothing and keeps the queue.
	_, err := f.srv.DoFlips(f.ctx.WithBlockHeight(10), &types.MsgDoFlips{Sender: f.flipper})
	require.ErrorIs(t, err, types.ErrNoFlipsToDoThisBlock)
	require.Len(t, f.keeper.GetPendingFlips(f.ctx), 1)
}

func TestDoFlips_PartitionsByBlock(t *testing.T) {
	f := setupFixture(t)

	other := sample.AccAddress()
	f.bank.Fund(f.accAddr(other), sdk.NewCoins(sdk.NewCoin(testkeeper.NativeDenom, math.NewInt(betFunds))))

	f.startFlip(t, f.flipper, 10)
	f.startFlip(t, other, 11)

	resp, err := f.srv.DoFlips(f.ctx.WithBlockHeight(11), &types.MsgDoFlips{Sender: f.flipper})
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.Settled)

	// The same-block wager waits for the next settlement.
	pending := f.keeper.GetPendingFlips(f.ctx)
	require.Len(t, pending, 1)
	require.Equal(t, other, pending[0].Wallet)
}

func TestDoFlips_SettlementPaysDoubleOrNothing(t *testing.T) {
	f := setupFixture(t)

	balanceBefore := f.balance(f.flipper, testkeeper.NativeDenom)
	f.settleRound(t, f.flipper)

	history := f.keeper.GetFlipHistory(f.ctx)
	require.Len(t, history, 1)
	require.Equal(t, f.flipper, history[0].Wallet)

	// A winner nets the bet minus the fee, a loser is out the whole stake.
	delta := f.balance(f.flipper, testkeeper.NativeDenom).Sub(balanceBefore)
	if history[0].Result {
		require.Equal(t, math.NewInt(betAmount-betFee), delta)
	} else {
		require.Equal(t, math.NewInt(-betFunds), delta)
	}

	// The settled wallet may wager again right away.
	f.startFlip(t, f.flipper, 12)
}

func TestDoFlips_OutcomeIsDeterministicPerSeed(t *testing.T) {
	f := setupFixture(t)

	// Identical settlement context means identical outcome, so the streak
	// grows by one each round.
	for round := 1; round <= 3; round++ {
		f.settleRound(t, f.flipper)

		score, found := f.keeper.GetScore(f.ctx, f.flipper)
		require.True(t, found)
		require.Equal(t, uint32(round), score.Streak.Count)
	}
}

func TestDoFlips_HistoryIsBounded(t *testing.T) {
	f := setupFixture(t)

	wallets := make([]string, types.FlipHistorySize+1)
	for i := range wallets {
		wallets[i] = sample.AccAddress()
		f.bank.Fund(f.accAddr(wallets[i]), sdk.NewCoins(sdk.NewCoin(testkeeper.NativeDenom, math.NewInt(betFunds))))
		f.startFlip(t, wallets[i], 10)
	}

	resp, err := f.srv.DoFlips(f.ctx.WithBlockHeight(11), &types.MsgDoFlips{Sender: f.flipper})
	require.NoError(t, err)
	require.Equal(t, uint64(len(wallets)), resp.Settled)

	// The first settled wager fell off the ring.
	history := f.keeper.GetFlipHistory(f.ctx)
	require.Len(t, history, types.FlipHistorySize)
	require.Equal(t, wallets[1], history[0].Wallet)
	require.Equal(t, wallets[len(wallets)-1], history[len(history)-1].Wallet)
}

func TestDoFlips_StreakAwardsCashWhenPoolEmpty(t *testing.T) {
	f := setupFixture(t)

	// DefaultConfig awards at a streak of 5 and the top cash tier is
	// 300_000. Rounds 1-4 build the streak, round 5 fires the award.
	for round := 1; round <= 4; round++ {
		f.settleRound(t, f.flipper)
	}

	balanceBefore := f.balance(f.flipper, testkeeper.NativeDenom)
	f.settleRound(t, f.flipper)
	delta := f.balance(f.flipper, testkeeper.NativeDenom).Sub(balanceBefore)

	history := f.keeper.GetFlipHistory(f.ctx)
	wagerNet := math.NewInt(-betFunds)
	if history[len(history)-1].Result {
		wagerNet = math.NewInt(betAmount - betFee)
	}
	require.Equal(t, wagerNet.AddRaw(300_000), delta)

	// No NFT moved and the streak restarted.
	require.Empty(t, f.collection.Transfers)
	score, found := f.keeper.GetScore(f.ctx, f.flipper)
	require.True(t, found)
	require.Equal(t, uint32(0), score.Streak.Count)
}

func TestDoFlips_StreakDrawsNftFromPool(t *testing.T) {
	f := setupFixture(t)

	collection := sample.AccAddress()
	f.keeper.SetAllowedNftSenders(f.ctx, []string{f.admin})
	for _, tokenId := range []string{"11", "12"} {
		_, err := f.srv.DepositNft(f.ctx, &types.MsgDepositNft{
			Sender:         f.admin,
			CollectionAddr: collection,
			TokenId:        tokenId,
		})
		require.NoError(t, err)
	}

	balanceBefore := f.balance(f.flipper, testkeeper.NativeDenom)
	for round := 1; round <= 5; round++ {
		f.settleRound(t, f.flipper)
	}

	// One pooled token went to the flipper, no cash prize was paid.
	require.Len(t, f.collection.Transfers, 1)
	require.Equal(t, collection, f.collection.Transfers[0].CollectionAddr)
	require.Equal(t, f.flipper, f.collection.Transfers[0].Recipient)
	require.Len(t, f.keeper.GetNftPool(f.ctx), 1)

	history := f.keeper.GetFlipHistory(f.ctx)
	perRound := math.NewInt(-betFunds)
	if history[len(history)-1].Result {
		perRound = math.NewInt(betAmount - betFee)
	}
	delta := f.balance(f.flipper, testkeeper.NativeDenom).Sub(balanceBefore)
	require.Equal(t, perRound.MulRaw(5), delta)

	score, found := f.keeper.GetScore(f.ctx, f.flipper)
	require.True(t, found)
	require.Equal(t, uint32(0), score.Streak.Count)
}

const (
	usdcBet   = 1_000_000
	usdcFee   = usdcBet * 350 / 10000 // 35_000
	usdcFunds = usdcBet + usdcFee
)

// addUsdcDenom makes uusdc a supported wager denom and funds the module
// and the given wallet in it.
func addUsdcDenom(t *testing.T, f *fixture, wallet string) {
	t.Helper()

	_, err := f.srv.AddDenom(f.ctx, &types.MsgAddDenom{
		Admin:  f.admin,
		Denom:  testkeeper.UsdcDenom,
		Limits: usdcLimit(),
	})
	require.NoError(t, err)

	f.bank.FundModule(types.ModuleName, sdk.NewCoins(sdk.NewCoin(testkeeper.UsdcDenom, math.NewInt(3_000_000))))
	f.bank.Fund(f.accAddr(wallet), sdk.NewCoins(sdk.NewCoin(testkeeper.UsdcDenom, math.NewInt(usdcFunds))))
}

func startUsdcFlip(t *testing.T, f *fixture, wallet string, height int64) {
	t.Helper()

	_, err := f.srv.StartFlip(f.ctx.WithBlockHeight(height), &types.MsgStartFlip{
		Sender: wallet,
		Pick:   types.PickHeads,
		Amount: math.NewInt(usdcBet),
		Funds:  sdk.NewCoin(testkeeper.UsdcDenom, math.NewInt(usdcFunds)),
	})
	require.NoError(t, err)
}

func TestDoFlips_MultiDenomBatch(t *testing.T) {
	f := setupFixture(t)

	other := sample.AccAddress()
	addUsdcDenom(t, f, other)

	f.startFlip(t, f.flipper, 10)
	startUsdcFlip(t, f, other, 10)

	resp, err := f.srv.DoFlips(f.ctx.WithBlockHeight(11), &types.MsgDoFlips{Sender: f.flipper})
	require.NoError(t, err)
	require.Equal(t, uint64(2), resp.Settled)

	history := f.keeper.GetFlipHistory(f.ctx)
	require.Len(t, history, 2)
	require.Equal(t, f.flipper, history[0].Wallet)
	require.Equal(t, testkeeper.NativeDenom, history[0].Amount.Denom)
	require.Equal(t, other, history[1].Wallet)
	require.Equal(t, testkeeper.UsdcDenom, history[1].Amount.Denom)

	// Each wager settles in its own denom: a winner nets the bet minus
	// the fee, a loser is out the whole stake.
	nativeNet := math.NewInt(-betFunds)
	if history[0].Result {
		nativeNet = math.NewInt(betAmount - betFee)
	}
	require.Equal(t, math.NewInt(1_000_000_000).Add(nativeNet), f.balance(f.flipper, testkeeper.NativeDenom))

	usdcNet := math.NewInt(-usdcFunds)
	if history[1].Result {
		usdcNet = math.NewInt(usdcBet - usdcFee)
	}
	require.Equal(t, math.NewInt(usdcFunds).Add(usdcNet), f.balance(other, testkeeper.UsdcDenom))

	// Denoms never bleed into each other.
	require.True(t, f.balance(other, testkeeper.NativeDenom).IsZero())
	require.True(t, f.balance(f.flipper, testkeeper.UsdcDenom).IsZero())

	// Both fee ledgers accrued their own flip fee.
	nativeFees, _ := f.keeper.GetFees(f.ctx, testkeeper.NativeDenom)
	require.Equal(t, math.NewInt(betFee), nativeFees)
	usdcFees, _ := f.keeper.GetFees(f.ctx, testkeeper.UsdcDenom)
	require.Equal(t, math.NewInt(usdcFee), usdcFees)
}

func TestDoFlips_InsolventDenomAbortsBatch(t *testing.T) {
	f := setupFixture(t)

	other := sample.AccAddress()
	addUsdcDenom(t, f, other)

	f.startFlip(t, f.flipper, 10)
	startUsdcFlip(t, f, other, 10)

	// Drain the module's uusdc below the 2x worst case of the queued
	// wager. The native denom stays solvent, but one failing denom
	// aborts the whole batch.
	require.NoError(t, f.bank.SendCoinsFromModuleToAccount(
		f.ctx,
		types.ModuleName,
		f.accAddr(sample.AccAddress()),
		sdk.NewCoins(sdk.NewCoin(testkeeper.UsdcDenom, math.NewInt(3_000_000))),
	))

	_, err := f.srv.DoFlips(f.ctx.WithBlockHeight(11), &types.MsgDoFlips{Sender: f.flipper})
	require.ErrorIs(t, err, types.ErrContractMissingFunds)

	// Nothing was paid out in either denom.
	require.Empty(t, f.keeper.GetFlipHistory(f.ctx))
	require.True(t, f.balance(other, testkeeper.UsdcDenom).IsZero())
}

func TestDoFlips_Paused(t *testing.T) {
	f := setupFixture(t)

	f.startFlip(t, f.flipper, 10)

	config, found := f.keeper.GetConfig(f.ctx)
	require.True(t, found)
	config.IsPaused = true
	f.keeper.SetConfig(f.ctx, config)

	_, err := f.srv.DoFlips(f.ctx.WithBlockHeight(11), &types.MsgDoFlips{Sender: f.flipper})
	require.ErrorIs(t, err, types.ErrPaused)
}
