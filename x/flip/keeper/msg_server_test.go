package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/trueeth/cosmos-coinflip-kujira/testutil/keeper"
	"github.com/trueeth/cosmos-coinflip-kujira/testutil/sample"
	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/keeper"
	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

const (
	betAmount = testkeeper.MinBet               // 5_000_000
	betFee    = testkeeper.MinBet * 350 / 10000 // 175_000
	betFunds  = betAmount + betFee
)

func keeperMsgServer(k keeper.Keeper) types.MsgServer {
	return keeper.NewMsgServerImpl(k)
}

// fixture wires a keeper over fakes with genesis applied and the module
// account funded far above the bank floor.
type fixture struct {
	keeper     keeper.Keeper
	srv        types.MsgServer
	ctx        sdk.Context
	bank       *testkeeper.FakeBankKeeper
	collection *testkeeper.FakeCollectionKeeper

	admin   string
	team    string
	reserve string
	flipper string
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	k, ctx, bank, collection := testkeeper.FlipKeeper(t)

	f := &fixture{
		keeper:     k,
		srv:        keeper.NewMsgServerImpl(k),
		ctx:        ctx,
		bank:       bank,
		collection: collection,

		admin:   sample.AccAddress(),
		team:    sample.AccAddress(),
		reserve: sample.AccAddress(),
		flipper: sample.AccAddress(),
	}

	k.InitGenesis(ctx, testkeeper.DefaultGenesis(f.admin, f.team, f.reserve))

	bank.FundModule(types.ModuleName, sdk.NewCoins(sdk.NewCoin(testkeeper.NativeDenom, math.NewInt(100_000_000_000))))
	bank.Fund(f.accAddr(f.flipper), sdk.NewCoins(sdk.NewCoin(testkeeper.NativeDenom, math.NewInt(1_000_000_000))))

	return f
}

func (f *fixture) accAddr(bech32 string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(bech32)
	if err != nil {
		panic(err)
	}
	return addr
}

func (f *fixture) balance(wallet, denom string) math.Int {
	return f.bank.GetBalance(f.ctx, f.accAddr(wallet), denom).Amount
}

func (f *fixture) moduleBalance(denom string) math.Int {
	return f.bank.GetBalance(f.ctx, f.keeper.ModuleAddress(), denom).Amount
}

// startFlip enqueues a standard minimum bet for the wallet at the given
// height.
func (f *fixture) startFlip(t *testing.T, wallet string, height int64) uint64 {
	t.Helper()

	resp, err := f.srv.StartFlip(f.ctx.WithBlockHeight(height), &types.MsgStartFlip{
		Sender: wallet,
		Pick:   types.PickHeads,
		Amount: math.NewInt(betAmount),
		Funds:  sdk.NewCoin(testkeeper.NativeDenom, math.NewInt(betFunds)),
	})
	require.NoError(t, err)
	return resp.Id
}

// settleRound enqueues one wager at height 10 and settles it at height 11.
// Block height and time are pinned, so the batch seed and therefore the
// outcome for a given wallet are identical every round.
func (f *fixture) settleRound(t *testing.T, wallet string) {
	t.Helper()

	f.startFlip(t, wallet, 10)
	_, err := f.srv.DoFlips(f.ctx.WithBlockHeight(11), &types.MsgDoFlips{Sender: wallet})
	require.NoError(t, err)
}
