package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/keeper"
	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

const (
	// Test denoms and limits mirroring a mainnet-shaped config.
	NativeDenom = "ustars"
	UsdcDenom   = "uusdc"

	MinBet  = 5_000_000
	MaxBet  = 25_000_000
	MinBank = 30_000_000_000
)

// NftTransfer records one ownership move through the fake collection.
type NftTransfer struct {
	CollectionAddr string
	TokenId        string
	Recipient      string
}

// FakeBankKeeper is an in-memory bank. Module accounts are addressed the
// same way the real bank addresses them so keeper balance reads line up
// with escrow sends.
type FakeBankKeeper struct {
	balances map[string]sdk.Coins
}

func NewFakeBankKeeper() *FakeBankKeeper {
	return &FakeBankKeeper{balances: make(map[string]sdk.Coins)}
}

// Fund credits an account outside of any transfer.
func (b *FakeBankKeeper) Fund(addr sdk.AccAddress, amt sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(amt...)
}

// FundModule credits a module account directly.
func (b *FakeBankKeeper) FundModule(moduleName string, amt sdk.Coins) {
	b.Fund(authtypes.NewModuleAddress(moduleName), amt)
}

func (b *FakeBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *FakeBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.send(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (b *FakeBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (b *FakeBankKeeper) send(from, to sdk.AccAddress, amt sdk.Coins) error {
	remaining, negative := b.balances[from.String()].SafeSub(amt...)
	if negative {
		return types.ErrContractMissingFunds.Wrapf("%s cannot send %s", from, amt)
	}
	b.balances[from.String()] = remaining
	b.balances[to.String()] = b.balances[to.String()].Add(amt...)
	return nil
}

// FakeCollectionKeeper is an in-memory NFT registry keyed by collection
// address and token id. Transfers are logged for assertions.
type FakeCollectionKeeper struct {
	Owners    map[string]map[string]string
	Transfers []NftTransfer
}

func NewFakeCollectionKeeper() *FakeCollectionKeeper {
	return &FakeCollectionKeeper{Owners: make(map[string]map[string]string)}
}

// SetOwner seeds a token's owner.
func (c *FakeCollectionKeeper) SetOwner(collectionAddr, tokenId, owner string) {
	if c.Owners[collectionAddr] == nil {
		c.Owners[collectionAddr] = make(map[string]string)
	}
	c.Owners[collectionAddr][tokenId] = owner
}

func (c *FakeCollectionKeeper) TransferOwnership(_ context.Context, collectionAddr, tokenId, recipient string) error {
	c.SetOwner(collectionAddr, tokenId, recipient)
	c.Transfers = append(c.Transfers, NftTransfer{
		CollectionAddr: collectionAddr,
		TokenId:        tokenId,
		Recipient:      recipient,
	})
	return nil
}

func (c *FakeCollectionKeeper) ResolveOwner(_ context.Context, collectionAddr, tokenId string) (string, bool) {
	owner, found := c.Owners[collectionAddr][tokenId]
	return owner, found
}

// FlipKeeper builds a keeper over an in-memory store with fake bank and
// collection collaborators. No genesis is applied; seed state with
// DefaultGenesis or by hand.
func FlipKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *FakeBankKeeper, *FakeCollectionKeeper) {
	t.Helper()
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	bankKeeper := NewFakeBankKeeper()
	collectionKeeper := NewFakeCollectionKeeper()

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		bankKeeper,
		collectionKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1, Time: time.Unix(123456789, 0)}, false, log.NewNopLogger())

	return k, ctx, bankKeeper, collectionKeeper
}

// DefaultConfig returns a config shaped like the production deployment:
// a native denom with real bet limits, the standard fee schedule and the
// streak knobs the tests expect.
func DefaultConfig(admin, team, reserve string) types.Config {
	return types.Config{
		Admin: admin,
		DenomLimits: []types.DenomLimitRecord{
			{
				Denom: NativeDenom,
				Limit: types.DenomLimit{
					Min:  math.NewInt(MinBet),
					Max:  math.NewInt(MaxBet),
					Bank: math.NewInt(MinBank),
				},
			},
		},
		FlipsPerBlockLimit: types.DefaultFlipsPerBlockLimit,
		Wallets: types.Wallets{
			Team:    team,
			Reserve: reserve,
		},
		Fees: types.FeeSchedule{
			TeamBps:    1500,
			HoldersBps: 7000,
			ReserveBps: 1500,
			FlipBps:    350,
		},
		NftPoolMax:             4,
		StreakNftWinningAmount: 5,
		StreakRewardDenom:      NativeDenom,
	}
}

// DefaultStreakRewards is the standard three-tier cash table. The last
// tier matches the NFT winning streak of DefaultConfig.
func DefaultStreakRewards() []types.StreakReward {
	return []types.StreakReward{
		types.NewStreakReward(2, math.NewInt(100_000)),
		types.NewStreakReward(4, math.NewInt(200_000)),
		types.NewStreakReward(5, math.NewInt(300_000)),
	}
}

// DefaultGenesis builds a fresh genesis around DefaultConfig.
func DefaultGenesis(admin, team, reserve string, allowedNftSenders ...string) types.GenesisState {
	if len(allowedNftSenders) == 0 {
		allowedNftSenders = []string{admin}
	}
	return types.GenesisState{
		Config:            DefaultConfig(admin, team, reserve),
		StreakRewards:     DefaultStreakRewards(),
		AllowedNftSenders: allowedNftSenders,
	}
}
