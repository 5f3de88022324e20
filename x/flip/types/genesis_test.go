package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/trueeth/cosmos-coinflip-kujira/testutil/sample"
	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

func validGenesis() types.GenesisState {
	return types.GenesisState{
		Config: validConfig(),
		StreakRewards: []types.StreakReward{
			types.NewStreakReward(2, math.NewInt(100_000)),
			types.NewStreakReward(4, math.NewInt(200_000)),
			types.NewStreakReward(5, math.NewInt(300_000)),
		},
		AllowedNftSenders: []string{sample.AccAddress()},
	}
}

func TestGenesisState_Validate(t *testing.T) {
	wallet := sample.AccAddress()

	tests := []struct {
		desc        string
		mutate      func(*types.GenesisState)
		expectedErr error
	}{
		{
			desc:   "fresh genesis",
			mutate: func(*types.GenesisState) {},
		},
		{
			desc: "live state",
			mutate: func(gs *types.GenesisState) {
				gs.FeeLedger = []types.FeeBalance{{Denom: "ustars", Amount: math.NewInt(42)}}
				gs.PendingFlips = []types.PendingFlip{{
					Id:     1,
					Wallet: wallet,
					Amount: sdk.NewCoin("ustars", math.NewInt(5_000_000)),
					Pick:   types.PickHeads,
					Block:  10,
				}}
				gs.NextFlipId = 2
			},
		},
		{
			desc:        "invalid config",
			mutate:      func(gs *types.GenesisState) { gs.Config.Admin = "" },
			expectedErr: types.ErrInvalidAddress,
		},
		{
			desc:        "invalid streak rewards",
			mutate:      func(gs *types.GenesisState) { gs.StreakRewards = gs.StreakRewards[:1] },
			expectedErr: types.ErrLowStreakAmount,
		},
		{
			desc:        "empty nft sender allow-list",
			mutate:      func(gs *types.GenesisState) { gs.AllowedNftSenders = nil },
			expectedErr: types.ErrEmptyAllowedToSendNft,
		},
		{
			desc: "negative fee ledger entry",
			mutate: func(gs *types.GenesisState) {
				gs.FeeLedger = []types.FeeBalance{{Denom: "ustars", Amount: math.NewInt(-1)}}
			},
			expectedErr: types.ErrInvalidConfig,
		},
		{
			desc: "pool above capacity",
			mutate: func(gs *types.GenesisState) {
				gs.Config.NftPoolMax = 1
				gs.NftPool = []types.NftReward{
					types.NewNftReward(sample.AccAddress(), "1"),
					types.NewNftReward(sample.AccAddress(), "2"),
				}
			},
			expectedErr: types.ErrMaxNftRewardsReached,
		},
		{
			desc: "duplicate pending wallet",
			mutate: func(gs *types.GenesisState) {
				gs.PendingFlips = []types.PendingFlip{
					{Id: 1, Wallet: wallet},
					{Id: 2, Wallet: wallet},
				}
				gs.NextFlipId = 3
			},
			expectedErr: types.ErrAlreadyStartedFlip,
		},
		{
			desc: "pending id not below the next id",
			mutate: func(gs *types.GenesisState) {
				gs.PendingFlips = []types.PendingFlip{{Id: 5, Wallet: wallet}}
				gs.NextFlipId = 5
			},
			expectedErr: types.ErrInvalidConfig,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			gs := validGenesis()
			test.mutate(&gs)

			err := gs.Validate()
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
