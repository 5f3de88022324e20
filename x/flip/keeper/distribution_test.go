package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// balanceOnlyBank returns a fixed module balance and rejects transfers.
type balanceOnlyBank struct {
	balance sdk.Coin
}

func (b balanceOnlyBank) GetBalance(context.Context, sdk.AccAddress, string) sdk.Coin {
	return b.balance
}

func (balanceOnlyBank) SendCoinsFromAccountToModule(context.Context, sdk.AccAddress, string, sdk.Coins) error {
	return types.ErrContractMissingFunds
}

func (balanceOnlyBank) SendCoinsFromModuleToAccount(context.Context, string, sdk.AccAddress, sdk.Coins) error {
	return types.ErrContractMissingFunds
}

func TestCalculateFeesToPay(t *testing.T) {
	config := types.Config{
		Fees: types.FeeSchedule{TeamBps: 1500, HoldersBps: 7000, ReserveBps: 1500, FlipBps: 350},
	}

	// At or below the dust threshold nothing is distributable.
	_, err := calculateFeesToPay(config, math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrNoFeesToPay)
	_, err = calculateFeesToPay(config, math.NewInt(0))
	require.ErrorIs(t, err, types.ErrNoFeesToPay)

	// One unit above the threshold distributes.
	toPay, err := calculateFeesToPay(config, math.NewInt(1001))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), toPay.Team)
	require.Equal(t, math.NewInt(500), toPay.Reserve)
	require.Equal(t, math.NewInt(0), toPay.Holders)

	// With a holder registry the schedule applies instead of the 50/50.
	config.HolderRegistry = "cosmos1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9"
	toPay, err = calculateFeesToPay(config, math.NewInt(10_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1500), toPay.Team)
	require.Equal(t, math.NewInt(7000), toPay.Holders)
	require.Equal(t, math.NewInt(1500), toPay.Reserve)
}

func TestVerifyReserveCap(t *testing.T) {
	tests := []struct {
		desc        string
		balance     int64
		totalFees   int64
		reserveFees int64
		bankLimit   int64
		expected    int64
		expectedErr error
	}{
		{
			desc:        "liquid balance well above the floor",
			balance:     1_000_000,
			totalFees:   10_000,
			reserveFees: 1500,
			bankLimit:   100_000,
			expected:    1500,
		},
		{
			desc:        "shortfall eats part of the reserve share",
			balance:     110_000,
			totalFees:   10_000,
			reserveFees: 1500,
			bankLimit:   101_000,
			expected:    500,
		},
		{
			desc:        "shortfall above the reserve share clamps to zero",
			balance:     110_000,
			totalFees:   10_000,
			reserveFees: 1500,
			bankLimit:   150_000,
			expected:    0,
		},
		{
			desc:        "fees exceed the balance",
			balance:     5000,
			totalFees:   10_000,
			reserveFees: 1500,
			bankLimit:   0,
			expectedErr: types.ErrNotEnoughFundsToPayFees,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			k := Keeper{
				bankKeeper: balanceOnlyBank{balance: sdk.NewCoin("ustars", math.NewInt(test.balance))},
				moduleAddr: authtypes.NewModuleAddress(types.ModuleName),
			}

			got, err := k.verifyReserveCap(
				context.Background(),
				"ustars",
				math.NewInt(test.totalFees),
				math.NewInt(test.reserveFees),
				math.NewInt(test.bankLimit),
			)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, math.NewInt(test.expected), got)
		})
	}
}

func TestTokenWeight(t *testing.T) {
	require.Equal(t, math.LegacyOneDec(), tokenWeight(1))
	require.Equal(t, math.LegacyOneDec(), tokenWeight(649))
	require.Equal(t, math.LegacyNewDecWithPrec(15, 1), tokenWeight(650))
	require.Equal(t, math.LegacyNewDecWithPrec(15, 1), tokenWeight(727))
	require.Equal(t, math.LegacyNewDec(2), tokenWeight(728))
	require.Equal(t, math.LegacyNewDec(2), tokenWeight(777))
}
