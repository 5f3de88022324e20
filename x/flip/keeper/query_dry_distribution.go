package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// DryDistribution runs the Distribute arithmetic for one denom without
// moving funds or touching the ledger, returning the amounts a real
// distribution would pay right now.
func (k Keeper) DryDistribution(ctx sdk.Context, denom string) (types.DryDistributionResponse, error) {
	config, err := k.mustGetConfig(ctx)
	if err != nil {
		return types.DryDistributionResponse{}, err
	}

	limit, found := config.GetLimit(denom)
	if !found {
		return types.DryDistributionResponse{}, types.ErrNoBetLimits.Wrapf("denom %q", denom)
	}

	totalFees, _ := k.GetFees(ctx, denom)

	feesToPay, err := calculateFeesToPay(config, totalFees)
	if err != nil {
		return types.DryDistributionResponse{}, err
	}

	reserveToSend, err := k.verifyReserveCap(ctx, denom, totalFees, feesToPay.Reserve, limit.Bank)
	if err != nil {
		return types.DryDistributionResponse{}, err
	}

	payToHolders := math.ZeroInt()
	totalShares := math.LegacyZeroDec()
	feesPerToken := math.LegacyZeroDec()
	numberOfHolders := uint64(0)

	if feesToPay.Holders.IsPositive() {
		var holders []holderShare
		totalShares, holders, err = k.holderShares(ctx, config.HolderRegistry)
		if err != nil {
			return types.DryDistributionResponse{}, err
		}
		if totalShares.IsZero() {
			return types.DryDistributionResponse{}, types.ErrInvalidConfig.Wrap("holder registry has no resolvable owners")
		}

		feesPerToken = math.LegacyNewDecFromInt(feesToPay.Holders).Quo(totalShares)
		numberOfHolders = uint64(len(holders))

		for _, holder := range holders {
			payToHolders = payToHolders.Add(feesPerToken.Mul(holder.weight).TruncateInt())
		}
	}

	return types.DryDistributionResponse{
		TotalFees:          totalFees,
		TeamTotalFee:       feesToPay.Team,
		ReserveTotalFee:    reserveToSend,
		HoldersTotalFee:    feesToPay.Holders,
		HoldersTotalShares: totalShares,
		FeesPerToken:       feesPerToken,
		PayToHolders:       payToHolders,
		NumberOfHolders:    numberOfHolders,
	}, nil
}
