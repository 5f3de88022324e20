package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

const (
	// feeDustThreshold is the fee ledger balance under which a
	// distribution is refused.
	feeDustThreshold = 1000

	// holderRegistryTokenCount is the fixed id space iterated when
	// resolving holder shares.
	holderRegistryTokenCount = 777
)

// holderShare is one owner's accumulated weight in a distribution cycle.
type holderShare struct {
	addr   string
	weight math.LegacyDec
}

// calculateFeesToPay splits the accrued fees of one denom. With a holder
// registry configured the schedule's basis points apply; without one the
// fees split 50/50 between team and reserve and the holder bucket is
// skipped entirely.
func calculateFeesToPay(config types.Config, totalFees math.Int) (types.FeesToPay, error) {
	if totalFees.LTE(math.NewInt(feeDustThreshold)) {
		return types.FeesToPay{}, types.ErrNoFeesToPay
	}

	if config.HolderRegistry != "" {
		return config.Fees.Calculate(totalFees), nil
	}

	half := totalFees.QuoRaw(2)
	return types.FeesToPay{
		Team:    half,
		Holders: math.ZeroInt(),
		Reserve: half,
	}, nil
}

// verifyReserveCap clamps the reserve payout so the distribution never
// drags the module's liquid balance below the configured bank floor. The
// shortfall is deducted from the reserve share, down to zero.
func (k Keeper) verifyReserveCap(
	ctx context.Context,
	denom string,
	totalFees, reserveFees, bankLimit math.Int,
) (math.Int, error) {
	balance := k.bankKeeper.GetBalance(ctx, k.moduleAddr, denom)

	liquid := balance.Amount.Sub(totalFees)
	if liquid.IsNegative() {
		return math.Int{}, types.ErrNotEnoughFundsToPayFees
	}

	if liquid.LT(bankLimit) {
		shortfall := bankLimit.Sub(liquid)
		if shortfall.GT(reserveFees) {
			return math.ZeroInt(), nil
		}
		return reserveFees.Sub(shortfall), nil
	}

	return reserveFees, nil
}

// tokenWeight is the tiered per-token weight of the holder registry:
// ids 650-727 weigh 1.5, ids from 728 up weigh 2, the rest weigh 1.
func tokenWeight(id int) math.LegacyDec {
	switch {
	case id >= 650 && id <= 727:
		return math.LegacyNewDecWithPrec(15, 1)
	case id >= 728:
		return math.LegacyNewDec(2)
	default:
		return math.LegacyOneDec()
	}
}

// holderShares walks the registry's fixed id space, resolves each token's
// owner and accumulates per-owner weights. Owners are kept in first-seen
// order so payouts stay deterministic.
func (k Keeper) holderShares(ctx context.Context, registry string) (math.LegacyDec, []holderShare, error) {
	totalShares := math.LegacyZeroDec()
	index := make(map[string]int)
	var holders []holderShare

	for id := 1; id <= holderRegistryTokenCount; id++ {
		owner, found := k.collectionKeeper.ResolveOwner(ctx, registry, strconv.Itoa(id))
		if !found {
			continue
		}

		weight := tokenWeight(id)
		totalShares = totalShares.Add(weight)

		if i, ok := index[owner]; ok {
			holders[i].weight = holders[i].weight.Add(weight)
		} else {
			index[owner] = len(holders)
			holders = append(holders, holderShare{addr: owner, weight: weight})
		}
	}

	return totalShares, holders, nil
}
