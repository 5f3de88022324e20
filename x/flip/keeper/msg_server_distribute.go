package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// Distribute pays out the accrued fees of one denom: pro-rata to the
// holder set, then the team, then the bank-floor-clamped reserve. The
// ledger keeps whatever was not actually disbursed, so rounding dust rolls
// into the next cycle.
func (k msgServer) Distribute(
	goCtx context.Context,
	msg *types.MsgDistribute,
) (*types.MsgDistributeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	logger := k.Logger().With("method", "Distribute")

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	config, err := k.mustGetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := ensureAdmin(config, msg.Admin); err != nil {
		return nil, err
	}

	limit, found := config.GetLimit(msg.Denom)
	if !found {
		return nil, types.ErrNoBetLimits.Wrapf("denom %q", msg.Denom)
	}

	totalFees, _ := k.GetFees(ctx, msg.Denom)

	feesToPay, err := calculateFeesToPay(config, totalFees)
	if err != nil {
		return nil, err
	}

	reserveToSend, err := k.verifyReserveCap(ctx, msg.Denom, totalFees, feesToPay.Reserve, limit.Bank)
	if err != nil {
		return nil, err
	}

	paidToHolders := math.ZeroInt()
	totalShares := math.LegacyZeroDec()
	feesPerToken := math.LegacyZeroDec()

	if feesToPay.Holders.IsPositive() {
		var holders []holderShare
		totalShares, holders, err = k.holderShares(ctx, config.HolderRegistry)
		if err != nil {
			return nil, err
		}
		if totalShares.IsZero() {
			return nil, types.ErrInvalidConfig.Wrap("holder registry has no resolvable owners")
		}

		feesPerToken = math.LegacyNewDecFromInt(feesToPay.Holders).Quo(totalShares)

		for _, holder := range holders {
			amount := feesPerToken.Mul(holder.weight).TruncateInt()
			if amount.IsZero() {
				continue
			}

			addr, err := sdk.AccAddressFromBech32(holder.addr)
			if err != nil {
				return nil, types.ErrInvalidAddress.Wrapf("holder %q: %v", holder.addr, err)
			}
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, sdk.NewCoins(sdk.NewCoin(msg.Denom, amount))); err != nil {
				return nil, err
			}

			paidToHolders = paidToHolders.Add(amount)
		}
	}

	if feesToPay.Team.IsPositive() {
		team, err := sdk.AccAddressFromBech32(config.Wallets.Team)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("team wallet: %v", err)
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, team, sdk.NewCoins(sdk.NewCoin(msg.Denom, feesToPay.Team))); err != nil {
			return nil, err
		}
	}

	if reserveToSend.IsPositive() {
		reserve, err := sdk.AccAddressFromBech32(config.Wallets.Reserve)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("reserve wallet: %v", err)
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, reserve, sdk.NewCoins(sdk.NewCoin(msg.Denom, reserveToSend))); err != nil {
			return nil, err
		}
	}

	// Only what actually left the module is deducted; the remainder,
	// including rounding dust and a clamped reserve share, stays accrued.
	remaining := totalFees.Sub(paidToHolders).Sub(feesToPay.Team).Sub(reserveToSend)
	if remaining.IsNegative() {
		return nil, types.ErrNotEnoughFundsToPayFees.Wrapf("over-disbursed %s%s", remaining.Neg(), msg.Denom)
	}
	k.SetFees(ctx, msg.Denom, remaining)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDistribute,
		sdk.NewAttribute(types.AttributeKeyTotalFees, totalFees.String()),
		sdk.NewAttribute(types.AttributeKeyReservePaid, reserveToSend.String()),
		sdk.NewAttribute(types.AttributeKeyTeamPaid, feesToPay.Team.String()),
		sdk.NewAttribute(types.AttributeKeyHoldersPaid, paidToHolders.String()),
		sdk.NewAttribute(types.AttributeKeyFeesPerToken, feesPerToken.String()),
		sdk.NewAttribute(types.AttributeKeyTotalShares, totalShares.String()),
	))

	logger.Info(fmt.Sprintf("distributed %s%s: team %s, holders %s, reserve %s", totalFees, msg.Denom, feesToPay.Team, paidToHolders, reserveToSend))

	return &types.MsgDistributeResponse{
		TotalFees:   totalFees,
		TeamPaid:    feesToPay.Team,
		ReservePaid: reserveToSend,
		HoldersPaid: paidToHolders,
	}, nil
}
