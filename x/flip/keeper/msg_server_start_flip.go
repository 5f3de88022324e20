package keeper

import (
	"context"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// StartFlip validates and enqueues a wager. The funds the sender attaches
// are escrowed on the module account; the flip fee portion is accrued into
// the fee ledger right away, the bet portion backs the potential payout.
func (k msgServer) StartFlip(
	goCtx context.Context,
	msg *types.MsgStartFlip,
) (*types.MsgStartFlipResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	logger := k.Logger().With("method", "StartFlip")

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	config, err := k.mustGetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := ensureNotPaused(config); err != nil {
		return nil, err
	}

	// At most one pending wager per wallet, and a bounded queue overall.
	pending := k.GetPendingFlips(ctx)
	for _, todo := range pending {
		if todo.Wallet == msg.Sender {
			return nil, types.ErrAlreadyStartedFlip
		}
	}
	if uint64(len(pending)) >= config.FlipsPerBlockLimit {
		return nil, types.ErrBlockLimitReached
	}

	denom := msg.Funds.Denom
	if !config.SupportsDenom(denom) {
		return nil, types.ErrWrongDenom.Wrapf("denom %q", denom)
	}
	limit, found := config.GetLimit(denom)
	if !found {
		return nil, types.ErrNoBetLimits.Wrapf("denom %q", denom)
	}

	if msg.Amount.GT(limit.Max) {
		return nil, types.ErrOverTheLimitBet.Wrapf("max limit %s%s", limit.Max, denom)
	}
	if msg.Amount.LT(limit.Min) {
		return nil, types.ErrUnderTheLimitBet.Wrapf("min limit %s%s", limit.Min, denom)
	}

	// The attached funds must be exactly the bet plus the flip fee.
	feeAmount := config.Fees.FlipFee(msg.Amount)
	shouldPay := msg.Amount.Add(feeAmount)
	if !msg.Funds.Amount.Equal(shouldPay) {
		return nil, types.ErrWrongPaidAmount.Wrapf("expected %s%s, got %s", shouldPay, denom, msg.Funds)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("%v", err)
	}

	// Escrow before the solvency check so the check sees the attached
	// funds, matching the contract model where funds are credited first.
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, sdk.NewCoins(msg.Funds)); err != nil {
		return nil, err
	}

	// The module must be able to cover the worst case payout of 2x the bet
	// with its liquid balance, fees excluded.
	fees, _ := k.GetFees(ctx, denom)
	balance := k.bankKeeper.GetBalance(ctx, k.moduleAddr, denom)
	if balance.Amount.Sub(fees).LT(msg.Amount.MulRaw(2)) {
		return nil, types.ErrContractMissingFunds.Wrapf("denom %q", denom)
	}

	k.SetFees(ctx, denom, fees.Add(feeAmount))

	id := k.NextFlipId(ctx)
	pending = append(pending, types.PendingFlip{
		Id:        id,
		Wallet:    msg.Sender,
		Amount:    sdk.NewCoin(denom, msg.Amount),
		Pick:      msg.Pick,
		Block:     ctx.BlockHeight(),
		Timestamp: ctx.BlockTime(),
	})
	k.SetPendingFlips(ctx, pending)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeStartFlip,
		sdk.NewAttribute(types.AttributeKeyId, strconv.FormatUint(id, 10)),
	))

	logger.Info(fmt.Sprintf("flip %d started by %s for %s, pick %s", id, msg.Sender, msg.Funds, msg.Pick))

	return &types.MsgStartFlipResponse{Id: id}, nil
}
