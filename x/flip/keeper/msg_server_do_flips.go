package keeper

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// DoFlips settles every wager committed to a past block. The batch seed is
// fixed before any wager resolves, wagers settle in queue-insertion order,
// and the whole batch aborts if any denom cannot cover its worst case
// payout.
func (k msgServer) DoFlips(
	goCtx context.Context,
	msg *types.MsgDoFlips,
) (*types.MsgDoFlipsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	logger := k.Logger().With("method", "DoFlips")

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

	pending := k.GetPendingFlips(ctx)
	if len(pending) == 0 {
		return nil, types.ErrNoFlipsToDo
	}

	// Partition the queue: wagers enqueued at the current block (or later)
	// stay queued so their seed comes from a block they could not predict.
	var (
		ready      []types.PendingFlip
		notReady   []types.PendingFlip
		denomOrder []string
	)
	totals := make(map[string]math.Int, 1)
	for _, todo := range pending {
		if todo.Block >= ctx.BlockHeight() {
			notReady = append(notReady, todo)
			continue
		}
		ready = append(ready, todo)

		if total, ok := totals[todo.Amount.Denom]; ok {
			totals[todo.Amount.Denom] = total.Add(todo.Amount.Amount)
		} else {
			totals[todo.Amount.Denom] = todo.Amount.Amount
			denomOrder = append(denomOrder, todo.Amount.Denom)
		}
	}
	if len(ready) == 0 {
		return nil, types.ErrNoFlipsToDoThisBlock
	}

	k.SetPendingFlips(ctx, notReady)

	// Re-check solvency against the aggregate worst case per denom.
	for _, denom := range denomOrder {
		fees, _ := k.GetFees(ctx, denom)
		balance := k.bankKeeper.GetBalance(ctx, k.moduleAddr, denom)
		if balance.Amount.Sub(fees).LT(totals[denom].MulRaw(2)) {
			return nil, types.ErrContractMissingFunds.Wrapf("denom %q", denom)
		}
	}

	seed := batchSeed(types.TxIndexFromContext(ctx), ctx.BlockHeight(), ctx.BlockTime().UnixNano())
	history := k.GetFlipHistory(ctx)

	for _, todo := range ready {
		won := flipOutcome(todo.Pick, seed, walletEntropy(todo.Wallet))

		score, found := k.GetScore(ctx, todo.Wallet)
		if found {
			score.Update(won, ctx.BlockTime())
		} else {
			score = types.NewFlipScore(won, ctx.BlockTime())
		}

		flip := types.Flip{
			Wallet:    todo.Wallet,
			Amount:    todo.Amount,
			Result:    won,
			Streak:    score.Streak,
			Timestamp: ctx.BlockTime(),
		}

		// The automatic award fires the moment the streak hits the NFT
		// winning length, and resets the streak.
		if score.Streak.Count == config.StreakNftWinningAmount {
			if err := k.awardStreakPrize(ctx, config, todo.Wallet, todo.Id, seed); err != nil {
				return nil, err
			}
			score.Streak.Reset()
		}

		k.SetScore(ctx, todo.Wallet, score)
		history = pushFlip(history, flip)

		if won {
			wallet, err := sdk.AccAddressFromBech32(todo.Wallet)
			if err != nil {
				return nil, types.ErrInvalidAddress.Wrapf("%v", err)
			}
			payout := sdk.NewCoin(todo.Amount.Denom, todo.Amount.Amount.MulRaw(2))
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, wallet, sdk.NewCoins(payout)); err != nil {
				return nil, err
			}
		}

		result := types.AttributeValueLost
		if won {
			result = types.AttributeValueWon
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeFlip,
			sdk.NewAttribute(types.AttributeKeyFlipper, todo.Wallet),
			sdk.NewAttribute(types.AttributeKeyFlipId, strconv.FormatUint(todo.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyFlipAmount, todo.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyFlipPick, string(todo.Pick)),
			sdk.NewAttribute(types.AttributeKeyResult, result),
		))
	}

	k.SetFlipHistory(ctx, history)

	logger.Info(fmt.Sprintf("settled %d flips at height %d, %d still waiting", len(ready), ctx.BlockHeight(), len(notReady)))

	return &types.MsgDoFlipsResponse{Settled: uint64(len(ready))}, nil
}

// awardStreakPrize pays the streak mini game jackpot: a randomly drawn NFT
// from the pool, or the top cash tier when the pool is empty.
func (k msgServer) awardStreakPrize(
	ctx sdk.Context,
	config types.Config,
	wallet string,
	flipId uint64,
	seed uint64,
) error {
	event := sdk.NewEvent(
		types.EventTypeStreakClaim,
		sdk.NewAttribute(types.AttributeKeyFlipper, wallet),
		sdk.NewAttribute(types.AttributeKeyFlipId, strconv.FormatUint(flipId, 10)),
	)

	pool := k.GetNftPool(ctx)
	if len(pool) == 0 {
		rewards := k.GetStreakRewards(ctx)
		if len(rewards) == 0 {
			return types.ErrInvalidStreakRewards.Wrap("no streak rewards configured")
		}
		top := rewards[len(rewards)-1]

		recipient, err := sdk.AccAddressFromBech32(wallet)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("%v", err)
		}
		prize := sdk.NewCoin(config.StreakRewardDenom, top.Reward)
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(prize)); err != nil {
			return err
		}

		event = event.AppendAttributes(sdk.NewAttribute(types.AttributeKeyClaim, prize.String()))
	} else {
		index := seed % uint64(len(pool))
		nft := pool[index]

		if err := k.collectionKeeper.TransferOwnership(ctx, nft.CollectionAddr, nft.TokenId, wallet); err != nil {
			return err
		}

		pool = append(pool[:index], pool[index+1:]...)
		k.SetNftPool(ctx, pool)

		event = event.AppendAttributes(sdk.NewAttribute(
			types.AttributeKeyClaim,
			fmt.Sprintf("%s/%s", nft.CollectionAddr, nft.TokenId),
		))
	}

	ctx.EventManager().EmitEvent(event)
	return nil
}
