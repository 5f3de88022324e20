package keeper

import (
	"context"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// ClaimStreak pays the cash tier whose streak length matches the sender's
// current streak exactly. Overshooting a tier forfeits it: only an exact
// match claims.
func (k msgServer) ClaimStreak(
	goCtx context.Context,
	msg *types.MsgClaimStreak,
) (*types.MsgClaimStreakResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	logger := k.Logger().With("method", "ClaimStreak")

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

	rewards := k.GetStreakRewards(ctx)
	if len(rewards) == 0 {
		return nil, types.ErrInvalidStreakRewards.Wrap("no streak rewards configured")
	}

	score, found := k.GetScore(ctx, msg.Sender)
	if !found {
		return nil, types.ErrScoreNotFound
	}

	if score.Streak.Count < rewards[0].Streak {
		return nil, types.ErrLowStreak.Wrapf("minimum streak is %d", rewards[0].Streak)
	}

	for _, reward := range rewards {
		if reward.Streak != score.Streak.Count {
			continue
		}

		score.Streak.Reset()
		k.SetScore(ctx, msg.Sender, score)

		recipient, err := sdk.AccAddressFromBech32(msg.Sender)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("%v", err)
		}
		prize := sdk.NewCoin(config.StreakRewardDenom, reward.Reward)
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(prize)); err != nil {
			return nil, err
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeStreakClaim,
			sdk.NewAttribute(types.AttributeKeyFlipper, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyStreak, strconv.FormatUint(uint64(reward.Streak), 10)),
			sdk.NewAttribute(types.AttributeKeyClaim, prize.String()),
		))

		logger.Info(fmt.Sprintf("%s claimed %s for a streak of %d", msg.Sender, prize, reward.Streak))

		return &types.MsgClaimStreakResponse{}, nil
	}

	return nil, types.ErrNotEligibleForStreakReward.Wrapf("streak %d has no exact reward tier", score.Streak.Count)
}
