package keeper

import (
	"context"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// DepositNft adds a token to the streak prize pool. Only allow-listed
// wallets may deposit, and the pool is capacity bounded.
func (k msgServer) DepositNft(
	goCtx context.Context,
	msg *types.MsgDepositNft,
) (*types.MsgDepositNftResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	logger := k.Logger().With("method", "DepositNft")

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	config, err := k.mustGetConfig(ctx)
	if err != nil {
		return nil, err
	}

	if !k.IsAllowedNftSender(ctx, msg.Sender) {
		return nil, types.ErrUnauthorizedToSendNft
	}

	pool := k.GetNftPool(ctx)
	if uint32(len(pool)) >= config.NftPoolMax {
		return nil, types.ErrMaxNftRewardsReached
	}

	pool = append(pool, types.NewNftReward(msg.CollectionAddr, msg.TokenId))
	k.SetNftPool(ctx, pool)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAddNft,
		sdk.NewAttribute(types.AttributeKeyNftContract, msg.CollectionAddr),
		sdk.NewAttribute(types.AttributeKeyTokenId, msg.TokenId),
		sdk.NewAttribute(types.AttributeKeyNftPoolSize, strconv.Itoa(len(pool))),
	))

	logger.Info(fmt.Sprintf("NFT %s/%s added to the pool by %s", msg.CollectionAddr, msg.TokenId, msg.Sender))

	return &types.MsgDepositNftResponse{PoolSize: uint32(len(pool))}, nil
}
