package keeper

import (
	"context"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// WithdrawNftFromPool moves prize tokens out of the streak pool to the
// team wallet, either one by index or the whole pool at once.
func (k msgServer) WithdrawNftFromPool(
	goCtx context.Context,
	msg *types.MsgWithdrawNftFromPool,
) (*types.MsgWithdrawNftFromPoolResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	logger := k.Logger().With("method", "WithdrawNftFromPool")

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	config, err := k.adminConfig(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}

	pool := k.GetNftPool(ctx)

	switch {
	case msg.All:
		for _, reward := range pool {
			if err := k.collectionKeeper.TransferOwnership(ctx, reward.CollectionAddr, reward.TokenId, config.Wallets.Team); err != nil {
				return nil, err
			}
		}
		k.SetNftPool(ctx, nil)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeWithdrawNftFromPool,
			sdk.NewAttribute(types.AttributeKeyWithdraw, "all"),
			sdk.NewAttribute(types.AttributeKeyNftPoolSize, "0"),
		))

		logger.Info(fmt.Sprintf("withdrew all %d NFTs from the pool to %s", len(pool), config.Wallets.Team))

	case msg.Index != nil:
		index := int(*msg.Index)
		if index >= len(pool) {
			return nil, types.ErrNftIndexOutOfRange.Wrapf("index %d, pool size %d", index, len(pool))
		}

		reward := pool[index]
		if err := k.collectionKeeper.TransferOwnership(ctx, reward.CollectionAddr, reward.TokenId, config.Wallets.Team); err != nil {
			return nil, err
		}

		pool = append(pool[:index], pool[index+1:]...)
		k.SetNftPool(ctx, pool)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeWithdrawNftFromPool,
			sdk.NewAttribute(types.AttributeKeyWithdraw, fmt.Sprintf("%s/%s", reward.CollectionAddr, reward.TokenId)),
			sdk.NewAttribute(types.AttributeKeyNftPoolSize, strconv.Itoa(len(pool))),
		))

		logger.Info(fmt.Sprintf("withdrew NFT %s/%s from the pool to %s", reward.CollectionAddr, reward.TokenId, config.Wallets.Team))

	default:
		return nil, types.ErrEmptyWithdrawParams
	}

	return &types.MsgWithdrawNftFromPoolResponse{}, nil
}

// SendExcessFunds moves whatever the module holds above the accrued fees
// plus the configured bank floor of one denom to the reserve wallet.
func (k msgServer) SendExcessFunds(
	goCtx context.Context,
	msg *types.MsgSendExcessFunds,
) (*types.MsgSendExcessFundsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	logger := k.Logger().With("method", "SendExcessFunds")

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	config, err := k.adminConfig(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}

	limit, found := config.GetLimit(msg.Denom)
	if !found {
		return nil, types.ErrNoBetLimits.Wrapf("denom %q", msg.Denom)
	}

	fees, _ := k.GetFees(ctx, msg.Denom)
	balance := k.bankKeeper.GetBalance(ctx, k.moduleAddr, msg.Denom)

	liquid := balance.Amount.Sub(fees)
	if liquid.LTE(limit.Bank) {
		return nil, types.ErrNoExcessFunds
	}

	excess := sdk.NewCoin(msg.Denom, liquid.Sub(limit.Bank))
	reserve, err := sdk.AccAddressFromBech32(config.Wallets.Reserve)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("reserve wallet: %v", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, reserve, sdk.NewCoins(excess)); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSendExcessFunds,
		sdk.NewAttribute(types.AttributeKeyAmount, excess.String()),
	))

	logger.Info(fmt.Sprintf("sent excess funds %s to the reserve wallet", excess))

	return &types.MsgSendExcessFundsResponse{Amount: excess}, nil
}

// TransferNft recovers a token the module holds outside the streak pool by
// sending it to the team wallet. Pooled tokens are off limits, they belong
// to the streak game until withdrawn through the pool.
func (k msgServer) TransferNft(
	goCtx context.Context,
	msg *types.MsgTransferNft,
) (*types.MsgTransferNftResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	logger := k.Logger().With("method", "TransferNft")

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	config, err := k.adminConfig(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}

	if k.IsNftInPool(ctx, msg.CollectionAddr, msg.TokenId) {
		return nil, types.ErrNftInPool
	}

	if err := k.collectionKeeper.TransferOwnership(ctx, msg.CollectionAddr, msg.TokenId, config.Wallets.Team); err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("transferred NFT %s/%s to %s", msg.CollectionAddr, msg.TokenId, config.Wallets.Team))

	return &types.MsgTransferNftResponse{}, nil
}
