package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// adminConfig loads the config and gates the caller on the admin address.
func (k msgServer) adminConfig(ctx context.Context, admin string) (types.Config, error) {
	config, err := k.mustGetConfig(ctx)
	if err != nil {
		return types.Config{}, err
	}
	if err := ensureAdmin(config, admin); err != nil {
		return types.Config{}, err
	}
	return config, nil
}

// AddDenom starts supporting wagers in a new denom with a zeroed fee
// ledger entry.
func (k msgServer) AddDenom(
	goCtx context.Context,
	msg *types.MsgAddDenom,
) (*types.MsgAddDenomResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	config, err := k.adminConfig(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}

	if config.SupportsDenom(msg.Denom) {
		return nil, types.ErrDenomAlreadyExists
	}
	k.SetFees(ctx, msg.Denom, math.ZeroInt())

	config.SetLimit(msg.Denom, msg.Limits)
	k.SetConfig(ctx, config)

	return &types.MsgAddDenomResponse{}, nil
}

// RemoveDenoms stops supporting the given denoms. A denom that still holds
// undistributed fees cannot be removed.
func (k msgServer) RemoveDenoms(
	goCtx context.Context,
	msg *types.MsgRemoveDenoms,
) (*types.MsgRemoveDenomsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	config, err := k.adminConfig(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}

	for _, denom := range msg.Denoms {
		if !config.SupportsDenom(denom) {
			return nil, types.ErrDenomNotFound.Wrapf("denom %q", denom)
		}

		fees, _ := k.GetFees(ctx, denom)
		if !fees.IsZero() {
			return nil, types.ErrDenomStillHasFees.Wrapf("denom %q holds %s", denom, fees)
		}

		k.RemoveFees(ctx, denom)
		config.RemoveDenom(denom)
	}

	k.SetConfig(ctx, config)

	return &types.MsgRemoveDenomsResponse{}, nil
}

// UpdateFees replaces the fee schedule.
func (k msgServer) UpdateFees(
	goCtx context.Context,
	msg *types.MsgUpdateFees,
) (*types.MsgUpdateFeesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	config, err := k.adminConfig(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}

	config.Fees = msg.Fees
	k.SetConfig(ctx, config)

	return &types.MsgUpdateFeesResponse{}, nil
}

// UpdateBetLimit replaces the min and max bet of one denom.
func (k msgServer) UpdateBetLimit(
	goCtx context.Context,
	msg *types.MsgUpdateBetLimit,
) (*types.MsgUpdateBetLimitResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

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

	limit.Min = msg.MinBet
	limit.Max = msg.MaxBet
	config.SetLimit(msg.Denom, limit)
	k.SetConfig(ctx, config)

	return &types.MsgUpdateBetLimitResponse{}, nil
}

// UpdateBankLimit replaces the bank floor of one denom.
func (k msgServer) UpdateBankLimit(
	goCtx context.Context,
	msg *types.MsgUpdateBankLimit,
) (*types.MsgUpdateBankLimitResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

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

	limit.Bank = msg.Limit
	config.SetLimit(msg.Denom, limit)
	k.SetConfig(ctx, config)

	return &types.MsgUpdateBankLimitResponse{}, nil
}

// UpdateHolderRegistry points the holders' fee share at a new collection.
func (k msgServer) UpdateHolderRegistry(
	goCtx context.Context,
	msg *types.MsgUpdateHolderRegistry,
) (*types.MsgUpdateHolderRegistryResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	config, err := k.adminConfig(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}

	config.HolderRegistry = msg.CollectionAddr
	k.SetConfig(ctx, config)

	return &types.MsgUpdateHolderRegistryResponse{}, nil
}

// UpdatePause flips the emergency pause.
func (k msgServer) UpdatePause(
	goCtx context.Context,
	msg *types.MsgUpdatePause,
) (*types.MsgUpdatePauseResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	config, err := k.adminConfig(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}

	config.IsPaused = msg.IsPaused
	k.SetConfig(ctx, config)

	return &types.MsgUpdatePauseResponse{}, nil
}

// UpdateStreak updates the streak mini game knobs. Provided fields
// replace the stored ones; the combined result must still form a valid
// reward table.
func (k msgServer) UpdateStreak(
	goCtx context.Context,
	msg *types.MsgUpdateStreak,
) (*types.MsgUpdateStreakResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	config, err := k.adminConfig(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}

	if msg.NftPoolMax != nil {
		config.NftPoolMax = *msg.NftPoolMax
	}
	if msg.StreakNftWinningAmount != nil {
		config.StreakNftWinningAmount = *msg.StreakNftWinningAmount
	}

	rewards := k.GetStreakRewards(ctx)
	if msg.StreakRewards != nil {
		rewards = msg.StreakRewards
	}
	if err := types.ValidateStreakRewards(rewards, config.StreakNftWinningAmount); err != nil {
		return nil, err
	}

	if msg.AllowedToSendNft != nil {
		if len(msg.AllowedToSendNft) == 0 {
			return nil, types.ErrEmptyAllowedToSendNft
		}
		k.SetAllowedNftSenders(ctx, msg.AllowedToSendNft)
	}

	if msg.StreakRewards != nil {
		k.SetStreakRewards(ctx, msg.StreakRewards)
	}
	k.SetConfig(ctx, config)

	return &types.MsgUpdateStreakResponse{}, nil
}
