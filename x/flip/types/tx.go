package types

import "context"

// MsgServer is the closed set of commands the module handles. The host
// chain's dispatcher routes decoded messages to exactly one of these; the
// compiler keeps the set exhaustive.
type MsgServer interface {
	// Wagering
	StartFlip(ctx context.Context, msg *MsgStartFlip) (*MsgStartFlipResponse, error)
	DoFlips(ctx context.Context, msg *MsgDoFlips) (*MsgDoFlipsResponse, error)

	// Streak mini game
	ClaimStreak(ctx context.Context, msg *MsgClaimStreak) (*MsgClaimStreakResponse, error)
	DepositNft(ctx context.Context, msg *MsgDepositNft) (*MsgDepositNftResponse, error)

	// Admin
	Distribute(ctx context.Context, msg *MsgDistribute) (*MsgDistributeResponse, error)
	AddDenom(ctx context.Context, msg *MsgAddDenom) (*MsgAddDenomResponse, error)
	RemoveDenoms(ctx context.Context, msg *MsgRemoveDenoms) (*MsgRemoveDenomsResponse, error)
	UpdateFees(ctx context.Context, msg *MsgUpdateFees) (*MsgUpdateFeesResponse, error)
	UpdateBetLimit(ctx context.Context, msg *MsgUpdateBetLimit) (*MsgUpdateBetLimitResponse, error)
	UpdateBankLimit(ctx context.Context, msg *MsgUpdateBankLimit) (*MsgUpdateBankLimitResponse, error)
	UpdateHolderRegistry(ctx context.Context, msg *MsgUpdateHolderRegistry) (*MsgUpdateHolderRegistryResponse, error)
	UpdatePause(ctx context.Context, msg *MsgUpdatePause) (*MsgUpdatePauseResponse, error)
	UpdateStreak(ctx context.Context, msg *MsgUpdateStreak) (*MsgUpdateStreakResponse, error)
	WithdrawNftFromPool(ctx context.Context, msg *MsgWithdrawNftFromPool) (*MsgWithdrawNftFromPoolResponse, error)
	SendExcessFunds(ctx context.Context, msg *MsgSendExcessFunds) (*MsgSendExcessFundsResponse, error)
	TransferNft(ctx context.Context, msg *MsgTransferNft) (*MsgTransferNftResponse, error)
}
