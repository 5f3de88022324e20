package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Admin messages. Every one of them is gated on the config admin address.

func validateAdmin(admin string) error {
	if _, err := sdk.AccAddressFromBech32(admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address %q: %v", admin, err)
	}
	return nil
}

// MsgDistribute pays out the accrued fees of one denom to the team, the
// holders and the reserve.
type MsgDistribute struct {
	Admin string `json:"admin"`
	Denom string `json:"denom"`
}

type MsgDistributeResponse struct {
	TotalFees   math.Int `json:"total_fees"`
	TeamPaid    math.Int `json:"team_paid"`
	ReservePaid math.Int `json:"reserve_paid"`
	HoldersPaid math.Int `json:"holders_paid"`
}

func (msg *MsgDistribute) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	return sdk.ValidateDenom(msg.Denom)
}

// MsgAddDenom starts supporting wagers in a new denom.
type MsgAddDenom struct {
	Admin  string     `json:"admin"`
	Denom  string     `json:"denom"`
	Limits DenomLimit `json:"limits"`
}

type MsgAddDenomResponse struct{}

func (msg *MsgAddDenom) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return err
	}
	return msg.Limits.Validate()
}

// MsgRemoveDenoms stops supporting the given denoms. Fails if any of them
// still holds undistributed fees.
type MsgRemoveDenoms struct {
	Admin  string   `json:"admin"`
	Denoms []string `json:"denoms"`
}

type MsgRemoveDenomsResponse struct{}

func (msg *MsgRemoveDenoms) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if len(msg.Denoms) == 0 {
		return sdkerrors.Wrap(ErrInvalidConfig, "at least one denom must be provided")
	}
	for _, denom := range msg.Denoms {
		if err := sdk.ValidateDenom(denom); err != nil {
			return err
		}
	}
	return nil
}

// MsgUpdateFees replaces the fee schedule.
type MsgUpdateFees struct {
	Admin string      `json:"admin"`
	Fees  FeeSchedule `json:"fees"`
}

type MsgUpdateFeesResponse struct{}

func (msg *MsgUpdateFees) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	return msg.Fees.Validate()
}

// MsgUpdateBetLimit replaces the min/max bet of one denom.
type MsgUpdateBetLimit struct {
	Admin  string   `json:"admin"`
	Denom  string   `json:"denom"`
	MinBet math.Int `json:"min_bet"`
	MaxBet math.Int `json:"max_bet"`
}

type MsgUpdateBetLimitResponse struct{}

func (msg *MsgUpdateBetLimit) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return err
	}
	if msg.MinBet.IsNil() || msg.MaxBet.IsNil() || msg.MinBet.IsNegative() {
		return ErrInvalidDenomLimit.Wrap("bet limits must be set and non-negative")
	}
	if msg.MinBet.GT(msg.MaxBet) {
		return ErrInvalidDenomLimit.Wrapf("min bet %s is above max bet %s", msg.MinBet, msg.MaxBet)
	}
	return nil
}

// MsgUpdateBankLimit replaces the bank floor of one denom.
type MsgUpdateBankLimit struct {
	Admin string   `json:"admin"`
	Denom string   `json:"denom"`
	Limit math.Int `json:"limit"`
}

type MsgUpdateBankLimitResponse struct{}

func (msg *MsgUpdateBankLimit) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return err
	}
	if msg.Limit.IsNil() || msg.Limit.IsNegative() {
		return ErrInvalidDenomLimit.Wrap("bank limit must be set and non-negative")
	}
	return nil
}

// MsgUpdateHolderRegistry points the holders' fee share at a collection.
type MsgUpdateHolderRegistry struct {
	Admin          string `json:"admin"`
	CollectionAddr string `json:"collection_addr"`
}

type MsgUpdateHolderRegistryResponse struct{}

func (msg *MsgUpdateHolderRegistry) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.CollectionAddr); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid collection address %q: %v", msg.CollectionAddr, err)
	}
	return nil
}

// MsgUpdatePause flips the emergency pause.
type MsgUpdatePause struct {
	Admin    string `json:"admin"`
	IsPaused bool   `json:"is_paused"`
}

type MsgUpdatePauseResponse struct{}

func (msg *MsgUpdatePause) ValidateBasic() error {
	return validateAdmin(msg.Admin)
}

// MsgUpdateStreak updates the streak mini game knobs. Nil fields are left
// untouched.
type MsgUpdateStreak struct {
	Admin                  string         `json:"admin"`
	NftPoolMax             *uint32        `json:"nft_pool_max,omitempty"`
	StreakNftWinningAmount *uint32        `json:"streak_nft_winning_amount,omitempty"`
	StreakRewards          []StreakReward `json:"streak_rewards,omitempty"`
	AllowedToSendNft       []string       `json:"allowed_to_send_nft,omitempty"`
}

type MsgUpdateStreakResponse struct{}

func (msg *MsgUpdateStreak) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	for _, addr := range msg.AllowedToSendNft {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid allowed sender %q: %v", addr, err)
		}
	}
	return nil
}

// MsgWithdrawNftFromPool removes one entry (by index) or every entry from
// the prize pool, sending the tokens to the team wallet.
type MsgWithdrawNftFromPool struct {
	Admin string  `json:"admin"`
	Index *uint32 `json:"index,omitempty"`
	All   bool    `json:"all,omitempty"`
}

type MsgWithdrawNftFromPoolResponse struct{}

func (msg *MsgWithdrawNftFromPool) ValidateBasic() error {
	return validateAdmin(msg.Admin)
}

// MsgSendExcessFunds pays anything above the bank floor plus the unpaid
// fees to the reserve wallet.
type MsgSendExcessFunds struct {
	Admin string `json:"admin"`
	Denom string `json:"denom"`
}

type MsgSendExcessFundsResponse struct {
	Amount sdk.Coin `json:"amount"`
}

func (msg *MsgSendExcessFunds) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	return sdk.ValidateDenom(msg.Denom)
}

// MsgTransferNft moves a token that was sent to the module by mistake to
// the team wallet. Fails if the token is pool-tracked.
type MsgTransferNft struct {
	Admin          string `json:"admin"`
	CollectionAddr string `json:"collection_addr"`
	TokenId        string `json:"token_id"`
}

type MsgTransferNftResponse struct{}

func (msg *MsgTransferNft) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.CollectionAddr); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid collection address %q: %v", msg.CollectionAddr, err)
	}
	if msg.TokenId == "" {
		return sdkerrors.Wrap(ErrInvalidConfig, "token id cannot be empty")
	}
	return nil
}
