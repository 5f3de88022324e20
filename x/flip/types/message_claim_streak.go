package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgClaimStreak = "claim_streak"

// MsgClaimStreak claims the cash reward whose tier exactly matches the
// sender's current streak.
type MsgClaimStreak struct {
	Sender string `json:"sender"`
}

type MsgClaimStreakResponse struct{}

func NewMsgClaimStreak(sender string) *MsgClaimStreak {
	return &MsgClaimStreak{Sender: sender}
}

func (msg *MsgClaimStreak) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address %q: %v", msg.Sender, err)
	}
	return nil
}
