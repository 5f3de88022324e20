package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgDoFlips = "do_flips"

// MsgDoFlips settles every wager whose enqueue block is behind the current
// one. Anyone may send it; the batch seed comes from the settling block.
type MsgDoFlips struct {
	Sender string `json:"sender"`
}

type MsgDoFlipsResponse struct {
	Settled uint64 `json:"settled"`
}

func NewMsgDoFlips(sender string) *MsgDoFlips {
	return &MsgDoFlips{Sender: sender}
}

func (msg *MsgDoFlips) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address %q: %v", msg.Sender, err)
	}
	return nil
}
