package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgStartFlip = "start_flip"

// MsgStartFlip enqueues a wager. Funds is what the sender attaches and must
// equal the bet amount plus the flip fee.
type MsgStartFlip struct {
	Sender string   `json:"sender"`
	Pick   PickType `json:"pick"`
	Amount math.Int `json:"amount"`
	Funds  sdk.Coin `json:"funds"`
}

type MsgStartFlipResponse struct {
	Id uint64 `json:"id"`
}

func NewMsgStartFlip(sender string, pick PickType, amount math.Int, funds sdk.Coin) *MsgStartFlip {
	return &MsgStartFlip{
		Sender: sender,
		Pick:   pick,
		Amount: amount,
		Funds:  funds,
	}
}

func (msg *MsgStartFlip) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address %q: %v", msg.Sender, err)
	}
	if !msg.Pick.Valid() {
		return sdkerrors.Wrapf(ErrInvalidPick, "got %q", msg.Pick)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrWrongPaidAmount, "bet amount must be positive")
	}
	if err := msg.Funds.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrWrongPaidAmount, "invalid funds: %v", err)
	}
	if msg.Funds.IsZero() {
		return sdkerrors.Wrap(ErrWrongPaidAmount, "no funds sent")
	}
	return nil
}
