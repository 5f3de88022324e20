package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgDepositNft = "deposit_nft"

// MsgDepositNft is the receive-NFT notification that adds a token to the
// streak prize pool. Sender is the depositing wallet and must be on the
// allow-list; CollectionAddr is the collection the token belongs to.
type MsgDepositNft struct {
	Sender         string `json:"sender"`
	CollectionAddr string `json:"collection_addr"`
	TokenId        string `json:"token_id"`
}

type MsgDepositNftResponse struct {
	PoolSize uint32 `json:"pool_size"`
}

func NewMsgDepositNft(sender, collectionAddr, tokenId string) *MsgDepositNft {
	return &MsgDepositNft{
		Sender:         sender,
		CollectionAddr: collectionAddr,
		TokenId:        tokenId,
	}
}

func (msg *MsgDepositNft) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address %q: %v", msg.Sender, err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.CollectionAddr); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid collection address %q: %v", msg.CollectionAddr, err)
	}
	if msg.TokenId == "" {
		return sdkerrors.Wrap(ErrInvalidConfig, "token id cannot be empty")
	}
	return nil
}
