package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the bank module.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// CollectionKeeper is the external NFT collaborator: it moves token
// ownership and resolves the current owner of a token. The module never
// touches collection state directly so the core stays testable without a
// live registry.
type CollectionKeeper interface {
	TransferOwnership(ctx context.Context, collectionAddr, tokenId, recipient string) error
	ResolveOwner(ctx context.Context, collectionAddr, tokenId string) (owner string, found bool)
}
