package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type txIndexKey struct{}

// WithTxIndex tags the context with the index of the current transaction
// within its block. The settlement seed folds it in; when the host does not
// provide one the index defaults to zero.
func WithTxIndex(ctx sdk.Context, index uint32) sdk.Context {
	return ctx.WithValue(txIndexKey{}, index)
}

// TxIndexFromContext returns the transaction index set by the host, or 0.
func TxIndexFromContext(ctx context.Context) uint32 {
	if index, ok := ctx.Value(txIndexKey{}).(uint32); ok {
		return index
	}
	return 0
}
