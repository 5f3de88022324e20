package keeper

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/trueeth/cosmos-coinflip-kujira/x/flip/types"
)

// The outcome derivation below is NOT a cryptographic RNG. It hashes
// chain-observable values (tx index, block height, block time) and folds a
// predictable per-wallet perturbation in. It is kept bit-for-bit compatible
// with the original contract because changing it changes every settlement
// outcome; the two-block settlement delay is the only mitigation.

// batchSeed derives the settlement-wide seed: the byte sum of the hex
// digest of sha256("<txIndex><height><timeNanos>").
func batchSeed(txIndex uint32, blockHeight int64, blockTimeNanos int64) uint64 {
	digest := sha256.Sum256([]byte(fmt.Sprintf("%d%d%d", txIndex, blockHeight, blockTimeNanos)))

	var seed uint64
	for _, c := range []byte(hex.EncodeToString(digest[:])) {
		seed += uint64(c)
	}
	return seed
}

// walletEntropy is the per-wallet perturbation: the byte sum of the bech32
// address string.
func walletEntropy(wallet string) uint64 {
	var sum uint64
	for _, c := range []byte(wallet) {
		sum += uint64(c)
	}
	return sum
}

// flipOutcome resolves one wager: parity of seed+entropy decides the coin,
// and the wager wins when the pick matches it.
func flipOutcome(pick types.PickType, seed, entropy uint64) bool {
	coin := (seed+entropy)%2 == 0

	wonHeads := pick == types.PickHeads && coin
	wonTails := pick == types.PickTails && !coin

	return wonHeads || wonTails
}
