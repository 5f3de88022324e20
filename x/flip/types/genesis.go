package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState seeds the module. It plays the role of the original
// contract's instantiate message plus the exported live state.
type GenesisState struct {
	Config            Config         `json:"config"`
	StreakRewards     []StreakReward `json:"streak_rewards"`
	AllowedNftSenders []string       `json:"allowed_nft_senders"`

	// Live state, empty on a fresh chain.
	FeeLedger    []FeeBalance  `json:"fee_ledger,omitempty"`
	PendingFlips []PendingFlip `json:"pending_flips,omitempty"`
	FlipHistory  []Flip        `json:"flip_history,omitempty"`
	NftPool      []NftReward   `json:"nft_pool,omitempty"`
	Scores       []ScoreRecord `json:"scores,omitempty"`
	NextFlipId   uint64        `json:"next_flip_id,omitempty"`
}

// FeeBalance is one fee ledger entry: the accrued, undistributed fees of a
// denom.
type FeeBalance struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// ScoreRecord keys a streak score by wallet for import/export.
type ScoreRecord struct {
	Wallet string    `json:"wallet"`
	Score  FlipScore `json:"score"`
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return err
	}
	if err := ValidateStreakRewards(gs.StreakRewards, gs.Config.StreakNftWinningAmount); err != nil {
		return err
	}
	if len(gs.AllowedNftSenders) == 0 {
		return ErrEmptyAllowedToSendNft
	}
	for _, addr := range gs.AllowedNftSenders {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return ErrInvalidAddress.Wrapf("invalid allowed sender %q: %v", addr, err)
		}
	}
	for _, balance := range gs.FeeLedger {
		if err := sdk.ValidateDenom(balance.Denom); err != nil {
			return err
		}
		if balance.Amount.IsNil() || balance.Amount.IsNegative() {
			return ErrInvalidConfig.Wrapf("fee ledger for %q cannot be negative", balance.Denom)
		}
	}
	if uint32(len(gs.NftPool)) > gs.Config.NftPoolMax {
		return ErrMaxNftRewardsReached
	}
	seen := make(map[string]struct{}, len(gs.PendingFlips))
	for _, pending := range gs.PendingFlips {
		if _, ok := seen[pending.Wallet]; ok {
			return ErrAlreadyStartedFlip.Wrapf("wallet %s has more than one pending flip", pending.Wallet)
		}
		seen[pending.Wallet] = struct{}{}
		if pending.Id >= gs.NextFlipId {
			return ErrInvalidConfig.Wrapf("pending flip id %d is not below the next id %d", pending.Id, gs.NextFlipId)
		}
	}
	return nil
}
