package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultFlipsPerBlockLimit caps the settlement queue depth when none is
// provided at genesis.
const DefaultFlipsPerBlockLimit uint64 = 10

// DenomLimitRecord binds a supported denom to its limits. Kept as an
// ordered list so state serialization and iteration stay deterministic.
type DenomLimitRecord struct {
	Denom string     `json:"denom"`
	Limit DenomLimit `json:"limit"`
}

// Config is the module-wide configuration record. It is written at genesis
// and mutated only by admin messages.
type Config struct {
	// Admin is the only address allowed to run the management messages.
	Admin string `json:"admin"`

	// DenomLimits holds the supported denoms and their bet/bank boundaries.
	DenomLimits []DenomLimitRecord `json:"denom_limits"`

	// FlipsPerBlockLimit caps how many wagers may wait in the queue.
	FlipsPerBlockLimit uint64 `json:"flips_per_block_limit"`

	Wallets Wallets     `json:"wallets"`
	Fees    FeeSchedule `json:"fees"`

	// HolderRegistry is the collection whose token holders receive the
	// holders' fee share. Empty means no registry is configured and fees
	// split 50/50 between team and reserve.
	HolderRegistry string `json:"holder_registry,omitempty"`

	IsPaused bool `json:"is_paused"`

	// NftPoolMax bounds the streak mini game prize pool.
	NftPoolMax uint32 `json:"nft_pool_max"`

	// StreakNftWinningAmount is the streak length that triggers the
	// automatic NFT award. It must match the top streak reward tier.
	StreakNftWinningAmount uint32 `json:"streak_nft_winning_amount"`

	// StreakRewardDenom is the denom cash streak rewards are paid in.
	StreakRewardDenom string `json:"streak_reward_denom"`
}

// GetLimit returns the limits of a denom, if it is supported.
func (c Config) GetLimit(denom string) (DenomLimit, bool) {
	for _, record := range c.DenomLimits {
		if record.Denom == denom {
			return record.Limit, true
		}
	}
	return DenomLimit{}, false
}

// SupportsDenom reports whether wagers may be placed in the given denom.
func (c Config) SupportsDenom(denom string) bool {
	_, ok := c.GetLimit(denom)
	return ok
}

// SetLimit inserts or replaces the limits of a denom.
func (c *Config) SetLimit(denom string, limit DenomLimit) {
	for i, record := range c.DenomLimits {
		if record.Denom == denom {
			c.DenomLimits[i].Limit = limit
			return
		}
	}
	c.DenomLimits = append(c.DenomLimits, DenomLimitRecord{Denom: denom, Limit: limit})
}

// RemoveDenom drops a denom from the supported list. Returns false if it
// was not supported.
func (c *Config) RemoveDenom(denom string) bool {
	for i, record := range c.DenomLimits {
		if record.Denom == denom {
			c.DenomLimits = append(c.DenomLimits[:i], c.DenomLimits[i+1:]...)
			return true
		}
	}
	return false
}

func (c Config) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Admin); err != nil {
		return ErrInvalidAddress.Wrapf("invalid admin address %q: %v", c.Admin, err)
	}
	if _, err := sdk.AccAddressFromBech32(c.Wallets.Team); err != nil {
		return ErrInvalidAddress.Wrapf("invalid team wallet %q: %v", c.Wallets.Team, err)
	}
	if _, err := sdk.AccAddressFromBech32(c.Wallets.Reserve); err != nil {
		return ErrInvalidAddress.Wrapf("invalid reserve wallet %q: %v", c.Wallets.Reserve, err)
	}
	if c.HolderRegistry != "" {
		if _, err := sdk.AccAddressFromBech32(c.HolderRegistry); err != nil {
			return ErrInvalidAddress.Wrapf("invalid holder registry %q: %v", c.HolderRegistry, err)
		}
	}
	if len(c.DenomLimits) == 0 {
		return ErrInvalidConfig.Wrap("at least one denom must be supported")
	}
	seen := make(map[string]struct{}, len(c.DenomLimits))
	for _, record := range c.DenomLimits {
		if err := sdk.ValidateDenom(record.Denom); err != nil {
			return ErrInvalidConfig.Wrapf("invalid denom %q: %v", record.Denom, err)
		}
		if _, ok := seen[record.Denom]; ok {
			return ErrDenomAlreadyExists.Wrapf("denom %q is listed twice", record.Denom)
		}
		seen[record.Denom] = struct{}{}
		if err := record.Limit.Validate(); err != nil {
			return err
		}
	}
	if c.FlipsPerBlockLimit == 0 {
		return ErrInvalidConfig.Wrap("flips per block limit cannot be zero")
	}
	if err := sdk.ValidateDenom(c.StreakRewardDenom); err != nil {
		return ErrInvalidConfig.Wrapf("invalid streak reward denom %q: %v", c.StreakRewardDenom, err)
	}
	return c.Fees.Validate()
}
