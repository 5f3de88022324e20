package types

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PickType is the side of the coin a wager is placed on.
type PickType string

const (
	PickHeads PickType = "heads"
	PickTails PickType = "tails"
)

func (p PickType) Valid() bool {
	return p == PickHeads || p == PickTails
}

// DenomLimit holds the per-denom bet boundaries and the minimum liquid
// balance (bank) the module must retain in that denom.
type DenomLimit struct {
	Min  math.Int `json:"min"`
	Max  math.Int `json:"max"`
	Bank math.Int `json:"bank"`
}

func (l DenomLimit) Validate() error {
	if l.Min.IsNil() || l.Max.IsNil() || l.Bank.IsNil() {
		return ErrInvalidDenomLimit.Wrap("limit amounts must be set")
	}
	if l.Min.IsNegative() || l.Max.IsNegative() || l.Bank.IsNegative() {
		return ErrInvalidDenomLimit.Wrap("limit amounts cannot be negative")
	}
	if l.Min.GT(l.Max) {
		return ErrInvalidDenomLimit.Wrapf("min bet %s is above max bet %s", l.Min, l.Max)
	}
	return nil
}

// Wallets are the payout destinations for fee distribution.
type Wallets struct {
	Team    string `json:"team"`
	Reserve string `json:"reserve"`
}

// FeeSchedule holds the basis point percentages used to skim and split fees.
// TeamBps, HoldersBps and ReserveBps split the accrued fees on distribution;
// FlipBps is skimmed from every wager at enqueue time.
type FeeSchedule struct {
	TeamBps    uint64 `json:"team_bps"`
	HoldersBps uint64 `json:"holders_bps"`
	ReserveBps uint64 `json:"reserve_bps"`
	FlipBps    uint64 `json:"flip_bps"`
}

const bpsDenominator = 10000

func (f FeeSchedule) Validate() error {
	for _, bps := range []uint64{f.TeamBps, f.HoldersBps, f.ReserveBps, f.FlipBps} {
		if bps > bpsDenominator {
			return ErrInvalidFees.Wrapf("bps value %d is above %d", bps, bpsDenominator)
		}
	}
	return nil
}

// BpsToDec converts a basis point value to its decimal fraction.
func BpsToDec(bps uint64) math.LegacyDec {
	return math.LegacyNewDec(int64(bps)).QuoInt64(bpsDenominator)
}

// FlipFee returns the fee skimmed from a wager of the given amount,
// truncated toward zero.
func (f FeeSchedule) FlipFee(amount math.Int) math.Int {
	return BpsToDec(f.FlipBps).MulInt(amount).TruncateInt()
}

// Calculate splits the accrued fees into the team, holders and reserve
// buckets. Each share is floored to an integer independently; the rounding
// residue stays in the fee ledger.
func (f FeeSchedule) Calculate(totalFees math.Int) FeesToPay {
	return FeesToPay{
		Team:    BpsToDec(f.TeamBps).MulInt(totalFees).TruncateInt(),
		Holders: BpsToDec(f.HoldersBps).MulInt(totalFees).TruncateInt(),
		Reserve: BpsToDec(f.ReserveBps).MulInt(totalFees).TruncateInt(),
	}
}

// FeesToPay is the result of splitting the accrued fees of one denom.
type FeesToPay struct {
	Team    math.Int `json:"team"`
	Holders math.Int `json:"holders"`
	Reserve math.Int `json:"reserve"`
}

// Streak counts consecutive settlements with the same outcome.
type Streak struct {
	Count  uint32 `json:"count"`
	Result bool   `json:"result"`
}

func NewStreak(result bool) Streak {
	return Streak{Count: 1, Result: result}
}

// Update advances the streak with a new outcome: same outcome extends it,
// a different outcome restarts it at 1.
func (s *Streak) Update(result bool) {
	if result == s.Result {
		s.Count++
	} else {
		s.Count = 1
		s.Result = result
	}
}

// Reset zeroes the count after a claim or an automatic NFT award. The last
// outcome is retained.
func (s *Streak) Reset() {
	s.Count = 0
}

// FlipScore is the per-wallet streak record.
type FlipScore struct {
	Streak   Streak    `json:"streak"`
	LastFlip time.Time `json:"last_flip"`
}

func NewFlipScore(result bool, blockTime time.Time) FlipScore {
	return FlipScore{Streak: NewStreak(result), LastFlip: blockTime}
}

func (s *FlipScore) Update(result bool, blockTime time.Time) {
	s.Streak.Update(result)
	s.LastFlip = blockTime
}

// PendingFlip is a wager waiting in the settlement queue. At most one may
// exist per wallet at any time.
type PendingFlip struct {
	Id        uint64    `json:"id"`
	Wallet    string    `json:"wallet"`
	Amount    sdk.Coin  `json:"amount"`
	Pick      PickType  `json:"pick"`
	Block     int64     `json:"block"`
	Timestamp time.Time `json:"timestamp"`
}

// FlipHistorySize bounds the public settled flip history; the oldest entry
// is evicted first.
const FlipHistorySize = 5

// Flip is a settled wager, kept in the bounded public history.
type Flip struct {
	Wallet    string    `json:"wallet"`
	Amount    sdk.Coin  `json:"amount"`
	Result    bool      `json:"result"`
	Streak    Streak    `json:"streak"`
	Timestamp time.Time `json:"timestamp"`
}

// NftReward is one entry of the streak mini game prize pool.
type NftReward struct {
	CollectionAddr string `json:"collection_addr"`
	TokenId        string `json:"token_id"`
}

func NewNftReward(collectionAddr, tokenId string) NftReward {
	return NftReward{CollectionAddr: collectionAddr, TokenId: tokenId}
}

// StreakReward maps a streak length to the cash amount claimable for it.
type StreakReward struct {
	Streak uint32   `json:"streak"`
	Reward math.Int `json:"reward"`
}

func NewStreakReward(streak uint32, reward math.Int) StreakReward {
	return StreakReward{Streak: streak, Reward: reward}
}

// MinStreakRewards is the minimum number of reward tiers that must be
// configured.
const MinStreakRewards = 3

// ValidateStreakRewards checks the reward table: at least three tiers,
// strictly ascending, with the top tier matching the NFT winning streak.
func ValidateStreakRewards(rewards []StreakReward, nftWinningStreak uint32) error {
	if len(rewards) < MinStreakRewards {
		return ErrLowStreakAmount
	}
	for i, reward := range rewards {
		if reward.Reward.IsNil() || reward.Reward.IsNegative() {
			return ErrInvalidStreakRewards.Wrapf("reward for streak %d must be a non-negative amount", reward.Streak)
		}
		if i > 0 && rewards[i-1].Streak >= reward.Streak {
			return ErrInvalidStreakRewards.Wrap("streak rewards must be sorted ascending by streak length")
		}
	}
	if rewards[len(rewards)-1].Streak != nftWinningStreak {
		return ErrNftWinNotMatchLastStreakReward
	}
	return nil
}
