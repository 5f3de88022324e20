package types

import (
	"cosmossdk.io/math"
)

// DryDistributionResponse mirrors the Distribute arithmetic without side
// effects so operators can preview a payout.
type DryDistributionResponse struct {
	TotalFees          math.Int       `json:"total_fees"`
	TeamTotalFee       math.Int       `json:"team_total_fee"`
	ReserveTotalFee    math.Int       `json:"reserve_total_fee"`
	HoldersTotalFee    math.Int       `json:"holders_total_fee"`
	HoldersTotalShares math.LegacyDec `json:"holders_total_shares"`
	FeesPerToken       math.LegacyDec `json:"fees_per_token"`
	PayToHolders       math.Int       `json:"pay_to_holders"`
	NumberOfHolders    uint64         `json:"number_of_holders"`
}
