package types

// Event types emitted by the module. Names match the original contract's
// events so indexers keep working against the same attribute set.
const (
	EventTypeStartFlip           = "start_flip"
	EventTypeFlip                = "flip"
	EventTypeStreakClaim         = "streak-claim"
	EventTypeAddNft              = "add_nft"
	EventTypeDistribute          = "distribute"
	EventTypeWithdrawNftFromPool = "withdraw_nft_from_pool"
	EventTypeSendExcessFunds     = "send_excess_funds"
)

// Attribute keys.
const (
	AttributeKeyFlipId       = "flip_id"
	AttributeKeyId           = "id"
	AttributeKeyFlipper      = "flipper"
	AttributeKeyFlipAmount   = "flip_amount"
	AttributeKeyFlipPick     = "flip_pick"
	AttributeKeyResult       = "result"
	AttributeKeyClaim        = "claim"
	AttributeKeyStreak       = "streak"
	AttributeKeyNftContract  = "nft_contract"
	AttributeKeyTokenId      = "token_id"
	AttributeKeyNftPoolSize  = "nft_pool_size"
	AttributeKeyTotalFees    = "total_fees"
	AttributeKeyTeamPaid     = "team_paid"
	AttributeKeyReservePaid  = "reserve_paid"
	AttributeKeyHoldersPaid  = "holders_paid"
	AttributeKeyFeesPerToken = "fees_per_token"
	AttributeKeyTotalShares  = "total_shares"
	AttributeKeyWithdraw     = "withdraw"
	AttributeKeyAmount       = "amount"
)

// Attribute values.
const (
	AttributeValueWon  = "won"
	AttributeValueLost = "lost"
)
