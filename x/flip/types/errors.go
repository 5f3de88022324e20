package types

import sdkerrors "cosmossdk.io/errors"

// x/flip module sentinel errors
var (
	// Authorization errors
	ErrUnauthorized          = sdkerrors.Register(ModuleName, 1100, "unauthorized")
	ErrUnauthorizedToSendNft = sdkerrors.Register(ModuleName, 1101, "this address is not allowed to send NFTs to the pool")

	// Operational errors
	ErrPaused = sdkerrors.Register(ModuleName, 1102, "operation is paused at this moment, please try again later")

	// Validation errors
	ErrWrongDenom        = sdkerrors.Register(ModuleName, 1103, "unsupported denom")
	ErrNoBetLimits       = sdkerrors.Register(ModuleName, 1104, "bet limits do not exist for this denom")
	ErrOverTheLimitBet   = sdkerrors.Register(ModuleName, 1105, "bet is above the maximum limit")
	ErrUnderTheLimitBet  = sdkerrors.Register(ModuleName, 1106, "bet is under the minimum limit")
	ErrWrongPaidAmount   = sdkerrors.Register(ModuleName, 1107, "the sent funds hold the wrong amount")
	ErrInvalidAddress    = sdkerrors.Register(ModuleName, 1108, "invalid bech32 address")
	ErrInvalidPick       = sdkerrors.Register(ModuleName, 1109, "pick must be heads or tails")
	ErrInvalidDenomLimit = sdkerrors.Register(ModuleName, 1110, "invalid denom limit")
	ErrInvalidFees       = sdkerrors.Register(ModuleName, 1111, "invalid fee schedule")
	ErrInvalidConfig     = sdkerrors.Register(ModuleName, 1112, "invalid module config")

	// Capacity errors
	ErrBlockLimitReached              = sdkerrors.Register(ModuleName, 1113, "block limit reached, please try again in a few seconds")
	ErrMaxNftRewardsReached           = sdkerrors.Register(ModuleName, 1114, "NFT rewards pool is full")
	ErrNftIndexOutOfRange             = sdkerrors.Register(ModuleName, 1115, "index does not exist in the NFT rewards pool")
	ErrEmptyWithdrawParams            = sdkerrors.Register(ModuleName, 1116, "expecting an 'index' or 'all' parameter")
	ErrEmptyAllowedToSendNft          = sdkerrors.Register(ModuleName, 1117, "at least 1 address must be allowed to send NFTs")
	ErrLowStreakAmount                = sdkerrors.Register(ModuleName, 1118, "at least 3 streak rewards must be configured")
	ErrInvalidStreakRewards           = sdkerrors.Register(ModuleName, 1119, "invalid streak rewards")
	ErrNftWinNotMatchLastStreakReward = sdkerrors.Register(ModuleName, 1120, "NFT winning streak must match the last streak reward")

	// State consistency errors
	ErrAlreadyStartedFlip         = sdkerrors.Register(ModuleName, 1121, "you already started a flip, please wait for it to finish")
	ErrNoFlipsToDo                = sdkerrors.Register(ModuleName, 1122, "there are no flips to do")
	ErrNoFlipsToDoThisBlock       = sdkerrors.Register(ModuleName, 1123, "there are no flips to do this block")
	ErrScoreNotFound              = sdkerrors.Register(ModuleName, 1124, "no streak score found for this wallet")
	ErrLowStreak                  = sdkerrors.Register(ModuleName, 1125, "streak is below the minimum reward tier")
	ErrNotEligibleForStreakReward = sdkerrors.Register(ModuleName, 1126, "streak not eligible for reward")
	ErrDenomAlreadyExists         = sdkerrors.Register(ModuleName, 1127, "denom already exists on the module")
	ErrDenomNotFound              = sdkerrors.Register(ModuleName, 1128, "denom is not in the list of supported denoms")
	ErrDenomStillHasFees          = sdkerrors.Register(ModuleName, 1129, "denom still has fees that are not distributed")
	ErrNftInPool                  = sdkerrors.Register(ModuleName, 1130, "cannot transfer NFT, it is in the pool")
	ErrConfigNotFound             = sdkerrors.Register(ModuleName, 1131, "module config is not set")

	// Solvency errors
	ErrContractMissingFunds    = sdkerrors.Register(ModuleName, 1132, "module does not have enough funds to pay for the bet")
	ErrNoFeesToPay             = sdkerrors.Register(ModuleName, 1133, "fees to be paid are 0")
	ErrNotEnoughFundsToPayFees = sdkerrors.Register(ModuleName, 1134, "fees to distribute are more than the module balance")
	ErrNoExcessFunds           = sdkerrors.Register(ModuleName, 1135, "no excess funds to send")
)
