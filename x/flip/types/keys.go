package types

const (
	// ModuleName defines the module name
	ModuleName = "flip"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_flip"
)

// Singleton record keys.
var (
	ConfigKey            = []byte("Config/value/")
	NextFlipIdKey        = []byte("NextFlipId/value/")
	PendingFlipsKey      = []byte("PendingFlips/value/")
	FlipHistoryKey       = []byte("FlipHistory/value/")
	StreakRewardsKey     = []byte("StreakRewards/value/")
	NftPoolKey           = []byte("NftPool/value/")
	AllowedNftSendersKey = []byte("AllowedNftSenders/value/")
)

const (
	// FeesKeyPrefix is the prefix to retrieve the accrued fees of a denom
	FeesKeyPrefix = "Fees/value/"

	// ScoreKeyPrefix is the prefix to retrieve the streak score of a wallet
	ScoreKeyPrefix = "Score/value/"
)

func KeyPrefix(p string) []byte { return []byte(p) }

// FeesKey returns the store key to retrieve the accrued fees of a denom
func FeesKey(denom string) []byte {
	var key []byte

	key = append(key, []byte(denom)...)
	key = append(key, []byte("/")...)

	return key
}

// ScoreKey returns the store key to retrieve the streak score of a wallet
func ScoreKey(wallet string) []byte {
	var key []byte

	key = append(key, []byte(wallet)...)
	key = append(key, []byte("/")...)

	return key
}
