package price

// providerIDs maps user-facing symbols to the price provider's identifiers.
// Symbols outside this allow-list are simply not priced.
var providerIDs = map[string]string{
	"btc":  "bitcoin",
	"eth":  "ethereum",
	"usdt": "tether",
	"bnb":  "binancecoin",
	"sol":  "solana",
	"xrp":  "ripple",
	"ada":  "cardano",
	"doge": "dogecoin",
}

// Resolve returns the provider identifier for a lowercase symbol.
// The second return value is false when the symbol is not recognized.
func Resolve(symbol string) (string, bool) {
	id, ok := providerIDs[symbol]
	return id, ok
}
