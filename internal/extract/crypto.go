// internal/extract/crypto.go
package extract

import "regexp"

// CoinMention matches any supported coin name or a generic crypto mention.
var CoinMention = regexp.MustCompile(`(?i)bitcoin|btc|ethereum|eth|solana|sol|cardano|ada|ripple|xrp|dogecoin|doge|crypto`)

var (
	ethPattern  = regexp.MustCompile(`(?i)ethereum|eth`)
	solPattern  = regexp.MustCompile(`(?i)solana|sol`)
	adaPattern  = regexp.MustCompile(`(?i)cardano|ada`)
	xrpPattern  = regexp.MustCompile(`(?i)ripple|xrp`)
	dogePattern = regexp.MustCompile(`(?i)dogecoin|doge`)
	dotPattern  = regexp.MustCompile(`(?i)polkadot|dot`)
	ltcPattern  = regexp.MustCompile(`(?i)litecoin|ltc`)
	linkPattern = regexp.MustCompile(`(?i)chainlink|link`)
)

// CryptoSymbol picks a coin symbol out of free text. A generic crypto
// mention without a specific coin defaults to BTC.
func CryptoSymbol(input string) string {
	switch {
	case ethPattern.MatchString(input):
		return "ETH"
	case solPattern.MatchString(input):
		return "SOL"
	case adaPattern.MatchString(input):
		return "ADA"
	case xrpPattern.MatchString(input):
		return "XRP"
	case dogePattern.MatchString(input):
		return "DOGE"
	case dotPattern.MatchString(input):
		return "DOT"
	case ltcPattern.MatchString(input):
		return "LTC"
	case linkPattern.MatchString(input):
		return "LINK"
	default:
		return "BTC"
	}
}

var cryptoNames = map[string]string{
	"BTC":  "Bitcoin",
	"ETH":  "Ethereum",
	"SOL":  "Solana",
	"ADA":  "Cardano",
	"XRP":  "Ripple (XRP)",
	"DOGE": "Dogecoin",
	"DOT":  "Polkadot",
	"LTC":  "Litecoin",
	"LINK": "Chainlink",
}

// CryptoName returns a human-readable coin name, or the symbol itself
// for unknown coins.
func CryptoName(symbol string) string {
	if name, ok := cryptoNames[symbol]; ok {
		return name
	}
	return symbol
}
