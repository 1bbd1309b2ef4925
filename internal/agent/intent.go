// internal/agent/intent.go
package agent

// Intent tags the handling path chosen for a query. Used as the metric
// label for routed queries.
type Intent string

const (
	IntentCurrencyConversion    Intent = "currency_conversion"
	IntentCryptoPrice           Intent = "crypto_price"
	IntentStockPrice            Intent = "stock_price"
	IntentLegacyCurrencyConvert Intent = "legacy_currency_convert"
	IntentNewsQuery             Intent = "news_query"
	IntentGeopoliticalQuery     Intent = "geopolitical_query"
	IntentGeneral               Intent = "general"
)
