// internal/extract/extract_test.go
package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockSymbol(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedSymbol string
		expectedName   string
	}{
		{
			name:           "company name lookup",
			input:          "what is the price of apple stock",
			expectedSymbol: "AAPL",
			expectedName:   "Apple Inc.",
		},
		{
			name:           "ticker keyword lookup",
			input:          "how much is MSFT worth",
			expectedSymbol: "MSFT",
			expectedName:   "Microsoft Corporation",
		},
		{
			name:           "named company beats bare capital token",
			input:          "what is the price of tesla stock XYZ",
			expectedSymbol: "TSLA",
			expectedName:   "Tesla Inc.",
		},
		{
			name:           "bare capital token fallback",
			input:          "what is the price of SHOP stock",
			expectedSymbol: "SHOP",
			expectedName:   "",
		},
		{
			name:           "stopword capital is rejected",
			input:          "what is THE price today",
			expectedSymbol: "",
			expectedName:   "",
		},
		{
			name:           "nothing usable",
			input:          "what is the price today",
			expectedSymbol: "",
			expectedName:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			symbol, name := StockSymbol(tt.input)
			assert.Equal(t, tt.expectedSymbol, symbol)
			assert.Equal(t, tt.expectedName, name)
		})
	}
}

func TestCryptoSymbol(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"what is the price of bitcoin?", "BTC"},
		{"ethereum price please", "ETH"},
		{"how much is solana worth", "SOL"},
		{"cardano value today", "ADA"},
		{"price of xrp", "XRP"},
		{"what is doge trading at", "DOGE"},
		{"polkadot price", "DOT"},
		{"litecoin worth", "LTC"},
		{"chainlink price", "LINK"},
		// Generic crypto mention defaults to BTC.
		{"what is the price of crypto right now", "BTC"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CryptoSymbol(tt.input))
		})
	}
}

func TestCryptoName(t *testing.T) {
	assert.Equal(t, "Bitcoin", CryptoName("BTC"))
	assert.Equal(t, "Ripple (XRP)", CryptoName("XRP"))
	assert.Equal(t, "ZZZ", CryptoName("ZZZ"))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"convert 100 USD to EUR", 100},
		{"convert 1,000,000 dollars", 1000000},
		{"convert ₹1,00,000 to dollars", 100000},
		{"convert 99.95 euros", 99.95},
		{"convert dollars to euros", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Amount(tt.input))
		})
	}
}

func TestCurrencyPair(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedFrom string
		expectedTo   string
	}{
		{"two named currencies", "convert 100 dollars to euros", "USD", "EUR"},
		{"symbols", "convert $50 to ₹", "USD", "INR"},
		{"single currency defaults other side to USD", "convert 100 euros", "EUR", "USD"},
		{"nothing found", "convert nothing", "", ""},
		{"identity pair", "convert 100 dollars to USD", "USD", "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := CurrencyPair(tt.input)
			assert.Equal(t, tt.expectedFrom, from)
			assert.Equal(t, tt.expectedTo, to)
		})
	}
}

func TestCurrencyPairWithCodes(t *testing.T) {
	t.Run("two bare codes override keyword detection", func(t *testing.T) {
		from, to := CurrencyPairWithCodes("exchange rate from AUD to CAD")
		assert.Equal(t, "AUD", from)
		assert.Equal(t, "CAD", to)
	})

	t.Run("single code falls back to keyword table", func(t *testing.T) {
		from, to := CurrencyPairWithCodes("convert 100 INR")
		assert.Equal(t, "INR", from)
		assert.Equal(t, "USD", to)
	})

	t.Run("repeated code collapses to one", func(t *testing.T) {
		from, to := CurrencyPairWithCodes("convert 100 USD to USD please")
		assert.Equal(t, "USD", from)
		assert.Equal(t, "USD", to)
	})
}

func TestNewsTopic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"news about the trade war with china", "US-China tariff war"},
		{"latest on new tariffs", "US-China tariff war"},
		{"how will EU tariffs on steel affect markets?", "EU tariff war"},
		{"european trade tensions update", "EU tariff war"},
		{"india trade war with the US", "India trade tensions"},
		{"what is in the indian budget this year", "indian budget"},
		{"any upcoming IPO news", "ipo"},
		{"what's happening with the sensex", "india"},
		{"finance forecast for 2025", "2025 finance forecast"},
		{"latest crypto news", "crypto"},
		{"news about tesla", "Tesla Inc."},
		{"market news", "stock market"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewsTopic(tt.input))
		})
	}
}
