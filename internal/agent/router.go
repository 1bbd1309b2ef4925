// internal/agent/router.go
package agent

import (
	"context"
	goerrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	stderrors "finance-agent/internal/common/errors"
	"finance-agent/internal/common/logger"
	"finance-agent/internal/common/metrics"
	"finance-agent/internal/extract"
	"finance-agent/internal/tools/cryptoprice"
	"finance-agent/internal/tools/exchangerate"
	"finance-agent/internal/tools/geopolitical"
	"finance-agent/internal/tools/news"
	"finance-agent/internal/tools/stockprice"
)

const modelPrompt = `You are a financial assistant. Respond to this query: "%s"

If this is a finance-related question, provide a detailed answer.
If it's about non-financial topics, relate it to economics or finance if possible.
Be helpful, clear, and concise.`

// Tool interfaces, satisfied by the handlers under internal/tools. Kept
// narrow so every collaborator can be stubbed in tests.
type (
	StockQuoter interface {
		Execute(ctx context.Context, input *stockprice.Input) (*stockprice.Output, error)
	}
	CryptoQuoter interface {
		Execute(ctx context.Context, input *cryptoprice.Input) (*cryptoprice.Output, error)
	}
	RateQuoter interface {
		Execute(ctx context.Context, input *exchangerate.Input) (*exchangerate.Output, error)
	}
	NewsProvider interface {
		Execute(ctx context.Context, input *news.Input) (*news.Output, error)
	}
	GeoAnalyzer interface {
		Execute(ctx context.Context, input *geopolitical.Input) (*geopolitical.Output, error)
	}
	TextGenerator interface {
		Generate(ctx context.Context, prompt string) (string, error)
	}
)

// Tools bundles the data adapters the router dispatches to.
type Tools struct {
	Stocks       StockQuoter
	Crypto       CryptoQuoter
	Rates        RateQuoter
	News         NewsProvider
	Geopolitical GeoAnalyzer
}

// stage is one entry of the intent cascade. handle returns an empty
// trace when extraction yields nothing usable, which sends the router
// on to the next stage; a non-nil error does the same but is logged.
type stage struct {
	intent Intent
	match  func(input string) bool
	handle func(ctx context.Context, input string) (string, error)
}

type Router struct {
	tools     Tools
	generator TextGenerator
	logger    logger.Logger
	stages    []stage
}

// NewRouter wires the cascade in its fixed priority order: strict
// currency, crypto, stock, legacy currency, news, geopolitical. The
// generative model is the final fallback, guarded by a canned response.
func NewRouter(tools Tools, generator TextGenerator, log logger.Logger) *Router {
	r := &Router{
		tools:     tools,
		generator: generator,
		logger: log.With(map[string]interface{}{
			"component": "router",
		}),
	}

	r.stages = []stage{
		{IntentCurrencyConversion, matchStrictCurrency, r.handleStrictCurrency},
		{IntentCryptoPrice, matchCrypto, r.handleCrypto},
		{IntentStockPrice, matchStock, r.handleStock},
		{IntentLegacyCurrencyConvert, matchLegacyCurrency, r.handleLegacyCurrency},
		{IntentNewsQuery, matchNews, r.handleNews},
		{IntentGeopoliticalQuery, matchGeopolitical, r.handleGeopolitical},
	}

	return r
}

// ProcessUserInput classifies the query, dispatches to the first
// matching stage, and formats the result. It never fails: adapter
// errors fall through the cascade, model failures produce the canned
// capability message, and blank input produces the apology trace.
func (r *Router) ProcessUserInput(ctx context.Context, input string) string {
	started := time.Now()

	if strings.TrimSpace(input) == "" {
		metrics.QueriesFailed.WithLabelValues(string(IntentGeneral), string(stderrors.ErrCodeValidationFailed)).Inc()
		return apologyTrace(input)
	}

	for _, s := range r.stages {
		if !s.match(input) {
			continue
		}

		trace, err := s.handle(ctx, input)
		if err != nil {
			fields := map[string]interface{}{
				"intent": string(s.intent),
				"error":  err.Error(),
			}
			var stdErr *stderrors.StandardError
			if goerrors.As(err, &stdErr) {
				fields["error_category"] = stderrors.GetErrorCategory(stdErr.Code)
			}
			r.logger.Warn("stage handler failed, falling through", fields)
			continue
		}
		if trace == "" {
			// Matched but nothing usable was extracted.
			continue
		}

		metrics.QueriesRouted.WithLabelValues(string(s.intent)).Inc()
		metrics.QueryDuration.WithLabelValues(string(s.intent)).Observe(time.Since(started).Seconds())
		return trace
	}

	return r.handleGeneral(ctx, input, started)
}

func (r *Router) handleStrictCurrency(ctx context.Context, input string) (string, error) {
	from, to := extract.CurrencyPairWithCodes(input)
	return r.convert(ctx, input, from, to)
}

func (r *Router) handleLegacyCurrency(ctx context.Context, input string) (string, error) {
	from, to := extract.CurrencyPair(input)
	return r.convert(ctx, input, from, to)
}

func (r *Router) convert(ctx context.Context, input, from, to string) (string, error) {
	amount := extract.Amount(input)
	if amount <= 0 || from == "" || to == "" {
		return "", nil
	}

	result, err := r.tools.Rates.Execute(ctx, &exchangerate.Input{From: from, To: to})
	if err != nil {
		return "", err
	}

	converted := amount * result.Rate
	return Trace{
		Start:       input,
		Plan:        fmt.Sprintf("I'll convert %s %s to %s.", formatNumber(amount), from, to),
		Action:      fmt.Sprintf("getExchangeRate(%q, %q)", from, to),
		Observation: formatNumber(result.Rate),
		Output:      fmt.Sprintf("%s %s is equal to %.2f %s based on the current exchange rate.", formatNumber(amount), from, converted, to),
	}.Format(), nil
}

func (r *Router) handleCrypto(ctx context.Context, input string) (string, error) {
	symbol := extract.CryptoSymbol(input)
	name := extract.CryptoName(symbol)

	result, err := r.tools.Crypto.Execute(ctx, &cryptoprice.Input{Symbol: symbol})
	if err != nil {
		return "", err
	}

	output := fmt.Sprintf("The current price of %s is %s.", name, result.Price)
	if blurb, ok := cryptoBlurbs[symbol]; ok {
		output += " " + blurb
	}

	return Trace{
		Start:       input,
		Plan:        fmt.Sprintf("I'll check the current price of %s.", name),
		Action:      fmt.Sprintf("getCryptoPrice(%q)", symbol),
		Observation: result.Price,
		Output:      output,
	}.Format(), nil
}

func (r *Router) handleStock(ctx context.Context, input string) (string, error) {
	symbol, companyName := extract.StockSymbol(input)
	if symbol == "" {
		return "", nil
	}

	result, err := r.tools.Stocks.Execute(ctx, &stockprice.Input{Symbol: symbol})
	if err != nil {
		return "", err
	}

	displayName := companyName
	if displayName == "" {
		displayName = symbol + " stock"
	}

	return Trace{
		Start:       input,
		Plan:        fmt.Sprintf("I'll check the current price of %s.", displayName),
		Action:      fmt.Sprintf("getStockPrice(%q)", symbol),
		Observation: result.Price,
		Output:      fmt.Sprintf("The current price of %s is %s. This is the latest price available from the stock market. Stock prices can fluctuate throughout the trading day.", displayName, result.Price),
	}.Format(), nil
}

func (r *Router) handleNews(ctx context.Context, input string) (string, error) {
	topic := extract.NewsTopic(input)

	result, err := r.tools.News.Execute(ctx, &news.Input{Topic: topic})
	if err != nil {
		return "", err
	}

	var listing strings.Builder
	for _, article := range result.Articles {
		listing.WriteString("- ")
		listing.WriteString(article)
		listing.WriteString("\n")
	}

	return Trace{
		Start:       input,
		Plan:        fmt.Sprintf("I'll find the latest financial news about %s.", topic),
		Action:      fmt.Sprintf("getFinancialNews(%q)", topic),
		Observation: fmt.Sprintf("Retrieved %d headlines.", len(result.Articles)),
		Output:      fmt.Sprintf("Here are the latest headlines about %s:\n\n%s", topic, strings.TrimRight(listing.String(), "\n")),
	}.Format(), nil
}

func (r *Router) handleGeopolitical(ctx context.Context, input string) (string, error) {
	topic := extract.NewsTopic(input)

	result, err := r.tools.Geopolitical.Execute(ctx, &geopolitical.Input{Topic: topic, Query: input})
	if err != nil {
		return "", err
	}

	return Trace{
		Start:       input,
		Plan:        fmt.Sprintf("I'll analyze the market impact of %s.", topic),
		Action:      fmt.Sprintf("analyzeGeopolitical(%q)", topic),
		Observation: fmt.Sprintf("Retrieved %d related headlines.", len(result.Articles)),
		Output:      result.Analysis,
	}.Format(), nil
}

// handleGeneral is the terminal stage: every query that matched nothing
// (or fell through everything) goes to the generative model. Model
// failures are absorbed into the canned capability message.
func (r *Router) handleGeneral(ctx context.Context, input string, started time.Time) string {
	metrics.LLMFallbacks.Inc()

	text, err := r.generator.Generate(ctx, fmt.Sprintf(modelPrompt, input))
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			r.logger.Warn("model fallback failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		metrics.QueriesFailed.WithLabelValues(string(IntentGeneral), string(stderrors.ErrCodeLLMRequestFailed)).Inc()
		return capabilityTrace(input)
	}

	metrics.QueriesRouted.WithLabelValues(string(IntentGeneral)).Inc()
	metrics.QueryDuration.WithLabelValues(string(IntentGeneral)).Observe(time.Since(started).Seconds())

	return Trace{
		Start:       input,
		Plan:        "I'll analyze this query and provide relevant financial information.",
		Action:      "Generating response based on financial knowledge",
		Observation: "This query requires financial expertise.",
		Output:      text,
	}.Format()
}

// formatNumber prints amounts and rates without trailing zeros, the way
// they appear in the query ("100", not "100.00").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
