// internal/tools/geopolitical/handler.go
package geopolitical

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"finance-agent/internal/common/logger"
	"finance-agent/internal/tools/news"
)

const (
	ToolName = "analyzeGeopolitical"
)

var (
	tariffTopic = regexp.MustCompile(`(?i)tariffs?|trade wars?|trade tensions?`)
	indiaTopic  = regexp.MustCompile(`(?i)india|sensex|nifty`)
	euTopic     = regexp.MustCompile(`(?i)\beu\b|europe`)
	percentRate = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent)`)
)

// NewsFetcher is the headline source; satisfied by *news.Handler.
type NewsFetcher interface {
	Execute(ctx context.Context, input *news.Input) (*news.Output, error)
}

// TextGenerator produces the analysis text; satisfied by *genai.Client.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Handler struct {
	config    *Config
	newsTool  NewsFetcher
	generator TextGenerator
	logger    logger.Logger
}

func NewHandler(config *Config, newsTool NewsFetcher, generator TextGenerator, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		newsTool:  newsTool,
		generator: generator,
		logger: log.With(map[string]interface{}{
			"tool": ToolName,
		}),
	}
}

// Execute fetches headlines for the topic and asks the model for an
// impact analysis. Unlike the data adapters this handler can fail: a
// generator error propagates so the caller can fall through to its
// next stage.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	headlines, err := h.newsTool.Execute(ctx, &news.Input{Topic: input.Topic})
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}

	analysis, err := h.generator.Generate(ctx, h.buildPrompt(input.Topic, input.Query, headlines.Articles))
	if err != nil {
		h.logger.Warn("analysis generation failed", map[string]interface{}{
			"topic": input.Topic,
			"error": err.Error(),
		})
		return nil, err
	}

	return &Output{
		Analysis: analysis,
		Articles: headlines.Articles,
	}, nil
}

// buildPrompt embeds the retrieved headlines and adds conditional
// sub-instructions: tariff topics ask for rate specifics, Indian and EU
// topics for the affected sectors, and rates quoted in the query itself
// (like "the 25% tariffs") are echoed so the analysis addresses them.
func (h *Handler) buildPrompt(topic, query string, articles []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a financial analyst. Analyze the market impact of %s based on these recent headlines:\n\n", topic)
	for _, article := range articles {
		fmt.Fprintf(&b, "- %s\n", article)
	}
	b.WriteString("\n")

	if tariffTopic.MatchString(topic) {
		b.WriteString("Include the specific tariff rates under discussion and which sectors they target. ")
	}
	if indiaTopic.MatchString(topic) {
		b.WriteString("Detail the expected impact on Indian market sectors and the Sensex and Nifty indices. ")
	}
	if euTopic.MatchString(topic) {
		b.WriteString("Detail the expected impact on European exporters and the affected sectors. ")
	}
	if rates := percentRate.FindAllString(query, -1); len(rates) > 0 {
		fmt.Fprintf(&b, "The question names specific rates (%s); address their effect directly. ", strings.Join(rates, ", "))
	}

	b.WriteString("Be clear and concise.")
	return b.String()
}
