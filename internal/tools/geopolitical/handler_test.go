// internal/tools/geopolitical/handler_test.go
package geopolitical

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"finance-agent/internal/common/logger"
	"finance-agent/internal/tools/news"
)

type stubNews struct {
	articles []string
}

func (s *stubNews) Execute(ctx context.Context, input *news.Input) (*news.Output, error) {
	return &news.Output{Articles: s.articles}, nil
}

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestHandler_Execute_Success(t *testing.T) {
	newsTool := &stubNews{articles: []string{"headline one", "headline two"}}
	generator := &stubGenerator{response: "Markets will likely stay volatile."}

	handler := NewHandler(&Config{Model: "gemini-1.5-pro"}, newsTool, generator, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{Topic: "trade war"})

	assert.NoError(t, err)
	assert.Equal(t, "Markets will likely stay volatile.", output.Analysis)
	assert.Equal(t, []string{"headline one", "headline two"}, output.Articles)
	assert.Contains(t, generator.prompt, "headline one")
	assert.Contains(t, generator.prompt, "headline two")
}

func TestHandler_Execute_TariffPromptDetail(t *testing.T) {
	generator := &stubGenerator{response: "analysis"}
	handler := NewHandler(&Config{}, &stubNews{articles: []string{"h"}}, generator, logger.NewTestLogger(t))

	_, err := handler.Execute(context.Background(), &Input{Topic: "US-China tariff war"})

	assert.NoError(t, err)
	assert.Contains(t, generator.prompt, "tariff rates under discussion")
	assert.NotContains(t, generator.prompt, "Sensex")
}

func TestHandler_Execute_IndiaPromptDetail(t *testing.T) {
	generator := &stubGenerator{response: "analysis"}
	handler := NewHandler(&Config{}, &stubNews{articles: []string{"h"}}, generator, logger.NewTestLogger(t))

	_, err := handler.Execute(context.Background(), &Input{Topic: "india"})

	assert.NoError(t, err)
	assert.Contains(t, generator.prompt, "Sensex and Nifty")
	assert.NotContains(t, generator.prompt, "tariff rates")
}

func TestHandler_Execute_EUPromptDetail(t *testing.T) {
	generator := &stubGenerator{response: "analysis"}
	handler := NewHandler(&Config{}, &stubNews{articles: []string{"h"}}, generator, logger.NewTestLogger(t))

	_, err := handler.Execute(context.Background(), &Input{Topic: "EU tariff war"})

	assert.NoError(t, err)
	assert.Contains(t, generator.prompt, "European exporters")
	assert.Contains(t, generator.prompt, "tariff rates under discussion")
	assert.NotContains(t, generator.prompt, "Sensex")
}

func TestHandler_Execute_RateMentionPromptDetail(t *testing.T) {
	generator := &stubGenerator{response: "analysis"}
	handler := NewHandler(&Config{}, &stubNews{articles: []string{"h"}}, generator, logger.NewTestLogger(t))

	_, err := handler.Execute(context.Background(), &Input{
		Topic: "US-China tariff war",
		Query: "what is the impact of the 25% tariffs?",
	})

	assert.NoError(t, err)
	assert.Contains(t, generator.prompt, "specific rates (25%)")
}

func TestHandler_Execute_NoRateMentionOmitsDetail(t *testing.T) {
	generator := &stubGenerator{response: "analysis"}
	handler := NewHandler(&Config{}, &stubNews{articles: []string{"h"}}, generator, logger.NewTestLogger(t))

	_, err := handler.Execute(context.Background(), &Input{
		Topic: "US-China tariff war",
		Query: "how will the trade war affect markets?",
	})

	assert.NoError(t, err)
	assert.NotContains(t, generator.prompt, "specific rates")
}

func TestHandler_Execute_GeneratorFailurePropagates(t *testing.T) {
	generator := &stubGenerator{err: errors.New("quota exceeded")}
	handler := NewHandler(&Config{}, &stubNews{articles: []string{"h"}}, generator, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{Topic: "trade war"})

	assert.Error(t, err)
	assert.Nil(t, output)
}
