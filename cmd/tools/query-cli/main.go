// cmd/tools/query-cli/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"finance-agent/internal/agent"
	"finance-agent/internal/common/config"
	"finance-agent/internal/common/genai"
	"finance-agent/internal/common/logger"
	"finance-agent/internal/tools/cryptoprice"
	"finance-agent/internal/tools/exchangerate"
	"finance-agent/internal/tools/geopolitical"
	"finance-agent/internal/tools/news"
	"finance-agent/internal/tools/stockprice"
)

// samplePrompts exercise every cascade stage plus the canned responder.
var samplePrompts = []string{
	"who is elon musk?",
	"how to become financially rich",
	"Calculate the return on $5000 invested at 8% for 5 years with compound interest",
	"how to save tax",
	"what is the current price of bitcoin?",
	"explain quantum physics",
}

func main() {
	prompt := flag.String("prompt", "", "Single query to run (defaults to the built-in sample set)")
	timeout := flag.Duration("timeout", 30*time.Second, "Per-query timeout")
	quiet := flag.Bool("quiet", false, "Suppress structured logs, print traces only")
	flag.Parse()

	level := "info"
	if *quiet {
		level = "error"
	}
	zapLog := logger.New(level, "console")
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	genaiClient := genai.NewClient(cfg.GenAI, log)
	newsHandler := news.NewHandler(news.LoadConfig(cfg), log)
	router := agent.NewRouter(agent.Tools{
		Stocks:       stockprice.NewHandler(stockprice.LoadConfig(cfg), log),
		Crypto:       cryptoprice.NewHandler(cryptoprice.LoadConfig(cfg), log),
		Rates:        exchangerate.NewHandler(exchangerate.LoadConfig(cfg), log),
		News:         newsHandler,
		Geopolitical: geopolitical.NewHandler(geopolitical.LoadConfig(cfg), newsHandler, genaiClient, log),
	}, genaiClient, log)

	prompts := samplePrompts
	if *prompt != "" {
		prompts = []string{*prompt}
	}

	hasModelKey := genaiClient.HasKey()
	if !hasModelKey {
		fmt.Fprintln(os.Stderr, "note: no model key configured, general queries use canned responses")
	}

	for i, p := range prompts {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)

		var trace string
		if hasModelKey {
			trace = router.ProcessUserInput(ctx, p)
		} else {
			trace = agent.CannedResponse(p)
		}
		cancel()

		fmt.Printf("--- Query %d/%d ---\n", i+1, len(prompts))
		fmt.Println(trace)
		fmt.Println(strings.Repeat("-", 40))
	}
}
