package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	orchestratorx "github.com/tanpawarit/guitar-shop-agents/agent/agents/orchestrator"
	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
	llmx "github.com/tanpawarit/guitar-shop-agents/agent/llm"
	responderx "github.com/tanpawarit/guitar-shop-agents/agent/responder"
	retrievalx "github.com/tanpawarit/guitar-shop-agents/agent/retrieval"
	configx "github.com/tanpawarit/guitar-shop-agents/pkg/config"
	_ "github.com/tanpawarit/guitar-shop-agents/pkg/logger/autoload"
)

func main() {
	ctx := context.Background()

	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	catalogCfg := configx.MustNew[retrievalx.PostgresConfig]("CATALOG")

	catalog, err := retrievalx.NewPostgresCatalog(*catalogCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open guitar catalog")
	}
	defer catalog.Close()

	registry, err := responderx.NewRegistry(ctx, *llmCfg, retrievalx.NewKeywordRetriever(catalog))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build responder registry")
	}

	shop, err := orchestratorx.New(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build orchestrator")
	}

	if args := flag.Args(); len(args) > 0 {
		runOnce(ctx, shop, strings.Join(args, " "))
		return
	}
	runInteractive(ctx, shop)
}

func runOnce(ctx context.Context, shop *orchestratorx.Orchestrator, query string) {
	res, err := shop.ProcessCustomerQuery(ctx, query, nil, contractx.Preferences{})
	if err != nil {
		log.Fatal().Err(err).Str("query", query).Msg("query failed")
	}
	fmt.Println(res.FinalResponse)
}

func runInteractive(ctx context.Context, shop *orchestratorx.Orchestrator) {
	printBanner()

	var history []contractx.ConversationTurn
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		switch strings.ToLower(query) {
		case "quit", "exit", "q":
			fmt.Println("Thanks for visiting! 🎸")
			return
		}

		res, err := shop.ProcessCustomerQuery(ctx, query, history, contractx.Preferences{})
		if err != nil {
			log.Error().Err(err).Msg("query failed")
			fmt.Println("Sorry, something went wrong. Please try again.")
			continue
		}

		history = res.ConversationHistory
		fmt.Println("\n" + res.FinalResponse)
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("stdin read failed")
	}
}

func printBanner() {
	fmt.Println("🎸 Welcome to the Guitar Shop!")
	fmt.Println("Ask me anything about our guitars: specs, recommendations, or pricing.")
	fmt.Println("We carry: " + strings.Join(retrievalx.GuitarCategories(), ", "))

	ranges := retrievalx.PriceRanges()
	labels := make([]string, 0, len(ranges))
	for _, pr := range ranges {
		labels = append(labels, pr.String())
	}
	fmt.Println("Price ranges: " + strings.Join(labels, ", "))
	fmt.Println("Styles we cover: " + strings.Join(retrievalx.PlayingStyles(), ", "))
	fmt.Println("Type 'quit' to leave.")
}
