package intent

import (
	"strings"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

// Keyword lists per intent. A keyword counts once per query regardless of how
// many times it occurs. Editing these lists can shift tie-break outcomes, so
// additions should come with classifier test updates.
var (
	priceKeywords = []string{
		"price", "cost", "expensive", "cheap", "discount", "deal",
		"afford", "budget", "how much", "negotiate", "offer",
	}
	recommendKeywords = []string{
		"recommend", "suggest", "best", "suitable", "good for",
		"which guitar", "what should", "help me choose", "pick",
		"looking for", "want to buy", "buying", "need a guitar",
		"purchase", "buy", "shop",
	}
	informationKeywords = []string{
		"tell me", "explain", "what is", "how does", "difference",
		"type", "brand", "brands", "models", "features",
		"specification", "specs", "about", "info", "information",
		"browse", "show", "list", "available",
	}
	comparisonKeywords = []string{
		"compare", "vs", "versus", "between", "or",
	}
)

// classifierOrder fixes the tie-break: on equal scores the first-declared
// intent wins.
var classifierOrder = []struct {
	intent   contractx.Intent
	keywords []string
}{
	{contractx.IntentInformation, informationKeywords},
	{contractx.IntentRecommendation, recommendKeywords},
	{contractx.IntentPrice, priceKeywords},
	{contractx.IntentComparison, comparisonKeywords},
}

// Classify maps raw query text to one intent label. It is a pure function:
// case-insensitive substring scoring over the fixed keyword lists, highest
// score wins, ties broken by declaration order, zero matches fall back to
// general_inquiry.
func Classify(query string) contractx.Intent {
	q := strings.ToLower(query)

	best := contractx.IntentGeneral
	bestScore := 0
	for _, entry := range classifierOrder {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.intent
			bestScore = score
		}
	}
	return best
}
