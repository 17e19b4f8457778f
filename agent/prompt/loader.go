package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/information.txt
	informationRaw string

	//go:embed template/recommendation.txt
	recommendationRaw string

	//go:embed template/negotiation.txt
	negotiationRaw string
)

// PromptSet holds the role-framing system prompts for the three responders.
type PromptSet struct {
	Information    string
	Recommendation string
	Negotiation    string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// Safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Information:    strings.TrimSpace(informationRaw),
		Recommendation: strings.TrimSpace(recommendationRaw),
		Negotiation:    strings.TrimSpace(negotiationRaw),
	}
}
