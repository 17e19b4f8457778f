package workflownode

import (
	"strings"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

const (
	informationHeading    = "### 📚 Guitar Info"
	recommendationHeading = "### ✨ Recommendations"
	negotiationHeading    = "### 💰 Pricing & Deals"

	fallbackResponse = "I'm not sure how to help with that — could you rephrase?"
	closingLine      = "*Feel free to ask me more — I'm here to help you find your perfect guitar!* 🎸"
)

// Synthesize assembles the final customer-facing response from the responder
// results. Sections always appear in information, recommendation, negotiation
// order regardless of which responders ran.
func Synthesize(in *GraphState) (GraphOutput, error) {
	if err := requireState(in); err != nil {
		return GraphOutput{}, err
	}

	type section struct {
		agent   contractx.AgentType
		heading string
		result  *contractx.ResponderResult
	}
	ordered := []section{
		{contractx.AgentTypeInformation, informationHeading, in.InformationResult},
		{contractx.AgentTypeRecommendation, recommendationHeading, in.RecommendationResult},
		{contractx.AgentTypeNegotiation, negotiationHeading, in.NegotiationResult},
	}

	var parts []string
	var results []contractx.ResponderResult
	for _, s := range ordered {
		if !in.ActiveAgents.Contains(s.agent) || s.result == nil {
			continue
		}
		content := strings.TrimSpace(s.result.Content)
		if content == "" {
			continue
		}
		parts = append(parts, s.heading+"\n"+content)
		results = append(results, *s.result)
	}

	body := fallbackResponse
	if len(parts) > 0 {
		body = strings.Join(parts, "\n\n")
	}

	in.FinalResponse = body + "\n\n---\n" + closingLine
	in.Stage = StageComplete
	in.Complete = true

	return GraphOutput{
		FinalResponse: in.FinalResponse,
		History:       in.History,
		Results:       results,
		Intent:        in.Intent,
		ActiveAgents:  in.ActiveAgents,
		Stage:         in.Stage,
		Complete:      in.Complete,
	}, nil
}
