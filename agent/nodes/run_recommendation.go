package workflownode

import (
	"context"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

// RunRecommendation produces personalized guitar suggestions from the caller's
// preference record and the conversation so far.
func RunRecommendation(
	ctx context.Context,
	in *GraphState,
	registry contractx.Registry,
) (*GraphState, error) {
	if err := requireState(in); err != nil {
		return nil, err
	}
	if !in.ActiveAgents.Contains(contractx.AgentTypeRecommendation) {
		return in, nil
	}

	res, err := registry.Recommendation().RecommendGuitars(ctx, in.Preferences, priorTurns(in.History))
	if err != nil {
		return nil, err
	}

	in.RecommendationResult = &res
	appendAgentTurn(in, res)
	in.Stage = StageRecommendation
	return in, nil
}
