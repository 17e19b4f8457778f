package workflownode

import (
	"context"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

// RunNegotiation handles pricing and deal questions. Within the workflow the
// raw query stands in for the guitar model, quoted at unit quantity; callers
// wanting discount negotiation or custom deals use the negotiation responder
// directly.
func RunNegotiation(
	ctx context.Context,
	in *GraphState,
	registry contractx.Registry,
) (*GraphState, error) {
	if err := requireState(in); err != nil {
		return nil, err
	}
	if !in.ActiveAgents.Contains(contractx.AgentTypeNegotiation) {
		return in, nil
	}

	res, err := registry.Negotiation().HandlePriceInquiry(ctx, in.Query, 1)
	if err != nil {
		return nil, err
	}

	in.NegotiationResult = &res
	appendAgentTurn(in, res)
	in.Stage = StageNegotiation
	return in, nil
}
