package workflownode

import (
	"context"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

// RunInformation answers the query from the catalog knowledge base. The node
// sits on the unconditional path after intent parsing, so it skips itself when
// the information responder is not in the active set.
func RunInformation(
	ctx context.Context,
	in *GraphState,
	registry contractx.Registry,
) (*GraphState, error) {
	if err := requireState(in); err != nil {
		return nil, err
	}
	if !in.ActiveAgents.Contains(contractx.AgentTypeInformation) {
		return in, nil
	}

	res, err := registry.Information().ProcessInformationRequest(ctx, in.Query, priorTurns(in.History))
	if err != nil {
		return nil, err
	}

	in.InformationResult = &res
	appendAgentTurn(in, res)
	in.Stage = StageInformation
	return in, nil
}
