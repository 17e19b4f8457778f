package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
	nodex "github.com/tanpawarit/guitar-shop-agents/agent/nodes"
)

// Responder precedence is fixed: information runs before recommendation, which
// runs before negotiation. Branches only skip forward past responders outside
// the active set, never reorder them.
func (o *Orchestrator) compileProcessQueryGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("parse_intent",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ParseIntent(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node parse_intent: %w", err)
	}

	if err := graph.AddLambdaNode("information_node",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.RunInformation(ctx, in, o.responders)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node information_node: %w", err)
	}

	if err := graph.AddLambdaNode("recommendation_node",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.RunRecommendation(ctx, in, o.responders)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node recommendation_node: %w", err)
	}

	if err := graph.AddLambdaNode("negotiation_node",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.RunNegotiation(ctx, in, o.responders)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node negotiation_node: %w", err)
	}

	if err := graph.AddLambdaNode("synthesize_response",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.Synthesize(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node synthesize_response: %w", err)
	}

	afterInformation := compose.NewGraphBranch(
		func(ctx context.Context, in *nodex.GraphState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
			}
			switch {
			case in.ActiveAgents.Contains(contractx.AgentTypeRecommendation):
				return "recommendation_node", nil
			case in.ActiveAgents.Contains(contractx.AgentTypeNegotiation):
				return "negotiation_node", nil
			default:
				return "synthesize_response", nil
			}
		},
		map[string]bool{
			"recommendation_node": true,
			"negotiation_node":    true,
			"synthesize_response": true,
		},
	)
	if err := graph.AddBranch("information_node", afterInformation); err != nil {
		return nil, fmt.Errorf("add branch after information_node: %w", err)
	}

	afterRecommendation := compose.NewGraphBranch(
		func(ctx context.Context, in *nodex.GraphState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
			}
			if in.ActiveAgents.Contains(contractx.AgentTypeNegotiation) {
				return "negotiation_node", nil
			}
			return "synthesize_response", nil
		},
		map[string]bool{
			"negotiation_node":    true,
			"synthesize_response": true,
		},
	)
	if err := graph.AddBranch("recommendation_node", afterRecommendation); err != nil {
		return nil, fmt.Errorf("add branch after recommendation_node: %w", err)
	}

	edges := [][2]string{
		{compose.START, "parse_intent"},
		{"parse_intent", "information_node"},
		{"negotiation_node", "synthesize_response"},
		{"synthesize_response", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.process_customer_query"))
	if err != nil {
		return nil, fmt.Errorf("compile orchestrator graph: %w", err)
	}
	return runner, nil
}
