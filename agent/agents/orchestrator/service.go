package orchestrator

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
	nodex "github.com/tanpawarit/guitar-shop-agents/agent/nodes"
)

const statusSuccess = "success"

// Orchestrator runs the customer query workflow: parse intent, execute the
// active responders in precedence order, synthesize a single reply.
type Orchestrator struct {
	responders contractx.Registry

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]
}

func New(responders contractx.Registry) (*Orchestrator, error) {
	if responders == nil {
		return nil, errors.New("responder registry is required")
	}

	o := &Orchestrator{responders: responders}

	graphRunner, err := o.compileProcessQueryGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// ProcessCustomerQuery handles one customer message against the supplied
// conversation history. The history argument is not mutated; the returned
// result carries the extended conversation for the caller to keep.
func (o *Orchestrator) ProcessCustomerQuery(
	ctx context.Context,
	query string,
	history []contractx.ConversationTurn,
	prefs contractx.Preferences,
) (contractx.QueryResult, error) {
	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		Query:       query,
		History:     history,
		Preferences: prefs,
	})
	if err != nil {
		return contractx.QueryResult{}, err
	}

	return contractx.QueryResult{
		Status:              statusSuccess,
		FinalResponse:       out.FinalResponse,
		ConversationHistory: out.History,
		AgentsInvolved:      out.Results,
		Metadata: contractx.ResultMetadata{
			Intent:           out.Intent,
			ActiveAgents:     out.ActiveAgents,
			WorkflowComplete: out.Complete,
			FinalStage:       out.Stage,
		},
	}, nil
}
