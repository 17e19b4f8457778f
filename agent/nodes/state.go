package workflownode

import (
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
	intentx "github.com/tanpawarit/guitar-shop-agents/agent/intent"
)

// Workflow stages, recorded on the state as each node completes.
const (
	StageInitialized    = "initialized"
	StageIntentParsing  = "intent_parsing"
	StageInformation    = "information_gathering"
	StageRecommendation = "recommendation"
	StageNegotiation    = "negotiation"
	StageComplete       = "complete"
)

type GraphInput struct {
	Query       string
	History     []contractx.ConversationTurn
	Preferences contractx.Preferences
}

type GraphOutput struct {
	FinalResponse string
	History       []contractx.ConversationTurn
	Results       []contractx.ResponderResult
	Intent        contractx.Intent
	ActiveAgents  contractx.ResponderSet
	Stage         string
	Complete      bool
}

// GraphState carries one invocation through the workflow. Each responder node
// fills exactly one result slot; slots for responders outside the active set
// stay nil.
type GraphState struct {
	Query       string
	History     []contractx.ConversationTurn
	Preferences contractx.Preferences

	Intent       contractx.Intent
	ActiveAgents contractx.ResponderSet

	InformationResult    *contractx.ResponderResult
	RecommendationResult *contractx.ResponderResult
	NegotiationResult    *contractx.ResponderResult

	FinalResponse string
	Stage         string
	Complete      bool
}

// ParseIntent validates the incoming query, records it as a user turn, and
// resolves the set of responders that must run.
func ParseIntent(in GraphInput) (*GraphState, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, contractx.ErrEmptyQuery
	}

	history := make([]contractx.ConversationTurn, 0, len(in.History)+1)
	history = append(history, in.History...)
	history = append(history, contractx.ConversationTurn{
		Role:    contractx.RoleUser,
		Content: query,
	})

	detected := intentx.Classify(query)

	return &GraphState{
		Query:        query,
		History:      history,
		Preferences:  in.Preferences,
		Intent:       detected,
		ActiveAgents: intentx.ActiveResponders(detected),
		Stage:        StageIntentParsing,
	}, nil
}

// priorTurns returns the conversation excluding the most recently appended
// turn, so a responder never sees the message it is currently answering.
func priorTurns(history []contractx.ConversationTurn) []contractx.ConversationTurn {
	if len(history) <= 1 {
		return nil
	}
	return history[:len(history)-1]
}

func appendAgentTurn(state *GraphState, res contractx.ResponderResult) {
	state.History = append(state.History, contractx.ConversationTurn{
		Role:      contractx.RoleAgent,
		AgentName: res.AgentName,
		Content:   res.Content,
	})
}

func requireState(in *GraphState) error {
	if in == nil {
		return fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	return nil
}
