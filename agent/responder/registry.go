package responder

import (
	"context"
	"errors"
	"fmt"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
	llmx "github.com/tanpawarit/guitar-shop-agents/agent/llm"
	promptx "github.com/tanpawarit/guitar-shop-agents/agent/prompt"
)

type registryImpl struct {
	information    contractx.InformationResponder
	recommendation contractx.RecommendationResponder
	negotiation    contractx.NegotiationResponder
}

func (r *registryImpl) Information() contractx.InformationResponder {
	return r.information
}

func (r *registryImpl) Recommendation() contractx.RecommendationResponder {
	return r.recommendation
}

func (r *registryImpl) Negotiation() contractx.NegotiationResponder {
	return r.negotiation
}

// NewRegistry wires one chat model per responder (each with its own model and
// temperature settings) against the shared retriever.
func NewRegistry(ctx context.Context, cfg llmx.Config, retriever contractx.Retriever) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if retriever == nil {
		return nil, errors.New("retriever is required")
	}

	prompts := promptx.LoadPromptSet()

	informationModelCfg := cfg.OpenRouterFor(contractx.AgentTypeInformation)
	informationModel, err := informationModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create information model: %v", contractx.ErrModelInvoke, err)
	}
	recommendationModelCfg := cfg.OpenRouterFor(contractx.AgentTypeRecommendation)
	recommendationModel, err := recommendationModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create recommendation model: %v", contractx.ErrModelInvoke, err)
	}
	negotiationModelCfg := cfg.OpenRouterFor(contractx.AgentTypeNegotiation)
	negotiationModel, err := negotiationModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create negotiation model: %v", contractx.ErrModelInvoke, err)
	}

	information, err := newInformation(ctx, informationModel, prompts.Information, retriever)
	if err != nil {
		return nil, err
	}
	recommendation, err := newRecommendation(ctx, recommendationModel, prompts.Recommendation, retriever)
	if err != nil {
		return nil, err
	}
	negotiation, err := newNegotiation(ctx, negotiationModel, prompts.Negotiation, retriever)
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		information:    information,
		recommendation: recommendation,
		negotiation:    negotiation,
	}, nil
}
