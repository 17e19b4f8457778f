package responder

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

const (
	recommendGuitarsK = 5
	compareGuitarsK   = 6
	useCaseK          = 5
)

type recommendationImpl struct {
	retriever contractx.Retriever
	runner    compose.Runnable[map[string]any, *schema.Message]
}

var _ contractx.RecommendationResponder = (*recommendationImpl)(nil)

func newRecommendation(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	retriever contractx.Retriever,
) (*recommendationImpl, error) {
	runner, err := compileResponderGraph(ctx, chatModel, systemPrompt, "recommendation.responder_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile recommendation graph: %v", contractx.ErrModelInvoke, err)
	}
	return &recommendationImpl{
		retriever: retriever,
		runner:    runner,
	}, nil
}

func (a *recommendationImpl) RecommendGuitars(
	ctx context.Context,
	prefs contractx.Preferences,
	history []contractx.ConversationTurn,
) (contractx.ResponderResult, error) {
	summary := buildPreferenceSummary(prefs)

	kbContext, err := a.retriever.RetrieveContext(ctx, summary, recommendGuitarsK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	input := fmt.Sprintf(`Previous Conversation:
%s

Please recommend the best guitars for this customer based on their preferences:

CUSTOMER PREFERENCES:
%s

KNOWLEDGE BASE CONTEXT from Catalog:
%s

If the catalog context above is empty or doesn't contain relevant guitars, politely inform the customer that we don't have those specific models in our current catalog instead of making them up.

Provide 3-5 specific guitar recommendations (ONLY from the catalog context above) with:
1. Guitar model/type name
2. Why it matches their preferences
3. Key features that align with their needs
4. Approximate price range
5. Best use cases for this guitar`,
		renderHistory(history), summary, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameRecommendation, content, map[string]any{
		"preferences":          prefs,
		"recommendation_type":  "personalized",
		"recommendation_count": "3-5",
		"knowledge_base_used":  true,
	}), nil
}

func (a *recommendationImpl) CompareGuitars(ctx context.Context, guitars []string) (contractx.ResponderResult, error) {
	guitarsText := strings.Join(guitars, ", ")
	query := "Compare these guitars: " + guitarsText

	kbContext, err := a.retriever.RetrieveContext(ctx, query, compareGuitarsK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	input := fmt.Sprintf(`Please provide a detailed comparison of these guitars:
%s

KNOWLEDGE BASE CONTEXT:
%s

Create a structured comparison covering:
1. Sound characteristics
2. Build quality
3. Price point
4. Best suited for
5. Pros and cons of each
6. Overall recommendation`,
		guitarsText, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameRecommendation, content, map[string]any{
		"guitars_compared":    guitars,
		"comparison_count":    len(guitars),
		"recommendation_type": "comparative",
	}), nil
}

func (a *recommendationImpl) AnalyzeUseCase(
	ctx context.Context,
	useCase string,
	budget string,
	history []contractx.ConversationTurn,
) (contractx.ResponderResult, error) {
	query := "Guitars suitable for " + useCase
	if strings.TrimSpace(budget) != "" {
		query += " within " + budget + " budget"
	}

	kbContext, err := a.retriever.RetrieveContext(ctx, query, useCaseK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	budgetText := "Budget: Not specified"
	if strings.TrimSpace(budget) != "" {
		budgetText = "Budget: " + budget
	}

	input := fmt.Sprintf(`Previous Conversation:
%s

A customer is looking for a guitar for this specific use case:
Use Case: %s
%s

KNOWLEDGE BASE CONTEXT:
%s

Based on this use case, recommend the most suitable guitars with:
1. Specific model recommendations (ONLY from the context above)
2. Why they're perfect for this use case
3. Key features to look for
4. Alternative options if available
5. What to avoid

If no suitable guitars are found in the catalog context, admit that we don't have exact matches.`,
		renderHistory(history), useCase, budgetText, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameRecommendation, content, map[string]any{
		"use_case":            useCase,
		"budget":              budget,
		"recommendation_type": "use_case_based",
	}), nil
}

func buildPreferenceSummary(prefs contractx.Preferences) string {
	if prefs.IsZero() {
		return "No specific preferences provided"
	}

	var summary []string

	if strings.TrimSpace(prefs.Budget) != "" {
		summary = append(summary, "- Budget: "+prefs.Budget)
	}
	if strings.TrimSpace(prefs.SkillLevel) != "" {
		summary = append(summary, "- Skill Level: "+prefs.SkillLevel)
	}
	if len(prefs.MusicStyles) > 0 {
		summary = append(summary, "- Music Style: "+strings.Join(prefs.MusicStyles, ", "))
	}
	if strings.TrimSpace(prefs.GuitarType) != "" {
		summary = append(summary, "- Preferred Type: "+prefs.GuitarType)
	}
	if len(prefs.Features) > 0 {
		summary = append(summary, "- Desired Features: "+strings.Join(prefs.Features, ", "))
	}
	if strings.TrimSpace(prefs.UseCase) != "" {
		summary = append(summary, "- Use Case: "+prefs.UseCase)
	}
	if strings.TrimSpace(prefs.OtherNotes) != "" {
		summary = append(summary, "- Special Considerations: "+prefs.OtherNotes)
	}

	return strings.Join(summary, "\n")
}
