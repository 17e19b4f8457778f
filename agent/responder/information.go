package responder

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

const (
	informationRequestK    = 5
	categoryOverviewK      = 5
	specificationQuestionK = 4
)

type informationImpl struct {
	retriever contractx.Retriever
	runner    compose.Runnable[map[string]any, *schema.Message]
}

var _ contractx.InformationResponder = (*informationImpl)(nil)

func newInformation(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	retriever contractx.Retriever,
) (*informationImpl, error) {
	runner, err := compileResponderGraph(ctx, chatModel, systemPrompt, "information.responder_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile information graph: %v", contractx.ErrModelInvoke, err)
	}
	return &informationImpl{
		retriever: retriever,
		runner:    runner,
	}, nil
}

func (a *informationImpl) ProcessInformationRequest(
	ctx context.Context,
	query string,
	history []contractx.ConversationTurn,
) (contractx.ResponderResult, error) {
	kbContext, err := a.retriever.RetrieveContext(ctx, query, informationRequestK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	input := fmt.Sprintf(`Previous Conversation:
%s

Customer says: %s

Our Guitar Catalog Data:
%s

Respond naturally as a shop assistant. Mention ONLY specific guitar names and brands from the catalog data provided above.
Carefully scan the catalog data for the exact phrase 'Skill Level: Beginner'; if present, emphasize those entries as the best choices.
If the information is not in the catalog, say you don't have that information.`,
		renderHistory(history), query, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameInformation, content, map[string]any{
		"query":               query,
		"knowledge_base_used": true,
		"retrieved_chunks":    informationRequestK,
	}), nil
}

func (a *informationImpl) CategoryOverview(ctx context.Context, category string) (contractx.ResponderResult, error) {
	query := fmt.Sprintf("What guitars are available in the %s category? Provide detailed information.", category)
	kbContext, err := a.retriever.RetrieveContext(ctx, query, categoryOverviewK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	input := fmt.Sprintf(`Please provide comprehensive information about guitars in the '%s' category.

Knowledge Base Context:
%s

Include details about different options, their characteristics, and suitable use cases.`,
		category, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameInformation, content, map[string]any{
		"category":     category,
		"request_type": "category_overview",
	}), nil
}

func (a *informationImpl) AnswerSpecificationQuestion(ctx context.Context, question string) (contractx.ResponderResult, error) {
	kbContext, err := a.retriever.RetrieveContext(ctx, question, specificationQuestionK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	input := fmt.Sprintf(`A customer has a specific question about guitar specifications:
%s

Knowledge Base Context:
%s

Provide a detailed, technical but understandable answer.`,
		question, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameInformation, content, map[string]any{
		"question":     question,
		"request_type": "specification_inquiry",
	}), nil
}
