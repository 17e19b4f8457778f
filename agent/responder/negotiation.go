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
	priceInquiryK    = 3
	discountK        = 4
	customDealK      = 5
	customerConcernK = 4
)

type negotiationImpl struct {
	retriever contractx.Retriever
	runner    compose.Runnable[map[string]any, *schema.Message]
}

var _ contractx.NegotiationResponder = (*negotiationImpl)(nil)

func newNegotiation(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	retriever contractx.Retriever,
) (*negotiationImpl, error) {
	runner, err := compileResponderGraph(ctx, chatModel, systemPrompt, "negotiation.responder_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile negotiation graph: %v", contractx.ErrModelInvoke, err)
	}
	return &negotiationImpl{
		retriever: retriever,
		runner:    runner,
	}, nil
}

func (a *negotiationImpl) HandlePriceInquiry(ctx context.Context, guitarModel string, quantity int) (contractx.ResponderResult, error) {
	if quantity <= 0 {
		quantity = 1
	}

	kbContext, err := a.retriever.RetrieveContext(ctx, "Price range for "+guitarModel, priceInquiryK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	input := fmt.Sprintf(`A customer is inquiring about the price for:
Guitar Model: %s
Quantity: %d

KNOWLEDGE BASE CONTEXT:
%s

Please provide:
1. The typical price range for this guitar
2. Factors that affect pricing
3. Any current promotions or deals available
4. Volume discounts if applicable
5. Bundle options that could improve value`,
		guitarModel, quantity, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameNegotiation, content, map[string]any{
		"guitar_model": guitarModel,
		"quantity":     quantity,
		"inquiry_type": "price_inquiry",
	}), nil
}

func (a *negotiationImpl) NegotiateDiscount(
	ctx context.Context,
	guitars []string,
	budget string,
	reason string,
) (contractx.ResponderResult, error) {
	guitarsText := strings.Join(guitars, ", ")

	kbContext, err := a.retriever.RetrieveContext(ctx, "Pricing and discounts for "+guitarsText, discountK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	reasonText := ""
	if strings.TrimSpace(reason) != "" {
		reasonText = "\nCustomer's reason: " + reason
	}

	input := fmt.Sprintf(`Please help find the best deal for this customer:

Guitars of Interest: %s
Customer Budget: %s%s

KNOWLEDGE BASE CONTEXT:
%s

Please suggest:
1. Best possible pricing for these guitars
2. Available discount strategies
3. Bundle combinations that fit the budget
4. Trade-in opportunities
5. Extended warranty/service packages to add value
6. Timeline suggestions for best deals`,
		guitarsText, budget, reasonText, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameNegotiation, content, map[string]any{
		"guitars":          guitars,
		"customer_budget":  budget,
		"reason":           reason,
		"negotiation_type": "discount_negotiation",
	}), nil
}

func (a *negotiationImpl) CreateCustomDeal(ctx context.Context, selections contractx.DealSelections) (contractx.ResponderResult, error) {
	guitarsText := "None selected"
	if len(selections.Guitars) > 0 {
		guitarsText = strings.Join(selections.Guitars, ", ")
	}
	accessoriesText := "None"
	if len(selections.Accessories) > 0 {
		accessoriesText = strings.Join(selections.Accessories, ", ")
	}
	servicesText := "None"
	if len(selections.Services) > 0 {
		servicesText = strings.Join(selections.Services, ", ")
	}
	budget := selections.Budget
	if strings.TrimSpace(budget) == "" {
		budget = "Not specified"
	}

	retrievalSubject := "guitars"
	if len(selections.Guitars) > 0 {
		retrievalSubject = strings.Join(selections.Guitars, ", ")
	}
	kbContext, err := a.retriever.RetrieveContext(ctx, "Guitar deals and bundles for "+retrievalSubject, customDealK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	input := fmt.Sprintf(`Please create a custom deal package for this customer:

CUSTOMER SELECTIONS:
Guitars: %s
Accessories: %s
Services: %s
Total Budget: %s

KNOWLEDGE BASE CONTEXT:
%s

Please create:
1. A complete package proposal with itemized pricing
2. Total package price and savings vs. individual purchases
3. Payment plan options if needed
4. Warranty and service inclusions
5. Any additional value-adds to sweeten the deal
6. Clear next steps for the customer`,
		guitarsText, accessoriesText, servicesText, budget, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameNegotiation, content, map[string]any{
		"selections":       selections,
		"negotiation_type": "custom_deal",
	}), nil
}

func (a *negotiationImpl) HandleCustomerConcern(ctx context.Context, concern string, relatedGuitar string) (contractx.ResponderResult, error) {
	searchQuery := concern
	if strings.TrimSpace(relatedGuitar) != "" {
		searchQuery = "Pricing concerns and solutions for " + relatedGuitar
	}

	kbContext, err := a.retriever.RetrieveContext(ctx, searchQuery, customerConcernK)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	relatedText := ""
	if strings.TrimSpace(relatedGuitar) != "" {
		relatedText = "\nRelated to: " + relatedGuitar
	}

	input := fmt.Sprintf(`A customer has expressed this concern about pricing/value:
%s%s

KNOWLEDGE BASE CONTEXT:
%s

Please:
1. Acknowledge and validate their concern
2. Provide relevant pricing/value information
3. Suggest alternatives or solutions
4. Explain what they get for the price
5. Offer next steps or compromise options`,
		concern, relatedText, kbContext)

	content, err := generate(ctx, a.runner, input)
	if err != nil {
		return contractx.ResponderResult{}, err
	}

	return newResult(contractx.AgentNameNegotiation, content, map[string]any{
		"concern":          concern,
		"related_guitar":   relatedGuitar,
		"negotiation_type": "concern_handling",
	}), nil
}
