package contract

import "context"

// Retriever is the knowledge-retrieval collaborator shared by every
// responder. It returns a formatted block of up to k ranked catalog excerpts,
// or an explicit "no information found" sentinel when nothing matches. Errors
// are reserved for transport failures (e.g. the catalog backend being down).
type Retriever interface {
	RetrieveContext(ctx context.Context, query string, k int) (string, error)
}

type InformationResponder interface {
	ProcessInformationRequest(ctx context.Context, query string, history []ConversationTurn) (ResponderResult, error)
	CategoryOverview(ctx context.Context, category string) (ResponderResult, error)
	AnswerSpecificationQuestion(ctx context.Context, question string) (ResponderResult, error)
}

type RecommendationResponder interface {
	RecommendGuitars(ctx context.Context, prefs Preferences, history []ConversationTurn) (ResponderResult, error)
	CompareGuitars(ctx context.Context, guitars []string) (ResponderResult, error)
	AnalyzeUseCase(ctx context.Context, useCase string, budget string, history []ConversationTurn) (ResponderResult, error)
}

type NegotiationResponder interface {
	HandlePriceInquiry(ctx context.Context, guitarModel string, quantity int) (ResponderResult, error)
	NegotiateDiscount(ctx context.Context, guitars []string, budget string, reason string) (ResponderResult, error)
	CreateCustomDeal(ctx context.Context, selections DealSelections) (ResponderResult, error)
	HandleCustomerConcern(ctx context.Context, concern string, relatedGuitar string) (ResponderResult, error)
}

type Registry interface {
	Information() InformationResponder
	Recommendation() RecommendationResponder
	Negotiation() NegotiationResponder
}
