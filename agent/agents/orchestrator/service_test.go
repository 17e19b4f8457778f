package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

type fakeInformation struct {
	content  string
	err      error
	calls    int
	lastHist []contractx.ConversationTurn
}

func (f *fakeInformation) ProcessInformationRequest(ctx context.Context, query string, history []contractx.ConversationTurn) (contractx.ResponderResult, error) {
	f.calls++
	f.lastHist = append([]contractx.ConversationTurn(nil), history...)
	if f.err != nil {
		return contractx.ResponderResult{}, f.err
	}
	return contractx.ResponderResult{AgentName: contractx.AgentNameInformation, Content: f.content}, nil
}

func (f *fakeInformation) CategoryOverview(ctx context.Context, category string) (contractx.ResponderResult, error) {
	return contractx.ResponderResult{}, errors.New("not used in workflow")
}

func (f *fakeInformation) AnswerSpecificationQuestion(ctx context.Context, question string) (contractx.ResponderResult, error) {
	return contractx.ResponderResult{}, errors.New("not used in workflow")
}

type fakeRecommendation struct {
	content string
	calls   int
}

func (f *fakeRecommendation) RecommendGuitars(ctx context.Context, prefs contractx.Preferences, history []contractx.ConversationTurn) (contractx.ResponderResult, error) {
	f.calls++
	return contractx.ResponderResult{AgentName: contractx.AgentNameRecommendation, Content: f.content}, nil
}

func (f *fakeRecommendation) CompareGuitars(ctx context.Context, guitars []string) (contractx.ResponderResult, error) {
	return contractx.ResponderResult{}, errors.New("not used in workflow")
}

func (f *fakeRecommendation) AnalyzeUseCase(ctx context.Context, useCase string, budget string, history []contractx.ConversationTurn) (contractx.ResponderResult, error) {
	return contractx.ResponderResult{}, errors.New("not used in workflow")
}

type fakeNegotiation struct {
	content      string
	calls        int
	lastModel    string
	lastQuantity int
}

func (f *fakeNegotiation) HandlePriceInquiry(ctx context.Context, guitarModel string, quantity int) (contractx.ResponderResult, error) {
	f.calls++
	f.lastModel = guitarModel
	f.lastQuantity = quantity
	return contractx.ResponderResult{AgentName: contractx.AgentNameNegotiation, Content: f.content}, nil
}

func (f *fakeNegotiation) NegotiateDiscount(ctx context.Context, guitars []string, budget string, reason string) (contractx.ResponderResult, error) {
	return contractx.ResponderResult{}, errors.New("not used in workflow")
}

func (f *fakeNegotiation) CreateCustomDeal(ctx context.Context, selections contractx.DealSelections) (contractx.ResponderResult, error) {
	return contractx.ResponderResult{}, errors.New("not used in workflow")
}

func (f *fakeNegotiation) HandleCustomerConcern(ctx context.Context, concern string, relatedGuitar string) (contractx.ResponderResult, error) {
	return contractx.ResponderResult{}, errors.New("not used in workflow")
}

type fakeRegistry struct {
	information    *fakeInformation
	recommendation *fakeRecommendation
	negotiation    *fakeNegotiation
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		information:    &fakeInformation{content: "info reply"},
		recommendation: &fakeRecommendation{content: "rec reply"},
		negotiation:    &fakeNegotiation{content: "neg reply"},
	}
}

func (f *fakeRegistry) Information() contractx.InformationResponder {
	return f.information
}

func (f *fakeRegistry) Recommendation() contractx.RecommendationResponder {
	return f.recommendation
}

func (f *fakeRegistry) Negotiation() contractx.NegotiationResponder {
	return f.negotiation
}

func mustNew(t *testing.T, registry contractx.Registry) *Orchestrator {
	t.Helper()
	o, err := New(registry)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return o
}

func TestNewRequiresRegistry(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); err == nil {
		t.Fatal("New(nil) must fail")
	}
}

func TestProcessCustomerQueryInformationOnly(t *testing.T) {
	t.Parallel()

	registry := newFakeRegistry()
	o := mustNew(t, registry)

	res, err := o.ProcessCustomerQuery(context.Background(), "Tell me about the Fender Stratocaster", nil, contractx.Preferences{})
	if err != nil {
		t.Fatalf("ProcessCustomerQuery() error = %v", err)
	}

	if res.Status != "success" {
		t.Fatalf("status = %q", res.Status)
	}
	if !strings.Contains(res.FinalResponse, "### 📚 Guitar Info") || !strings.Contains(res.FinalResponse, "info reply") {
		t.Fatalf("information section missing:\n%s", res.FinalResponse)
	}
	if strings.Contains(res.FinalResponse, "### ✨ Recommendations") || strings.Contains(res.FinalResponse, "### 💰 Pricing & Deals") {
		t.Fatalf("unexpected section present:\n%s", res.FinalResponse)
	}
	if registry.recommendation.calls != 0 || registry.negotiation.calls != 0 {
		t.Fatalf("inactive responders invoked: rec=%d neg=%d", registry.recommendation.calls, registry.negotiation.calls)
	}

	if len(res.ConversationHistory) != 2 {
		t.Fatalf("history length = %d, want user + agent turn", len(res.ConversationHistory))
	}
	if res.ConversationHistory[0].Role != contractx.RoleUser {
		t.Fatalf("first turn = %+v", res.ConversationHistory[0])
	}
	if res.ConversationHistory[1].AgentName != contractx.AgentNameInformation {
		t.Fatalf("second turn = %+v", res.ConversationHistory[1])
	}

	if len(res.AgentsInvolved) != 1 || res.AgentsInvolved[0].AgentName != contractx.AgentNameInformation {
		t.Fatalf("agents involved = %+v", res.AgentsInvolved)
	}
	if res.Metadata.Intent != contractx.IntentInformation {
		t.Fatalf("intent = %s", res.Metadata.Intent)
	}
	if !res.Metadata.WorkflowComplete || res.Metadata.FinalStage != "complete" {
		t.Fatalf("metadata = %+v", res.Metadata)
	}
}

func TestProcessCustomerQueryRecommendation(t *testing.T) {
	t.Parallel()

	registry := newFakeRegistry()
	o := mustNew(t, registry)

	res, err := o.ProcessCustomerQuery(context.Background(), "Can you recommend a guitar for jazz?", nil, contractx.Preferences{
		MusicStyles: []string{"Jazz"},
	})
	if err != nil {
		t.Fatalf("ProcessCustomerQuery() error = %v", err)
	}

	if res.Metadata.Intent != contractx.IntentRecommendation {
		t.Fatalf("intent = %s", res.Metadata.Intent)
	}
	infoIdx := strings.Index(res.FinalResponse, "### 📚 Guitar Info")
	recIdx := strings.Index(res.FinalResponse, "### ✨ Recommendations")
	if infoIdx < 0 || recIdx < 0 || infoIdx > recIdx {
		t.Fatalf("sections missing or misordered:\n%s", res.FinalResponse)
	}
	if registry.negotiation.calls != 0 {
		t.Fatalf("negotiation invoked %d times for a recommendation query", registry.negotiation.calls)
	}
	if len(res.ConversationHistory) != 3 {
		t.Fatalf("history length = %d, want user + two agent turns", len(res.ConversationHistory))
	}
	if len(res.AgentsInvolved) != 2 {
		t.Fatalf("agents involved = %+v", res.AgentsInvolved)
	}
}

func TestProcessCustomerQueryPriceInquiry(t *testing.T) {
	t.Parallel()

	registry := newFakeRegistry()
	o := mustNew(t, registry)

	res, err := o.ProcessCustomerQuery(context.Background(), "How much does the Les Paul cost?", nil, contractx.Preferences{})
	if err != nil {
		t.Fatalf("ProcessCustomerQuery() error = %v", err)
	}

	if res.Metadata.Intent != contractx.IntentPrice {
		t.Fatalf("intent = %s", res.Metadata.Intent)
	}
	if !strings.Contains(res.FinalResponse, "### 💰 Pricing & Deals") {
		t.Fatalf("pricing section missing:\n%s", res.FinalResponse)
	}
	if strings.Contains(res.FinalResponse, "### ✨ Recommendations") {
		t.Fatalf("recommendation section leaked:\n%s", res.FinalResponse)
	}
	if registry.recommendation.calls != 0 {
		t.Fatalf("recommendation invoked %d times for a price query", registry.recommendation.calls)
	}
	if registry.negotiation.lastModel != "How much does the Les Paul cost?" || registry.negotiation.lastQuantity != 1 {
		t.Fatalf("negotiation call = (%q, %d)", registry.negotiation.lastModel, registry.negotiation.lastQuantity)
	}
}

func TestProcessCustomerQueryEmptyQuery(t *testing.T) {
	t.Parallel()

	o := mustNew(t, newFakeRegistry())

	if _, err := o.ProcessCustomerQuery(context.Background(), "   ", nil, contractx.Preferences{}); !errors.Is(err, contractx.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestProcessCustomerQueryKeepsCallerHistory(t *testing.T) {
	t.Parallel()

	registry := newFakeRegistry()
	o := mustNew(t, registry)

	prior := []contractx.ConversationTurn{
		{Role: contractx.RoleUser, Content: "Hi, I'm shopping for my first guitar."},
		{Role: contractx.RoleAgent, AgentName: contractx.AgentNameInformation, Content: "Happy to help!"},
	}

	res, err := o.ProcessCustomerQuery(context.Background(), "Tell me about acoustic guitars", prior, contractx.Preferences{})
	if err != nil {
		t.Fatalf("ProcessCustomerQuery() error = %v", err)
	}

	if len(prior) != 2 {
		t.Fatalf("caller history mutated: %+v", prior)
	}
	if len(res.ConversationHistory) != 4 {
		t.Fatalf("history length = %d, want prior + user + agent", len(res.ConversationHistory))
	}
	if res.ConversationHistory[0].Content != prior[0].Content {
		t.Fatalf("prior turns not preserved: %+v", res.ConversationHistory[0])
	}
	if len(registry.information.lastHist) != 2 {
		t.Fatalf("responder saw %d prior turns, want 2", len(registry.information.lastHist))
	}
}

func TestProcessCustomerQueryFallbackOnEmptyContent(t *testing.T) {
	t.Parallel()

	registry := newFakeRegistry()
	registry.information.content = ""
	o := mustNew(t, registry)

	res, err := o.ProcessCustomerQuery(context.Background(), "Tell me about theremins", nil, contractx.Preferences{})
	if err != nil {
		t.Fatalf("ProcessCustomerQuery() error = %v", err)
	}

	if !strings.HasPrefix(res.FinalResponse, "I'm not sure how to help with that — could you rephrase?") {
		t.Fatalf("fallback missing:\n%s", res.FinalResponse)
	}
	if !strings.Contains(res.FinalResponse, "🎸") {
		t.Fatalf("closing line missing:\n%s", res.FinalResponse)
	}
	if len(res.AgentsInvolved) != 0 {
		t.Fatalf("agents involved = %+v", res.AgentsInvolved)
	}
	if res.Status != "success" {
		t.Fatalf("status = %q", res.Status)
	}
}

func TestProcessCustomerQueryResponderErrorPropagates(t *testing.T) {
	t.Parallel()

	registry := newFakeRegistry()
	registry.information.err = errors.New("model unavailable")
	o := mustNew(t, registry)

	if _, err := o.ProcessCustomerQuery(context.Background(), "Tell me about the Stratocaster", nil, contractx.Preferences{}); !errors.Is(err, registry.information.err) {
		t.Fatalf("expected responder error, got %v", err)
	}
}
