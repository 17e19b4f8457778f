package contract

import "strings"

type AgentType string

const (
	AgentTypeInformation    AgentType = "information"
	AgentTypeRecommendation AgentType = "recommendation"
	AgentTypeNegotiation    AgentType = "negotiation"
)

// Display names stamped onto responder results and conversation turns.
const (
	AgentNameInformation    = "Information Agent"
	AgentNameRecommendation = "Recommendation Agent"
	AgentNameNegotiation    = "Price Negotiator Agent"
)

type Intent string

const (
	IntentInformation    Intent = "information_request"
	IntentRecommendation Intent = "recommendation_request"
	IntentPrice          Intent = "price_inquiry"
	IntentComparison     Intent = "comparison_request"
	IntentGeneral        Intent = "general_inquiry"
)

type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
	RoleSystem Role = "system"
)

// ConversationTurn is one message unit in the ordered conversation record.
// AgentName is set only for agent turns.
type ConversationTurn struct {
	Role      Role   `json:"role"`
	AgentName string `json:"agent,omitempty"`
	Content   string `json:"content"`
}

// ResponderSet is the set of responders that must run for a given intent.
type ResponderSet []AgentType

func (s ResponderSet) Contains(agent AgentType) bool {
	for _, a := range s {
		if a == agent {
			return true
		}
	}
	return false
}

// ResponderResult is produced once per responder invocation and is immutable
// after creation.
type ResponderResult struct {
	AgentName string         `json:"agent"`
	Timestamp string         `json:"timestamp"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Preferences is the preference record supplied once per invocation by the
// caller. It is consumed only by the recommendation responder and is never
// merged into conversation history.
type Preferences struct {
	Budget      string   `json:"budget,omitempty"`
	SkillLevel  string   `json:"skill_level,omitempty"`
	MusicStyles []string `json:"music_style,omitempty"`
	GuitarType  string   `json:"guitar_type,omitempty"`
	Features    []string `json:"features,omitempty"`
	UseCase     string   `json:"use_case,omitempty"`
	OtherNotes  string   `json:"other_considerations,omitempty"`
}

func (p Preferences) IsZero() bool {
	return strings.TrimSpace(p.Budget) == "" &&
		strings.TrimSpace(p.SkillLevel) == "" &&
		len(p.MusicStyles) == 0 &&
		strings.TrimSpace(p.GuitarType) == "" &&
		len(p.Features) == 0 &&
		strings.TrimSpace(p.UseCase) == "" &&
		strings.TrimSpace(p.OtherNotes) == ""
}

// DealSelections describes a custom deal request for the negotiation responder.
type DealSelections struct {
	Guitars     []string `json:"guitars,omitempty"`
	Accessories []string `json:"accessories,omitempty"`
	Services    []string `json:"services,omitempty"`
	Budget      string   `json:"budget,omitempty"`
}

// QueryResult is the structured output of one workflow invocation.
type QueryResult struct {
	Status              string             `json:"status"`
	FinalResponse       string             `json:"final_response"`
	ConversationHistory []ConversationTurn `json:"conversation_history"`
	AgentsInvolved      []ResponderResult  `json:"agents_involved"`
	Metadata            ResultMetadata     `json:"metadata"`
}

type ResultMetadata struct {
	Intent           Intent       `json:"intent"`
	ActiveAgents     ResponderSet `json:"active_agents"`
	WorkflowComplete bool         `json:"workflow_complete"`
	FinalStage       string       `json:"final_stage"`
}
