package intent

import (
	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

// intentResponders is the routing policy as data: which responders must run
// for each intent. Information is a member of every mapped set so the
// workflow's information step is unconditional.
var intentResponders = map[contractx.Intent]contractx.ResponderSet{
	contractx.IntentInformation:    {contractx.AgentTypeInformation},
	contractx.IntentRecommendation: {contractx.AgentTypeInformation, contractx.AgentTypeRecommendation},
	contractx.IntentPrice:          {contractx.AgentTypeInformation, contractx.AgentTypeNegotiation},
	contractx.IntentComparison:     {contractx.AgentTypeInformation, contractx.AgentTypeRecommendation},
	contractx.IntentGeneral:        {contractx.AgentTypeInformation},
}

// ActiveResponders returns the responder set for an intent. Unknown intents
// degrade to information-only. The returned slice is a copy; callers may keep
// it in per-invocation state without aliasing the table.
func ActiveResponders(in contractx.Intent) contractx.ResponderSet {
	set, ok := intentResponders[in]
	if !ok {
		set = contractx.ResponderSet{contractx.AgentTypeInformation}
	}
	out := make(contractx.ResponderSet, len(set))
	copy(out, set)
	return out
}
