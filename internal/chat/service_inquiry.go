package chat

import (
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
)

var serviceQueries = []string{
	"services", "what do you offer", "what does anthill offer",
	"what does anthill provide", "what can i book", "types of space",
	"facilities", "amenities", "what services", "workspace options",
	"what are the services", "services that anthill",
}

func classifyService(message string) IntentResult {
	lower := strings.ToLower(message)

	if containsAny(lower, serviceQueries) {
		return IntentResult{
			Intent:     IntentService,
			Kind:       ServiceKindGeneral,
			Response:   facts.ServiceMenu(),
			Confidence: 1.0,
		}
	}

	if svc, ok := facts.LookupService(message); ok {
		return IntentResult{
			Intent:     IntentService,
			Kind:       ServiceKindSpecific,
			Response:   svc.Details,
			Confidence: 1.0,
		}
	}

	return IntentResult{}
}
