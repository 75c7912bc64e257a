package chat

import (
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
)

var pricingKeywords = []string{
	"price", "pricing", "cost", "fee", "how much", "charges",
	"payment", "rate", "subscription", "package", "membership cost",
}

func hasPricingTerm(lower string) bool {
	return containsAny(lower, pricingKeywords)
}

// classifyPricing answers pricing questions with the fact-table deflection.
// Pricing replies are policy-controlled, never model-generated.
func classifyPricing(message string) IntentResult {
	if !hasPricingTerm(strings.ToLower(message)) {
		return IntentResult{}
	}
	return IntentResult{
		Intent:     IntentPricing,
		Response:   facts.PricingReply,
		Confidence: 1.0,
	}
}
