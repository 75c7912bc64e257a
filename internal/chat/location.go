package chat

import (
	"fmt"
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
)

// addressQueries ask for a street address or directions. These also veto the
// booking detector, see the booking package.
var addressQueries = []string{
	"address", "location address", "office address", "full address",
	"where exactly", "directions to", "how to reach", "where is",
	"get address", "need address", "reach there", "where are you",
}

var locationQueries = []string{
	"where are you located",
	"your location",
	"where is your office",
	"where is anthill",
	"branch",
	"location",
	"locations",
	"branches",
	"centers",
}

var contactQueries = []string{"contact", "number", "phone"}

const unknownBranchReply = `Anthill IQ doesn't have a branch in that area. Our fully operational locations are:

1. Cunningham Road (Central Bangalore)
2. Hulimavu (South Bangalore)
3. Arekere (South Bangalore)
4. Hebbal (North Bangalore)

All our centers are open and ready to serve you. Would you like to know more about any of these locations?`

// classifyLocation handles the location family: forced corrections for areas
// with no branch, full-address requests, general listings, named-branch
// lookups, and contact details. A named branch inside a pricing question is
// left for the pricing classifier.
func classifyLocation(message string) IntentResult {
	lower := strings.ToLower(message)

	// An unrecognized area must get an explicit denial, never silence or a
	// model guess.
	if facts.MentionsUnknownBranch(message) {
		return IntentResult{
			Intent:     IntentLocation,
			Kind:       LocationKindCorrection,
			Response:   unknownBranchReply,
			Confidence: 1.0,
		}
	}

	if containsAny(lower, addressQueries) {
		return IntentResult{
			Intent:     IntentLocation,
			Kind:       LocationKindAddress,
			Response:   facts.BranchListDetailed(),
			Confidence: 1.0,
		}
	}

	if branch, ok := facts.LookupBranch(message); ok && !hasPricingTerm(lower) {
		return IntentResult{
			Intent:     IntentLocation,
			Kind:       LocationKindBranch,
			Response:   branchReply(branch),
			Confidence: 1.0,
		}
	}

	if (containsAny(lower, locationQueries) || (strings.Contains(lower, "where") && strings.Contains(lower, "located"))) && !hasPricingTerm(lower) {
		return IntentResult{
			Intent:     IntentLocation,
			Kind:       LocationKindGeneral,
			Response:   facts.BranchList() + "\n\nAll our locations are fully operational and offer our complete range of services. Would you like to know more about any specific location?",
			Confidence: 1.0,
		}
	}

	if containsAny(lower, contactQueries) {
		return IntentResult{
			Intent:     IntentLocation,
			Kind:       LocationKindContact,
			Response:   facts.ContactBlock(),
			Confidence: 1.0,
		}
	}

	return IntentResult{}
}

func branchReply(b facts.Branch) string {
	return fmt.Sprintf("Our %s branch is now open in %s, located at:\n\n%s\n\nThis location offers all our services including private offices, dedicated desks, coworking spaces, and meeting rooms. Would you like to schedule a visit?",
		b.Name, b.Region, b.Address)
}

func containsAny(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
