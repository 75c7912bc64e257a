package chat

import (
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
)

// identityPatterns match questions about the assistant itself or about what
// Anthill IQ is.
var identityPatterns = []string{
	"who are you",
	"what are you",
	"are you a bot",
	"are you human",
	"are you ai",
	"what is anthill",
	"what is anthill iq",
	"tell me about anthill",
	"what does anthill mean",
	"meaning of anthill",
	"about anthill",
}

const identityReply = `I am the Anthill IQ Assistant, your dedicated guide to our premium coworking spaces in Bangalore.

Anthill IQ is Bangalore's premium coworking space provider, offering intelligent workspace solutions that foster productivity, creativity, and community. The name represents our core values:
- "Anthill": A collaborative and industrious community working together
- "IQ": Intelligence in workspace solutions and smart amenities

We provide premium workspace solutions including:
• Private Offices
• Dedicated Desks
• Coworking Spaces
• Meeting Rooms
• Event Spaces
• Training Rooms

Our spaces are designed to create an ecosystem where professionals, startups, and enterprises can thrive together. Would you like to know more about our services or locations?`

func classifyIdentity(message string) IntentResult {
	lower := strings.ToLower(message)
	for _, pat := range identityPatterns {
		if strings.Contains(lower, pat) {
			return IntentResult{
				Intent:     IntentIdentity,
				Response:   identityReply,
				Confidence: 1.0,
			}
		}
	}
	return IntentResult{}
}

const competitorReply = "I'm specialized in providing information about Anthill IQ's coworking spaces and services. I don't have detailed information about other coworking providers."

// classifyCompetitor deflects questions that name a competing coworking
// brand. Terminal: no later classifier runs and the model is never called.
func classifyCompetitor(message string) IntentResult {
	lower := strings.ToLower(message)
	for _, brand := range facts.Competitors {
		if strings.Contains(lower, brand) {
			return IntentResult{
				Intent:     IntentOffTopic,
				Response:   competitorReply,
				Confidence: 1.0,
			}
		}
	}
	return IntentResult{}
}
