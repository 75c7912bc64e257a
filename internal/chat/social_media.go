package chat

import (
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
)

var socialMediaKeywords = []string{"instagram", "insta", " ig ", "social media"}

// handleKeywords distinguish a request for the specific handle from a
// general social presence question.
var handleKeywords = []string{"handle", "username", "account", "instagram"}

const socialHandleReply = "You can follow Anthill IQ on Instagram at " + facts.Instagram + " for updates, events, and community highlights!"

const socialGeneralReply = "You can connect with Anthill IQ on various social media platforms. Our Instagram handle is " + facts.Instagram + ". We're also on LinkedIn and Facebook!"

func classifySocialMedia(message string) IntentResult {
	lower := " " + strings.ToLower(message) + " "

	matched := false
	for _, kw := range socialMediaKeywords {
		if strings.Contains(lower, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return IntentResult{}
	}

	for _, kw := range handleKeywords {
		if strings.Contains(lower, kw) {
			return IntentResult{
				Intent:     IntentSocialMedia,
				Kind:       "handle",
				Response:   socialHandleReply,
				Confidence: 1.0,
			}
		}
	}

	return IntentResult{
		Intent:     IntentSocialMedia,
		Kind:       "general",
		Response:   socialGeneralReply,
		Confidence: 0.9,
	}
}
