// Package booking detects reservation intent, extracts contact details from
// free-form messages, and persists booking leads for the sales team.
package booking

import (
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
)

// Weak signals: any single one is too ambiguous ("office", "services"), so
// two or more must co-occur before the message counts as a booking.
var bookingKeywords = []string{
	"book", "schedule", "appointment", "meeting", "consultation",
	"would like to meet", "speak with", "talk to", "discuss",
	"hire", "engage", "services", "reserve", "get a", "sign up",
	"membership", "office", "join", "register", "day pass",
}

// Strong signals: one match suffices.
var bookingPhrases = []string{
	"i need a", "i want to book", "i'd like to book",
	"can i book", "looking to book", "interested in booking",
	"how do i book", "i want to reserve", "need to reserve",
	"can i get a", "would like to sign up", "interested in getting",
}

// Address questions mention booking-adjacent words ("where is your office")
// but must never start the booking flow.
var addressKeywords = []string{
	"address", "location address", "office address", "full address",
	"where exactly", "directions to", "how to reach", "where is",
	"get address", "need address", "reach there", "where are you",
}

// Detector decides whether a message asks to reserve a workspace.
type Detector struct{}

// NewDetector creates a booking detector.
func NewDetector() *Detector {
	return &Detector{}
}

// IsBookingRequest reports whether the message should enter the booking
// flow. Address questions are vetoed outright, strong phrases match alone,
// and weak keywords need at least two hits.
func (d *Detector) IsBookingRequest(message string) bool {
	lower := strings.ToLower(message)

	for _, kw := range addressKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}

	for _, phrase := range bookingPhrases {
		if !strings.Contains(lower, phrase) {
			continue
		}
		// "how do i book" with no concrete service is a process question,
		// not a reservation.
		if strings.Contains(lower, "how do i") {
			if _, ok := facts.LookupService(lower); !ok {
				continue
			}
		}
		return true
	}

	count := 0
	for _, kw := range bookingKeywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count > 1
}
