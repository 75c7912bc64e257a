package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
)

type stubDetector struct{ result bool }

func (d stubDetector) IsBookingRequest(string) bool { return d.result }

func classify(t *testing.T, detector BookingDetector, message string) (string, IntentResult) {
	t.Helper()
	for _, c := range DefaultClassifiers(detector) {
		if result := c.Classify(message); result.Matched() {
			return c.Name, result
		}
	}
	return "", IntentResult{}
}

func TestPipelinePriorityOrder(t *testing.T) {
	tests := []struct {
		name           string
		message        string
		booking        bool
		wantClassifier string
		wantIntent     Intent
	}{
		{"identity", "who are you?", false, "identity", IntentIdentity},
		{"identity beats booking", "who are you?", true, "identity", IntentIdentity},
		{"competitor", "is wework better than you", false, "competitor", IntentOffTopic},
		{"booking", "I want to book a desk", true, "booking", IntentBooking},
		{"social media", "what's your instagram handle", false, "social_media", IntentSocialMedia},
		{"named branch", "Is your Hebbal branch open yet?", false, "location", IntentLocation},
		{"unknown branch", "do you have a branch in BTM Layout", false, "location", IntentLocation},
		{"address", "what is the full address of Arekere", false, "location", IntentLocation},
		{"service menu", "what services do you offer", false, "service", IntentService},
		{"specific service", "tell me about your meeting room", false, "service", IntentService},
		{"pricing", "how much does a day pass cost", false, "pricing", IntentPricing},
		{"pricing beats branch mention", "what is the price at Hebbal", false, "pricing", IntentPricing},
		{"no match", "do you allow pets", false, "", IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, result := classify(t, stubDetector{result: tt.booking}, tt.message)
			assert.Equal(t, tt.wantClassifier, name)
			assert.Equal(t, tt.wantIntent, result.Intent)
		})
	}
}

func TestClassifiersAreDeterministic(t *testing.T) {
	message := "what services do you offer"
	for _, c := range DefaultClassifiers(stubDetector{}) {
		first := c.Classify(message)
		second := c.Classify(message)
		assert.Equal(t, first, second, c.Name)
	}
}

func TestClassifyIdentity(t *testing.T) {
	result := classifyIdentity("What is Anthill IQ?")
	require.True(t, result.Matched())
	assert.Contains(t, result.Response, "Anthill IQ Assistant")

	assert.False(t, classifyIdentity("I need a desk").Matched())
}

func TestClassifyCompetitorDeflects(t *testing.T) {
	for _, brand := range facts.Competitors {
		result := classifyCompetitor("how do you compare to " + brand)
		require.True(t, result.Matched(), brand)
		assert.NotContains(t, strings.ToLower(result.Response), brand)
	}
}

func TestClassifySocialMediaKinds(t *testing.T) {
	handle := classifySocialMedia("what is your instagram handle")
	require.True(t, handle.Matched())
	assert.Equal(t, "handle", handle.Kind)
	assert.Contains(t, handle.Response, facts.Instagram)

	general := classifySocialMedia("are you on social media")
	require.True(t, general.Matched())
	assert.Equal(t, "general", general.Kind)

	// "ig" only matches as a standalone word.
	assert.False(t, classifySocialMedia("big offices available?").Matched())
}

func TestClassifyLocationKinds(t *testing.T) {
	branch := classifyLocation("tell me about Hebbal")
	require.True(t, branch.Matched())
	assert.Equal(t, LocationKindBranch, branch.Kind)
	assert.Contains(t, branch.Response, "now open")
	assert.Contains(t, branch.Response, "North Bangalore")

	denial := classifyLocation("is there an Anthill IQ in BTM layout?")
	require.True(t, denial.Matched())
	assert.Equal(t, LocationKindCorrection, denial.Kind)
	assert.Contains(t, denial.Response, "doesn't have a branch")

	address := classifyLocation("what's the office address?")
	require.True(t, address.Matched())
	assert.Equal(t, LocationKindAddress, address.Kind)
	assert.Contains(t, address.Response, "560052")

	// "where are you" is an address query, so it wins before the general
	// listing check.
	located := classifyLocation("where are you located?")
	require.True(t, located.Matched())
	assert.Equal(t, LocationKindAddress, located.Kind)

	general := classifyLocation("what branches do you have?")
	require.True(t, general.Matched())
	assert.Equal(t, LocationKindGeneral, general.Kind)
	assert.Contains(t, general.Response, "Cunningham Road")

	contact := classifyLocation("what's your phone number?")
	require.True(t, contact.Matched())
	assert.Equal(t, LocationKindContact, contact.Kind)
	assert.Contains(t, contact.Response, facts.Phone)

	assert.False(t, classifyLocation("I like coffee").Matched())
}

func TestClassifyLocationYieldsToPricing(t *testing.T) {
	assert.False(t, classifyLocation("what is the price at Hebbal").Matched())
	assert.False(t, classifyLocation("how much at your branches").Matched())
}

func TestClassifyServiceKinds(t *testing.T) {
	general := classifyService("what services do you offer?")
	require.True(t, general.Matched())
	assert.Equal(t, ServiceKindGeneral, general.Kind)

	specific := classifyService("do you have a dedicated desk option?")
	require.True(t, specific.Matched())
	assert.Equal(t, ServiceKindSpecific, specific.Kind)
	assert.Contains(t, specific.Response, "Dedicated Desk")

	assert.False(t, classifyService("hello").Matched())
}

func TestClassifyPricingNeverQuotesNumbers(t *testing.T) {
	result := classifyPricing("how much is a membership?")
	require.True(t, result.Matched())
	assert.NotContains(t, result.Response, "₹")
	assert.Contains(t, result.Response, facts.Phone)
}
