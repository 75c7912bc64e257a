package chat

// Intent labels the category a classifier assigned to a message.
type Intent string

const (
	IntentNone        Intent = ""
	IntentIdentity    Intent = "identity"
	IntentOffTopic    Intent = "off_topic"
	IntentBooking     Intent = "booking"
	IntentSocialMedia Intent = "social_media"
	IntentLocation    Intent = "location"
	IntentService     Intent = "service"
	IntentPricing     Intent = "pricing"
)

// Location sub-kinds.
const (
	LocationKindBranch     = "branch"
	LocationKindAddress    = "address"
	LocationKindGeneral    = "general"
	LocationKindCorrection = "correction"
	LocationKindContact    = "contact"
)

// Service sub-kinds.
const (
	ServiceKindGeneral  = "general"
	ServiceKindSpecific = "specific"
)

// IntentResult is the outcome of running one classifier over a message.
type IntentResult struct {
	Intent     Intent
	Kind       string
	Response   string
	Confidence float64
}

// Matched reports whether the classifier claimed the message.
func (r IntentResult) Matched() bool {
	return r.Intent != IntentNone
}

// Classifier is a pure predicate+extractor over a message. Classifiers never
// perform I/O; given the same input they always return the same result.
type Classifier struct {
	Name     string
	Classify func(message string) IntentResult
}

// DefaultClassifiers returns the classification pipeline in its documented
// priority order. Categories overlap, so order matters: identity and
// competitor deflection run first, pricing runs last before the model
// fallback so that "pricing for Hebbal" is answered with the pricing policy
// rather than the Hebbal address.
func DefaultClassifiers(booking BookingDetector) []Classifier {
	return []Classifier{
		{Name: "identity", Classify: classifyIdentity},
		{Name: "competitor", Classify: classifyCompetitor},
		{Name: "booking", Classify: bookingClassifier(booking)},
		{Name: "social_media", Classify: classifySocialMedia},
		{Name: "location", Classify: classifyLocation},
		{Name: "service", Classify: classifyService},
		{Name: "pricing", Classify: classifyPricing},
	}
}

// BookingDetector is the predicate half of the booking collaborator. The
// pipeline only needs the yes/no decision; field extraction and persistence
// happen behind the Router.
type BookingDetector interface {
	IsBookingRequest(message string) bool
}

func bookingClassifier(det BookingDetector) func(string) IntentResult {
	return func(message string) IntentResult {
		if det == nil || !det.IsBookingRequest(message) {
			return IntentResult{}
		}
		return IntentResult{Intent: IntentBooking, Confidence: 0.9}
	}
}
