package booking

import (
	"regexp"
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	namePattern  = regexp.MustCompile(`(?i)my name is\s+((?:[A-Za-z]+\s?){1,3})`)

	// Words that end a name capture in running text ("my name is Ravi and
	// my number is ...").
	nameStopWords = map[string]bool{
		"and": true, "my": true, "i": true, "the": true,
		"phone": true, "number": true, "email": true, "from": true,
	}

	seatsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s+(?:seat|seats)`),
		regexp.MustCompile(`for\s+(\d+)\s+people`),
		regexp.MustCompile(`(\d+)\s+person`),
		regexp.MustCompile(`group\s+of\s+(\d+)`),
	}
)

// Fields holds whatever booking details could be pulled from one message.
// Empty strings mean the detail was not present.
type Fields struct {
	Name     string
	Email    string
	Phone    string
	Service  string
	Location string
	Seats    string
}

// Extract pulls contact and booking details out of a free-form message.
// Seats defaults to "1" when nothing indicates a group size.
func Extract(message string) Fields {
	lower := strings.ToLower(message)
	f := Fields{Seats: "1"}

	if m := namePattern.FindStringSubmatch(message); m != nil {
		f.Name = cleanName(m[1])
	}
	if m := emailPattern.FindString(message); m != "" {
		f.Email = m
	}
	if m := phonePattern.FindString(message); m != "" {
		f.Phone = strings.TrimSpace(m)
	}
	if svc, ok := facts.LookupService(lower); ok {
		f.Service = svc.Name
	}
	if branch, ok := facts.LookupBranch(lower); ok {
		f.Location = branch.Name
	}
	for _, p := range seatsPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			f.Seats = m[1]
			break
		}
	}
	return f
}

func cleanName(raw string) string {
	var kept []string
	for _, w := range strings.Fields(raw) {
		if nameStopWords[strings.ToLower(w)] {
			break
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
