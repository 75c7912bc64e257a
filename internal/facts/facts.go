// Package facts holds the canonical Anthill IQ business facts: branches,
// contact channels, services, and the correction rules applied to generated
// text. Everything here is immutable after init and safe for concurrent reads.
package facts

import (
	"fmt"
	"strings"
)

// Contact channels.
const (
	Phone     = "9119739119"
	Email     = "connect@anthilliq.com"
	Website   = "www.anthilliq.com"
	Instagram = "@anthill_iq"
)

// Branch is one Anthill IQ location.
type Branch struct {
	Name    string
	Region  string
	Address string
}

var branches = []Branch{
	{
		Name:    "Cunningham Road",
		Region:  "Central Bangalore",
		Address: "1st Floor, Anthill IQ, 20, Cunningham Rd, Vasanth Nagar, Bengaluru, Karnataka 560052",
	},
	{
		Name:    "Hulimavu",
		Region:  "South Bangalore",
		Address: "75/B Windsor F4, Bannerghatta Rd, opp. Christ University, Hulimavu, Bengaluru, Karnataka 560076",
	},
	{
		Name:    "Arekere",
		Region:  "South Bangalore",
		Address: "224, Bannerghatta Rd, near Arekere Gate, Arekere, Bengaluru, Karnataka 560076",
	},
	{
		Name:    "Hebbal",
		Region:  "North Bangalore",
		Address: "AnthillIQ Workspaces, 44/2A, Kodigehalli gate, Sahakarnagar post, Hebbal, Bengaluru, Karnataka 560092",
	},
}

// nonBranches are areas users ask about where Anthill IQ has no presence.
// Mentions must be answered with an explicit denial, never silence.
var nonBranches = []string{"btm layout", "btm"}

// Branches returns all operational locations.
func Branches() []Branch {
	out := make([]Branch, len(branches))
	copy(out, branches)
	return out
}

// LookupBranch finds a branch mentioned anywhere in the message, matching on
// the first word of the branch name ("cunningham" matches "Cunningham Road").
func LookupBranch(message string) (Branch, bool) {
	lower := strings.ToLower(message)
	for _, b := range branches {
		key := strings.ToLower(strings.Fields(b.Name)[0])
		if strings.Contains(lower, key) {
			return b, true
		}
	}
	return Branch{}, false
}

// MentionsUnknownBranch reports whether the message refers to an area where
// no branch exists.
func MentionsUnknownBranch(message string) bool {
	lower := strings.ToLower(message)
	for _, area := range nonBranches {
		if strings.Contains(lower, area) {
			return true
		}
	}
	return false
}

// BranchList renders the name+region listing used in general location replies.
func BranchList() string {
	var sb strings.Builder
	sb.WriteString("Anthill IQ has four locations in Bangalore:\n")
	for i, b := range branches {
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, b.Name, b.Region)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// BranchListDetailed renders names with full street addresses.
func BranchListDetailed() string {
	var sb strings.Builder
	sb.WriteString("Here are our locations in Bangalore:\n")
	for i, b := range branches {
		fmt.Fprintf(&sb, "%d. %s\n   %s\n", i+1, b.Name, b.Address)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ContactBlock renders the standard contact reply.
func ContactBlock() string {
	return "You can reach Anthill IQ through the following contact information:\n\n" +
		"• Phone: " + Phone + "\n" +
		"• Email: " + Email + "\n" +
		"• Website: " + Website + "\n\n" +
		"Our team is ready to assist you with any inquiries about our workspace solutions at our locations in Bangalore: Cunningham Road, Hulimavu, Arekere, and Hebbal."
}
