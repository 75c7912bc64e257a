package facts

import "strings"

// Service is one workspace offering.
type Service struct {
	Name    string
	Aliases []string
	Details string
}

var allLocationsLine = "Available at all our locations (Cunningham Road, Hulimavu, Arekere, and Hebbal).\n\nFor pricing and availability, please contact us at " + Phone + "."

var services = []Service{
	{
		Name:    "Private Office",
		Aliases: []string{"private office", "office space"},
		Details: "Our Private Office Spaces at Anthill IQ provide:\n\n" +
			"• Fully furnished private offices for teams\n" +
			"• 24/7 access\n" +
			"• High-speed internet\n" +
			"• Meeting room credits\n" +
			"• Office maintenance and cleaning\n" +
			"• Flexible lease terms\n\n" + allLocationsLine,
	},
	{
		Name:    "Coworking Space",
		Aliases: []string{"coworking", "co-working", "shared workspace"},
		Details: "Our Coworking Spaces at Anthill IQ provide:\n\n" +
			"• Flexible hot desks in a collaborative environment\n" +
			"• High-speed internet\n" +
			"• Tea and coffee facilities\n" +
			"• Community networking events\n" +
			"• Day pass and monthly membership options\n\n" + allLocationsLine,
	},
	{
		Name:    "Dedicated Desk",
		Aliases: []string{"dedicated desk", "fixed desk"},
		Details: "Our Dedicated Desk service at Anthill IQ provides:\n\n" +
			"• Your own permanent desk in a shared environment\n" +
			"• 24/7 access with lockable storage\n" +
			"• Meeting room credits\n" +
			"• Business address services\n\n" + allLocationsLine,
	},
	{
		Name:    "Meeting Room",
		Aliases: []string{"meeting room", "conference room"},
		Details: "Our Meeting Rooms at Anthill IQ provide:\n\n" +
			"• Professional, fully equipped spaces for client meetings\n" +
			"• Various sizes (4-seater to 10-seater options)\n" +
			"• HD video conferencing equipment\n" +
			"• Hourly and daily booking options\n\n" + allLocationsLine,
	},
	{
		Name:    "Event Space",
		Aliases: []string{"event space", "event venue"},
		Details: "Our Event Spaces at Anthill IQ provide:\n\n" +
			"• Versatile venues for corporate events, workshops, and networking sessions\n" +
			"• Flexible seating arrangements\n" +
			"• Audio-visual equipment\n" +
			"• Evening and weekend availability\n\n" + allLocationsLine,
	},
	{
		Name:    "Training Room",
		Aliases: []string{"training room", "workshop space"},
		Details: "Our Training Rooms at Anthill IQ provide:\n\n" +
			"• Specially designed spaces for workshops and training sessions\n" +
			"• Classroom-style or U-shaped seating options\n" +
			"• Projectors, screens and whiteboards\n" +
			"• Half-day and full-day booking options\n\n" + allLocationsLine,
	},
}

// Services returns the full service catalogue.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// LookupService matches a specific service mentioned in the message.
func LookupService(message string) (Service, bool) {
	lower := strings.ToLower(message)
	for _, s := range services {
		for _, alias := range s.Aliases {
			if strings.Contains(lower, alias) {
				return s, true
			}
		}
	}
	return Service{}, false
}

// ServiceMenu renders the general service listing.
func ServiceMenu() string {
	var sb strings.Builder
	sb.WriteString("Here are the services offered by Anthill IQ:\n\n")
	sb.WriteString("1. Private Office Space — dedicated private offices for teams with 24/7 access\n")
	sb.WriteString("2. Coworking Space — flexible shared workspace with day pass and membership options\n")
	sb.WriteString("3. Dedicated Desk — reserved desk with lockable storage and business address services\n")
	sb.WriteString("4. Meeting Rooms — professional spaces from 4-seater to 10-seater, bookable hourly\n")
	sb.WriteString("5. Event Spaces — versatile venues for corporate events and workshops\n")
	sb.WriteString("6. Training Rooms — equipped spaces for workshops and training sessions\n\n")
	sb.WriteString("All our locations (Cunningham Road, Hulimavu, Arekere, and Hebbal) offer these services.\n\n")
	sb.WriteString("For pricing information, please contact us at " + Phone + " or email " + Email + ".")
	return sb.String()
}

// Competitors are other coworking brands the assistant does not discuss.
var Competitors = []string{
	"wework", "bhive", "91springboard", "awfis",
	"cowrks", "innov8", "indiqube", "smartworks",
}

// PricingReply is the policy-controlled answer to pricing questions. Prices
// are quoted by the sales team, never by the assistant.
const PricingReply = "Our pricing varies based on location, service type, and duration. Each of our branches (Cunningham Road, Hulimavu, Arekere, and Hebbal) offers customized packages designed to meet your specific needs. For current rates and offers, please contact us at " + Phone + " or email " + Email + ". Would you like to schedule a visit to discuss options for a specific location?"
