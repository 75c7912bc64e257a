package facts

// Correction is a business fact the model must never contradict. When
// generated text mentions Topic and one of the Forbidden phrases nearby, the
// offending sentence is replaced with Canonical. Canonical statements are
// always present tense: a branch that has opened is "now open", never
// "opening soon".
type Correction struct {
	Topic     string
	Canonical string
	Forbidden []string
}

var corrections = []Correction{
	{
		Topic:     "hebbal",
		Canonical: "Our Hebbal branch is now open in North Bangalore.",
		Forbidden: []string{
			"opening soon", "will be opening", "upcoming", "not yet open",
			"isn't open yet", "is not open yet", "coming soon", "launching soon",
			"will open", "about to open", "planned", "in the works", "preparing to open",
		},
	},
	{
		Topic:     "btm",
		Canonical: "Anthill IQ has no presence in BTM Layout; our locations are Cunningham Road, Hulimavu, Arekere, and Hebbal.",
		Forbidden: []string{
			"btm layout branch", "branch in btm", "located in btm", "btm location",
		},
	},
}

// Corrections returns the fact-correction table.
func Corrections() []Correction {
	out := make([]Correction, len(corrections))
	copy(out, corrections)
	return out
}

// Substitutions is the literal find/replace fallback pass applied to
// generated text after sentence-level corrections. Ordered; earlier pairs
// run first.
var Substitutions = [][2]string{
	{"our newest branch opening soon in Hebbal", "our newest branch in Hebbal"},
	{"Hebbal (opening soon)", "Hebbal"},
	{"Hebbal branch (opening soon)", "Hebbal branch"},
	{"upcoming branch in Hebbal", "branch in Hebbal"},
	{"upcoming Hebbal branch", "Hebbal branch"},
	{"opening soon in Hebbal", "now open in Hebbal"},
	{"Hebbal branch is opening soon", "Hebbal branch is now open"},
	{"Hebbal branch will be opening soon", "Hebbal branch is now open"},
	{"soon-to-open Hebbal", "now open Hebbal"},
	{"planning to open in Hebbal", "now open in Hebbal"},
	{"new branch in Hebbal", "branch in Hebbal"},
	{"upcoming location in Hebbal", "location in Hebbal"},
	{"Hebbal location will soon be", "Hebbal location is now"},
	{"new Hebbal branch", "Hebbal branch"},
	{"Hebbal branch is not yet open", "Hebbal branch is now open"},
	{"Hebbal branch isn't open yet", "Hebbal branch is now open"},
	{"Hebbal branch is coming soon", "Hebbal branch is now open"},
	{"fourth branch in Hebbal", "branch in Hebbal"},
	{"4th branch in Hebbal", "branch in Hebbal"},
	{"Hebbal, which is not yet open", "Hebbal, which is now open"},
	{"Hebbal which is not yet open", "Hebbal which is now open"},
	{"planning to launch in Hebbal", "now operating in Hebbal"},
}
