package chat

import (
	"regexp"
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
)

// proximityWindow bounds how far (in characters) a forbidden phrase may sit
// from its topic mention and still trigger a sentence rewrite. Keeps an
// unrelated sentence later in the reply from being replaced.
const proximityWindow = 100

var sentenceSplit = regexp.MustCompile(`[^.!?]*[.!?]+|[^.!?]+$`)

// Rewriter enforces fact consistency on generated text. Prompt engineering
// alone cannot stop a model from repeating stale claims, so this pass is the
// actual guarantee that, for example, an open branch is never described as
// "opening soon".
//
// Two tiers: a window-scoped sentence replacement per fact correction, then
// a literal substitution table as a cheaper fallback. Rewrite is idempotent;
// no rewrite introduces a new forbidden pattern.
type Rewriter struct {
	corrections   []facts.Correction
	substitutions [][2]string
}

// NewRewriter builds a rewriter over the canonical fact tables.
func NewRewriter() *Rewriter {
	return &Rewriter{
		corrections:   facts.Corrections(),
		substitutions: facts.Substitutions,
	}
}

// Rewrite scans text for fact violations and returns the corrected version.
func (r *Rewriter) Rewrite(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	for _, c := range r.corrections {
		text = r.applyCorrection(text, c)
	}

	for _, sub := range r.substitutions {
		text = strings.ReplaceAll(text, sub[0], sub[1])
	}

	return text
}

func (r *Rewriter) applyCorrection(text string, c facts.Correction) string {
	lower := strings.ToLower(text)
	topicIdx := strings.Index(lower, c.Topic)
	if topicIdx < 0 {
		return text
	}

	triggered := false
	for _, phrase := range c.Forbidden {
		phraseIdx := strings.Index(lower, phrase)
		if phraseIdx >= 0 && abs(phraseIdx-topicIdx) < proximityWindow {
			triggered = true
			break
		}
	}
	if !triggered {
		return text
	}

	sentences := sentenceSplit.FindAllString(text, -1)
	for i, sentence := range sentences {
		sentLower := strings.ToLower(sentence)
		if !strings.Contains(sentLower, c.Topic) {
			continue
		}
		if containsAny(sentLower, c.Forbidden) {
			sentences[i] = leadingSpace(sentence) + c.Canonical
		}
	}
	return strings.Join(sentences, "")
}

// leadingSpace preserves the whitespace that separated the replaced sentence
// from the previous one.
func leadingSpace(sentence string) string {
	trimmed := strings.TrimLeft(sentence, " \n\t")
	return sentence[:len(sentence)-len(trimmed)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
