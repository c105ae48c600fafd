// Package suggest turns sentence verdicts into rewrite suggestions and
// a ranked list of writing exercises. Everything here is
// template-driven: the same verdicts always produce the same output.
package suggest

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
)

// transitionAlternatives maps a formal transition to plainer
// replacements. The first entry is always the one used, so rewrites
// stay deterministic.
var transitionAlternatives = map[string][]string{
	"furthermore":   {"also", "plus", "on top of that"},
	"moreover":      {"besides", "what's more"},
	"additionally":  {"also", "and"},
	"consequently":  {"so", "as a result"},
	"nevertheless":  {"still", "even so"},
	"subsequently":  {"later", "after that"},
	"accordingly":   {"so"},
	"hence":         {"so"},
	"thus":          {"so"},
	"therefore":     {"so", "that's why"},
	"likewise":      {"in the same way"},
	"similarly":     {"in the same way"},
	"however":       {"but", "though"},
	"in conclusion": {"finally", "to wrap up"},
	"in summary":    {"in short"},
}

// fillerReplacements maps filler phrases to their tightened forms. An
// empty replacement deletes the phrase outright.
var fillerReplacements = map[string]string{
	"it is important to note": "note that",
	"it is worth mentioning":  "notably",
	"in this context":         "",
	"in other words":          "put differently",
	"to put it simply":        "simply",
	"as mentioned earlier":    "",
	"as previously stated":    "",
	"it goes without saying":  "",
	"needless to say":         "",
	"for the most part":       "mostly",
	"in today's society":      "today",
	"due to the fact that":    "because",
	"at this point in time":   "now",
	"in order to":             "to",
}

// contractions maps expanded forms to their contracted spelling.
var contractions = map[string]string{
	"do not":     "don't",
	"does not":   "doesn't",
	"did not":    "didn't",
	"is not":     "isn't",
	"are not":    "aren't",
	"was not":    "wasn't",
	"were not":   "weren't",
	"will not":   "won't",
	"would not":  "wouldn't",
	"should not": "shouldn't",
	"could not":  "couldn't",
	"cannot":     "can't",
	"have not":   "haven't",
	"has not":    "hasn't",
	"had not":    "hadn't",
	"it is":      "it's",
	"that is":    "that's",
	"there is":   "there's",
	"i am":       "I'm",
	"you are":    "you're",
	"we are":     "we're",
	"they are":   "they're",
}

// exercise is one catalog entry together with the tags it addresses.
type exercise struct {
	name       string
	difficulty domain.Difficulty
	rationale  string
	addresses  []domain.IssueTag
}

// catalog is the fixed exercise list, in presentation order.
var catalog = []exercise{
	{
		name:       "Add Your Personal Voice",
		difficulty: domain.DifficultyEasy,
		rationale:  "Rewrite flagged sentences in first person, adding your own opinion or experience.",
		addresses:  []domain.IssueTag{domain.TagPronounAbsent, domain.TagLowConversationalTone},
	},
	{
		name:       "Create Rhythm with Variety",
		difficulty: domain.DifficultyMedium,
		rationale:  "Mix short punchy sentences with longer flowing ones to break the uniform rhythm.",
		addresses:  []domain.IssueTag{domain.TagUniformLength},
	},
	{
		name:       "Cut the Fluff",
		difficulty: domain.DifficultyEasy,
		rationale:  "Delete filler phrases and heavy transitions, keeping only words that carry meaning.",
		addresses:  []domain.IssueTag{domain.TagFillerPhrase, domain.TagFormalTransition},
	},
	{
		name:       "Make It Active",
		difficulty: domain.DifficultyMedium,
		rationale:  "Rewrite passive constructions so the actor leads the sentence.",
		addresses:  []domain.IssueTag{domain.TagPassiveVoice},
	},
	{
		name:       "Engage with Questions",
		difficulty: domain.DifficultyEasy,
		rationale:  "Turn one flat statement into a question that pulls the reader in.",
		addresses:  []domain.IssueTag{domain.TagLowConversationalTone, domain.TagNoContractions},
	},
	{
		name:       "Show Both Sides",
		difficulty: domain.DifficultyHard,
		rationale:  "Replace a chain of formal transitions with a genuine argument and counter-argument.",
		addresses:  []domain.IssueTag{domain.TagFormalTransition},
	},
}

// Generator produces rewrites and exercises from verdicts.
type Generator struct {
	settings domain.EngineSettings
}

// New builds a Generator with the given settings.
func New(settings domain.EngineSettings) *Generator {
	return &Generator{settings: settings}
}

// Rewrites generates at most MaxRewrites suggestions, in sentence
// order. A sentence gets one rewrite, driven by its first tag that has
// a mechanical transformation.
func (g *Generator) Rewrites(sentences []domain.Sentence, verdicts []domain.SentenceVerdict) []domain.RewriteSuggestion {
	var out []domain.RewriteSuggestion
	for i, v := range verdicts {
		if g.settings.MaxRewrites > 0 && len(out) >= g.settings.MaxRewrites {
			break
		}
		if len(v.Tags) == 0 || i >= len(sentences) {
			continue
		}
		original := sentences[i].Text
		rewritten, rationale := rewriteFor(original, v.Tags)
		if rewritten == "" || rewritten == original {
			continue
		}
		out = append(out, domain.RewriteSuggestion{
			Index:     v.Index,
			Original:  original,
			Rewritten: rewritten,
			Rationale: rationale,
		})
	}
	return out
}

// rewriteFor applies the first applicable transformation for the tag
// list and returns the result with its rationale.
func rewriteFor(text string, tags []domain.IssueTag) (string, string) {
	for _, tag := range tags {
		switch tag {
		case domain.TagFormalTransition:
			if rewritten, ok := swapTransition(text); ok {
				return rewritten, "Swapped the formal transition for an everyday connector."
			}
		case domain.TagFillerPhrase:
			if rewritten, ok := trimFiller(text); ok {
				return rewritten, "Removed filler so the sentence leads with its point."
			}
		case domain.TagNoContractions:
			if rewritten, ok := applyContractions(text); ok {
				return rewritten, "Contracted expanded forms for a natural register."
			}
		}
	}
	return "", ""
}

func swapTransition(text string) (string, bool) {
	for _, phrase := range orderedKeys(transitionAlternatives) {
		if replaced, ok := replacePhrase(text, phrase, transitionAlternatives[phrase][0]); ok {
			return replaced, true
		}
	}
	return "", false
}

func trimFiller(text string) (string, bool) {
	for _, phrase := range orderedKeys(fillerReplacements) {
		if replaced, ok := replacePhrase(text, phrase, fillerReplacements[phrase]); ok {
			return replaced, true
		}
	}
	return "", false
}

func applyContractions(text string) (string, bool) {
	changed := false
	out := text
	for _, phrase := range orderedKeys(contractions) {
		if replaced, ok := replacePhrase(out, phrase, contractions[phrase]); ok {
			out = replaced
			changed = true
		}
	}
	return out, changed
}

// orderedKeys returns map keys sorted so iteration is deterministic.
func orderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// replacePhrase replaces the first case-insensitive, word-bounded
// occurrence of phrase and tidies the result. Capitalization follows
// the replaced text.
func replacePhrase(text, phrase, replacement string) (string, bool) {
	lower := strings.ToLower(text)
	// Lowercasing can change byte length for some Unicode letters
	// (U+0130 shrinks), which would misalign indexes into text.
	if len(lower) != len(text) {
		return "", false
	}
	from := 0
	for {
		idx := strings.Index(lower[from:], phrase)
		if idx < 0 {
			return "", false
		}
		idx += from
		if wordBounded(lower, idx, len(phrase)) {
			matched := text[idx : idx+len(phrase)]
			repl := replacement
			if repl != "" && startsUpper(matched) {
				repl = capitalize(repl)
			}
			return tidy(text[:idx] + repl + text[idx+len(phrase):]), true
		}
		from = idx + 1
	}
}

func wordBounded(lower string, idx, length int) bool {
	if idx > 0 {
		r, _ := utf8.DecodeLastRuneInString(lower[:idx])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if idx+length < len(lower) {
		r, _ := utf8.DecodeRuneInString(lower[idx+length:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// tidy cleans up artifacts left by phrase deletion: doubled spaces,
// leading commas, and a lowercased first word.
func tidy(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimPrefix(s, ", ")
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.ReplaceAll(s, " .", ".")
	return capitalize(s)
}

// Exercises ranks catalog exercises by how many distinct flagged
// sentences each would address; ties go to the easier exercise, then
// to catalog order. Exercises addressing nothing are omitted.
func (g *Generator) Exercises(verdicts []domain.SentenceVerdict) []domain.ExerciseRecommendation {
	type ranked struct {
		ex       exercise
		count    int
		position int
	}
	var scored []ranked
	for pos, ex := range catalog {
		count := 0
		for _, v := range verdicts {
			if addressesAny(ex, v.Tags) {
				count++
			}
		}
		if count > 0 {
			scored = append(scored, ranked{ex: ex, count: count, position: pos})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].count != scored[j].count {
			return scored[i].count > scored[j].count
		}
		if scored[i].ex.difficulty.Rank() != scored[j].ex.difficulty.Rank() {
			return scored[i].ex.difficulty.Rank() < scored[j].ex.difficulty.Rank()
		}
		return scored[i].position < scored[j].position
	})

	out := make([]domain.ExerciseRecommendation, len(scored))
	for i, r := range scored {
		out[i] = domain.ExerciseRecommendation{
			Name:               r.ex.name,
			Difficulty:         r.ex.difficulty,
			Rationale:          fmt.Sprintf("%s Addresses %d flagged %s.", r.ex.rationale, r.count, plural(r.count, "sentence")),
			SentencesAddressed: r.count,
		}
	}
	return out
}

func addressesAny(ex exercise, tags []domain.IssueTag) bool {
	for _, tag := range tags {
		for _, addressed := range ex.addresses {
			if tag == addressed {
				return true
			}
		}
	}
	return false
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
