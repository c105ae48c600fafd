// Package classifier tags sentences with writing-issue categories. It
// evaluates a fixed, ordered rule table against each sentence's
// feature vector; a sentence carries every tag whose rule matches.
// Rules live in the table so each can be tested in isolation and new
// ones slot in without touching branching logic.
package classifier

import (
	"fmt"
	"math"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
)

// Rule pairs an issue tag with the predicate that detects it.
type Rule struct {
	Tag     domain.IssueTag
	Matches func(sent, doc domain.FeatureVector) bool
}

// Classifier applies the rule table to sentences.
type Classifier struct {
	rules []Rule
}

// New builds a Classifier from settings. Rule order is fixed and
// determines tag order in verdicts.
func New(settings domain.EngineSettings) *Classifier {
	tolerance := float64(settings.UniformTolerance)
	minSentences := float64(settings.MinSentences)

	return &Classifier{rules: []Rule{
		{
			Tag: domain.TagFormalTransition,
			Matches: func(sent, _ domain.FeatureVector) bool {
				return sent.Bool(domain.FeatHasTransition)
			},
		},
		{
			Tag: domain.TagFillerPhrase,
			Matches: func(sent, _ domain.FeatureVector) bool {
				return sent.Bool(domain.FeatHasFiller)
			},
		},
		{
			Tag: domain.TagPassiveVoice,
			Matches: func(sent, _ domain.FeatureVector) bool {
				return sent.Bool(domain.FeatIsPassive)
			},
		},
		{
			// Only meaningful once the document has enough sentences
			// for a mean; a two-sentence note is trivially "uniform".
			Tag: domain.TagUniformLength,
			Matches: func(sent, doc domain.FeatureVector) bool {
				if doc[domain.FeatSentenceCount] < minSentences {
					return false
				}
				diff := math.Abs(sent[domain.FeatLengthTokens] - doc[domain.FeatMeanSentenceLen])
				return diff <= tolerance
			},
		},
		{
			Tag: domain.TagPronounAbsent,
			Matches: func(sent, _ domain.FeatureVector) bool {
				return !sent.Bool(domain.FeatHasPronoun)
			},
		},
		{
			Tag: domain.TagNoContractions,
			Matches: func(sent, _ domain.FeatureVector) bool {
				return !sent.Bool(domain.FeatHasContraction) &&
					sent.Bool(domain.FeatHasExpandable)
			},
		},
		{
			Tag: domain.TagLowConversationalTone,
			Matches: func(sent, _ domain.FeatureVector) bool {
				return !sent.Bool(domain.FeatIsQuestion) &&
					!sent.Bool(domain.FeatHasAddress) &&
					!sent.Bool(domain.FeatHasConversational) &&
					!sent.Bool(domain.FeatHasContraction)
			},
		},
	}}
}

// Classify evaluates every rule against the sentence and returns the
// verdict. Tags appear in rule order; severity is the tag count.
func (c *Classifier) Classify(sentence domain.Sentence, sent, doc domain.FeatureVector) domain.SentenceVerdict {
	verdict := domain.SentenceVerdict{
		Index: sentence.Index,
		Span:  sentence.Span,
		Tags:  []domain.IssueTag{},
		Fixes: []domain.Fix{},
	}
	for _, rule := range c.rules {
		if rule.Matches(sent, doc) {
			verdict.Tags = append(verdict.Tags, rule.Tag)
			verdict.Fixes = append(verdict.Fixes, FixFor(rule.Tag, sentence))
		}
	}
	verdict.Severity = len(verdict.Tags)
	return verdict
}

// ClassifyAll classifies all sentences against a shared document
// vector. The result is parallel to sentences.
func (c *Classifier) ClassifyAll(sentences []domain.Sentence, perSentence []domain.FeatureVector, doc domain.FeatureVector) []domain.SentenceVerdict {
	verdicts := make([]domain.SentenceVerdict, len(sentences))
	for i, s := range sentences {
		verdicts[i] = c.Classify(s, perSentence[i], doc)
	}
	return verdicts
}

// FixFor returns the canonical fix for a tag, parameterized with the
// offending sentence's position.
func FixFor(tag domain.IssueTag, sentence domain.Sentence) domain.Fix {
	at := fmt.Sprintf("sentence %d (bytes %d-%d)",
		sentence.Index+1, sentence.Span.Start, sentence.Span.End)
	switch tag {
	case domain.TagFormalTransition:
		return domain.Fix{
			Description: "Replace the formal transition in " + at + " with a plainer connector, or drop it.",
			Rationale:   "Stacked academic transitions read as generated text; most sentences connect fine without one.",
		}
	case domain.TagFillerPhrase:
		return domain.Fix{
			Description: "Cut the filler phrase in " + at + " and keep the claim itself.",
			Rationale:   "Filler adds words without meaning and buries the point.",
		}
	case domain.TagPassiveVoice:
		return domain.Fix{
			Description: "Rewrite " + at + " in active voice: name who does the action.",
			Rationale:   "Active constructions are shorter and easier to follow.",
		}
	case domain.TagUniformLength:
		return domain.Fix{
			Description: "Vary the length of " + at + ": split it, or merge it with a neighbor.",
			Rationale:   "Sentences of near-identical length create a mechanical rhythm.",
		}
	case domain.TagPronounAbsent:
		return domain.Fix{
			Description: "Add a personal perspective to " + at + " (\"I\", \"we\", \"my team\").",
			Rationale:   "First-person grounding signals a human author with a stake in the text.",
		}
	case domain.TagNoContractions:
		return domain.Fix{
			Description: "Contract the expanded form in " + at + " (\"do not\" to \"don't\").",
			Rationale:   "Natural prose uses contractions; fully expanded forms read as stiff.",
		}
	case domain.TagLowConversationalTone:
		return domain.Fix{
			Description: "Loosen " + at + ": address the reader, ask a question, or use an informal aside.",
			Rationale:   "Text with no conversational register keeps the reader at arm's length.",
		}
	default:
		return domain.Fix{
			Description: "Review " + at + ".",
			Rationale:   "Flagged by an unrecognized rule.",
		}
	}
}
