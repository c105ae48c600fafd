package domain

// IssueTag identifies one writing issue category a sentence can carry.
// The vocabulary is fixed; classifier rules map onto it one-to-one.
type IssueTag string

// Available issue tags, in classifier rule order.
const (
	// TagFormalTransition marks formal transition-phrase use.
	TagFormalTransition IssueTag = "formal_transition"

	// TagFillerPhrase marks padding phrases that add no meaning.
	TagFillerPhrase IssueTag = "filler_phrase"

	// TagPassiveVoice marks the passive-construction heuristic.
	TagPassiveVoice IssueTag = "passive_voice"

	// TagUniformLength marks sentences within tolerance of the document
	// mean length.
	TagUniformLength IssueTag = "uniform_length"

	// TagPronounAbsent marks sentences with no personal pronouns.
	TagPronounAbsent IssueTag = "personal_pronoun_absent"

	// TagNoContractions marks sentences with no contractions.
	TagNoContractions IssueTag = "no_contractions"

	// TagLowConversationalTone marks sentences with no question, no
	// direct address, and no informal markers.
	TagLowConversationalTone IssueTag = "low_conversational_tone"
)

// AllIssueTags returns the fixed tag vocabulary in rule order.
func AllIssueTags() []IssueTag {
	return []IssueTag{
		TagFormalTransition,
		TagFillerPhrase,
		TagPassiveVoice,
		TagUniformLength,
		TagPronounAbsent,
		TagNoContractions,
		TagLowConversationalTone,
	}
}

// IsValid returns true if the tag is part of the fixed vocabulary.
func (t IssueTag) IsValid() bool {
	switch t {
	case TagFormalTransition, TagFillerPhrase, TagPassiveVoice,
		TagUniformLength, TagPronounAbsent, TagNoContractions,
		TagLowConversationalTone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t IssueTag) String() string {
	return string(t)
}

// Difficulty orders exercises from easiest to hardest.
type Difficulty string

// Available difficulties.
const (
	// DifficultyEasy is a quick, low-effort exercise.
	DifficultyEasy Difficulty = "Easy"

	// DifficultyMedium takes some rewriting.
	DifficultyMedium Difficulty = "Medium"

	// DifficultyHard requires restructuring an argument.
	DifficultyHard Difficulty = "Hard"
)

// Rank returns the sort position: Easy before Medium before Hard.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}

// IsValid returns true if the difficulty is recognised.
func (d Difficulty) IsValid() bool {
	return d.Rank() < 3
}

// String returns the string representation.
func (d Difficulty) String() string {
	return string(d)
}
