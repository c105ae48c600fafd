package domain

import "strings"

// Lexicon holds the fixed phrase lists the feature extractor and classifier
// evaluate against. It is explicit configuration injected at construction,
// not a global, so lists can be swapped per locale or domain.
type Lexicon struct {
	// Transitions are formal transition words and phrases.
	Transitions []string `toml:"transitions"`

	// Fillers are padding phrases that add words without meaning.
	Fillers []string `toml:"fillers"`

	// Hedges are qualifier words; two or more in a sentence count as
	// filler for density purposes.
	Hedges []string `toml:"hedges"`

	// PassiveAuxiliaries are the auxiliary verbs for the
	// passive-construction heuristic (auxiliary + past participle).
	PassiveAuxiliaries []string `toml:"passive_auxiliaries"`

	// PersonalPronouns are first-person pronoun tokens.
	PersonalPronouns []string `toml:"personal_pronouns"`

	// AddressPronouns are first/second-person address tokens.
	AddressPronouns []string `toml:"address_pronouns"`

	// Conversational are informal spoken-register markers.
	Conversational []string `toml:"conversational"`
}

// Validate checks that the lists required by the extractor are non-empty.
func (l Lexicon) Validate() error {
	if len(l.Transitions) == 0 || len(l.Fillers) == 0 ||
		len(l.PassiveAuxiliaries) == 0 || len(l.PersonalPronouns) == 0 {
		return ErrInvalidConfig
	}
	return nil
}

// TokenSet builds a lowercase lookup set from a word list.
func TokenSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return set
}

// DefaultLexicon returns the built-in English lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Transitions: []string{
			"furthermore", "moreover", "additionally", "consequently",
			"nevertheless", "subsequently", "accordingly", "hence",
			"thus", "therefore", "likewise", "similarly", "however",
			"in conclusion", "in summary",
		},
		Fillers: []string{
			"it is important to note",
			"it is worth mentioning",
			"in this context",
			"in other words",
			"to put it simply",
			"as mentioned earlier",
			"as previously stated",
			"it goes without saying",
			"needless to say",
			"for the most part",
			"in today's society",
			"due to the fact that",
			"at this point in time",
			"in order to",
		},
		Hedges: []string{
			"somewhat", "relatively", "generally", "typically",
			"usually", "often", "perhaps", "possibly", "likely",
			"essentially", "basically", "fundamentally",
		},
		PassiveAuxiliaries: []string{
			"is", "are", "was", "were", "been", "being", "be",
		},
		PersonalPronouns: []string{
			"i", "me", "my", "mine", "we", "us", "our", "ours",
			"i'm", "i've", "i'll", "i'd",
		},
		AddressPronouns: []string{
			"i", "me", "my", "we", "us", "our",
			"you", "your", "yours", "you're", "you've",
		},
		Conversational: []string{
			"actually", "honestly", "frankly", "look", "well", "anyway",
		},
	}
}
