package domain

// FeatureVector maps a named statistic to its value. Extractors guarantee
// every value is finite and that ratio-valued features stay within [0,1].
type FeatureVector map[string]float64

// Document-level feature keys.
const (
	// FeatTTR is the type-token ratio (unique tokens / total tokens).
	FeatTTR = "ttr"

	// FeatTransitionDensity is the fraction of sentences that start with
	// or contain a formal transition phrase.
	FeatTransitionDensity = "transition_density"

	// FeatFillerDensity is the fraction of sentences containing a filler
	// or hedge phrase.
	FeatFillerDensity = "filler_density"

	// FeatPassiveRate is the fraction of sentences matching the
	// passive-construction heuristic.
	FeatPassiveRate = "passive_rate"

	// FeatSentenceCount is the number of sentences in the document.
	FeatSentenceCount = "sentence_count"

	// FeatTokenTotal is the number of tokens in the document.
	FeatTokenTotal = "token_total"

	// FeatMeanSentenceLen is the mean sentence length in tokens.
	FeatMeanSentenceLen = "mean_sentence_len"
)

// Sentence-level feature keys. Boolean features use 1 for present, 0 for
// absent so a single numeric vector covers everything.
const (
	// FeatLengthTokens is the sentence length in tokens.
	FeatLengthTokens = "length_tokens"

	// FeatAvgWordLen is the mean word length in runes.
	FeatAvgWordLen = "avg_word_len"

	// FeatHasPronoun marks first-person pronoun presence.
	FeatHasPronoun = "has_pronoun"

	// FeatHasContraction marks contraction presence.
	FeatHasContraction = "has_contraction"

	// FeatIsQuestion marks a sentence ending in a question mark.
	FeatIsQuestion = "is_question"

	// FeatHasAddress marks first/second-person address ("I", "we", "you").
	FeatHasAddress = "has_address"

	// FeatStartsTransition marks a sentence opening with a transition phrase.
	FeatStartsTransition = "starts_transition"

	// FeatHasTransition marks transition-phrase presence anywhere.
	FeatHasTransition = "has_transition"

	// FeatHasFiller marks filler-phrase presence.
	FeatHasFiller = "has_filler"

	// FeatIsPassive marks the passive-construction heuristic.
	FeatIsPassive = "is_passive"

	// FeatHasConversational marks informal conversational markers
	// ("actually", "honestly", "look,").
	FeatHasConversational = "has_conversational"

	// FeatFillerCount is the number of filler phrases found.
	FeatFillerCount = "filler_count"

	// FeatHasExpandable marks the presence of a phrase that could be
	// contracted ("do not", "it is") but wasn't.
	FeatHasExpandable = "has_expandable"
)

// Bool reads a boolean-encoded feature.
func (v FeatureVector) Bool(key string) bool {
	return v[key] >= 0.5
}
