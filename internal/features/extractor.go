// Package features computes lexical feature vectors from segmented
// sentences. Features are produced at two levels: one vector for the
// whole document and one per sentence. Downstream scoring and
// classification consume these vectors instead of re-reading the text.
package features

import (
	"strings"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/textseg"
)

// Extractor computes feature vectors against a fixed lexicon. The
// zero value is not usable; construct with New.
type Extractor struct {
	transitions    [][]string
	fillers        [][]string
	hedges         map[string]struct{}
	passiveAux     map[string]struct{}
	pronouns       map[string]struct{}
	address        map[string]struct{}
	conversational [][]string
}

// New builds an Extractor from a lexicon. Multi-word lexicon entries
// are tokenized once up front so matching is a token-slice scan.
func New(lex domain.Lexicon) *Extractor {
	return &Extractor{
		transitions:    tokenizePhrases(lex.Transitions),
		fillers:        tokenizePhrases(lex.Fillers),
		hedges:         domain.TokenSet(lex.Hedges),
		passiveAux:     domain.TokenSet(lex.PassiveAuxiliaries),
		pronouns:       domain.TokenSet(lex.PersonalPronouns),
		address:        domain.TokenSet(lex.AddressPronouns),
		conversational: tokenizePhrases(lex.Conversational),
	}
}

func tokenizePhrases(phrases []string) [][]string {
	out := make([][]string, 0, len(phrases))
	for _, p := range phrases {
		toks := textseg.Tokenize(p)
		if len(toks) > 0 {
			out = append(out, toks)
		}
	}
	return out
}

// Extract computes the document vector and one vector per sentence.
// The returned slice is parallel to sentences.
func (e *Extractor) Extract(sentences []domain.Sentence) (domain.FeatureVector, []domain.FeatureVector) {
	doc := domain.FeatureVector{}
	perSentence := make([]domain.FeatureVector, len(sentences))

	totalTokens := 0
	uniqueTokens := map[string]struct{}{}
	transitionSentences := 0
	fillerSentences := 0
	passiveSentences := 0

	for i, s := range sentences {
		fv := e.extractSentence(s)
		perSentence[i] = fv
		totalTokens += len(s.Tokens)
		for _, tok := range s.Tokens {
			uniqueTokens[tok] = struct{}{}
		}
		if fv.Bool(domain.FeatHasTransition) {
			transitionSentences++
		}
		if fv.Bool(domain.FeatHasFiller) {
			fillerSentences++
		}
		if fv.Bool(domain.FeatIsPassive) {
			passiveSentences++
		}
	}

	n := len(sentences)
	doc[domain.FeatSentenceCount] = float64(n)
	doc[domain.FeatTokenTotal] = float64(totalTokens)
	if totalTokens > 0 {
		doc[domain.FeatTTR] = float64(len(uniqueTokens)) / float64(totalTokens)
	}
	if n > 0 {
		doc[domain.FeatTransitionDensity] = float64(transitionSentences) / float64(n)
		doc[domain.FeatFillerDensity] = float64(fillerSentences) / float64(n)
		doc[domain.FeatPassiveRate] = float64(passiveSentences) / float64(n)
		doc[domain.FeatMeanSentenceLen] = float64(totalTokens) / float64(n)
	}
	return doc, perSentence
}

func (e *Extractor) extractSentence(s domain.Sentence) domain.FeatureVector {
	fv := domain.FeatureVector{}
	toks := s.Tokens

	fv[domain.FeatLengthTokens] = float64(len(toks))
	fv[domain.FeatAvgWordLen] = avgWordLen(toks)
	fv[domain.FeatIsQuestion] = boolFeat(strings.HasSuffix(strings.TrimSpace(s.Text), "?"))

	hasPronoun := false
	hasContraction := false
	hasAddress := false
	hedgeCount := 0
	for _, tok := range toks {
		if _, ok := e.pronouns[tok]; ok {
			hasPronoun = true
		}
		if _, ok := e.address[tok]; ok {
			hasAddress = true
		}
		if _, ok := e.hedges[tok]; ok {
			hedgeCount++
		}
		if strings.Contains(tok, "'") {
			hasContraction = true
		}
	}
	fv[domain.FeatHasPronoun] = boolFeat(hasPronoun)
	fv[domain.FeatHasContraction] = boolFeat(hasContraction)
	fv[domain.FeatHasAddress] = boolFeat(hasAddress)

	fillerCount := countPhrases(toks, e.fillers)
	// Hedging reads as filler once it piles up in a single sentence.
	hasFiller := fillerCount > 0 || hedgeCount >= 2
	fv[domain.FeatFillerCount] = float64(fillerCount + hedgeCount)
	fv[domain.FeatHasFiller] = boolFeat(hasFiller)

	fv[domain.FeatHasTransition] = boolFeat(countPhrases(toks, e.transitions) > 0)
	fv[domain.FeatStartsTransition] = boolFeat(startsWithAny(toks, e.transitions))
	fv[domain.FeatHasConversational] = boolFeat(countPhrases(toks, e.conversational) > 0)
	fv[domain.FeatIsPassive] = boolFeat(e.isPassive(toks))
	fv[domain.FeatHasExpandable] = boolFeat(hasExpandablePair(toks))
	return fv
}

// expandablePairs are two-token sequences a native speaker would often
// contract. Their presence without any contraction in the sentence
// reads as stiff, formal register.
var expandablePairs = [][2]string{
	{"do", "not"}, {"does", "not"}, {"did", "not"},
	{"is", "not"}, {"are", "not"}, {"was", "not"}, {"were", "not"},
	{"will", "not"}, {"would", "not"}, {"should", "not"}, {"could", "not"},
	{"can", "not"}, {"have", "not"}, {"has", "not"}, {"had", "not"},
	{"it", "is"}, {"that", "is"}, {"there", "is"},
	{"i", "am"}, {"you", "are"}, {"we", "are"}, {"they", "are"},
}

func hasExpandablePair(toks []string) bool {
	for i := 0; i+1 < len(toks); i++ {
		for _, p := range expandablePairs {
			if toks[i] == p[0] && toks[i+1] == p[1] {
				return true
			}
		}
	}
	if containsToken(toks, "cannot") {
		return true
	}
	return false
}

func containsToken(toks []string, want string) bool {
	for _, t := range toks {
		if t == want {
			return true
		}
	}
	return false
}

func boolFeat(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// isPassive is a heuristic: a passive auxiliary followed within three
// tokens by a word ending in "ed" or "en".
func (e *Extractor) isPassive(toks []string) bool {
	for i, tok := range toks {
		if _, ok := e.passiveAux[tok]; !ok {
			continue
		}
		limit := i + 4
		if limit > len(toks) {
			limit = len(toks)
		}
		for j := i + 1; j < limit; j++ {
			w := toks[j]
			if len(w) > 3 && (strings.HasSuffix(w, "ed") || strings.HasSuffix(w, "en")) {
				return true
			}
		}
	}
	return false
}

func avgWordLen(toks []string) float64 {
	if len(toks) == 0 {
		return 0
	}
	total := 0
	for _, t := range toks {
		total += len([]rune(t))
	}
	return float64(total) / float64(len(toks))
}

// countPhrases counts how many lexicon phrases occur in the token
// slice. Each phrase counts at most once per sentence.
func countPhrases(toks []string, phrases [][]string) int {
	count := 0
	for _, phrase := range phrases {
		if containsPhrase(toks, phrase) {
			count++
		}
	}
	return count
}

func containsPhrase(toks, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(toks) {
		return false
	}
	for i := 0; i+len(phrase) <= len(toks); i++ {
		if matchAt(toks, phrase, i) {
			return true
		}
	}
	return false
}

func startsWithAny(toks []string, phrases [][]string) bool {
	for _, phrase := range phrases {
		if len(phrase) > 0 && len(phrase) <= len(toks) && matchAt(toks, phrase, 0) {
			return true
		}
	}
	return false
}

func matchAt(toks, phrase []string, at int) bool {
	for k, p := range phrase {
		if toks[at+k] != p {
			return false
		}
	}
	return true
}
