package plagiarism

import (
	"math"
	"sort"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/textseg"
)

// Self-repetition shingle lengths. Overlap between non-adjacent
// sentences is measured across this whole range at once.
const (
	selfNgramMin = 5
	selfNgramMax = 8
)

// Detector scores a submission against a corpus snapshot. It holds no
// mutable state and can be shared across goroutines.
type Detector struct {
	settings domain.EngineSettings
}

// NewDetector builds a Detector with the given settings. Settings are
// assumed validated by the caller.
func NewDetector(settings domain.EngineSettings) *Detector {
	return &Detector{settings: settings}
}

// Detect computes the similarity score and its supporting matches.
// The score is CosineWeight times the best corpus cosine plus
// PhraseWeight times the fraction of submission tokens covered by
// shared phrases, clamped to [0,1]. An empty corpus contributes
// nothing, so original text against an empty corpus scores 0.
func (d *Detector) Detect(sentences []domain.Sentence, snap *Snapshot) (float64, []domain.SimilarityMatch) {
	toks, spans := flatten(sentences)
	if len(toks) == 0 {
		return 0, nil
	}
	fullSpan := domain.Span{
		Start: sentences[0].Span.Start,
		End:   sentences[len(sentences)-1].Span.End,
	}

	var matches []domain.SimilarityMatch

	bestCosine := 0.0
	if snap != nil && snap.Len() > 0 {
		cosines := d.cosines(toks, snap)
		for i, c := range cosines {
			if c > bestCosine {
				bestCosine = c
			}
			if c >= d.settings.CosineThreshold {
				matches = append(matches, domain.SimilarityMatch{
					SourceID:   snap.docs[i].id,
					Span:       fullSpan,
					SourceSpan: domain.Span{Start: 0, End: snap.docs[i].textLen},
					Score:      c,
					Kind:       domain.MatchKindCosine,
				})
			}
		}
	}

	matches = append(matches, d.selfMatches(sentences)...)

	phraseRatio := 0.0
	if snap != nil && snap.Len() > 0 {
		var phraseMatches []domain.SimilarityMatch
		phraseRatio, phraseMatches = d.phraseMatches(toks, spans, snap)
		matches = append(matches, phraseMatches...)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	score := d.settings.CosineWeight*bestCosine + d.settings.PhraseWeight*phraseRatio
	return clamp01(score), matches
}

// flatten concatenates sentence tokens and resolves each token's byte
// span in the original submission.
func flatten(sentences []domain.Sentence) ([]string, []domain.Span) {
	var toks []string
	var spans []domain.Span
	for _, s := range sentences {
		for _, tok := range textseg.TokenizeSpans(s.Text) {
			toks = append(toks, tok.Text)
			spans = append(spans, domain.Span{
				Start: s.Span.Start + tok.Span.Start,
				End:   s.Span.Start + tok.Span.End,
			})
		}
	}
	return toks, spans
}

// cosines computes TF-IDF cosine similarity between the submission and
// every snapshot document. IDF treats the submission as one extra
// document on top of the corpus.
func (d *Detector) cosines(toks []string, snap *Snapshot) []float64 {
	subTF := make(map[string]float64, len(toks))
	for _, t := range toks {
		subTF[t]++
	}

	n := float64(snap.Len() + 1)
	idf := func(term string) float64 {
		df := float64(snap.df[term])
		if _, ok := subTF[term]; ok {
			df++
		}
		return math.Log((n+1)/(df+1)) + 1
	}

	// Float addition is order-sensitive, so every accumulation walks
	// its terms in sorted order to keep scores reproducible.
	subVec := make(map[string]float64, len(subTF))
	subNorm := 0.0
	for _, term := range sortedTerms(subTF) {
		w := subTF[term] * idf(term)
		subVec[term] = w
		subNorm += w * w
	}
	subNorm = math.Sqrt(subNorm)

	out := make([]float64, snap.Len())
	for i, doc := range snap.docs {
		dot := 0.0
		docNorm := 0.0
		for _, term := range sortedTerms(doc.tf) {
			w := doc.tf[term] * idf(term)
			docNorm += w * w
			if sw, ok := subVec[term]; ok {
				dot += sw * w
			}
		}
		docNorm = math.Sqrt(docNorm)
		if subNorm > 0 && docNorm > 0 {
			out[i] = dot / (subNorm * docNorm)
		}
	}
	return out
}

func sortedTerms(tf map[string]float64) []string {
	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// selfMatches reports n-gram repetition between non-adjacent
// sentences. Adjacent sentences legitimately share phrasing, so pairs
// closer than two positions are skipped.
func (d *Detector) selfMatches(sentences []domain.Sentence) []domain.SimilarityMatch {
	shingles := make([]map[uint64]struct{}, len(sentences))
	for i, s := range sentences {
		shingles[i] = shingleSet(s.Tokens)
	}

	var matches []domain.SimilarityMatch
	for i := 0; i < len(sentences); i++ {
		for j := i + 2; j < len(sentences); j++ {
			overlap := jaccard(shingles[i], shingles[j])
			if overlap >= d.settings.SelfOverlapThreshold {
				matches = append(matches, domain.SimilarityMatch{
					SourceID:   domain.MatchSourceSelf,
					Span:       sentences[i].Span,
					SourceSpan: sentences[j].Span,
					Score:      overlap,
					Kind:       domain.MatchKindSelf,
				})
			}
		}
	}
	return matches
}

// shingleSet hashes every n-gram of the token slice for n in
// [selfNgramMin, selfNgramMax].
func shingleSet(toks []string) map[uint64]struct{} {
	set := map[uint64]struct{}{}
	for n := selfNgramMin; n <= selfNgramMax; n++ {
		for pos := 0; pos+n <= len(toks); pos++ {
			set[hashGram(toks[pos:pos+n])] = struct{}{}
		}
	}
	return set
}

func jaccard(a, b map[uint64]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for h := range a {
		if _, ok := b[h]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// phraseMatches finds submission n-grams shared with corpus documents,
// exactly or with one word substituted. It returns the fraction of
// submission tokens covered by shared phrases and one match per
// matching corpus document.
func (d *Detector) phraseMatches(toks []string, spans []domain.Span, snap *Snapshot) (float64, []domain.SimilarityMatch) {
	n := snap.phraseWords
	if len(toks) < n {
		return 0, nil
	}

	covered := make([]bool, len(toks))
	type hit struct {
		score  float64
		subPos int
		srcPos int
	}
	best := map[int]hit{}

	record := func(refs []phraseRef, pos int, score float64) {
		for _, ref := range refs {
			if prev, ok := best[ref.doc]; !ok || score > prev.score {
				best[ref.doc] = hit{score: score, subPos: pos, srcPos: ref.pos}
			}
		}
		for k := pos; k < pos+n; k++ {
			covered[k] = true
		}
	}

	exactScore := 1.0
	nearScore := 1.0 - 1.0/float64(n)
	for pos := 0; pos+n <= len(toks); pos++ {
		gram := toks[pos : pos+n]
		if refs, ok := snap.phrases[hashGram(gram)]; ok {
			record(refs, pos, exactScore)
			continue
		}
		if d.settings.PhraseMaxEdits < 1 {
			continue
		}
		for _, h := range wildcardHashes(gram) {
			if refs, ok := snap.nearPhrases[h]; ok {
				record(refs, pos, nearScore)
			}
		}
	}

	coveredCount := 0
	for _, c := range covered {
		if c {
			coveredCount++
		}
	}
	ratio := float64(coveredCount) / float64(len(toks))

	docIdxs := make([]int, 0, len(best))
	for idx := range best {
		docIdxs = append(docIdxs, idx)
	}
	sort.Ints(docIdxs)

	matches := make([]domain.SimilarityMatch, 0, len(docIdxs))
	for _, idx := range docIdxs {
		h := best[idx]
		doc := snap.docs[idx]
		matches = append(matches, domain.SimilarityMatch{
			SourceID: doc.id,
			Span: domain.Span{
				Start: spans[h.subPos].Start,
				End:   spans[h.subPos+n-1].End,
			},
			SourceSpan: domain.Span{
				Start: doc.spans[h.srcPos].Start,
				End:   doc.spans[h.srcPos+n-1].End,
			},
			Score: h.score,
			Kind:  domain.MatchKindPhrase,
		})
	}
	return ratio, matches
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
