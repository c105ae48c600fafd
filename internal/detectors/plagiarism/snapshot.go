// Package plagiarism scores a submission against a reference corpus.
// It combines whole-document TF-IDF cosine similarity, n-gram
// repetition between non-adjacent sentences, and near-exact shared
// phrase detection into a single similarity score with per-match
// evidence.
package plagiarism

import (
	"hash/fnv"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/textseg"
)

// wildcard replaces one token when hashing near-match phrase variants.
const wildcard = "\x00*\x00"

// phraseRef locates one n-gram occurrence inside a corpus document.
type phraseRef struct {
	doc int
	pos int
}

type snapshotDoc struct {
	id      string
	tf      map[string]float64
	spans   []domain.Span
	textLen int
}

// Snapshot is an immutable TF-IDF view of the corpus at a specific
// version. Detectors read snapshots concurrently without locking;
// corpus mutations produce a new snapshot instead of changing one.
type Snapshot struct {
	version     uint64
	phraseWords int
	docs        []snapshotDoc
	df          map[string]int
	phrases     map[uint64][]phraseRef
	nearPhrases map[uint64][]phraseRef
}

// BuildSnapshot indexes corpus entries for detection. Entries whose
// text yields no tokens are skipped. phraseWords is the n-gram length
// used by the shared-phrase index.
func BuildSnapshot(entries []domain.CorpusEntry, version uint64, phraseWords int) *Snapshot {
	s := &Snapshot{
		version:     version,
		phraseWords: phraseWords,
		df:          map[string]int{},
		phrases:     map[uint64][]phraseRef{},
		nearPhrases: map[uint64][]phraseRef{},
	}
	for _, entry := range entries {
		spanned := textseg.TokenizeSpans(entry.Text)
		if len(spanned) == 0 {
			continue
		}
		toks := make([]string, len(spanned))
		spans := make([]domain.Span, len(spanned))
		for i, tok := range spanned {
			toks[i] = tok.Text
			spans[i] = tok.Span
		}
		docIdx := len(s.docs)
		tf := make(map[string]float64, len(toks))
		for _, t := range toks {
			tf[t]++
		}
		for term := range tf {
			s.df[term]++
		}
		for pos := 0; pos+phraseWords <= len(toks); pos++ {
			gram := toks[pos : pos+phraseWords]
			ref := phraseRef{doc: docIdx, pos: pos}
			s.phrases[hashGram(gram)] = append(s.phrases[hashGram(gram)], ref)
			for _, h := range wildcardHashes(gram) {
				s.nearPhrases[h] = append(s.nearPhrases[h], ref)
			}
		}
		s.docs = append(s.docs, snapshotDoc{
			id:      entry.ID,
			tf:      tf,
			spans:   spans,
			textLen: len(entry.Text),
		})
	}
	return s
}

// Version returns the corpus version this snapshot was built from.
func (s *Snapshot) Version() uint64 { return s.version }

// Len returns the number of indexed documents.
func (s *Snapshot) Len() int { return len(s.docs) }

func hashGram(gram []string) uint64 {
	h := fnv.New64a()
	for _, w := range gram {
		h.Write([]byte(w))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// wildcardHashes returns one hash per variant of gram with a single
// token replaced by a wildcard. Two grams differing in exactly one
// word share one of these hashes.
func wildcardHashes(gram []string) []uint64 {
	hashes := make([]uint64, len(gram))
	variant := make([]string, len(gram))
	for i := range gram {
		copy(variant, gram)
		variant[i] = wildcard
		hashes[i] = hashGram(variant)
	}
	return hashes
}
