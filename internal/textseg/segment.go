// Package textseg splits raw text into sentences with byte-offset
// spans and tokenizes sentences into lowercase word tokens. Spans
// always index into the original input, so callers can reconstruct
// any sentence with text[span.Start:span.End].
package textseg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
)

// abbreviations that should not terminate a sentence when followed
// by a period. Compared lowercase, without the trailing period.
var abbreviations = map[string]struct{}{
	"dr":   {},
	"mr":   {},
	"mrs":  {},
	"ms":   {},
	"prof": {},
	"st":   {},
	"vs":   {},
	"etc":  {},
	"e.g":  {},
	"i.e":  {},
	"fig":  {},
	"no":   {},
	"al":   {},
	"jr":   {},
	"sr":   {},
}

// Segment splits text into sentences. Each returned sentence carries
// the byte span it occupies in the input, so the original text for
// sentence i is always text[s[i].Span.Start:s[i].Span.End]. Spans are
// ordered, non-overlapping, and separated only by whitespace.
func Segment(text string) []domain.Sentence {
	var sentences []domain.Sentence
	n := len(text)
	pos := 0

	for pos < n {
		// Skip inter-sentence whitespace.
		for pos < n {
			r, size := utf8.DecodeRuneInString(text[pos:])
			if !unicode.IsSpace(r) {
				break
			}
			pos += size
		}
		if pos >= n {
			break
		}

		start := pos
		end := -1
		i := pos
		for i < n {
			r, size := utf8.DecodeRuneInString(text[i:])
			if r == '.' || r == '!' || r == '?' {
				after := i + size
				if r == '.' && !isBoundaryPeriod(text, i) {
					i = after
					continue
				}
				// Absorb any run of terminators ("!?", "...").
				for after < n {
					nr, nsize := utf8.DecodeRuneInString(text[after:])
					if nr == '.' || nr == '!' || nr == '?' {
						after += nsize
						continue
					}
					break
				}
				// Closing quotes and brackets belong to the sentence.
				for after < n {
					nr, nsize := utf8.DecodeRuneInString(text[after:])
					if nr == '"' || nr == '\'' || nr == ')' || nr == ']' ||
						nr == '”' || nr == '’' {
						after += nsize
						continue
					}
					break
				}
				if after >= n || startsWithSpace(text[after:]) {
					end = after
					break
				}
				i = after
				continue
			}
			i += size
		}
		if end < 0 {
			end = n
		}
		// Trim trailing whitespace from the sentence body.
		body := strings.TrimRightFunc(text[start:end], unicode.IsSpace)
		end = start + len(body)
		if end > start {
			sentences = append(sentences, domain.Sentence{
				Index:  len(sentences),
				Text:   body,
				Span:   domain.Span{Start: start, End: end},
				Tokens: Tokenize(body),
			})
		}
		pos = end
		if pos <= i {
			pos = i + 1
		}
	}
	return sentences
}

// isBoundaryPeriod reports whether the period at byte offset i can end
// a sentence. Decimal points and known abbreviations do not.
func isBoundaryPeriod(text string, i int) bool {
	// Decimal number: digit on both sides.
	if i > 0 && i+1 < len(text) {
		if isASCIIDigit(text[i-1]) && isASCIIDigit(text[i+1]) {
			return false
		}
	}
	// Walk back to the start of the preceding token.
	j := i
	for j > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:j])
		if unicode.IsLetter(r) || r == '.' {
			j -= size
			continue
		}
		break
	}
	word := strings.ToLower(text[j:i])
	word = strings.TrimSuffix(word, ".")
	if word == "" {
		return true
	}
	if _, ok := abbreviations[word]; ok {
		return false
	}
	// Single letters read as initials ("J. Smith").
	if utf8.RuneCountInString(word) == 1 && !strings.Contains(word, ".") {
		return false
	}
	return true
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}
