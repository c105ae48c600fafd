package textseg

import (
	"strings"
	"unicode"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
)

// Token is a word token together with the byte span it occupies in the
// tokenized text.
type Token struct {
	Text string
	Span domain.Span
}

// Tokenize lowercases text and splits it into word tokens. A token is
// a run of letters and digits; apostrophes between letters are kept so
// contractions like "don't" stay a single token.
func Tokenize(text string) []string {
	spanned := TokenizeSpans(text)
	if len(spanned) == 0 {
		return nil
	}
	tokens := make([]string, len(spanned))
	for i, tok := range spanned {
		tokens[i] = tok.Text
	}
	return tokens
}

// TokenizeSpans tokenizes like Tokenize but keeps the byte offsets of
// each token, so callers can map tokens back into the original text.
func TokenizeSpans(text string) []Token {
	var tokens []Token
	var b strings.Builder
	start := -1
	runes := []rune(text)
	offsets := runeByteOffsets(text)

	flush := func(end int) {
		if b.Len() > 0 {
			tokens = append(tokens, Token{
				Text: b.String(),
				Span: domain.Span{Start: start, End: end},
			})
			b.Reset()
		}
		start = -1
	}

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if start < 0 {
				start = offsets[i]
			}
			b.WriteRune(unicode.ToLower(r))
		case (r == '\'' || r == '’') && b.Len() > 0 &&
			i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			b.WriteRune('\'')
		default:
			flush(offsets[i])
		}
	}
	flush(len(text))
	return tokens
}

// runeByteOffsets returns the byte offset of each rune in text, plus a
// final entry equal to len(text).
func runeByteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return offsets
}
