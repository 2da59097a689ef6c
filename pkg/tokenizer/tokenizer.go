// Package tokenizer normalizes plain text into lowercase word tokens and
// filters out excluded and purely-numeric tokens. The exclusion set is built
// per Tokenizer instance; there is no package-level mutable state.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// nonWord matches every character that is neither a word character nor
// whitespace. Stripping these before segmentation collapses contractions
// ("don't" becomes "dont") and detaches punctuation from adjacent words.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Tokenizer splits normalized text on UAX #29 word boundaries and drops
// tokens that are in the exclusion set or composed entirely of digits.
type Tokenizer struct {
	exclusions map[string]struct{}
}

// New builds a Tokenizer whose exclusion set merges the standard English
// stop-word list with the caller's custom words, day names plus "timeline",
// month names, and week variants. Every entry is normalized with the same
// rules applied to corpus tokens so contractions match their stripped forms.
func New(customWords []string) *Tokenizer {
	exclusions := make(map[string]struct{})
	for _, group := range [][]string{stopWords, customWords, dayWords, monthWords, weekWords} {
		for _, w := range group {
			if normalized := normalize(w); normalized != "" {
				exclusions[normalized] = struct{}{}
			}
		}
	}
	return &Tokenizer{exclusions: exclusions}
}

// Tokenize normalizes text and splits it into lowercase word tokens,
// preserving order. No filtering is applied.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	segments := words.FromString(normalize(text))
	for segments.Next() {
		token := segments.Value()
		if isWordToken(token) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Filter returns the tokens that survive exclusion, order preserved and
// duplicates retained. A token survives iff it is not in the exclusion set
// and is not composed entirely of decimal digits.
func (t *Tokenizer) Filter(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, excluded := t.exclusions[token]; excluded {
			continue
		}
		if isNumeric(token) {
			continue
		}
		filtered = append(filtered, token)
	}
	return filtered
}

// TokenizeAndFilter is the full Tokenizer/Filter stage: Tokenize then Filter.
func (t *Tokenizer) TokenizeAndFilter(text string) []string {
	return t.Filter(t.Tokenize(text))
}

// IsExcluded reports whether a word is in the exclusion set after
// normalization.
func (t *Tokenizer) IsExcluded(word string) bool {
	_, excluded := t.exclusions[normalize(word)]
	return excluded
}

// normalize strips non-word, non-whitespace characters and lowercases.
func normalize(text string) string {
	return strings.ToLower(nonWord.ReplaceAllString(text, ""))
}

// isWordToken reports whether a UAX #29 segment is an actual word rather
// than whitespace or a stray symbol.
func isWordToken(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return true
		}
	}
	return false
}

// isNumeric reports whether a token consists entirely of decimal digits.
func isNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
