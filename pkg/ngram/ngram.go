// Package ngram builds n-gram frequency tables over a token sequence and
// ranks entries by count with deterministic, encounter-order tie-breaking.
package ngram

import (
	"sort"
	"strings"
)

// Entry is a distinct n-gram and its occurrence count. Gram holds the n
// tokens joined by a single space.
type Entry struct {
	Gram  string
	Count int
}

// Table is a read-only n-gram frequency table. It remembers the order in
// which distinct n-grams were first encountered so equal counts rank
// deterministically.
type Table struct {
	n      int
	counts map[string]int
	order  []string
}

// Count builds the frequency table of contiguous n-token windows over the
// token sequence, sliding by one token. Fewer than n tokens yields an empty
// table.
func Count(tokens []string, n int) *Table {
	t := &Table{
		n:      n,
		counts: make(map[string]int),
	}
	if n < 1 {
		return t
	}
	for i := 0; i+n <= len(tokens); i++ {
		gram := strings.Join(tokens[i:i+n], " ")
		if _, seen := t.counts[gram]; !seen {
			t.order = append(t.order, gram)
		}
		t.counts[gram]++
	}
	return t
}

// Len returns the number of distinct n-grams.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts, which equals the number of windows:
// max(0, len(tokens)-n+1).
func (t *Table) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Get returns the count for a gram, zero if absent.
func (t *Table) Get(gram string) int {
	return t.counts[gram]
}

// ranked returns all entries sorted by descending count. The sort is stable
// over first-encounter order, so equal counts keep the order in which their
// grams first appeared in the token sequence.
func (t *Table) ranked() []Entry {
	entries := make([]Entry, len(t.order))
	for i, gram := range t.order {
		entries[i] = Entry{Gram: gram, Count: t.counts[gram]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Top returns the k highest-count entries in descending-count order, ties
// broken by first-encounter order.
func (t *Table) Top(k int) []Entry {
	entries := t.ranked()
	return entries[:clamp(k, len(entries))]
}

// Bottom returns the k lowest-count entries in ascending-count order. Ties
// at the low end surface in reverse of encounter order: the full descending
// ranking is reversed and the head taken, matching Top's tie-breaking
// mirrored.
func (t *Table) Bottom(k int) []Entry {
	entries := t.ranked()
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries[:clamp(k, len(entries))]
}

func clamp(k, n int) int {
	if k < 0 {
		return 0
	}
	if k > n {
		return n
	}
	return k
}
