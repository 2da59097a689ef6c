package ngram

import (
	"reflect"
	"testing"
)

func TestCountUnigrams(t *testing.T) {
	// Filtered tokens from "The cat sat. The cat ran." with "the" excluded.
	tokens := []string{"cat", "sat", "cat", "ran"}
	table := Count(tokens, 1)

	want := map[string]int{"cat": 2, "sat": 1, "ran": 1}
	for gram, count := range want {
		if got := table.Get(gram); got != count {
			t.Errorf("Get(%q) = %d, want %d", gram, got, count)
		}
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
}

func TestCountBigrams(t *testing.T) {
	tokens := []string{"cat", "sat", "cat", "ran"}
	table := Count(tokens, 2)

	want := map[string]int{"cat sat": 1, "sat cat": 1, "cat ran": 1}
	for gram, count := range want {
		if got := table.Get(gram); got != count {
			t.Errorf("Get(%q) = %d, want %d", gram, got, count)
		}
	}
	if table.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", table.Len(), len(want))
	}
}

func TestCountWindowInvariant(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "a", "b"}

	tests := []struct {
		n         int
		wantTotal int
	}{
		{n: 1, wantTotal: 7},
		{n: 2, wantTotal: 6},
		{n: 3, wantTotal: 5},
	}

	for _, tt := range tests {
		table := Count(tokens, tt.n)
		if got := table.Total(); got != tt.wantTotal {
			t.Errorf("Count(n=%d).Total() = %d, want %d", tt.n, got, tt.wantTotal)
		}
	}
}

func TestCountShortSequence(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		n      int
	}{
		{name: "empty sequence", tokens: nil, n: 1},
		{name: "fewer tokens than n", tokens: []string{"cat", "sat"}, n: 3},
		{name: "single token trigram", tokens: []string{"cat"}, n: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Count(tt.tokens, tt.n)
			if table.Len() != 0 {
				t.Errorf("Len() = %d, want 0", table.Len())
			}
			if got := table.Top(5); len(got) != 0 {
				t.Errorf("Top(5) = %v, want empty", got)
			}
			if got := table.Bottom(5); len(got) != 0 {
				t.Errorf("Bottom(5) = %v, want empty", got)
			}
		})
	}
}

func TestTopOrdering(t *testing.T) {
	// x appears twice; y and z tie at one and must keep encounter order.
	tokens := []string{"x", "y", "z", "x"}
	table := Count(tokens, 1)

	got := table.Top(3)
	want := []Entry{{"x", 2}, {"y", 1}, {"z", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top(3) = %v, want %v", got, want)
	}
}

func TestBottomOrdering(t *testing.T) {
	// Bottom is the reverse of the full descending ranking, so low-end ties
	// surface in reverse of encounter order.
	tokens := []string{"x", "y", "z", "x"}
	table := Count(tokens, 1)

	got := table.Bottom(2)
	want := []Entry{{"z", 1}, {"y", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Bottom(2) = %v, want %v", got, want)
	}

	full := table.Bottom(3)
	wantFull := []Entry{{"z", 1}, {"y", 1}, {"x", 2}}
	if !reflect.DeepEqual(full, wantFull) {
		t.Errorf("Bottom(3) = %v, want %v", full, wantFull)
	}
}

func TestTopBottomClamp(t *testing.T) {
	tokens := []string{"a", "b", "a"}
	table := Count(tokens, 1)

	tests := []struct {
		name string
		k    int
		want int
	}{
		{name: "k larger than table", k: 10, want: 2},
		{name: "k zero", k: 0, want: 0},
		{name: "k negative", k: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(table.Top(tt.k)); got != tt.want {
				t.Errorf("len(Top(%d)) = %d, want %d", tt.k, got, tt.want)
			}
			if got := len(table.Bottom(tt.k)); got != tt.want {
				t.Errorf("len(Bottom(%d)) = %d, want %d", tt.k, got, tt.want)
			}
		})
	}
}

func TestDeterministicRanking(t *testing.T) {
	tokens := []string{"one", "two", "three", "two", "one", "one"}

	first := Count(tokens, 2).Top(10)
	for i := 0; i < 5; i++ {
		again := Count(tokens, 2).Top(10)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ranking not deterministic: %v vs %v", first, again)
		}
	}
}
