package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tok := New(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "punctuation stripped and lowercased",
			text: "The cat sat. The cat ran.",
			want: []string{"the", "cat", "sat", "the", "cat", "ran"},
		},
		{
			name: "contractions collapse",
			text: "Don't worry, it's fine",
			want: []string{"dont", "worry", "its", "fine"},
		},
		{
			name: "hyphenated words split apart",
			text: "a well-known fact",
			want: []string{"a", "wellknown", "fact"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "  \n\t  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		custom []string
		text   string
		want   []string
	}{
		{
			name: "stop-words removed",
			text: "The cat sat. The cat ran.",
			want: []string{"cat", "sat", "cat", "ran"},
		},
		{
			name: "purely numeric tokens removed",
			text: "shipped 3 releases during 2024",
			want: []string{"shipped", "releases"},
		},
		{
			name: "mixed alphanumeric tokens survive",
			text: "migrating to v2 and http2",
			want: []string{"migrating", "v2", "http2"},
		},
		{
			name: "calendar terms removed",
			text: "Monday timeline for January or Jan next week, weekly weeks",
			want: nil,
		},
		{
			name:   "custom words removed",
			custom: []string{"grocery"},
			text:   "grocery store run grocery store run grocery store run",
			want:   []string{"store", "run", "store", "run", "store", "run"},
		},
		{
			name: "stop-word contractions match stripped tokens",
			text: "don't stop believing",
			want: []string{"stop", "believing"},
		},
		{
			name: "all tokens excluded",
			text: "the and of May June week 42",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New(tt.custom)
			got := tok.TokenizeAndFilter(tt.text)
			if tt.want == nil {
				if len(got) != 0 {
					t.Errorf("TokenizeAndFilter(%q) = %v, want empty", tt.text, got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeAndFilter(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFilterNeverAddsTokens(t *testing.T) {
	tok := New([]string{"corpus"})

	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"a b c 1 2 3",
		"corpus corpus corpus",
		"",
		strings.Repeat("some words repeat over time ", 50),
	}

	for _, text := range texts {
		raw := tok.Tokenize(text)
		filtered := tok.Filter(raw)
		if len(filtered) > len(raw) {
			t.Errorf("filtering added tokens for %q: raw %d, filtered %d", text, len(raw), len(filtered))
		}
	}
}

func TestIsExcluded(t *testing.T) {
	tok := New([]string{"weasel"})

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"don't", true},
		{"dont", true},
		{"Monday", true},
		{"monday", true},
		{"weasel", true},
		{"cat", false},
	}

	for _, tt := range tests {
		if got := tok.IsExcluded(tt.word); got != tt.want {
			t.Errorf("IsExcluded(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
