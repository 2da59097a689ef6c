package models

// Section names, in the fixed order they are printed.
const (
	SectionLeastCommonTrigrams = "least_common_trigrams"
	SectionMostCommonTrigrams  = "most_common_trigrams"
	SectionMostCommonWords     = "most_common_words"
	SectionMostCommonPhrases   = "most_common_phrases"
)

// Entry is a single ranked n-gram with its occurrence count.
type Entry struct {
	Gram  string `json:"gram"`
	Count int    `json:"count"`
}

// Section is one labeled block of ranked entries.
type Section struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Entries []Entry `json:"entries"`
}

// Report is the complete result of one analysis run.
type Report struct {
	CorpusDir  string    `json:"corpus_dir"`
	Extension  string    `json:"extension"`
	FileCount  int       `json:"file_count"`
	TokenCount int       `json:"token_count"`
	Sections   []Section `json:"sections"`
}
