// Package corpus discovers lightweight-markup documents in a directory and
// converts them to plain prose. Markdown is rendered to HTML and stripped of
// tags; HTML documents go through readability extraction. The combined
// corpus is one string with documents joined by a single space.
package corpus

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/adrg/frontmatter"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Loader reads a directory of markup documents and produces plain text.
type Loader struct {
	markdown goldmark.Markdown
	logger   *slog.Logger
	language string
	detector lingua.LanguageDetector
}

// detectableLanguages bounds the lingua detector. Restricting the set keeps
// model loading cheap while covering the languages a personal blog corpus
// plausibly mixes.
var detectableLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
}

// NewLoader builds a Loader. If language is a non-empty ISO 639-1 code,
// documents whose detected language does not match are skipped with a
// warning.
func NewLoader(logger *slog.Logger, language string) *Loader {
	l := &Loader{
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger:   logger,
		language: strings.ToLower(strings.TrimSpace(language)),
	}
	if l.language != "" {
		l.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectableLanguages...).
			Build()
	}
	return l
}

// Discover returns the paths under dir whose extension matches ext, sorted
// ascending by path. Filesystem enumeration order is not guaranteed, and
// relative ranking of equal-count n-grams depends on encounter order, so the
// explicit sort keeps runs reproducible. A missing directory or zero matches
// is ErrCorpusNotFound.
func (l *Loader) Discover(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read directory %s: %v", ErrCorpusNotFound, dir, err)
	}

	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != ext {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrCorpusNotFound, ext, dir)
	}
	return paths, nil
}

// LoadDocument reads one file and converts it to plain prose. A file that
// cannot be read or is not valid UTF-8 text yields a DecodeError.
func (l *Loader) LoadDocument(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &DecodeError{Path: path, Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &DecodeError{Path: path, Err: fmt.Errorf("content is not valid UTF-8 text")}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return l.htmlToText(path, raw)
	default:
		return l.markupToText(path, raw)
	}
}

// Load discovers, loads, and concatenates all matching documents. Documents
// that fail to decode are skipped with a warning; the run aborts only when
// the directory itself is unusable. Returns the combined plain text and the
// number of documents that contributed to it.
func (l *Loader) Load(dir, ext string) (string, int, error) {
	paths, err := l.Discover(dir, ext)
	if err != nil {
		return "", 0, err
	}

	var texts []string
	for _, path := range paths {
		text, err := l.LoadDocument(path)
		if err != nil {
			l.logger.Warn("skipping unreadable document", "path", path, "error", err)
			continue
		}
		if l.detector != nil && !l.matchesLanguage(text) {
			l.logger.Warn("skipping document in non-matching language", "path", path, "want", l.language)
			continue
		}
		if text != "" {
			texts = append(texts, text)
		}
	}

	// Documents are joined with a single space, so n-gram windows can span
	// two unrelated files. Inherited behavior, kept for fidelity; see
	// DESIGN.md.
	return strings.Join(texts, " "), len(texts), nil
}

// markupToText strips YAML front matter, renders the Markdown body to HTML,
// and strips all markup tags.
func (l *Loader) markupToText(path string, raw []byte) (string, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		// Malformed front matter should not lose the document; analyze the
		// raw content instead.
		l.logger.Warn("invalid front matter, using raw content", "path", path, "error", err)
		body = raw
	}

	var html bytes.Buffer
	if err := l.markdown.Convert(body, &html); err != nil {
		return "", &DecodeError{Path: path, Err: fmt.Errorf("markdown conversion: %w", err)}
	}
	return stripTags(html.String())
}

// htmlToText extracts the main article text from an HTML document.
func (l *Loader) htmlToText(path string, raw []byte) (string, error) {
	pageURL := &url.URL{Scheme: "file", Path: path}
	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(raw), pageURL)
	if err != nil {
		return "", &DecodeError{Path: path, Err: fmt.Errorf("readability extraction: %w", err)}
	}
	return collapseWhitespace(article.TextContent), nil
}

// stripTags removes all markup tags from an HTML fragment, leaving prose.
func stripTags(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse rendered HTML: %w", err)
	}
	return collapseWhitespace(doc.Text()), nil
}

// collapseWhitespace folds all whitespace runs into single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// matchesLanguage reports whether the detected language of text matches the
// configured ISO 639-1 code. Undetectable text passes through.
func (l *Loader) matchesLanguage(text string) bool {
	detected, ok := l.detector.DetectLanguageOf(text)
	if !ok {
		return true
	}
	return strings.EqualFold(detected.IsoCode639_1().String(), l.language)
}
