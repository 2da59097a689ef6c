package corpus

import (
	"errors"
	"fmt"
)

// ErrCorpusNotFound reports a fatal corpus-level condition: the configured
// directory does not exist or contains zero matching files. Per-document
// failures never produce this error.
var ErrCorpusNotFound = errors.New("corpus not found")

// DecodeError reports a single document that could not be read as text.
// It is recovered locally: the file is skipped and processing continues.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode document %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
