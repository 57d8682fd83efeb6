package wordlist

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/verte-zerg/textstat/internal/clierr"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// LoadText reads the whole file at path as UTF-8 text. Content that is empty
// or only whitespace is rejected.
func LoadText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", readError(path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", readError(path, err)
	}
	if !utf8.Valid(data) {
		return "", &clierr.Error{Kind: clierr.ReadFailed, Path: path, Err: errInvalidUTF8}
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", &clierr.Error{Kind: clierr.EmptyFile, Path: path}
	}
	return text, nil
}

func readError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &clierr.Error{Kind: clierr.FileNotFound, Path: path, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &clierr.Error{Kind: clierr.PermissionDenied, Path: path, Err: err}
	default:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return &clierr.Error{Kind: clierr.ReadFailed, Path: path, Err: err}
	}
}

// Tokens yields the lowercased whitespace-separated words of text that pass
// keep. Words are produced lazily in text order.
func Tokens(text string, keep FilterFunc) iter.Seq[string] {
	return func(yield func(string) bool) {
		lower := cases.Lower(language.Und)
		for field := range strings.FieldsSeq(text) {
			word := lower.String(field)
			if word == "" || !keep(word) {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}
