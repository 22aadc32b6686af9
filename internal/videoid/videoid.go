// Package videoid pulls the 11-character video identifier out of the many
// shapes of reference users paste in.
package videoid

import (
	"errors"
	"net/url"
	"strings"
)

// IDLength is the length of a bare video identifier.
const IDLength = 11

// ErrInvalidReference is returned by Parse when no identifier can be
// derived from a reference.
var ErrInvalidReference = errors.New("invalid video reference")

// Extract returns the video identifier embedded in reference.
//
// Rules are applied in order and the first match wins:
//   - "v=" anywhere: the text after the first "v=" up to the next "&"
//   - "youtu.be" anywhere: the last path segment, query stripped
//   - exactly IDLength characters with no "/": the reference itself
//
// The identifier's characters are not validated.
func Extract(reference string) (string, bool) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return "", false
	}

	var id string
	switch {
	case strings.Contains(ref, "v="):
		_, after, _ := strings.Cut(ref, "v=")
		id, _, _ = strings.Cut(after, "&")
	case strings.Contains(ref, "youtu.be"):
		id = ref[strings.LastIndex(ref, "/")+1:]
		id, _, _ = strings.Cut(id, "?")
	case len(ref) == IDLength && !strings.Contains(ref, "/"):
		id = ref
	}

	if id == "" {
		return "", false
	}
	return id, true
}

// Parse is Extract returning ErrInvalidReference instead of a boolean.
func Parse(reference string) (string, error) {
	id, ok := Extract(reference)
	if !ok {
		return "", ErrInvalidReference
	}
	return id, nil
}

// IsBareID reports whether reference is a bare identifier rather than a URL.
func IsBareID(reference string) bool {
	ref := strings.TrimSpace(reference)
	return len(ref) == IDLength && !strings.Contains(ref, "/") && !strings.Contains(ref, "v=")
}

// WatchURL returns the canonical watch page URL for id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
}
