// Package chunker splits long transcripts into bounded pieces for the
// summarization passes.
package chunker

import (
	"strings"
	"unicode/utf8"
)

// Chunk is one contiguous piece of the source text.
// [Start, End) is the untrimmed byte span; Text is that span trimmed.
type Chunk struct {
	Index int
	Start int
	End   int
	Text  string
}

// Split cuts text into consecutive spans of at most maxChars characters.
// Spans never split a UTF-8 sequence and together cover text exactly.
// It panics if maxChars is not positive.
func Split(text string, maxChars int) []Chunk {
	if maxChars <= 0 {
		panic("chunker: maxChars must be positive")
	}

	chunks := make([]Chunk, 0, Count(text, maxChars))
	start := 0
	for start < len(text) {
		end := start
		for n := 0; n < maxChars && end < len(text); n++ {
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
		}
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Start: start,
			End:   end,
			Text:  strings.TrimSpace(text[start:end]),
		})
		start = end
	}
	return chunks
}

// Count returns how many chunks Split would produce.
func Count(text string, maxChars int) int {
	if maxChars <= 0 {
		panic("chunker: maxChars must be positive")
	}
	n := utf8.RuneCountInString(text)
	return (n + maxChars - 1) / maxChars
}
