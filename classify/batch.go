package classify

import (
	"unicode/utf8"

	"github.com/guillermop2002/Patch-Boe/core"
)

// TruncationMarker is appended to document content cut at the length cap.
const TruncationMarker = "... [CONTENIDO RECORTADO]"

// reducedChunkLen is the fallback chunk length when a rendered prompt
// exceeds the token ceiling.
const reducedChunkLen = 2

// Batcher renders the classification prompt for document chunks,
// enforcing a token budget.
type Batcher struct {
	// MaxContentLength caps each document's content in characters.
	MaxContentLength int

	// TokenCeiling bounds the estimated token count of a rendered prompt.
	TokenCeiling int
}

// Chunks splits documents into contiguous chunks of at most size items,
// preserving the original order.
func Chunks(docs []core.RawDocument, size int) [][]core.RawDocument {
	if size < 1 {
		size = 1
	}
	chunks := make([][]core.RawDocument, 0, (len(docs)+size-1)/size)
	for start := 0; start < len(docs); start += size {
		end := start + size
		if end > len(docs) {
			end = len(docs)
		}
		chunks = append(chunks, docs[start:end])
	}
	return chunks
}

// EstimateTokens approximates the token count of text with the fixed
// four-characters-per-token heuristic.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// Prompt renders the classification prompt for a chunk. When the
// rendered prompt exceeds the token ceiling the chunk is shrunk to its
// first two documents and re-rendered; if it is still over budget the
// chunk must be abandoned and ErrPromptTooLarge is returned.
// The returned slice holds the documents actually embedded in the prompt.
func (b *Batcher) Prompt(chunk []core.RawDocument) (string, []core.RawDocument, error) {
	prompt := b.render(chunk)
	if EstimateTokens(prompt) <= b.TokenCeiling {
		return prompt, chunk, nil
	}

	if len(chunk) > reducedChunkLen {
		reduced := chunk[:reducedChunkLen]
		prompt = b.render(reduced)
		if EstimateTokens(prompt) <= b.TokenCeiling {
			return prompt, reduced, nil
		}
	}

	return "", nil, ErrPromptTooLarge
}

func (b *Batcher) truncate(content string) string {
	if b.MaxContentLength <= 0 || len(content) <= b.MaxContentLength {
		return content
	}
	cut := b.MaxContentLength
	// Back off to a rune boundary so the cut never splits a character.
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + TruncationMarker
}
