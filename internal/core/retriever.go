// ABOUTME: Retrieval assembler turns a question into a ranked context string
// ABOUTME: Embeds the question, queries the index, joins best matches first
package core

import (
	"context"
	"errors"
	"strings"
)

// DefaultContextChunks is how many chunks go into an answer prompt.
const DefaultContextChunks = 3

// AssembleContext embeds the question with the same gateway used at build
// time, fetches the top k chunks, and concatenates their text in ascending
// distance order separated by newlines. The best match comes first on
// purpose: downstream prompts weight earlier context more heavily.
func AssembleContext(ctx context.Context, ix *Index, embedder Embedder, question string, k int) (string, error) {
	vectors, err := embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		return "", &EmbeddingError{Stage: "query", Err: err}
	}
	if len(vectors) == 0 {
		return "", &EmbeddingError{Stage: "query", Err: errors.New("no vector returned for question")}
	}

	results := ix.Query(vectors[0], k)

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Chunk.Text
	}
	return strings.Join(texts, "\n"), nil
}
