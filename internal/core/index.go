// ABOUTME: In-memory similarity index built fresh for each request
// ABOUTME: Embeds chunks once at build time and answers top-k cosine queries
package core

import (
	"context"
	"fmt"
	"math"
	"sort"

	"studypilot/internal/models"
)

// Embedder maps texts to fixed-length vectors. One batched call per build.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
}

// Index holds embedded chunks for the lifetime of one request. It is
// read-only after BuildIndex returns and is simply dropped when the
// request completes.
type Index struct {
	chunks []models.Chunk
}

// BuildIndex embeds every chunk and returns a queryable index. If the
// embedder fails for any chunk the whole build fails: a partial index
// would silently degrade answer grounding without signaling it.
func BuildIndex(ctx context.Context, chunks []models.Chunk, embedder Embedder) (*Index, error) {
	if len(chunks) == 0 {
		return &Index{}, nil
	}

	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Text
	}

	vectors, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, &EmbeddingError{Stage: "index", Err: err}
	}
	if len(vectors) != len(chunks) {
		return nil, &EmbeddingError{
			Stage: "index",
			Err:   fmt.Errorf("expected %d vectors, got %d", len(chunks), len(vectors)),
		}
	}

	indexed := make([]models.Chunk, len(chunks))
	copy(indexed, chunks)
	for i := range indexed {
		indexed[i].Vector = vectors[i]
	}
	return &Index{chunks: indexed}, nil
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int { return len(ix.chunks) }

// Query returns up to k chunks ordered by ascending cosine distance from
// queryVector. Ties keep document order (lower chunk index wins). k is
// clamped to the number of indexed chunks.
func (ix *Index) Query(queryVector []float64, k int) []models.ScoredChunk {
	if k <= 0 || len(ix.chunks) == 0 {
		return nil
	}

	scored := make([]models.ScoredChunk, len(ix.chunks))
	for i, ch := range ix.chunks {
		scored[i] = models.ScoredChunk{
			Chunk:    ch,
			Distance: 1 - cosineSimilarity(queryVector, ch.Vector),
		}
	}

	// Stable sort preserves original chunk order among equal distances.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Distance < scored[j].Distance
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// or 0 when either vector is empty, zero, or of mismatched length.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
