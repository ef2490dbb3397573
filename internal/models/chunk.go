// ABOUTME: Chunk represents a bounded slice of document text for embedding
// ABOUTME: Defines Chunk and ScoredChunk used by the per-request similarity index
package models

// Chunk is a contiguous piece of document text. Overlap records how many
// leading bytes were copied from the tail of the previous chunk, so callers
// can reconstruct the original text by skipping them.
type Chunk struct {
	Index   int       `json:"index"`
	Text    string    `json:"text"`
	Overlap int       `json:"overlap"`
	Vector  []float64 `json:"-"`
}

// ScoredChunk is a similarity search result. Lower distance means a closer
// match. Produced only as a query result, never persisted.
type ScoredChunk struct {
	Chunk    Chunk   `json:"chunk"`
	Distance float64 `json:"distance"`
}
