// ABOUTME: Chunker splits document text into overlapping bounded segments
// ABOUTME: Separator-cascade atomization with a greedy size-bounded packing pass
package core

import (
	"strings"

	"studypilot/internal/models"
)

// Default chunking parameters.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// separators ordered coarse to fine. Atomization applies every level, so
// the atom sequence depends only on the text, never on the chunk size;
// packing stays monotone in size because of that.
var separators = []string{"\n\n", "\n", ". ", " "}

// Chunker splits text into chunks of at most Size bytes, each prefixed with
// up to Overlap bytes copied from the tail of its predecessor.
type Chunker struct {
	Size    int
	Overlap int
}

// NewChunker creates a Chunker. Non-positive size or negative overlap fall
// back to the defaults.
func NewChunker(size, overlap int) *Chunker {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = DefaultChunkOverlap
	}
	return &Chunker{Size: size, Overlap: overlap}
}

// Split divides text into ordered chunks. Empty input yields no chunks;
// input at or under Size yields exactly one. Separators stay attached to
// the segment they terminate, so concatenating every chunk's text minus
// its Overlap prefix reproduces the input byte for byte. A larger Size
// never produces more chunks than a smaller one.
func (c *Chunker) Split(text string) []models.Chunk {
	if text == "" {
		return nil
	}

	segments := c.pack(atomize(text))

	chunks := make([]models.Chunk, 0, len(segments))
	for i, seg := range segments {
		lead := ""
		if i > 0 && c.Overlap > 0 {
			prev := segments[i-1]
			n := c.Overlap
			if n > len(prev) {
				n = len(prev)
			}
			lead = prev[len(prev)-n:]
		}
		chunks = append(chunks, models.Chunk{
			Index:   i,
			Text:    lead + seg,
			Overlap: len(lead),
		})
	}
	return chunks
}

// atomize breaks text into its finest pieces by applying every separator
// level in turn, keeping each separator attached to the piece it ends.
// Concatenating the atoms reproduces the input exactly.
func atomize(text string) []string {
	atoms := []string{text}
	for _, sep := range separators {
		next := make([]string, 0, len(atoms))
		for _, a := range atoms {
			next = append(next, splitAfter(a, sep)...)
		}
		atoms = next
	}
	return atoms
}

// splitAfter splits text after each occurrence of sep, retaining sep.
func splitAfter(text, sep string) []string {
	var parts []string
	for {
		i := strings.Index(text, sep)
		if i < 0 {
			break
		}
		parts = append(parts, text[:i+len(sep)])
		text = text[i+len(sep):]
	}
	if text != "" {
		parts = append(parts, text)
	}
	if parts == nil {
		parts = []string{""}
	}
	return parts
}

// pack greedily fills segments of at most Size bytes from the atom stream.
// An atom that cannot join a non-empty segment closes it; an atom longer
// than Size is cut at raw Size boundaries, but only from an empty segment.
// This single forward pass over a size-independent atom sequence keeps the
// segment count nonincreasing as Size grows.
func (c *Chunker) pack(atoms []string) []string {
	var segments []string
	var buf strings.Builder
	for _, a := range atoms {
		if buf.Len() > 0 && buf.Len()+len(a) > c.Size {
			segments = append(segments, buf.String())
			buf.Reset()
		}
		for len(a) > c.Size {
			segments = append(segments, a[:c.Size])
			a = a[c.Size:]
		}
		buf.WriteString(a)
	}
	if buf.Len() > 0 {
		segments = append(segments, buf.String())
	}
	return segments
}
