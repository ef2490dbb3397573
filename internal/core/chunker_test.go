// ABOUTME: Tests for the chunker
// ABOUTME: Covers reconstruction, size bounds, overlap, monotonicity, and degenerate inputs
package core

import (
	"strings"
	"testing"
)

func reconstruct(chunker *Chunker, text string) string {
	var b strings.Builder
	for _, ch := range chunker.Split(text) {
		b.WriteString(ch.Text[ch.Overlap:])
	}
	return b.String()
}

func TestSplitEmptyInput(t *testing.T) {
	c := NewChunker(100, 20)
	if got := c.Split(""); got != nil {
		t.Errorf("expected nil for empty input, got %d chunks", len(got))
	}
}

func TestSplitSmallInputSingleChunk(t *testing.T) {
	c := NewChunker(100, 20)
	text := "short document that fits in one chunk"

	chunks := c.Split(text)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != text {
		t.Errorf("chunk text = %q, want %q", chunks[0].Text, text)
	}
	if chunks[0].Overlap != 0 {
		t.Errorf("first chunk overlap = %d, want 0", chunks[0].Overlap)
	}
}

func TestSplitReconstruction(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"paragraphs", "First paragraph with some content.\n\nSecond paragraph here.\n\nThird one closes the document."},
		{"lines", "line one\nline two\nline three\nline four\nline five\nline six\nline seven"},
		{"sentences", "One sentence. Another sentence follows. Then a third. And finally a fourth sentence to finish."},
		{"words only", strings.Repeat("word ", 50)},
		{"unbroken run", strings.Repeat("x", 137)},
		{"mixed", "Intro.\n\n" + strings.Repeat("body text with words. ", 10) + "\nclosing line"},
		{"trailing separator", "ends with blank lines\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunker(40, 10)
			if got := reconstruct(c, tt.text); got != tt.text {
				t.Errorf("reconstruction mismatch:\n got %q\nwant %q", got, tt.text)
			}
		})
	}
}

func TestSplitSizeBound(t *testing.T) {
	c := NewChunker(40, 10)
	text := strings.Repeat("some words in a sentence. ", 20)

	for _, ch := range c.Split(text) {
		if len(ch.Text) > c.Size+c.Overlap {
			t.Errorf("chunk %d is %d bytes, exceeds limit %d", ch.Index, len(ch.Text), c.Size+c.Overlap)
		}
	}
}

func TestSplitOverlapIsPredecessorTail(t *testing.T) {
	c := NewChunker(30, 8)
	text := strings.Repeat("alpha beta gamma delta. ", 8)

	chunks := c.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i := 1; i < len(chunks); i++ {
		prevBody := chunks[i-1].Text[chunks[i-1].Overlap:]
		lead := chunks[i].Text[:chunks[i].Overlap]
		if !strings.HasSuffix(prevBody, lead) {
			t.Errorf("chunk %d overlap %q is not the tail of its predecessor %q", i, lead, prevBody)
		}
		if chunks[i].Overlap > c.Overlap {
			t.Errorf("chunk %d overlap = %d, exceeds configured %d", i, chunks[i].Overlap, c.Overlap)
		}
	}
}

func TestSplitIndicesAreOrdinal(t *testing.T) {
	c := NewChunker(25, 5)
	chunks := c.Split(strings.Repeat("words go here. ", 12))

	for i, ch := range chunks {
		if ch.Index != i {
			t.Errorf("chunk at position %d has index %d", i, ch.Index)
		}
	}
}

func TestSplitUnbrokenTokenHardCut(t *testing.T) {
	c := NewChunker(10, 0)
	text := strings.Repeat("a", 35)

	chunks := c.Split(text)
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks for 35 bytes at size 10, got %d", len(chunks))
	}
	for _, ch := range chunks {
		if len(ch.Text) > 10 {
			t.Errorf("chunk %d is %d bytes, want <= 10", ch.Index, len(ch.Text))
		}
	}
	if got := reconstruct(c, text); got != text {
		t.Errorf("hard cut reconstruction mismatch")
	}
}

func TestSplitChunkCountMonotoneInSize(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"paragraphs", "Intro paragraph with a few words.\n\nSecond paragraph, somewhat longer than the first one.\n\nThird paragraph wraps the document up."},
		{"sentences", strings.Repeat("A sentence of modest length sits here. ", 12)},
		{"words", strings.Repeat("lorem ipsum dolor sit amet ", 15)},
		{"mixed", "Heading\n" + strings.Repeat("body text follows the heading. ", 8) + "\n\nfinal note"},
		{"unbroken run", strings.Repeat("z", 211)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := len(NewChunker(20, 5).Split(tt.text))
			for size := 21; size <= 250; size++ {
				n := len(NewChunker(size, 5).Split(tt.text))
				if n > prev {
					t.Fatalf("size %d produced %d chunks but size %d produced %d", size, n, size-1, prev)
				}
				prev = n
			}
		})
	}
}

func TestNewChunkerDefaults(t *testing.T) {
	c := NewChunker(0, -1)
	if c.Size != DefaultChunkSize {
		t.Errorf("Size = %d, want %d", c.Size, DefaultChunkSize)
	}
	if c.Overlap != DefaultChunkOverlap {
		t.Errorf("Overlap = %d, want %d", c.Overlap, DefaultChunkOverlap)
	}
}
