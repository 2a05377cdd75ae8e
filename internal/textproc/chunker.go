package textproc

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"quizcraft/internal/domain"
)

// DefaultChunkSize is the target chunk length in bytes for large inputs.
const DefaultChunkSize = 10000

// SplitChunks splits text into chunks of at most size bytes, preferring
// paragraph boundaries, then sentence boundaries, then word boundaries,
// and only slicing runs of unbroken characters as a last resort. Chunk
// order follows source order and boundary markers are never split
// mid-token.
func SplitChunks(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if len(text) <= size {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	var chunks []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			chunks = append(chunks, b.String())
			b.Reset()
		}
	}

	appendPiece := func(piece, sep string) {
		if b.Len() > 0 && b.Len()+len(sep)+len(piece) > size {
			flush()
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(piece)
	}

	for _, para := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		if len(para) <= size {
			appendPiece(para, "\n\n")
			continue
		}
		// Paragraph too large: fall back to sentences.
		for _, sent := range splitSentences(para) {
			if len(sent) <= size {
				appendPiece(sent, " ")
				continue
			}
			// Sentence too large: fall back to words.
			for _, word := range strings.Fields(sent) {
				if len(word) <= size {
					appendPiece(word, " ")
					continue
				}
				// A single run longer than the chunk size; slice it on
				// rune boundaries so multi-byte input stays valid UTF-8.
				for len(word) > size {
					end := size
					for end > 0 && !utf8.RuneStart(word[end]) {
						end--
					}
					if end == 0 {
						end = size
					}
					appendPiece(word[:end], " ")
					word = word[end:]
				}
				if len(word) > 0 {
					appendPiece(word, " ")
				}
			}
		}
	}
	flush()
	return chunks
}

// SplitSectionsChunked splits very large texts into chunks and sectionizes
// each chunk independently. Chunks share no state, so they are processed
// concurrently; section order still follows source order.
func SplitSectionsChunked(ctx context.Context, text string, size int) ([]*domain.Section, error) {
	chunks := SplitChunks(text, size)
	if len(chunks) <= 1 {
		return SplitSections(text), nil
	}

	results := make([][]*domain.Section, len(chunks))
	g, _ := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			results[i] = SplitSections(chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var sections []*domain.Section
	for _, r := range results {
		sections = append(sections, r...)
	}
	return sections, nil
}
