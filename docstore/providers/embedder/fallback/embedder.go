package fallback

import (
	"context"
	"crypto/sha256"
	"log/slog"

	"github.com/reportsext/agent/docstore/providers/embedder"
)

// fallbackEmbedder wraps a primary embedder and substitutes a deterministic
// hash-derived vector whenever the primary is unavailable. The substitute is
// semantically meaningless but stable forever, so placeholder embeddings
// written during an outage keep matching later fallback-embedded queries.
// With a nil primary it is the hash embedder itself, which makes it useful
// in tests and offline runs.
type fallbackEmbedder struct {
	options embedder.Options
	primary embedder.Embedder
}

func (e *fallbackEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e.primary != nil {
		vec, err := e.primary.Embed(ctx, text)
		if err == nil && len(vec) == e.options.Dimensions {
			return vec, nil
		}
		if err != nil {
			slog.WarnContext(ctx, "primary embedder failed, using hash fallback", "error", err)
		} else {
			slog.WarnContext(ctx, "primary embedder returned wrong dimensionality, using hash fallback", "got", len(vec), "want", e.options.Dimensions)
		}
	}

	return HashVector(text, e.options.Dimensions), nil
}

func (e *fallbackEmbedder) Dimensions() int {
	return e.options.Dimensions
}

// HashVector expands a SHA-256 chain over the text into exactly dims floats
// in [0, 1]. Pure function of the input: same text, same vector, every time.
func HashVector(text string, dims int) []float32 {
	vec := make([]float32, 0, dims)

	block := sha256.Sum256([]byte(text))
	for len(vec) < dims {
		for _, b := range block[:] {
			vec = append(vec, float32(b)/255.0)
			if len(vec) == dims {
				break
			}
		}
		block = sha256.Sum256(block[:])
	}

	return vec
}

func NewEmbedder(primary embedder.Embedder, opts ...embedder.Option) embedder.Embedder {
	options := embedder.NewOptions(opts...)

	if primary != nil {
		options.Dimensions = primary.Dimensions()
	}

	return &fallbackEmbedder{
		options: options,
		primary: primary,
	}
}
