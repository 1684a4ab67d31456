package embed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xhad/lens/internal/models"
)

// WriteRecords embeds each chunk and writes one NDJSON record per line, in
// chunk order, in the format the ingestion side consumes. onProgress, when
// set, is called after each embedded chunk.
func WriteRecords(ctx context.Context, w io.Writer, chunks []string, embedder Embedder, onProgress func(done int)) error {
	enc := json.NewEncoder(w)

	for i, chunk := range chunks {
		vectors, err := embedder.CreateEmbedding(ctx, []string{chunk})
		if err != nil {
			return fmt.Errorf("failed to embed chunk %d: %w", i+1, err)
		}
		if len(vectors) == 0 {
			return fmt.Errorf("embedder returned no vector for chunk %d", i+1)
		}

		embedding := make([]float64, len(vectors[0]))
		for j, v := range vectors[0] {
			embedding[j] = float64(v)
		}

		if err := enc.Encode(models.Record{Embedding: embedding, Chunk: chunk}); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}

		if onProgress != nil {
			onProgress(i + 1)
		}
	}

	return nil
}
