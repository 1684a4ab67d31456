package embed

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/lens/pkg/ingest"
)

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) CreateEmbedding(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls++
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(f.calls), 0}
	}
	return vectors, nil
}

func TestWriteRecordsRoundTrip(t *testing.T) {
	chunks := []string{"first chunk", "second chunk", "third chunk"}

	var buf bytes.Buffer
	var progress []int
	err := WriteRecords(context.Background(), &buf, chunks, &fakeEmbedder{}, func(done int) {
		progress = append(progress, done)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, progress)

	// Output must be consumable by the ingestion scanner.
	s := ingest.NewScanner(&buf)
	var got []string
	for s.Scan() {
		rec := s.Record()
		assert.Len(t, rec.Embedding, 2)
		got = append(got, rec.Chunk)
	}
	require.NoError(t, s.Err())
	assert.Equal(t, chunks, got)
}

func TestWriteRecordsEmbedderFailure(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRecords(context.Background(), &buf, []string{"chunk"},
		&fakeEmbedder{err: errors.New("ollama down")}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk 1")
	assert.Zero(t, buf.Len())
}

func TestWriteRecordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRecords(context.Background(), &buf, nil, &fakeEmbedder{}, nil)
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}
