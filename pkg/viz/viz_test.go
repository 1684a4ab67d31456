package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"short text unchanged", "hello world", "hello world"},
		{"image url", "https://example.com/x.png", "🖼️"},
		{"data uri", "data:image/png;base64,AAAA", "🖼️"},
		{"local image path", "assets/photo.jpg", "🖼️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateLabel(tt.text, DefaultMaxLabelLen))
		})
	}
}

func TestTruncateLabelLongText(t *testing.T) {
	text := strings.Repeat("a", 40)

	got := TruncateLabel(text, 32)
	assert.Equal(t, strings.Repeat("a", 32)+"...", got)
}

func TestTruncateLabelExactLength(t *testing.T) {
	text := strings.Repeat("b", 32)
	assert.Equal(t, text, TruncateLabel(text, 32))
}

func TestBuildPayload(t *testing.T) {
	matrix := [][]float64{{1, 0}, {0, 1}}
	chunks := []string{strings.Repeat("x", 40), "https://example.com/pic.png"}

	p := BuildPayload(PayloadConfig{
		Matrix:    matrix,
		RowChunks: chunks,
		ColChunks: chunks,
		File1:     "a.ndjson",
		File2:     "a.ndjson",
		Model:     "jina-embeddings-v3",
	})

	assert.Equal(t, matrix, p.Matrix)
	assert.Equal(t, strings.Repeat("x", 32)+"...", p.RowLabels[0])
	assert.Equal(t, "🖼️", p.RowLabels[1])
	assert.Equal(t, chunks, p.RowLabelsFull)
	assert.Equal(t, chunks, p.ColLabelsFull)
	assert.Equal(t, "jina-embeddings-v3", p.Model)
}

func TestRenderPage(t *testing.T) {
	p := BuildPayload(PayloadConfig{
		Matrix:    [][]float64{{1}},
		RowChunks: []string{"only chunk"},
		ColChunks: []string{"only chunk"},
		File1:     "a.ndjson",
		File2:     "a.ndjson",
	})

	page, err := RenderPage(DefaultTemplate(), p)
	require.NoError(t, err)

	assert.NotContains(t, string(page), "__DATA__")
	assert.Contains(t, string(page), `"only chunk"`)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, "Embedding Correlations", doc.Find("title").Text())

	var scriptText string
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		scriptText += sel.Text()
	})
	assert.Contains(t, scriptText, `"rowLabels":["only chunk"]`)
}

func TestRenderPageMissingToken(t *testing.T) {
	p := BuildPayload(PayloadConfig{})

	_, err := RenderPage([]byte("<html></html>"), p)
	assert.Error(t, err)
}
