package viz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xhad/lens/internal/models"
)

//go:embed index.html
var defaultTemplate []byte

// payloadToken is the placeholder in the page template that the serialized
// payload replaces.
var payloadToken = []byte("__DATA__")

// PayloadConfig carries everything BuildPayload needs to assemble the
// visualization data object.
type PayloadConfig struct {
	Matrix      [][]float64
	RowChunks   []string
	ColChunks   []string
	File1       string
	File2       string
	Model       string
	MaxLabelLen int
}

// BuildPayload assembles the immutable data object embedded into the page:
// the similarity matrix plus truncated and full labels for both axes.
func BuildPayload(cfg PayloadConfig) *models.VisualizationPayload {
	maxLen := cfg.MaxLabelLen
	if maxLen == 0 {
		maxLen = DefaultMaxLabelLen
	}

	rowLabels := make([]string, len(cfg.RowChunks))
	for i, chunk := range cfg.RowChunks {
		rowLabels[i] = TruncateLabel(chunk, maxLen)
	}

	colLabels := make([]string, len(cfg.ColChunks))
	for i, chunk := range cfg.ColChunks {
		colLabels[i] = TruncateLabel(chunk, maxLen)
	}

	return &models.VisualizationPayload{
		Matrix:        cfg.Matrix,
		RowLabels:     rowLabels,
		ColLabels:     colLabels,
		RowLabelsFull: cfg.RowChunks,
		ColLabelsFull: cfg.ColChunks,
		File1:         cfg.File1,
		File2:         cfg.File2,
		Model:         cfg.Model,
	}
}

// DefaultTemplate returns the built-in page template.
func DefaultTemplate() []byte {
	return defaultTemplate
}

// RenderPage substitutes the JSON-serialized payload into the template's
// single placeholder token. No other templating is performed.
func RenderPage(tmpl []byte, payload *models.VisualizationPayload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize payload: %w", err)
	}

	if !bytes.Contains(tmpl, payloadToken) {
		return nil, fmt.Errorf("template is missing the %s placeholder", payloadToken)
	}

	return bytes.Replace(tmpl, payloadToken, data, 1), nil
}
