package viz

import "github.com/xhad/lens/pkg/ingest"

const (
	// DefaultMaxLabelLen is the cutoff before axis labels are truncated.
	DefaultMaxLabelLen = 32

	imagePlaceholder = "🖼️"
	truncationMarker = "..."
)

// TruncateLabel produces the short axis label for a chunk. Image references
// collapse to a placeholder glyph; text longer than maxLen is cut at maxLen
// runes and marked.
func TruncateLabel(text string, maxLen int) string {
	if ingest.IsImageRef(text) {
		return imagePlaceholder
	}

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + truncationMarker
}
