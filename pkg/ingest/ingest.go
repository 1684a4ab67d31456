package ingest

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xhad/lens/internal/models"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// IsImageRef reports whether a chunk value refers to an image rather than
// literal text: an inline data URI, an http(s) URL, or a path with a known
// image extension.
func IsImageRef(chunk string) bool {
	if strings.HasPrefix(chunk, "data:image/") {
		return true
	}
	if strings.HasPrefix(chunk, "http://") || strings.HasPrefix(chunk, "https://") {
		return true
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(chunk, ext) {
			return true
		}
	}
	return false
}

// Scanner decodes an NDJSON embeddings stream one record at a time, in the
// style of bufio.Scanner: call Scan until it returns false, then check Err
// to distinguish end-of-stream from failure.
type Scanner struct {
	r    *bufio.Reader
	rec  models.Record
	line int
	err  error
	done bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Scan advances to the next record. Blank lines are skipped.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	for {
		line, err := s.r.ReadString('\n')
		if err != nil && err != io.EOF {
			s.err = err
			s.done = true
			return false
		}
		atEOF := err == io.EOF
		s.line++

		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			var rec models.Record
			if uerr := json.Unmarshal([]byte(trimmed), &rec); uerr != nil {
				s.err = fmt.Errorf("line %d: %w", s.line, uerr)
				s.done = true
				return false
			}
			s.rec = rec
			s.done = atEOF
			return true
		}

		if atEOF {
			s.done = true
			return false
		}
	}
}

// Record returns the record decoded by the last successful Scan.
func (s *Scanner) Record() models.Record {
	return s.rec
}

// Err returns the first error encountered while scanning. A nil result
// after Scan returns false means the stream was fully consumed.
func (s *Scanner) Err() error {
	return s.err
}

// LoadEmbeddings streams an NDJSON file into parallel embedding and chunk
// slices, preserving line order. Image-reference chunks pointing at local
// files are rewritten into self-contained data URIs, resolved relative to
// the input file's directory. The whole load fails on the first unreadable
// line or asset; no partial results are returned.
func LoadEmbeddings(path string) ([][]float64, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)

	var embeddings [][]float64
	var chunks []string

	scanner := NewScanner(f)
	for scanner.Scan() {
		rec := scanner.Record()

		chunk, err := resolveChunk(dir, rec.Chunk)
		if err != nil {
			return nil, nil, err
		}

		embeddings = append(embeddings, rec.Embedding)
		chunks = append(chunks, chunk)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return embeddings, chunks, nil
}

// resolveChunk rewrites a local image path into a base64 data URI. Data
// URIs, remote URLs, and plain text pass through unchanged.
func resolveChunk(dir, chunk string) (string, error) {
	if !IsImageRef(chunk) {
		return chunk, nil
	}
	if strings.HasPrefix(chunk, "data:image/") ||
		strings.HasPrefix(chunk, "http://") || strings.HasPrefix(chunk, "https://") {
		return chunk, nil
	}

	imgPath := chunk
	if !filepath.IsAbs(imgPath) {
		imgPath = filepath.Join(dir, imgPath)
	}

	data, err := os.ReadFile(imgPath)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", imgPath, err)
	}

	mime := "image/jpeg"
	if strings.HasSuffix(chunk, ".png") {
		mime = "image/png"
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
