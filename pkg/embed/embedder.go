package embed

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/ollama"
)

// Embedder turns text chunks into embedding vectors. Satisfied by the
// Ollama-backed implementation below and by fakes in tests.
type Embedder interface {
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}

type Config struct {
	Model   string
	BaseURL string // Ollama server URL
}

// OllamaEmbedder generates embeddings through a local Ollama server.
type OllamaEmbedder struct {
	config Config
	llm    *ollama.LLM
}

func NewWithConfig(config Config) (*OllamaEmbedder, error) {
	if config.Model == "" {
		config.Model = "nomic-embed-text:latest"
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:11434"
	}

	llm, err := ollama.New(
		ollama.WithModel(config.Model),
		ollama.WithServerURL(config.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedder: %w", err)
	}

	return &OllamaEmbedder{
		config: config,
		llm:    llm,
	}, nil
}

func (e *OllamaEmbedder) CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error) {
	return e.llm.CreateEmbedding(ctx, texts)
}
