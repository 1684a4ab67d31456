package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ReaderConfig struct {
	Endpoint       string `yaml:"endpoint"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type VizConfig struct {
	Port         int    `yaml:"port"`
	Model        string `yaml:"model"`
	MaxLabelLen  int    `yaml:"max_label_len"`
	TemplatePath string `yaml:"template_path"`
}

type EmbedderConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type Config struct {
	Reader   ReaderConfig   `yaml:"reader"`
	Viz      VizConfig      `yaml:"viz"`
	Embedder EmbedderConfig `yaml:"embedder"`
}

// LoadConfig reads the config file, merges environment variables over it,
// and fills in defaults. An empty path falls back to the usual locations;
// no file at all is not an error.
func LoadConfig(path string) (*Config, error) {
	// Pick up a local .env before consulting the environment
	_ = godotenv.Load()

	if path == "" {
		locations := []string{
			"lens.yaml",
			"lens.yml",
			filepath.Join(os.Getenv("HOME"), ".config/lens/config.yaml"),
			"/etc/lens/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	config := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %v", err)
		}
	}

	mergeWithEnv(config)
	applyDefaults(config)

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Reader.Endpoint == "" {
		config.Reader.Endpoint = "https://r.jina.ai/"
	}
	if config.Reader.TimeoutSeconds == 0 {
		config.Reader.TimeoutSeconds = 60
	}

	if config.Viz.Port == 0 {
		config.Viz.Port = 3000
	}
	if config.Viz.Model == "" {
		config.Viz.Model = "jina-embeddings-v3"
	}
	if config.Viz.MaxLabelLen == 0 {
		config.Viz.MaxLabelLen = 32
	}

	if config.Embedder.BaseURL == "" {
		config.Embedder.BaseURL = "http://localhost:11434"
	}
	if config.Embedder.Model == "" {
		config.Embedder.Model = "nomic-embed-text:latest"
	}
}

func mergeWithEnv(config *Config) {
	if key := os.Getenv("JINA_API_KEY"); key != "" {
		config.Reader.APIKey = key
	}
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		config.Embedder.BaseURL = baseURL
	}
	if port := os.Getenv("LENS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Viz.Port = p
		}
	}
}
