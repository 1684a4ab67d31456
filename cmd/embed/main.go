package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	cfgPkg "github.com/xhad/lens/pkg/config"
	"github.com/xhad/lens/pkg/embed"
)

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("chunks"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run() error {
	var configPath, inputPath, outputPath, model, baseURL string

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&inputPath, "input", "", "Text file with one chunk per line")
	flag.StringVar(&outputPath, "output", "embeddings.ndjson", "NDJSON output file")
	flag.StringVar(&model, "model", "", "Embedding model to use")
	flag.StringVar(&baseURL, "ollama-url", os.Getenv("OLLAMA_BASE_URL"), "Ollama server URL")
	flag.Parse()

	if inputPath == "" {
		return fmt.Errorf("-input is required")
	}

	cfg, err := cfgPkg.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if model != "" {
		cfg.Embedder.Model = model
	}
	if baseURL != "" {
		cfg.Embedder.BaseURL = baseURL
	}

	chunks, err := readChunks(inputPath)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return fmt.Errorf("no chunks found in %s", inputPath)
	}

	embedder, err := embed.NewWithConfig(embed.Config{
		Model:   cfg.Embedder.Model,
		BaseURL: cfg.Embedder.BaseURL,
	})
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer out.Close()

	bar := getProgressBar(len(chunks), "🧮 Embedding chunks...")
	err = embed.WriteRecords(context.Background(), out, chunks, embedder, func(done int) {
		bar.Set(done)
	})
	bar.Finish()
	if err != nil {
		return err
	}

	color.Green("\n✓ Wrote %d records to %s\n", len(chunks), outputPath)
	return nil
}

func readChunks(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	var chunks []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			chunks = append(chunks, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return chunks, nil
}
