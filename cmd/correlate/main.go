package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	cfgPkg "github.com/xhad/lens/pkg/config"
	"github.com/xhad/lens/pkg/ingest"
	"github.com/xhad/lens/pkg/similarity"
	"github.com/xhad/lens/pkg/viz"
	"github.com/xhad/lens/server"
)

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: correlate [flags] <file1> [file2]")
	fmt.Fprintln(os.Stderr, "Computes the pairwise cosine similarity matrix between two NDJSON")
	fmt.Fprintln(os.Stderr, "embedding files (or one file against itself) and serves it as a heatmap.")
	flag.PrintDefaults()
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run() error {
	var configPath, templatePath, model string
	var port int

	flag.Usage = usage
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&templatePath, "template", "", "Path to a page template overriding the built-in one")
	flag.StringVar(&model, "model", "", "Embedding model identifier shown in the visualization")
	flag.IntVar(&port, "port", 0, "Port to serve the visualization on (default 3000)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := cfgPkg.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Viz.Port = port
	}
	if model != "" {
		cfg.Viz.Model = model
	}
	if templatePath != "" {
		cfg.Viz.TemplatePath = templatePath
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("invalid configuration")
	}

	file1 := args[0]
	file2 := file1
	if len(args) == 2 {
		file2 = args[1]
	}

	spinner := getSpinner("📄 Loading embeddings...")
	embeddings1, chunks1, err := ingest.LoadEmbeddings(file1)
	if err != nil {
		spinner.Finish()
		return err
	}

	embeddings2, chunks2 := embeddings1, chunks1
	if file2 != file1 {
		embeddings2, chunks2, err = ingest.LoadEmbeddings(file2)
		if err != nil {
			spinner.Finish()
			return err
		}
	}
	spinner.Finish()
	color.Green("\n✓ Loaded %d × %d embeddings\n", len(embeddings1), len(embeddings2))

	matrix := similarity.Matrix(embeddings1, embeddings2)

	payload := viz.BuildPayload(viz.PayloadConfig{
		Matrix:      matrix,
		RowChunks:   chunks1,
		ColChunks:   chunks2,
		File1:       file1,
		File2:       file2,
		Model:       cfg.Viz.Model,
		MaxLabelLen: cfg.Viz.MaxLabelLen,
	})

	template := viz.DefaultTemplate()
	if cfg.Viz.TemplatePath != "" {
		template, err = os.ReadFile(cfg.Viz.TemplatePath)
		if err != nil {
			return fmt.Errorf("failed to read template: %v", err)
		}
	}

	color.Cyan("Serving visualization at http://localhost:%d\n", cfg.Viz.Port)

	srv := server.New(server.Config{
		Port:     cfg.Viz.Port,
		Template: template,
		Payload:  payload,
	})
	return srv.Start()
}
