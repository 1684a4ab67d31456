package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	cfgPkg "github.com/xhad/lens/pkg/config"
	"github.com/xhad/lens/pkg/reader"
	"golang.org/x/time/rate"
)

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var withAllLinks bool
	var rateLimit float64

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: readurl [flags] <url>...")
		fmt.Fprintln(os.Stderr, "Fetches each page through the hosted reader API and prints its")
		fmt.Fprintln(os.Stderr, "normalized content to stdout.")
		flag.PrintDefaults()
	}
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&withAllLinks, "links", false, "Request a summary of all links on the page")
	flag.Float64Var(&rateLimit, "rate-limit", 1.0, "Requests per second when reading multiple URLs")
	flag.Parse()

	urls := flag.Args()
	if len(urls) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := cfgPkg.LoadConfig(configPath)
	if err != nil {
		return err
	}

	client := reader.NewClient(reader.Config{
		Endpoint: cfg.Reader.Endpoint,
		APIKey:   cfg.Reader.APIKey,
		Timeout:  time.Duration(cfg.Reader.TimeoutSeconds) * time.Second,
	})

	limiter := rate.NewLimiter(rate.Limit(rateLimit), 1)
	ctx := context.Background()

	for _, url := range urls {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		resp, err := client.Read(ctx, url, withAllLinks)
		if err != nil {
			return err
		}

		if len(urls) > 1 {
			color.New(color.FgCyan).Fprintf(os.Stderr, "--- %s ---\n", resp.Data.URL)
		}
		fmt.Println(resp.Data.Content)

		if withAllLinks && len(resp.Data.Links) > 0 {
			fmt.Println()
			for text, href := range resp.Data.Links {
				fmt.Printf("[%s] %s\n", text, href)
			}
		}
	}

	return nil
}
