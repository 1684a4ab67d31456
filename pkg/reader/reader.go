package reader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xhad/lens/internal/logger"
	"github.com/xhad/lens/internal/models"
)

const defaultEndpoint = "https://r.jina.ai/"

var (
	// ErrInvalidInput is returned before any network call when the url
	// argument is unusable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidResponse is returned when the API envelope lacks the
	// expected data field.
	ErrInvalidResponse = errors.New("invalid response")
)

// Config carries everything the reader needs; there is no process-wide
// secret lookup.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client wraps the hosted read-URL API, which normalizes a page into
// structured text and metadata.
type Client struct {
	config Config
	client *http.Client
}

func NewClient(config Config) *Client {
	if config.Endpoint == "" {
		config.Endpoint = defaultEndpoint
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Read fetches the normalized content of a page. The call is atomic: any
// transport failure, non-2xx status, or malformed body fails the whole
// operation with no retry.
func (c *Client) Read(ctx context.Context, url string, withAllLinks bool) (*models.ReadResponse, error) {
	log := logger.Get()

	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: url is empty", ErrInvalidInput)
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("%w: url must start with http:// or https://", ErrInvalidInput)
	}

	body, err := json.Marshal(map[string]string{"url": url})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Retain-Images", "none")
	req.Header.Set("X-Md-Link-Style", "discarded")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	if withAllLinks {
		req.Header.Set("X-With-Links-Summary", "all")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("url", url).Error("read request failed")
		return nil, fmt.Errorf("read request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("read request returned status %d for %s", resp.StatusCode, url)
		log.WithField("url", url).WithField("status", resp.StatusCode).Error("read request failed")
		return nil, err
	}

	var envelope models.ReadResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.WithError(err).WithField("url", url).Error("failed to decode read response")
		return nil, fmt.Errorf("failed to decode read response: %w", err)
	}

	if envelope.Data == nil {
		log.WithField("url", url).Error("read response is missing data")
		return nil, fmt.Errorf("%w: missing data field", ErrInvalidResponse)
	}

	log.WithFields(logrus.Fields{
		"title":  envelope.Data.Title,
		"url":    envelope.Data.URL,
		"tokens": envelope.Data.Usage.Tokens,
	}).Info("read url")

	return &envelope, nil
}
