package config

import (
	"fmt"
	"net/url"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if c.Reader.Endpoint == "" {
		errors = append(errors, ValidationError{
			Field:   "reader.endpoint",
			Message: "reader endpoint is required",
		})
	} else if !strings.HasPrefix(c.Reader.Endpoint, "http://") &&
		!strings.HasPrefix(c.Reader.Endpoint, "https://") {
		errors = append(errors, ValidationError{
			Field:   "reader.endpoint",
			Message: "reader endpoint must be an http(s) URL",
		})
	}

	if c.Reader.TimeoutSeconds < 1 {
		errors = append(errors, ValidationError{
			Field:   "reader.timeout_seconds",
			Message: "timeout_seconds must be positive",
		})
	}

	if c.Viz.Port < 1 || c.Viz.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "viz.port",
			Message: "port must be between 1 and 65535",
		})
	}

	if c.Viz.MaxLabelLen < 1 {
		errors = append(errors, ValidationError{
			Field:   "viz.max_label_len",
			Message: "max_label_len must be positive",
		})
	}

	if c.Embedder.BaseURL != "" {
		if _, err := url.Parse(c.Embedder.BaseURL); err != nil {
			errors = append(errors, ValidationError{
				Field:   "embedder.base_url",
				Message: "invalid embedder base URL",
			})
		}
	}

	return errors
}
