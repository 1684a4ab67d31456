package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/xhad/lens/internal/logger"
	"github.com/xhad/lens/internal/models"
	"github.com/xhad/lens/pkg/viz"
)

// Config wires a visualization server. Payload is built once at startup and
// treated as read-only, so concurrent requests need no locking.
type Config struct {
	Port     int
	Template []byte
	Payload  *models.VisualizationPayload
}

type Server struct {
	config Config
}

func New(config Config) *Server {
	if config.Port == 0 {
		config.Port = 3000
	}
	if len(config.Template) == 0 {
		config.Template = viz.DefaultTemplate()
	}

	return &Server{config: config}
}

// Router builds the one-route handler. The page is re-rendered from the
// in-memory payload on every request.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		page, err := viz.RenderPage(s.config.Template, s.config.Payload)
		if err != nil {
			logger.Get().WithError(err).Error("failed to render page")
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// Start blocks serving the visualization until the process is terminated.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	logger.Get().Infof("Serving visualization on http://localhost:%d", s.config.Port)
	return http.ListenAndServe(addr, s.Router())
}
