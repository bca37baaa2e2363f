package hf

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the question-answering inference client.
type Config struct {
	APIKey  string        // if empty, falls back to env QA_API_KEY
	BaseURL string        // e.g. http://localhost:8090 for a local TEI/pipeline server
	Model   string        // e.g. "deepset/roberta-base-squad2"
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("QA_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8090"
	}
	if cfg.Model == "" {
		cfg.Model = "deepset/roberta-base-squad2"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
