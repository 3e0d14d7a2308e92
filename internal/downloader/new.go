package downloader

import (
	"net/http"

	"github.com/nguyentantai21042004/call-digest/internal/logger"
)

type implDownloader struct {
	client *http.Client
	logger logger.Logger
}

// New creates a Downloader using the default HTTP client.
func New(log logger.Logger) Downloader {
	return &implDownloader{
		client: http.DefaultClient,
		logger: log,
	}
}
