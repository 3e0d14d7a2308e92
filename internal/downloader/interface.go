package downloader

import "context"

// Downloader fetches a remote media file into a local directory.
type Downloader interface {
	// Fetch downloads url into destDir and returns the local file path.
	Fetch(ctx context.Context, url, destDir string) (string, error)
}
