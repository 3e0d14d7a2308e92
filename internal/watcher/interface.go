package watcher

import "context"

// Watcher monitors a directory for new media files to process.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one detected media file.
type Handler func(ctx context.Context, filePath string) error
