package downloader

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// userAgent mirrors a desktop browser; some hosts reject default Go clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Error marks a failed remote fetch; fatal to the pipeline run.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to download file from URL: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fetch downloads rawURL into destDir, streaming the body to disk.
// The filename comes from the URL path; when the path has no usable
// basename the extension is sniffed from a HEAD request's Content-Type.
func (d *implDownloader) Fetch(ctx context.Context, rawURL, destDir string) (string, error) {
	fileName, err := d.fileNameFor(ctx, rawURL)
	if err != nil {
		return "", &Error{Err: err}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", &Error{Err: fmt.Errorf("create destination dir: %w", err)}
	}
	destPath := filepath.Join(destDir, fileName)

	d.logger.Info(ctx, "Downloading %s -> %s", rawURL, destPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &Error{Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	out, err := os.Create(destPath)
	if err != nil {
		return "", &Error{Err: err}
	}

	written, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(destPath)
		return "", &Error{Err: fmt.Errorf("write file: %w", err)}
	}

	d.logger.Info(ctx, "Downloaded %d bytes to %s", written, destPath)
	return destPath, nil
}

// fileNameFor derives the local filename for a URL. URLs without a
// basename or extension get a generated name with an extension sniffed
// from the Content-Type header.
func (d *implDownloader) fileNameFor(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}

	fileName := path.Base(parsed.Path)
	if fileName != "" && fileName != "/" && fileName != "." && strings.Contains(fileName, ".") {
		return fileName, nil
	}

	fileName = "downloaded_file_" + uuid.NewString()[:8]
	return fileName + d.sniffExtension(ctx, rawURL), nil
}

// mediaExtensions pins extensions for common media types; the system
// MIME table is consulted only for anything else.
var mediaExtensions = map[string]string{
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
	"video/x-msvideo": ".avi",
	"audio/mpeg":      ".mp3",
	"audio/mp4":       ".m4a",
	"audio/wav":       ".wav",
	"audio/x-wav":     ".wav",
	"audio/ogg":       ".ogg",
	"audio/flac":      ".flac",
	"audio/aac":       ".aac",
}

func (d *implDownloader) sniffExtension(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return ".mp4"
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return ".mp4"
	}
	resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		return ".mp4"
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}

	if ext, ok := mediaExtensions[contentType]; ok {
		return ext
	}

	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ".mp4"
	}
	return exts[0]
}
