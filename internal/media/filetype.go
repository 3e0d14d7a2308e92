package media

import (
	"mime"
	"path/filepath"
	"strings"
)

// FileType classifies an input as video or audio.
type FileType string

const (
	FileTypeVideo FileType = "video"
	FileTypeAudio FileType = "audio"
)

var (
	videoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".webm", ".flv", ".m4v"}
	audioExtensions = []string{".mp3", ".wav", ".ogg", ".m4a", ".flac", ".aac"}
)

// DetectFileType classifies a file by extension, falling back to a
// MIME-type lookup. Unclassifiable inputs are treated as video so the
// audio-extraction path still runs.
func DetectFileType(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))

	for _, e := range videoExtensions {
		if ext == e {
			return FileTypeVideo
		}
	}
	for _, e := range audioExtensions {
		if ext == e {
			return FileTypeAudio
		}
	}

	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		if strings.HasPrefix(mimeType, "video/") {
			return FileTypeVideo
		}
		if strings.HasPrefix(mimeType, "audio/") {
			return FileTypeAudio
		}
	}

	return FileTypeVideo
}

// IsMediaFile reports whether the path carries a supported media extension.
// Used by the watcher to filter directory events.
func IsMediaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range videoExtensions {
		if ext == e {
			return true
		}
	}
	for _, e := range audioExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
