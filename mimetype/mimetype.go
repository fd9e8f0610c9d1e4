package mimetype

import (
	"path/filepath"
	"strings"
)

var byExtension = map[string]string{
	".json": "application/json",
	".csv":  "text/csv; charset=utf-8",
	".txt":  "text/plain; charset=utf-8",
	".md":   "text/markdown; charset=utf-8",
}

// ForFile returns the content type devscope uploads a file with, judged by
// its name alone.
func ForFile(name string) (string, bool) {
	name = strings.ToLower(filepath.Base(name))

	if mime, ok := IsArchive(name); ok {
		return mime, true
	}

	mime, ok := byExtension[filepath.Ext(name)]
	return mime, ok
}

func IsArchive(filename string) (string, bool) {
	switch {
	case strings.HasSuffix(filename, ".tar.gz"), strings.HasSuffix(filename, ".tgz"):
		return "application/gzip", true
	case strings.HasSuffix(filename, ".zip"):
		return "application/zip", true
	case strings.HasSuffix(filename, ".gz"):
		return "application/gzip", true
	default:
		return "", false
	}
}
