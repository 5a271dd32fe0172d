package filestore

import (
	"io"
	"strings"
)

// AllowedExtensions lists the file extensions the store may create or remove.
// Anything else on disk is treated as foreign and must never be deleted.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// FileStore is the image file storage consumed by the article lifecycle
type FileStore interface {
	Store(r io.Reader, name string) error
	Exists(name string) bool
	Remove(name string) error
}

// ExtensionAllowed reports whether name ends in an allow-listed extension
func ExtensionAllowed(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
