package storage

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// blobName returns a collision-free name that keeps the original extension.
func blobName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	return uuid.NewString() + ext
}
