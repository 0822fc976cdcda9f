package util

import (
	"errors"
	"strings"
)

const maxFileNameLen = 255

// SanitizeFileName removes path separators and rejects traversal patterns
// and oversized names before a name reaches the object store.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" || len(s) > maxFileNameLen {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
