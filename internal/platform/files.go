package platform

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Filename limits
const (
	MaxFilenameRunes = 80
	FallbackFilename = "video"
)

// unsafeFilenameChars matches everything except word characters
// (letters and digits in any script, underscore), whitespace, hyphens
// and dots.
var unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.]`)

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, DefaultDirPermissions); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}
	return nil
}

// Exists reports whether path exists and is a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// SafeFilename derives a download filename from a media title. Anything
// matching unsafeFilenameChars is stripped, the result is truncated to
// MaxFilenameRunes and trimmed; an empty result falls back to
// FallbackFilename. Interior spacing is preserved.
func SafeFilename(title string) string {
	name := unsafeFilenameChars.ReplaceAllString(title, "")

	runes := []rune(name)
	if len(runes) > MaxFilenameRunes {
		name = string(runes[:MaxFilenameRunes])
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return FallbackFilename
	}
	return name
}
