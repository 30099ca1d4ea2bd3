package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "artifacts")

	if err := EnsureDir(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := EnsureDir(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestExists(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "clip.mp4")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if !Exists(path) {
		t.Errorf("Exists(%q) = false, expected true", path)
	}
	if Exists(filepath.Join(tempDir, "missing.mp4")) {
		t.Error("Exists() = true for missing file, expected false")
	}
	if Exists(tempDir) {
		t.Error("Exists() = true for directory, expected false")
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"simple title", "simple title"},
		{"My / Video: Test!!", "My  Video Test"},
		{"Café vlog", "Café vlog"},
		{"Видео тест", "Видео тест"},
		{"日本語タイトル", "日本語タイトル"},
		{"clip 🎬", "clip"},
		{"dots.and-hyphens_ok.mp4", "dots.and-hyphens_ok.mp4"},
		{"***", "video"},
		{"", "video"},
		{"  padded  ", "padded"},
	}

	for _, test := range tests {
		result := SafeFilename(test.title)
		if result != test.expected {
			t.Errorf("SafeFilename(%q) = %q, expected %q", test.title, result, test.expected)
		}
	}
}

func TestSafeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	result := SafeFilename(long)
	if len(result) != MaxFilenameRunes {
		t.Errorf("SafeFilename() length = %d, expected %d", len(result), MaxFilenameRunes)
	}
}
