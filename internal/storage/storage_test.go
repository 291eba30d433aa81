package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storyboard/pkg/datauri"
)

func TestLocalStorageSave(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "frames")
	s := NewLocalStorage(tmpDir)

	img := datauri.FromBytes("image/png", []byte("fake png data"))
	path, err := s.Save(context.Background(), "shot-01", img)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if path != filepath.Join(tmpDir, "shot-01.png") {
		t.Errorf("Save() path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "fake png data" {
		t.Errorf("saved data = %q", data)
	}
}

func TestLocalStorageSaveInvalidPayload(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	img := &datauri.DataURI{MIMEType: "image/png", Data: "%%%"}

	if _, err := s.Save(context.Background(), "bad", img); err == nil {
		t.Error("Save() should fail for an invalid payload")
	}
}

func TestLocalStorageList(t *testing.T) {
	tmpDir := t.TempDir()
	s := NewLocalStorage(tmpDir)

	for _, name := range []string{"a.png", "b.jpg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "sub.png"), 0755); err != nil {
		t.Fatal(err)
	}

	frames, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(frames) != 2 {
		t.Errorf("List() = %v, want 2 images", frames)
	}
}

func TestLocalStorageListMissingDir(t *testing.T) {
	s := NewLocalStorage("/nonexistent/dir")

	frames, err := s.List(context.Background())
	if err != nil {
		t.Errorf("List() error = %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("List() = %v, want empty", frames)
	}
}

func TestFileName(t *testing.T) {
	img := datauri.FromBytes("image/jpeg", nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "shot-1", "shot-1.jpg"},
		{"stripsDirs", "../../etc/passwd", "passwd.jpg"},
		{"windowsPath", `..\frames\shot`, "shot.jpg"},
		{"empty", "", "frame.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileName(tt.input, img); got != tt.want {
				t.Errorf("fileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
