package storage

import (
	"context"
	"path"
	"strings"

	"storyboard/pkg/datauri"
)

// Store persists generated storyboard frames.
type Store interface {
	Save(ctx context.Context, name string, img *datauri.DataURI) (string, error)
	List(ctx context.Context) ([]string, error)
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".heic": true,
}

func isImage(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}

// fileName strips directory parts from name and appends the image extension.
func fileName(name string, img *datauri.DataURI) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "frame"
	}
	return base + img.Extension()
}
