package service

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	_ "golang.org/x/image/webp"
)

// probeImageSize reads the image header from r. ok is false for non-images
// and undecodable files; callers rewind r themselves.
func probeImageSize(contentType string, r io.Reader) (width, height int, ok bool) {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return 0, 0, false
	}

	cfg, _, err := image.DecodeConfig(r)
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
