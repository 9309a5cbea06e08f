package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Object identifies stored bytes. Key is what Delete expects, URL is what
// browsers load.
type Object struct {
	Key string
	URL string
}

// BlobStore persists uploaded file bytes.
type BlobStore interface {
	Put(ctx context.Context, filename, contentType string, body io.ReadSeeker) (Object, error)
	Delete(ctx context.Context, key string) error
	Driver() string
}

// objectName builds a unique name that keeps the original extension.
func objectName(layout, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s-%s%s", now.Format(layout), uuid.New().String(), ext)
}
