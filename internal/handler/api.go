package handler

import (
	"github.com/folio/internal/logger"
	"github.com/folio/internal/service"
	"github.com/folio/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db             *gorm.DB
	pages          *service.PageService
	posts          *service.PostService
	media          *service.MediaLibrary
	log            *logger.Logger
	maxUploadBytes int64
}

const defaultMaxUploadBytes = 10 * 1024 * 1024

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, blobs storage.BlobStore, log *logger.Logger, maxUploadBytes int64) *API {
	if log == nil {
		log = logger.Nop()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	pages := service.NewPageService(gdb)
	posts := service.NewPostService(gdb)
	owners := service.NewContentOwners(pages, posts)

	return &API{
		db:             gdb,
		pages:          pages,
		posts:          posts,
		media:          service.NewMediaLibrary(service.NewMediaService(gdb), owners, blobs, log),
		log:            log,
		maxUploadBytes: maxUploadBytes,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
