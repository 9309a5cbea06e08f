package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/folio/internal/logger"
	"github.com/folio/internal/storage"
	"github.com/microcosm-cc/bluemonday"
)

// Upload is one completed file handed over by the upload transport.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// ErrAssignAfterUpload wraps an assignment failure that happened after the
// record was already created.
var ErrAssignAfterUpload = errors.New("media uploaded but assignment failed")

// MediaLibrary is the entry point the admin API uses for the media library.
// Every read recomputes the organized view from the store and the owners.
type MediaLibrary struct {
	store      MediaRecordStore
	owners     OwnerDirectory
	blobs      storage.BlobStore
	controller *AssignmentController
	sanitizer  *bluemonday.Policy
	log        *logger.Logger
}

// NewMediaLibrary creates a MediaLibrary instance.
func NewMediaLibrary(store MediaRecordStore, owners OwnerDirectory, blobs storage.BlobStore, log *logger.Logger) *MediaLibrary {
	if log == nil {
		log = logger.Nop()
	}
	return &MediaLibrary{
		store:      store,
		owners:     owners,
		blobs:      blobs,
		controller: NewAssignmentController(store, owners, log),
		sanitizer:  bluemonday.StrictPolicy(),
		log:        log,
	}
}

// OrganizedView buckets all records against the current owners.
func (l *MediaLibrary) OrganizedView() (OrganizedView, error) {
	items, err := l.store.List()
	if err != nil {
		return OrganizedView{}, err
	}
	pages, err := l.owners.ListPages()
	if err != nil {
		return OrganizedView{}, fmt.Errorf("list pages: %w", err)
	}
	posts, err := l.owners.ListPosts()
	if err != nil {
		return OrganizedView{}, fmt.Errorf("list posts: %w", err)
	}
	return OrganizeMedia(items, pages, posts), nil
}

// SelectView returns the flat list for a scope and search query.
func (l *MediaLibrary) SelectView(scope Scope, query string) ([]MediaItem, error) {
	view, err := l.OrganizedView()
	if err != nil {
		return nil, err
	}
	return SelectMedia(view, scope, query), nil
}

// Owners lists the pages and posts a picker can offer.
func (l *MediaLibrary) Owners() ([]Owner, []Owner, error) {
	pages, err := l.owners.ListPages()
	if err != nil {
		return nil, nil, err
	}
	posts, err := l.owners.ListPosts()
	if err != nil {
		return nil, nil, err
	}
	return pages, posts, nil
}

func (l *MediaLibrary) Assign(mediaID uint, target string) (AssignResult, error) {
	return l.controller.Assign(mediaID, target)
}

func (l *MediaLibrary) Unassign(mediaID uint) error {
	return l.controller.Unassign(mediaID)
}

// UpdateAltText strips markup from altText before storing it.
func (l *MediaLibrary) UpdateAltText(mediaID uint, altText string) (*MediaItem, error) {
	return l.store.UpdateAltText(mediaID, l.cleanText(altText))
}

// Delete removes the record, then its bytes. A failed blob delete is logged
// and does not fail the call since the record is already gone.
func (l *MediaLibrary) Delete(ctx context.Context, mediaID uint) error {
	item, err := l.store.Get(mediaID)
	if err != nil {
		return err
	}
	if err := l.store.Delete(mediaID); err != nil {
		return err
	}
	l.log.Info("media deleted", "media_id", mediaID, "was_assigned", item.Assigned())

	if l.blobs != nil && item.StorageKey != "" {
		if err := l.blobs.Delete(ctx, item.StorageKey); err != nil {
			l.log.Warn("failed to delete media blob", "media_id", mediaID, "key", item.StorageKey, "error", err)
		}
	}
	return nil
}

// Ingest stores the bytes of one upload and creates its record. When target
// is not empty the new record is assigned to it; an unresolved target leaves
// the record unassigned. If the assignment fails the created item is still
// returned together with an error wrapping ErrAssignAfterUpload.
func (l *MediaLibrary) Ingest(ctx context.Context, upload Upload, target string) (*MediaItem, *AssignResult, error) {
	if l.blobs == nil {
		return nil, nil, errors.New("blob storage is not configured")
	}
	filename := strings.TrimSpace(upload.Filename)
	if filename == "" {
		return nil, nil, ErrMediaFilenameMissing
	}

	input := MediaInput{
		Filename:    l.cleanText(filename),
		ContentType: upload.ContentType,
	}
	if upload.Size > 0 {
		size := upload.Size
		input.Size = &size
	}
	if width, height, ok := probeImageSize(upload.ContentType, upload.Body); ok {
		input.Width = &width
		input.Height = &height
	}
	if _, err := upload.Body.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("rewind upload: %w", err)
	}

	obj, err := l.blobs.Put(ctx, filename, upload.ContentType, upload.Body)
	if err != nil {
		return nil, nil, err
	}
	input.URL = obj.URL
	input.StorageKey = obj.Key

	item, err := l.store.Create(input)
	if err != nil {
		if delErr := l.blobs.Delete(ctx, obj.Key); delErr != nil {
			l.log.Warn("failed to remove blob after create error", "key", obj.Key, "error", delErr)
		}
		return nil, nil, err
	}
	l.log.Info("media uploaded", "media_id", item.ID, "filename", item.Filename, "driver", l.blobs.Driver())

	if strings.TrimSpace(target) == "" {
		return item, nil, nil
	}

	result, err := l.controller.Assign(item.ID, target)
	if err != nil {
		return item, nil, fmt.Errorf("%w: %v", ErrAssignAfterUpload, err)
	}
	if result.Outcome == OutcomeAssigned {
		item.Assignment = result.Assignment
	}
	return item, &result, nil
}

const maxCleanPasses = 5

// cleanText returns plain text with all markup removed. Entity-encoded markup
// is decoded and sanitized again until nothing changes; input that is still
// changing after maxCleanPasses is stored in its escaped form.
func (l *MediaLibrary) cleanText(value string) string {
	for i := 0; i < maxCleanPasses; i++ {
		next := html.UnescapeString(l.sanitizer.Sanitize(value))
		if next == value {
			return strings.TrimSpace(value)
		}
		value = next
	}
	return strings.TrimSpace(l.sanitizer.Sanitize(value))
}
