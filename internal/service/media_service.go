package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrMediaNotFound        = errors.New("media not found")
	ErrMediaURLMissing      = errors.New("media url is required")
	ErrMediaFilenameMissing = errors.New("media filename is required")
	ErrAssignmentRequired   = errors.New("assignment is required")
)

// MediaRecordStore is the authoritative list of uploaded assets. Assignment
// columns are only written through SetAssignment and ClearAssignment.
type MediaRecordStore interface {
	Create(input MediaInput) (*MediaItem, error)
	Get(id uint) (*MediaItem, error)
	List() ([]MediaItem, error)
	Delete(id uint) error
	SetAssignment(id uint, assignment Assignment) error
	ClearAssignment(id uint) error
	UpdateAltText(id uint, altText string) (*MediaItem, error)
}

// MediaInput represents fields accepted when registering an uploaded asset.
type MediaInput struct {
	URL         string
	Filename    string
	StorageKey  string
	ContentType string
	AltText     string
	Size        *int64
	Width       *int
	Height      *int
}

// MediaService stores media records with gorm.
type MediaService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewMediaService creates a MediaService instance.
func NewMediaService(gdb *gorm.DB) *MediaService {
	return &MediaService{db: gdb, now: time.Now}
}

// Create inserts a new, unassigned record.
func (s *MediaService) Create(input MediaInput) (*MediaItem, error) {
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, ErrMediaURLMissing
	}
	filename := strings.TrimSpace(input.Filename)
	if filename == "" {
		return nil, ErrMediaFilenameMissing
	}

	record := db.MediaAsset{
		URL:         url,
		Filename:    filename,
		StorageKey:  strings.TrimSpace(input.StorageKey),
		ContentType: strings.TrimSpace(input.ContentType),
		Size:        input.Size,
		Width:       input.Width,
		Height:      input.Height,
		UploadedAt:  s.now(),
	}
	if alt := strings.TrimSpace(input.AltText); alt != "" {
		record.AltText = &alt
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	item := mediaItemFromRecord(record)
	return &item, nil
}

// Get fetches a record by id.
func (s *MediaService) Get(id uint) (*MediaItem, error) {
	var record db.MediaAsset
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	item := mediaItemFromRecord(record)
	return &item, nil
}

// List returns all records in upload order.
func (s *MediaService) List() ([]MediaItem, error) {
	var records []db.MediaAsset
	if err := s.db.Order("uploaded_at asc").Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}

	items := make([]MediaItem, 0, len(records))
	for _, record := range records {
		items = append(items, mediaItemFromRecord(record))
	}
	return items, nil
}

// Delete removes a record. Owners are not touched.
func (s *MediaService) Delete(id uint) error {
	result := s.db.Delete(&db.MediaAsset{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete media: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

// SetAssignment overwrites the assignment triple in a single update.
func (s *MediaService) SetAssignment(id uint, assignment Assignment) error {
	if assignment == nil {
		return ErrAssignmentRequired
	}
	return s.updateAssignment(id, map[string]interface{}{
		"assigned_to_type":  string(assignment.Kind()),
		"assigned_to_id":    assignment.OwnerID(),
		"assigned_to_title": assignment.Title(),
	})
}

// ClearAssignment removes the assignment triple in a single update.
func (s *MediaService) ClearAssignment(id uint) error {
	return s.updateAssignment(id, map[string]interface{}{
		"assigned_to_type":  nil,
		"assigned_to_id":    nil,
		"assigned_to_title": nil,
	})
}

func (s *MediaService) updateAssignment(id uint, columns map[string]interface{}) error {
	columns["updated_at"] = s.now()
	result := s.db.Model(&db.MediaAsset{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("update media assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

// UpdateAltText replaces the alt text; blank text clears it.
func (s *MediaService) UpdateAltText(id uint, altText string) (*MediaItem, error) {
	var value interface{}
	if trimmed := strings.TrimSpace(altText); trimmed != "" {
		value = trimmed
	}

	result := s.db.Model(&db.MediaAsset{}).Where("id = ?", id).Updates(map[string]interface{}{
		"alt_text":   value,
		"updated_at": s.now(),
	})
	if result.Error != nil {
		return nil, fmt.Errorf("update media alt text: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrMediaNotFound
	}
	return s.Get(id)
}
