package service

import (
	"encoding/json"
	"time"

	"github.com/folio/internal/db"
)

// MediaItem is one uploaded asset together with its current assignment.
type MediaItem struct {
	ID          uint
	URL         string
	Filename    string
	AltText     string
	Size        *int64
	Width       *int
	Height      *int
	ContentType string
	StorageKey  string
	Assignment  Assignment
	UploadedAt  time.Time
}

// Assigned reports whether the item currently has an owner.
func (m MediaItem) Assigned() bool {
	return m.Assignment != nil
}

type mediaItemJSON struct {
	ID              uint      `json:"id"`
	URL             string    `json:"url"`
	Filename        string    `json:"filename"`
	AltText         string    `json:"altText,omitempty"`
	Size            *int64    `json:"size,omitempty"`
	Width           *int      `json:"width,omitempty"`
	Height          *int      `json:"height,omitempty"`
	ContentType     string    `json:"contentType,omitempty"`
	AssignedToType  OwnerKind `json:"assignedToType,omitempty"`
	AssignedToID    string    `json:"assignedToId,omitempty"`
	AssignedToTitle string    `json:"assignedToTitle,omitempty"`
	UploadedAt      time.Time `json:"uploadedAt"`
}

// MarshalJSON flattens the assignment into the three assignedTo* fields,
// which are either all present or all omitted.
func (m MediaItem) MarshalJSON() ([]byte, error) {
	out := mediaItemJSON{
		ID:          m.ID,
		URL:         m.URL,
		Filename:    m.Filename,
		AltText:     m.AltText,
		Size:        m.Size,
		Width:       m.Width,
		Height:      m.Height,
		ContentType: m.ContentType,
		UploadedAt:  m.UploadedAt,
	}
	if m.Assignment != nil {
		out.AssignedToType = m.Assignment.Kind()
		out.AssignedToID = m.Assignment.OwnerID()
		out.AssignedToTitle = m.Assignment.Title()
	}
	return json.Marshal(out)
}

func mediaItemFromRecord(record db.MediaAsset) MediaItem {
	item := MediaItem{
		ID:          record.ID,
		URL:         record.URL,
		Filename:    record.Filename,
		Size:        record.Size,
		Width:       record.Width,
		Height:      record.Height,
		ContentType: record.ContentType,
		StorageKey:  record.StorageKey,
		Assignment:  decodeAssignment(record.AssignedToType, record.AssignedToID, record.AssignedToTitle),
		UploadedAt:  record.UploadedAt,
	}
	if record.AltText != nil {
		item.AltText = *record.AltText
	}
	return item
}
