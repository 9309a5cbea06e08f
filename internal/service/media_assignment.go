package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// OwnerKind discriminates what a media record is assigned to.
type OwnerKind string

const (
	OwnerKindPage          OwnerKind = "page"
	OwnerKindBlogPost      OwnerKind = "blogPost"
	OwnerKindGalleryDrawer OwnerKind = "galleryDrawer"
)

// GallerySlotCount is the number of drawer slots on a page with a gallery drawer.
// Slot 0 is the preview image, slots 1-5 are drawer images.
const GallerySlotCount = 6

var ErrInvalidSlot = errors.New("gallery slot is invalid")

// Assignment is the owner a media record currently belongs to. A nil
// Assignment means the record is unassigned. The stored triple
// (type, id, title) is always derived from one of the variants below, so it
// can never be written partially.
type Assignment interface {
	Kind() OwnerKind
	OwnerID() string
	Title() string
	isAssignment()
}

// PageAssignment points at a page owner. PageTitle is a snapshot taken at
// assignment time and is not refreshed when the page is renamed.
type PageAssignment struct {
	PageID    string
	PageTitle string
}

func (a PageAssignment) Kind() OwnerKind { return OwnerKindPage }
func (a PageAssignment) OwnerID() string { return a.PageID }
func (a PageAssignment) Title() string   { return a.PageTitle }
func (PageAssignment) isAssignment()     {}

// BlogPostAssignment points at a blog post owner.
type BlogPostAssignment struct {
	PostID    string
	PostTitle string
}

func (a BlogPostAssignment) Kind() OwnerKind { return OwnerKindBlogPost }
func (a BlogPostAssignment) OwnerID() string { return a.PostID }
func (a BlogPostAssignment) Title() string   { return a.PostTitle }
func (BlogPostAssignment) isAssignment()     {}

// GallerySlotAssignment points at a synthetic gallery drawer slot. Its id and
// title are computed from the slot, never looked up.
type GallerySlotAssignment struct {
	Slot GallerySlot
}

func (a GallerySlotAssignment) Kind() OwnerKind { return OwnerKindGalleryDrawer }
func (a GallerySlotAssignment) OwnerID() string { return a.Slot.ID() }
func (a GallerySlotAssignment) Title() string   { return a.Slot.Title() }
func (GallerySlotAssignment) isAssignment()     {}

// GallerySlot is one fixed position in a page's gallery drawer.
type GallerySlot struct {
	PageID string
	Index  int
}

// NewGallerySlot validates the page id and slot index.
func NewGallerySlot(pageID string, index int) (GallerySlot, error) {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" || index < 0 || index >= GallerySlotCount {
		return GallerySlot{}, ErrInvalidSlot
	}
	return GallerySlot{PageID: pageID, Index: index}, nil
}

// ID is the stored owner id, e.g. "home-slot-2".
func (s GallerySlot) ID() string {
	return fmt.Sprintf("%s-slot-%d", s.PageID, s.Index)
}

// TargetID is the drop-target id used by the admin UI, e.g. "home-gallery-2".
func (s GallerySlot) TargetID() string {
	return fmt.Sprintf("%s-gallery-%d", s.PageID, s.Index)
}

// Title is the generated display label, numbered from one.
func (s GallerySlot) Title() string {
	return fmt.Sprintf("Gallery Drawer Slot %d", s.Index+1)
}

func (s GallerySlot) IsPreview() bool {
	return s.Index == 0
}

// ParseGallerySlotID parses a stored owner id such as "home-slot-2".
func ParseGallerySlotID(id string) (GallerySlot, bool) {
	return parseSlot(id, "-slot-")
}

// parseGalleryTarget parses a drop-target id such as "home-gallery-2".
func parseGalleryTarget(target string) (GallerySlot, bool) {
	return parseSlot(target, "-gallery-")
}

// Page ids may contain dashes themselves, so the last separator wins.
func parseSlot(raw, sep string) (GallerySlot, bool) {
	idx := strings.LastIndex(raw, sep)
	if idx <= 0 {
		return GallerySlot{}, false
	}
	digits := raw[idx+len(sep):]
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return GallerySlot{}, false
	}
	index, err := strconv.Atoi(digits)
	if err != nil {
		return GallerySlot{}, false
	}
	slot, err := NewGallerySlot(raw[:idx], index)
	if err != nil {
		return GallerySlot{}, false
	}
	return slot, true
}

// decodeAssignment rebuilds the variant from the stored triple. A triple that
// is incomplete or names an unknown kind decodes to nil (unassigned).
func decodeAssignment(kind, ownerID, title *string) Assignment {
	if kind == nil || ownerID == nil || title == nil {
		return nil
	}
	id := strings.TrimSpace(*ownerID)
	if id == "" {
		return nil
	}

	switch OwnerKind(*kind) {
	case OwnerKindPage:
		return PageAssignment{PageID: id, PageTitle: *title}
	case OwnerKindBlogPost:
		return BlogPostAssignment{PostID: id, PostTitle: *title}
	case OwnerKindGalleryDrawer:
		slot, ok := ParseGallerySlotID(id)
		if !ok {
			return nil
		}
		return GallerySlotAssignment{Slot: slot}
	default:
		return nil
	}
}
