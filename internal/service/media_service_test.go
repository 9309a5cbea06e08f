package service

import (
	"errors"
	"testing"
	"time"

	"github.com/folio/internal/db"
)

func assertTripleConsistent(t *testing.T, svc *MediaService) {
	t.Helper()

	var records []db.MediaAsset
	if err := svc.db.Find(&records).Error; err != nil {
		t.Fatalf("failed to load records: %v", err)
	}
	for _, record := range records {
		set := 0
		for _, field := range []*string{record.AssignedToType, record.AssignedToID, record.AssignedToTitle} {
			if field != nil {
				set++
			}
		}
		if set != 0 && set != 3 {
			t.Fatalf("record %d has a partial assignment triple", record.ID)
		}
	}
}

func TestMediaServiceCreateValidates(t *testing.T) {
	svc := NewMediaService(setupServiceTestDB(t))

	if _, err := svc.Create(MediaInput{Filename: "a.jpg"}); !errors.Is(err, ErrMediaURLMissing) {
		t.Fatalf("expected ErrMediaURLMissing, got %v", err)
	}
	if _, err := svc.Create(MediaInput{URL: "/static/uploads/a.jpg", Filename: "  "}); !errors.Is(err, ErrMediaFilenameMissing) {
		t.Fatalf("expected ErrMediaFilenameMissing, got %v", err)
	}

	size := int64(2048)
	item, err := svc.Create(MediaInput{URL: "/static/uploads/a.jpg", Filename: "a.jpg", Size: &size})
	if err != nil {
		t.Fatalf("failed to create media: %v", err)
	}
	if item.ID == 0 || item.Assigned() || item.UploadedAt.IsZero() {
		t.Fatalf("expected new unassigned record with upload time, got %+v", item)
	}
	if item.Size == nil || *item.Size != 2048 {
		t.Fatalf("expected size to persist")
	}
}

func TestMediaServiceListKeepsUploadOrder(t *testing.T) {
	svc := NewMediaService(setupServiceTestDB(t))
	svc.now = fixedClock(time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC))

	for _, name := range []string{"first.jpg", "second.jpg", "first.jpg"} {
		if _, err := svc.Create(MediaInput{URL: "/u/" + name, Filename: name}); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected duplicates to be separate records, got %d", len(items))
	}
	if items[0].Filename != "first.jpg" || items[1].Filename != "second.jpg" {
		t.Fatalf("unexpected order %s, %s", items[0].Filename, items[1].Filename)
	}
}

func TestMediaServiceAssignmentRoundTrip(t *testing.T) {
	svc := NewMediaService(setupServiceTestDB(t))
	item, err := svc.Create(MediaInput{URL: "/u/a.jpg", Filename: "a.jpg"})
	if err != nil {
		t.Fatalf("failed to create media: %v", err)
	}

	if err := svc.SetAssignment(item.ID, PageAssignment{PageID: "home", PageTitle: "Home"}); err != nil {
		t.Fatalf("failed to assign: %v", err)
	}
	assertTripleConsistent(t, svc)

	got, _ := svc.Get(item.ID)
	page, ok := got.Assignment.(PageAssignment)
	if !ok || page.PageID != "home" || page.PageTitle != "Home" {
		t.Fatalf("unexpected assignment %#v", got.Assignment)
	}

	slot, _ := NewGallerySlot("home", 2)
	if err := svc.SetAssignment(item.ID, GallerySlotAssignment{Slot: slot}); err != nil {
		t.Fatalf("failed to reassign: %v", err)
	}
	var record db.MediaAsset
	svc.db.First(&record, item.ID)
	if *record.AssignedToType != "galleryDrawer" || *record.AssignedToID != "home-slot-2" || *record.AssignedToTitle != "Gallery Drawer Slot 3" {
		t.Fatalf("unexpected stored triple %s/%s/%s", *record.AssignedToType, *record.AssignedToID, *record.AssignedToTitle)
	}

	if err := svc.ClearAssignment(item.ID); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}
	assertTripleConsistent(t, svc)

	got, _ = svc.Get(item.ID)
	if got.Assigned() {
		t.Fatalf("expected record to be unassigned, got %#v", got.Assignment)
	}
	record = db.MediaAsset{}
	svc.db.First(&record, item.ID)
	if record.AssignedToType != nil || record.AssignedToID != nil || record.AssignedToTitle != nil {
		t.Fatalf("expected all assignment columns to be NULL")
	}
}

func TestMediaServiceUnknownIDs(t *testing.T) {
	svc := NewMediaService(setupServiceTestDB(t))

	if err := svc.SetAssignment(404, PageAssignment{PageID: "home", PageTitle: "Home"}); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound on set, got %v", err)
	}
	if err := svc.ClearAssignment(404); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound on clear, got %v", err)
	}
	if err := svc.Delete(404); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound on delete, got %v", err)
	}
	if _, err := svc.Get(404); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound on get, got %v", err)
	}
	if err := svc.SetAssignment(1, nil); !errors.Is(err, ErrAssignmentRequired) {
		t.Fatalf("expected ErrAssignmentRequired, got %v", err)
	}
}

func TestMediaServiceUpdateAltText(t *testing.T) {
	svc := NewMediaService(setupServiceTestDB(t))
	item, _ := svc.Create(MediaInput{URL: "/u/a.jpg", Filename: "a.jpg"})

	updated, err := svc.UpdateAltText(item.ID, "  Golden hour  ")
	if err != nil {
		t.Fatalf("failed to update alt text: %v", err)
	}
	if updated.AltText != "Golden hour" {
		t.Fatalf("unexpected alt text %q", updated.AltText)
	}

	cleared, err := svc.UpdateAltText(item.ID, "")
	if err != nil {
		t.Fatalf("failed to clear alt text: %v", err)
	}
	if cleared.AltText != "" {
		t.Fatalf("expected alt text to be cleared, got %q", cleared.AltText)
	}

	if _, err := svc.UpdateAltText(999, "x"); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound, got %v", err)
	}
}

func TestMediaServiceDeleteAssignedRecord(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewMediaService(gdb)
	item, _ := svc.Create(MediaInput{URL: "/u/a.jpg", Filename: "a.jpg"})
	if err := svc.SetAssignment(item.ID, BlogPostAssignment{PostID: "7", PostTitle: "Hello World"}); err != nil {
		t.Fatalf("failed to assign: %v", err)
	}

	if err := svc.Delete(item.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	owners := defaultOwners()
	items, _ := svc.List()
	view := OrganizeMedia(items, owners.pages, owners.posts)
	if view.Stats().Total != 0 {
		t.Fatalf("expected deleted record to disappear entirely, stats %+v", view.Stats())
	}
}
