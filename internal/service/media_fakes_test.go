package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/folio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memStore is an in-memory MediaRecordStore that records every mutation.
type memStore struct {
	items   []MediaItem
	nextID  uint
	calls   []string
	failSet error
}

func newMemStore(items ...MediaItem) *memStore {
	s := &memStore{nextID: 1}
	for _, item := range items {
		if item.ID >= s.nextID {
			s.nextID = item.ID + 1
		}
		s.items = append(s.items, item)
	}
	return s
}

func (s *memStore) Create(input MediaInput) (*MediaItem, error) {
	s.calls = append(s.calls, "create")
	item := MediaItem{ID: s.nextID, URL: input.URL, Filename: input.Filename, Size: input.Size, StorageKey: input.StorageKey}
	s.nextID++
	s.items = append(s.items, item)
	return &item, nil
}

func (s *memStore) Get(id uint) (*MediaItem, error) {
	for _, item := range s.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, ErrMediaNotFound
}

func (s *memStore) List() ([]MediaItem, error) {
	out := make([]MediaItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memStore) Delete(id uint) error {
	s.calls = append(s.calls, fmt.Sprintf("delete:%d", id))
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrMediaNotFound
}

func (s *memStore) SetAssignment(id uint, assignment Assignment) error {
	s.calls = append(s.calls, fmt.Sprintf("set:%d:%s:%s:%s", id, assignment.Kind(), assignment.OwnerID(), assignment.Title()))
	if s.failSet != nil {
		return s.failSet
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Assignment = assignment
			return nil
		}
	}
	return ErrMediaNotFound
}

func (s *memStore) ClearAssignment(id uint) error {
	s.calls = append(s.calls, fmt.Sprintf("clear:%d", id))
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Assignment = nil
			return nil
		}
	}
	return ErrMediaNotFound
}

func (s *memStore) UpdateAltText(id uint, altText string) (*MediaItem, error) {
	s.calls = append(s.calls, fmt.Sprintf("alt:%d", id))
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].AltText = altText
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrMediaNotFound
}

type staticOwners struct {
	pages []Owner
	posts []Owner
	err   error
}

func (o *staticOwners) ListPages() ([]Owner, error) { return o.pages, o.err }
func (o *staticOwners) ListPosts() ([]Owner, error) { return o.posts, o.err }

func defaultOwners() *staticOwners {
	return &staticOwners{
		pages: []Owner{
			{Kind: OwnerKindPage, ID: "home", Title: "Home", GalleryDrawer: true},
			{Kind: OwnerKindPage, ID: "about", Title: "About"},
		},
		posts: []Owner{
			{Kind: OwnerKindBlogPost, ID: "7", Title: "Hello World"},
		},
	}
}

var errStoreDown = errors.New("store unavailable")

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}
