package service

import (
	"errors"
	"strings"
	"testing"
)

func TestPageServiceSaveCreatesAndUpdates(t *testing.T) {
	svc := NewPageService(setupServiceTestDB(t))

	page, err := svc.Save(PageInput{Slug: " Home ", Title: "Home", Content: "# Hello\n欢迎来到我的作品集"})
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	if page.Slug != "home" {
		t.Fatalf("expected normalized slug, got %q", page.Slug)
	}
	if page.Summary != "Hello 欢迎来到我的作品集" {
		t.Fatalf("unexpected summary %q", page.Summary)
	}

	updated, err := svc.Save(PageInput{Slug: "home", Title: "Welcome", GalleryDrawer: true})
	if err != nil {
		t.Fatalf("failed to update page: %v", err)
	}
	if updated.ID != page.ID || updated.Title != "Welcome" || !updated.GalleryDrawer {
		t.Fatalf("expected existing page to be updated, got %+v", updated)
	}

	pages, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list pages: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
}

func TestPageServiceValidation(t *testing.T) {
	svc := NewPageService(setupServiceTestDB(t))

	if _, err := svc.Save(PageInput{Title: "No slug"}); !errors.Is(err, ErrPageSlugMissing) {
		t.Fatalf("expected ErrPageSlugMissing, got %v", err)
	}
	if _, err := svc.Save(PageInput{Slug: "about"}); !errors.Is(err, ErrPageTitleMissing) {
		t.Fatalf("expected ErrPageTitleMissing, got %v", err)
	}
	if _, err := svc.GetBySlug("missing"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestSummarizeContentTruncates(t *testing.T) {
	long := strings.Repeat("字", 150)
	summary := summarizeContent(long)
	if !strings.HasSuffix(summary, "…") {
		t.Fatalf("expected ellipsis, got %q", summary)
	}
	if got := len([]rune(strings.TrimSuffix(summary, "…"))); got != 120 {
		t.Fatalf("expected 120 runes, got %d", got)
	}
	if summarizeContent("  # ") != "" {
		t.Fatalf("expected empty summary for markup only")
	}
}
