package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrPageSlugMissing  = errors.New("page slug is required")
	ErrPageTitleMissing = errors.New("page title is required")
)

// PageService provides access to standalone pages such as Home or About.
type PageService struct {
	db *gorm.DB
}

// PageInput represents fields accepted when saving a page.
type PageInput struct {
	Slug          string
	Title         string
	Summary       string
	Content       string
	GalleryDrawer bool
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// List returns all pages ordered by slug.
func (s *PageService) List() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("slug asc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// GetBySlug fetches a page for a given slug.
func (s *PageService) GetBySlug(slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// Save creates the page for input.Slug or updates the existing one.
func (s *PageService) Save(input PageInput) (*db.Page, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if slug == "" {
		return nil, ErrPageSlugMissing
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPageTitleMissing
	}

	content := strings.TrimSpace(input.Content)
	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		summary = summarizeContent(content)
	}

	var page db.Page
	err := s.db.Where("slug = ?", slug).First(&page).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		page = db.Page{Slug: slug}
	}

	page.Title = title
	page.Summary = summary
	page.Content = content
	page.GalleryDrawer = input.GalleryDrawer

	if err := s.db.Save(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func summarizeContent(markdown string) string {
	replacer := strings.NewReplacer(
		"#", " ",
		"*", " ",
		"`", " ",
		"_", " ",
		">", " ",
		"[", " ",
		"]", " ",
		"(", " ",
		")", " ",
	)
	plain := strings.Join(strings.Fields(replacer.Replace(markdown)), " ")
	if plain == "" {
		return ""
	}

	const limit = 120
	if utf8.RuneCountInString(plain) <= limit {
		return plain
	}

	runes := []rune(plain)
	return string(runes[:limit]) + "…"
}
