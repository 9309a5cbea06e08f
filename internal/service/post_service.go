package service

import (
	"errors"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrPostTitleMissing = errors.New("post title is required")
)

// PostService wraps blog post database operations.
type PostService struct {
	db *gorm.DB
}

// PostInput represents fields accepted when creating a post.
type PostInput struct {
	Title     string
	Summary   string
	Content   string
	Published bool
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// List returns all posts ordered by created time descending.
func (s *PostService) List() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Order("created_at desc").Order("id desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a post by id.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleMissing
	}

	content := strings.TrimSpace(input.Content)
	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		summary = summarizeContent(content)
	}

	post := db.Post{
		Title:     title,
		Summary:   summary,
		Content:   content,
		Published: input.Published,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post. Media assigned to it keeps its stale assignment and
// shows up as unassigned.
func (s *PostService) Delete(id uint) error {
	result := s.db.Delete(&db.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
