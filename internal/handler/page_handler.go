package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

type pagePayload struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	Content       string `json:"content"`
	GalleryDrawer bool   `json:"gallery_drawer"`
}

type postPayload struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// ListPages returns all pages.
func (a *API) ListPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取页面失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// SavePage creates or updates a page by slug.
func (a *API) SavePage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	page, err := a.pages.Save(service.PageInput{
		Slug:          payload.Slug,
		Title:         payload.Title,
		Summary:       payload.Summary,
		Content:       payload.Content,
		GalleryDrawer: payload.GalleryDrawer,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageSlugMissing):
			respondError(c, http.StatusBadRequest, "请填写页面标识")
		case errors.Is(err, service.ErrPageTitleMissing):
			respondError(c, http.StatusBadRequest, "请填写页面标题")
		default:
			respondError(c, http.StatusInternalServerError, "保存失败，请稍后重试")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "页面已保存", "page": page})
}

// ListPosts returns all blog posts.
func (a *API) ListPosts(c *gin.Context) {
	posts, err := a.posts.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost inserts a blog post.
func (a *API) CreatePost(c *gin.Context) {
	var payload postPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	post, err := a.posts.Create(service.PostInput{
		Title:     payload.Title,
		Summary:   payload.Summary,
		Content:   payload.Content,
		Published: payload.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostTitleMissing):
			respondError(c, http.StatusBadRequest, "请填写文章标题")
		default:
			respondError(c, http.StatusInternalServerError, "创建文章失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "文章已创建", "post": post})
}
