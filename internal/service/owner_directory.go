package service

import "strconv"

// Owner is a content entity media can be assigned to. Owners are read-only
// here; they come from the page registry and the blog post store.
type Owner struct {
	Kind          OwnerKind `json:"kind"`
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	GalleryDrawer bool      `json:"galleryDrawer,omitempty"`
}

// OwnerDirectory lists the currently known owners.
type OwnerDirectory interface {
	ListPages() ([]Owner, error)
	ListPosts() ([]Owner, error)
}

// ContentOwners exposes pages and posts as owners. Page owners are keyed by
// slug, post owners by their numeric id.
type ContentOwners struct {
	pages *PageService
	posts *PostService
}

// NewContentOwners creates a ContentOwners instance.
func NewContentOwners(pages *PageService, posts *PostService) *ContentOwners {
	return &ContentOwners{pages: pages, posts: posts}
}

func (o *ContentOwners) ListPages() ([]Owner, error) {
	pages, err := o.pages.List()
	if err != nil {
		return nil, err
	}
	owners := make([]Owner, 0, len(pages))
	for _, page := range pages {
		owners = append(owners, Owner{
			Kind:          OwnerKindPage,
			ID:            page.Slug,
			Title:         page.Title,
			GalleryDrawer: page.GalleryDrawer,
		})
	}
	return owners, nil
}

func (o *ContentOwners) ListPosts() ([]Owner, error) {
	posts, err := o.posts.List()
	if err != nil {
		return nil, err
	}
	owners := make([]Owner, 0, len(posts))
	for _, post := range posts {
		owners = append(owners, Owner{
			Kind:  OwnerKindBlogPost,
			ID:    strconv.FormatUint(uint64(post.ID), 10),
			Title: post.Title,
		})
	}
	return owners, nil
}

func findOwner(owners []Owner, id string) (Owner, bool) {
	for _, owner := range owners {
		if owner.ID == id {
			return owner, true
		}
	}
	return Owner{}, false
}
