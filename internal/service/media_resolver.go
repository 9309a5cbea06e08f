package service

// OwnerBucket holds the images assigned to one page or blog post.
type OwnerBucket struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Images []MediaItem `json:"images"`
}

// SlotBucket holds the images assigned to one gallery drawer slot.
type SlotBucket struct {
	ID       string      `json:"id"`
	TargetID string      `json:"targetId"`
	PageID   string      `json:"pageId"`
	Index    int         `json:"index"`
	Title    string      `json:"title"`
	Preview  bool        `json:"preview"`
	Images   []MediaItem `json:"images"`
}

// OrganizedView buckets every media record by owner. It is derived on each
// read and never stored.
type OrganizedView struct {
	Pages        []OwnerBucket `json:"pages"`
	BlogPosts    []OwnerBucket `json:"blogPosts"`
	GallerySlots []SlotBucket  `json:"gallerySlots"`
	Unassigned   []MediaItem   `json:"unassigned"`
}

// MediaStats counts records per bucket group.
type MediaStats struct {
	Total      int `json:"total"`
	Pages      int `json:"pages"`
	BlogPosts  int `json:"blogPosts"`
	Gallery    int `json:"gallery"`
	Unassigned int `json:"unassigned"`
}

type ownerKey struct {
	kind OwnerKind
	id   string
}

// OrganizeMedia buckets items against the known owners. A record whose
// assignment names an owner that is not in pages or posts (or a slot of a
// page without a gallery drawer) lands in Unassigned. Bucket order follows
// the owner lists; image order follows items.
func OrganizeMedia(items []MediaItem, pages, posts []Owner) OrganizedView {
	view := OrganizedView{
		Pages:        make([]OwnerBucket, 0, len(pages)),
		BlogPosts:    make([]OwnerBucket, 0, len(posts)),
		GallerySlots: []SlotBucket{},
		Unassigned:   []MediaItem{},
	}

	pageIndex := make(map[string]int, len(pages))
	postIndex := make(map[string]int, len(posts))
	slotIndex := make(map[string]int)

	for _, page := range pages {
		if _, seen := pageIndex[page.ID]; seen {
			continue
		}
		pageIndex[page.ID] = len(view.Pages)
		view.Pages = append(view.Pages, OwnerBucket{ID: page.ID, Title: page.Title, Images: []MediaItem{}})

		if !page.GalleryDrawer {
			continue
		}
		for i := 0; i < GallerySlotCount; i++ {
			slot := GallerySlot{PageID: page.ID, Index: i}
			slotIndex[slot.ID()] = len(view.GallerySlots)
			view.GallerySlots = append(view.GallerySlots, SlotBucket{
				ID:       slot.ID(),
				TargetID: slot.TargetID(),
				PageID:   slot.PageID,
				Index:    slot.Index,
				Title:    slot.Title(),
				Preview:  slot.IsPreview(),
				Images:   []MediaItem{},
			})
		}
	}

	for _, post := range posts {
		if _, seen := postIndex[post.ID]; seen {
			continue
		}
		postIndex[post.ID] = len(view.BlogPosts)
		view.BlogPosts = append(view.BlogPosts, OwnerBucket{ID: post.ID, Title: post.Title, Images: []MediaItem{}})
	}

	for _, item := range items {
		if item.Assignment == nil {
			view.Unassigned = append(view.Unassigned, item)
			continue
		}

		key := ownerKey{kind: item.Assignment.Kind(), id: item.Assignment.OwnerID()}
		switch key.kind {
		case OwnerKindPage:
			if idx, ok := pageIndex[key.id]; ok {
				view.Pages[idx].Images = append(view.Pages[idx].Images, item)
				continue
			}
		case OwnerKindBlogPost:
			if idx, ok := postIndex[key.id]; ok {
				view.BlogPosts[idx].Images = append(view.BlogPosts[idx].Images, item)
				continue
			}
		case OwnerKindGalleryDrawer:
			if idx, ok := slotIndex[key.id]; ok {
				view.GallerySlots[idx].Images = append(view.GallerySlots[idx].Images, item)
				continue
			}
		}
		view.Unassigned = append(view.Unassigned, item)
	}

	return view
}

// Page returns the bucket for a page id.
func (v OrganizedView) Page(id string) (OwnerBucket, bool) {
	return findBucket(v.Pages, id)
}

// Post returns the bucket for a blog post id.
func (v OrganizedView) Post(id string) (OwnerBucket, bool) {
	return findBucket(v.BlogPosts, id)
}

// Slot returns the bucket for a stored slot id such as "home-slot-0".
func (v OrganizedView) Slot(id string) (SlotBucket, bool) {
	for _, bucket := range v.GallerySlots {
		if bucket.ID == id {
			return bucket, true
		}
	}
	return SlotBucket{}, false
}

// Stats counts the images in each bucket group.
func (v OrganizedView) Stats() MediaStats {
	stats := MediaStats{Unassigned: len(v.Unassigned)}
	for _, bucket := range v.Pages {
		stats.Pages += len(bucket.Images)
	}
	for _, bucket := range v.BlogPosts {
		stats.BlogPosts += len(bucket.Images)
	}
	for _, bucket := range v.GallerySlots {
		stats.Gallery += len(bucket.Images)
	}
	stats.Total = stats.Pages + stats.BlogPosts + stats.Gallery + stats.Unassigned
	return stats
}

func findBucket(buckets []OwnerBucket, id string) (OwnerBucket, bool) {
	for _, bucket := range buckets {
		if bucket.ID == id {
			return bucket, true
		}
	}
	return OwnerBucket{}, false
}
