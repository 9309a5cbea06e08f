package service

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidScope = errors.New("media scope is invalid")

// ScopeKind names which part of the organized view to show.
type ScopeKind string

const (
	ScopeAll        ScopeKind = "all"
	ScopeUnassigned ScopeKind = "unassigned"
	ScopePage       ScopeKind = "page"
	ScopePost       ScopeKind = "post"
	ScopeSlot       ScopeKind = "slot"
)

// Scope is a parsed view scope: "all", "unassigned", "page:<id>",
// "post:<id>" or "slot:<slot id>".
type Scope struct {
	Kind ScopeKind
	ID   string
}

// ParseScope parses the scope query value. An empty value means all. A
// malformed slot id fails with both ErrInvalidScope and ErrInvalidSlot.
func ParseScope(raw string) (Scope, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "", string(ScopeAll):
		return Scope{Kind: ScopeAll}, nil
	case string(ScopeUnassigned):
		return Scope{Kind: ScopeUnassigned}, nil
	}

	prefix, id, found := strings.Cut(raw, ":")
	if !found || strings.TrimSpace(id) == "" {
		return Scope{}, ErrInvalidScope
	}
	id = strings.TrimSpace(id)
	switch ScopeKind(prefix) {
	case ScopePage, ScopePost:
		return Scope{Kind: ScopeKind(prefix), ID: id}, nil
	case ScopeSlot:
		if _, ok := ParseGallerySlotID(id); !ok {
			return Scope{}, fmt.Errorf("%w: %w", ErrInvalidScope, ErrInvalidSlot)
		}
		return Scope{Kind: ScopeSlot, ID: id}, nil
	default:
		return Scope{}, ErrInvalidScope
	}
}

func (s Scope) String() string {
	if s.ID == "" {
		return string(s.Kind)
	}
	return string(s.Kind) + ":" + s.ID
}

// SelectMedia narrows the view to one scope and then filters by query. An
// unknown page, post or slot id gives an empty list.
func SelectMedia(view OrganizedView, scope Scope, query string) []MediaItem {
	var scoped []MediaItem
	switch scope.Kind {
	case ScopeUnassigned:
		scoped = view.Unassigned
	case ScopePage:
		if bucket, ok := view.Page(scope.ID); ok {
			scoped = bucket.Images
		}
	case ScopePost:
		if bucket, ok := view.Post(scope.ID); ok {
			scoped = bucket.Images
		}
	case ScopeSlot:
		if bucket, ok := view.Slot(scope.ID); ok {
			scoped = bucket.Images
		}
	default:
		for _, bucket := range view.Pages {
			scoped = append(scoped, bucket.Images...)
		}
		for _, bucket := range view.BlogPosts {
			scoped = append(scoped, bucket.Images...)
		}
		for _, bucket := range view.GallerySlots {
			scoped = append(scoped, bucket.Images...)
		}
		scoped = append(scoped, view.Unassigned...)
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	selected := make([]MediaItem, 0, len(scoped))
	for _, item := range scoped {
		if needle == "" || matchesQuery(item, needle) {
			selected = append(selected, item)
		}
	}
	return selected
}

// matchesQuery expects needle to be lower-cased already.
func matchesQuery(item MediaItem, needle string) bool {
	if strings.Contains(strings.ToLower(item.Filename), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(item.AltText), needle) {
		return true
	}
	if item.Assignment != nil && strings.Contains(strings.ToLower(item.Assignment.Title()), needle) {
		return true
	}
	return false
}
