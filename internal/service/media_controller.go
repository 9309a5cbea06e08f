package service

import (
	"strings"

	"github.com/folio/internal/logger"
)

// TargetUnassigned is the drop-target id of the unassigned bucket.
const TargetUnassigned = "unassigned"

// AssignOutcome reports which mutation a gesture produced.
type AssignOutcome string

const (
	OutcomeAssigned   AssignOutcome = "assigned"
	OutcomeUnassigned AssignOutcome = "unassigned"
	OutcomeIgnored    AssignOutcome = "ignored"
)

// AssignResult describes the effect of one drop or pick.
type AssignResult struct {
	Outcome    AssignOutcome
	Assignment Assignment
}

// AssignmentController turns a single drop or picker selection into at most
// one store mutation.
//
// Target grammar:
//
//	unassigned            clear the assignment
//	page:<slug>           assign to a known page
//	post:<id>             assign to a known blog post
//	<slug>-gallery-<0..5> assign to a gallery drawer slot of a known page
//
// Anything that does not resolve is ignored without touching the store, so a
// drop from a stale admin screen is harmless. Reassignment overwrites the
// previous owner.
type AssignmentController struct {
	store  MediaRecordStore
	owners OwnerDirectory
	log    *logger.Logger
}

// NewAssignmentController creates an AssignmentController instance.
func NewAssignmentController(store MediaRecordStore, owners OwnerDirectory, log *logger.Logger) *AssignmentController {
	if log == nil {
		log = logger.Nop()
	}
	return &AssignmentController{store: store, owners: owners, log: log}
}

// Assign applies target to the media record.
func (c *AssignmentController) Assign(mediaID uint, target string) (AssignResult, error) {
	target = strings.TrimSpace(target)
	if target == TargetUnassigned {
		if err := c.Unassign(mediaID); err != nil {
			return AssignResult{}, err
		}
		return AssignResult{Outcome: OutcomeUnassigned}, nil
	}

	assignment, err := c.resolve(target)
	if err != nil {
		return AssignResult{}, err
	}
	if assignment == nil {
		c.log.Debug("ignoring unresolved media target", "media_id", mediaID, "target", target)
		return AssignResult{Outcome: OutcomeIgnored}, nil
	}

	if err := c.store.SetAssignment(mediaID, assignment); err != nil {
		return AssignResult{}, err
	}
	c.log.Info("media assigned",
		"media_id", mediaID,
		"owner_type", assignment.Kind(),
		"owner_id", assignment.OwnerID(),
	)
	return AssignResult{Outcome: OutcomeAssigned, Assignment: assignment}, nil
}

// Unassign clears the record's assignment.
func (c *AssignmentController) Unassign(mediaID uint) error {
	if err := c.store.ClearAssignment(mediaID); err != nil {
		return err
	}
	c.log.Info("media unassigned", "media_id", mediaID)
	return nil
}

// resolve returns nil without error when the target names nothing known.
// Errors only come from listing owners.
func (c *AssignmentController) resolve(target string) (Assignment, error) {
	if id, ok := strings.CutPrefix(target, "page:"); ok {
		pages, err := c.owners.ListPages()
		if err != nil {
			return nil, err
		}
		page, found := findOwner(pages, strings.TrimSpace(id))
		if !found {
			return nil, nil
		}
		return PageAssignment{PageID: page.ID, PageTitle: page.Title}, nil
	}

	if id, ok := strings.CutPrefix(target, "post:"); ok {
		posts, err := c.owners.ListPosts()
		if err != nil {
			return nil, err
		}
		post, found := findOwner(posts, strings.TrimSpace(id))
		if !found {
			return nil, nil
		}
		return BlogPostAssignment{PostID: post.ID, PostTitle: post.Title}, nil
	}

	slot, ok := parseGalleryTarget(target)
	if !ok {
		return nil, nil
	}
	pages, err := c.owners.ListPages()
	if err != nil {
		return nil, err
	}
	page, found := findOwner(pages, slot.PageID)
	if !found || !page.GalleryDrawer {
		return nil, nil
	}
	return GallerySlotAssignment{Slot: slot}, nil
}
