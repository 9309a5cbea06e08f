package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

type assignPayload struct {
	Target string `json:"target"`
}

type altTextPayload struct {
	AltText string `json:"alt_text"`
}

// GetOrganizedMedia returns every media record bucketed by owner.
func (a *API) GetOrganizedMedia(c *gin.Context) {
	view, err := a.media.OrganizedView()
	if err != nil {
		a.log.Error("failed to organize media", "error", err)
		respondError(c, http.StatusInternalServerError, "加载媒体库失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": view, "stats": view.Stats()})
}

// SelectMedia returns the flat list for ?scope= and ?q=.
func (a *API) SelectMedia(c *gin.Context) {
	scope, err := service.ParseScope(c.Query("scope"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSlot):
			respondError(c, http.StatusBadRequest, "无效的画廊槽位")
		default:
			respondError(c, http.StatusBadRequest, "无效的筛选范围")
		}
		return
	}

	items, err := a.media.SelectView(scope, c.Query("q"))
	if err != nil {
		a.log.Error("failed to select media", "scope", scope.String(), "error", err)
		respondError(c, http.StatusInternalServerError, "加载媒体库失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"scope": scope.String(), "items": items, "total": len(items)})
}

// ListOwners returns known pages and posts for assignment pickers.
func (a *API) ListOwners(c *gin.Context) {
	pages, posts, err := a.media.Owners()
	if err != nil {
		a.log.Error("failed to list owners", "error", err)
		respondError(c, http.StatusInternalServerError, "加载页面与文章失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages, "posts": posts})
}

// AssignMedia applies a drop or picker target. Unresolved targets answer
// 200 with outcome "ignored".
func (a *API) AssignMedia(c *gin.Context) {
	id, ok := mediaIDParam(c)
	if !ok {
		return
	}

	var payload assignPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	result, err := a.media.Assign(id, payload.Target)
	if err != nil {
		a.respondMediaError(c, err, "关联媒体失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcome": result.Outcome, "assignment": assignmentJSON(result.Assignment)})
}

// UnassignMedia moves a record back to the unassigned bucket.
func (a *API) UnassignMedia(c *gin.Context) {
	id, ok := mediaIDParam(c)
	if !ok {
		return
	}

	if err := a.media.Unassign(id); err != nil {
		a.respondMediaError(c, err, "取消关联失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcome": service.OutcomeUnassigned})
}

// UpdateMediaAltText replaces a record's alt text.
func (a *API) UpdateMediaAltText(c *gin.Context) {
	id, ok := mediaIDParam(c)
	if !ok {
		return
	}

	var payload altTextPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	item, err := a.media.UpdateAltText(id, payload.AltText)
	if err != nil {
		a.respondMediaError(c, err, "更新替代文本失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "替代文本已更新", "item": item})
}

// DeleteMedia removes a record and its stored file.
func (a *API) DeleteMedia(c *gin.Context) {
	id, ok := mediaIDParam(c)
	if !ok {
		return
	}

	if err := a.media.Delete(c.Request.Context(), id); err != nil {
		a.respondMediaError(c, err, "删除媒体失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "媒体已删除"})
}

func (a *API) respondMediaError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrMediaNotFound):
		respondError(c, http.StatusNotFound, "媒体不存在")
	default:
		a.log.Error("media operation failed", "path", c.FullPath(), "error", err)
		respondError(c, http.StatusInternalServerError, fallback)
	}
}

func assignmentJSON(assignment service.Assignment) gin.H {
	if assignment == nil {
		return nil
	}
	return gin.H{
		"assignedToType":  assignment.Kind(),
		"assignedToId":    assignment.OwnerID(),
		"assignedToTitle": assignment.Title(),
	}
}
