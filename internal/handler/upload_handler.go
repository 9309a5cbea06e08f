package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

// UploadMedia stores one image and creates its record. An optional "target"
// form field assigns the new record right away.
func (a *API) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "未找到上传的图片")
		return
	}
	if msg, ok := a.checkUpload(file); !ok {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	item, result, err := a.ingest(c, file, c.PostForm("target"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignAfterUpload) && item != nil:
			a.log.Error("upload assignment failed", "media_id", item.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "图片已上传，但关联失败", "item": item})
		default:
			a.log.Error("upload failed", "filename", file.Filename, "error", err)
			respondError(c, http.StatusInternalServerError, "保存文件失败")
		}
		return
	}

	response := gin.H{"message": "上传成功", "item": item}
	if result != nil {
		response["outcome"] = result.Outcome
	}
	c.JSON(http.StatusOK, response)
}

// BulkUploadMedia stores every file in the "files" field. Records are never
// auto-assigned here; failures are reported per file.
func (a *API) BulkUploadMedia(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "表单数据不合法")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		respondError(c, http.StatusBadRequest, "未找到上传的图片")
		return
	}

	items := make([]service.MediaItem, 0, len(files))
	failures := make([]gin.H, 0)
	for _, file := range files {
		if msg, ok := a.checkUpload(file); !ok {
			failures = append(failures, gin.H{"filename": file.Filename, "error": msg})
			continue
		}

		item, _, err := a.ingest(c, file, "")
		if err != nil {
			a.log.Warn("bulk upload item failed", "filename", file.Filename, "error", err)
			failures = append(failures, gin.H{"filename": file.Filename, "error": "保存文件失败"})
			continue
		}
		items = append(items, *item)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "批量上传完成",
		"items":    items,
		"failures": failures,
	})
}

func (a *API) checkUpload(file *multipart.FileHeader) (string, bool) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "只允许上传图片文件", false
	}
	if file.Size > a.maxUploadBytes {
		return "图片文件过大", false
	}
	return "", true
}

func (a *API) ingest(c *gin.Context, file *multipart.FileHeader, target string) (*service.MediaItem, *service.AssignResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	return a.media.Ingest(c.Request.Context(), service.Upload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Body:        src,
	}, target)
}
