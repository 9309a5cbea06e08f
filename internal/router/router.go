package router

import (
	"net/http"
	"strings"

	"github.com/folio/internal/handler"
	"github.com/folio/internal/logger"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "folio_session"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, log *logger.Logger, sessionSecret, uploadDir, uploadURLPath string) *gin.Engine {
	if log == nil {
		log = logger.Nop()
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(log), gin.Recovery())

	// 配置会话中间件
	if strings.TrimSpace(sessionSecret) == "" {
		sessionSecret = "folio-dev-secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode, MaxAge: 7 * 24 * 60 * 60})
	r.Use(sessions.Sessions(sessionName, store))

	// 上传文件服务
	if uploadDir != "" {
		uploadURLPath = "/" + strings.Trim(strings.TrimSpace(uploadURLPath), "/")
		if uploadURLPath == "/" {
			uploadURLPath = "/static/uploads"
		}
		r.Static(uploadURLPath, uploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的 API
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/media", api.GetOrganizedMedia)
			auth.GET("/media/select", api.SelectMedia)
			auth.POST("/media/upload", api.UploadMedia)
			auth.POST("/media/bulk", api.BulkUploadMedia)
			auth.PUT("/media/:id/assignment", api.AssignMedia)
			auth.DELETE("/media/:id/assignment", api.UnassignMedia)
			auth.PUT("/media/:id/alt", api.UpdateMediaAltText)
			auth.DELETE("/media/:id", api.DeleteMedia)

			auth.GET("/owners", api.ListOwners)

			auth.GET("/pages", api.ListPages)
			auth.PUT("/pages", api.SavePage)
			auth.GET("/posts", api.ListPosts)
			auth.POST("/posts", api.CreatePost)
		}
	}

	return r
}
