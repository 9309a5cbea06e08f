package main

import (
	"log"

	"github.com/folio/internal/config"
	"github.com/folio/internal/db"
	"github.com/folio/internal/handler"
	"github.com/folio/internal/logger"
	"github.com/folio/internal/router"
	"github.com/folio/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer appLog.Sync()

	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		appLog.Fatal("failed to initialize database", "error", err, "path", cfg.DatabasePath)
	}

	created, err := db.EnsureUser(db.DB, cfg.SuperRootUserName, cfg.SuperRootPassword)
	if err != nil {
		appLog.Fatal("failed to ensure admin user", "error", err)
	}
	if created {
		appLog.Info("admin user created", "username", cfg.SuperRootUserName)
	}

	blobs, err := openBlobStore(cfg)
	if err != nil {
		appLog.Fatal("failed to init media storage", "error", err, "driver", cfg.StorageDriver)
	}
	appLog.Info("media storage ready", "driver", blobs.Driver())

	api := handler.NewAPI(db.DB, blobs, appLog, cfg.MaxUploadBytes)

	// 本地存储时由服务自身提供上传文件
	uploadDir := ""
	if cfg.StorageDriver == config.StorageDriverLocal {
		uploadDir = cfg.UploadDir
	}

	r := router.SetupRouter(api, appLog, cfg.SessionSecret, uploadDir, cfg.UploadURLPath)
	appLog.Info("server listening", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		appLog.Fatal("failed to run server", "error", err)
	}
}

func openBlobStore(cfg config.AppConfig) (storage.BlobStore, error) {
	if cfg.StorageDriver == config.StorageDriverS3 {
		return storage.NewS3Store(cfg.S3Bucket, cfg.S3Region, cfg.S3PublicURL)
	}
	return storage.NewLocalStore(cfg.UploadDir, cfg.UploadURLPath)
}
