package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	LogMode           string
	UploadDir         string
	UploadURLPath     string
	MaxUploadBytes    int64
	SuperRootUserName string
	SuperRootPassword string
	StorageDriver     string
	S3Bucket          string
	S3Region          string
	S3PublicURL       string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// 当前目录存在 .env 文件时会先加载它，已设置的环境变量优先。
func Load() AppConfig {
	_ = godotenv.Load()

	port := env("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	driver := strings.ToLower(env("STORAGE_DRIVER", StorageDriverLocal))
	if driver != StorageDriverS3 {
		driver = StorageDriverLocal
	}

	maxUploadMB, err := strconv.Atoi(env("MAX_UPLOAD_MB", "10"))
	if err != nil || maxUploadMB <= 0 {
		maxUploadMB = 10
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      env("DATABASE_PATH", "folio.db"),
		SessionSecret:     env("SESSION_SECRET", "folio-dev-secret"),
		GinMode:           env("GIN_MODE", "release"),
		LogMode:           env("LOG_MODE", "development"),
		UploadDir:         env("UPLOAD_DIR", "web/static/uploads"),
		UploadURLPath:     env("UPLOAD_URL_PATH", "/static/uploads"),
		MaxUploadBytes:    int64(maxUploadMB) * 1024 * 1024,
		SuperRootUserName: strings.TrimSpace(os.Getenv("SUPER_ROOT_USER_NAME")),
		SuperRootPassword: strings.TrimSpace(os.Getenv("SUPER_ROOT_PASSWORD")),
		StorageDriver:     driver,
		S3Bucket:          strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:          env("S3_REGION", "us-east-1"),
		S3PublicURL:       strings.TrimRight(strings.TrimSpace(os.Getenv("S3_PUBLIC_URL")), "/"),
	}
}

func env(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
