package db

import "time"

// MediaAsset 定义媒体库中的一条上传记录。
// AssignedToType / AssignedToID / AssignedToTitle 要么同时为空，要么同时有值。
type MediaAsset struct {
	ID              uint    `gorm:"primaryKey"`
	URL             string  `gorm:"size:500;not null"`
	Filename        string  `gorm:"size:255;not null"`
	StorageKey      string  `gorm:"size:500"`
	ContentType     string  `gorm:"size:100"`
	AltText         *string `gorm:"size:500"`
	Size            *int64
	Width           *int
	Height          *int
	AssignedToType  *string   `gorm:"size:32;index:idx_media_assignment"`
	AssignedToID    *string   `gorm:"size:255;index:idx_media_assignment"`
	AssignedToTitle *string   `gorm:"size:255"`
	UploadedAt      time.Time `gorm:"not null"`
	UpdatedAt       time.Time
}
