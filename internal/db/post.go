package db

import "gorm.io/gorm"

// Post 定义了博客文章模型
type Post struct {
	gorm.Model
	Title     string `gorm:"not null"`
	Summary   string
	Content   string `gorm:"type:text"`
	Published bool   `gorm:"default:false"`
}
