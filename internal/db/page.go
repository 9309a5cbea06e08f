package db

import "gorm.io/gorm"

// Page represents a standalone content page such as Home or About.
// Pages with GalleryDrawer enabled own six gallery drawer image slots.
type Page struct {
	gorm.Model
	Slug          string `gorm:"uniqueIndex;not null"`
	Title         string `gorm:"not null"`
	Summary       string
	Content       string `gorm:"type:text"`
	GalleryDrawer bool   `gorm:"default:false"`
}
