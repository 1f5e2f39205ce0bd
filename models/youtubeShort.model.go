package models

import "gorm.io/gorm"

// YouTubeShort is a featured short-form video with an uploaded thumbnail
type YouTubeShort struct {
	gorm.Model
	DomainID  uint   `json:"domainId" gorm:"index"`
	CourseID  uint   `json:"courseId" gorm:"index"`
	Title     string `json:"title"`
	VideoURL  string `json:"videoUrl"`
	ImageURL  string `json:"imageUrl"`
	SortOrder int    `json:"order" gorm:"column:sort_order"`
	IsActive  bool   `json:"isActive"`
}
