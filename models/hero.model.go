package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RunningText is a single marquee entry shown under the hero banner
type RunningText struct {
	Text string `json:"text"`
}

// Hero represents the hero/banner section of a page
type Hero struct {
	gorm.Model
	DomainID    uint   `json:"domainId" gorm:"index"` // 0 = landing
	CourseID    uint   `json:"courseId" gorm:"index"` // 0 = domain-level
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description" gorm:"type:text"`

	Images       datatypes.JSONSlice[string]      `json:"images"` // slider images
	RunningTexts datatypes.JSONSlice[RunningText] `json:"runningTexts"`

	IsActive bool `json:"isActive"`
}
