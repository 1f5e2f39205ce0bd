package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SocialLink is one social media handle shown on the trainer card
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// TrainerAbout represents the trainer introduction section
type TrainerAbout struct {
	gorm.Model
	DomainID     uint                            `json:"domainId" gorm:"index"`
	CourseID     uint                            `json:"courseId" gorm:"index"`
	Label        string                          `json:"label"`
	Heading      string                          `json:"heading"`
	Description1 string                          `json:"description1" gorm:"type:text"`
	Description2 string                          `json:"description2" gorm:"type:text"`
	MainImage    string                          `json:"mainImage"`
	SocialLinks  datatypes.JSONSlice[SocialLink] `json:"socialLinks"`
	IsActive     bool                            `json:"isActive"`
}
