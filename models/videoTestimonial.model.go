package models

import "gorm.io/gorm"

// VideoTestimonial is a student testimonial with a video link and thumbnail
type VideoTestimonial struct {
	gorm.Model
	DomainID  uint   `json:"domainId" gorm:"index"`
	CourseID  uint   `json:"courseId" gorm:"index"`
	Name      string `json:"name"`
	Batch     string `json:"batch"`
	Quote     string `json:"quote" gorm:"type:text"`
	ImageURL  string `json:"imageUrl"`
	VideoURL  string `json:"videoUrl"`
	SortOrder int    `json:"order" gorm:"column:sort_order"`
	IsActive  bool   `json:"isActive"`
}
