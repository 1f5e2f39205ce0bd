package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// About represents the "About Us" / "About <Domain>" section
type About struct {
	gorm.Model
	DomainID     uint                        `json:"domainId" gorm:"index"`
	CourseID     uint                        `json:"courseId" gorm:"index"`
	Label        string                      `json:"label"` // "About Us", "About DevOps", etc.
	Heading      string                      `json:"heading"`
	Description1 string                      `json:"description1" gorm:"type:text"`
	Description2 string                      `json:"description2" gorm:"type:text"`
	MainImages   datatypes.JSONSlice[string] `json:"mainImages"` // slideshow images
	IsActive     bool                        `json:"isActive"`
}
