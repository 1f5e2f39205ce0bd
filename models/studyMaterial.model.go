package models

import "gorm.io/gorm"

// Study material file types
const (
	MaterialTypePDF          = "PDF"
	MaterialTypeDOCX         = "DOCX"
	MaterialTypeVideo        = "VIDEO"
	MaterialTypePresentation = "PRESENTATION"
	MaterialTypeEbook        = "EBOOK"
)

// StudyMaterial is a downloadable/streamable learning resource
type StudyMaterial struct {
	gorm.Model
	DomainID    uint   `json:"domainId" gorm:"index"`
	CourseID    uint   `json:"courseId" gorm:"index"`
	FileName    string `json:"fileName"`
	Description string `json:"description" gorm:"type:text"`
	FileType    string `json:"fileType"` // PDF, DOCX, VIDEO, PRESENTATION, EBOOK
	Highlight   string `json:"highlight"`
	FilePath    string `json:"filePath"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `json:"isActive"`
}
