package models

import "gorm.io/gorm"

// FAQChat is one question/answer pair in the step-based FAQ chat widget
type FAQChat struct {
	gorm.Model
	Step     int    `json:"step" gorm:"index"`
	Question string `json:"question" gorm:"type:text"`
	Answer   string `json:"answer" gorm:"type:text"`
	IsActive bool   `json:"isActive"`
}
