package models

import "gorm.io/gorm"

// Notice is a marquee/navbar announcement line
type Notice struct {
	gorm.Model
	Content  string `json:"content" gorm:"type:text;not null"`
	IsActive bool   `json:"isActive"`
}
