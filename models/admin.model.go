package models

import "gorm.io/gorm"

// Admin is a dashboard user; password is always stored bcrypt-hashed
type Admin struct {
	gorm.Model
	Username string `json:"username" gorm:"size:255;not null"`
	Email    string `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Password string `json:"-" gorm:"size:255;not null"`
}
