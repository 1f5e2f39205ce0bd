package models

import "gorm.io/gorm"

// CareerImpact represents the career impact section (one main card, two side cards)
type CareerImpact struct {
	gorm.Model
	DomainID uint `json:"domainId" gorm:"index"`
	CourseID uint `json:"courseId" gorm:"index"`

	MainTitle       string `json:"mainTitle"`
	MainDescription string `json:"mainDescription" gorm:"type:text"`
	CtaText         string `json:"ctaText"`
	CtaLink         string `json:"ctaLink"`

	Card1Title       string `json:"card1Title"`
	Card1Description string `json:"card1Description" gorm:"type:text"`
	Card2Title       string `json:"card2Title"`
	Card2Description string `json:"card2Description" gorm:"type:text"`

	IsActive bool `json:"isActive"`
}
