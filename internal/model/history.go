package model

import (
	"time"

	"gorm.io/gorm"
)

type TouchStatus string

const (
	StatusSuccess TouchStatus = "SUCCESS"
	StatusFailed  TouchStatus = "FAILED"
)

type TouchRecord struct {
	gorm.Model
	Status       TouchStatus `gorm:"not null"`
	Path         string      `gorm:"not null"`
	Action       string      `gorm:"not null"`
	Source       string      `gorm:"not null"`
	Mode         string      `gorm:"not null"`
	AccessTime   *time.Time
	ModifiedTime *time.Time
	ErrMsg       string
	TouchedAt    time.Time `gorm:"not null;index"`
}
