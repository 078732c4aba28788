package model

import (
	"time"

	"gorm.io/gorm"
)

// Response anchors one completed submission. It carries no owner or form
// reference; answers link back to it.
type Response struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
