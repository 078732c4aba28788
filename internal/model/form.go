package model

import (
	"time"

	"gorm.io/gorm"
)

// Form is the aggregate root. PublicID is the stable share-link token; it
// never changes once the form is created, so a link stays valid across
// renames and publish toggles.
type Form struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	PublicID  string         `json:"public_id" gorm:"size:36;uniqueIndex;not null"`
	Title     string         `json:"title"`
	Published bool           `json:"published" gorm:"not null;default:false"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:FormID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
