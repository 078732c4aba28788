package model

import (
	"time"

	"gorm.io/gorm"
)

// Option is one selectable choice of a SELECT_ONE_OPTION or
// SELECT_MULTIPLE_OPTIONS question. Order gaps after deletes are tolerated.
type Option struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	OptionText string         `json:"option_text"`
	Order      int            `json:"order" gorm:"column:option_order;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
