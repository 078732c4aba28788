package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	ShortResponse         QuestionType = "SHORT_RESPONSE"
	SelectOneOption       QuestionType = "SELECT_ONE_OPTION"
	SelectMultipleOptions QuestionType = "SELECT_MULTIPLE_OPTIONS"
)

// Question belongs to a form. UserID duplicates the form owner so ownership
// checks don't need a join. Order is 1-based and kept contiguous per form.
type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	FormID      uint           `json:"form_id" gorm:"not null;index"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Text        string         `json:"text" gorm:"type:text"`
	Placeholder string         `json:"placeholder"`
	Type        QuestionType   `json:"type" gorm:"not null"`
	Order       int            `json:"order" gorm:"column:question_order;not null"`
	Mandatory   bool           `json:"mandatory" gorm:"not null;default:false"`
	Options     []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
