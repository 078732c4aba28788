package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer records one question's value within one response. Exactly one row per
// answered question per response. SHORT_RESPONSE carries AnswerText and no
// options; SELECT_* carry options and an empty AnswerText.
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Question   Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	FormID     uint           `json:"form_id" gorm:"not null;index"`
	ResponseID uint           `json:"response_id" gorm:"not null;index"`
	Response   Response       `json:"response,omitempty" gorm:"foreignKey:ResponseID"`
	AnswerText string         `json:"answer_text" gorm:"type:text"`
	Options    []Option       `json:"options,omitempty" gorm:"many2many:answer_options"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
