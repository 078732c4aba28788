package repository

import (
	"github.com/thanhvu/formforge/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByFormIDWithDetails(formID uint) ([]model.Answer, error)
	CountResponsesByFormID(formID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// FindByFormIDWithDetails loads every answer of a form together with its
// question, attached options and response, everything the aggregator needs
// in one query.
func (r *answerRepository) FindByFormIDWithDetails(formID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Where("form_id = ?", formID).
		Preload("Question").
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.option_order ASC")
		}).
		Preload("Response").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// CountResponsesByFormID counts distinct submissions, not answer rows.
func (r *answerRepository) CountResponsesByFormID(formID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("form_id = ?", formID).
		Distinct("response_id").
		Count(&count).Error
	return count, err
}
