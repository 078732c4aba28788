package repository

import (
	"github.com/thanhvu/formforge/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithOptions(id uint) (*model.Question, error)
	FindByFormID(formID uint) ([]model.Question, error)
	MaxOrder(formID uint) (int, error)
	Update(question *model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithOptions(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.option_order ASC")
		}).
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByFormID(formID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Where("form_id = ?", formID).
		Order("question_order ASC").
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.option_order ASC")
		}).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) MaxOrder(formID uint) (int, error) {
	var max int
	err := r.db.Model(&model.Question{}).
		Where("form_id = ?", formID).
		Select("COALESCE(MAX(question_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}
