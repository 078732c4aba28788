package repository

import (
	"github.com/thanhvu/formforge/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindByPublicID(publicID string) (*model.Form, error)
	FindByIDWithQuestions(id uint) (*model.Form, error)
	FindAllByUser(userID uint) ([]model.Form, error)
	Update(form *model.Form) error
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	// GORM creates associated questions and options when they are populated.
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.First(&form, id).Error
	return &form, err
}

func (r *formRepository) FindByPublicID(publicID string) (*model.Form, error) {
	var form model.Form
	err := r.db.Where("public_id = ?", publicID).First(&form).Error
	return &form, err
}

func (r *formRepository) FindByIDWithQuestions(id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.question_order ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.option_order ASC")
		}).
		First(&form, id).Error
	return &form, err
}

func (r *formRepository) FindAllByUser(userID uint) ([]model.Form, error) {
	var forms []model.Form
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&forms).Error
	return forms, err
}

func (r *formRepository) Update(form *model.Form) error {
	return r.db.Save(form).Error
}
