package repository

import (
	"github.com/thanhvu/formforge/internal/model"
	"gorm.io/gorm"
)

type OptionRepository interface {
	Create(option *model.Option) error
	FindByID(id uint) (*model.Option, error)
	MaxOrder(questionID uint) (int, error)
	Update(option *model.Option) error
	Delete(id uint) error
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) Create(option *model.Option) error {
	return r.db.Create(option).Error
}

func (r *optionRepository) FindByID(id uint) (*model.Option, error) {
	var option model.Option
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *optionRepository) MaxOrder(questionID uint) (int, error) {
	var max int
	err := r.db.Model(&model.Option{}).
		Where("question_id = ?", questionID).
		Select("COALESCE(MAX(option_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *optionRepository) Update(option *model.Option) error {
	return r.db.Save(option).Error
}

// Delete removes the option without renumbering siblings; remaining order
// gaps are tolerated for options.
func (r *optionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Option{}, id).Error
}
