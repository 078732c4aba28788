package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
	"github.com/thanhvu/formforge/internal/repository"
	"github.com/thanhvu/formforge/internal/template"
	"gorm.io/gorm"
)

// FormService owns the form lifecycle: creation (blank or from a template),
// listing, renaming, the Draft/Published toggle and the cascading delete.
type FormService interface {
	Create(userID uint, title string) (*dto.FormResponse, error)
	CreateFromTemplate(userID uint, templateID string) (*dto.FormResponse, error)
	GetAll(userID uint) ([]dto.FormResponse, error)
	Get(userID uint, formID uint) (*dto.FormResponse, error)
	Rename(userID uint, formID uint, title string) (*dto.FormResponse, error)
	TogglePublish(userID uint, formID uint) (*dto.FormResponse, error)
	Delete(userID uint, formID uint) error
}

type formService struct {
	formRepo   repository.FormRepository
	answerRepo repository.AnswerRepository
	db         *gorm.DB
}

func NewFormService(formRepo repository.FormRepository, answerRepo repository.AnswerRepository, db *gorm.DB) FormService {
	return &formService{formRepo: formRepo, answerRepo: answerRepo, db: db}
}

func (s *formService) Create(userID uint, title string) (*dto.FormResponse, error) {
	form := model.Form{
		UserID:   userID,
		PublicID: uuid.NewString(),
		Title:    title,
	}
	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Create: failed to create form")
		return nil, fmt.Errorf("failed to create form: %w", err)
	}
	var resp dto.FormResponse
	copier.Copy(&resp, &form)
	return &resp, nil
}

func (s *formService) CreateFromTemplate(userID uint, templateID string) (*dto.FormResponse, error) {
	tpl, ok := template.Find(templateID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown template %q", ErrNotFound, templateID)
	}

	form := model.Form{
		UserID:   userID,
		PublicID: uuid.NewString(),
		Title:    tpl.Name,
	}
	for i, q := range tpl.Questions {
		question := model.Question{
			UserID:      userID,
			Text:        q.Text,
			Placeholder: q.Placeholder,
			Type:        q.Type,
			Order:       i + 1,
		}
		for j, optionText := range q.Options {
			question.Options = append(question.Options, model.Option{
				OptionText: optionText,
				Order:      j + 1,
			})
		}
		form.Questions = append(form.Questions, question)
	}

	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Str("templateID", templateID).Msg("CreateFromTemplate: failed to create form")
		return nil, fmt.Errorf("failed to create form from template: %w", err)
	}

	created, err := s.formRepo.FindByIDWithQuestions(form.ID)
	if err != nil {
		log.Error().Err(err).Uint("formID", form.ID).Msg("CreateFromTemplate: failed to reload created form")
		var fallback dto.FormResponse
		copier.Copy(&fallback, &form)
		return &fallback, nil
	}
	var resp dto.FormResponse
	copier.Copy(&resp, created)
	return &resp, nil
}

func (s *formService) GetAll(userID uint) ([]dto.FormResponse, error) {
	forms, err := s.formRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetAll: failed to list forms")
		return nil, fmt.Errorf("error fetching forms: %w", err)
	}
	dtos := make([]dto.FormResponse, 0, len(forms))
	for _, form := range forms {
		var resp dto.FormResponse
		copier.Copy(&resp, &form)
		if count, err := s.answerRepo.CountResponsesByFormID(form.ID); err == nil {
			resp.ResponsesCount = count
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *formService) Get(userID uint, formID uint) (*dto.FormResponse, error) {
	if _, err := ownedForm(s.formRepo, userID, formID); err != nil {
		return nil, err
	}
	form, err := s.formRepo.FindByIDWithQuestions(formID)
	if err != nil {
		return nil, asNotFound(err)
	}
	var resp dto.FormResponse
	copier.Copy(&resp, form)
	if count, err := s.answerRepo.CountResponsesByFormID(form.ID); err == nil {
		resp.ResponsesCount = count
	}
	return &resp, nil
}

func (s *formService) Rename(userID uint, formID uint, title string) (*dto.FormResponse, error) {
	form, err := ownedForm(s.formRepo, userID, formID)
	if err != nil {
		return nil, err
	}
	form.Title = title
	if err := s.formRepo.Update(form); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Rename: failed to update form")
		return nil, fmt.Errorf("failed to rename form: %w", err)
	}
	var resp dto.FormResponse
	copier.Copy(&resp, form)
	return &resp, nil
}

func (s *formService) TogglePublish(userID uint, formID uint) (*dto.FormResponse, error) {
	form, err := ownedForm(s.formRepo, userID, formID)
	if err != nil {
		return nil, err
	}
	form.Published = !form.Published
	if err := s.formRepo.Update(form); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("TogglePublish: failed to update form")
		return nil, fmt.Errorf("failed to toggle publish state: %w", err)
	}
	var resp dto.FormResponse
	copier.Copy(&resp, form)
	return &resp, nil
}

// Delete removes the form and everything it exclusively owns in one
// transaction: option links, answers, options, questions, responses left
// without any answers, and finally the form itself.
func (s *formService) Delete(userID uint, formID uint) error {
	if _, err := ownedForm(s.formRepo, userID, formID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var responseIDs []uint
		if err := tx.Model(&model.Answer{}).
			Where("form_id = ?", formID).
			Distinct().
			Pluck("response_id", &responseIDs).Error; err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM answer_options WHERE answer_id IN (SELECT id FROM answers WHERE form_id = ?)",
			formID,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", formID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"question_id IN (SELECT id FROM questions WHERE form_id = ?)", formID,
		).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", formID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if len(responseIDs) > 0 {
			if err := tx.Where(
				"id IN ? AND NOT EXISTS (SELECT 1 FROM answers WHERE answers.response_id = responses.id AND answers.deleted_at IS NULL)",
				responseIDs,
			).Delete(&model.Response{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Form{}, formID).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Delete: cascading form delete failed")
		return fmt.Errorf("failed to delete form: %w", err)
	}
	return nil
}
