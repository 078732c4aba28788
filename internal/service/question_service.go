package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
	"github.com/thanhvu/formforge/internal/repository"
	"gorm.io/gorm"
)

// QuestionService manages a form's questions and keeps their order values a
// contiguous 1..N sequence: creation appends at N+1, deletion renumbers the
// siblings behind the removed question.
type QuestionService interface {
	Create(userID uint, formID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetAll(userID uint, formID uint) ([]dto.QuestionResponse, error)
	Update(userID uint, formID uint, questionID uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	Delete(userID uint, formID uint, questionID uint) error
}

type questionService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	db           *gorm.DB
}

func NewQuestionService(formRepo repository.FormRepository, questionRepo repository.QuestionRepository, db *gorm.DB) QuestionService {
	return &questionService{formRepo: formRepo, questionRepo: questionRepo, db: db}
}

func (s *questionService) Create(userID uint, formID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := ownedForm(s.formRepo, userID, formID); err != nil {
		return nil, err
	}

	questionType := model.QuestionType(req.Type)
	if questionType == model.ShortResponse && len(req.Options) > 0 {
		return nil, fmt.Errorf("%w: options are only valid for select questions", ErrValidation)
	}

	maxOrder, err := s.questionRepo.MaxOrder(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Create: failed to read max question order")
		return nil, fmt.Errorf("failed to determine question order: %w", err)
	}

	question := model.Question{
		FormID:      formID,
		UserID:      userID,
		Text:        req.Text,
		Placeholder: req.Placeholder,
		Type:        questionType,
		Order:       maxOrder + 1,
		Mandatory:   req.Mandatory,
	}
	for i, optionText := range req.Options {
		question.Options = append(question.Options, model.Option{
			OptionText: optionText,
			Order:      i + 1,
		})
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Create: failed to create question")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetAll(userID uint, formID uint) ([]dto.QuestionResponse, error) {
	if _, err := ownedForm(s.formRepo, userID, formID); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.FindByFormID(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("GetAll: failed to load questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	dtos := make([]dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		var resp dto.QuestionResponse
		copier.Copy(&resp, &question)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *questionService) Update(userID uint, formID uint, questionID uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := ownedForm(s.formRepo, userID, formID); err != nil {
		return nil, err
	}
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if question.FormID != formID {
		return nil, fmt.Errorf("%w: question %d is not part of form %d", ErrValidation, questionID, formID)
	}

	// Partial update; nil fields stay untouched.
	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Placeholder != nil {
		question.Placeholder = *req.Placeholder
	}
	if req.Mandatory != nil {
		question.Mandatory = *req.Mandatory
	}

	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Update: failed to update question")
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	updated, err := s.questionRepo.FindByIDWithOptions(questionID)
	if err != nil {
		updated = question
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, updated)
	return &resp, nil
}

// Delete removes the question and closes the order gap: every sibling with a
// greater order is decremented by one inside the same transaction, so readers
// never observe a colliding or non-contiguous sequence.
func (s *questionService) Delete(userID uint, formID uint, questionID uint) error {
	if _, err := ownedForm(s.formRepo, userID, formID); err != nil {
		return err
	}
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return asNotFound(err)
	}
	if question.FormID != formID {
		return fmt.Errorf("%w: question %d is not part of form %d", ErrValidation, questionID, formID)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM answer_options WHERE answer_id IN (SELECT id FROM answers WHERE question_id = ?)",
			questionID,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Question{}, questionID).Error; err != nil {
			return err
		}
		return tx.Model(&model.Question{}).
			Where("form_id = ? AND question_order > ?", formID, question.Order).
			UpdateColumn("question_order", gorm.Expr("question_order - 1")).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Delete: failed to delete question")
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
