package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
	"github.com/thanhvu/formforge/internal/repository"
)

type OptionService interface {
	Create(userID uint, formID uint, questionID uint, req dto.CreateOptionRequest) (*dto.OptionResponse, error)
	UpdateText(userID uint, formID uint, questionID uint, optionID uint, req dto.UpdateOptionRequest) (*dto.OptionResponse, error)
	Delete(userID uint, formID uint, questionID uint, optionID uint) error
}

type optionService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
}

func NewOptionService(formRepo repository.FormRepository, questionRepo repository.QuestionRepository, optionRepo repository.OptionRepository) OptionService {
	return &optionService{formRepo: formRepo, questionRepo: questionRepo, optionRepo: optionRepo}
}

// ownedQuestion resolves the question behind an option mutation after the
// form ownership gate.
func (s *optionService) ownedQuestion(userID, formID, questionID uint) (*model.Question, error) {
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
	if question.Type == model.ShortResponse {
		return nil, fmt.Errorf("%w: short response questions have no options", ErrValidation)
	}
	return question, nil
}

func (s *optionService) Create(userID uint, formID uint, questionID uint, req dto.CreateOptionRequest) (*dto.OptionResponse, error) {
	if _, err := s.ownedQuestion(userID, formID, questionID); err != nil {
		return nil, err
	}

	maxOrder, err := s.optionRepo.MaxOrder(questionID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Create: failed to read max option order")
		return nil, fmt.Errorf("failed to determine option order: %w", err)
	}

	option := model.Option{
		QuestionID: questionID,
		OptionText: req.OptionText,
		Order:      maxOrder + 1,
	}
	if err := s.optionRepo.Create(&option); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Create: failed to create option")
		return nil, fmt.Errorf("failed to create option: %w", err)
	}

	var resp dto.OptionResponse
	copier.Copy(&resp, &option)
	return &resp, nil
}

func (s *optionService) UpdateText(userID uint, formID uint, questionID uint, optionID uint, req dto.UpdateOptionRequest) (*dto.OptionResponse, error) {
	if _, err := s.ownedQuestion(userID, formID, questionID); err != nil {
		return nil, err
	}
	option, err := s.optionRepo.FindByID(optionID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if option.QuestionID != questionID {
		return nil, fmt.Errorf("%w: option %d is not part of question %d", ErrValidation, optionID, questionID)
	}

	option.OptionText = req.OptionText
	if err := s.optionRepo.Update(option); err != nil {
		log.Error().Err(err).Uint("optionID", optionID).Msg("UpdateText: failed to update option")
		return nil, fmt.Errorf("failed to update option: %w", err)
	}
	var resp dto.OptionResponse
	copier.Copy(&resp, option)
	return &resp, nil
}

func (s *optionService) Delete(userID uint, formID uint, questionID uint, optionID uint) error {
	if _, err := s.ownedQuestion(userID, formID, questionID); err != nil {
		return err
	}
	option, err := s.optionRepo.FindByID(optionID)
	if err != nil {
		return asNotFound(err)
	}
	if option.QuestionID != questionID {
		return fmt.Errorf("%w: option %d is not part of question %d", ErrValidation, optionID, questionID)
	}
	return s.optionRepo.Delete(optionID)
}
