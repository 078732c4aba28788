package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
	"github.com/thanhvu/formforge/internal/repository"
	"gorm.io/gorm"
)

// ticketingFormTitle marks the form whose submissions are bridged to the
// helpdesk. The question texts below are the fixed labels the bridge reads.
const ticketingFormTitle = "Ticketing Form"

// SubmissionService validates and persists respondent submissions. A
// submission either fully succeeds (one response plus one answer row per
// answered question) or writes nothing.
type SubmissionService interface {
	GetPublicForm(publicID string, viewerID *uint) (*dto.PublicFormResponse, error)
	Submit(formID uint, req dto.SubmitFormRequest) (*dto.SubmitFormResponse, error)
	SubmitPublic(publicID string, viewerID *uint, req dto.SubmitFormRequest) (*dto.SubmitFormResponse, error)
}

type submissionService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	ticketSvc    TicketService
	db           *gorm.DB
}

func NewSubmissionService(formRepo repository.FormRepository, questionRepo repository.QuestionRepository, ticketSvc TicketService, db *gorm.DB) SubmissionService {
	return &submissionService{
		formRepo:     formRepo,
		questionRepo: questionRepo,
		ticketSvc:    ticketSvc,
		db:           db,
	}
}

// normalizedAnswer is the typed record the normalizer emits for one answered
// question.
type normalizedAnswer struct {
	questionID uint
	qtype      model.QuestionType
	text       string
	optionID   uint
	optionIDs  []uint
}

// normalizeAnswers flattens the per-question answer inputs into typed records.
// Short responses are always emitted, even with empty text; select questions
// without a chosen option are treated as unanswered and dropped. Duplicate
// option ids within one multi-select answer collapse to one.
func normalizeAnswers(inputs []dto.AnswerInput) []normalizedAnswer {
	var out []normalizedAnswer
	for _, in := range inputs {
		switch model.QuestionType(in.Type) {
		case model.ShortResponse:
			out = append(out, normalizedAnswer{
				questionID: in.QuestionID,
				qtype:      model.ShortResponse,
				text:       in.Text,
			})
		case model.SelectOneOption:
			if in.OptionID != nil && *in.OptionID != 0 {
				out = append(out, normalizedAnswer{
					questionID: in.QuestionID,
					qtype:      model.SelectOneOption,
					optionID:   *in.OptionID,
				})
			}
		case model.SelectMultipleOptions:
			if len(in.OptionIDs) == 0 {
				continue
			}
			seen := make(map[uint]bool, len(in.OptionIDs))
			var ids []uint
			for _, id := range in.OptionIDs {
				if !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
			out = append(out, normalizedAnswer{
				questionID: in.QuestionID,
				qtype:      model.SelectMultipleOptions,
				optionIDs:  ids,
			})
		}
	}
	return out
}

// GetPublicForm returns the respondent view of a form: published forms are
// visible to anyone, drafts only to their owner.
func (s *submissionService) GetPublicForm(publicID string, viewerID *uint) (*dto.PublicFormResponse, error) {
	form, err := s.formRepo.FindByPublicID(publicID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if !form.Published && (viewerID == nil || *viewerID != form.UserID) {
		return nil, ErrNotPublished
	}

	questions, err := s.questionRepo.FindByFormID(form.ID)
	if err != nil {
		log.Error().Err(err).Uint("formID", form.ID).Msg("GetPublicForm: failed to load questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	resp := dto.PublicFormResponse{
		PublicID:  form.PublicID,
		Title:     form.Title,
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		qr := dto.QuestionResponse{
			ID:          q.ID,
			FormID:      q.FormID,
			Text:        q.Text,
			Placeholder: q.Placeholder,
			Type:        string(q.Type),
			Order:       q.Order,
			Mandatory:   q.Mandatory,
		}
		for _, o := range q.Options {
			qr.Options = append(qr.Options, dto.OptionResponse{
				ID:         o.ID,
				QuestionID: o.QuestionID,
				OptionText: o.OptionText,
				Order:      o.Order,
			})
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return &resp, nil
}

// SubmitPublic resolves the share link and applies the publish gate before
// running the pipeline.
func (s *submissionService) SubmitPublic(publicID string, viewerID *uint, req dto.SubmitFormRequest) (*dto.SubmitFormResponse, error) {
	form, err := s.formRepo.FindByPublicID(publicID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if !form.Published && (viewerID == nil || *viewerID != form.UserID) {
		return nil, ErrNotPublished
	}
	return s.Submit(form.ID, req)
}

// Submit runs the submission pipeline: normalize, validate mandatory
// coverage, reject forged question/option ids, then persist the response and
// its answers in one transaction. The ticketing side effect runs after the
// commit; its failure is surfaced but never rolls the committed rows back.
func (s *submissionService) Submit(formID uint, req dto.SubmitFormRequest) (*dto.SubmitFormResponse, error) {
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		return nil, asNotFound(err)
	}

	questions, err := s.questionRepo.FindByFormID(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Submit: failed to load questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	answers := normalizeAnswers(req.Answers)

	answered := make(map[uint]normalizedAnswer, len(answers))
	for _, a := range answers {
		answered[a.questionID] = a
	}
	for _, q := range questions {
		if !q.Mandatory {
			continue
		}
		a, ok := answered[q.ID]
		if !ok {
			return nil, fmt.Errorf("%w: mandatory question %q must be answered", ErrValidation, q.Text)
		}
		if q.Type == model.ShortResponse && strings.TrimSpace(a.text) == "" {
			return nil, fmt.Errorf("%w: mandatory question %q must be answered", ErrValidation, q.Text)
		}
	}

	questionMap := make(map[uint]model.Question, len(questions))
	optionMap := make(map[uint]model.Option)
	for _, q := range questions {
		questionMap[q.ID] = q
		for _, o := range q.Options {
			optionMap[o.ID] = o
		}
	}
	for _, a := range answers {
		q, ok := questionMap[a.questionID]
		if !ok || q.FormID != formID {
			return nil, fmt.Errorf("%w: question %d does not belong to the form", ErrValidation, a.questionID)
		}
		ids := a.optionIDs
		if a.optionID != 0 {
			ids = []uint{a.optionID}
		}
		for _, id := range ids {
			o, ok := optionMap[id]
			if !ok || o.QuestionID != a.questionID {
				return nil, fmt.Errorf("%w: option %d does not belong to question %d", ErrValidation, id, a.questionID)
			}
		}
	}

	var response model.Response
	err = s.db.Transaction(func(tx *gorm.DB) error {
		response = model.Response{SubmittedAt: time.Now()}
		if err := tx.Create(&response).Error; err != nil {
			return fmt.Errorf("failed to create response: %w", err)
		}
		for _, a := range answers {
			answer := model.Answer{
				QuestionID: a.questionID,
				FormID:     formID,
				ResponseID: response.ID,
			}
			switch a.qtype {
			case model.ShortResponse:
				answer.AnswerText = a.text
			case model.SelectOneOption:
				answer.Options = []model.Option{optionMap[a.optionID]}
			case model.SelectMultipleOptions:
				for _, id := range a.optionIDs {
					answer.Options = append(answer.Options, optionMap[id])
				}
			}
			// Omit the option rows themselves; only the join records are new.
			if err := tx.Omit("Options.*").Create(&answer).Error; err != nil {
				return fmt.Errorf("failed to create answer for question %d: %w", a.questionID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Submit: submission transaction failed")
		return nil, err
	}

	result := &dto.SubmitFormResponse{ResponseID: response.ID}

	if form.Title == ticketingFormTitle {
		if err := s.forwardTicket(questions, answers); err != nil {
			log.Error().Err(err).Uint("formID", formID).Uint("responseID", response.ID).Msg("Submit: ticket creation failed after commit")
			return result, fmt.Errorf("%w: form submitted but ticket creation failed: %v", ErrExternalService, err)
		}
	}

	return result, nil
}

// forwardTicket extracts the fixed ticketing answers by question text and
// forwards them to the helpdesk. Called only after the submission committed.
func (s *submissionService) forwardTicket(questions []model.Question, answers []normalizedAnswer) error {
	textByID := make(map[uint]string, len(questions))
	for _, q := range questions {
		textByID[q.ID] = q.Text
	}

	var ticket dto.CreateTicketRequest
	for _, a := range answers {
		switch textByID[a.questionID] {
		case "Seat Number":
			ticket.SeatNo = a.text
		case "Name":
			ticket.Name = a.text
		case "Email":
			ticket.Email = a.text
		case "Subject":
			ticket.Subject = a.text
		case "Description":
			ticket.Description = a.text
		}
	}

	_, err := s.ticketSvc.CreateTicket(ticket)
	return err
}
