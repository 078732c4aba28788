package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
	"github.com/thanhvu/formforge/internal/repository"
)

// ResponseService is the owner-facing read side: grouped per-response
// inspection, the question x response matrix for spreadsheet export, and the
// option tallies behind the charts.
type ResponseService interface {
	GroupedByResponse(userID uint, formID uint) ([]dto.GroupedResponse, error)
	Matrix(userID uint, formID uint) ([][]string, error)
	Summary(userID uint, formID uint) ([]dto.QuestionSummary, error)
}

type responseService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

func NewResponseService(formRepo repository.FormRepository, questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) ResponseService {
	return &responseService{formRepo: formRepo, questionRepo: questionRepo, answerRepo: answerRepo}
}

// GroupedByResponse buckets all answers of the form by response, sorts each
// bucket by question order and returns the buckets newest first.
func (s *responseService) GroupedByResponse(userID uint, formID uint) ([]dto.GroupedResponse, error) {
	if _, err := ownedForm(s.formRepo, userID, formID); err != nil {
		return nil, err
	}
	answers, err := s.answerRepo.FindByFormIDWithDetails(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("GroupedByResponse: failed to load answers")
		return nil, fmt.Errorf("error fetching answers: %w", err)
	}

	buckets := make(map[uint]*dto.GroupedResponse)
	for _, answer := range answers {
		bucket, ok := buckets[answer.ResponseID]
		if !ok {
			bucket = &dto.GroupedResponse{
				ResponseID:  answer.ResponseID,
				SubmittedAt: answer.Response.SubmittedAt,
			}
			buckets[answer.ResponseID] = bucket
		}
		grouped := dto.GroupedAnswer{
			QuestionID:    answer.QuestionID,
			QuestionText:  answer.Question.Text,
			QuestionOrder: answer.Question.Order,
			QuestionType:  string(answer.Question.Type),
			AnswerText:    answer.AnswerText,
		}
		for _, o := range answer.Options {
			grouped.Options = append(grouped.Options, dto.OptionResponse{
				ID:         o.ID,
				QuestionID: o.QuestionID,
				OptionText: o.OptionText,
				Order:      o.Order,
			})
		}
		bucket.Answers = append(bucket.Answers, grouped)
	}

	grouped := make([]dto.GroupedResponse, 0, len(buckets))
	for _, bucket := range buckets {
		sort.SliceStable(bucket.Answers, func(i, j int) bool {
			return bucket.Answers[i].QuestionOrder < bucket.Answers[j].QuestionOrder
		})
		grouped = append(grouped, *bucket)
	}
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].SubmittedAt.After(grouped[j].SubmittedAt)
	})
	return grouped, nil
}

// Matrix returns the export table: a header row of question texts in form
// order, then one row per response with cells aligned by question order.
// Multi-select cells are the chosen option texts joined by "; " in option
// order; an unanswered cell is the empty string.
func (s *responseService) Matrix(userID uint, formID uint) ([][]string, error) {
	if _, err := ownedForm(s.formRepo, userID, formID); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.FindByFormID(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Matrix: failed to load questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	answers, err := s.answerRepo.FindByFormIDWithDetails(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Matrix: failed to load answers")
		return nil, fmt.Errorf("error fetching answers: %w", err)
	}

	header := make([]string, len(questions))
	for i, q := range questions {
		header[i] = q.Text
	}

	rows := make(map[uint][]string)
	var responseIDs []uint
	for _, answer := range answers {
		row, ok := rows[answer.ResponseID]
		if !ok {
			row = make([]string, len(questions))
			rows[answer.ResponseID] = row
			responseIDs = append(responseIDs, answer.ResponseID)
		}
		idx := answer.Question.Order - 1
		if idx < 0 || idx >= len(row) {
			continue
		}
		row[idx] = matrixCell(answer)
	}

	// Rows in submission order.
	sort.Slice(responseIDs, func(i, j int) bool { return responseIDs[i] < responseIDs[j] })

	matrix := make([][]string, 0, len(responseIDs)+1)
	matrix = append(matrix, header)
	for _, id := range responseIDs {
		matrix = append(matrix, rows[id])
	}
	return matrix, nil
}

func matrixCell(answer model.Answer) string {
	switch answer.Question.Type {
	case model.SelectOneOption:
		if len(answer.Options) == 1 {
			return answer.Options[0].OptionText
		}
		return ""
	case model.SelectMultipleOptions:
		texts := make([]string, len(answer.Options))
		for i, o := range answer.Options {
			texts[i] = o.OptionText
		}
		return strings.Join(texts, "; ")
	default:
		return answer.AnswerText
	}
}

// Summary produces the chart tallies. Single-select questions count each
// distinct chosen option; multi-select questions start every option at zero
// so unselected ones still chart, and count one per including answer. Both
// follow option order, never frequency. Short response questions list their
// submitted texts.
func (s *responseService) Summary(userID uint, formID uint) ([]dto.QuestionSummary, error) {
	if _, err := ownedForm(s.formRepo, userID, formID); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.FindByFormID(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Summary: failed to load questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	answers, err := s.answerRepo.FindByFormIDWithDetails(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Summary: failed to load answers")
		return nil, fmt.Errorf("error fetching answers: %w", err)
	}

	byQuestion := make(map[uint][]model.Answer)
	for _, answer := range answers {
		byQuestion[answer.QuestionID] = append(byQuestion[answer.QuestionID], answer)
	}

	summaries := make([]dto.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		summary := dto.QuestionSummary{
			QuestionID: q.ID,
			Text:       q.Text,
			Type:       string(q.Type),
			Order:      q.Order,
		}
		switch q.Type {
		case model.ShortResponse:
			for _, answer := range byQuestion[q.ID] {
				summary.Texts = append(summary.Texts, answer.AnswerText)
			}
		case model.SelectOneOption:
			counts := make(map[uint]int)
			for _, answer := range byQuestion[q.ID] {
				for _, o := range answer.Options {
					counts[o.ID]++
				}
			}
			for _, o := range q.Options {
				if counts[o.ID] == 0 {
					continue
				}
				summary.OptionCounts = append(summary.OptionCounts, dto.OptionCount{
					OptionID:   o.ID,
					OptionText: o.OptionText,
					Order:      o.Order,
					Count:      counts[o.ID],
				})
			}
		case model.SelectMultipleOptions:
			counts := make(map[uint]int, len(q.Options))
			for _, o := range q.Options {
				counts[o.ID] = 0
			}
			for _, answer := range byQuestion[q.ID] {
				for _, o := range answer.Options {
					counts[o.ID]++
				}
			}
			for _, o := range q.Options {
				summary.OptionCounts = append(summary.OptionCounts, dto.OptionCount{
					OptionID:   o.ID,
					OptionText: o.OptionText,
					Order:      o.Order,
					Count:      counts[o.ID],
				})
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
