package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/config"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
	"github.com/thanhvu/formforge/internal/repository"
	"google.golang.org/api/option"
)

const generatorSystemPrompt = `You are a form builder AI. Generate a form based on the user's prompt.
Return a JSON object with the following structure:
{
  "title": "Form Title",
  "questions": [
    {
      "text": "Question text",
      "type": "SHORT_RESPONSE" | "SELECT_ONE_OPTION" | "SELECT_MULTIPLE_OPTIONS",
      "placeholder": "Optional placeholder",
      "options": ["option1", "option2"]
    }
  ]
}
Options are only meaningful for SELECT types.
Make sure the form is relevant to the prompt and has appropriate question types.
Return only the JSON object, no surrounding text.`

// GeneratorService builds a complete form from a natural-language prompt via
// Gemini. A malformed model reply creates nothing.
type GeneratorService interface {
	GenerateForm(userID uint, prompt string) (*dto.FormResponse, error)
}

type generatorService struct {
	model    *genai.GenerativeModel
	formRepo repository.FormRepository
}

func NewGeneratorService(cfg *config.Config, formRepo repository.FormRepository) (GeneratorService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Form generation will be non-functional.")
		return &generatorService{formRepo: formRepo}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &generatorService{
		model:    client.GenerativeModel("gemini-1.5-flash"),
		formRepo: formRepo,
	}, nil
}

type generatedQuestion struct {
	Text        string   `json:"text"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder"`
	Options     []string `json:"options"`
}

type generatedForm struct {
	Title     string              `json:"title"`
	Questions []generatedQuestion `json:"questions"`
}

// parseGeneratedForm decodes the model reply, tolerating markdown code
// fences around the JSON object.
func parseGeneratedForm(text string) (*generatedForm, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var form generatedForm
	if err := json.Unmarshal([]byte(cleaned), &form); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}
	if len(form.Questions) == 0 {
		return nil, fmt.Errorf("AI response contains no questions")
	}
	return &form, nil
}

// questionTypeOf maps a generated type onto the three supported question
// types; anything unrecognized (the model occasionally invents TEXT, EMAIL,
// NUMBER or DATE) falls back to a short response.
func questionTypeOf(generated string) model.QuestionType {
	switch model.QuestionType(generated) {
	case model.SelectOneOption:
		return model.SelectOneOption
	case model.SelectMultipleOptions:
		return model.SelectMultipleOptions
	default:
		return model.ShortResponse
	}
}

func (s *generatorService) GenerateForm(userID uint, prompt string) (*dto.FormResponse, error) {
	if s.model == nil {
		return nil, fmt.Errorf("%w: AI service is unavailable", ErrExternalService)
	}

	ctx := context.Background()
	resp, err := s.model.GenerateContent(ctx, genai.Text(generatorSystemPrompt+"\n\nUser prompt: "+prompt))
	if err != nil {
		log.Error().Err(err).Msg("GenerateForm: Gemini API error")
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: AI returned no content", ErrExternalService)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	generated, err := parseGeneratedForm(text.String())
	if err != nil {
		log.Error().Err(err).Str("raw", text.String()).Msg("GenerateForm: unparseable AI response")
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	title := generated.Title
	if title == "" {
		title = "AI Generated Form"
	}
	form := model.Form{
		UserID:   userID,
		PublicID: uuid.NewString(),
		Title:    title,
	}
	for i, q := range generated.Questions {
		questionType := questionTypeOf(q.Type)
		question := model.Question{
			UserID:      userID,
			Text:        q.Text,
			Placeholder: q.Placeholder,
			Type:        questionType,
			Order:       i + 1,
		}
		if questionType != model.ShortResponse {
			for j, optionText := range q.Options {
				question.Options = append(question.Options, model.Option{
					OptionText: optionText,
					Order:      j + 1,
				})
			}
		}
		form.Questions = append(form.Questions, question)
	}

	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Msg("GenerateForm: failed to persist generated form")
		return nil, fmt.Errorf("failed to create generated form: %w", err)
	}

	created, err := s.formRepo.FindByIDWithQuestions(form.ID)
	if err != nil {
		var fallback dto.FormResponse
		copier.Copy(&fallback, &form)
		return &fallback, nil
	}
	var result dto.FormResponse
	copier.Copy(&result, created)
	return &result, nil
}
