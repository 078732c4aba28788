package dto

import "time"

type OptionResponse struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	OptionText string `json:"option_text"`
	Order      int    `json:"order"`
}

type QuestionResponse struct {
	ID          uint             `json:"id"`
	FormID      uint             `json:"form_id"`
	Text        string           `json:"text"`
	Placeholder string           `json:"placeholder,omitempty"`
	Type        string           `json:"type"`
	Order       int              `json:"order"`
	Mandatory   bool             `json:"mandatory"`
	Options     []OptionResponse `json:"options,omitempty"`
}

type FormResponse struct {
	ID             uint               `json:"id"`
	PublicID       string             `json:"public_id"`
	Title          string             `json:"title"`
	Published      bool               `json:"published"`
	ResponsesCount int64              `json:"responses_count"`
	Questions      []QuestionResponse `json:"questions,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// PublicFormResponse is the respondent view of a published form; it exposes no
// owner information.
type PublicFormResponse struct {
	PublicID  string             `json:"public_id"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
}

type SubmitFormResponse struct {
	ResponseID uint `json:"response_id"`
}

// GroupedAnswer carries everything needed to re-render one answer without
// another query.
type GroupedAnswer struct {
	QuestionID    uint             `json:"question_id"`
	QuestionText  string           `json:"question_text"`
	QuestionOrder int              `json:"question_order"`
	QuestionType  string           `json:"question_type"`
	AnswerText    string           `json:"answer_text"`
	Options       []OptionResponse `json:"options,omitempty"`
}

type GroupedResponse struct {
	ResponseID  uint            `json:"response_id"`
	SubmittedAt time.Time       `json:"submitted_at"`
	Answers     []GroupedAnswer `json:"answers"`
}

// OptionCount is one bar of a chart tally. Unselected options of multi-select
// questions still appear with Count zero.
type OptionCount struct {
	OptionID   uint   `json:"option_id"`
	OptionText string `json:"option_text"`
	Order      int    `json:"order"`
	Count      int    `json:"count"`
}

type QuestionSummary struct {
	QuestionID   uint          `json:"question_id"`
	Text         string        `json:"text"`
	Type         string        `json:"type"`
	Order        int           `json:"order"`
	OptionCounts []OptionCount `json:"option_counts,omitempty"`
	Texts        []string      `json:"texts,omitempty"`
}

type TemplateQuestionResponse struct {
	Text        string   `json:"text"`
	Placeholder string   `json:"placeholder,omitempty"`
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
}

type TemplateResponse struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Icon        string                     `json:"icon"`
	Category    string                     `json:"category"`
	Questions   []TemplateQuestionResponse `json:"questions"`
}

type CreateTicketResponse struct {
	TicketID int64 `json:"ticket_id"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
