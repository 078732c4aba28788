package dto

// CreateFormRequest creates an empty form. Title may be empty; the builder UI
// names the form afterwards.
type CreateFormRequest struct {
	Title string `json:"title"`
}

type CreateFormFromTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

type RenameFormRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateQuestionRequest appends a question to a form; order is assigned
// server-side (max existing + 1). Options are only honored for SELECT_* types.
type CreateQuestionRequest struct {
	Text        string   `json:"text" binding:"required"`
	Placeholder string   `json:"placeholder"`
	Type        string   `json:"type" binding:"required,oneof=SHORT_RESPONSE SELECT_ONE_OPTION SELECT_MULTIPLE_OPTIONS"`
	Mandatory   bool     `json:"mandatory"`
	Options     []string `json:"options"`
}

// UpdateQuestionRequest is a partial update; nil fields are left unchanged.
type UpdateQuestionRequest struct {
	Text        *string `json:"text"`
	Placeholder *string `json:"placeholder"`
	Mandatory   *bool   `json:"mandatory"`
}

type CreateOptionRequest struct {
	OptionText string `json:"option_text" binding:"required"`
}

type UpdateOptionRequest struct {
	OptionText string `json:"option_text" binding:"required"`
}

// AnswerInput is one question's answer within a submission, tagged by the
// question type so the three answer kinds need no runtime shape inspection.
type AnswerInput struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=SHORT_RESPONSE SELECT_ONE_OPTION SELECT_MULTIPLE_OPTIONS"`
	Text       string `json:"text"`
	OptionID   *uint  `json:"option_id"`
	OptionIDs  []uint `json:"option_ids"`
}

type SubmitFormRequest struct {
	Answers []AnswerInput `json:"answers" binding:"required,dive"`
}

type GenerateFormRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// CreateTicketRequest feeds the helpdesk bridge. SeatNo and Email are required.
type CreateTicketRequest struct {
	SeatNo      string `json:"seat_no" binding:"required"`
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}
