package builder

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/internal/controller"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/middleware"
	"github.com/thanhvu/formforge/internal/service"
)

// QuestionController covers both questions and their options; the two are
// edited together in the builder UI.
type QuestionController struct {
	questionService service.QuestionService
	optionService   service.OptionService
}

func NewQuestionController(questionService service.QuestionService, optionService service.OptionService) *QuestionController {
	return &QuestionController{questionService: questionService, optionService: optionService}
}

// CreateQuestion godoc
// @Summary Add a question to a form
// @Description Appends a question at the end of the form. Options are honored for the selection types only.
// @Tags Questions
// @Accept json
// @Produce json
// @Param form_id path int true "Form ID"
// @Param question_data body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id}/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.Create(userID, formID, req)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("CreateQuestion: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// ListQuestions godoc
// @Summary List a form's questions in display order
// @Tags Questions
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id}/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	questions, err := c.questionService.GetAll(userID, formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("ListQuestions: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// UpdateQuestion godoc
// @Summary Update a question's text, placeholder or mandatory flag
// @Description Partial update; omitted fields keep their current value. The question type is fixed at creation.
// @Tags Questions
// @Accept json
// @Produce json
// @Param form_id path int true "Form ID"
// @Param question_id path int true "Question ID"
// @Param question_data body dto.UpdateQuestionRequest true "Fields to change"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form or question not found"
// @Security BearerAuth
// @Router /forms/{form_id}/questions/{question_id} [patch]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	questionID, ok := controller.UintParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.Update(userID, formID, questionID, req)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("UpdateQuestion: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Removes the question with its options and answers, then closes the ordering gap left behind.
// @Tags Questions
// @Produce json
// @Param form_id path int true "Form ID"
// @Param question_id path int true "Question ID"
// @Success 204 "Question deleted"
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form or question not found"
// @Security BearerAuth
// @Router /forms/{form_id}/questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	questionID, ok := controller.UintParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.questionService.Delete(userID, formID, questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("DeleteQuestion: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateOption godoc
// @Summary Add an option to a selection question
// @Tags Options
// @Accept json
// @Produce json
// @Param form_id path int true "Form ID"
// @Param question_id path int true "Question ID"
// @Param option_data body dto.CreateOptionRequest true "Option text"
// @Success 201 {object} dto.OptionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or short-response question"
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form or question not found"
// @Security BearerAuth
// @Router /forms/{form_id}/questions/{question_id}/options [post]
func (c *QuestionController) CreateOption(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	questionID, ok := controller.UintParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.CreateOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateOption: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	option, err := c.optionService.Create(userID, formID, questionID, req)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("CreateOption: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, option)
}

// UpdateOption godoc
// @Summary Rename an option
// @Tags Options
// @Accept json
// @Produce json
// @Param form_id path int true "Form ID"
// @Param question_id path int true "Question ID"
// @Param option_id path int true "Option ID"
// @Param option_data body dto.UpdateOptionRequest true "New option text"
// @Success 200 {object} dto.OptionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form, question or option not found"
// @Security BearerAuth
// @Router /forms/{form_id}/questions/{question_id}/options/{option_id} [patch]
func (c *QuestionController) UpdateOption(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	questionID, ok := controller.UintParam(ctx, "question_id")
	if !ok {
		return
	}
	optionID, ok := controller.UintParam(ctx, "option_id")
	if !ok {
		return
	}
	var req dto.UpdateOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateOption: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	option, err := c.optionService.UpdateText(userID, formID, questionID, optionID, req)
	if err != nil {
		log.Error().Err(err).Uint("optionID", optionID).Msg("UpdateOption: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, option)
}

// DeleteOption godoc
// @Summary Delete an option
// @Tags Options
// @Produce json
// @Param form_id path int true "Form ID"
// @Param question_id path int true "Question ID"
// @Param option_id path int true "Option ID"
// @Success 204 "Option deleted"
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form, question or option not found"
// @Security BearerAuth
// @Router /forms/{form_id}/questions/{question_id}/options/{option_id} [delete]
func (c *QuestionController) DeleteOption(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	questionID, ok := controller.UintParam(ctx, "question_id")
	if !ok {
		return
	}
	optionID, ok := controller.UintParam(ctx, "option_id")
	if !ok {
		return
	}
	if err := c.optionService.Delete(userID, formID, questionID, optionID); err != nil {
		log.Error().Err(err).Uint("optionID", optionID).Msg("DeleteOption: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
