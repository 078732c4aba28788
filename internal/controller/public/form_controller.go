// Package public holds the respondent-facing handlers: viewing a shared form
// and submitting answers. No authentication is required, though an owner token
// is honored so drafts stay previewable.
package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/internal/controller"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/middleware"
	"github.com/thanhvu/formforge/internal/service"
)

type FormController struct {
	submissionService service.SubmissionService
}

func NewFormController(submissionService service.SubmissionService) *FormController {
	return &FormController{submissionService: submissionService}
}

// viewer returns the authenticated user id when an owner token was sent along.
func viewer(ctx *gin.Context) *uint {
	if userID, ok := middleware.CurrentUser(ctx); ok {
		return &userID
	}
	return nil
}

// GetForm godoc
// @Summary View a shared form
// @Description Returns the form behind a public link. Unpublished forms are only visible to their owner.
// @Tags Public
// @Produce json
// @Param public_id path string true "Public form ID"
// @Success 200 {object} dto.PublicFormResponse
// @Failure 403 {object} dto.ErrorResponse "Form is not published"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /public/forms/{public_id} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	publicID := ctx.Param("public_id")
	form, err := c.submissionService.GetPublicForm(publicID, viewer(ctx))
	if err != nil {
		log.Warn().Err(err).Str("publicID", publicID).Msg("Public GetForm: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// SubmitForm godoc
// @Summary Submit answers to a shared form
// @Description Records one submission atomically. Mandatory questions must be answered; whitespace-only text does not count.
// @Tags Public
// @Accept json
// @Produce json
// @Param public_id path string true "Public form ID"
// @Param submission body dto.SubmitFormRequest true "Answers"
// @Success 201 {object} dto.SubmitFormResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or incomplete answers"
// @Failure 403 {object} dto.ErrorResponse "Form is not published"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 502 {object} dto.ErrorResponse "Submission stored but ticket creation failed"
// @Router /public/forms/{public_id}/submit [post]
func (c *FormController) SubmitForm(ctx *gin.Context) {
	publicID := ctx.Param("public_id")
	var req dto.SubmitFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Public SubmitForm: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.SubmitPublic(publicID, viewer(ctx), req)
	if err != nil {
		if result != nil {
			// The submission itself was stored; only the ticket hand-off
			// failed. Surface both facts.
			log.Error().Err(err).Str("publicID", publicID).Msg("Public SubmitForm: Ticket hand-off failed")
			ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Warn().Err(err).Str("publicID", publicID).Msg("Public SubmitForm: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}
