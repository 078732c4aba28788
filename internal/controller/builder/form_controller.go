// Package builder holds the owner-facing handlers: everything behind the
// authenticated /forms routes.
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

type FormController struct {
	formService      service.FormService
	generatorService service.GeneratorService
}

func NewFormController(formService service.FormService, generatorService service.GeneratorService) *FormController {
	return &FormController{formService: formService, generatorService: generatorService}
}

// CreateForm godoc
// @Summary Create an empty form
// @Description Creates an unpublished form with no questions. Title is optional.
// @Tags Forms
// @Accept json
// @Produce json
// @Param form_data body dto.CreateFormRequest true "Form creation data"
// @Success 201 {object} dto.FormResponse "Form created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /forms [post]
func (c *FormController) CreateForm(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	var req dto.CreateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateForm: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	form, err := c.formService.Create(userID, req.Title)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("CreateForm: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, form)
}

// CreateFormFromTemplate godoc
// @Summary Create a form from a catalog template
// @Description Creates a full form (questions and options included) from one of the predefined templates.
// @Tags Forms
// @Accept json
// @Produce json
// @Param template_data body dto.CreateFormFromTemplateRequest true "Template id"
// @Success 201 {object} dto.FormResponse "Form created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Unknown template id"
// @Security BearerAuth
// @Router /forms/from-template [post]
func (c *FormController) CreateFormFromTemplate(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	var req dto.CreateFormFromTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateFormFromTemplate: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	form, err := c.formService.CreateFromTemplate(userID, req.TemplateID)
	if err != nil {
		log.Error().Err(err).Str("templateID", req.TemplateID).Msg("CreateFormFromTemplate: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, form)
}

// GenerateForm godoc
// @Summary Generate a form with AI
// @Description Turns a natural-language prompt into a complete draft form.
// @Tags Forms
// @Accept json
// @Produce json
// @Param generate_data body dto.GenerateFormRequest true "Prompt describing the desired form"
// @Success 201 {object} dto.FormResponse "Form generated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "Generation backend unavailable"
// @Security BearerAuth
// @Router /forms/generate [post]
func (c *FormController) GenerateForm(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	var req dto.GenerateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateForm: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	form, err := c.generatorService.GenerateForm(userID, req.Prompt)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GenerateForm: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, form)
}

// ListForms godoc
// @Summary List the caller's forms
// @Produce json
// @Tags Forms
// @Success 200 {array} dto.FormResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /forms [get]
func (c *FormController) ListForms(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	forms, err := c.formService.GetAll(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListForms: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Get one form with its questions
// @Produce json
// @Tags Forms
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.FormResponse
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	form, err := c.formService.Get(userID, formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("GetForm: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// RenameForm godoc
// @Summary Rename a form
// @Accept json
// @Produce json
// @Tags Forms
// @Param form_id path int true "Form ID"
// @Param rename_data body dto.RenameFormRequest true "New title"
// @Success 200 {object} dto.FormResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id} [patch]
func (c *FormController) RenameForm(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	var req dto.RenameFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RenameForm: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	form, err := c.formService.Rename(userID, formID, req.Title)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("RenameForm: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// TogglePublish godoc
// @Summary Toggle a form between draft and published
// @Description Publishing makes the form reachable through its public link; unpublishing hides it again. Collected responses are kept either way.
// @Produce json
// @Tags Forms
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.FormResponse
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id}/publish [post]
func (c *FormController) TogglePublish(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	form, err := c.formService.TogglePublish(userID, formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("TogglePublish: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// DeleteForm godoc
// @Summary Delete a form
// @Description Deletes the form together with its questions, options, answers and now-empty responses.
// @Produce json
// @Tags Forms
// @Param form_id path int true "Form ID"
// @Success 204 "Form deleted"
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id} [delete]
func (c *FormController) DeleteForm(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	if err := c.formService.Delete(userID, formID); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("DeleteForm: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
