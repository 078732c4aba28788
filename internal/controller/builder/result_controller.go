package builder

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/internal/controller"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/middleware"
	"github.com/thanhvu/formforge/internal/service"
)

type ResultController struct {
	responseService service.ResponseService
}

func NewResultController(responseService service.ResponseService) *ResultController {
	return &ResultController{responseService: responseService}
}

// ListResponses godoc
// @Summary List submissions grouped per respondent
// @Description Every submission with its answers in question order, newest submission first.
// @Tags Results
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {array} dto.GroupedResponse
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id}/responses [get]
func (c *ResultController) ListResponses(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	responses, err := c.responseService.GroupedByResponse(userID, formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("ListResponses: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// ResponseMatrix godoc
// @Summary Spreadsheet view of all submissions
// @Description First row is the question texts in form order; each following row is one submission. Multi-select answers are joined with "; ".
// @Tags Results
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {array} []string
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id}/responses/matrix [get]
func (c *ResultController) ResponseMatrix(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	matrix, err := c.responseService.Matrix(userID, formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("ResponseMatrix: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, matrix)
}

// ExportResponses godoc
// @Summary Download all submissions as CSV
// @Description Same layout as the matrix view, streamed as a CSV attachment.
// @Tags Results
// @Produce text/csv
// @Param form_id path int true "Form ID"
// @Success 200 {string} string "CSV file"
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id}/responses/export [get]
func (c *ResultController) ExportResponses(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	matrix, err := c.responseService.Matrix(userID, formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("ExportResponses: Service error")
		controller.RespondError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=form_%d_responses.csv", formID))
	writer := csv.NewWriter(ctx.Writer)
	if err := writer.WriteAll(matrix); err != nil {
		// Headers are already out; all we can do is log.
		log.Error().Err(err).Uint("formID", formID).Msg("ExportResponses: CSV write failed")
	}
}

// ResponseSummary godoc
// @Summary Per-question tallies for charting
// @Description Selection questions get per-option counts (unselected multi-select options appear with zero); short-response questions get the raw text list.
// @Tags Results
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {array} dto.QuestionSummary
// @Failure 403 {object} dto.ErrorResponse "Form owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Security BearerAuth
// @Router /forms/{form_id}/responses/summary [get]
func (c *ResultController) ResponseSummary(ctx *gin.Context) {
	userID, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}
	formID, ok := controller.UintParam(ctx, "form_id")
	if !ok {
		return
	}
	summary, err := c.responseService.Summary(userID, formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("ResponseSummary: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
