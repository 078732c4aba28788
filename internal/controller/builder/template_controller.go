package builder

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/template"
)

// TemplateController serves the static template catalog. The catalog lives in
// memory, so there is no service layer behind it.
type TemplateController struct{}

func NewTemplateController() *TemplateController {
	return &TemplateController{}
}

// ListTemplates godoc
// @Summary List the form template catalog grouped by category
// @Tags Templates
// @Produce json
// @Success 200 {object} map[string][]dto.TemplateResponse
// @Security BearerAuth
// @Router /templates [get]
func (c *TemplateController) ListTemplates(ctx *gin.Context) {
	grouped := make(map[string][]dto.TemplateResponse)
	for category, templates := range template.Categories() {
		for _, tpl := range templates {
			grouped[category] = append(grouped[category], toTemplateResponse(tpl))
		}
	}
	ctx.JSON(http.StatusOK, grouped)
}

// GetTemplate godoc
// @Summary Get one template by id
// @Tags Templates
// @Produce json
// @Param template_id path string true "Template ID"
// @Success 200 {object} dto.TemplateResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown template id"
// @Security BearerAuth
// @Router /templates/{template_id} [get]
func (c *TemplateController) GetTemplate(ctx *gin.Context) {
	tpl, found := template.Find(ctx.Param("template_id"))
	if !found {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Template not found"})
		return
	}
	ctx.JSON(http.StatusOK, toTemplateResponse(tpl))
}

func toTemplateResponse(tpl template.Template) dto.TemplateResponse {
	questions := make([]dto.TemplateQuestionResponse, 0, len(tpl.Questions))
	for _, q := range tpl.Questions {
		questions = append(questions, dto.TemplateQuestionResponse{
			Text:        q.Text,
			Placeholder: q.Placeholder,
			Type:        string(q.Type),
			Options:     q.Options,
		})
	}
	return dto.TemplateResponse{
		ID:          tpl.ID,
		Name:        tpl.Name,
		Description: tpl.Description,
		Icon:        tpl.Icon,
		Category:    tpl.Category,
		Questions:   questions,
	}
}
