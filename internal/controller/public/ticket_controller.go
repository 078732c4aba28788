package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/internal/controller"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/service"
)

type TicketController struct {
	ticketService service.TicketService
}

func NewTicketController(ticketService service.TicketService) *TicketController {
	return &TicketController{ticketService: ticketService}
}

// CreateTicket godoc
// @Summary Create a helpdesk ticket
// @Description Forwards a support request to the helpdesk. Used directly by support widgets; ticketing-form submissions go through this same path.
// @Tags Tickets
// @Accept json
// @Produce json
// @Param ticket_data body dto.CreateTicketRequest true "Ticket data"
// @Success 201 {object} dto.CreateTicketResponse
// @Failure 400 {object} dto.ErrorResponse "Missing seat number or invalid email"
// @Failure 502 {object} dto.ErrorResponse "Helpdesk rejected the ticket"
// @Router /tickets [post]
func (c *TicketController) CreateTicket(ctx *gin.Context) {
	var req dto.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTicket: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	ticketID, err := c.ticketService.CreateTicket(req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("CreateTicket: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateTicketResponse{TicketID: ticketID})
}
