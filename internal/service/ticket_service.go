package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thanhvu/formforge/config"
	"github.com/thanhvu/formforge/internal/dto"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// TicketService bridges ticketing submissions to the Freshdesk ticket API.
type TicketService interface {
	CreateTicket(req dto.CreateTicketRequest) (int64, error)
}

type ticketService struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewTicketService(cfg *config.Config) TicketService {
	if cfg.Freshdesk.Domain == "" || cfg.Freshdesk.APIKey == "" {
		log.Warn().Msg("FRESHDESK_DOMAIN or FRESHDESK_API_KEY not set; ticket creation will fail")
	}
	return &ticketService{
		endpoint: fmt.Sprintf("https://%s/api/v2/tickets", cfg.Freshdesk.Domain),
		apiKey:   cfg.Freshdesk.APIKey,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type freshdeskTicket struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Status      int    `json:"status"`
}

type freshdeskResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// CreateTicket validates the request and issues one ticket-creation POST.
// There is no retry; a non-2xx reply is surfaced with the upstream message.
func (s *ticketService) CreateTicket(req dto.CreateTicketRequest) (int64, error) {
	if req.SeatNo == "" || req.Email == "" {
		return 0, fmt.Errorf("%w: seat_no and email are required", ErrValidation)
	}
	if !emailPattern.MatchString(req.Email) {
		return 0, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if s.apiKey == "" {
		return 0, fmt.Errorf("%w: helpdesk configuration missing", ErrExternalService)
	}

	subject := req.Subject
	if subject == "" {
		name := req.Name
		if name == "" {
			name = "Unknown"
		}
		subject = fmt.Sprintf("Seat:%s - %s", req.SeatNo, name)
	}

	payload := freshdeskTicket{
		Email:       req.Email,
		Name:        req.Name,
		Subject:     subject,
		Description: fmt.Sprintf("Seat No: %s\n\n%s", req.SeatNo, req.Description),
		Priority:    1,
		Status:      2,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode ticket payload: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build ticket request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// Freshdesk uses the API key as the basic auth username with a literal X
	// password.
	httpReq.SetBasicAuth(s.apiKey, "X")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Msg("CreateTicket: helpdesk request failed")
		return 0, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	defer resp.Body.Close()

	var result freshdeskResult
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil && resp.StatusCode < 300 {
		return 0, fmt.Errorf("%w: unreadable helpdesk response: %v", ErrExternalService, decodeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := result.Message
		if msg == "" {
			msg = "failed to create ticket"
		}
		log.Error().Int("status", resp.StatusCode).Str("message", msg).Msg("CreateTicket: helpdesk rejected ticket")
		return 0, fmt.Errorf("%w: %s (status %d)", ErrExternalService, msg, resp.StatusCode)
	}

	log.Info().Int64("ticketID", result.ID).Msg("Helpdesk ticket created")
	return result.ID, nil
}
