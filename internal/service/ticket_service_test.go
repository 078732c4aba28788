package service

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhvu/formforge/internal/dto"
)

func newTicketServiceFor(url string) *ticketService {
	return &ticketService{
		endpoint: url,
		apiKey:   "secret-key",
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestCreateTicketSuccess(t *testing.T) {
	var got freshdeskTicket
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 1234})
	}))
	defer server.Close()

	svc := newTicketServiceFor(server.URL)
	id, err := svc.CreateTicket(dto.CreateTicketRequest{
		SeatNo:      "12A",
		Name:        "Alice",
		Email:       "alice@example.com",
		Subject:     "Broken screen",
		Description: "It flickers.",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1234, id)

	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "Broken screen", got.Subject)
	assert.Equal(t, "Seat No: 12A\n\nIt flickers.", got.Description)
	assert.Equal(t, 1, got.Priority)
	assert.Equal(t, 2, got.Status)

	// The API key rides as the basic auth username with a literal X password.
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("secret-key:X"))
	assert.Equal(t, expected, auth)
}

func TestCreateTicketDefaultSubject(t *testing.T) {
	var got freshdeskTicket
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}))
	defer server.Close()

	svc := newTicketServiceFor(server.URL)
	_, err := svc.CreateTicket(dto.CreateTicketRequest{
		SeatNo: "7C",
		Name:   "Bob",
		Email:  "bob@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Seat:7C - Bob", got.Subject)
}

func TestCreateTicketValidation(t *testing.T) {
	svc := newTicketServiceFor("http://unused.invalid")

	_, err := svc.CreateTicket(dto.CreateTicketRequest{Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateTicket(dto.CreateTicketRequest{SeatNo: "1A"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateTicket(dto.CreateTicketRequest{SeatNo: "1A", Email: "not an email"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateTicketUpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"message": "invalid credentials"})
	}))
	defer server.Close()

	svc := newTicketServiceFor(server.URL)
	_, err := svc.CreateTicket(dto.CreateTicketRequest{SeatNo: "1A", Email: "a@b.co"})
	require.ErrorIs(t, err, ErrExternalService)
	assert.Contains(t, err.Error(), "invalid credentials")
}
