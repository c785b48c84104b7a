package dto

import "time"

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type ChatResponse struct {
	Response         string   `json:"response"`
	AvailableSlots   []string `json:"available_slots,omitempty"`
	BookingConfirmed bool     `json:"booking_confirmed"`
	SessionID        string   `json:"session_id"`
}

type ResetRequest struct {
	SessionID string `json:"session_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthResponse struct {
	Status           string    `json:"status"`
	AgentInitialized bool      `json:"agent_initialized"`
	LLMConfigured    bool      `json:"llm_configured"`
	Timestamp        time.Time `json:"timestamp"`
	Version          string    `json:"version"`
	CalendarBackend  string    `json:"calendar_backend"`
	SessionStore     string    `json:"session_store"`
}
