package assistant

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stride-commerce/stride/internal/platform/httpx"
)

// Handler wires the chat proxy endpoint.
type Handler struct {
	logger *slog.Logger
	client *Client
	model  string
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, client *Client, model string) *Handler {
	return &Handler{logger: logger, client: client, model: model}
}

// MountRoutes registers assistant routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/ask", h.handleAsk)
}

type askRequest struct {
	Question string    `json:"question"`
	History  []Message `json:"history"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		httpx.Error(w, http.StatusBadRequest, "question is required")
		return
	}

	messages := make([]Message, 0, len(req.History)+1)
	messages = append(messages, req.History...)
	messages = append(messages, Message{Role: "user", Content: req.Question})

	answer, err := h.client.Complete(r.Context(), h.model, messages)
	if err != nil {
		h.logger.Error("chat completion failed", slog.Any("error", err))
		if errors.Is(err, httpx.ErrConfig) {
			httpx.Error(w, http.StatusInternalServerError, "ai service is not configured")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "ai request failed")
		return
	}

	httpx.JSON(w, http.StatusOK, askResponse{Answer: answer})
}
