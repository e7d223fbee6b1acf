package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ottoman-ai/chef-chat/internal/middleware"
	"github.com/ottoman-ai/chef-chat/internal/service/relay"
	"github.com/ottoman-ai/chef-chat/pkg/utils"
)

// Handler exposes the chat relay over HTTP.
type Handler struct {
	relaySvc *relay.Service
}

// New 创建聊天处理器
func New(relaySvc *relay.Service) *Handler {
	return &Handler{relaySvc: relaySvc}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/reset", h.handleReset)
	r.Get("/session_test", h.handleSessionTest)
}

// handleChat relays one user message and returns the cleaned reply.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.relaySvc.HandleMessage(r.Context(), middleware.SessionID(r.Context()), payload.Message)
	if err != nil {
		var validation *relay.ValidationError
		if errors.As(err, &validation) {
			utils.RespondError(w, http.StatusBadRequest, validation.Reason)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Unexpected error: %v", err))
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// handleReset clears the caller's conversation state.
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.relaySvc.Reset(r.Context(), middleware.SessionID(r.Context())); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Unexpected error: %v", err))
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Chat history has been reset."})
}

// handleSessionTest increments a per-session counter to verify that cookies
// and the backing store survive across requests on the deployment target.
func (h *Handler) handleSessionTest(w http.ResponseWriter, r *http.Request) {
	count, err := h.relaySvc.Probe(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Unexpected error: %v", err))
		return
	}

	utils.RespondText(w, http.StatusOK, fmt.Sprintf("Session count: %d", count))
}
