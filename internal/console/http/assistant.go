package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vyaapaarai/console/internal/console/domain"
	"github.com/vyaapaarai/console/internal/console/service"
	"github.com/vyaapaarai/console/pkg/httpx"
)

// AssistantHandler serves the scripted assistant chat.
type AssistantHandler struct {
	Assistant *service.Assistant
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// HandleChat returns a canned reply for the prompt. The assistant page is
// merchant-only, so the role check mirrors the page permission.
//
// POST /v1/assistant/chat
func (h *AssistantHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrNotAuthenticated)
		return
	}
	if !sess.Role.Permits(domain.PageAssistant) {
		writeServiceError(w, r, service.ErrPageNotPermitted)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed JSON body.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatResponse{
		Reply: h.Assistant.Reply(strings.TrimSpace(req.Message)),
	})
}
