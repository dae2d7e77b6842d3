package http

import (
	"encoding/json"
	"net/http"

	"github.com/vyaapaarai/console/internal/console/domain"
	"github.com/vyaapaarai/console/internal/console/service"
	"github.com/vyaapaarai/console/pkg/httpx"
)

// PagesHandler serves the render models for dashboard pages.
type PagesHandler struct {
	Dashboard *service.DashboardService
}

// HandleGet returns the view model for one dashboard page. The page must be
// in the authenticated role's permitted set; the dashboard service re-checks
// this independently of the navigation state.
//
// GET /v1/pages/{page}
func (h *PagesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrNotAuthenticated)
		return
	}

	page, err := domain.ParsePage(r.PathValue("page"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view, err := h.Dashboard.Render(r.Context(), sess.Role, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, view)
}

type settingsSaveResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	Message      string `json:"message"`
}

// HandleSettingsSave accepts the settings form and acknowledges it without
// persisting anything. The demo keeps settings static per role.
//
// POST /v1/pages/settings
func (h *PagesHandler) HandleSettingsSave(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionFromContext(r.Context()); !ok {
		writeServiceError(w, r, service.ErrNotAuthenticated)
		return
	}

	var form service.SettingsForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed JSON body.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, settingsSaveResponse{
		Acknowledged: true,
		Message:      "Settings saved for this demo session only.",
	})
}
