package handler

import (
	"net/http"

	"github.com/auranode/auranode/internal/services/account"
	"github.com/auranode/auranode/internal/web/middleware"
	"github.com/auranode/auranode/internal/web/templates/pages"
)

// DashboardHandler handles the protected client dashboard.
type DashboardHandler struct {
	accounts *account.Service
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(accounts *account.Service) *DashboardHandler {
	return &DashboardHandler{accounts: accounts}
}

// View renders the user's servers. A failed panel fetch renders the page
// with an empty list instead of an error page; the failure is already
// logged by the panel client.
func (h *DashboardHandler) View(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	servers, err := h.accounts.DashboardServers(r.Context(), user.ID)
	if err != nil {
		servers = nil
	}

	render(w, r, pages.Dashboard(pages.DashboardData{
		PageData: pageData(r, "Dashboard"),
		Servers:  servers,
	}))
}
