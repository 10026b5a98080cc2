package handler

import (
	"net/http"

	"github.com/auranode/auranode/internal/web/templates/pages"
)

// HomeHandler handles the static marketing pages.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the landing page.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.Home(pages.HomeData{PageData: pageData(r, "Home")}))
}

// Contact renders the contact page.
func (h *HomeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.Contact(pages.ContactData{PageData: pageData(r, "Contact")}))
}
