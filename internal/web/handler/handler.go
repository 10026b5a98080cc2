// Package handler contains the web page handlers.
package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/auranode/auranode/internal/web/middleware"
	"github.com/auranode/auranode/internal/web/templates/layout"
)

// render writes a page component as the response.
func render(w http.ResponseWriter, r *http.Request, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// pageData assembles the shared page data from the request context.
func pageData(r *http.Request, title string) layout.PageData {
	return layout.PageData{
		Title: title,
		User:  middleware.GetUser(r.Context()),
		Flash: middleware.GetFlash(r.Context()),
	}
}
