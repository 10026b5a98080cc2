package handler

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"github.com/auranode/auranode/internal/catalog"
	"github.com/auranode/auranode/internal/web/templates/pages"
)

// PricingHandler handles the pricing pages backed by the static catalog.
type PricingHandler struct{}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// Index renders the game selection page.
func (h *PricingHandler) Index(w http.ResponseWriter, r *http.Request) {
	keys := catalog.Keys()
	sort.Strings(keys)

	games := make([]pages.GameLink, 0, len(keys))
	for _, key := range keys {
		c, _ := catalog.Lookup(key)
		games = append(games, pages.GameLink{Key: key, Title: c.Title})
	}

	render(w, r, pages.PricingSelect(pages.PricingSelectData{
		PageData: pageData(r, "Select Your Game"),
		Games:    games,
	}))
}

// Game renders the plans for one game key. Unknown keys redirect to the
// pricing index rather than erroring.
func (h *PricingHandler) Game(w http.ResponseWriter, r *http.Request) {
	gameKey := mux.Vars(r)["game"]

	c, ok := catalog.Lookup(gameKey)
	if !ok {
		http.Redirect(w, r, "/pricing", http.StatusSeeOther)
		return
	}

	render(w, r, pages.PricingGame(pages.PricingGameData{
		PageData:  pageData(r, c.Title),
		GameTitle: c.Title,
		Plans:     c.Plans,
	}))
}
