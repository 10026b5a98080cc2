package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/auranode/auranode/internal/catalog"
	"github.com/auranode/auranode/internal/web/templates/layout"
)

// GameLink is one entry on the pricing index.
type GameLink struct {
	Key   string
	Title string
}

// PricingSelectData holds data for the pricing index page.
type PricingSelectData struct {
	layout.PageData
	Games []GameLink
}

// PricingSelect renders the game selection page.
func PricingSelect(data PricingSelectData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := layout.NewWriter(w)
		p.WriteString(`<section class="pricing-select"><h1>Select Your Game</h1><ul class="game-list">`)
		for _, g := range data.Games {
			p.Writef(`<li><a href="/pricing/%s">%s</a></li>`,
				templ.EscapeString(g.Key), templ.EscapeString(g.Title))
		}
		p.WriteString(`</ul></section>`)
		return p.Err()
	})
	return layout.Page(data.PageData, body)
}

// PricingGameData holds data for one game's plan page.
type PricingGameData struct {
	layout.PageData
	GameTitle string
	Plans     []catalog.Plan
}

// PricingGame renders the plan cards for one game.
func PricingGame(data PricingGameData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := layout.NewWriter(w)
		p.Writef(`<section class="pricing-game"><h1>%s</h1><div class="plan-grid">`,
			templ.EscapeString(data.GameTitle))
		for _, plan := range data.Plans {
			if plan.Popular {
				p.WriteString(`<div class="plan plan-popular"><span class="badge">Most Popular</span>`)
			} else {
				p.WriteString(`<div class="plan">`)
			}
			p.Writef(`<h2>%s</h2>`, templ.EscapeString(plan.Name))
			if plan.Price > 0 {
				p.Writef(`<p class="price">&#8377;%d<span>/mo</span></p>`, plan.Price)
			}
			p.WriteString(`<ul class="plan-features">`)
			for _, f := range plan.Features {
				p.Writef(`<li>%s</li>`, templ.EscapeString(f))
			}
			p.WriteString(`</ul><a class="button" href="/register">Order Now</a></div>`)
		}
		p.WriteString(`</div></section>`)
		return p.Err()
	})
	return layout.Page(data.PageData, body)
}
