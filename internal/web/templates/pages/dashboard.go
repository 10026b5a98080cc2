package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/auranode/auranode/internal/services/account"
	"github.com/auranode/auranode/internal/web/templates/layout"
)

// DashboardData holds data for the client dashboard.
type DashboardData struct {
	layout.PageData
	Servers []account.DashboardServer
}

// Dashboard renders the user's servers with management links.
func Dashboard(data DashboardData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := layout.NewWriter(w)
		p.WriteString(`<section class="dashboard"><h1>Your Servers</h1>`)
		if len(data.Servers) == 0 {
			p.WriteString(`<p class="empty">You don't have any servers yet. `)
			p.WriteString(`<a href="/pricing">Browse our plans</a> to get started.</p>`)
		} else {
			p.WriteString(`<div class="server-grid">`)
			for _, srv := range data.Servers {
				p.WriteString(`<div class="server-card">`)
				p.Writef(`<h2>%s</h2>`, templ.EscapeString(srv.Name))
				if srv.Description != "" {
					p.Writef(`<p>%s</p>`, templ.EscapeString(srv.Description))
				}
				p.Writef(`<p class="server-specs">%dMB RAM &middot; %dMB Disk &middot; %d%% CPU</p>`,
					srv.Limits.Memory, srv.Limits.Disk, srv.Limits.CPU)
				p.Writef(`<a class="button" href="%s">Manage</a></div>`, templ.EscapeString(srv.PanelURL))
			}
			p.WriteString(`</div>`)
		}
		p.WriteString(`</section>`)
		return p.Err()
	})
	return layout.Page(data.PageData, body)
}
