package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/auranode/auranode/internal/web/templates/layout"
)

// HomeData holds data for the home page.
type HomeData struct {
	layout.PageData
}

// Home renders the landing page.
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := layout.NewWriter(w)
		p.WriteString(`<section class="hero"><h1>Game servers that just run</h1>`)
		p.WriteString(`<p>High-performance Minecraft hosting with DDoS protection and instant setup.</p>`)
		p.WriteString(`<p class="hero-actions"><a class="button" href="/pricing">View Plans</a> `)
		p.WriteString(`<a class="button button-outline" href="/register">Get Started</a></p></section>`)
		p.WriteString(`<section class="features"><ul>`)
		p.WriteString(`<li><h3>DDR4 RAM &amp; Ryzen CPUs</h3><p>Modern hardware in every location.</p></li>`)
		p.WriteString(`<li><h3>DDoS Protection</h3><p>Included on every plan.</p></li>`)
		p.WriteString(`<li><h3>Full Panel Access</h3><p>Manage your server from our hosting panel.</p></li>`)
		p.WriteString(`</ul></section>`)
		return p.Err()
	})
	return layout.Page(data.PageData, body)
}

// ContactData holds data for the contact page.
type ContactData struct {
	layout.PageData
}

// Contact renders the contact page.
func Contact(data ContactData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := layout.NewWriter(w)
		p.WriteString(`<section class="contact"><h1>Contact Us</h1>`)
		p.WriteString(`<p>Questions about plans or your server? Reach out and we'll get back to you.</p>`)
		p.WriteString(`<ul><li>Discord: <a href="https://discord.gg/auranode">discord.gg/auranode</a></li>`)
		p.WriteString(`<li>Email: <a href="mailto:support@auranode.host">support@auranode.host</a></li></ul></section>`)
		return p.Err()
	})
	return layout.Page(data.PageData, body)
}
