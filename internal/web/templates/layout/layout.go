// Package layout provides the shared page chrome. Pages are hand-written
// templ components: each page wraps its body in Page, which renders the
// document shell, nav and any pending flash message.
package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/auranode/auranode/internal/model"
)

// FlashMessage is a one-time notice consumed on the next rendered page.
// Type is "success" or "error".
type FlashMessage struct {
	Type    string
	Message string
}

// PageData is the data every page shares.
type PageData struct {
	Title string
	User  *model.PanelUser // nil when anonymous
	Flash *FlashMessage
}

// Page wraps a body component in the site chrome.
func Page(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := NewWriter(w)

		p.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.Writef(`<title>%s | AuraNode</title>`, templ.EscapeString(data.Title))
		p.WriteString(`<link rel="stylesheet" href="/static/css/site.css"></head><body>`)

		p.WriteString(`<nav class="navbar"><a class="brand" href="/">AuraNode</a><ul class="nav-links">`)
		p.WriteString(`<li><a href="/pricing">Pricing</a></li><li><a href="/contact">Contact</a></li>`)
		if data.User != nil {
			p.WriteString(`<li><a href="/dashboard">Dashboard</a></li>`)
			p.Writef(`<li class="nav-user">%s</li>`, templ.EscapeString(data.User.DisplayName()))
			p.WriteString(`<li><a href="/logout">Logout</a></li>`)
		} else {
			p.WriteString(`<li><a href="/login">Login</a></li><li><a href="/register">Register</a></li>`)
		}
		p.WriteString(`</ul></nav>`)

		if data.Flash != nil {
			p.Writef(`<div class="flash flash-%s">%s</div>`,
				templ.EscapeString(data.Flash.Type), templ.EscapeString(data.Flash.Message))
		}

		p.WriteString(`<main class="container">`)
		if p.err != nil {
			return p.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		p.WriteString(`</main>`)

		p.WriteString(`<footer class="footer"><p>AuraNode Hosting &mdash; premium game servers.</p></footer>`)
		p.WriteString(`</body></html>`)
		return p.Err()
	})
}

// Writer accumulates the first write error so component code stays linear.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps an io.Writer for sequential HTML writing.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteString writes a literal chunk.
func (p *Writer) WriteString(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

// Writef writes a formatted chunk. Dynamic values must already be escaped.
func (p *Writer) Writef(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

// Err returns the first write error, if any.
func (p *Writer) Err() error {
	return p.err
}
