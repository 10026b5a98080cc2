package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/auranode/auranode/internal/web/templates/layout"
)

// LoginData holds data for the login page.
type LoginData struct {
	layout.PageData
	Email string // re-filled on failed attempts
}

// Login renders the login form.
func Login(data LoginData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := layout.NewWriter(w)
		p.WriteString(`<section class="auth-form"><h1>Login</h1>`)
		p.WriteString(`<form method="post" action="/login">`)
		p.Writef(`<label>Email<input type="email" name="email" value="%s" required></label>`,
			templ.EscapeString(data.Email))
		p.WriteString(`<label>Password<input type="password" name="password"></label>`)
		p.WriteString(`<button type="submit">Login</button></form>`)
		p.WriteString(`<p>No account yet? <a href="/register">Register</a></p></section>`)
		return p.Err()
	})
	return layout.Page(data.PageData, body)
}

// RegisterData holds data for the registration page.
type RegisterData struct {
	layout.PageData
	FirstName string
	LastName  string
	Username  string
	Email     string
}

// Register renders the registration form.
func Register(data RegisterData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := layout.NewWriter(w)
		p.WriteString(`<section class="auth-form"><h1>Register</h1>`)
		p.WriteString(`<form method="post" action="/register">`)
		p.Writef(`<label>First Name<input type="text" name="firstName" value="%s" required></label>`,
			templ.EscapeString(data.FirstName))
		p.Writef(`<label>Last Name<input type="text" name="lastName" value="%s" required></label>`,
			templ.EscapeString(data.LastName))
		p.Writef(`<label>Username<input type="text" name="username" value="%s" required></label>`,
			templ.EscapeString(data.Username))
		p.Writef(`<label>Email<input type="email" name="email" value="%s" required></label>`,
			templ.EscapeString(data.Email))
		p.WriteString(`<label>Password<input type="password" name="password" required></label>`)
		p.WriteString(`<button type="submit">Create Account</button></form>`)
		p.WriteString(`<p>Already registered? <a href="/login">Login</a></p></section>`)
		return p.Err()
	})
	return layout.Page(data.PageData, body)
}
