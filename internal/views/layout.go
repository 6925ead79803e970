package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/workopia/pkg/session"
)

// Page carries what every page shows around its body: the title, the
// signed-in user and the flash messages taken for this render.
type Page struct {
	User    *session.User
	Title   string
	Success string
	Error   string
}

// Layout wraps body in the site chrome.
func Layout(p Page, body templ.Component) templ.Component {
	return component(func(w *writer) {
		title := "Workopia"
		if p.Title != "" {
			title = p.Title + " | Workopia"
		}

		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		w.text(title)
		w.raw(`</title><link rel="stylesheet" href="/static/css/style.css">`,
			`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script></head>`,
			`<body><header><div class="container">`,
			`<h1><a href="/">Workopia</a></h1><nav>`)
		if p.User != nil {
			w.raw(`<span>Welcome `)
			w.text(p.User.Name)
			w.raw(`</span><a href="/listings/create" class="btn btn-warning">Post a Job</a>`)
		} else {
			w.raw(`<a href="/auth/login">Login</a>`)
		}
		w.raw(`</nav></div></header><main class="container">`)
		w.render(FlashMessages(p.Success, p.Error))
		w.render(body)
		w.raw(`</main></body></html>`)
	})
}

// FlashMessages shows the success message, then the error message.
// Empty messages render nothing.
func FlashMessages(success, errMsg string) templ.Component {
	return component(func(w *writer) {
		if success != "" {
			w.raw(`<div class="message bg-green-100" role="status">`)
			w.text(success)
			w.raw(`</div>`)
		}
		if errMsg != "" {
			w.raw(`<div class="message bg-red-100" role="alert">`)
			w.text(errMsg)
			w.raw(`</div>`)
		}
	})
}

// ErrorPage renders an error status with a message.
func ErrorPage(p Page, status int, message string) templ.Component {
	if p.Title == "" {
		p.Title = "Error"
	}
	return Layout(p, component(func(w *writer) {
		w.raw(`<section class="card"><h2>`)
		w.text(strconv.Itoa(status))
		w.raw(`</h2><p>`)
		w.text(message)
		w.raw(`</p><a href="/listings">Go back to listings</a></section>`)
	}))
}
