// Package views renders the HTML pages of the site as templ components.
//
// Components are plain Go built on templ.ComponentFunc. Every dynamic
// string goes through templ.EscapeString except Markdown output, which
// is sanitized with the site's HTML policy first.
package views
