package views

import (
	"bytes"
	"strings"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/workopia/pkg/sanitizer"
)

var (
	md      = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
	printer = message.NewPrinter(language.English)
)

// Markdown renders s as sanitized HTML. Raw HTML in s is dropped.
func Markdown(s string) templ.Component {
	return component(func(w *writer) {
		if strings.TrimSpace(s) == "" {
			return
		}
		var buf bytes.Buffer
		if err := md.Convert([]byte(s), &buf); err != nil {
			w.err = err
			return
		}
		w.raw(sanitizer.SanitizeHTML(buf.String()))
	})
}

// FormatSalary renders a NUMERIC amount as "$85,000" or "$85,000.50".
// Values that do not parse are returned unchanged.
func FormatSalary(s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	if d.IsInteger() {
		return printer.Sprintf("$%d", d.IntPart())
	}
	return printer.Sprintf("$%d", d.IntPart()) + "." + d.Sub(d.Truncate(0)).Abs().StringFixed(2)[2:]
}

// Excerpt shortens s to at most n runes on a word boundary.
func Excerpt(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	cut := string(r[:n])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
