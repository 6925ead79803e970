package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// writer stops at the first write error and reports it from the
// component.
type writer struct {
	ctx context.Context
	out io.Writer
	err error
}

func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.out, p)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) render(c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(w.ctx, w.out)
}

func component(fn func(w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{ctx: ctx, out: out}
		fn(w)
		return w.err
	})
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func listingURL(id int64) string {
	return "/listings/" + itoa(id)
}
