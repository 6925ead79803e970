package handlers

import (
	"net/http"

	"github.com/dmitrymomot/workopia/internal/listing"
	"github.com/dmitrymomot/workopia/internal/views"
	"github.com/dmitrymomot/workopia/internal/web"
)

// HomeLimit is the number of listings on the home page.
const HomeLimit = 6

type HomeHandler struct {
	listings listing.Store
}

func NewHomeHandler(store listing.Store) *HomeHandler {
	return &HomeHandler{listings: store}
}

func (h *HomeHandler) Routes(r web.Router) {
	r.GET("/", h.home)
}

func (h *HomeHandler) home(c web.Context) error {
	items, err := h.listings.Latest(c.Context(), HomeLimit)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.Home(page(c, ""), items))
}
