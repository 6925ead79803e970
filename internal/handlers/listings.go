package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/workopia/internal/auth"
	"github.com/dmitrymomot/workopia/internal/listing"
	"github.com/dmitrymomot/workopia/internal/views"
	"github.com/dmitrymomot/workopia/internal/web"
	"github.com/dmitrymomot/workopia/middlewares"
	"github.com/dmitrymomot/workopia/pkg/session"
)

// Flash texts shown after listing operations.
const (
	MsgCreated = "Listing created successfully"
	MsgUpdated = "Listing updated successfully"
	MsgDeleted = "Listing deleted successfully"

	MsgNotAuthorizedEdit   = "You are not authorized to edit this listing"
	MsgNotAuthorizedUpdate = "You are not authorized to update this listing"
	MsgNotAuthorizedDelete = "You are not authorized to delete this listing"
)

const idPattern = "{id:[0-9]+}"

// ListingHandler serves listing CRUD and search.
type ListingHandler struct {
	listings listing.Store
}

// NewListingHandler creates a ListingHandler backed by store.
func NewListingHandler(store listing.Store) *ListingHandler {
	return &ListingHandler{listings: store}
}

// Routes implements web.Handler. Mutating routes and the forms require
// a signed-in user.
func (h *ListingHandler) Routes(r web.Router) {
	r.Route("/listings", func(r web.Router) {
		r.GET("/", h.index)
		r.GET("/search", h.search)
		r.GET("/"+idPattern, h.show)

		r.Group(func(r web.Router) {
			r.Use(middlewares.Authorize(middlewares.RoleAuth))
			r.GET("/create", h.create)
			r.POST("/", h.store)
			r.GET("/edit/"+idPattern, h.edit)
			r.PUT("/"+idPattern, h.update)
			r.DELETE("/"+idPattern, h.destroy)
		})
	})
}

func (h *ListingHandler) index(c web.Context) error {
	items, err := h.listings.List(c.Context())
	if err != nil {
		return err
	}
	return c.RenderPartial(http.StatusOK,
		deferred(func() templ.Component {
			return views.ListingsIndex(page(c, "Listings"), items, "", "")
		}),
		views.ListingResults(items),
	)
}

func (h *ListingHandler) search(c web.Context) error {
	keywords := strings.TrimSpace(c.Query("keywords"))
	location := strings.TrimSpace(c.Query("location"))

	items, err := h.listings.Search(c.Context(), keywords, location)
	if err != nil {
		return err
	}
	return c.RenderPartial(http.StatusOK,
		deferred(func() templ.Component {
			return views.ListingsIndex(page(c, "Search"), items, keywords, location)
		}),
		views.ListingResults(items),
	)
}

func (h *ListingHandler) show(c web.Context) error {
	l, err := h.find(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.ListingShow(page(c, ""), l, auth.IsOwner(c.User(), l.UserID)))
}

func (h *ListingHandler) create(c web.Context) error {
	return c.Render(http.StatusOK, views.ListingCreate(page(c, ""), nil, nil))
}

// store whitelists and sanitizes the form, validates it and inserts
// the listing owned by the session user.
func (h *ListingHandler) store(c web.Context) error {
	user := c.User()
	if user == nil {
		return c.Redirect(http.StatusSeeOther, middlewares.LoginPath)
	}

	in, err := input(c)
	if err != nil {
		return err
	}
	if errs := in.Validate(); !errs.IsEmpty() {
		return c.Render(http.StatusUnprocessableEntity, views.ListingCreate(page(c, ""), in, errs))
	}

	id, err := h.listings.Create(c.Context(), user.ID, in)
	if err != nil {
		return err
	}
	c.LogInfo("listing created", slog.Int64("listing_id", id))

	flash(c, session.FlashSuccess, MsgCreated)
	return c.Redirect(http.StatusSeeOther, "/listings")
}

func (h *ListingHandler) edit(c web.Context) error {
	l, err := h.find(c)
	if err != nil {
		return err
	}
	if !auth.IsOwner(c.User(), l.UserID) {
		return denied(c, l.ID, MsgNotAuthorizedEdit)
	}
	return c.Render(http.StatusOK, views.ListingEdit(page(c, ""), l.ID, l.Values(), nil))
}

// update writes only the submitted fields.
func (h *ListingHandler) update(c web.Context) error {
	l, err := h.find(c)
	if err != nil {
		return err
	}
	if !auth.IsOwner(c.User(), l.UserID) {
		return denied(c, l.ID, MsgNotAuthorizedUpdate)
	}

	in, err := input(c)
	if err != nil {
		return err
	}
	if errs := in.Validate(); !errs.IsEmpty() {
		values := l.Values()
		for k, v := range in {
			values[k] = v
		}
		return c.Render(http.StatusUnprocessableEntity, views.ListingEdit(page(c, ""), l.ID, values, errs))
	}

	if err := h.listings.Update(c.Context(), l.ID, in); err != nil {
		return err
	}
	c.LogInfo("listing updated", slog.Int64("listing_id", l.ID))

	flash(c, session.FlashSuccess, MsgUpdated)
	return c.Redirect(http.StatusSeeOther, listingPath(l.ID))
}

func (h *ListingHandler) destroy(c web.Context) error {
	l, err := h.find(c)
	if err != nil {
		return err
	}
	if !auth.IsOwner(c.User(), l.UserID) {
		return denied(c, l.ID, MsgNotAuthorizedDelete)
	}

	if err := h.listings.Delete(c.Context(), l.ID); err != nil {
		return err
	}
	c.LogInfo("listing deleted", slog.Int64("listing_id", l.ID))

	flash(c, session.FlashSuccess, MsgDeleted)
	return c.Redirect(http.StatusSeeOther, "/listings")
}

// find loads the listing named by the id path parameter.
func (h *ListingHandler) find(c web.Context) (listing.Listing, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return listing.Listing{}, listing.ErrNotFound
	}
	return h.listings.Find(c.Context(), id)
}

func input(c web.Context) (listing.Input, error) {
	form, err := c.FormValues()
	if err != nil {
		return nil, web.ErrBadRequest("Invalid form submission", web.WithError(err))
	}
	return listing.InputFromForm(form), nil
}

// denied reports a failed ownership check and sends the visitor back to
// the listing.
func denied(c web.Context, id int64, message string) error {
	c.LogWarn("listing access denied", slog.Int64("listing_id", id))
	flash(c, session.FlashError, message)
	return c.Redirect(http.StatusSeeOther, listingPath(id))
}

func listingPath(id int64) string {
	return "/listings/" + strconv.FormatInt(id, 10)
}
