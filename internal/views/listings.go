package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/workopia/internal/listing"
	"github.com/dmitrymomot/workopia/pkg/validator"
)

// ResultsID is the element swapped by htmx search requests.
const ResultsID = "listing-results"

// Home shows the latest listings.
func Home(p Page, items []listing.Listing) templ.Component {
	return Layout(p, component(func(w *writer) {
		w.render(SearchForm("", ""))
		w.raw(`<section><h2>Recent Jobs</h2>`)
		w.render(ListingResults(items))
		w.raw(`<p><a href="/listings" class="btn btn-primary">Show All Jobs</a></p></section>`)
	}))
}

// ListingsIndex shows items under "All Jobs", or as search results when
// either term is non-empty. The terms are echoed back into the form.
func ListingsIndex(p Page, items []listing.Listing, keywords, location string) templ.Component {
	return Layout(p, component(func(w *writer) {
		w.render(SearchForm(keywords, location))
		w.raw(`<section><h2>`)
		if keywords != "" || location != "" {
			w.raw(`Search Results for: `)
			w.text(keywords)
			if location != "" {
				w.raw(` in `)
				w.text(location)
			}
		} else {
			w.raw(`All Jobs`)
		}
		w.raw(`</h2><div id="`, ResultsID, `">`)
		w.render(ListingResults(items))
		w.raw(`</div></section>`)
	}))
}

// SearchForm submits keywords and location to /listings/search. With
// htmx it swaps only the results.
func SearchForm(keywords, location string) templ.Component {
	return component(func(w *writer) {
		w.raw(`<form class="search" method="GET" action="/listings/search" hx-get="/listings/search"`,
			` hx-target="#`, ResultsID, `" hx-push-url="true">`,
			`<input type="text" name="keywords" placeholder="Keywords" value="`)
		w.text(keywords)
		w.raw(`"><input type="text" name="location" placeholder="Location" value="`)
		w.text(location)
		w.raw(`"><button type="submit" class="btn btn-primary">Search</button></form>`)
	})
}

// ListingResults is the grid of listing cards.
func ListingResults(items []listing.Listing) templ.Component {
	return component(func(w *writer) {
		if len(items) == 0 {
			w.raw(`<p>No listings found</p>`)
			return
		}
		w.raw(`<div class="grid">`)
		for _, l := range items {
			w.render(listingCard(l))
		}
		w.raw(`</div>`)
	})
}

func listingCard(l listing.Listing) templ.Component {
	return component(func(w *writer) {
		w.raw(`<article class="card"><h3>`)
		w.text(l.Title)
		w.raw(`</h3><p>`)
		w.text(Excerpt(l.Description, 140))
		w.raw(`</p><ul><li><strong>Salary:</strong> `)
		w.text(FormatSalary(l.Salary))
		w.raw(`</li><li><strong>Location:</strong> `)
		w.text(l.Location())
		w.raw(`</li>`)
		if tags := l.TagList(); len(tags) > 0 {
			w.raw(`<li><strong>Tags:</strong> `)
			w.render(tagList(tags))
			w.raw(`</li>`)
		}
		w.raw(`</ul><a href="`, listingURL(l.ID), `" class="btn btn-primary">Details</a></article>`)
	})
}

func tagList(tags []string) templ.Component {
	return component(func(w *writer) {
		for _, t := range tags {
			w.raw(`<span class="tag">`)
			w.text(t)
			w.raw(`</span>`)
		}
	})
}

// ListingShow renders one listing. Edit and delete controls appear only
// when canManage is true.
func ListingShow(p Page, l listing.Listing, canManage bool) templ.Component {
	if p.Title == "" {
		p.Title = l.Title
	}
	return Layout(p, component(func(w *writer) {
		w.raw(`<section class="card"><p><a href="/listings">Back to Listings</a></p>`)
		if canManage {
			w.raw(`<div><a href="/listings/edit/`, itoa(l.ID), `" class="btn btn-warning">Edit</a> `,
				`<form method="POST" action="`, listingURL(l.ID), `" style="display:inline">`,
				`<input type="hidden" name="_method" value="DELETE">`,
				`<button type="submit" class="btn btn-danger">Delete</button></form></div>`)
		}
		w.raw(`<h2>`)
		w.text(l.Title)
		w.raw(`</h2>`)
		if c := l.Value("company"); c != "" {
			w.raw(`<p><strong>`)
			w.text(c)
			w.raw(`</strong></p>`)
		}
		w.raw(`<div class="description">`)
		w.render(Markdown(l.Description))
		w.raw(`</div><ul><li><strong>Salary:</strong> `)
		w.text(FormatSalary(l.Salary))
		w.raw(`</li><li><strong>Location:</strong> `)
		w.text(l.Location())
		w.raw(`</li>`)
		if tags := l.TagList(); len(tags) > 0 {
			w.raw(`<li><strong>Tags:</strong> `)
			w.render(tagList(tags))
			w.raw(`</li>`)
		}
		w.raw(`</ul>`)

		for _, name := range []string{"requirements", "benefits"} {
			v := l.Value(name)
			if v == "" {
				continue
			}
			f, _ := listing.LookupField(name)
			w.raw(`<h3>`)
			w.text(f.Label)
			w.raw(`</h3>`)
			w.render(Markdown(v))
		}

		w.raw(`<h3>Apply</h3><p>Put "Job Application" as the subject of your email and attach your resume.</p>`,
			`<p><a class="btn btn-primary" href="mailto:`)
		w.text(l.Email)
		w.raw(`">`)
		w.text(l.Email)
		w.raw(`</a></p>`)
		if phone := l.Value("phone"); phone != "" {
			w.raw(`<p>Phone: `)
			w.text(phone)
			w.raw(`</p>`)
		}
		if addr := l.Value("address"); addr != "" {
			w.raw(`<p>Address: `)
			w.text(addr)
			w.raw(`</p>`)
		}
		w.raw(`</section>`)
	}))
}

// ListingCreate renders the empty or rejected creation form.
func ListingCreate(p Page, values map[string]string, errs validator.ValidationErrors) templ.Component {
	if p.Title == "" {
		p.Title = "Create Listing"
	}
	return Layout(p, component(func(w *writer) {
		w.raw(`<section class="card"><h2>Create Job Listing</h2>`)
		w.render(listingForm("/listings", "", "Save", "/listings", values, errs))
		w.raw(`</section>`)
	}))
}

// ListingEdit renders the edit form of listing id.
func ListingEdit(p Page, id int64, values map[string]string, errs validator.ValidationErrors) templ.Component {
	if p.Title == "" {
		p.Title = "Edit Listing"
	}
	return Layout(p, component(func(w *writer) {
		w.raw(`<section class="card"><h2>Edit Job Listing</h2>`)
		w.render(listingForm(listingURL(id), "PUT", "Update", listingURL(id), values, errs))
		w.raw(`</section>`)
	}))
}

// listingForm posts to action. A non-empty method is sent as _method.
func listingForm(action, method, submit, cancel string, values map[string]string, errs validator.ValidationErrors) templ.Component {
	return component(func(w *writer) {
		w.render(errorList(errs))
		w.raw(`<form class="listing" method="POST" action="`, templ.EscapeString(action), `">`)
		if method != "" {
			w.raw(`<input type="hidden" name="_method" value="`, templ.EscapeString(method), `">`)
		}
		for _, f := range listing.Fields {
			w.render(formField(f, values[f.Name], errs.Get(f.Name)))
		}
		w.raw(`<p><button type="submit" class="btn btn-primary">`)
		w.text(submit)
		w.raw(`</button> <a href="`, templ.EscapeString(cancel), `">Cancel</a></p></form>`)
	})
}

func formField(f listing.Field, value, errMsg string) templ.Component {
	return component(func(w *writer) {
		w.raw(`<label for="`, f.Name, `">`)
		w.text(f.Label)
		w.raw(`</label>`)

		required := ""
		if f.Required {
			required = " required"
		}
		if f.Multiline {
			w.raw(`<textarea id="`, f.Name, `" name="`, f.Name, `" rows="4"`, required, `>`)
			w.text(value)
			w.raw(`</textarea>`)
		} else {
			w.raw(`<input id="`, f.Name, `" name="`, f.Name, `" type="`, inputType(f), `"`, required, ` value="`)
			w.text(value)
			w.raw(`">`)
		}
		if errMsg != "" {
			w.raw(`<p class="field-error">`)
			w.text(errMsg)
			w.raw(`</p>`)
		}
	})
}

func inputType(f listing.Field) string {
	switch f.Name {
	case "email":
		return "email"
	case "phone":
		return "tel"
	}
	return "text"
}

func errorList(errs validator.ValidationErrors) templ.Component {
	return component(func(w *writer) {
		if errs.IsEmpty() {
			return
		}
		w.raw(`<div class="message bg-red-100"><ul>`)
		for _, msg := range errs.Messages() {
			w.raw(`<li>`)
			w.text(msg)
			w.raw(`</li>`)
		}
		w.raw(`</ul></div>`)
	})
}
