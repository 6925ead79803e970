// Package listing stores job listings in PostgreSQL. Column lists in
// every generated statement come from the fixed Fields whitelist, never
// from request input.
package listing

import (
	"strings"
	"time"
)

// Listing is one row of the listings table. Optional columns are nil
// when empty. Salary is the decimal text of a NUMERIC column.
type Listing struct {
	CreatedAt    time.Time `db:"created_at"`
	Tags         *string   `db:"tags"`
	Company      *string   `db:"company"`
	Address      *string   `db:"address"`
	Phone        *string   `db:"phone"`
	Requirements *string   `db:"requirements"`
	Benefits     *string   `db:"benefits"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Salary       string    `db:"salary"`
	City         string    `db:"city"`
	State        string    `db:"state"`
	Email        string    `db:"email"`
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
}

// Value returns the text of a whitelisted field, "" for NULL or unknown
// names. Forms use it to prefill inputs.
func (l Listing) Value(field string) string {
	switch field {
	case "title":
		return l.Title
	case "description":
		return l.Description
	case "salary":
		return l.Salary
	case "tags":
		return deref(l.Tags)
	case "company":
		return deref(l.Company)
	case "address":
		return deref(l.Address)
	case "city":
		return l.City
	case "state":
		return l.State
	case "phone":
		return deref(l.Phone)
	case "email":
		return l.Email
	case "requirements":
		return deref(l.Requirements)
	case "benefits":
		return deref(l.Benefits)
	}
	return ""
}

// Values returns every whitelisted field as text.
func (l Listing) Values() map[string]string {
	m := make(map[string]string, len(Fields))
	for _, f := range Fields {
		m[f.Name] = l.Value(f.Name)
	}
	return m
}

// TagList splits the comma separated tags column.
func (l Listing) TagList() []string {
	if l.Tags == nil {
		return nil
	}
	var out []string
	for t := range strings.SplitSeq(*l.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Location is "City, State".
func (l Listing) Location() string {
	switch {
	case l.City == "":
		return l.State
	case l.State == "":
		return l.City
	}
	return l.City + ", " + l.State
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
