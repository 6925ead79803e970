package listing

import (
	"net/url"
	"strings"

	"github.com/dmitrymomot/workopia/pkg/sanitizer"
	"github.com/dmitrymomot/workopia/pkg/validator"
)

// Input is the whitelisted, sanitized subset of a submitted listing form.
// A key is present only if the form carried that field.
type Input map[string]string

// InputFromForm keeps the whitelisted keys of form and strips HTML from
// their values. The first value wins for repeated keys.
func InputFromForm(form url.Values) Input {
	in := make(Input, len(Fields))
	for _, f := range Fields {
		if vals, ok := form[f.Name]; ok && len(vals) > 0 {
			in[f.Name] = sanitizer.StripTags(vals[0])
		}
	}
	return in
}

// Get returns the submitted value for name, or "".
func (in Input) Get(name string) string {
	return in[name]
}

// Validate checks that every required field is non-empty and that
// numeric fields hold a plain amount that fits the column. Messages
// read "<Field> is required".
func (in Input) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	validator.Required(&errs, in, RequiredFields()...)

	for _, f := range Fields {
		v := strings.TrimSpace(in[f.Name])
		if !f.Numeric || v == "" {
			continue
		}
		if _, err := validator.ParseNumber(v); err != nil {
			errs.Add(f.Name, validator.NumberMessage(f.Name, err))
		}
	}
	return errs
}

// args maps the submitted fields to statement arguments in whitelist
// order. Blank values become NULL and numbers are normalized.
func (in Input) args() (columns []string, values map[string]any) {
	values = make(map[string]any, len(in))
	for _, f := range Fields {
		raw, ok := in[f.Name]
		if !ok {
			continue
		}
		columns = append(columns, f.Name)

		v := strings.TrimSpace(raw)
		switch {
		case v == "":
			values[f.Name] = nil
		case f.Numeric:
			if d, err := validator.ParseNumber(v); err == nil {
				v = d.String()
			}
			values[f.Name] = v
		default:
			values[f.Name] = v
		}
	}
	return columns, values
}
