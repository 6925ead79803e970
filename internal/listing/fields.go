package listing

import "slices"

// Field describes one whitelisted form field and its column.
type Field struct {
	Name     string
	Label    string
	Required bool
	// Multiline fields are edited in a textarea and rendered as Markdown.
	Multiline bool
	// Numeric fields are validated and stored as NUMERIC.
	Numeric bool
}

// Fields is the whitelist of user-editable columns, in form order.
// Form keys outside this list are ignored.
var Fields = []Field{
	{Name: "title", Label: "Job Title", Required: true},
	{Name: "description", Label: "Job Description", Required: true, Multiline: true},
	{Name: "salary", Label: "Annual Salary", Required: true, Numeric: true},
	{Name: "requirements", Label: "Requirements", Multiline: true},
	{Name: "benefits", Label: "Benefits", Multiline: true},
	{Name: "tags", Label: "Tags"},
	{Name: "company", Label: "Company Name"},
	{Name: "address", Label: "Address"},
	{Name: "city", Label: "City", Required: true},
	{Name: "state", Label: "State", Required: true},
	{Name: "phone", Label: "Phone"},
	{Name: "email", Label: "Email Address", Required: true},
}

// FieldNames returns the whitelisted field names in form order.
func FieldNames() []string {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = f.Name
	}
	return names
}

// RequiredFields returns the names that must be non-empty.
func RequiredFields() []string {
	var names []string
	for _, f := range Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// LookupField returns the whitelist entry for name.
func LookupField(name string) (Field, bool) {
	i := slices.IndexFunc(Fields, func(f Field) bool { return f.Name == name })
	if i < 0 {
		return Field{}, false
	}
	return Fields[i], true
}
