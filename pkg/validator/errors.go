package validator

// FieldError is a single message bound to a form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors keeps field messages in the order they were added.
type ValidationErrors []FieldError

// Add appends a message for field.
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Get returns the first message recorded for field, or "".
func (e ValidationErrors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Messages returns all messages in insertion order.
func (e ValidationErrors) Messages() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Message
	}
	return out
}
