package sanitize

import "strings"

// Message is reported for any field containing a disallowed character.
const Message = "Please use only Latin characters (a-z, A-Z), numbers, spaces, and hyphens (-)"

// Result captures the outcome of Validate.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Validate reports whether every character of input is a Latin letter, a
// digit, whitespace or a hyphen. The empty string is valid.
func Validate(input string) Result {
	for _, r := range input {
		if isLatinAlnum(r) || r == '-' || isSpace(r) {
			continue
		}
		return Result{Valid: false, Message: Message}
	}
	return Result{Valid: true}
}

// Field names used by Registration and Errors.
const (
	FieldEventName = "eventName"
	FieldFullName  = "fullName"
)

// Registration holds the raw values typed into the registration form.
type Registration struct {
	EventName string `json:"eventName"`
	FullName  string `json:"fullName"`
}

// Errors maps a field name to its validation message. A nil or empty map means
// both fields passed.
type Errors map[string]string

// Has reports whether field carries a validation message.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// ValidateRegistration validates both fields. Empty fields are not reported;
// they only block submission through Submittable.
func ValidateRegistration(reg Registration) Errors {
	var errs Errors
	check := func(field, value string) {
		if value == "" {
			return
		}
		if res := Validate(value); !res.Valid {
			if errs == nil {
				errs = make(Errors, 2)
			}
			errs[field] = res.Message
		}
	}
	check(FieldEventName, reg.EventName)
	check(FieldFullName, reg.FullName)
	return errs
}

// Submittable reports whether the form may be submitted: both fields are
// non-empty after trimming and neither carries a validation error.
func (reg Registration) Submittable() bool {
	if strings.TrimFunc(reg.EventName, isSpace) == "" || strings.TrimFunc(reg.FullName, isSpace) == "" {
		return false
	}
	return len(ValidateRegistration(reg)) == 0
}

// Sanitized returns both fields passed through Sanitize.
func (reg Registration) Sanitized() Registration {
	return Registration{
		EventName: Sanitize(reg.EventName),
		FullName:  Sanitize(reg.FullName),
	}
}
