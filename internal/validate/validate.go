// Package validate enforces field-level constraints on inbound contact
// submissions and sanitizes their text content.
package validate

import (
	"net/mail"
	"regexp"
	"strings"
)

// Field limits for contact submissions. Message allows up to 2000 characters
// server-side; client forms may impose a tighter ceiling, but the server
// value is authoritative.
const (
	NameMin    = 2
	NameMax    = 100
	EmailMax   = 254
	SubjectMin = 5
	SubjectMax = 200
	MessageMin = 10
	MessageMax = 2000
)

// namePattern allows letters, spaces, hyphens, apostrophes, and periods.
var namePattern = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates every violated field of a submission. It reports all
// violations, not just the first.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, ", ")
}

// Input is a candidate submission before validation.
type Input struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Check validates every field of in and returns an *Error listing all
// violations, or nil when the input is valid. It has no side effects.
func Check(in Input) *Error {
	var fields []FieldError
	add := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}

	name := strings.TrimSpace(in.Name)
	switch {
	case len([]rune(name)) < NameMin:
		add("name", "Name must be at least 2 characters")
	case len([]rune(name)) > NameMax:
		add("name", "Name too long")
	case !namePattern.MatchString(name):
		add("name", "Name contains invalid characters")
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case len(email) > EmailMax:
		add("email", "Email too long")
	case !validEmail(email):
		add("email", "Invalid email address")
	case strings.Contains(email, "+"):
		add("email", "Email aliases not allowed")
	}

	subject := strings.TrimSpace(in.Subject)
	switch {
	case len([]rune(subject)) < SubjectMin:
		add("subject", "Subject must be at least 5 characters")
	case len([]rune(subject)) > SubjectMax:
		add("subject", "Subject too long")
	}

	message := strings.TrimSpace(in.Message)
	switch {
	case len([]rune(message)) < MessageMin:
		add("message", "Message must be at least 10 characters")
	case len([]rune(message)) > MessageMax:
		add("message", "Message too long")
	}

	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// validEmail reports whether s parses as a bare RFC 5322 address.
func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject display-name forms like `Jo <jo@example.com>`.
	return addr.Address == s
}

var (
	scriptPattern  = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	jsURLPattern   = regexp.MustCompile(`(?i)javascript:`)
	handlerPattern = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// Sanitize strips script blocks, javascript: URLs, and inline event handlers
// from user-supplied text, and trims surrounding whitespace.
func Sanitize(s string) string {
	s = scriptPattern.ReplaceAllString(s, "")
	s = jsURLPattern.ReplaceAllString(s, "")
	s = handlerPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
