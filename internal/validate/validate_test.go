package validate

import (
	"strings"
	"testing"
)

func validInput() Input {
	return Input{
		Name:    "Jo Smith",
		Email:   "jo@example.com",
		Subject: "Website redesign",
		Message: "We need a full redesign within two months.",
	}
}

func TestCheck_ValidInput(t *testing.T) {
	if err := Check(validInput()); err != nil {
		t.Errorf("expected no error for valid input, got %v", err)
	}
}

func TestCheck_NameTooShort(t *testing.T) {
	in := validInput()
	in.Name = "J"
	err := Check(in)
	if err == nil {
		t.Fatal("expected error for 1-char name")
	}
	if !strings.Contains(err.Error(), "at least 2 characters") {
		t.Errorf("expected min-length message, got %q", err.Error())
	}
}

func TestCheck_NameInvalidCharacters(t *testing.T) {
	in := validInput()
	in.Name = "Jo <script>"
	err := Check(in)
	if err == nil {
		t.Fatal("expected error for name with invalid characters")
	}
	if !strings.Contains(err.Error(), "invalid characters") {
		t.Errorf("expected invalid-characters message, got %q", err.Error())
	}
}

func TestCheck_NameAllowsApostropheHyphenPeriod(t *testing.T) {
	in := validInput()
	in.Name = "Mary-Jane O'Neil Jr."
	if err := Check(in); err != nil {
		t.Errorf("expected name with - ' . to pass, got %v", err)
	}
}

func TestCheck_InvalidEmail(t *testing.T) {
	in := validInput()
	in.Email = "not-an-email"
	err := Check(in)
	if err == nil {
		t.Fatal("expected error for malformed email")
	}
	if !strings.Contains(err.Error(), "Invalid email address") {
		t.Errorf("expected invalid-email message, got %q", err.Error())
	}
}

func TestCheck_EmailAliasRejected(t *testing.T) {
	in := validInput()
	in.Email = "jo+spam@example.com"
	err := Check(in)
	if err == nil {
		t.Fatal("expected error for plus-aliased email")
	}
	if !strings.Contains(err.Error(), "aliases") {
		t.Errorf("expected alias message, got %q", err.Error())
	}
}

func TestCheck_EmailTooLong(t *testing.T) {
	in := validInput()
	in.Email = strings.Repeat("a", 250) + "@example.com"
	err := Check(in)
	if err == nil {
		t.Fatal("expected error for >254 char email")
	}
	if !strings.Contains(err.Error(), "Email too long") {
		t.Errorf("expected length message, got %q", err.Error())
	}
}

// TestCheck_MessageTooShort verifies the message includes the minimum length.
func TestCheck_MessageTooShort(t *testing.T) {
	in := validInput()
	in.Message = "short"
	err := Check(in)
	if err == nil {
		t.Fatal("expected error for 5-char message")
	}
	if !strings.Contains(err.Error(), "10") {
		t.Errorf("expected message to mention the minimum length 10, got %q", err.Error())
	}
}

func TestCheck_MessageTooLong(t *testing.T) {
	in := validInput()
	in.Message = strings.Repeat("a", 2001)
	if err := Check(in); err == nil {
		t.Error("expected error for >2000 char message")
	}

	in.Message = strings.Repeat("a", 2000)
	if err := Check(in); err != nil {
		t.Errorf("expected exactly 2000 chars to pass, got %v", err)
	}
}

func TestCheck_SubjectBounds(t *testing.T) {
	in := validInput()
	in.Subject = "Hiya"
	if err := Check(in); err == nil {
		t.Error("expected error for 4-char subject")
	}

	in.Subject = strings.Repeat("s", 201)
	if err := Check(in); err == nil {
		t.Error("expected error for 201-char subject")
	}
}

// TestCheck_ReportsEveryViolatedField verifies the validator enumerates all
// violations, not just the first.
func TestCheck_ReportsEveryViolatedField(t *testing.T) {
	err := Check(Input{
		Name:    "X",
		Email:   "bogus",
		Subject: "Hi",
		Message: "short",
	})
	if err == nil {
		t.Fatal("expected error for fully invalid input")
	}
	if len(err.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(err.Fields), err.Fields)
	}

	seen := map[string]bool{}
	for _, f := range err.Fields {
		seen[f.Field] = true
	}
	for _, field := range []string{"name", "email", "subject", "message"} {
		if !seen[field] {
			t.Errorf("expected a violation reported for %q", field)
		}
	}
}

// ---------------------------------------------------------------------------
// Sanitize tests
// ---------------------------------------------------------------------------

func TestSanitize_StripsScriptBlocks(t *testing.T) {
	got := Sanitize("hello <script>alert('x')</script> world")
	if strings.Contains(got, "script") || strings.Contains(got, "alert") {
		t.Errorf("expected script block removed, got %q", got)
	}
}

func TestSanitize_StripsJavascriptURLs(t *testing.T) {
	got := Sanitize("click javascript:evil() now")
	if strings.Contains(strings.ToLower(got), "javascript:") {
		t.Errorf("expected javascript: removed, got %q", got)
	}
}

func TestSanitize_StripsEventHandlers(t *testing.T) {
	got := Sanitize(`<img onerror=hack()>`)
	if strings.Contains(got, "onerror") {
		t.Errorf("expected event handler removed, got %q", got)
	}
}

func TestSanitize_TrimsWhitespace(t *testing.T) {
	if got := Sanitize("  hello  "); got != "hello" {
		t.Errorf("expected trimmed string, got %q", got)
	}
}
