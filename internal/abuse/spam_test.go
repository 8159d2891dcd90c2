package abuse

import (
	"strings"
	"testing"
)

func TestHoneypotTriggered(t *testing.T) {
	if HoneypotTriggered("") {
		t.Error("empty honeypot must not trigger")
	}
	if !HoneypotTriggered("http://bot.example") {
		t.Error("non-empty honeypot must trigger")
	}
}

func TestDetectSpam_CleanMessage(t *testing.T) {
	isSpam, reasons := DetectSpam("Jo Smith", "jo@example.com",
		"We need a full redesign within two months.")
	if isSpam {
		t.Errorf("expected clean message, flagged with reasons: %v", reasons)
	}
}

func TestDetectSpam_Keyword(t *testing.T) {
	isSpam, reasons := DetectSpam("Jo", "jo@example.com", "buy cheap viagra today please")
	if !isSpam {
		t.Fatal("expected keyword to flag the message")
	}
	if len(reasons) == 0 || !strings.Contains(reasons[0], "viagra") {
		t.Errorf("expected keyword named in reason, got %v", reasons)
	}
}

func TestDetectSpam_KeywordInName(t *testing.T) {
	// The scan covers name+message combined.
	isSpam, _ := DetectSpam("Casino Bot", "bot@example.com", "a perfectly normal message body")
	if !isSpam {
		t.Error("expected keyword in name to flag the submission")
	}
}

func TestDetectSpam_TooManyLinks(t *testing.T) {
	msg := "see https://a.example https://b.example https://c.example https://d.example"
	isSpam, reasons := DetectSpam("Jo", "jo@example.com", msg)
	if !isSpam {
		t.Fatal("expected 4 links to flag the message")
	}
	if !containsReason(reasons, "Too many links") {
		t.Errorf("expected link reason, got %v", reasons)
	}

	// Exactly 3 links is allowed.
	msg = "see https://a.example https://b.example https://c.example"
	if isSpam, _ := DetectSpam("Jo", "jo@example.com", msg); isSpam {
		t.Error("expected 3 links to pass")
	}
}

func TestDetectSpam_ExcessiveCaps(t *testing.T) {
	isSpam, reasons := DetectSpam("Jo", "jo@example.com",
		"THIS IS A VERY IMPORTANT MESSAGE INDEED")
	if !isSpam {
		t.Fatal("expected mostly-uppercase message to be flagged")
	}
	if !containsReason(reasons, "Excessive capital letters") {
		t.Errorf("expected caps reason, got %v", reasons)
	}
}

func TestDetectSpam_CapsIgnoredForShortMessages(t *testing.T) {
	// 20 chars or fewer never triggers the caps check.
	if isSpam, _ := DetectSpam("Jo", "jo@example.com", "HELP ME NOW"); isSpam {
		t.Error("expected short all-caps message to pass")
	}
}

func TestDetectSpam_RepeatedCharacters(t *testing.T) {
	isSpam, reasons := DetectSpam("Jo", "jo@example.com", "hellooooo there, how are you")
	if !isSpam {
		t.Fatal("expected run of 5 identical characters to be flagged")
	}
	if !containsReason(reasons, "Repeated characters") {
		t.Errorf("expected repeated-characters reason, got %v", reasons)
	}

	// A run of 4 is fine.
	if isSpam, _ := DetectSpam("Jo", "jo@example.com", "helloooo there, how are you"); isSpam {
		t.Error("expected run of 4 to pass")
	}
}

func TestDetectSpam_DisposableEmailDomain(t *testing.T) {
	isSpam, reasons := DetectSpam("Jo", "jo@10minutemail.com", "a perfectly normal message")
	if !isSpam {
		t.Fatal("expected disposable domain to be flagged")
	}
	if !containsReason(reasons, "Suspicious email domain") {
		t.Errorf("expected domain reason, got %v", reasons)
	}
}

func TestDetectSpam_MultipleReasons(t *testing.T) {
	_, reasons := DetectSpam("Jo", "jo@tempmail.org", "FREE MONEY GUARANTEED CLICK HERE NOW!!!!!")
	if len(reasons) < 3 {
		t.Errorf("expected at least 3 reasons (keywords, caps, repeats, domain), got %v", reasons)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if strings.Contains(r, want) {
			return true
		}
	}
	return false
}
