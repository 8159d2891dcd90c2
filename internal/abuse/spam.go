// Package abuse holds the bot and spam heuristics applied to contact
// submissions. The spam verdict is advisory: flagged submissions are still
// accepted, tagged, and answered with a generic success so detection is never
// revealed to the sender.
package abuse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// spamKeywords is the denylist scanned against name+message (lowercased).
var spamKeywords = []string{
	"viagra", "casino", "lottery", "winner", "congratulations",
	"click here", "free money", "guaranteed", "no risk",
}

// disposableDomains are substrings of throwaway-mail providers.
var disposableDomains = []string{"tempmail", "10minutemail", "guerrillamail"}

var linkPattern = regexp.MustCompile(`https?://\S+`)

// maxLinks is the number of links tolerated before a message is flagged.
const maxLinks = 3

// HoneypotTriggered reports whether the hidden honeypot field was filled.
// Human users never see the field; any non-empty value is a bot signal.
func HoneypotTriggered(value string) bool {
	return value != ""
}

// DetectSpam scans a submission for spam signals and returns the verdict with
// one human-readable reason per triggered signal. It has no side effects.
func DetectSpam(name, email, message string) (isSpam bool, reasons []string) {
	text := strings.ToLower(name + " " + message)

	var found []string
	for _, kw := range spamKeywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	if len(found) > 0 {
		reasons = append(reasons, fmt.Sprintf("Contains spam keywords: %s", strings.Join(found, ", ")))
	}

	if len(linkPattern.FindAllString(message, -1)) > maxLinks {
		reasons = append(reasons, "Too many links")
	}

	if excessiveCaps(message) {
		reasons = append(reasons, "Excessive capital letters")
	}

	if hasRepeatedRun(message, 5) {
		reasons = append(reasons, "Repeated characters")
	}

	lowerEmail := strings.ToLower(email)
	for _, domain := range disposableDomains {
		if strings.Contains(lowerEmail, domain) {
			reasons = append(reasons, "Suspicious email domain")
			break
		}
	}

	return len(reasons) > 0, reasons
}

// excessiveCaps reports whether more than half of the message is uppercase,
// for messages longer than 20 characters.
func excessiveCaps(message string) bool {
	runes := []rune(message)
	if len(runes) <= 20 {
		return false
	}
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper)/float64(len(runes)) > 0.5
}

// hasRepeatedRun reports whether the message contains a run of at least n
// identical consecutive characters. Written as a loop: RE2 has no
// backreferences.
func hasRepeatedRun(message string, n int) bool {
	var prev rune
	run := 0
	for _, r := range message {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}
