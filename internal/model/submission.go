package model

import "time"

// Status is the review state of a submission.
type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
	StatusClosed  Status = "closed"
)

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusClosed:
		return true
	}
	return false
}

// Priority is the triage priority assigned to a submission at creation.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Submission source tags.
const (
	SourceWebsite     = "website"
	SourceWebsiteSpam = "website_spam"
)

// Submission represents one inbound contact request after acceptance.
// ID is assigned exactly once at save time and never changes; UpdatedAt is
// bumped on every mutation.
type Submission struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`

	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Source    string `json:"source,omitempty"`
	Country   string `json:"country,omitempty"`
	Region    string `json:"region,omitempty"`
	City      string `json:"city,omitempty"`
}

// SubmissionFilter carries optional filters for listing submissions.
// Empty Status/Priority means no constraint on that field; Limit <= 0 means
// no truncation.
type SubmissionFilter struct {
	Status   Status
	Priority Priority
	Limit    int
}

// SubmissionStats summarizes the store for the admin listing.
type SubmissionStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	Recent   int            `json:"recent"` // submissions in the last 24 hours
}

// RequestMeta is the provenance recorded alongside a submission.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
