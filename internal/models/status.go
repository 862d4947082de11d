package models

import "strings"

type Status string

const (
	StatusDraft        Status = "Draft"
	StatusToBeReviewed Status = "To Be Reviewed"
	StatusReviewed     Status = "Reviewed"
	StatusRejected     Status = "Rejected"
	StatusApproved     Status = "Approved"
)

var statusAliases = map[string]Status{
	"draft":          StatusDraft,
	"to be reviewed": StatusToBeReviewed,
	"tobereviewed":   StatusToBeReviewed,
	"reviewed":       StatusReviewed,
	"rejected":       StatusRejected,
	"approved":       StatusApproved,
}

// ParseStatus accepts the stored wire form ("To Be Reviewed") and the compact
// form ("ToBeReviewed"), case-insensitively.
func ParseStatus(raw string) (Status, bool) {
	s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return s, ok
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusToBeReviewed, StatusReviewed, StatusRejected, StatusApproved:
		return true
	}
	return false
}
