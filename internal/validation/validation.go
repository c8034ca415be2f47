// Package validation performs client-side checks on a booking draft before
// any network call is made.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/models"
)

// Issue describes one failed check, tagged with the field it concerns.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// ValidateDraft checks the draft's required fields and formats. An empty
// result means the draft may be submitted.
func ValidateDraft(d models.BookingDraft) []Issue {
	var issues []Issue

	if strings.TrimSpace(d.Date) == "" {
		issues = append(issues, Issue{"date", "a day must be selected"})
	} else if _, err := time.Parse(constants.DateFormat, d.Date); err != nil {
		issues = append(issues, Issue{"date", "must be in YYYY-MM-DD format"})
	}

	if strings.TrimSpace(d.Time) == "" {
		issues = append(issues, Issue{"time", "a time slot must be selected"})
	} else if _, err := time.Parse(constants.TimeFormat, d.Time); err != nil {
		issues = append(issues, Issue{"time", "must be in HH:MM format"})
	}

	if strings.TrimSpace(d.Name) == "" {
		issues = append(issues, Issue{"name", "name is required"})
	}

	if strings.TrimSpace(d.Email) == "" {
		issues = append(issues, Issue{"email", "email is required"})
	} else if !ValidEmail(d.Email) {
		issues = append(issues, Issue{"email", "does not look like a valid address"})
	}

	return issues
}

// ValidEmail reports whether s has a plausible local@domain shape. This is
// a sanity check, not RFC validation; the backend remains authoritative.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
