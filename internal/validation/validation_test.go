package validation

import (
	"testing"

	"github.com/studiocentos/bookctl/internal/models"
)

func validDraft() models.BookingDraft {
	return models.BookingDraft{
		Date:  "2024-03-04",
		Time:  "10:00",
		Name:  "Mario Rossi",
		Email: "mario@example.com",
	}
}

func TestValidateDraft_Valid(t *testing.T) {
	if issues := ValidateDraft(validDraft()); len(issues) != 0 {
		t.Errorf("valid draft produced issues: %v", issues)
	}
}

func TestValidateDraft_PhoneOptional(t *testing.T) {
	d := validDraft()
	d.Phone = ""
	if issues := ValidateDraft(d); len(issues) != 0 {
		t.Errorf("draft without phone produced issues: %v", issues)
	}
}

func TestValidateDraft_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingDraft)
		field  string
	}{
		{"empty email", func(d *models.BookingDraft) { d.Email = "" }, "email"},
		{"empty name", func(d *models.BookingDraft) { d.Name = "" }, "name"},
		{"empty date", func(d *models.BookingDraft) { d.Date = "" }, "date"},
		{"empty time", func(d *models.BookingDraft) { d.Time = "" }, "time"},
		{"whitespace name", func(d *models.BookingDraft) { d.Name = "   " }, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			issues := ValidateDraft(d)
			if len(issues) != 1 {
				t.Fatalf("expected 1 issue, got %d: %v", len(issues), issues)
			}
			if issues[0].Field != tt.field {
				t.Errorf("issue field = %q, want %q", issues[0].Field, tt.field)
			}
		})
	}
}

func TestValidateDraft_BadFormats(t *testing.T) {
	d := validDraft()
	d.Date = "04/03/2024"
	d.Time = "10.00"
	issues := ValidateDraft(d)
	if len(issues) != 2 {
		t.Errorf("expected 2 format issues, got %v", issues)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"mario@example.com", "a.b+c@sub.example.it", " padded@example.com "}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "mario", "@example.com", "mario@", "mario@example", "mario@@example.com", "mario@.com"}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = true, want false", s)
		}
	}
}
