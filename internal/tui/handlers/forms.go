package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/studiocentos/bookctl/internal/validation"
)

// ContactFormModel backs the huh contact form. The date and time of the
// draft come from the selection, not from the form.
type ContactFormModel struct {
	Name  string
	Email string
	Phone string
}

// NewContactForm creates the contact details form shown once a day and
// time are selected.
func NewContactForm(fm *ContactFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("email is required")
					}
					if !validation.ValidEmail(s) {
						return fmt.Errorf("does not look like a valid address")
					}
					return nil
				}),
			huh.NewInput().
				Title("Phone (optional)").
				Value(&fm.Phone),
		),
	).WithTheme(huh.ThemeDracula())
}
