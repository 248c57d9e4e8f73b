package cli

import (
	"context"
	"fmt"

	"github.com/katlegop/baacafe-kiosk/internal/models"
	"github.com/katlegop/baacafe-kiosk/internal/validation"
)

// fillForm prompts for each field in order and records the answers.
func (a *App) fillForm(form *validation.Form, prompts map[string]string, order []string) error {
	for _, name := range order {
		value, err := getSimpleText(a.reader, prompts[name], a.out)
		if err != nil {
			return err
		}
		form.SetValue(name, value)
	}
	return nil
}

// reportFirstInvalid prints the inline error of the first failing field,
// the shell's version of scrolling the input into view.
func (a *App) reportFirstInvalid(form *validation.Form) {
	fld, ok := form.FirstInvalid()
	if !ok {
		return
	}
	msg, _ := form.Error(fld.Name)
	fmt.Fprintf(a.out, "%s: %s\n", fld.Name, msg)
}

// Contact runs the contact form: validate, then confirm with a
// notification and reset, or report the first invalid field.
func (a *App) Contact(ctx context.Context) error {
	form := validation.NewForm(
		validation.Field{Name: "name", Type: validation.TypeText, Required: true},
		validation.Field{Name: "email", Type: validation.TypeEmail, Required: true},
		validation.Field{Name: "phone", Type: validation.TypeTel},
		validation.Field{Name: "message", Type: validation.TypeText, Required: true},
	)

	err := a.fillForm(form, map[string]string{
		"name":    "Your name",
		"email":   "Email",
		"phone":   "Phone (optional, 8 digits)",
		"message": "Message",
	}, []string{"name", "email", "phone", "message"})
	if err != nil {
		return err
	}

	if !form.Validate() {
		a.reportFirstInvalid(form)
		return nil
	}

	form.Reset()
	a.scheduler.Show("Your message has been sent. We will get back to you soon!", models.NotificationSuccess)
	return nil
}

// Feedback runs the feedback form with the same validation machinery.
func (a *App) Feedback(ctx context.Context) error {
	form := validation.NewForm(
		validation.Field{Name: "name", Type: validation.TypeText, Required: true},
		validation.Field{Name: "email", Type: validation.TypeEmail, Required: true},
		validation.Field{Name: "feedback", Type: validation.TypeText, Required: true},
	)

	err := a.fillForm(form, map[string]string{
		"name":     "Your name",
		"email":    "Email",
		"feedback": "Your feedback",
	}, []string{"name", "email", "feedback"})
	if err != nil {
		return err
	}

	if !form.Validate() {
		a.reportFirstInvalid(form)
		return nil
	}

	a.scheduler.Show("Thank you for your feedback! We appreciate your input.", models.NotificationSuccess)
	return nil
}
