package inputs

import theme "github.com/goliatone/go-theme"

// Chrome holds the CSS class names applied to the structural parts of a
// rendered field. Values are plain class lists; callers may append to them
// per-call through the *HTML option bags.
type Chrome struct {
	Field        string
	FieldError   string
	Label        string
	Control      string
	Hint         string
	Error        string
	Notification string
	Button       string
}

// DefaultChrome returns the shipped class names.
func DefaultChrome() Chrome {
	return Chrome{
		Field:        "fb-field",
		FieldError:   "fb-field--error",
		Label:        "fb-label",
		Control:      "fb-input",
		Hint:         "fb-hint",
		Error:        "fb-error",
		Notification: "fb-error-notification",
		Button:       "button",
	}
}

// ApplyTheme overrides chrome classes from a theme configuration's token
// map. Recognised token keys: form.field, form.field_error, form.label,
// form.control, form.hint, form.error, form.notification, form.button.
func (c Chrome) ApplyTheme(cfg *theme.RendererConfig) Chrome {
	if cfg == nil || len(cfg.Tokens) == 0 {
		return c
	}
	apply := func(target *string, key string) {
		if value, ok := cfg.Tokens[key]; ok && value != "" {
			*target = value
		}
	}
	apply(&c.Field, "form.field")
	apply(&c.FieldError, "form.field_error")
	apply(&c.Label, "form.label")
	apply(&c.Control, "form.control")
	apply(&c.Hint, "form.hint")
	apply(&c.Error, "form.error")
	apply(&c.Notification, "form.notification")
	apply(&c.Button, "form.button")
	return c
}
