package inputs

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render/template"
)

// Context carries everything a renderer needs for one field. It is built
// once per render call and treated as read-only afterwards, so a shared
// registry can serve concurrent renders without coordination.
type Context struct {
	Attribute string
	Model     string
	Type      InputType

	Column      *model.Column
	Association *model.Association

	Value      any
	Collection []model.Choice
	Priority   []string

	Required bool
	Multiple bool

	Label     string
	Hint      string
	Errors    []string
	ShowLabel bool
	ShowHint  bool
	ShowError bool

	InputHTML   Attrs
	LabelHTML   Attrs
	HintHTML    Attrs
	ErrorHTML   Attrs
	WrapperHTML Attrs

	Placeholder string

	Chrome    Chrome
	Templates template.Renderer
	Partials  map[string]string
}

// InputName returns the form field name, namespaced by model when one is
// known: "user[email]". Multiple-select fields get the "[]" suffix.
func (c *Context) InputName() string {
	name := c.Attribute
	if c.Model != "" {
		name = strings.ToLower(c.Model) + "[" + c.Attribute + "]"
	}
	if c.Multiple {
		name += "[]"
	}
	return name
}

// DOMID returns the id shared by the control and its label's for attribute:
// "user_email".
func (c *Context) DOMID() string {
	if c.Model == "" {
		return c.Attribute
	}
	return strings.ToLower(c.Model) + "_" + c.Attribute
}

// HasErrors reports whether the attribute carries validation errors.
func (c *Context) HasErrors() bool {
	return len(c.Errors) > 0
}

// ValueString renders the bound value for an HTML value attribute. Nil
// values become the empty string.
func (c *Context) ValueString() string {
	return model.FormatValue(c.Value)
}

// Template resolves a partial name to its template path, honouring
// per-theme overrides before falling back to the shipped bundle.
func (c *Context) Template(name string) string {
	if override, ok := c.Partials[name]; ok && override != "" {
		return override
	}
	return "templates/" + name + ".html"
}
