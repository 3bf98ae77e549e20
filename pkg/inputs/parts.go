package inputs

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	hintPolicyOnce sync.Once
	hintPolicy     *bluemonday.Policy
)

// sanitizeHint strips everything but inline formatting and safe links from
// hint text, so callers can pass markup without opening an XSS hole.
func sanitizeHint(raw string) string {
	hintPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code", "small", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(true)
		hintPolicy = policy
	})
	return hintPolicy.Sanitize(raw)
}

// LabelTag renders the label element for a field.
func LabelTag(ctx *Context) string {
	if ctx.Label == "" {
		return ""
	}
	attrs := ctx.LabelHTML.MergeClass(ctx.Chrome.Label)
	if _, ok := attrs["for"]; !ok {
		attrs = attrs.Clone()
		if attrs == nil {
			attrs = make(Attrs, 1)
		}
		attrs["for"] = ctx.DOMID()
	}

	var b strings.Builder
	b.WriteString("<label")
	b.WriteString(attrs.String())
	b.WriteString(">")
	b.WriteString(html.EscapeString(ctx.Label))
	if ctx.Required {
		b.WriteString(` <abbr title="required">*</abbr>`)
	}
	b.WriteString("</label>")
	return b.String()
}

// HintTag renders the hint element. Hint text may carry inline markup; it is
// sanitized, not escaped wholesale.
func HintTag(ctx *Context) string {
	if ctx.Hint == "" {
		return ""
	}
	attrs := ctx.HintHTML.MergeClass(ctx.Chrome.Hint)

	var b strings.Builder
	b.WriteString("<small")
	b.WriteString(attrs.String())
	b.WriteString(">")
	b.WriteString(sanitizeHint(ctx.Hint))
	b.WriteString("</small>")
	return b.String()
}

// ErrorTag renders the first validation error of the attribute. No markup is
// produced when the attribute is clean.
func ErrorTag(ctx *Context) string {
	if !ctx.HasErrors() {
		return ""
	}
	attrs := ctx.ErrorHTML.MergeClass(ctx.Chrome.Error)

	var b strings.Builder
	b.WriteString("<span")
	b.WriteString(attrs.String())
	b.WriteString(">")
	b.WriteString(html.EscapeString(ctx.Errors[0]))
	b.WriteString("</span>")
	return b.String()
}

// Compose wraps a rendered control with the field chrome: wrapper div,
// label, hint, and error, each honouring the show flags computed during
// resolution. Fields with errors get the error modifier class on the
// wrapper.
func Compose(ctx *Context, control string) string {
	wrapperClass := ctx.Chrome.Field
	if ctx.HasErrors() {
		wrapperClass += " " + ctx.Chrome.FieldError
	}
	attrs := ctx.WrapperHTML.MergeClass(wrapperClass)

	var b strings.Builder
	b.Grow(len(control) + 256)
	b.WriteString("<div")
	b.WriteString(attrs.String())
	b.WriteString(">")

	if ctx.ShowLabel {
		if label := LabelTag(ctx); label != "" {
			b.WriteString(label)
		}
	}
	b.WriteString(control)
	if ctx.ShowHint {
		if hint := HintTag(ctx); hint != "" {
			b.WriteString(hint)
		}
	}
	if ctx.ShowError {
		if tag := ErrorTag(ctx); tag != "" {
			b.WriteString(tag)
		}
	}

	b.WriteString("</div>")
	return b.String()
}
