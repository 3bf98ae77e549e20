package inputs

import (
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Attrs is a bag of HTML attributes applied to one rendered part.
type Attrs map[string]string

// Clone returns a copy of the attribute bag.
func (a Attrs) Clone() Attrs {
	if len(a) == 0 {
		return nil
	}
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// MergeClass prepends base classes to the bag's class attribute, keeping any
// caller-supplied classes after them.
func (a Attrs) MergeClass(base string) Attrs {
	base = strings.TrimSpace(base)
	if base == "" {
		return a
	}
	out := a.Clone()
	if out == nil {
		out = make(Attrs, 1)
	}
	if existing := strings.TrimSpace(out["class"]); existing != "" {
		out["class"] = base + " " + existing
	} else {
		out["class"] = base
	}
	return out
}

// String renders the bag as ` key="value"` pairs in sorted key order, with
// values HTML-escaped. The leading space makes it safe to splice after a tag
// name.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a[key]))
		b.WriteString(`"`)
	}
	return b.String()
}

// Options captures the per-call configuration of a single render. Callers
// build it through the With* helpers; resolution computes a fresh effective
// copy per call and never retains the struct.
type Options struct {
	As          InputType
	Collection  []model.Choice
	Label       string
	Hint        string
	Placeholder string
	Priority    []string
	LabelMethod string
	ValueMethod string
	Required    *bool
	Multiple    *bool

	OmitLabel bool
	OmitHint  bool
	OmitError bool

	InputHTML   Attrs
	LabelHTML   Attrs
	HintHTML    Attrs
	ErrorHTML   Attrs
	WrapperHTML Attrs

	collectionSet bool
	labelSet      bool
}

// Option mutates an Options value during construction.
type Option func(*Options)

// BuildOptions folds the supplied helpers into a fresh Options value.
func BuildOptions(opts ...Option) *Options {
	out := &Options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(out)
	}
	return out
}

// Clone returns a deep copy so resolution can mutate defaults without
// touching the caller's value.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}
	cloned := *o
	cloned.Collection = append([]model.Choice(nil), o.Collection...)
	cloned.Priority = append([]string(nil), o.Priority...)
	cloned.InputHTML = o.InputHTML.Clone()
	cloned.LabelHTML = o.LabelHTML.Clone()
	cloned.HintHTML = o.HintHTML.Clone()
	cloned.ErrorHTML = o.ErrorHTML.Clone()
	cloned.WrapperHTML = o.WrapperHTML.Clone()
	return &cloned
}

// HasCollection reports whether the caller supplied a collection, even an
// empty one.
func (o *Options) HasCollection() bool {
	return o != nil && o.collectionSet
}

// HasLabel reports whether the caller supplied explicit label text.
func (o *Options) HasLabel() bool {
	return o != nil && o.labelSet
}

// As forces the input type, bypassing inference.
func As(t InputType) Option {
	return func(o *Options) { o.As = t }
}

// WithCollection supplies the choices of a collection input and, absent an
// explicit As, forces select rendering.
func WithCollection(choices []model.Choice) Option {
	return func(o *Options) {
		o.Collection = append([]model.Choice(nil), choices...)
		o.collectionSet = true
	}
}

// WithLabel overrides the label text.
func WithLabel(text string) Option {
	return func(o *Options) {
		o.Label = text
		o.labelSet = true
	}
}

// WithoutLabel suppresses the label part.
func WithoutLabel() Option {
	return func(o *Options) { o.OmitLabel = true }
}

// WithHint supplies hint text. Inline markup is sanitized before rendering.
func WithHint(text string) Option {
	return func(o *Options) { o.Hint = text }
}

// WithoutHint suppresses the hint part.
func WithoutHint() Option {
	return func(o *Options) { o.OmitHint = true }
}

// WithoutError suppresses the error part.
func WithoutError() Option {
	return func(o *Options) { o.OmitError = true }
}

// WithMultiple overrides the multiple-selection default of association
// inputs.
func WithMultiple(multiple bool) Option {
	return func(o *Options) { o.Multiple = &multiple }
}

// WithRequired overrides the required flag inferred from column metadata.
func WithRequired(required bool) Option {
	return func(o *Options) { o.Required = &required }
}

// WithPlaceholder sets the control placeholder.
func WithPlaceholder(text string) Option {
	return func(o *Options) { o.Placeholder = text }
}

// WithPriority lists the choice labels a priority input surfaces first.
func WithPriority(names ...string) Option {
	return func(o *Options) { o.Priority = append(o.Priority, names...) }
}

// WithLabelMethod names the target attribute used as choice label.
func WithLabelMethod(name string) Option {
	return func(o *Options) { o.LabelMethod = name }
}

// WithValueMethod names the target attribute used as choice value.
func WithValueMethod(name string) Option {
	return func(o *Options) { o.ValueMethod = name }
}

// WithInputHTML merges attributes onto the control element.
func WithInputHTML(attrs Attrs) Option {
	return func(o *Options) { o.InputHTML = mergeAttrs(o.InputHTML, attrs) }
}

// WithLabelHTML merges attributes onto the label element.
func WithLabelHTML(attrs Attrs) Option {
	return func(o *Options) { o.LabelHTML = mergeAttrs(o.LabelHTML, attrs) }
}

// WithHintHTML merges attributes onto the hint element.
func WithHintHTML(attrs Attrs) Option {
	return func(o *Options) { o.HintHTML = mergeAttrs(o.HintHTML, attrs) }
}

// WithErrorHTML merges attributes onto the error element.
func WithErrorHTML(attrs Attrs) Option {
	return func(o *Options) { o.ErrorHTML = mergeAttrs(o.ErrorHTML, attrs) }
}

// WithWrapperHTML merges attributes onto the wrapper element.
func WithWrapperHTML(attrs Attrs) Option {
	return func(o *Options) { o.WrapperHTML = mergeAttrs(o.WrapperHTML, attrs) }
}

func mergeAttrs(target, updates Attrs) Attrs {
	if len(updates) == 0 {
		return target
	}
	if target == nil {
		target = make(Attrs, len(updates))
	}
	for key, value := range updates {
		target[key] = value
	}
	return target
}
