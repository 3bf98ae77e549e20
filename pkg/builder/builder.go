// Package builder composes form field markup for a bound object: resolved
// controls, labels, hints, validation errors, association selects, and
// buttons.
package builder

import (
	"context"
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/inputs"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/pongo2tpl"
)

// Builder renders form fields for one object. Construction wires the
// resolver, registry, template engine, and chrome; render calls are
// read-only afterwards, so one builder can serve concurrent requests.
type Builder struct {
	object    any
	modelName string
	provider  model.MetadataProvider
	source    model.RecordSource
	nested    model.NestedForm
	errors    model.Errors

	translator i18n.Translator
	labeler    model.Labeler

	resolver  *inputs.Resolver
	registry  *inputs.Registry
	templates template.Renderer

	chrome   inputs.Chrome
	partials map[string]string
	buttons  map[string]ButtonHandler
}

// New constructs a Builder with the default resolver, registry, embedded
// templates, and chrome, then applies the options.
func New(opts ...Option) (*Builder, error) {
	cfg := &config{
		labeler:  model.DefaultLabeler,
		resolver: inputs.NewResolver(),
		registry: inputs.NewDefaultRegistry(),
		chrome:   inputs.DefaultChrome(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	templates := cfg.templates
	if templates == nil {
		bundle := cfg.bundleFS
		if bundle == nil {
			bundle = inputs.TemplatesFS()
		}
		engine, err := pongo2tpl.New(pongo2tpl.WithFS(bundle))
		if err != nil {
			return nil, fmt.Errorf("builder: configure template engine: %w", err)
		}
		templates = engine
	}

	b := &Builder{
		object:     cfg.object,
		modelName:  cfg.modelName,
		provider:   cfg.provider,
		source:     cfg.source,
		nested:     cfg.nested,
		errors:     cfg.errors,
		translator: cfg.translator,
		labeler:    cfg.labeler,
		resolver:   cfg.resolver,
		registry:   cfg.registry,
		templates:  templates,
		chrome:     cfg.chrome,
		partials:   cfg.partials,
		buttons:    defaultButtonHandlers(),
	}
	for kind, handler := range cfg.buttons {
		b.buttons[kind] = handler
	}

	if b.modelName == "" {
		if b.provider != nil {
			b.modelName = b.provider.ModelName()
		} else if b.object != nil {
			b.modelName = modelNameOf(b.object)
		}
	}
	return b, nil
}

// Input renders the complete field for an attribute: the resolved control
// wrapped with label, hint, and error chrome.
func (b *Builder) Input(ctx context.Context, attribute string, opts ...inputs.Option) (string, error) {
	if b.object == nil && b.provider == nil {
		return "", fmt.Errorf("render %q: %w", attribute, ErrNoObject)
	}
	options := inputs.BuildOptions(opts...)

	var column *model.Column
	if b.provider != nil {
		if info, ok := b.provider.ColumnInfo(attribute); ok {
			column = info
		}
	}
	value, _ := model.AttributeValue(b.object, attribute)

	inputType := b.resolver.Resolve(attribute, column, options, value)
	renderCtx := b.renderContext(ctx, attribute, inputType, column, nil, value, options)

	return b.render(renderCtx)
}

// Label renders just the label tag for an attribute.
func (b *Builder) Label(ctx context.Context, attribute string, opts ...inputs.Option) (string, error) {
	options := inputs.BuildOptions(opts...)
	renderCtx := b.renderContext(ctx, attribute, inputs.TypeString, b.columnFor(attribute), nil, nil, options)
	return inputs.LabelTag(renderCtx), nil
}

// Hint renders just the hint tag for an attribute. Literal hint text is
// passed with inputs.WithHint; otherwise the text comes from the
// translator, and without either the result is empty.
func (b *Builder) Hint(ctx context.Context, attribute string, opts ...inputs.Option) (string, error) {
	options := inputs.BuildOptions(opts...)
	renderCtx := b.renderContext(ctx, attribute, inputs.TypeString, nil, nil, nil, options)
	return inputs.HintTag(renderCtx), nil
}

// Error renders just the error tag for an attribute. Clean attributes
// produce no markup.
func (b *Builder) Error(ctx context.Context, attribute string, opts ...inputs.Option) (string, error) {
	options := inputs.BuildOptions(opts...)
	renderCtx := b.renderContext(ctx, attribute, inputs.TypeString, nil, nil, nil, options)
	return inputs.ErrorTag(renderCtx), nil
}

// ErrorNotification renders a summary banner when the bound error store
// holds any message. The default text can be overridden with WithLabel.
func (b *Builder) ErrorNotification(opts ...inputs.Option) string {
	if !b.errors.Any() {
		return ""
	}
	options := inputs.BuildOptions(opts...)
	message := "Please review the problems below"
	if options.HasLabel() {
		message = options.Label
	}

	attrs := options.WrapperHTML.MergeClass(b.chrome.Notification)
	var out strings.Builder
	out.WriteString("<div")
	out.WriteString(attrs.String())
	out.WriteString(">")
	out.WriteString(html.EscapeString(message))
	out.WriteString("</div>")
	return out.String()
}

func (b *Builder) render(renderCtx *inputs.Context) (string, error) {
	input, err := b.registry.Lookup(renderCtx.Type)
	if err != nil {
		return "", fmt.Errorf("render %q: %w", renderCtx.Attribute, err)
	}
	markup, err := input.Render(renderCtx)
	if err != nil {
		return "", fmt.Errorf("render %q: %w", renderCtx.Attribute, err)
	}
	return markup, nil
}

// renderContext assembles the immutable per-call context handed to input
// renderers.
func (b *Builder) renderContext(
	ctx context.Context,
	attribute string,
	inputType inputs.InputType,
	column *model.Column,
	assoc *model.Association,
	value any,
	options *inputs.Options,
) *inputs.Context {
	required := column != nil && !column.Nullable
	if options.Required != nil {
		required = *options.Required
	}

	multiple := assoc != nil && assoc.Macro.Collection()
	if options.Multiple != nil {
		multiple = *options.Multiple
	}

	return &inputs.Context{
		Attribute:   attribute,
		Model:       b.modelName,
		Type:        inputType,
		Column:      column,
		Association: assoc,
		Value:       value,
		Collection:  options.Collection,
		Priority:    options.Priority,
		Required:    required,
		Multiple:    multiple,
		Label:       b.labelText(ctx, attribute, options),
		Hint:        b.hintText(ctx, attribute, options),
		Errors:      b.errors.On(attribute),
		ShowLabel:   !options.OmitLabel,
		ShowHint:    !options.OmitHint,
		ShowError:   !options.OmitError,
		InputHTML:   options.InputHTML,
		LabelHTML:   options.LabelHTML,
		HintHTML:    options.HintHTML,
		ErrorHTML:   options.ErrorHTML,
		WrapperHTML: options.WrapperHTML,
		Placeholder: options.Placeholder,
		Chrome:      b.chrome,
		Templates:   b.templates,
		Partials:    b.partials,
	}
}

func (b *Builder) labelText(ctx context.Context, attribute string, options *inputs.Options) string {
	if options.HasLabel() {
		return options.Label
	}
	if b.translator != nil {
		if value, ok := b.translator.Translate(ctx, i18n.LabelKey(b.modelName, attribute)); ok {
			return value
		}
	}
	return b.labeler(attribute)
}

func (b *Builder) hintText(ctx context.Context, attribute string, options *inputs.Options) string {
	if options.Hint != "" {
		return options.Hint
	}
	if b.translator != nil {
		if value, ok := b.translator.Translate(ctx, i18n.HintKey(b.modelName, attribute)); ok {
			return value
		}
	}
	return ""
}

func (b *Builder) columnFor(attribute string) *model.Column {
	if b.provider == nil {
		return nil
	}
	if column, ok := b.provider.ColumnInfo(attribute); ok {
		return column
	}
	return nil
}

// modelNameOf derives the form namespace from the object's type name:
// BlogPost becomes blog_post.
func modelNameOf(object any) string {
	t := reflect.TypeOf(object)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return ""
	}

	var out strings.Builder
	for i, r := range t.Name() {
		if i > 0 && r >= 'A' && r <= 'Z' {
			out.WriteByte('_')
		}
		out.WriteRune(r)
	}
	return strings.ToLower(out.String())
}
