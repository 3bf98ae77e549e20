package inputs

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// StringInput renders single-line text controls: string, email, search,
// tel, and url all share the markup and differ only in the HTML type.
type StringInput struct{}

func (StringInput) Render(ctx *Context) (string, error) {
	htmlType := "text"
	switch ctx.Type {
	case TypeEmail:
		htmlType = "email"
	case TypeSearch:
		htmlType = "search"
	case TypeTel:
		htmlType = "tel"
	case TypeURL:
		htmlType = "url"
	}
	control, err := renderInputTag(ctx, htmlType, ctx.ValueString(), nil)
	if err != nil {
		return "", err
	}
	return Compose(ctx, control), nil
}

// NumericInput renders number controls. Integer columns get a unit step;
// decimal and float accept any step unless the caller overrides it.
type NumericInput struct{}

func (NumericInput) Render(ctx *Context) (string, error) {
	extra := Attrs{"step": "any"}
	if ctx.Type == TypeInteger {
		extra["step"] = "1"
	}
	if _, ok := ctx.InputHTML["step"]; ok {
		delete(extra, "step")
	}
	control, err := renderInputTag(ctx, "number", ctx.ValueString(), extra)
	if err != nil {
		return "", err
	}
	return Compose(ctx, control), nil
}

// DateTimeInput renders date, time, and datetime-local controls.
type DateTimeInput struct{}

func (DateTimeInput) Render(ctx *Context) (string, error) {
	htmlType := "datetime-local"
	switch ctx.Type {
	case TypeDate:
		htmlType = "date"
	case TypeTime:
		htmlType = "time"
	}
	control, err := renderInputTag(ctx, htmlType, temporalValue(ctx), nil)
	if err != nil {
		return "", err
	}
	return Compose(ctx, control), nil
}

// GenericInput covers the remaining scalar types: password and file never
// echo a value, text renders a textarea, hidden renders the bare control
// with no field chrome.
type GenericInput struct{}

func (GenericInput) Render(ctx *Context) (string, error) {
	switch ctx.Type {
	case TypeText:
		control, err := renderTextarea(ctx)
		if err != nil {
			return "", err
		}
		return Compose(ctx, control), nil
	case TypePassword:
		control, err := renderInputTag(ctx, "password", "", nil)
		if err != nil {
			return "", err
		}
		return Compose(ctx, control), nil
	case TypeFile:
		control, err := renderInputTag(ctx, "file", "", nil)
		if err != nil {
			return "", err
		}
		return Compose(ctx, control), nil
	case TypeHidden:
		return renderHidden(ctx)
	default:
		return "", fmt.Errorf("inputs: generic renderer cannot handle %q", ctx.Type)
	}
}

// BooleanInput renders a checkbox with a hidden false fallback so unchecked
// boxes still submit a value.
type BooleanInput struct{}

func (BooleanInput) Render(ctx *Context) (string, error) {
	data := templateData(ctx)
	data["checked"] = truthy(ctx.Value)
	data["attrs"] = controlAttrs(ctx, nil).String()

	control, err := renderPartial(ctx, "boolean", data)
	if err != nil {
		return "", err
	}
	return Compose(ctx, control), nil
}

// CollectionInput renders choice-backed controls: select from the template
// bundle, radio and check_boxes as grouped label/input pairs.
type CollectionInput struct{}

func (CollectionInput) Render(ctx *Context) (string, error) {
	switch ctx.Type {
	case TypeRadio:
		return Compose(ctx, renderChoiceGroup(ctx, "radio")), nil
	case TypeCheckBoxes:
		return Compose(ctx, renderChoiceGroup(ctx, "checkbox")), nil
	default:
		control, err := renderSelect(ctx, ctx.Collection)
		if err != nil {
			return "", err
		}
		return Compose(ctx, control), nil
	}
}

// PriorityInput renders country and time zone selects with a configurable
// set of choices surfaced above a disabled separator row.
type PriorityInput struct{}

// prioritySeparator is the label of the disabled option between prioritised
// and remaining choices.
const prioritySeparator = "---------------"

func (PriorityInput) Render(ctx *Context) (string, error) {
	choices := ctx.Collection
	if len(choices) == 0 {
		switch ctx.Type {
		case TypeTimeZone:
			choices = TimeZoneChoices()
		default:
			choices = CountryChoices()
		}
	}

	if len(ctx.Priority) > 0 {
		choices = prioritise(choices, ctx.Priority)
	}

	control, err := renderSelect(ctx, choices)
	if err != nil {
		return "", err
	}
	return Compose(ctx, control), nil
}

// prioritise moves choices whose label or value matches one of the priority
// names to the front, in priority order, followed by a disabled separator
// and then the rest.
func prioritise(choices []model.Choice, priority []string) []model.Choice {
	match := func(choice model.Choice, name string) bool {
		return choice.Label == name || choice.Value == name
	}

	var head []model.Choice
	for _, name := range priority {
		for _, choice := range choices {
			if match(choice, name) {
				head = append(head, choice)
				break
			}
		}
	}
	if len(head) == 0 {
		return choices
	}

	out := make([]model.Choice, 0, len(choices)+len(head)+1)
	out = append(out, head...)
	out = append(out, model.Choice{Label: prioritySeparator, Disabled: true})
	out = append(out, choices...)
	return out
}

func renderInputTag(ctx *Context, htmlType, value string, extra Attrs) (string, error) {
	data := templateData(ctx)
	data["type"] = htmlType
	data["value"] = value
	data["attrs"] = controlAttrs(ctx, extra).String()
	return renderPartial(ctx, "input", data)
}

func renderTextarea(ctx *Context) (string, error) {
	data := templateData(ctx)
	data["value"] = ctx.ValueString()
	data["attrs"] = controlAttrs(ctx, nil).String()
	return renderPartial(ctx, "textarea", data)
}

func renderSelect(ctx *Context, choices []model.Choice) (string, error) {
	extra := Attrs{}
	if ctx.Multiple {
		extra["multiple"] = "multiple"
	}

	data := templateData(ctx)
	data["choices"] = choiceMaps(choices, ctx)
	data["include_blank"] = !ctx.Required && !ctx.Multiple
	data["attrs"] = controlAttrs(ctx, extra).String()
	return renderPartial(ctx, "select", data)
}

// renderHidden emits the bare control. Hidden fields carry no label, hint,
// error, or wrapper.
func renderHidden(ctx *Context) (string, error) {
	attrs := ctx.InputHTML.Clone()
	var b strings.Builder
	b.WriteString(`<input type="hidden" name="`)
	b.WriteString(html.EscapeString(ctx.InputName()))
	b.WriteString(`" id="`)
	b.WriteString(html.EscapeString(ctx.DOMID()))
	b.WriteString(`"`)
	if value := ctx.ValueString(); value != "" {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}
	b.WriteString(attrs.String())
	b.WriteString(">")
	return b.String(), nil
}

// renderChoiceGroup builds radio or checkbox lists directly; looping markup
// stays in Go so choice ids and names remain deterministic.
func renderChoiceGroup(ctx *Context, kind string) string {
	name := ctx.InputName()
	if kind == "checkbox" && !strings.HasSuffix(name, "[]") {
		name += "[]"
	}
	selected := selectedValues(ctx)

	var b strings.Builder
	b.WriteString(`<div class="`)
	b.WriteString(html.EscapeString(ctx.Chrome.Control + "-group"))
	b.WriteString(`">`)

	if kind == "checkbox" {
		// Blank fallback so clearing every box still submits the field.
		b.WriteString(`<input type="hidden" name="`)
		b.WriteString(html.EscapeString(name))
		b.WriteString(`" value="">`)
	}

	for i, choice := range ctx.Collection {
		id := ctx.DOMID() + "_" + strconv.Itoa(i)
		b.WriteString(`<label for="`)
		b.WriteString(html.EscapeString(id))
		b.WriteString(`"><input type="`)
		b.WriteString(kind)
		b.WriteString(`" name="`)
		b.WriteString(html.EscapeString(name))
		b.WriteString(`" id="`)
		b.WriteString(html.EscapeString(id))
		b.WriteString(`" value="`)
		b.WriteString(html.EscapeString(choice.Value))
		b.WriteString(`"`)
		if choice.Selected || selected[choice.Value] {
			b.WriteString(` checked="checked"`)
		}
		b.WriteString("> ")
		b.WriteString(html.EscapeString(choice.Label))
		b.WriteString("</label>")
	}

	b.WriteString("</div>")
	return b.String()
}

func renderPartial(ctx *Context, partial string, data map[string]any) (string, error) {
	if ctx.Templates == nil {
		return "", fmt.Errorf("inputs: no template renderer configured")
	}
	rendered, err := ctx.Templates.RenderTemplate(ctx.Template(partial), data)
	if err != nil {
		return "", fmt.Errorf("inputs: render %s control for %q: %w", partial, ctx.Attribute, err)
	}
	return strings.TrimSpace(rendered), nil
}

func templateData(ctx *Context) map[string]any {
	return map[string]any{
		"name": ctx.InputName(),
		"id":   ctx.DOMID(),
	}
}

// controlAttrs folds the chrome class, resolution extras, and caller
// attributes into the final control attribute bag. Caller attributes win
// over extras.
func controlAttrs(ctx *Context, extra Attrs) Attrs {
	attrs := make(Attrs, len(extra)+len(ctx.InputHTML)+3)
	for key, value := range extra {
		attrs[key] = value
	}
	if ctx.Required {
		attrs["required"] = "required"
	}
	if ctx.Placeholder != "" {
		attrs["placeholder"] = ctx.Placeholder
	}
	for key, value := range ctx.InputHTML {
		attrs[key] = value
	}
	return attrs.MergeClass(ctx.Chrome.Control)
}

func choiceMaps(choices []model.Choice, ctx *Context) []map[string]any {
	selected := selectedValues(ctx)
	out := make([]map[string]any, 0, len(choices))
	for _, choice := range choices {
		out = append(out, map[string]any{
			"label":    choice.Label,
			"value":    choice.Value,
			"selected": choice.Selected || selected[choice.Value],
			"disabled": choice.Disabled,
		})
	}
	return out
}

// selectedValues derives the set of selected choice values from the bound
// attribute value. Slices mark each element, scalars mark one.
func selectedValues(ctx *Context) map[string]bool {
	out := make(map[string]bool)
	switch values := ctx.Value.(type) {
	case nil:
	case []string:
		for _, v := range values {
			out[v] = true
		}
	case []any:
		for _, v := range values {
			out[model.FormatValue(v)] = true
		}
	case []int:
		for _, v := range values {
			out[strconv.Itoa(v)] = true
		}
	case []int64:
		for _, v := range values {
			out[strconv.FormatInt(v, 10)] = true
		}
	default:
		if v := model.FormatValue(ctx.Value); v != "" {
			out[v] = true
		}
	}
	return out
}

// temporalValue formats time values for the HTML control variants, which
// reject full RFC 3339 strings.
func temporalValue(ctx *Context) string {
	value := ctx.ValueString()
	if value == "" {
		return ""
	}
	switch ctx.Type {
	case TypeDate:
		if len(value) >= 10 {
			return value[:10]
		}
	case TypeDatetime:
		if len(value) >= 16 && strings.Contains(value, "T") {
			return value[:16]
		}
	}
	return value
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case *bool:
		return v != nil && *v
	case string:
		return v == "true" || v == "1" || v == "on"
	case int:
		return v != 0
	default:
		return false
	}
}
