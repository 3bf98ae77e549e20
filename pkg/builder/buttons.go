package builder

import (
	"html"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/inputs"
)

// ButtonContext carries everything a button handler needs to emit markup.
// Attrs already include the chrome button class.
type ButtonContext struct {
	Kind  string
	Label string
	Attrs inputs.Attrs
}

// ButtonHandler renders one button kind.
type ButtonHandler func(ctx *ButtonContext) (string, error)

// Button renders an action control. The kind picks a registered handler;
// unregistered kinds fall back to a plain button element. Caller classes
// are appended after the base button class.
func (b *Builder) Button(kind string, opts ...inputs.Option) (string, error) {
	options := inputs.BuildOptions(opts...)

	label := options.Label
	if !options.HasLabel() {
		label = b.labeler(kind)
	}

	btnCtx := &ButtonContext{
		Kind:  kind,
		Label: label,
		Attrs: options.InputHTML.MergeClass(b.chrome.Button),
	}

	handler, ok := b.buttons[kind]
	if !ok {
		handler = genericButton
	}
	return handler(btnCtx)
}

func defaultButtonHandlers() map[string]ButtonHandler {
	return map[string]ButtonHandler{
		"submit": submitButton,
		"reset":  resetButton,
		"button": genericButton,
	}
}

func submitButton(ctx *ButtonContext) (string, error) {
	return inputButton("submit", ctx), nil
}

func resetButton(ctx *ButtonContext) (string, error) {
	return inputButton("reset", ctx), nil
}

func genericButton(ctx *ButtonContext) (string, error) {
	var b strings.Builder
	b.WriteString(`<button type="button"`)
	b.WriteString(ctx.Attrs.String())
	b.WriteString(">")
	b.WriteString(html.EscapeString(ctx.Label))
	b.WriteString("</button>")
	return b.String(), nil
}

func inputButton(htmlType string, ctx *ButtonContext) string {
	var b strings.Builder
	b.WriteString(`<input type="`)
	b.WriteString(htmlType)
	b.WriteString(`" value="`)
	b.WriteString(html.EscapeString(ctx.Label))
	b.WriteString(`"`)
	b.WriteString(ctx.Attrs.String())
	b.WriteString(">")
	return b.String()
}
