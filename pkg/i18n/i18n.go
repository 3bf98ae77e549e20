// Package i18n resolves attribute labels and hints from translation
// bundles. The builder consults a Translator before falling back to the
// humanised attribute name.
package i18n

import "context"

// Translator looks up a translation key. The boolean reports whether the
// key resolved; the builder treats a miss as "use the default label".
type Translator interface {
	Translate(ctx context.Context, key string) (string, bool)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, key string) (string, bool)

// Translate implements Translator.
func (f TranslatorFunc) Translate(ctx context.Context, key string) (string, bool) {
	return f(ctx, key)
}

// LabelKey is the lookup key of an attribute label:
// formbuilder.labels.<model>.<attribute>.
func LabelKey(model, attribute string) string {
	return "formbuilder.labels." + model + "." + attribute
}

// HintKey is the lookup key of an attribute hint:
// formbuilder.hints.<model>.<attribute>.
func HintKey(model, attribute string) string {
	return "formbuilder.hints." + model + "." + attribute
}
