package i18n

import (
	"context"
	"io/fs"
	"strings"

	"github.com/invopop/ctxi18n"
	ctxlocale "github.com/invopop/ctxi18n/i18n"
)

// Load registers translation files with the process-wide ctxi18n store.
// The filesystem layout follows ctxi18n conventions: one directory or file
// per locale.
func Load(fsys fs.FS) error {
	return ctxi18n.Load(fsys)
}

// WithLocale stores the request locale on the context for the context
// translator.
func WithLocale(ctx context.Context, locale string) (context.Context, error) {
	return ctxi18n.WithLocale(ctx, locale)
}

// ContextTranslator resolves keys through ctxi18n using the locale carried
// by the request context. It suits HTTP handlers that already run the
// ctxi18n middleware.
type ContextTranslator struct{}

// NewContextTranslator returns a translator backed by ctxi18n.
func NewContextTranslator() ContextTranslator {
	return ContextTranslator{}
}

// Translate implements Translator. ctxi18n signals a miss by echoing a
// missing-key marker, which is mapped to ok=false here.
func (ContextTranslator) Translate(ctx context.Context, key string) (string, bool) {
	value := ctxlocale.T(ctx, key)
	if value == "" || value == key || strings.Contains(value, "!(MISSING") {
		return "", false
	}
	return value, true
}
