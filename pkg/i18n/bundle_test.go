package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formbuilder/pkg/i18n"
)

const enYAML = `en:
  formbuilder:
    labels:
      user:
        email: "Email address"
    hints:
      user:
        email: "We never share this"
`

const esYAML = `es:
  formbuilder:
    labels:
      user:
        email: "Correo electrónico"
`

func testBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	fsys := fstest.MapFS{
		"locales/en.yml": &fstest.MapFile{Data: []byte(enYAML)},
		"locales/es.yml": &fstest.MapFile{Data: []byte(esYAML)},
	}
	bundle, err := i18n.LoadBundle(fsys, "locales")
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	return bundle
}

func TestBundle_Lookup(t *testing.T) {
	bundle := testBundle(t)

	value, ok := bundle.Lookup("en", "formbuilder.labels.user.email")
	if !ok || value != "Email address" {
		t.Fatalf("en lookup = %q ok=%v", value, ok)
	}

	value, ok = bundle.Lookup("es", "formbuilder.labels.user.email")
	if !ok || value != "Correo electrónico" {
		t.Fatalf("es lookup = %q ok=%v", value, ok)
	}

	if _, ok := bundle.Lookup("en", "formbuilder.labels.user.name"); ok {
		t.Fatal("expected miss for untranslated key")
	}
	if _, ok := bundle.Lookup("fr", "formbuilder.labels.user.email"); ok {
		t.Fatal("expected miss for unknown locale")
	}
}

func TestBundle_RegionFallback(t *testing.T) {
	bundle := testBundle(t)
	value, ok := bundle.Lookup("en-GB", "formbuilder.labels.user.email")
	if !ok || value != "Email address" {
		t.Fatalf("region fallback = %q ok=%v", value, ok)
	}
}

func TestBundle_Translator(t *testing.T) {
	bundle := testBundle(t)
	translator := bundle.Translator("en")

	value, ok := translator.Translate(context.Background(), i18n.HintKey("user", "email"))
	if !ok || value != "We never share this" {
		t.Fatalf("translate = %q ok=%v", value, ok)
	}
}

func TestKeys(t *testing.T) {
	if got := i18n.LabelKey("user", "email"); got != "formbuilder.labels.user.email" {
		t.Fatalf("LabelKey = %q", got)
	}
	if got := i18n.HintKey("post", "body"); got != "formbuilder.hints.post.body" {
		t.Fatalf("HintKey = %q", got)
	}
}
