package i18n

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bundle holds translations loaded from YAML files, one locale per
// top-level key, flattened to dotted lookup paths. It is immutable once
// loaded and safe to share.
type Bundle struct {
	locales map[string]map[string]string
}

// LoadBundle reads every .yml/.yaml file under root in the given
// filesystem. Each document maps a locale code to a nested tree:
//
//	en:
//	  formbuilder:
//	    labels:
//	      user:
//	        email: "Email address"
func LoadBundle(fsys fs.FS, root string) (*Bundle, error) {
	bundle := &Bundle{locales: make(map[string]map[string]string)}

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}

		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %q: %w", p, err)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("parse %q: %w", p, err)
		}

		for locale, tree := range doc {
			entries := bundle.locales[locale]
			if entries == nil {
				entries = make(map[string]string)
				bundle.locales[locale] = entries
			}
			flatten("", tree, entries)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("i18n: load bundle: %w", err)
	}
	return bundle, nil
}

// Locales returns the locale codes loaded into the bundle.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for code := range b.locales {
		out = append(out, code)
	}
	return out
}

// Lookup resolves a dotted key in a locale.
func (b *Bundle) Lookup(locale, key string) (string, bool) {
	entries, ok := b.locales[locale]
	if !ok {
		// fall back to the language part of a region-qualified code
		if base, _, found := strings.Cut(locale, "-"); found {
			entries, ok = b.locales[base]
		}
		if !ok {
			return "", false
		}
	}
	value, ok := entries[key]
	return value, ok
}

// Translator binds the bundle to a locale, satisfying the Translator
// interface consumed by the builder.
func (b *Bundle) Translator(locale string) Translator {
	return TranslatorFunc(func(_ context.Context, key string) (string, bool) {
		return b.Lookup(locale, key)
	})
}

func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			flatten(joinKey(prefix, key), child, out)
		}
	case map[any]any:
		for key, child := range v {
			flatten(joinKey(prefix, fmt.Sprint(key)), child, out)
		}
	case string:
		if prefix != "" {
			out[prefix] = v
		}
	case nil:
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
