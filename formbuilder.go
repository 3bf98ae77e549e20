// Package formbuilder maps data-model attributes to complete form field
// markup: a resolver picks the input type from metadata, name heuristics,
// and caller options; registered renderers emit the control wrapped with
// label, hint, and error chrome.
package formbuilder

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/inputs"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Builder is the per-object form builder; alias exported via the root
// package for convenience.
type Builder = builder.Builder

// Option configures a Builder during construction.
type Option = builder.Option

// InputType tags the renderer variant an attribute resolves to.
type InputType = inputs.InputType

// Choice is a single option of a collection input.
type Choice = model.Choice

// Errors is the per-attribute validation error store.
type Errors = model.Errors

// New constructs a form builder; see the builder package for the full
// option surface.
func New(options ...Option) (*Builder, error) {
	return builder.New(options...)
}

// Input resolves and renders one attribute with a throwaway builder. It is
// the simplest entry point for callers that render a field at a time.
func Input(ctx context.Context, object any, attribute string, options ...inputs.Option) (string, error) {
	b, err := builder.New(builder.WithObject(object))
	if err != nil {
		return "", err
	}
	return b.Input(ctx, attribute, options...)
}

// EmbeddedTemplates exposes the shipped control template bundle so callers
// can extend it or serve it elsewhere.
func EmbeddedTemplates() fs.FS {
	return inputs.TemplatesFS()
}
