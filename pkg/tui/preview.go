// Package tui collects attribute values through terminal prompts, mapping
// each resolved input type to the closest prompt kind. It backs the CLI's
// interactive preview mode.
package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/inputs"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Option configures a Preview.
type Option func(*Preview)

// WithDriver overrides the prompt driver, typically with a scripted stub in
// tests.
func WithDriver(driver PromptDriver) Option {
	return func(p *Preview) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithResolver overrides the input type resolver.
func WithResolver(resolver *inputs.Resolver) Option {
	return func(p *Preview) {
		if resolver != nil {
			p.resolver = resolver
		}
	}
}

// WithRecordSource supplies association choices.
func WithRecordSource(source model.RecordSource) Option {
	return func(p *Preview) { p.source = source }
}

// WithLabeler overrides the prompt message humanizer.
func WithLabeler(labeler model.Labeler) Option {
	return func(p *Preview) {
		if labeler != nil {
			p.labeler = labeler
		}
	}
}

// Preview walks a model's attributes, prompting for each one with the
// prompt variant its resolved input type implies.
type Preview struct {
	provider model.MetadataProvider
	source   model.RecordSource
	driver   PromptDriver
	resolver *inputs.Resolver
	labeler  model.Labeler
}

// NewPreview constructs a preview over one model's metadata.
func NewPreview(provider model.MetadataProvider, opts ...Option) (*Preview, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	p := &Preview{
		provider: provider,
		driver:   NewSurveyDriver(),
		resolver: inputs.NewResolver(),
		labeler:  model.DefaultLabeler,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p, nil
}

// Run prompts for each attribute in order and returns the collected values
// keyed by attribute name.
func (p *Preview) Run(ctx context.Context, attributes []string) (map[string]any, error) {
	values := make(map[string]any, len(attributes))
	for _, attribute := range attributes {
		value, err := p.ask(ctx, attribute)
		if err != nil {
			return nil, fmt.Errorf("tui: collect %q: %w", attribute, err)
		}
		values[attribute] = value
	}
	return values, nil
}

// Association prompts for a relationship: single select for belongs_to,
// multi-select for collection macros.
func (p *Preview) Association(ctx context.Context, name string) (any, error) {
	assoc, ok := p.provider.AssociationInfo(name)
	if !ok {
		return nil, fmt.Errorf("tui: unknown association %q", name)
	}
	if p.source == nil {
		return nil, fmt.Errorf("tui: association %q needs a record source", name)
	}
	choices, err := p.source.Records(ctx, *assoc)
	if err != nil {
		return nil, fmt.Errorf("tui: load %q records: %w", name, err)
	}

	labels := make([]string, len(choices))
	for i, choice := range choices {
		labels[i] = choice.Label
	}
	cfg := SelectConfig{Message: p.labeler(name), Options: labels}

	if assoc.Macro.Collection() {
		picked, err := p.driver.MultiSelect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		values := make([]string, 0, len(picked))
		for _, idx := range picked {
			values = append(values, choices[idx].Value)
		}
		return values, nil
	}

	idx, err := p.driver.Select(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(choices) {
		return "", nil
	}
	return choices[idx].Value, nil
}

func (p *Preview) ask(ctx context.Context, attribute string) (any, error) {
	var column *model.Column
	if info, ok := p.provider.ColumnInfo(attribute); ok {
		column = info
	}
	inputType := p.resolver.Resolve(attribute, column, nil, nil)
	message := p.labeler(attribute)

	switch inputType {
	case inputs.TypePassword:
		return p.driver.Password(ctx, InputConfig{Message: message})
	case inputs.TypeBoolean:
		return p.driver.Confirm(ctx, ConfirmConfig{Message: message + "?"})
	case inputs.TypeCountry, inputs.TypeTimeZone, inputs.TypeSelect, inputs.TypeRadio:
		choices := p.builtinChoices(inputType)
		labels := make([]string, len(choices))
		for i, choice := range choices {
			labels[i] = choice.Label
		}
		idx, err := p.driver.Select(ctx, SelectConfig{Message: message, Options: labels, PageSize: 12})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(choices) {
			return "", nil
		}
		return choices[idx].Value, nil
	default:
		cfg := InputConfig{Message: message}
		if column != nil && column.Default != nil {
			cfg.Default = model.FormatValue(column.Default)
		}
		return p.driver.Input(ctx, cfg)
	}
}

func (p *Preview) builtinChoices(inputType inputs.InputType) []model.Choice {
	switch inputType {
	case inputs.TypeTimeZone:
		return inputs.TimeZoneChoices()
	default:
		return inputs.CountryChoices()
	}
}
