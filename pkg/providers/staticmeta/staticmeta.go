// Package staticmeta provides in-memory metadata for models described by
// hand, typically in tests, examples, or YAML-driven tooling.
package staticmeta

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Definition describes one model.
type Definition struct {
	Name         string              `yaml:"name"`
	Columns      []model.Column      `yaml:"columns"`
	Associations []model.Association `yaml:"associations"`
}

// Provider serves Definition data through the MetadataProvider seam.
type Provider struct {
	name         string
	columns      map[string]model.Column
	associations map[string]model.Association
}

var _ model.MetadataProvider = (*Provider)(nil)

// New indexes a definition for lookup.
func New(def Definition) *Provider {
	p := &Provider{
		name:         def.Name,
		columns:      make(map[string]model.Column, len(def.Columns)),
		associations: make(map[string]model.Association, len(def.Associations)),
	}
	for _, column := range def.Columns {
		p.columns[column.Name] = column
	}
	for _, assoc := range def.Associations {
		p.associations[assoc.Name] = assoc
	}
	return p
}

// ModelName implements model.MetadataProvider.
func (p *Provider) ModelName() string { return p.name }

// ColumnInfo implements model.MetadataProvider.
func (p *Provider) ColumnInfo(name string) (*model.Column, bool) {
	column, ok := p.columns[name]
	if !ok {
		return nil, false
	}
	return &column, true
}

// AssociationInfo implements model.MetadataProvider.
func (p *Provider) AssociationInfo(name string) (*model.Association, bool) {
	assoc, ok := p.associations[name]
	if !ok {
		return nil, false
	}
	return &assoc, true
}

// Source serves association choices from fixed per-target lists.
type Source struct {
	choices map[string][]model.Choice
}

var _ model.RecordSource = (*Source)(nil)

// NewSource builds a record source keyed by association target name.
func NewSource(choices map[string][]model.Choice) *Source {
	return &Source{choices: choices}
}

// Records implements model.RecordSource.
func (s *Source) Records(_ context.Context, assoc model.Association) ([]model.Choice, error) {
	choices, ok := s.choices[assoc.Target]
	if !ok {
		return nil, fmt.Errorf("staticmeta: no records for target %q", assoc.Target)
	}
	return choices, nil
}
