// Package openapimeta derives form metadata from OpenAPI component
// schemas. A User component with email and created_at properties yields the
// same column metadata a database-backed provider would.
package openapimeta

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// associationExtension is the schema extension carrying relationship
// metadata that OpenAPI cannot express natively:
//
//	x-association:
//	  macro: belongs_to
//	  target: users
//	  foreign_key: author_id
const associationExtension = "x-association"

// Document wraps a loaded OpenAPI specification.
type Document struct {
	spec *openapi3.T
}

// Load reads and validates a specification from disk.
func Load(ctx context.Context, file string) (*Document, error) {
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	spec, err := loader.LoadFromFile(file)
	if err != nil {
		return nil, fmt.Errorf("openapimeta: load document: %w", err)
	}
	return newDocument(ctx, spec)
}

// LoadData parses a specification held in memory.
func LoadData(ctx context.Context, raw []byte) (*Document, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapimeta: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapimeta: load document: %w", err)
	}
	return newDocument(ctx, spec)
}

func newDocument(ctx context.Context, spec *openapi3.T) (*Document, error) {
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapimeta: validate document: %w", err)
	}
	return &Document{spec: spec}, nil
}

// SchemaNames lists the component schemas available as providers.
func (d *Document) SchemaNames() []string {
	if d.spec.Components == nil {
		return nil
	}
	out := make([]string, 0, len(d.spec.Components.Schemas))
	for name := range d.spec.Components.Schemas {
		out = append(out, name)
	}
	return out
}

// Provider builds metadata for one named component schema.
func (d *Document) Provider(schemaName string) (*Provider, error) {
	if d.spec.Components == nil {
		return nil, fmt.Errorf("openapimeta: document has no component schemas")
	}
	ref, ok := d.spec.Components.Schemas[schemaName]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("openapimeta: component schema %q not found", schemaName)
	}

	p := &Provider{
		name:         snakeCase(schemaName),
		columns:      make(map[string]model.Column),
		associations: make(map[string]model.Association),
	}

	required := make(map[string]bool, len(ref.Value.Required))
	for _, name := range ref.Value.Required {
		required[name] = true
	}

	for name, property := range ref.Value.Properties {
		if property == nil {
			continue
		}
		if assoc, ok := associationFrom(name, property); ok {
			p.associations[name] = assoc
			continue
		}
		if property.Value == nil {
			continue
		}
		p.columns[name] = model.Column{
			Name:     name,
			Type:     columnType(property.Value),
			Nullable: !required[name],
			Limit:    maxLength(property.Value),
			Default:  property.Value.Default,
		}
	}

	return p, nil
}

// Provider adapts one component schema to the MetadataProvider seam.
type Provider struct {
	name         string
	columns      map[string]model.Column
	associations map[string]model.Association
}

var _ model.MetadataProvider = (*Provider)(nil)

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

func columnType(schema *openapi3.Schema) model.ColumnType {
	types := schema.Type
	switch {
	case types.Is(openapi3.TypeBoolean):
		return model.ColumnBoolean
	case types.Is(openapi3.TypeInteger):
		return model.ColumnInteger
	case types.Is(openapi3.TypeNumber):
		if schema.Format == "decimal" {
			return model.ColumnDecimal
		}
		return model.ColumnFloat
	case types.Is(openapi3.TypeString):
		switch schema.Format {
		case "date":
			return model.ColumnDate
		case "time":
			return model.ColumnTime
		case "date-time":
			return model.ColumnDatetime
		case "binary", "byte":
			return model.ColumnFile
		}
		// OpenAPI has no text type; the x-column-type extension opts in
		if raw, ok := schema.Extensions["x-column-type"].(string); ok {
			return model.ColumnType(raw)
		}
		return model.ColumnString
	default:
		return model.ColumnString
	}
}

func maxLength(schema *openapi3.Schema) int {
	if schema.MaxLength == nil {
		return 0
	}
	return int(*schema.MaxLength)
}

// associationFrom detects relationships: an explicit x-association
// extension wins, otherwise $ref properties become belongs_to and arrays of
// $refs become has_many.
func associationFrom(name string, property *openapi3.SchemaRef) (model.Association, bool) {
	if property.Value != nil {
		if raw, ok := property.Value.Extensions[associationExtension].(map[string]any); ok {
			assoc := model.Association{Name: name}
			if macro, ok := raw["macro"].(string); ok {
				assoc.Macro = model.AssociationMacro(macro)
			}
			if target, ok := raw["target"].(string); ok {
				assoc.Target = target
			}
			if fk, ok := raw["foreign_key"].(string); ok {
				assoc.ForeignKey = fk
			}
			if label, ok := raw["label_method"].(string); ok {
				assoc.LabelMethod = label
			}
			return assoc, true
		}
	}

	if property.Ref != "" {
		return model.Association{
			Name:       name,
			Macro:      model.BelongsTo,
			Target:     snakeCase(refName(property.Ref)),
			ForeignKey: name + "_id",
		}, true
	}

	if property.Value != nil && property.Value.Type.Is(openapi3.TypeArray) {
		items := property.Value.Items
		if items != nil && items.Ref != "" {
			return model.Association{
				Name:   name,
				Macro:  model.HasMany,
				Target: snakeCase(refName(items.Ref)),
			}, true
		}
	}

	return model.Association{}, false
}

func refName(ref string) string {
	return path.Base(ref)
}

func snakeCase(name string) string {
	var out strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			out.WriteByte('_')
		}
		out.WriteRune(r)
	}
	return strings.ToLower(out.String())
}
