// Package gormmeta derives form metadata from gorm model structs. Parsing
// uses gorm's schema package only, so no database connection is needed to
// resolve columns and associations.
package gormmeta

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jinzhu/inflection"
	"gorm.io/gorm/schema"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Provider adapts a parsed gorm schema to the MetadataProvider seam.
type Provider struct {
	name         string
	columns      map[string]model.Column
	associations map[string]model.Association
}

var _ model.MetadataProvider = (*Provider)(nil)

// New parses the gorm struct tags and relationships of value.
func New(value any) (*Provider, error) {
	parsed, err := schema.Parse(value, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("gormmeta: parse schema: %w", err)
	}

	p := &Provider{
		name:         inflection.Singular(parsed.Table),
		columns:      make(map[string]model.Column, len(parsed.Fields)),
		associations: make(map[string]model.Association, len(parsed.Relationships.Relations)),
	}

	for _, field := range parsed.Fields {
		if field.DBName == "" {
			continue
		}
		p.columns[field.DBName] = model.Column{
			Name:     field.DBName,
			Type:     columnType(field),
			Nullable: !field.NotNull && !field.PrimaryKey,
			Limit:    field.Size,
			Default:  defaultValue(field),
		}
	}

	for _, rel := range parsed.Relationships.Relations {
		assoc, ok := association(rel)
		if !ok {
			continue
		}
		p.associations[assoc.Name] = assoc
	}

	return p, nil
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

// columnType maps gorm data types onto the resolver's column enum.
func columnType(field *schema.Field) model.ColumnType {
	raw := strings.ToLower(string(field.DataType))
	switch {
	case raw == string(schema.Bool):
		return model.ColumnBoolean
	case raw == string(schema.Int) || raw == string(schema.Uint):
		return model.ColumnInteger
	case raw == string(schema.Float):
		return model.ColumnFloat
	case strings.Contains(raw, "decimal") || strings.Contains(raw, "numeric"):
		return model.ColumnDecimal
	case raw == "text" || strings.Contains(raw, "longtext"):
		return model.ColumnText
	case raw == string(schema.Time):
		if field.AutoCreateTime != 0 || field.AutoUpdateTime != 0 {
			return model.ColumnTimestamp
		}
		return model.ColumnDatetime
	case raw == "date":
		return model.ColumnDate
	default:
		return model.ColumnString
	}
}

func defaultValue(field *schema.Field) any {
	if !field.HasDefaultValue {
		return nil
	}
	return field.DefaultValue
}

// association converts a gorm relationship. The names follow form
// conventions: snake_case, singular for to-one, plural for to-many.
func association(rel *schema.Relationship) (model.Association, bool) {
	var macro model.AssociationMacro
	switch rel.Type {
	case schema.BelongsTo:
		macro = model.BelongsTo
	case schema.HasOne:
		macro = model.HasOne
	case schema.HasMany:
		macro = model.HasMany
	case schema.Many2Many:
		macro = model.HasAndBelongsToMany
	default:
		return model.Association{}, false
	}

	assoc := model.Association{
		Name:   schema.NamingStrategy{}.ColumnName("", rel.Name),
		Macro:  macro,
		Target: rel.FieldSchema.Table,
	}
	if macro == model.BelongsTo {
		for _, ref := range rel.References {
			if ref.ForeignKey != nil && ref.ForeignKey.Schema == rel.Schema {
				assoc.ForeignKey = ref.ForeignKey.DBName
				break
			}
		}
	}
	return assoc, true
}
