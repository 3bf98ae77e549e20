package model

// ColumnType is the simplified enum of storage-level attribute types the
// resolver understands. Providers normalise whatever their data layer exposes
// into one of these tags.
type ColumnType string

const (
	ColumnString    ColumnType = "string"
	ColumnText      ColumnType = "text"
	ColumnInteger   ColumnType = "integer"
	ColumnDecimal   ColumnType = "decimal"
	ColumnFloat     ColumnType = "float"
	ColumnBoolean   ColumnType = "boolean"
	ColumnDate      ColumnType = "date"
	ColumnTime      ColumnType = "time"
	ColumnDatetime  ColumnType = "datetime"
	ColumnTimestamp ColumnType = "timestamp"
	ColumnFile      ColumnType = "file"
)

// AssociationMacro identifies the relationship shape between two model types.
type AssociationMacro string

const (
	BelongsTo           AssociationMacro = "belongs_to"
	HasOne              AssociationMacro = "has_one"
	HasMany             AssociationMacro = "has_many"
	HasAndBelongsToMany AssociationMacro = "has_and_belongs_to_many"
)

// Collection reports whether the macro points at many records.
func (m AssociationMacro) Collection() bool {
	return m == HasMany || m == HasAndBelongsToMany
}

// Column carries per-attribute metadata obtained from a MetadataProvider.
// A nil *Column means the provider knows nothing about the attribute.
type Column struct {
	Name     string     `yaml:"name"`
	Type     ColumnType `yaml:"type"`
	Nullable bool       `yaml:"nullable"`
	Limit    int        `yaml:"limit"`
	Default  any        `yaml:"default"`
}

// Association describes reflection metadata for a named relationship.
type Association struct {
	Name       string           `yaml:"name"`
	Macro      AssociationMacro `yaml:"macro"`
	Target     string           `yaml:"target"`
	ForeignKey string           `yaml:"foreign_key"`
	// Conditions and OrderBy are passed through to the RecordSource when the
	// caller does not supply an explicit collection.
	Conditions map[string]any `yaml:"conditions"`
	OrderBy    string         `yaml:"order_by"`
	// LabelMethod and ValueMethod name the target attributes used to build
	// choices from fetched records. Empty values fall back to source defaults.
	LabelMethod string `yaml:"label_method"`
	ValueMethod string `yaml:"value_method"`
}

// Choice is a single option of a collection input. Disabled choices render
// but cannot be picked, which priority selects use for separator rows.
type Choice struct {
	Label    string `yaml:"label"`
	Value    string `yaml:"value"`
	Selected bool   `yaml:"selected"`
	Disabled bool   `yaml:"disabled"`
}

// Errors is the per-attribute validation error store bound to a builder.
type Errors map[string][]string

// On returns the messages recorded for an attribute.
func (e Errors) On(name string) []string {
	if len(e) == 0 {
		return nil
	}
	return e[name]
}

// Any reports whether the store holds at least one message.
func (e Errors) Any() bool {
	for _, messages := range e {
		if len(messages) > 0 {
			return true
		}
	}
	return false
}
