package model

import "context"

// MetadataProvider exposes column and association reflection for one model
// type. Implementations adapt a concrete data layer (gorm schemas, OpenAPI
// component schemas, in-memory definitions) behind this seam so the resolver
// never touches the data layer directly.
type MetadataProvider interface {
	// ModelName identifies the described model; it scopes i18n lookups and
	// input name prefixes.
	ModelName() string
	// ColumnInfo returns column metadata for an attribute. The second return
	// is false when the attribute is unknown to the provider.
	ColumnInfo(name string) (*Column, bool)
	// AssociationInfo returns reflection metadata for a named association.
	AssociationInfo(name string) (*Association, bool)
}

// RecordSource fetches the records of an association's target type, filtered
// and ordered per the reflection options, as ready-to-render choices.
type RecordSource interface {
	Records(ctx context.Context, assoc Association) ([]Choice, error)
}

// NestedForm renders a sub-form over an association's target. Builders
// delegate block-style association calls to this collaborator.
type NestedForm interface {
	Render(ctx context.Context, assoc Association, object any) (string, error)
}
