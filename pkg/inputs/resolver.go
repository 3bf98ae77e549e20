package inputs

import (
	"regexp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Pattern binds an attribute-name regexp to the input type it implies. The
// heuristics are locale-specific by nature, so the list is configurable
// rather than baked in.
type Pattern struct {
	Expr *regexp.Regexp
	Type InputType
}

// DefaultPatterns returns the built-in name heuristics in resolution order.
// First match wins.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Expr: regexp.MustCompile(`password`), Type: TypePassword},
		{Expr: regexp.MustCompile(`time_zone`), Type: TypeTimeZone},
		{Expr: regexp.MustCompile(`country`), Type: TypeCountry},
		{Expr: regexp.MustCompile(`email`), Type: TypeEmail},
		{Expr: regexp.MustCompile(`phone`), Type: TypeTel},
		{Expr: regexp.MustCompile(`url`), Type: TypeURL},
	}
}

// DefaultFileMethods lists the method names probed on a bound value to
// detect file-like attributes.
func DefaultFileMethods() []string {
	return []string{"Path", "Size", "Filename"}
}

// Resolver infers the input type of an attribute from caller options, column
// metadata, name heuristics, and the bound value.
type Resolver struct {
	patterns    []Pattern
	fileMethods []string
}

// ResolverOption configures a Resolver before construction.
type ResolverOption func(*Resolver)

// WithPatterns replaces the name heuristics. Order is significant.
func WithPatterns(patterns []Pattern) ResolverOption {
	return func(r *Resolver) {
		r.patterns = append([]Pattern(nil), patterns...)
	}
}

// WithFileMethods replaces the method names probed for file capability.
func WithFileMethods(methods ...string) ResolverOption {
	return func(r *Resolver) {
		r.fileMethods = append([]string(nil), methods...)
	}
}

// NewResolver constructs a resolver with the default heuristics applied.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		patterns:    DefaultPatterns(),
		fileMethods: DefaultFileMethods(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve computes the effective input type for an attribute. Priority
// order, first match wins:
//
//  1. an explicit As option is used verbatim;
//  2. a caller-supplied collection forces select;
//  3. timestamp columns resolve to datetime; string, untyped, or absent
//     columns run the name heuristics, then fall back to the column's
//     literal type when it carries one, then to a file-capability probe on
//     the value, then to string;
//  4. any other column type is used as-is.
func (r *Resolver) Resolve(attribute string, column *model.Column, opts *Options, value any) InputType {
	if opts != nil && opts.As != "" {
		return opts.As
	}
	if opts != nil && opts.HasCollection() {
		return TypeSelect
	}

	var columnType model.ColumnType
	if column != nil {
		columnType = column.Type
	}

	switch columnType {
	case model.ColumnTimestamp:
		return TypeDatetime
	case model.ColumnString, "":
		for _, pattern := range r.patterns {
			if pattern.Expr == nil {
				continue
			}
			if pattern.Expr.MatchString(attribute) {
				return pattern.Type
			}
		}
		if column != nil && columnType != "" {
			return typeForColumn(columnType)
		}
		if r.fileLike(value) {
			return TypeFile
		}
		return TypeString
	default:
		return typeForColumn(columnType)
	}
}

func (r *Resolver) fileLike(value any) bool {
	if value == nil {
		return false
	}
	for _, method := range r.fileMethods {
		if model.RespondsTo(value, method) {
			return true
		}
	}
	return false
}

func typeForColumn(t model.ColumnType) InputType {
	switch t {
	case model.ColumnString:
		return TypeString
	case model.ColumnText:
		return TypeText
	case model.ColumnInteger:
		return TypeInteger
	case model.ColumnDecimal:
		return TypeDecimal
	case model.ColumnFloat:
		return TypeFloat
	case model.ColumnBoolean:
		return TypeBoolean
	case model.ColumnDate:
		return TypeDate
	case model.ColumnTime:
		return TypeTime
	case model.ColumnDatetime, model.ColumnTimestamp:
		return TypeDatetime
	case model.ColumnFile:
		return TypeFile
	default:
		return InputType(t)
	}
}
