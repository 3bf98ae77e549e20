package builder

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jinzhu/inflection"

	"github.com/goliatone/go-formbuilder/pkg/inputs"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// collectionSizeDefault is the visible row count of multi-select
// association controls when the caller does not set one.
const collectionSizeDefault = 5

// Association renders a choice control for a named relationship. belongs_to
// renders a single select on the foreign key; has_many and
// has_and_belongs_to_many render a multi-select on the synthesised ids
// attribute. has_one is rejected.
func (b *Builder) Association(ctx context.Context, name string, opts ...inputs.Option) (string, error) {
	assoc, err := b.association(name)
	if err != nil {
		return "", err
	}
	if assoc.Macro == model.HasOne {
		return "", fmt.Errorf("association %q: %w", name, ErrHasOneUnsupported)
	}

	options := inputs.BuildOptions(opts...)

	var attribute string
	if assoc.Macro.Collection() {
		attribute = inflection.Singular(name) + "_ids"
	} else {
		attribute = assoc.ForeignKey
		if attribute == "" {
			attribute = name + "_id"
		}
	}

	if !options.HasCollection() {
		choices, err := b.associationChoices(ctx, assoc, options)
		if err != nil {
			return "", fmt.Errorf("association %q: %w", name, err)
		}
		opts = append(opts, inputs.WithCollection(choices))
	}
	if !options.HasLabel() {
		// label from the association name, not the synthesised attribute
		opts = append(opts, inputs.WithLabel(b.labelText(ctx, name, options)))
	}
	options = inputs.BuildOptions(opts...)

	if assoc.Macro.Collection() {
		if options.InputHTML == nil {
			options.InputHTML = inputs.Attrs{}
		}
		if _, ok := options.InputHTML["size"]; !ok {
			options.InputHTML["size"] = strconv.Itoa(collectionSizeDefault)
		}
	}

	inputType := options.As
	if inputType == "" {
		inputType = inputs.TypeSelect
	}

	value, _ := model.AttributeValue(b.object, attribute)
	column := b.columnFor(attribute)

	renderCtx := b.renderContext(ctx, attribute, inputType, column, assoc, value, options)
	return b.render(renderCtx)
}

// AssociationBlock hands a relationship to the configured nested form
// renderer, which is how has_one and editable child records are expressed.
func (b *Builder) AssociationBlock(ctx context.Context, name string) (string, error) {
	assoc, err := b.association(name)
	if err != nil {
		return "", err
	}
	if b.nested == nil {
		return "", fmt.Errorf("association %q: %w", name, ErrNoNestedForm)
	}
	markup, err := b.nested.Render(ctx, *assoc, b.object)
	if err != nil {
		return "", fmt.Errorf("association %q: render nested form: %w", name, err)
	}
	return markup, nil
}

func (b *Builder) association(name string) (*model.Association, error) {
	if b.provider == nil {
		return nil, fmt.Errorf("association %q: %w", name, ErrNoObject)
	}
	assoc, ok := b.provider.AssociationInfo(name)
	if !ok {
		return nil, fmt.Errorf("association %q: %w", name, ErrUnknownAssociation)
	}
	return assoc, nil
}

// associationChoices loads the option list from the record source, letting
// per-call label and value method overrides reach the source.
func (b *Builder) associationChoices(ctx context.Context, assoc *model.Association, options *inputs.Options) ([]model.Choice, error) {
	if b.source == nil {
		return nil, ErrNoRecordSource
	}
	lookup := *assoc
	if options.LabelMethod != "" {
		lookup.LabelMethod = options.LabelMethod
	}
	if options.ValueMethod != "" {
		lookup.ValueMethod = options.ValueMethod
	}
	choices, err := b.source.Records(ctx, lookup)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return choices, nil
}
