package builder

import "errors"

var (
	// ErrNoObject is returned when an operation needs a bound object or a
	// metadata provider and the builder has neither.
	ErrNoObject = errors.New("builder: no object or metadata provider bound")

	// ErrUnknownAssociation is returned when the provider has no metadata
	// for a named association.
	ErrUnknownAssociation = errors.New("builder: unknown association")

	// ErrHasOneUnsupported is returned for has_one associations, which have
	// no sensible single-control rendering. Use AssociationBlock instead.
	ErrHasOneUnsupported = errors.New("builder: has_one associations render through AssociationBlock")

	// ErrNoRecordSource is returned when an association needs choices and
	// neither the caller nor a record source supplied them.
	ErrNoRecordSource = errors.New("builder: no record source configured")

	// ErrNoNestedForm is returned by AssociationBlock when no nested form
	// renderer is configured.
	ErrNoNestedForm = errors.New("builder: no nested form renderer configured")
)
