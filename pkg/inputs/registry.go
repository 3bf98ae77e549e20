package inputs

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownInputType is wrapped by Lookup when no renderer is registered
// for a tag.
var ErrUnknownInputType = errors.New("unknown input type")

// Input renders the full field markup (label, control, hint, error) for one
// resolved attribute.
type Input interface {
	Render(ctx *Context) (string, error)
}

// InputFunc adapts a function to the Input interface.
type InputFunc func(ctx *Context) (string, error)

// Render implements Input.
func (f InputFunc) Render(ctx *Context) (string, error) {
	return f(ctx)
}

// Registry maps input type tags to their renderers. Registration after
// construction is safe from multiple goroutines.
type Registry struct {
	mu     sync.RWMutex
	inputs map[InputType]Input
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{inputs: make(map[InputType]Input)}
}

// NewDefaultRegistry returns a registry preloaded with the built-in
// renderers for every shipped input type.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	text := &StringInput{}
	for _, t := range []InputType{TypeString, TypeEmail, TypeSearch, TypeTel, TypeURL} {
		r.Register(t, text)
	}

	numeric := &NumericInput{}
	for _, t := range []InputType{TypeInteger, TypeDecimal, TypeFloat} {
		r.Register(t, numeric)
	}

	collection := &CollectionInput{}
	for _, t := range []InputType{TypeSelect, TypeRadio, TypeCheckBoxes} {
		r.Register(t, collection)
	}

	temporal := &DateTimeInput{}
	for _, t := range []InputType{TypeDate, TypeTime, TypeDatetime} {
		r.Register(t, temporal)
	}

	priority := &PriorityInput{}
	r.Register(TypeCountry, priority)
	r.Register(TypeTimeZone, priority)

	r.Register(TypeBoolean, &BooleanInput{})

	generic := &GenericInput{}
	for _, t := range []InputType{TypePassword, TypeText, TypeFile, TypeHidden} {
		r.Register(t, generic)
	}

	return r
}

// Register binds a renderer to a tag, replacing any previous binding.
func (r *Registry) Register(t InputType, input Input) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs[t] = input
}

// Lookup returns the renderer bound to a tag.
func (r *Registry) Lookup(t InputType) (Input, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	input, ok := r.inputs[t]
	if !ok {
		return nil, fmt.Errorf("inputs: %w: %q", ErrUnknownInputType, t)
	}
	return input, nil
}

// Types returns the registered tags in unspecified order.
func (r *Registry) Types() []InputType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]InputType, 0, len(r.inputs))
	for t := range r.inputs {
		out = append(out, t)
	}
	return out
}
