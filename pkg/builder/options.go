package builder

import (
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/inputs"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render/template"
)

// Option configures a Builder during construction.
type Option func(*config)

type config struct {
	object    any
	modelName string
	provider  model.MetadataProvider
	source    model.RecordSource
	nested    model.NestedForm
	errors    model.Errors

	translator i18n.Translator
	labeler    model.Labeler

	resolver  *inputs.Resolver
	registry  *inputs.Registry
	templates template.Renderer
	bundleFS  fs.FS

	chrome   inputs.Chrome
	partials map[string]string
	buttons  map[string]ButtonHandler
}

// WithObject binds the record whose attributes are rendered.
func WithObject(object any) Option {
	return func(cfg *config) { cfg.object = object }
}

// WithModelName overrides the model name inferred from the object or
// provider. It namespaces input names and DOM ids.
func WithModelName(name string) Option {
	return func(cfg *config) { cfg.modelName = name }
}

// WithProvider supplies column and association metadata.
func WithProvider(provider model.MetadataProvider) Option {
	return func(cfg *config) { cfg.provider = provider }
}

// WithRecordSource supplies the default choice loader for associations.
func WithRecordSource(source model.RecordSource) Option {
	return func(cfg *config) { cfg.source = source }
}

// WithNestedForm supplies the renderer used by AssociationBlock.
func WithNestedForm(nested model.NestedForm) Option {
	return func(cfg *config) { cfg.nested = nested }
}

// WithErrors binds validation errors to the builder.
func WithErrors(errs model.Errors) Option {
	return func(cfg *config) { cfg.errors = errs }
}

// WithTranslator resolves labels and hints through a translation bundle
// before the labeler fallback runs.
func WithTranslator(translator i18n.Translator) Option {
	return func(cfg *config) { cfg.translator = translator }
}

// WithLabeler overrides the attribute-name humanizer.
func WithLabeler(labeler model.Labeler) Option {
	return func(cfg *config) {
		if labeler != nil {
			cfg.labeler = labeler
		}
	}
}

// WithResolver overrides the input type resolver.
func WithResolver(resolver *inputs.Resolver) Option {
	return func(cfg *config) {
		if resolver != nil {
			cfg.resolver = resolver
		}
	}
}

// WithRegistry overrides the input renderer registry.
func WithRegistry(registry *inputs.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer template.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithTemplatesFS replaces the embedded control template bundle.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(cfg *config) { cfg.bundleFS = fsys }
}

// WithChrome replaces the structural CSS classes.
func WithChrome(chrome inputs.Chrome) Option {
	return func(cfg *config) { cfg.chrome = chrome }
}

// WithThemeConfig applies a theme's tokens to the chrome classes and its
// partial overrides to the template lookup.
func WithThemeConfig(themeCfg *theme.RendererConfig) Option {
	return func(cfg *config) {
		if themeCfg == nil {
			return
		}
		cfg.chrome = cfg.chrome.ApplyTheme(themeCfg)
		if len(themeCfg.Partials) > 0 {
			if cfg.partials == nil {
				cfg.partials = make(map[string]string, len(themeCfg.Partials))
			}
			for key, value := range themeCfg.Partials {
				cfg.partials[key] = value
			}
		}
	}
}

// WithPartial overrides the template used for one control partial.
func WithPartial(name, path string) Option {
	return func(cfg *config) {
		if cfg.partials == nil {
			cfg.partials = make(map[string]string, 1)
		}
		cfg.partials[name] = path
	}
}

// WithButtonHandler registers or replaces the renderer of a button kind.
func WithButtonHandler(kind string, handler ButtonHandler) Option {
	return func(cfg *config) {
		if handler == nil {
			return
		}
		if cfg.buttons == nil {
			cfg.buttons = make(map[string]ButtonHandler, 1)
		}
		cfg.buttons[kind] = handler
	}
}
