package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/providers/openapimeta"
	"github.com/goliatone/go-formbuilder/pkg/providers/staticmeta"
	"github.com/goliatone/go-formbuilder/pkg/tui"
)

type envConfig struct {
	Locale     string `env:"FORMBUILDER_LOCALE" envDefault:"en"`
	LocalesDir string `env:"FORMBUILDER_LOCALES_DIR"`
	Output     string `env:"FORMBUILDER_OUTPUT"`
}

// modelFile is the YAML document the CLI renders from: a model definition,
// per-target choices, and the attribute order.
type modelFile struct {
	Model      staticmeta.Definition     `yaml:"model"`
	Choices    map[string][]model.Choice `yaml:"choices"`
	Values     map[string]any            `yaml:"values"`
	Attributes []string                  `yaml:"attributes"`
}

func main() {
	cfg := envConfig{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse environment: %v", err)
	}

	modelPath := flag.String("model", "", "YAML model description to render")
	openapiPath := flag.String("openapi", "", "OpenAPI document path (alternative to -model)")
	schemaName := flag.String("schema", "", "component schema name when using -openapi")
	output := flag.String("output", cfg.Output, "output file (stdout if empty)")
	locale := flag.String("locale", cfg.Locale, "locale for labels and hints")
	localesDir := flag.String("locales", cfg.LocalesDir, "directory of YAML translation bundles")
	interactive := flag.Bool("interactive", false, "collect values through terminal prompts instead of rendering HTML")
	flag.Parse()

	ctx := context.Background()

	doc, provider, source, err := loadMetadata(ctx, *modelPath, *openapiPath, *schemaName)
	if err != nil {
		log.Fatalf("load metadata: %v", err)
	}

	if *interactive {
		if err := runPreview(ctx, doc, provider, source); err != nil {
			log.Fatalf("interactive preview: %v", err)
		}
		return
	}

	markup, err := renderForm(ctx, doc, provider, source, *locale, *localesDir)
	if err != nil {
		log.Fatalf("render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return
	}
	fmt.Println(markup)
}

func loadMetadata(ctx context.Context, modelPath, openapiPath, schemaName string) (*modelFile, model.MetadataProvider, model.RecordSource, error) {
	switch {
	case modelPath != "":
		raw, err := os.ReadFile(modelPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("read model file: %w", err)
		}
		doc := &modelFile{}
		if err := yaml.Unmarshal(raw, doc); err != nil {
			return nil, nil, nil, fmt.Errorf("parse model file: %w", err)
		}
		if len(doc.Attributes) == 0 {
			for _, column := range doc.Model.Columns {
				doc.Attributes = append(doc.Attributes, column.Name)
			}
		}
		return doc, staticmeta.New(doc.Model), staticmeta.NewSource(doc.Choices), nil

	case openapiPath != "":
		if schemaName == "" {
			return nil, nil, nil, fmt.Errorf("-schema is required with -openapi")
		}
		spec, err := openapimeta.Load(ctx, openapiPath)
		if err != nil {
			return nil, nil, nil, err
		}
		provider, err := spec.Provider(schemaName)
		if err != nil {
			return nil, nil, nil, err
		}
		return &modelFile{}, provider, nil, nil

	default:
		return nil, nil, nil, fmt.Errorf("one of -model or -openapi is required")
	}
}

func renderForm(ctx context.Context, doc *modelFile, provider model.MetadataProvider, source model.RecordSource, locale, localesDir string) (string, error) {
	opts := []builder.Option{
		builder.WithProvider(provider),
	}
	if source != nil {
		opts = append(opts, builder.WithRecordSource(source))
	}
	if len(doc.Values) > 0 {
		opts = append(opts, builder.WithObject(doc.Values))
	}
	if localesDir != "" {
		bundle, err := i18n.LoadBundle(os.DirFS(localesDir), ".")
		if err != nil {
			return "", err
		}
		opts = append(opts, builder.WithTranslator(bundle.Translator(locale)))
	}

	b, err := builder.New(opts...)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, attribute := range doc.Attributes {
		field, err := b.Input(ctx, attribute)
		if err != nil {
			return "", fmt.Errorf("attribute %q: %w", attribute, err)
		}
		out.WriteString(field)
		out.WriteByte('\n')
	}
	for _, assoc := range doc.Model.Associations {
		if assoc.Macro == model.HasOne {
			continue
		}
		field, err := b.Association(ctx, assoc.Name)
		if err != nil {
			return "", fmt.Errorf("association %q: %w", assoc.Name, err)
		}
		out.WriteString(field)
		out.WriteByte('\n')
	}

	button, err := b.Button("submit")
	if err != nil {
		return "", err
	}
	out.WriteString(button)
	return out.String(), nil
}

func runPreview(ctx context.Context, doc *modelFile, provider model.MetadataProvider, source model.RecordSource) error {
	opts := []tui.Option{}
	if source != nil {
		opts = append(opts, tui.WithRecordSource(source))
	}
	preview, err := tui.NewPreview(provider, opts...)
	if err != nil {
		return err
	}

	values, err := preview.Run(ctx, doc.Attributes)
	if err != nil {
		return err
	}
	for _, assoc := range doc.Model.Associations {
		if assoc.Macro == model.HasOne || source == nil {
			continue
		}
		picked, err := preview.Association(ctx, assoc.Name)
		if err != nil {
			return err
		}
		values[assoc.Name] = picked
	}

	encoded, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	fmt.Print(string(encoded))
	return nil
}
