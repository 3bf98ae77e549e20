package inputs_test

import (
	"regexp"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/inputs"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

type upload struct{}

func (upload) Path() string     { return "" }
func (upload) Size() int64      { return 0 }
func (upload) Filename() string { return "" }

func TestResolver_Resolve(t *testing.T) {
	resolver := inputs.NewResolver()

	cases := []struct {
		name      string
		attribute string
		column    *model.Column
		opts      *inputs.Options
		value     any
		want      inputs.InputType
	}{
		{
			name:      "explicit as wins over everything",
			attribute: "email",
			column:    &model.Column{Type: model.ColumnString},
			opts:      inputs.BuildOptions(inputs.As(inputs.TypeHidden)),
			want:      inputs.TypeHidden,
		},
		{
			name:      "collection forces select",
			attribute: "status",
			column:    &model.Column{Type: model.ColumnInteger},
			opts:      inputs.BuildOptions(inputs.WithCollection([]model.Choice{{Label: "Open", Value: "1"}})),
			want:      inputs.TypeSelect,
		},
		{
			name:      "empty collection still forces select",
			attribute: "status",
			opts:      inputs.BuildOptions(inputs.WithCollection(nil)),
			want:      inputs.TypeSelect,
		},
		{
			name:      "timestamp column becomes datetime",
			attribute: "created_at",
			column:    &model.Column{Type: model.ColumnTimestamp},
			want:      inputs.TypeDatetime,
		},
		{
			name:      "password pattern",
			attribute: "password_confirmation",
			column:    &model.Column{Type: model.ColumnString},
			want:      inputs.TypePassword,
		},
		{
			name:      "time zone pattern",
			attribute: "time_zone",
			column:    &model.Column{Type: model.ColumnString},
			want:      inputs.TypeTimeZone,
		},
		{
			name:      "country pattern",
			attribute: "country_of_birth",
			column:    &model.Column{Type: model.ColumnString},
			want:      inputs.TypeCountry,
		},
		{
			name:      "email pattern",
			attribute: "email",
			column:    &model.Column{Type: model.ColumnString},
			want:      inputs.TypeEmail,
		},
		{
			name:      "phone pattern maps to tel",
			attribute: "phone_number",
			column:    &model.Column{Type: model.ColumnString},
			want:      inputs.TypeTel,
		},
		{
			name:      "url pattern",
			attribute: "website_url",
			column:    &model.Column{Type: model.ColumnString},
			want:      inputs.TypeURL,
		},
		{
			name:      "pattern applies without column too",
			attribute: "email",
			want:      inputs.TypeEmail,
		},
		{
			name:      "plain string column",
			attribute: "title",
			column:    &model.Column{Type: model.ColumnString},
			want:      inputs.TypeString,
		},
		{
			name:      "untyped column falls back to string",
			attribute: "title",
			column:    &model.Column{Name: "title"},
			want:      inputs.TypeString,
		},
		{
			name:      "untyped column still probes file values",
			attribute: "avatar",
			column:    &model.Column{Name: "avatar"},
			value:     upload{},
			want:      inputs.TypeFile,
		},
		{
			name:      "no metadata file-like value",
			attribute: "avatar",
			value:     upload{},
			want:      inputs.TypeFile,
		},
		{
			name:      "no metadata plain value",
			attribute: "nickname",
			value:     "gopher",
			want:      inputs.TypeString,
		},
		{
			name:      "no metadata nil value",
			attribute: "nickname",
			want:      inputs.TypeString,
		},
		{
			name:      "integer column",
			attribute: "age",
			column:    &model.Column{Type: model.ColumnInteger},
			want:      inputs.TypeInteger,
		},
		{
			name:      "decimal column",
			attribute: "price",
			column:    &model.Column{Type: model.ColumnDecimal},
			want:      inputs.TypeDecimal,
		},
		{
			name:      "boolean column",
			attribute: "active",
			column:    &model.Column{Type: model.ColumnBoolean},
			want:      inputs.TypeBoolean,
		},
		{
			name:      "date column",
			attribute: "born_on",
			column:    &model.Column{Type: model.ColumnDate},
			want:      inputs.TypeDate,
		},
		{
			name:      "text column",
			attribute: "body",
			column:    &model.Column{Type: model.ColumnText},
			want:      inputs.TypeText,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolver.Resolve(tc.attribute, tc.column, tc.opts, tc.value)
			if got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.attribute, got, tc.want)
			}
		})
	}
}

func TestResolver_PatternOrder(t *testing.T) {
	// password must win over email when both match.
	resolver := inputs.NewResolver()
	got := resolver.Resolve("email_password", &model.Column{Type: model.ColumnString}, nil, nil)
	if got != inputs.TypePassword {
		t.Fatalf("Resolve(email_password) = %q, want password", got)
	}
}

func TestResolver_CustomPatterns(t *testing.T) {
	resolver := inputs.NewResolver(inputs.WithPatterns([]inputs.Pattern{
		{Expr: regexp.MustCompile(`slug`), Type: inputs.TypeHidden},
	}))

	if got := resolver.Resolve("slug", &model.Column{Type: model.ColumnString}, nil, nil); got != inputs.TypeHidden {
		t.Fatalf("custom pattern ignored, got %q", got)
	}
	// default patterns were replaced, not appended
	if got := resolver.Resolve("email", &model.Column{Type: model.ColumnString}, nil, nil); got != inputs.TypeString {
		t.Fatalf("default pattern still active, got %q", got)
	}
}

func TestResolver_CustomFileMethods(t *testing.T) {
	resolver := inputs.NewResolver(inputs.WithFileMethods("Download"))
	if got := resolver.Resolve("avatar", nil, nil, upload{}); got != inputs.TypeString {
		t.Fatalf("default file probe still active, got %q", got)
	}
}
