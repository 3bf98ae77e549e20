package openapimeta_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/providers/openapimeta"
)

const specJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "blog", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Author": {
        "type": "object",
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"}
        }
      },
      "BlogPost": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string", "maxLength": 120},
          "body": {"type": "string", "x-column-type": "text"},
          "rating": {"type": "number"},
          "published": {"type": "boolean"},
          "published_on": {"type": "string", "format": "date"},
          "created_at": {"type": "string", "format": "date-time"},
          "author": {"$ref": "#/components/schemas/Author"},
          "tags": {
            "type": "array",
            "items": {"$ref": "#/components/schemas/Author"},
            "x-association": {
              "macro": "has_and_belongs_to_many",
              "target": "tags",
              "label_method": "label"
            }
          }
        }
      }
    }
  }
}`

func loadProvider(t *testing.T) *openapimeta.Provider {
	t.Helper()
	doc, err := openapimeta.LoadData(context.Background(), []byte(specJSON))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	provider, err := doc.Provider("BlogPost")
	if err != nil {
		t.Fatalf("build provider: %v", err)
	}
	return provider
}

func TestProvider_ModelName(t *testing.T) {
	if got := loadProvider(t).ModelName(); got != "blog_post" {
		t.Fatalf("ModelName() = %q, want blog_post", got)
	}
}

func TestProvider_Columns(t *testing.T) {
	provider := loadProvider(t)

	cases := []struct {
		attribute string
		wantType  model.ColumnType
		nullable  bool
		limit     int
	}{
		{attribute: "title", wantType: model.ColumnString, nullable: false, limit: 120},
		{attribute: "body", wantType: model.ColumnText, nullable: true},
		{attribute: "rating", wantType: model.ColumnFloat, nullable: true},
		{attribute: "published", wantType: model.ColumnBoolean, nullable: true},
		{attribute: "published_on", wantType: model.ColumnDate, nullable: true},
		{attribute: "created_at", wantType: model.ColumnDatetime, nullable: true},
	}

	for _, tc := range cases {
		t.Run(tc.attribute, func(t *testing.T) {
			column, ok := provider.ColumnInfo(tc.attribute)
			if !ok {
				t.Fatalf("column %q not found", tc.attribute)
			}
			if column.Type != tc.wantType || column.Nullable != tc.nullable || column.Limit != tc.limit {
				t.Fatalf("column = %+v", column)
			}
		})
	}
}

func TestProvider_RefBecomesBelongsTo(t *testing.T) {
	provider := loadProvider(t)

	assoc, ok := provider.AssociationInfo("author")
	if !ok {
		t.Fatal("author association not found")
	}
	if assoc.Macro != model.BelongsTo || assoc.Target != "author" || assoc.ForeignKey != "author_id" {
		t.Fatalf("author association = %+v", assoc)
	}

	// the $ref property must not leak into columns
	if _, ok := provider.ColumnInfo("author"); ok {
		t.Fatal("author should not be a column")
	}
}

func TestProvider_ExtensionAssociation(t *testing.T) {
	provider := loadProvider(t)

	assoc, ok := provider.AssociationInfo("tags")
	if !ok {
		t.Fatal("tags association not found")
	}
	if assoc.Macro != model.HasAndBelongsToMany || assoc.Target != "tags" || assoc.LabelMethod != "label" {
		t.Fatalf("tags association = %+v", assoc)
	}
}

func TestDocument_UnknownSchema(t *testing.T) {
	doc, err := openapimeta.LoadData(context.Background(), []byte(specJSON))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if _, err := doc.Provider("Comment"); err == nil {
		t.Fatal("expected error for unknown schema")
	}
}
