package gormmeta_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/providers/gormmeta"
)

type Author struct {
	ID   uint
	Name string
}

type Tag struct {
	ID    uint
	Label string
}

type Article struct {
	ID          uint
	Title       string `gorm:"not null;size:120"`
	Body        string `gorm:"type:text"`
	Rating      float64
	Published   bool
	PublishedOn time.Time
	CreatedAt   time.Time
	AuthorID    uint
	Author      Author
	Tags        []Tag `gorm:"many2many:article_tags"`
}

func TestProvider_Columns(t *testing.T) {
	provider, err := gormmeta.New(&Article{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := provider.ModelName(); got != "article" {
		t.Fatalf("ModelName() = %q, want article", got)
	}

	cases := []struct {
		attribute string
		want      model.Column
	}{
		{attribute: "title", want: model.Column{Name: "title", Type: model.ColumnString, Limit: 120}},
		{attribute: "body", want: model.Column{Name: "body", Type: model.ColumnText, Nullable: true}},
		{attribute: "rating", want: model.Column{Name: "rating", Type: model.ColumnFloat, Nullable: true}},
		{attribute: "published", want: model.Column{Name: "published", Type: model.ColumnBoolean, Nullable: true}},
		{attribute: "published_on", want: model.Column{Name: "published_on", Type: model.ColumnDatetime, Nullable: true}},
		{attribute: "created_at", want: model.Column{Name: "created_at", Type: model.ColumnTimestamp, Nullable: true}},
		{attribute: "author_id", want: model.Column{Name: "author_id", Type: model.ColumnInteger, Nullable: true}},
	}

	for _, tc := range cases {
		t.Run(tc.attribute, func(t *testing.T) {
			column, ok := provider.ColumnInfo(tc.attribute)
			if !ok {
				t.Fatalf("column %q not found", tc.attribute)
			}
			if diff := cmp.Diff(tc.want, *column); diff != "" {
				t.Fatalf("column mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, ok := provider.ColumnInfo("nonexistent"); ok {
		t.Fatal("expected miss for unknown column")
	}
}

func TestProvider_Associations(t *testing.T) {
	provider, err := gormmeta.New(&Article{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	author, ok := provider.AssociationInfo("author")
	if !ok {
		t.Fatal("author association not found")
	}
	if author.Macro != model.BelongsTo || author.Target != "authors" || author.ForeignKey != "author_id" {
		t.Fatalf("author association = %+v", author)
	}

	tags, ok := provider.AssociationInfo("tags")
	if !ok {
		t.Fatal("tags association not found")
	}
	if tags.Macro != model.HasAndBelongsToMany || tags.Target != "tags" {
		t.Fatalf("tags association = %+v", tags)
	}

	if _, ok := provider.AssociationInfo("reviewers"); ok {
		t.Fatal("expected miss for unknown association")
	}
}
