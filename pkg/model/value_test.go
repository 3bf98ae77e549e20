package model_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

type article struct {
	Title    string
	AuthorID int64
	Draft    bool
}

type attachment struct{}

func (attachment) Path() string     { return "/tmp/upload" }
func (attachment) Size() int64      { return 42 }
func (attachment) Filename() string { return "upload.png" }

func TestAttributeValue_Struct(t *testing.T) {
	obj := article{Title: "Go is fun", AuthorID: 7, Draft: true}

	value, ok := model.AttributeValue(obj, "title")
	if !ok || value != "Go is fun" {
		t.Fatalf("title = %v ok=%v", value, ok)
	}

	value, ok = model.AttributeValue(&obj, "author_id")
	if !ok || value != int64(7) {
		t.Fatalf("author_id = %v ok=%v", value, ok)
	}

	if _, ok := model.AttributeValue(obj, "missing"); ok {
		t.Fatal("expected lookup miss for unknown attribute")
	}
}

func TestAttributeValue_Map(t *testing.T) {
	obj := map[string]any{"email": "ada@example.com"}

	value, ok := model.AttributeValue(obj, "email")
	if !ok || value != "ada@example.com" {
		t.Fatalf("email = %v ok=%v", value, ok)
	}
	if _, ok := model.AttributeValue(obj, "phone"); ok {
		t.Fatal("expected lookup miss for absent key")
	}
}

func TestAttributeValue_NilObject(t *testing.T) {
	if _, ok := model.AttributeValue(nil, "title"); ok {
		t.Fatal("expected miss for nil object")
	}
	var ptr *article
	if _, ok := model.AttributeValue(ptr, "title"); ok {
		t.Fatal("expected miss for nil pointer")
	}
}

func TestRespondsTo(t *testing.T) {
	if !model.RespondsTo(attachment{}, "Path") {
		t.Fatal("value receiver method not found")
	}
	if !model.RespondsTo(&attachment{}, "Size") {
		t.Fatal("pointer to value receiver method not found")
	}
	if model.RespondsTo(attachment{}, "Download") {
		t.Fatal("unexpected method match")
	}
	if model.RespondsTo(nil, "Path") {
		t.Fatal("nil object should not respond")
	}
}

func TestFormatValue(t *testing.T) {
	stamp := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "hello", want: "hello"},
		{name: "int", in: 42, want: "42"},
		{name: "bool", in: true, want: "true"},
		{name: "float trims zeros", in: 1.50, want: "1.5"},
		{name: "time rfc3339", in: stamp, want: "2024-03-09T14:30:00Z"},
		{name: "zero time", in: time.Time{}, want: ""},
		{name: "nil pointer", in: (*int)(nil), want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := model.FormatValue(tc.in); got != tc.want {
				t.Fatalf("FormatValue(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	errs := model.Errors{"email": {"is invalid", "is taken"}}

	if got := errs.On("email"); len(got) != 2 || got[0] != "is invalid" {
		t.Fatalf("On(email) = %v", got)
	}
	if got := errs.On("name"); got != nil {
		t.Fatalf("On(name) = %v, want nil", got)
	}
	if !errs.Any() {
		t.Fatal("Any() = false, want true")
	}
	if (model.Errors{}).Any() {
		t.Fatal("empty store reports errors")
	}
	if (model.Errors{"email": {}}).Any() {
		t.Fatal("store with empty slice reports errors")
	}
}
