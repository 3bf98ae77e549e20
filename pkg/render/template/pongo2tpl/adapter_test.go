package pongo2tpl_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formbuilder/pkg/render/template/pongo2tpl"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/hello.html": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
		"templates/greet.html": &fstest.MapFile{Data: []byte("{{ greeting }} {{ name }}")},
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine, err := pongo2tpl.New(pongo2tpl.WithFS(testFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	got, err := engine.RenderTemplate("templates/hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("render = %q", got)
	}

	// extension is appended only when missing
	got, err = engine.RenderTemplate("templates/hello.html", map[string]any{"name": "Grace"})
	if err != nil {
		t.Fatalf("render with extension: %v", err)
	}
	if got != "Hello Grace!" {
		t.Fatalf("render = %q", got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := pongo2tpl.New(pongo2tpl.WithFS(testFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	got, err := engine.RenderString("{{ value|upper }}", map[string]any{"value": "loud"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "LOUD" {
		t.Fatalf("render string = %q", got)
	}
}

func TestEngine_RenderDispatch(t *testing.T) {
	engine, err := pongo2tpl.New(pongo2tpl.WithFS(testFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	inline, err := engine.Render("inline {{ name }}", map[string]any{"name": "Ada"})
	if err != nil || inline != "inline Ada" {
		t.Fatalf("inline dispatch = %q err=%v", inline, err)
	}

	file, err := engine.Render("templates/hello", map[string]any{"name": "Ada"})
	if err != nil || file != "Hello Ada!" {
		t.Fatalf("file dispatch = %q err=%v", file, err)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := pongo2tpl.New(
		pongo2tpl.WithFS(testFS()),
		pongo2tpl.WithGlobalData(map[string]any{"greeting": "Hei"}),
	)
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	got, err := engine.RenderTemplate("templates/greet", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hei Ada" {
		t.Fatalf("render = %q", got)
	}
}

func TestEngine_AutoEscapes(t *testing.T) {
	engine, err := pongo2tpl.New(pongo2tpl.WithFS(testFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	got, err := engine.RenderString("{{ value }}", map[string]any{"value": "<script>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("output not escaped: %q", got)
	}
}

func TestEngine_HumanizeFilter(t *testing.T) {
	engine, err := pongo2tpl.New(pongo2tpl.WithFS(testFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	got, err := engine.RenderString("{{ name|humanize }}", map[string]any{"name": "author_id"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Author" {
		t.Fatalf("humanize = %q", got)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := pongo2tpl.New(pongo2tpl.WithFS(testFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}
	if _, err := engine.RenderTemplate("templates/missing", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestNew_RequiresLoader(t *testing.T) {
	if _, err := pongo2tpl.New(); err == nil {
		t.Fatal("expected error without base dir or fs")
	}
}
