package formbuilder_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	formbuilder "github.com/goliatone/go-formbuilder"
)

type Profile struct {
	Email string
}

func TestInput_QuickEntryPoint(t *testing.T) {
	got, err := formbuilder.Input(context.Background(), &Profile{Email: "ada@example.com"}, "email")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `type="email"`) || !strings.Contains(got, `name="profile[email]"`) {
		t.Fatalf("markup mismatch: %s", got)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	bundle := formbuilder.EmbeddedTemplates()
	for _, name := range []string{"input", "textarea", "select", "boolean"} {
		if _, err := fs.Stat(bundle, "templates/"+name+".html"); err != nil {
			t.Fatalf("missing embedded template %q: %v", name, err)
		}
	}
}
